package rifilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strattonbrazil/aqsis/internal/ri"
	"github.com/strattonbrazil/aqsis/internal/testutil"
)

func TestChain_EmptyGoesStraightToSink(t *testing.T) {
	sink := testutil.NewRecorder()
	chain := NewChain(sink)

	chain.In().Sphere(1, -1, 1, 360, nil)

	assert.Equal(t, []string{`Sphere 1 -1 1 360`}, sink.Lines())
}

func TestChain_PrependMakesLastStageTheHead(t *testing.T) {
	sink := testutil.NewRecorder()
	chain := NewChain(sink)

	chain.Prepend(Archive())
	archiveHead := chain.In()
	chain.Prepend(Validate())

	require.NotEqual(t, archiveHead, chain.In(), "the later Prepend owns the head")
	assert.Equal(t, chain.In(), chain.FirstFilter())
}

func TestChain_FirstFilterTracksLaterPrepends(t *testing.T) {
	sink := testutil.NewRecorder()
	chain := NewChain(sink)

	// The archive filter is constructed first, then a validator is put in
	// front of it. Replayed content must still pass the validator.
	chain.Prepend(Archive())
	chain.Prepend(Validate())
	in := chain.In()

	in.ArchiveBegin("block", nil)
	in.AttributeBegin()
	in.Surface("plastic", nil)
	in.AttributeEnd()
	in.ArchiveEnd()

	in.ReadArchive("block", nil)
	in.ReadArchive("block", nil)

	assert.Equal(t, []string{
		`AttributeBegin`,
		`Surface "plastic"`,
		`AttributeEnd`,
		`AttributeBegin`,
		`Surface "plastic"`,
		`AttributeEnd`,
	}, sink.Lines())
}

func TestChain_DefaultErrorHandlerIsReplaceable(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain := NewChain(testutil.NewRecorder(), WithErrorHandler(capture))

	assert.Equal(t, capture, chain.ErrorHandler())
}
