package rifilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strattonbrazil/aqsis/internal/ri"
	"github.com/strattonbrazil/aqsis/internal/testutil"
)

func newValidatorChain(capture *ri.CaptureHandler) (*Chain, *testutil.Recorder) {
	sink := testutil.NewRecorder()
	chain := NewChain(sink, WithErrorHandler(capture))
	chain.Prepend(Validate())
	return chain, sink
}

func TestValidator_BalancedBlocksPassThrough(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newValidatorChain(capture)
	in := chain.In()

	in.FrameBegin(1)
	in.WorldBegin()
	in.AttributeBegin()
	in.Sphere(1, -1, 1, 360, nil)
	in.AttributeEnd()
	in.WorldEnd()
	in.FrameEnd()

	assert.Equal(t, []string{
		`FrameBegin 1`,
		`WorldBegin`,
		`AttributeBegin`,
		`Sphere 1 -1 1 360`,
		`AttributeEnd`,
		`WorldEnd`,
		`FrameEnd`,
	}, sink.Lines())
	assert.Equal(t, 0, capture.Count())
}

func TestValidator_EndWithNoOpenBlock(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newValidatorChain(capture)

	chain.In().WorldEnd()

	assert.Empty(t, sink.Lines(), "a mismatched end must not reach the sink")
	require.Equal(t, 1, capture.Count())
	assert.Equal(t, ri.ErrNesting, capture.Errors()[0].Code)
}

func TestValidator_EndClosesWrongBlock(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newValidatorChain(capture)
	in := chain.In()

	in.WorldBegin()
	in.AttributeEnd()

	assert.Equal(t, []string{`WorldBegin`}, sink.Lines())
	require.Equal(t, 1, capture.Count())
	assert.Equal(t, ri.ErrNesting, capture.Errors()[0].Code)
}

func TestValidator_ConditionalsRequireIfBlock(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newValidatorChain(capture)
	in := chain.In()

	in.Else()
	in.ElseIf("$pass == 2")
	require.Equal(t, 2, capture.Count())
	assert.Empty(t, sink.Lines())

	in.IfBegin("$pass == 1")
	in.ElseIf("$pass == 2")
	in.Else()
	in.IfEnd()
	assert.Equal(t, []string{
		`IfBegin "$pass == 1"`,
		`ElseIf "$pass == 2"`,
		`Else`,
		`IfEnd`,
	}, sink.Lines())
	assert.Equal(t, 2, capture.Count())
}

func TestValidator_OpenScopesReportsUnterminatedBlocks(t *testing.T) {
	capture := &ri.CaptureHandler{}
	sink := testutil.NewRecorder()
	chain := NewChain(sink, WithErrorHandler(capture))
	v := NewValidator(chain, sink)

	v.FrameBegin(1)
	v.WorldBegin()
	v.MotionBegin([]float64{0, 1})

	assert.Equal(t, []string{"Frame", "World", "Motion"}, v.OpenScopes())

	v.MotionEnd()
	assert.Equal(t, []string{"Frame", "World"}, v.OpenScopes())
}
