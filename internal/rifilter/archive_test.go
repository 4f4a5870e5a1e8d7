package rifilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strattonbrazil/aqsis/internal/ri"
	"github.com/strattonbrazil/aqsis/internal/testutil"
)

// newArchiveChain builds a one-stage chain with the archive filter in
// front of a recording sink.
func newArchiveChain(capture *ri.CaptureHandler, opts ...ArchiveOption) (*Chain, *testutil.Recorder) {
	sink := testutil.NewRecorder()
	chain := NewChain(sink, WithErrorHandler(capture))
	chain.Prepend(Archive(opts...))
	return chain, sink
}

func TestArchiveFilter_PassThroughWhileIdle(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)
	in := chain.In()

	in.WorldBegin()
	in.Sphere(1, -1, 1, 360, nil)
	in.WorldEnd()

	assert.Equal(t, []string{
		`WorldBegin`,
		`Sphere 1 -1 1 360`,
		`WorldEnd`,
	}, sink.Lines())
	assert.Equal(t, 0, capture.Count())
}

func TestArchiveFilter_UnknownReadArchiveForwards(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)

	chain.In().ReadArchive("onDisk.rib", nil)

	assert.Equal(t, []string{`ReadArchive "onDisk.rib"`}, sink.Lines(),
		"an undefined archive is forwarded exactly once for later stages to resolve")
	assert.Equal(t, 0, capture.Count(), "an unknown archive name is not an error")
}

func TestArchiveFilter_DefineAndReplay(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)
	in := chain.In()

	in.ArchiveBegin("ball", nil)
	in.Translate(0, 0, 5)
	in.Sphere(1, -1, 1, 360, nil)
	in.ArchiveEnd()

	assert.Empty(t, sink.Lines(), "recorded calls must not reach the sink")

	in.ReadArchive("ball", nil)

	assert.Equal(t, []string{
		`Translate 0 0 5`,
		`Sphere 1 -1 1 360`,
	}, sink.Lines())
	assert.Equal(t, 0, capture.Count())
}

func TestArchiveFilter_ReplayIsRepeatable(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)
	in := chain.In()

	in.ArchiveBegin("ball", nil)
	in.Sphere(1, -1, 1, 360, nil)
	in.ArchiveEnd()

	in.ReadArchive("ball", nil)
	in.ReadArchive("ball", nil)

	assert.Equal(t, []string{
		`Sphere 1 -1 1 360`,
		`Sphere 1 -1 1 360`,
	}, sink.Lines(), "each reference replays the full definition")
}

func TestArchiveFilter_ParamsCopiedAtRecordTime(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)
	in := chain.In()

	params := ri.ParamList{ri.Floats("width", 0.1, 0.2)}
	in.ArchiveBegin("pts", nil)
	in.Points(params)
	in.ArchiveEnd()

	// Caller reuses its buffer after the call returns.
	params[0].Value.(ri.FloatArray)[0] = 99

	in.ReadArchive("pts", nil)
	assert.Equal(t, []string{`Points "width" [0.1 0.2]`}, sink.Lines())
}

func TestArchiveFilter_NestedArchiveCapturedLiterally(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)
	in := chain.In()

	in.ArchiveBegin("outer", nil)
	in.Translate(1, 0, 0)
	in.ArchiveBegin("inner", nil)
	in.Sphere(1, -1, 1, 360, nil)
	in.ArchiveEnd() // closes inner, recorded literally
	in.ArchiveEnd() // closes outer recording

	// While only recorded, the inner name is unknown to the registry.
	in.ReadArchive("inner", nil)
	assert.Equal(t, []string{`ReadArchive "inner"`}, sink.Lines())

	// Replaying the outer archive re-enters the chain head, so the
	// literal inner begin/end pair now defines "inner" as a side effect
	// and emits nothing for it.
	sink.Reset()
	in.ReadArchive("outer", nil)
	assert.Equal(t, []string{`Translate 1 0 0`}, sink.Lines())

	sink.Reset()
	in.ReadArchive("inner", nil)
	assert.Equal(t, []string{`Sphere 1 -1 1 360`}, sink.Lines())
	assert.Equal(t, 0, capture.Count())
}

func TestArchiveFilter_DuplicateNameFirstWins(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)
	in := chain.In()

	in.ArchiveBegin("dup", nil)
	in.Sphere(1, -1, 1, 360, nil)
	in.ArchiveEnd()

	in.ArchiveBegin("dup", nil)
	in.Translate(9, 9, 9)
	in.ArchiveEnd()

	in.ReadArchive("dup", nil)

	assert.Equal(t, []string{`Sphere 1 -1 1 360`}, sink.Lines(),
		"the earliest definition shadows later ones")
}

func TestArchiveFilter_ObjectDefineAndInstance(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)
	in := chain.In()

	in.ObjectBegin("chair")
	in.Sphere(1, -1, 1, 360, nil)
	in.ObjectEnd()

	assert.Empty(t, sink.Lines())

	in.ObjectInstance("chair")
	in.ObjectInstance("chair")

	assert.Equal(t, []string{
		`Sphere 1 -1 1 360`,
		`Sphere 1 -1 1 360`,
	}, sink.Lines())
	assert.Equal(t, 0, capture.Count())
}

func TestArchiveFilter_UnknownObjectInstance(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)

	chain.In().ObjectInstance("ghost")

	assert.Empty(t, sink.Lines(), "a bad instance call is dropped, not forwarded")
	require.Equal(t, 1, capture.Count(), "exactly one error per bad instance call")
	assert.True(t, ri.IsBadHandle(capture.Errors()[0]))
}

func TestArchiveFilter_ObjectInsideArchiveCapturedLiterally(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)
	in := chain.In()

	in.ArchiveBegin("scene", nil)
	in.ObjectBegin("chair")
	in.Sphere(1, -1, 1, 360, nil)
	in.ObjectEnd()
	in.ObjectInstance("chair")
	in.ArchiveEnd()

	// Nothing was instantiated at record time.
	in.ObjectInstance("chair")
	require.Equal(t, 1, capture.Count())
	assert.True(t, ri.IsBadHandle(capture.Errors()[0]))
	assert.Empty(t, sink.Lines())

	// Replay defines the object and then instances it.
	in.ReadArchive("scene", nil)
	assert.Equal(t, []string{`Sphere 1 -1 1 360`}, sink.Lines())
	assert.Equal(t, 1, capture.Count())
}

func TestArchiveFilter_UnmatchedEndsIgnored(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)
	in := chain.In()

	in.ArchiveEnd()
	in.ObjectEnd()

	assert.Empty(t, sink.Lines())
	assert.Equal(t, 0, capture.Count())
}

func TestArchiveFilter_ArchiveRecordDroppedWhileRecording(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture)
	in := chain.In()

	in.ArchiveRecord("comment", "kept")

	in.ArchiveBegin("a", nil)
	in.ArchiveRecord("comment", "dropped")
	in.Sphere(1, -1, 1, 360, nil)
	in.ArchiveEnd()
	in.ReadArchive("a", nil)

	assert.Equal(t, []string{
		`# kept`,
		`Sphere 1 -1 1 360`,
	}, sink.Lines(), "comments inside a definition are not part of the cached content")
}

func TestArchiveFilter_SelfReferenceHitsReplayDepthLimit(t *testing.T) {
	capture := &ri.CaptureHandler{}
	chain, sink := newArchiveChain(capture, WithMaxReplayDepth(4))
	in := chain.In()

	in.ArchiveBegin("loop", nil)
	in.ReadArchive("loop", nil)
	in.ArchiveEnd()

	in.ReadArchive("loop", nil)

	assert.Empty(t, sink.Lines())
	require.NotZero(t, capture.Count(), "recursive replay must be cut off")
	assert.True(t, ri.IsLimit(capture.Errors()[0]))
}
