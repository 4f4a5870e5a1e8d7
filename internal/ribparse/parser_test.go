package ribparse

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strattonbrazil/aqsis/internal/ri"
	"github.com/strattonbrazil/aqsis/internal/testutil"
)

// parse runs src through the parser into a recorder and returns the
// canonical lines plus the captured stream errors.
func parse(t *testing.T, src string) ([]string, *ri.CaptureHandler, error) {
	t.Helper()
	rec := testutil.NewRecorder()
	capture := &ri.CaptureHandler{}
	err := Parse(strings.NewReader(src), rec,
		WithErrorHandler(capture), WithFileName("test.rib"))
	return rec.Lines(), capture, err
}

func TestParse_SimpleScene(t *testing.T) {
	lines, capture, err := parse(t, `
Format 640 480 1
Projection "perspective" "fov" 45
FrameBegin 1
WorldBegin
AttributeBegin
Color [1 0 0]
Translate 0 0 5
Sphere 1 -1 1 360
AttributeEnd
WorldEnd
FrameEnd
`)
	require.NoError(t, err)
	assert.Equal(t, 0, capture.Count())
	assert.Equal(t, []string{
		`Format 640 480 1`,
		`Projection "perspective" "fov" [45]`,
		`FrameBegin 1`,
		`WorldBegin`,
		`AttributeBegin`,
		`Color [1 0 0]`,
		`Translate 0 0 5`,
		`Sphere 1 -1 1 360`,
		`AttributeEnd`,
		`WorldEnd`,
		`FrameEnd`,
	}, lines)
}

func TestParse_CommentsBecomeArchiveRecords(t *testing.T) {
	lines, _, err := parse(t, `##RenderMan RIB-Structure 1.1
# a plain comment
Sphere 1 -1 1 360
`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`##RenderMan RIB-Structure 1.1`,
		`# a plain comment`,
		`Sphere 1 -1 1 360`,
	}, lines)
}

func TestParse_ParamValueTyping(t *testing.T) {
	// All-integer lexemes make an int array; one float anywhere makes the
	// whole value a float array.
	lines, _, err := parse(t,
		`Option "limits" "bucketsize" [16 16] "gridsize" 0.5 "mixed" [1 2.5 3]`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`Option "limits" "bucketsize" [16 16] "gridsize" [0.5] "mixed" [1 2.5 3]`,
	}, lines)
}

func TestParse_BareAndBracketedTriples(t *testing.T) {
	lines, _, err := parse(t, `
Color 1 0 0
Color [0 1 0]
Opacity 0.5 0.5 0.5
`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`Color [1 0 0]`,
		`Color [0 1 0]`,
		`Opacity [0.5 0.5 0.5]`,
	}, lines)
}

func TestParse_BasisByNameMatchesBasisByMatrix(t *testing.T) {
	byName := testutil.NewRecorder()
	err := Parse(strings.NewReader(`Basis "bezier" 3 "b-spline" 1`), byName)
	require.NoError(t, err)

	direct := testutil.NewRecorder()
	direct.Basis(ri.BezierBasis, 3, ri.BSplineBasis, 1)

	assert.Equal(t, direct.Text(), byName.Text())
}

func TestParse_StringEscapes(t *testing.T) {
	lines, _, err := parse(t, `Surface "two\nlines" "note" ["a \"quoted\" word"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`Surface "two\nlines" "note" ["a \"quoted\" word"]`,
	}, lines)
}

func TestParse_SubdivisionMeshShortForm(t *testing.T) {
	lines, _, err := parse(t,
		`SubdivisionMesh "catmull-clark" [4] [0 1 2 3] "P" [0 0 0 1 0 0 1 1 0 0 1 0]`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`SubdivisionMesh "catmull-clark" [4] [0 1 2 3] [] [] [] [] "P" [0 0 0 1 0 0 1 1 0 0 1 0]`,
	}, lines)
}

func TestParse_SubdivisionMeshFullForm(t *testing.T) {
	lines, _, err := parse(t,
		`SubdivisionMesh "catmull-clark" [4] [0 1 2 3] ["interpolateboundary"] [0 0] [] []`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`SubdivisionMesh "catmull-clark" [4] [0 1 2 3] ["interpolateboundary"] [0 0] [] []`,
	}, lines)
}

func TestParse_ArchiveAndObjectRequests(t *testing.T) {
	lines, _, err := parse(t, `
ArchiveBegin "ball"
Sphere 1 -1 1 360
ArchiveEnd
ReadArchive "ball"
ObjectBegin "chair"
ObjectEnd
ObjectInstance "chair"
`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`ArchiveBegin "ball"`,
		`Sphere 1 -1 1 360`,
		`ArchiveEnd`,
		`ReadArchive "ball"`,
		`ObjectBegin "chair"`,
		`ObjectEnd`,
		`ObjectInstance "chair"`,
	}, lines)
}

func TestParse_UnknownRequestResyncs(t *testing.T) {
	lines, capture, err := parse(t, `
Bogus 1 2 "three"
Sphere 1 -1 1 360
`)
	require.Error(t, err, "stream errors surface in the summary error")
	require.Equal(t, 1, capture.Count())
	e := capture.Errors()[0]
	assert.Equal(t, ri.ErrBadToken, e.Code)
	assert.Equal(t, "test.rib", e.File)
	assert.Equal(t, 2, e.Line)
	assert.Equal(t, []string{`Sphere 1 -1 1 360`}, lines,
		"parsing resumes at the next request")
}

func TestParse_MalformedArgumentsResync(t *testing.T) {
	lines, capture, err := parse(t, `
Sphere 1 -1 "oops" 360
Translate 1 2 3
`)
	require.Error(t, err)
	require.Equal(t, 1, capture.Count())
	assert.Equal(t, ri.ErrSyntax, capture.Errors()[0].Code)
	assert.Equal(t, []string{`Translate 1 2 3`}, lines)
}

type failReader struct{ err error }

func (r *failReader) Read(p []byte) (int, error) { return 0, r.err }

func TestParse_ReadFailure(t *testing.T) {
	boom := errors.New("tape jam")
	err := Parse(&failReader{err: boom}, testutil.NewRecorder())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
