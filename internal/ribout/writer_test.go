package ribout

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strattonbrazil/aqsis/internal/ri"
)

func TestWriter_SceneGolden(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.ArchiveRecord("structure", "RenderMan RIB-Structure 1.1")
	w.ArchiveRecord("comment", "simple scene")
	w.Format(640, 480, 1)
	w.Projection("perspective", ri.ParamList{ri.Float("fov", 45)})
	w.Display("out.tif", "file", "rgba", nil)
	w.PixelSamples(2, 2)
	w.FrameBegin(1)
	w.WorldBegin()
	w.AttributeBegin()
	w.Color(ri.Color{1, 0, 0})
	w.Surface("plastic", ri.ParamList{ri.Float("Ks", 0.5)})
	w.Translate(0, 0, 5)
	w.Sphere(1, -1, 1, 360, nil)
	w.AttributeEnd()
	w.PointsPolygons([]int{3}, []int{0, 1, 2},
		ri.ParamList{ri.Floats("P", 0, 0, 0, 1, 0, 0, 0, 1, 0)})
	w.WorldEnd()
	w.FrameEnd()

	require.NoError(t, w.Err())
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "scene", buf.Bytes())
}

func TestWriter_ConditionalIndentation(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.IfBegin("$pass == 1")
	w.Surface("matte", nil)
	w.Else()
	w.Surface("plastic", nil)
	w.IfEnd()

	require.NoError(t, w.Err())
	assert.Equal(t, "IfBegin \"$pass == 1\"\n"+
		"    Surface \"matte\"\n"+
		"Else\n"+
		"    Surface \"plastic\"\n"+
		"IfEnd\n", buf.String())
}

func TestWriter_QuotesAndEscapes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Declare("label", "uniform string")
	w.Attribute("identifier", ri.ParamList{ri.String("name", `say "hi"`)})

	require.NoError(t, w.Err())
	assert.Equal(t, "Declare \"label\" \"uniform string\"\n"+
		"Attribute \"identifier\" \"name\" [\"say \\\"hi\\\"\"]\n", buf.String())
}

func TestWriter_NumberFormatting(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Clipping(0.001, 100000)
	w.ShadingRate(0.25)

	require.NoError(t, w.Err())
	assert.Equal(t, "Clipping 0.001 100000\nShadingRate 0.25\n", buf.String())
}

type failWriter struct{ err error }

func (f *failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestWriter_KeepsFirstError(t *testing.T) {
	boom := errors.New("disk full")
	w := NewWriter(&failWriter{err: boom})

	w.WorldBegin()
	w.Sphere(1, -1, 1, 360, nil)
	w.WorldEnd()

	assert.Equal(t, boom, w.Err())
}
