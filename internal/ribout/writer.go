// Package ribout serializes a scene description call stream as textual
// RIB. A Writer is the usual sink at the end of a filter chain: whatever
// survives the filters comes out as a RIB document, one request per line,
// with block scopes indented.
package ribout

import (
	"io"
	"strconv"
	"strings"

	"github.com/strattonbrazil/aqsis/internal/ri"
)

// Writer is an ri.Renderer that writes each call as a RIB request.
//
// Writer keeps the first write error and drops subsequent output; check
// Err once the stream is complete. This keeps the Renderer methods free
// of error returns, which the interface requires.
type Writer struct {
	out    io.Writer
	indent int
	err    error
}

var _ ri.Renderer = (*Writer)(nil)

// NewWriter creates a Writer emitting onto out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Err returns the first error encountered while writing, if any.
func (w *Writer) Err() error { return w.err }

func (w *Writer) line(parts ...string) {
	if w.err != nil {
		return
	}
	var b strings.Builder
	for i := 0; i < w.indent; i++ {
		b.WriteString("    ")
	}
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	b.WriteByte('\n')
	_, w.err = io.WriteString(w.out, b.String())
}

// begin writes a request line and opens an indented block.
func (w *Writer) begin(parts ...string) {
	w.line(parts...)
	w.indent++
}

// end closes an indented block and writes the request line.
func (w *Writer) end(parts ...string) {
	if w.indent > 0 {
		w.indent--
	}
	w.line(parts...)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func integer(n int) string {
	return strconv.Itoa(n)
}

func quoted(s string) string {
	return strconv.Quote(s)
}

func boolean(on bool) string {
	if on {
		return "1"
	}
	return "0"
}

func floatArray(vals []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(f))
	}
	b.WriteByte(']')
	return b.String()
}

func intArray(vals []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(integer(n))
	}
	b.WriteByte(']')
	return b.String()
}

func stringArray(vals []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(quoted(s))
	}
	b.WriteByte(']')
	return b.String()
}

func matrix(m ri.Matrix) string  { return floatArray(m[:]) }
func basis(b ri.Basis) string    { return floatArray(b[:]) }
func boundArg(b ri.Bound) string { return floatArray(b[:]) }
func color(c ri.Color) string    { return floatArray(c[:]) }
func point(p ri.Point) string    { return floatArray(p[:]) }

// params flattens a ParamList into "decl" [values] token pairs.
func params(pl ri.ParamList) []string {
	out := make([]string, 0, 2*len(pl))
	for _, p := range pl {
		out = append(out, quoted(p.Decl))
		switch v := p.Value.(type) {
		case ri.FloatArray:
			out = append(out, floatArray(v))
		case ri.IntArray:
			out = append(out, intArray(v))
		case ri.StringArray:
			out = append(out, stringArray(v))
		}
	}
	return out
}

func request(name string, args ...string) []string {
	return append([]string{name}, args...)
}

func (w *Writer) Declare(name, declaration string) {
	w.line("Declare", quoted(name), quoted(declaration))
}

func (w *Writer) FrameBegin(number int) { w.begin("FrameBegin", integer(number)) }
func (w *Writer) FrameEnd()             { w.end("FrameEnd") }
func (w *Writer) WorldBegin()           { w.begin("WorldBegin") }
func (w *Writer) WorldEnd()             { w.end("WorldEnd") }

func (w *Writer) IfBegin(condition string) { w.begin("IfBegin", quoted(condition)) }

func (w *Writer) ElseIf(condition string) {
	if w.indent > 0 {
		w.indent--
	}
	w.begin("ElseIf", quoted(condition))
}

func (w *Writer) Else() {
	if w.indent > 0 {
		w.indent--
	}
	w.begin("Else")
}

func (w *Writer) IfEnd() { w.end("IfEnd") }

func (w *Writer) Format(xres, yres int, pixelAspect float64) {
	w.line("Format", integer(xres), integer(yres), num(pixelAspect))
}

func (w *Writer) FrameAspectRatio(ratio float64) { w.line("FrameAspectRatio", num(ratio)) }

func (w *Writer) ScreenWindow(left, right, bottom, top float64) {
	w.line("ScreenWindow", num(left), num(right), num(bottom), num(top))
}

func (w *Writer) CropWindow(xmin, xmax, ymin, ymax float64) {
	w.line("CropWindow", num(xmin), num(xmax), num(ymin), num(ymax))
}

func (w *Writer) Projection(name string, pl ri.ParamList) {
	w.line(append(request("Projection", quoted(name)), params(pl)...)...)
}

func (w *Writer) Clipping(near, far float64) { w.line("Clipping", num(near), num(far)) }

func (w *Writer) ClippingPlane(x, y, z, nx, ny, nz float64) {
	w.line("ClippingPlane", num(x), num(y), num(z), num(nx), num(ny), num(nz))
}

func (w *Writer) DepthOfField(fstop, focalLength, focalDistance float64) {
	w.line("DepthOfField", num(fstop), num(focalLength), num(focalDistance))
}

func (w *Writer) Shutter(openTime, closeTime float64) {
	w.line("Shutter", num(openTime), num(closeTime))
}

func (w *Writer) PixelVariance(variance float64) { w.line("PixelVariance", num(variance)) }

func (w *Writer) PixelSamples(xsamples, ysamples float64) {
	w.line("PixelSamples", num(xsamples), num(ysamples))
}

func (w *Writer) PixelFilter(name string, xwidth, ywidth float64) {
	w.line("PixelFilter", quoted(name), num(xwidth), num(ywidth))
}

func (w *Writer) Exposure(gain, gamma float64) { w.line("Exposure", num(gain), num(gamma)) }

func (w *Writer) Imager(name string, pl ri.ParamList) {
	w.line(append(request("Imager", quoted(name)), params(pl)...)...)
}

func (w *Writer) Quantize(kind string, one, min, max int, dither float64) {
	w.line("Quantize", quoted(kind), integer(one), integer(min), integer(max), num(dither))
}

func (w *Writer) Display(name, kind, mode string, pl ri.ParamList) {
	w.line(append(request("Display", quoted(name), quoted(kind), quoted(mode)), params(pl)...)...)
}

func (w *Writer) Hider(name string, pl ri.ParamList) {
	w.line(append(request("Hider", quoted(name)), params(pl)...)...)
}

func (w *Writer) ColorSamples(nRGB, RGBn []float64) {
	w.line("ColorSamples", floatArray(nRGB), floatArray(RGBn))
}

func (w *Writer) RelativeDetail(detail float64) { w.line("RelativeDetail", num(detail)) }

func (w *Writer) Option(name string, pl ri.ParamList) {
	w.line(append(request("Option", quoted(name)), params(pl)...)...)
}

func (w *Writer) AttributeBegin() { w.begin("AttributeBegin") }
func (w *Writer) AttributeEnd()   { w.end("AttributeEnd") }

func (w *Writer) Color(c ri.Color)   { w.line("Color", color(c)) }
func (w *Writer) Opacity(o ri.Color) { w.line("Opacity", color(o)) }

func (w *Writer) TextureCoordinates(s1, t1, s2, t2, s3, t3, s4, t4 float64) {
	w.line("TextureCoordinates", num(s1), num(t1), num(s2), num(t2),
		num(s3), num(t3), num(s4), num(t4))
}

func (w *Writer) LightSource(shader, name string, pl ri.ParamList) {
	w.line(append(request("LightSource", quoted(shader), quoted(name)), params(pl)...)...)
}

func (w *Writer) AreaLightSource(shader, name string, pl ri.ParamList) {
	w.line(append(request("AreaLightSource", quoted(shader), quoted(name)), params(pl)...)...)
}

func (w *Writer) Illuminate(name string, on bool) {
	w.line("Illuminate", quoted(name), boolean(on))
}

func (w *Writer) Surface(name string, pl ri.ParamList) {
	w.line(append(request("Surface", quoted(name)), params(pl)...)...)
}

func (w *Writer) Displacement(name string, pl ri.ParamList) {
	w.line(append(request("Displacement", quoted(name)), params(pl)...)...)
}

func (w *Writer) Atmosphere(name string, pl ri.ParamList) {
	w.line(append(request("Atmosphere", quoted(name)), params(pl)...)...)
}

func (w *Writer) Interior(name string, pl ri.ParamList) {
	w.line(append(request("Interior", quoted(name)), params(pl)...)...)
}

func (w *Writer) Exterior(name string, pl ri.ParamList) {
	w.line(append(request("Exterior", quoted(name)), params(pl)...)...)
}

func (w *Writer) ShaderLayer(kind, name, layer string, pl ri.ParamList) {
	w.line(append(request("ShaderLayer", quoted(kind), quoted(name), quoted(layer)), params(pl)...)...)
}

func (w *Writer) ConnectShaderLayers(kind, layer1, variable1, layer2, variable2 string) {
	w.line("ConnectShaderLayers", quoted(kind), quoted(layer1), quoted(variable1),
		quoted(layer2), quoted(variable2))
}

func (w *Writer) ShadingRate(size float64) { w.line("ShadingRate", num(size)) }

func (w *Writer) ShadingInterpolation(kind string) {
	w.line("ShadingInterpolation", quoted(kind))
}

func (w *Writer) Matte(on bool) { w.line("Matte", boolean(on)) }

func (w *Writer) Bound(b ri.Bound)  { w.line("Bound", boundArg(b)) }
func (w *Writer) Detail(b ri.Bound) { w.line("Detail", boundArg(b)) }

func (w *Writer) DetailRange(offLow, onLow, onHigh, offHigh float64) {
	w.line("DetailRange", num(offLow), num(onLow), num(onHigh), num(offHigh))
}

func (w *Writer) GeometricApproximation(kind string, value float64) {
	w.line("GeometricApproximation", quoted(kind), num(value))
}

func (w *Writer) Orientation(orientation string) { w.line("Orientation", quoted(orientation)) }
func (w *Writer) ReverseOrientation()            { w.line("ReverseOrientation") }
func (w *Writer) Sides(n int)                    { w.line("Sides", integer(n)) }

func (w *Writer) Attribute(name string, pl ri.ParamList) {
	w.line(append(request("Attribute", quoted(name)), params(pl)...)...)
}

func (w *Writer) Identity()                   { w.line("Identity") }
func (w *Writer) Transform(m ri.Matrix)       { w.line("Transform", matrix(m)) }
func (w *Writer) ConcatTransform(m ri.Matrix) { w.line("ConcatTransform", matrix(m)) }
func (w *Writer) Perspective(fov float64)     { w.line("Perspective", num(fov)) }

func (w *Writer) Translate(dx, dy, dz float64) {
	w.line("Translate", num(dx), num(dy), num(dz))
}

func (w *Writer) Rotate(angle, dx, dy, dz float64) {
	w.line("Rotate", num(angle), num(dx), num(dy), num(dz))
}

func (w *Writer) Scale(sx, sy, sz float64) {
	w.line("Scale", num(sx), num(sy), num(sz))
}

func (w *Writer) Skew(angle, dx1, dy1, dz1, dx2, dy2, dz2 float64) {
	w.line("Skew", num(angle), num(dx1), num(dy1), num(dz1), num(dx2), num(dy2), num(dz2))
}

func (w *Writer) CoordinateSystem(space string)  { w.line("CoordinateSystem", quoted(space)) }
func (w *Writer) CoordSysTransform(space string) { w.line("CoordSysTransform", quoted(space)) }
func (w *Writer) TransformBegin()                { w.begin("TransformBegin") }
func (w *Writer) TransformEnd()                  { w.end("TransformEnd") }

func (w *Writer) Resource(handle, kind string, pl ri.ParamList) {
	w.line(append(request("Resource", quoted(handle), quoted(kind)), params(pl)...)...)
}

func (w *Writer) ResourceBegin() { w.begin("ResourceBegin") }
func (w *Writer) ResourceEnd()   { w.end("ResourceEnd") }

func (w *Writer) Polygon(pl ri.ParamList) {
	w.line(append(request("Polygon"), params(pl)...)...)
}

func (w *Writer) GeneralPolygon(nverts []int, pl ri.ParamList) {
	w.line(append(request("GeneralPolygon", intArray(nverts)), params(pl)...)...)
}

func (w *Writer) PointsPolygons(nverts, verts []int, pl ri.ParamList) {
	w.line(append(request("PointsPolygons", intArray(nverts), intArray(verts)), params(pl)...)...)
}

func (w *Writer) PointsGeneralPolygons(nloops, nverts, verts []int, pl ri.ParamList) {
	w.line(append(request("PointsGeneralPolygons",
		intArray(nloops), intArray(nverts), intArray(verts)), params(pl)...)...)
}

func (w *Writer) Basis(u ri.Basis, ustep int, v ri.Basis, vstep int) {
	w.line("Basis", basis(u), integer(ustep), basis(v), integer(vstep))
}

func (w *Writer) Patch(kind string, pl ri.ParamList) {
	w.line(append(request("Patch", quoted(kind)), params(pl)...)...)
}

func (w *Writer) PatchMesh(kind string, nu int, uwrap string, nv int, vwrap string, pl ri.ParamList) {
	w.line(append(request("PatchMesh", quoted(kind), integer(nu), quoted(uwrap),
		integer(nv), quoted(vwrap)), params(pl)...)...)
}

func (w *Writer) NuPatch(nu, uorder int, uknot []float64, umin, umax float64,
	nv, vorder int, vknot []float64, vmin, vmax float64, pl ri.ParamList) {
	w.line(append(request("NuPatch",
		integer(nu), integer(uorder), floatArray(uknot), num(umin), num(umax),
		integer(nv), integer(vorder), floatArray(vknot), num(vmin), num(vmax)),
		params(pl)...)...)
}

func (w *Writer) TrimCurve(ncurves, order []int, knot, min, max []float64, n []int, u, v, vw []float64) {
	w.line("TrimCurve", intArray(ncurves), intArray(order), floatArray(knot),
		floatArray(min), floatArray(max), intArray(n),
		floatArray(u), floatArray(v), floatArray(vw))
}

func (w *Writer) SubdivisionMesh(scheme string, nvertices, vertices []int, tags []string,
	nargs, intargs []int, floatargs []float64, pl ri.ParamList) {
	w.line(append(request("SubdivisionMesh", quoted(scheme),
		intArray(nvertices), intArray(vertices), stringArray(tags),
		intArray(nargs), intArray(intargs), floatArray(floatargs)), params(pl)...)...)
}

func (w *Writer) Sphere(radius, zmin, zmax, thetamax float64, pl ri.ParamList) {
	w.line(append(request("Sphere", num(radius), num(zmin), num(zmax), num(thetamax)),
		params(pl)...)...)
}

func (w *Writer) Cone(height, radius, thetamax float64, pl ri.ParamList) {
	w.line(append(request("Cone", num(height), num(radius), num(thetamax)), params(pl)...)...)
}

func (w *Writer) Cylinder(radius, zmin, zmax, thetamax float64, pl ri.ParamList) {
	w.line(append(request("Cylinder", num(radius), num(zmin), num(zmax), num(thetamax)),
		params(pl)...)...)
}

func (w *Writer) Hyperboloid(point1, point2 ri.Point, thetamax float64, pl ri.ParamList) {
	w.line(append(request("Hyperboloid", point(point1), point(point2), num(thetamax)),
		params(pl)...)...)
}

func (w *Writer) Paraboloid(rmax, zmin, zmax, thetamax float64, pl ri.ParamList) {
	w.line(append(request("Paraboloid", num(rmax), num(zmin), num(zmax), num(thetamax)),
		params(pl)...)...)
}

func (w *Writer) Disk(height, radius, thetamax float64, pl ri.ParamList) {
	w.line(append(request("Disk", num(height), num(radius), num(thetamax)), params(pl)...)...)
}

func (w *Writer) Torus(majorrad, minorrad, phimin, phimax, thetamax float64, pl ri.ParamList) {
	w.line(append(request("Torus", num(majorrad), num(minorrad), num(phimin),
		num(phimax), num(thetamax)), params(pl)...)...)
}

func (w *Writer) Points(pl ri.ParamList) {
	w.line(append(request("Points"), params(pl)...)...)
}

func (w *Writer) Curves(kind string, nvertices []int, wrap string, pl ri.ParamList) {
	w.line(append(request("Curves", quoted(kind), intArray(nvertices), quoted(wrap)),
		params(pl)...)...)
}

func (w *Writer) Blobby(nleaf int, code []int, floats []float64, strs []string, pl ri.ParamList) {
	w.line(append(request("Blobby", integer(nleaf), intArray(code), floatArray(floats),
		stringArray(strs)), params(pl)...)...)
}

func (w *Writer) Procedural(name string, args []string, b ri.Bound) {
	w.line("Procedural", quoted(name), stringArray(args), boundArg(b))
}

func (w *Writer) Geometry(kind string, pl ri.ParamList) {
	w.line(append(request("Geometry", quoted(kind)), params(pl)...)...)
}

func (w *Writer) SolidBegin(kind string) { w.begin("SolidBegin", quoted(kind)) }
func (w *Writer) SolidEnd()              { w.end("SolidEnd") }

func (w *Writer) MotionBegin(times []float64) { w.begin("MotionBegin", floatArray(times)) }
func (w *Writer) MotionEnd()                  { w.end("MotionEnd") }

func (w *Writer) MakeTexture(imagefile, texturefile, swrap, twrap, filter string,
	swidth, twidth float64, pl ri.ParamList) {
	w.line(append(request("MakeTexture", quoted(imagefile), quoted(texturefile),
		quoted(swrap), quoted(twrap), quoted(filter), num(swidth), num(twidth)),
		params(pl)...)...)
}

func (w *Writer) MakeLatLongEnvironment(imagefile, reflfile, filter string,
	swidth, twidth float64, pl ri.ParamList) {
	w.line(append(request("MakeLatLongEnvironment", quoted(imagefile), quoted(reflfile),
		quoted(filter), num(swidth), num(twidth)), params(pl)...)...)
}

func (w *Writer) MakeCubeFaceEnvironment(px, nx, py, ny, pz, nz, reflfile string, fov float64,
	filter string, swidth, twidth float64, pl ri.ParamList) {
	w.line(append(request("MakeCubeFaceEnvironment", quoted(px), quoted(nx), quoted(py),
		quoted(ny), quoted(pz), quoted(nz), quoted(reflfile), num(fov),
		quoted(filter), num(swidth), num(twidth)), params(pl)...)...)
}

func (w *Writer) MakeShadow(picfile, shadowfile string, pl ri.ParamList) {
	w.line(append(request("MakeShadow", quoted(picfile), quoted(shadowfile)), params(pl)...)...)
}

func (w *Writer) MakeOcclusion(picfiles []string, shadowfile string, pl ri.ParamList) {
	w.line(append(request("MakeOcclusion", stringArray(picfiles), quoted(shadowfile)),
		params(pl)...)...)
}

// ArchiveRecord writes comments and structural hints back out verbatim.
func (w *Writer) ArchiveRecord(kind, text string) {
	switch kind {
	case "comment":
		w.line("# " + text)
	case "structure":
		w.line("##" + text)
	default:
		w.line(text)
	}
}

func (w *Writer) ArchiveBegin(name string, pl ri.ParamList) {
	w.begin(append(request("ArchiveBegin", quoted(name)), params(pl)...)...)
}

func (w *Writer) ArchiveEnd() { w.end("ArchiveEnd") }

func (w *Writer) ReadArchive(name string, pl ri.ParamList) {
	w.line(append(request("ReadArchive", quoted(name)), params(pl)...)...)
}

func (w *Writer) ObjectBegin(name string)    { w.begin("ObjectBegin", quoted(name)) }
func (w *Writer) ObjectEnd()                 { w.end("ObjectEnd") }
func (w *Writer) ObjectInstance(name string) { w.line("ObjectInstance", quoted(name)) }

func (w *Writer) ErrorHandler(name string) { w.line("ErrorHandler", quoted(name)) }
