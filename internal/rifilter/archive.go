package rifilter

import (
	"slices"

	"github.com/strattonbrazil/aqsis/internal/ri"
	"github.com/strattonbrazil/aqsis/internal/ricache"
)

// DefaultMaxReplayDepth bounds recursive replay. An archive that reads
// itself (directly or through a cycle of archives) would otherwise recurse
// without limit; there is no cycle detection in this layer.
const DefaultMaxReplayDepth = 64

// ArchiveFilter caches inline archives and object instances.
//
// Every call between ArchiveBegin and the matching ArchiveEnd is recorded
// verbatim into a named stream instead of being forwarded. When a
// ReadArchive call with a recorded name is processed, the stream's
// contents are replayed into the first stage of the whole chain, so that
// all stages (this one included) reprocess them as if the archive had
// been inlined at the point of reference. Inline archives may be
// arbitrarily nested; only the outermost pair delimits the recording, and
// inner begin/end pairs are captured literally.
//
// Object instancing works the same way through a second registry: an
// ObjectBegin outside any archive opens an object definition, and
// ObjectInstance replays it. Inside an archive, object calls are captured
// literally and never instantiated at record time.
//
// Names are resolved first-match: defining a second archive or object
// with an existing name permanently shadows nothing and is shadowed by
// the earlier definition.
type ArchiveFilter struct {
	svc  Services
	next ri.Renderer

	archives ricache.Registry
	objects  ricache.Registry

	// Scope state: at most one active recording at a time. nested counts
	// archive begin/end pairs inside an archive recording; inObject is
	// true only while defining an object instance.
	active   *ricache.Stream
	nested   int
	inObject bool

	replayDepth    int
	maxReplayDepth int
}

var _ ri.Renderer = (*ArchiveFilter)(nil)

// ArchiveOption configures an ArchiveFilter.
type ArchiveOption func(*ArchiveFilter)

// WithMaxReplayDepth sets the replay recursion limit.
// Default: DefaultMaxReplayDepth.
func WithMaxReplayDepth(depth int) ArchiveOption {
	return func(f *ArchiveFilter) {
		f.maxReplayDepth = depth
	}
}

// NewArchiveFilter creates the filter bound to a chain and its next stage.
func NewArchiveFilter(svc Services, next ri.Renderer, opts ...ArchiveOption) *ArchiveFilter {
	f := &ArchiveFilter{
		svc:            svc,
		next:           next,
		maxReplayDepth: DefaultMaxReplayDepth,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Archive returns a chain constructor for the filter.
func Archive(opts ...ArchiveOption) Constructor {
	return func(svc Services, next ri.Renderer) ri.Renderer {
		return NewArchiveFilter(svc, next, opts...)
	}
}

// recording reports whether a definition scope is currently open.
func (f *ArchiveFilter) recording() bool { return f.active != nil }

// emit applies the uniform pass-through rule: append the call to the
// active stream while recording, otherwise invoke it on the next stage.
// The closure must capture copies of any slice arguments.
func (f *ArchiveFilter) emit(name string, invoke func(ri.Renderer)) {
	if f.active != nil {
		f.active.Append(ricache.NewRecord(name, invoke))
		return
	}
	invoke(f.next)
}

// replayStream replays a cached stream into the head of the chain,
// guarding against unbounded self-referential replay.
func (f *ArchiveFilter) replayStream(s *ricache.Stream) {
	if f.replayDepth >= f.maxReplayDepth {
		f.svc.ErrorHandler().HandleError(ri.Errorf(ri.ErrLimit,
			"replay depth limit (%d) exceeded for %q; recursive archive reference?",
			f.maxReplayDepth, s.Name()))
		return
	}
	f.replayDepth++
	s.Replay(f.svc.FirstFilter())
	f.replayDepth--
}

// ArchiveBegin opens a new archive recording, or records the begin call
// literally when a recording is already active.
func (f *ArchiveFilter) ArchiveBegin(name string, params ri.ParamList) {
	if f.active != nil {
		if !f.inObject {
			f.nested++
		}
		p := params.Clone()
		f.active.Append(ricache.NewRecord("ArchiveBegin", func(r ri.Renderer) {
			r.ArchiveBegin(name, p)
		}))
		return
	}
	s := ricache.NewStream(name)
	f.archives.Add(s)
	f.active = s
	f.nested = 0
}

// ArchiveEnd closes the outermost archive recording. Inner ends are
// recorded literally; an ArchiveEnd with no recording open is a scoping
// error and is silently ignored.
func (f *ArchiveFilter) ArchiveEnd() {
	switch {
	case f.active == nil:
		// Unmatched end; tolerate it.
	case f.inObject:
		f.active.Append(ricache.NewRecord("ArchiveEnd", func(r ri.Renderer) {
			r.ArchiveEnd()
		}))
	case f.nested > 0:
		f.nested--
		f.active.Append(ricache.NewRecord("ArchiveEnd", func(r ri.Renderer) {
			r.ArchiveEnd()
		}))
	default:
		f.active = nil
	}
}

// ReadArchive replays a cached archive into the chain head. Unknown names
// are not an error here: the archive is probably on disk, so the call is
// forwarded for subsequent stages to resolve.
func (f *ArchiveFilter) ReadArchive(name string, params ri.ParamList) {
	if f.active != nil {
		p := params.Clone()
		f.active.Append(ricache.NewRecord("ReadArchive", func(r ri.Renderer) {
			r.ReadArchive(name, p)
		}))
		return
	}
	if s := f.archives.Lookup(name); s != nil {
		f.replayStream(s)
		return
	}
	f.next.ReadArchive(name, params)
}

// ObjectBegin opens a new object definition. Inside an archive the call is
// cached literally, never instantiated at record time.
func (f *ArchiveFilter) ObjectBegin(name string) {
	if f.active != nil {
		f.active.Append(ricache.NewRecord("ObjectBegin", func(r ri.Renderer) {
			r.ObjectBegin(name)
		}))
		return
	}
	s := ricache.NewStream(name)
	f.objects.Add(s)
	f.active = s
	f.inObject = true
}

// ObjectEnd closes an open object definition. Inside an archive it is
// cached; with no recording open it is a scoping error and is ignored.
func (f *ArchiveFilter) ObjectEnd() {
	switch {
	case f.active != nil && !f.inObject:
		f.active.Append(ricache.NewRecord("ObjectEnd", func(r ri.Renderer) {
			r.ObjectEnd()
		}))
	case f.active != nil:
		f.inObject = false
		f.active = nil
	}
}

// ObjectInstance replays a cached object definition into the chain head.
// An unknown name is a recoverable bad handle error; nothing is forwarded.
func (f *ArchiveFilter) ObjectInstance(name string) {
	if f.active != nil {
		f.active.Append(ricache.NewRecord("ObjectInstance", func(r ri.Renderer) {
			r.ObjectInstance(name)
		}))
		return
	}
	if s := f.objects.Lookup(name); s != nil {
		f.replayStream(s)
		return
	}
	f.svc.ErrorHandler().HandleError(ri.Errorf(ri.ErrBadHandle,
		"bad object name %q", name))
}

// ArchiveRecord is forwarded while idle and dropped while recording.
func (f *ArchiveFilter) ArchiveRecord(kind, text string) {
	if f.active == nil {
		f.next.ArchiveRecord(kind, text)
	}
}

// Everything below is the uniform pass-through rule: record while a
// definition scope is open, forward unchanged otherwise. Slice and
// ParamList arguments are copied at capture time so records stay valid
// however the caller reuses its buffers.

func (f *ArchiveFilter) Declare(name, declaration string) {
	f.emit("Declare", func(r ri.Renderer) { r.Declare(name, declaration) })
}

func (f *ArchiveFilter) FrameBegin(number int) {
	f.emit("FrameBegin", func(r ri.Renderer) { r.FrameBegin(number) })
}

func (f *ArchiveFilter) FrameEnd() {
	f.emit("FrameEnd", func(r ri.Renderer) { r.FrameEnd() })
}

func (f *ArchiveFilter) WorldBegin() {
	f.emit("WorldBegin", func(r ri.Renderer) { r.WorldBegin() })
}

func (f *ArchiveFilter) WorldEnd() {
	f.emit("WorldEnd", func(r ri.Renderer) { r.WorldEnd() })
}

func (f *ArchiveFilter) IfBegin(condition string) {
	f.emit("IfBegin", func(r ri.Renderer) { r.IfBegin(condition) })
}

func (f *ArchiveFilter) ElseIf(condition string) {
	f.emit("ElseIf", func(r ri.Renderer) { r.ElseIf(condition) })
}

func (f *ArchiveFilter) Else() {
	f.emit("Else", func(r ri.Renderer) { r.Else() })
}

func (f *ArchiveFilter) IfEnd() {
	f.emit("IfEnd", func(r ri.Renderer) { r.IfEnd() })
}

func (f *ArchiveFilter) Format(xres, yres int, pixelAspect float64) {
	f.emit("Format", func(r ri.Renderer) { r.Format(xres, yres, pixelAspect) })
}

func (f *ArchiveFilter) FrameAspectRatio(ratio float64) {
	f.emit("FrameAspectRatio", func(r ri.Renderer) { r.FrameAspectRatio(ratio) })
}

func (f *ArchiveFilter) ScreenWindow(left, right, bottom, top float64) {
	f.emit("ScreenWindow", func(r ri.Renderer) { r.ScreenWindow(left, right, bottom, top) })
}

func (f *ArchiveFilter) CropWindow(xmin, xmax, ymin, ymax float64) {
	f.emit("CropWindow", func(r ri.Renderer) { r.CropWindow(xmin, xmax, ymin, ymax) })
}

func (f *ArchiveFilter) Projection(name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Projection", func(r ri.Renderer) { r.Projection(name, p) })
}

func (f *ArchiveFilter) Clipping(near, far float64) {
	f.emit("Clipping", func(r ri.Renderer) { r.Clipping(near, far) })
}

func (f *ArchiveFilter) ClippingPlane(x, y, z, nx, ny, nz float64) {
	f.emit("ClippingPlane", func(r ri.Renderer) { r.ClippingPlane(x, y, z, nx, ny, nz) })
}

func (f *ArchiveFilter) DepthOfField(fstop, focalLength, focalDistance float64) {
	f.emit("DepthOfField", func(r ri.Renderer) { r.DepthOfField(fstop, focalLength, focalDistance) })
}

func (f *ArchiveFilter) Shutter(openTime, closeTime float64) {
	f.emit("Shutter", func(r ri.Renderer) { r.Shutter(openTime, closeTime) })
}

func (f *ArchiveFilter) PixelVariance(variance float64) {
	f.emit("PixelVariance", func(r ri.Renderer) { r.PixelVariance(variance) })
}

func (f *ArchiveFilter) PixelSamples(xsamples, ysamples float64) {
	f.emit("PixelSamples", func(r ri.Renderer) { r.PixelSamples(xsamples, ysamples) })
}

func (f *ArchiveFilter) PixelFilter(name string, xwidth, ywidth float64) {
	f.emit("PixelFilter", func(r ri.Renderer) { r.PixelFilter(name, xwidth, ywidth) })
}

func (f *ArchiveFilter) Exposure(gain, gamma float64) {
	f.emit("Exposure", func(r ri.Renderer) { r.Exposure(gain, gamma) })
}

func (f *ArchiveFilter) Imager(name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Imager", func(r ri.Renderer) { r.Imager(name, p) })
}

func (f *ArchiveFilter) Quantize(kind string, one, min, max int, dither float64) {
	f.emit("Quantize", func(r ri.Renderer) { r.Quantize(kind, one, min, max, dither) })
}

func (f *ArchiveFilter) Display(name, kind, mode string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Display", func(r ri.Renderer) { r.Display(name, kind, mode, p) })
}

func (f *ArchiveFilter) Hider(name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Hider", func(r ri.Renderer) { r.Hider(name, p) })
}

func (f *ArchiveFilter) ColorSamples(nRGB, RGBn []float64) {
	a, b := slices.Clone(nRGB), slices.Clone(RGBn)
	f.emit("ColorSamples", func(r ri.Renderer) { r.ColorSamples(a, b) })
}

func (f *ArchiveFilter) RelativeDetail(detail float64) {
	f.emit("RelativeDetail", func(r ri.Renderer) { r.RelativeDetail(detail) })
}

func (f *ArchiveFilter) Option(name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Option", func(r ri.Renderer) { r.Option(name, p) })
}

func (f *ArchiveFilter) AttributeBegin() {
	f.emit("AttributeBegin", func(r ri.Renderer) { r.AttributeBegin() })
}

func (f *ArchiveFilter) AttributeEnd() {
	f.emit("AttributeEnd", func(r ri.Renderer) { r.AttributeEnd() })
}

func (f *ArchiveFilter) Color(c ri.Color) {
	f.emit("Color", func(r ri.Renderer) { r.Color(c) })
}

func (f *ArchiveFilter) Opacity(o ri.Color) {
	f.emit("Opacity", func(r ri.Renderer) { r.Opacity(o) })
}

func (f *ArchiveFilter) TextureCoordinates(s1, t1, s2, t2, s3, t3, s4, t4 float64) {
	f.emit("TextureCoordinates", func(r ri.Renderer) {
		r.TextureCoordinates(s1, t1, s2, t2, s3, t3, s4, t4)
	})
}

func (f *ArchiveFilter) LightSource(shader, name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("LightSource", func(r ri.Renderer) { r.LightSource(shader, name, p) })
}

func (f *ArchiveFilter) AreaLightSource(shader, name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("AreaLightSource", func(r ri.Renderer) { r.AreaLightSource(shader, name, p) })
}

func (f *ArchiveFilter) Illuminate(name string, on bool) {
	f.emit("Illuminate", func(r ri.Renderer) { r.Illuminate(name, on) })
}

func (f *ArchiveFilter) Surface(name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Surface", func(r ri.Renderer) { r.Surface(name, p) })
}

func (f *ArchiveFilter) Displacement(name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Displacement", func(r ri.Renderer) { r.Displacement(name, p) })
}

func (f *ArchiveFilter) Atmosphere(name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Atmosphere", func(r ri.Renderer) { r.Atmosphere(name, p) })
}

func (f *ArchiveFilter) Interior(name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Interior", func(r ri.Renderer) { r.Interior(name, p) })
}

func (f *ArchiveFilter) Exterior(name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Exterior", func(r ri.Renderer) { r.Exterior(name, p) })
}

func (f *ArchiveFilter) ShaderLayer(kind, name, layer string, params ri.ParamList) {
	p := params.Clone()
	f.emit("ShaderLayer", func(r ri.Renderer) { r.ShaderLayer(kind, name, layer, p) })
}

func (f *ArchiveFilter) ConnectShaderLayers(kind, layer1, variable1, layer2, variable2 string) {
	f.emit("ConnectShaderLayers", func(r ri.Renderer) {
		r.ConnectShaderLayers(kind, layer1, variable1, layer2, variable2)
	})
}

func (f *ArchiveFilter) ShadingRate(size float64) {
	f.emit("ShadingRate", func(r ri.Renderer) { r.ShadingRate(size) })
}

func (f *ArchiveFilter) ShadingInterpolation(kind string) {
	f.emit("ShadingInterpolation", func(r ri.Renderer) { r.ShadingInterpolation(kind) })
}

func (f *ArchiveFilter) Matte(on bool) {
	f.emit("Matte", func(r ri.Renderer) { r.Matte(on) })
}

func (f *ArchiveFilter) Bound(b ri.Bound) {
	f.emit("Bound", func(r ri.Renderer) { r.Bound(b) })
}

func (f *ArchiveFilter) Detail(b ri.Bound) {
	f.emit("Detail", func(r ri.Renderer) { r.Detail(b) })
}

func (f *ArchiveFilter) DetailRange(offLow, onLow, onHigh, offHigh float64) {
	f.emit("DetailRange", func(r ri.Renderer) { r.DetailRange(offLow, onLow, onHigh, offHigh) })
}

func (f *ArchiveFilter) GeometricApproximation(kind string, value float64) {
	f.emit("GeometricApproximation", func(r ri.Renderer) { r.GeometricApproximation(kind, value) })
}

func (f *ArchiveFilter) Orientation(orientation string) {
	f.emit("Orientation", func(r ri.Renderer) { r.Orientation(orientation) })
}

func (f *ArchiveFilter) ReverseOrientation() {
	f.emit("ReverseOrientation", func(r ri.Renderer) { r.ReverseOrientation() })
}

func (f *ArchiveFilter) Sides(n int) {
	f.emit("Sides", func(r ri.Renderer) { r.Sides(n) })
}

func (f *ArchiveFilter) Attribute(name string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Attribute", func(r ri.Renderer) { r.Attribute(name, p) })
}

func (f *ArchiveFilter) Identity() {
	f.emit("Identity", func(r ri.Renderer) { r.Identity() })
}

func (f *ArchiveFilter) Transform(m ri.Matrix) {
	f.emit("Transform", func(r ri.Renderer) { r.Transform(m) })
}

func (f *ArchiveFilter) ConcatTransform(m ri.Matrix) {
	f.emit("ConcatTransform", func(r ri.Renderer) { r.ConcatTransform(m) })
}

func (f *ArchiveFilter) Perspective(fov float64) {
	f.emit("Perspective", func(r ri.Renderer) { r.Perspective(fov) })
}

func (f *ArchiveFilter) Translate(dx, dy, dz float64) {
	f.emit("Translate", func(r ri.Renderer) { r.Translate(dx, dy, dz) })
}

func (f *ArchiveFilter) Rotate(angle, dx, dy, dz float64) {
	f.emit("Rotate", func(r ri.Renderer) { r.Rotate(angle, dx, dy, dz) })
}

func (f *ArchiveFilter) Scale(sx, sy, sz float64) {
	f.emit("Scale", func(r ri.Renderer) { r.Scale(sx, sy, sz) })
}

func (f *ArchiveFilter) Skew(angle, dx1, dy1, dz1, dx2, dy2, dz2 float64) {
	f.emit("Skew", func(r ri.Renderer) { r.Skew(angle, dx1, dy1, dz1, dx2, dy2, dz2) })
}

func (f *ArchiveFilter) CoordinateSystem(space string) {
	f.emit("CoordinateSystem", func(r ri.Renderer) { r.CoordinateSystem(space) })
}

func (f *ArchiveFilter) CoordSysTransform(space string) {
	f.emit("CoordSysTransform", func(r ri.Renderer) { r.CoordSysTransform(space) })
}

func (f *ArchiveFilter) TransformBegin() {
	f.emit("TransformBegin", func(r ri.Renderer) { r.TransformBegin() })
}

func (f *ArchiveFilter) TransformEnd() {
	f.emit("TransformEnd", func(r ri.Renderer) { r.TransformEnd() })
}

func (f *ArchiveFilter) Resource(handle, kind string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Resource", func(r ri.Renderer) { r.Resource(handle, kind, p) })
}

func (f *ArchiveFilter) ResourceBegin() {
	f.emit("ResourceBegin", func(r ri.Renderer) { r.ResourceBegin() })
}

func (f *ArchiveFilter) ResourceEnd() {
	f.emit("ResourceEnd", func(r ri.Renderer) { r.ResourceEnd() })
}

func (f *ArchiveFilter) Polygon(params ri.ParamList) {
	p := params.Clone()
	f.emit("Polygon", func(r ri.Renderer) { r.Polygon(p) })
}

func (f *ArchiveFilter) GeneralPolygon(nverts []int, params ri.ParamList) {
	nv, p := slices.Clone(nverts), params.Clone()
	f.emit("GeneralPolygon", func(r ri.Renderer) { r.GeneralPolygon(nv, p) })
}

func (f *ArchiveFilter) PointsPolygons(nverts, verts []int, params ri.ParamList) {
	nv, vs, p := slices.Clone(nverts), slices.Clone(verts), params.Clone()
	f.emit("PointsPolygons", func(r ri.Renderer) { r.PointsPolygons(nv, vs, p) })
}

func (f *ArchiveFilter) PointsGeneralPolygons(nloops, nverts, verts []int, params ri.ParamList) {
	nl, nv, vs, p := slices.Clone(nloops), slices.Clone(nverts), slices.Clone(verts), params.Clone()
	f.emit("PointsGeneralPolygons", func(r ri.Renderer) { r.PointsGeneralPolygons(nl, nv, vs, p) })
}

func (f *ArchiveFilter) Basis(u ri.Basis, ustep int, v ri.Basis, vstep int) {
	f.emit("Basis", func(r ri.Renderer) { r.Basis(u, ustep, v, vstep) })
}

func (f *ArchiveFilter) Patch(kind string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Patch", func(r ri.Renderer) { r.Patch(kind, p) })
}

func (f *ArchiveFilter) PatchMesh(kind string, nu int, uwrap string, nv int, vwrap string, params ri.ParamList) {
	p := params.Clone()
	f.emit("PatchMesh", func(r ri.Renderer) { r.PatchMesh(kind, nu, uwrap, nv, vwrap, p) })
}

func (f *ArchiveFilter) NuPatch(nu, uorder int, uknot []float64, umin, umax float64,
	nv, vorder int, vknot []float64, vmin, vmax float64, params ri.ParamList) {
	uk, vk, p := slices.Clone(uknot), slices.Clone(vknot), params.Clone()
	f.emit("NuPatch", func(r ri.Renderer) {
		r.NuPatch(nu, uorder, uk, umin, umax, nv, vorder, vk, vmin, vmax, p)
	})
}

func (f *ArchiveFilter) TrimCurve(ncurves, order []int, knot, min, max []float64, n []int, u, v, w []float64) {
	nc, or := slices.Clone(ncurves), slices.Clone(order)
	kn, mn, mx := slices.Clone(knot), slices.Clone(min), slices.Clone(max)
	nn := slices.Clone(n)
	uu, vv, ww := slices.Clone(u), slices.Clone(v), slices.Clone(w)
	f.emit("TrimCurve", func(r ri.Renderer) { r.TrimCurve(nc, or, kn, mn, mx, nn, uu, vv, ww) })
}

func (f *ArchiveFilter) SubdivisionMesh(scheme string, nvertices, vertices []int, tags []string,
	nargs, intargs []int, floatargs []float64, params ri.ParamList) {
	nv, vs := slices.Clone(nvertices), slices.Clone(vertices)
	tg := slices.Clone(tags)
	na, ia := slices.Clone(nargs), slices.Clone(intargs)
	fa, p := slices.Clone(floatargs), params.Clone()
	f.emit("SubdivisionMesh", func(r ri.Renderer) {
		r.SubdivisionMesh(scheme, nv, vs, tg, na, ia, fa, p)
	})
}

func (f *ArchiveFilter) Sphere(radius, zmin, zmax, thetamax float64, params ri.ParamList) {
	p := params.Clone()
	f.emit("Sphere", func(r ri.Renderer) { r.Sphere(radius, zmin, zmax, thetamax, p) })
}

func (f *ArchiveFilter) Cone(height, radius, thetamax float64, params ri.ParamList) {
	p := params.Clone()
	f.emit("Cone", func(r ri.Renderer) { r.Cone(height, radius, thetamax, p) })
}

func (f *ArchiveFilter) Cylinder(radius, zmin, zmax, thetamax float64, params ri.ParamList) {
	p := params.Clone()
	f.emit("Cylinder", func(r ri.Renderer) { r.Cylinder(radius, zmin, zmax, thetamax, p) })
}

func (f *ArchiveFilter) Hyperboloid(point1, point2 ri.Point, thetamax float64, params ri.ParamList) {
	p := params.Clone()
	f.emit("Hyperboloid", func(r ri.Renderer) { r.Hyperboloid(point1, point2, thetamax, p) })
}

func (f *ArchiveFilter) Paraboloid(rmax, zmin, zmax, thetamax float64, params ri.ParamList) {
	p := params.Clone()
	f.emit("Paraboloid", func(r ri.Renderer) { r.Paraboloid(rmax, zmin, zmax, thetamax, p) })
}

func (f *ArchiveFilter) Disk(height, radius, thetamax float64, params ri.ParamList) {
	p := params.Clone()
	f.emit("Disk", func(r ri.Renderer) { r.Disk(height, radius, thetamax, p) })
}

func (f *ArchiveFilter) Torus(majorrad, minorrad, phimin, phimax, thetamax float64, params ri.ParamList) {
	p := params.Clone()
	f.emit("Torus", func(r ri.Renderer) { r.Torus(majorrad, minorrad, phimin, phimax, thetamax, p) })
}

func (f *ArchiveFilter) Points(params ri.ParamList) {
	p := params.Clone()
	f.emit("Points", func(r ri.Renderer) { r.Points(p) })
}

func (f *ArchiveFilter) Curves(kind string, nvertices []int, wrap string, params ri.ParamList) {
	nv, p := slices.Clone(nvertices), params.Clone()
	f.emit("Curves", func(r ri.Renderer) { r.Curves(kind, nv, wrap, p) })
}

func (f *ArchiveFilter) Blobby(nleaf int, code []int, floats []float64, strings []string, params ri.ParamList) {
	cd, fl := slices.Clone(code), slices.Clone(floats)
	st, p := slices.Clone(strings), params.Clone()
	f.emit("Blobby", func(r ri.Renderer) { r.Blobby(nleaf, cd, fl, st, p) })
}

func (f *ArchiveFilter) Procedural(name string, args []string, b ri.Bound) {
	as := slices.Clone(args)
	f.emit("Procedural", func(r ri.Renderer) { r.Procedural(name, as, b) })
}

func (f *ArchiveFilter) Geometry(kind string, params ri.ParamList) {
	p := params.Clone()
	f.emit("Geometry", func(r ri.Renderer) { r.Geometry(kind, p) })
}

func (f *ArchiveFilter) SolidBegin(kind string) {
	f.emit("SolidBegin", func(r ri.Renderer) { r.SolidBegin(kind) })
}

func (f *ArchiveFilter) SolidEnd() {
	f.emit("SolidEnd", func(r ri.Renderer) { r.SolidEnd() })
}

func (f *ArchiveFilter) MotionBegin(times []float64) {
	ts := slices.Clone(times)
	f.emit("MotionBegin", func(r ri.Renderer) { r.MotionBegin(ts) })
}

func (f *ArchiveFilter) MotionEnd() {
	f.emit("MotionEnd", func(r ri.Renderer) { r.MotionEnd() })
}

func (f *ArchiveFilter) MakeTexture(imagefile, texturefile, swrap, twrap, filter string,
	swidth, twidth float64, params ri.ParamList) {
	p := params.Clone()
	f.emit("MakeTexture", func(r ri.Renderer) {
		r.MakeTexture(imagefile, texturefile, swrap, twrap, filter, swidth, twidth, p)
	})
}

func (f *ArchiveFilter) MakeLatLongEnvironment(imagefile, reflfile, filter string,
	swidth, twidth float64, params ri.ParamList) {
	p := params.Clone()
	f.emit("MakeLatLongEnvironment", func(r ri.Renderer) {
		r.MakeLatLongEnvironment(imagefile, reflfile, filter, swidth, twidth, p)
	})
}

func (f *ArchiveFilter) MakeCubeFaceEnvironment(px, nx, py, ny, pz, nz, reflfile string, fov float64,
	filter string, swidth, twidth float64, params ri.ParamList) {
	p := params.Clone()
	f.emit("MakeCubeFaceEnvironment", func(r ri.Renderer) {
		r.MakeCubeFaceEnvironment(px, nx, py, ny, pz, nz, reflfile, fov, filter, swidth, twidth, p)
	})
}

func (f *ArchiveFilter) MakeShadow(picfile, shadowfile string, params ri.ParamList) {
	p := params.Clone()
	f.emit("MakeShadow", func(r ri.Renderer) { r.MakeShadow(picfile, shadowfile, p) })
}

func (f *ArchiveFilter) MakeOcclusion(picfiles []string, shadowfile string, params ri.ParamList) {
	pf, p := slices.Clone(picfiles), params.Clone()
	f.emit("MakeOcclusion", func(r ri.Renderer) { r.MakeOcclusion(pf, shadowfile, p) })
}

func (f *ArchiveFilter) ErrorHandler(name string) {
	f.emit("ErrorHandler", func(r ri.Renderer) { r.ErrorHandler(name) })
}
