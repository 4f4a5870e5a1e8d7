package rifilter

import "github.com/strattonbrazil/aqsis/internal/ri"

// Passthrough forwards every call unchanged to Next. Filters that only
// care about a few requests embed Passthrough and override those methods;
// the rest of the interface falls through to the embedded forwarders.
type Passthrough struct {
	Next ri.Renderer
}

func (p *Passthrough) Declare(name, declaration string) { p.Next.Declare(name, declaration) }

func (p *Passthrough) FrameBegin(number int) { p.Next.FrameBegin(number) }
func (p *Passthrough) FrameEnd() { p.Next.FrameEnd() }
func (p *Passthrough) WorldBegin() { p.Next.WorldBegin() }
func (p *Passthrough) WorldEnd() { p.Next.WorldEnd() }
func (p *Passthrough) IfBegin(condition string) { p.Next.IfBegin(condition) }
func (p *Passthrough) ElseIf(condition string) { p.Next.ElseIf(condition) }
func (p *Passthrough) Else() { p.Next.Else() }
func (p *Passthrough) IfEnd() { p.Next.IfEnd() }

func (p *Passthrough) Format(xres, yres int, pixelAspect float64) {
	p.Next.Format(xres, yres, pixelAspect)
}

func (p *Passthrough) FrameAspectRatio(ratio float64) { p.Next.FrameAspectRatio(ratio) }

func (p *Passthrough) ScreenWindow(left, right, bottom, top float64) {
	p.Next.ScreenWindow(left, right, bottom, top)
}

func (p *Passthrough) CropWindow(xmin, xmax, ymin, ymax float64) {
	p.Next.CropWindow(xmin, xmax, ymin, ymax)
}

func (p *Passthrough) Projection(name string, params ri.ParamList) {
	p.Next.Projection(name, params)
}

func (p *Passthrough) Clipping(near, far float64) { p.Next.Clipping(near, far) }

func (p *Passthrough) ClippingPlane(x, y, z, nx, ny, nz float64) {
	p.Next.ClippingPlane(x, y, z, nx, ny, nz)
}

func (p *Passthrough) DepthOfField(fstop, focalLength, focalDistance float64) {
	p.Next.DepthOfField(fstop, focalLength, focalDistance)
}

func (p *Passthrough) Shutter(openTime, closeTime float64) {
	p.Next.Shutter(openTime, closeTime)
}

func (p *Passthrough) PixelVariance(variance float64) { p.Next.PixelVariance(variance) }

func (p *Passthrough) PixelSamples(xsamples, ysamples float64) {
	p.Next.PixelSamples(xsamples, ysamples)
}

func (p *Passthrough) PixelFilter(name string, xwidth, ywidth float64) {
	p.Next.PixelFilter(name, xwidth, ywidth)
}

func (p *Passthrough) Exposure(gain, gamma float64) { p.Next.Exposure(gain, gamma) }

func (p *Passthrough) Imager(name string, params ri.ParamList) { p.Next.Imager(name, params) }

func (p *Passthrough) Quantize(kind string, one, min, max int, dither float64) {
	p.Next.Quantize(kind, one, min, max, dither)
}

func (p *Passthrough) Display(name, kind, mode string, params ri.ParamList) {
	p.Next.Display(name, kind, mode, params)
}

func (p *Passthrough) Hider(name string, params ri.ParamList) { p.Next.Hider(name, params) }

func (p *Passthrough) ColorSamples(nRGB, RGBn []float64) { p.Next.ColorSamples(nRGB, RGBn) }

func (p *Passthrough) RelativeDetail(detail float64) { p.Next.RelativeDetail(detail) }

func (p *Passthrough) Option(name string, params ri.ParamList) { p.Next.Option(name, params) }

func (p *Passthrough) AttributeBegin() { p.Next.AttributeBegin() }
func (p *Passthrough) AttributeEnd() { p.Next.AttributeEnd() }

func (p *Passthrough) Color(c ri.Color) { p.Next.Color(c) }
func (p *Passthrough) Opacity(o ri.Color) { p.Next.Opacity(o) }

func (p *Passthrough) TextureCoordinates(s1, t1, s2, t2, s3, t3, s4, t4 float64) {
	p.Next.TextureCoordinates(s1, t1, s2, t2, s3, t3, s4, t4)
}

func (p *Passthrough) LightSource(shader, name string, params ri.ParamList) {
	p.Next.LightSource(shader, name, params)
}

func (p *Passthrough) AreaLightSource(shader, name string, params ri.ParamList) {
	p.Next.AreaLightSource(shader, name, params)
}

func (p *Passthrough) Illuminate(name string, on bool) { p.Next.Illuminate(name, on) }

func (p *Passthrough) Surface(name string, params ri.ParamList) { p.Next.Surface(name, params) }

func (p *Passthrough) Displacement(name string, params ri.ParamList) {
	p.Next.Displacement(name, params)
}

func (p *Passthrough) Atmosphere(name string, params ri.ParamList) {
	p.Next.Atmosphere(name, params)
}

func (p *Passthrough) Interior(name string, params ri.ParamList) { p.Next.Interior(name, params) }

func (p *Passthrough) Exterior(name string, params ri.ParamList) { p.Next.Exterior(name, params) }

func (p *Passthrough) ShaderLayer(kind, name, layer string, params ri.ParamList) {
	p.Next.ShaderLayer(kind, name, layer, params)
}

func (p *Passthrough) ConnectShaderLayers(kind, layer1, variable1, layer2, variable2 string) {
	p.Next.ConnectShaderLayers(kind, layer1, variable1, layer2, variable2)
}

func (p *Passthrough) ShadingRate(size float64) { p.Next.ShadingRate(size) }

func (p *Passthrough) ShadingInterpolation(kind string) { p.Next.ShadingInterpolation(kind) }

func (p *Passthrough) Matte(on bool) { p.Next.Matte(on) }

func (p *Passthrough) Bound(b ri.Bound) { p.Next.Bound(b) }
func (p *Passthrough) Detail(b ri.Bound) { p.Next.Detail(b) }

func (p *Passthrough) DetailRange(offLow, onLow, onHigh, offHigh float64) {
	p.Next.DetailRange(offLow, onLow, onHigh, offHigh)
}

func (p *Passthrough) GeometricApproximation(kind string, value float64) {
	p.Next.GeometricApproximation(kind, value)
}

func (p *Passthrough) Orientation(orientation string) { p.Next.Orientation(orientation) }
func (p *Passthrough) ReverseOrientation() { p.Next.ReverseOrientation() }
func (p *Passthrough) Sides(n int) { p.Next.Sides(n) }

func (p *Passthrough) Attribute(name string, params ri.ParamList) {
	p.Next.Attribute(name, params)
}

func (p *Passthrough) Identity() { p.Next.Identity() }
func (p *Passthrough) Transform(m ri.Matrix) { p.Next.Transform(m) }
func (p *Passthrough) ConcatTransform(m ri.Matrix) { p.Next.ConcatTransform(m) }
func (p *Passthrough) Perspective(fov float64) { p.Next.Perspective(fov) }

func (p *Passthrough) Translate(dx, dy, dz float64) { p.Next.Translate(dx, dy, dz) }

func (p *Passthrough) Rotate(angle, dx, dy, dz float64) { p.Next.Rotate(angle, dx, dy, dz) }

func (p *Passthrough) Scale(sx, sy, sz float64) { p.Next.Scale(sx, sy, sz) }

func (p *Passthrough) Skew(angle, dx1, dy1, dz1, dx2, dy2, dz2 float64) {
	p.Next.Skew(angle, dx1, dy1, dz1, dx2, dy2, dz2)
}

func (p *Passthrough) CoordinateSystem(space string) { p.Next.CoordinateSystem(space) }
func (p *Passthrough) CoordSysTransform(space string) { p.Next.CoordSysTransform(space) }
func (p *Passthrough) TransformBegin() { p.Next.TransformBegin() }
func (p *Passthrough) TransformEnd() { p.Next.TransformEnd() }

func (p *Passthrough) Resource(handle, kind string, params ri.ParamList) {
	p.Next.Resource(handle, kind, params)
}

func (p *Passthrough) ResourceBegin() { p.Next.ResourceBegin() }
func (p *Passthrough) ResourceEnd() { p.Next.ResourceEnd() }

func (p *Passthrough) Polygon(params ri.ParamList) { p.Next.Polygon(params) }

func (p *Passthrough) GeneralPolygon(nverts []int, params ri.ParamList) {
	p.Next.GeneralPolygon(nverts, params)
}

func (p *Passthrough) PointsPolygons(nverts, verts []int, params ri.ParamList) {
	p.Next.PointsPolygons(nverts, verts, params)
}

func (p *Passthrough) PointsGeneralPolygons(nloops, nverts, verts []int, params ri.ParamList) {
	p.Next.PointsGeneralPolygons(nloops, nverts, verts, params)
}

func (p *Passthrough) Basis(u ri.Basis, ustep int, v ri.Basis, vstep int) {
	p.Next.Basis(u, ustep, v, vstep)
}

func (p *Passthrough) Patch(kind string, params ri.ParamList) { p.Next.Patch(kind, params) }

func (p *Passthrough) PatchMesh(kind string, nu int, uwrap string, nv int, vwrap string, params ri.ParamList) {
	p.Next.PatchMesh(kind, nu, uwrap, nv, vwrap, params)
}

func (p *Passthrough) NuPatch(nu, uorder int, uknot []float64, umin, umax float64,
	nv, vorder int, vknot []float64, vmin, vmax float64, params ri.ParamList) {
	p.Next.NuPatch(nu, uorder, uknot, umin, umax, nv, vorder, vknot, vmin, vmax, params)
}

func (p *Passthrough) TrimCurve(ncurves, order []int, knot, min, max []float64, n []int, u, v, w []float64) {
	p.Next.TrimCurve(ncurves, order, knot, min, max, n, u, v, w)
}

func (p *Passthrough) SubdivisionMesh(scheme string, nvertices, vertices []int, tags []string,
	nargs, intargs []int, floatargs []float64, params ri.ParamList) {
	p.Next.SubdivisionMesh(scheme, nvertices, vertices, tags, nargs, intargs, floatargs, params)
}

func (p *Passthrough) Sphere(radius, zmin, zmax, thetamax float64, params ri.ParamList) {
	p.Next.Sphere(radius, zmin, zmax, thetamax, params)
}

func (p *Passthrough) Cone(height, radius, thetamax float64, params ri.ParamList) {
	p.Next.Cone(height, radius, thetamax, params)
}

func (p *Passthrough) Cylinder(radius, zmin, zmax, thetamax float64, params ri.ParamList) {
	p.Next.Cylinder(radius, zmin, zmax, thetamax, params)
}

func (p *Passthrough) Hyperboloid(point1, point2 ri.Point, thetamax float64, params ri.ParamList) {
	p.Next.Hyperboloid(point1, point2, thetamax, params)
}

func (p *Passthrough) Paraboloid(rmax, zmin, zmax, thetamax float64, params ri.ParamList) {
	p.Next.Paraboloid(rmax, zmin, zmax, thetamax, params)
}

func (p *Passthrough) Disk(height, radius, thetamax float64, params ri.ParamList) {
	p.Next.Disk(height, radius, thetamax, params)
}

func (p *Passthrough) Torus(majorrad, minorrad, phimin, phimax, thetamax float64, params ri.ParamList) {
	p.Next.Torus(majorrad, minorrad, phimin, phimax, thetamax, params)
}

func (p *Passthrough) Points(params ri.ParamList) { p.Next.Points(params) }

func (p *Passthrough) Curves(kind string, nvertices []int, wrap string, params ri.ParamList) {
	p.Next.Curves(kind, nvertices, wrap, params)
}

func (p *Passthrough) Blobby(nleaf int, code []int, floats []float64, strings []string, params ri.ParamList) {
	p.Next.Blobby(nleaf, code, floats, strings, params)
}

func (p *Passthrough) Procedural(name string, args []string, b ri.Bound) {
	p.Next.Procedural(name, args, b)
}

func (p *Passthrough) Geometry(kind string, params ri.ParamList) { p.Next.Geometry(kind, params) }

func (p *Passthrough) SolidBegin(kind string) { p.Next.SolidBegin(kind) }
func (p *Passthrough) SolidEnd() { p.Next.SolidEnd() }

func (p *Passthrough) MotionBegin(times []float64) { p.Next.MotionBegin(times) }
func (p *Passthrough) MotionEnd() { p.Next.MotionEnd() }

func (p *Passthrough) MakeTexture(imagefile, texturefile, swrap, twrap, filter string,
	swidth, twidth float64, params ri.ParamList) {
	p.Next.MakeTexture(imagefile, texturefile, swrap, twrap, filter, swidth, twidth, params)
}

func (p *Passthrough) MakeLatLongEnvironment(imagefile, reflfile, filter string,
	swidth, twidth float64, params ri.ParamList) {
	p.Next.MakeLatLongEnvironment(imagefile, reflfile, filter, swidth, twidth, params)
}

func (p *Passthrough) MakeCubeFaceEnvironment(px, nx, py, ny, pz, nz, reflfile string, fov float64,
	filter string, swidth, twidth float64, params ri.ParamList) {
	p.Next.MakeCubeFaceEnvironment(px, nx, py, ny, pz, nz, reflfile, fov, filter, swidth, twidth, params)
}

func (p *Passthrough) MakeShadow(picfile, shadowfile string, params ri.ParamList) {
	p.Next.MakeShadow(picfile, shadowfile, params)
}

func (p *Passthrough) MakeOcclusion(picfiles []string, shadowfile string, params ri.ParamList) {
	p.Next.MakeOcclusion(picfiles, shadowfile, params)
}

func (p *Passthrough) ArchiveRecord(kind, text string) { p.Next.ArchiveRecord(kind, text) }

func (p *Passthrough) ArchiveBegin(name string, params ri.ParamList) {
	p.Next.ArchiveBegin(name, params)
}

func (p *Passthrough) ArchiveEnd() { p.Next.ArchiveEnd() }

func (p *Passthrough) ReadArchive(name string, params ri.ParamList) {
	p.Next.ReadArchive(name, params)
}

func (p *Passthrough) ObjectBegin(name string) { p.Next.ObjectBegin(name) }
func (p *Passthrough) ObjectEnd() { p.Next.ObjectEnd() }
func (p *Passthrough) ObjectInstance(name string) { p.Next.ObjectInstance(name) }

func (p *Passthrough) ErrorHandler(name string) { p.Next.ErrorHandler(name) }
