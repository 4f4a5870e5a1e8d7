package ri

// Renderer is the full scene description call surface: one method per
// request. A pipeline stage implements Renderer and normally forwards each
// call to the next stage; a sink implements it to consume the stream.
//
// Signatures follow the RIB binding. Requests that take function pointers
// in the C binding (pixel filters, procedurals, error handler) take the
// token name of the function instead, which is the form they have in a
// serialized stream.
type Renderer interface {
	// Token and parameter declarations.
	Declare(name, declaration string)

	// Block structure.
	FrameBegin(number int)
	FrameEnd()
	WorldBegin()
	WorldEnd()
	IfBegin(condition string)
	ElseIf(condition string)
	Else()
	IfEnd()

	// Camera and display options.
	Format(xres, yres int, pixelAspect float64)
	FrameAspectRatio(ratio float64)
	ScreenWindow(left, right, bottom, top float64)
	CropWindow(xmin, xmax, ymin, ymax float64)
	Projection(name string, params ParamList)
	Clipping(near, far float64)
	ClippingPlane(x, y, z, nx, ny, nz float64)
	DepthOfField(fstop, focalLength, focalDistance float64)
	Shutter(openTime, closeTime float64)
	PixelVariance(variance float64)
	PixelSamples(xsamples, ysamples float64)
	PixelFilter(name string, xwidth, ywidth float64)
	Exposure(gain, gamma float64)
	Imager(name string, params ParamList)
	Quantize(kind string, one, min, max int, dither float64)
	Display(name, kind, mode string, params ParamList)
	Hider(name string, params ParamList)
	ColorSamples(nRGB, RGBn []float64)
	RelativeDetail(detail float64)
	Option(name string, params ParamList)

	// Attributes.
	AttributeBegin()
	AttributeEnd()
	Color(c Color)
	Opacity(o Color)
	TextureCoordinates(s1, t1, s2, t2, s3, t3, s4, t4 float64)
	LightSource(shader, name string, params ParamList)
	AreaLightSource(shader, name string, params ParamList)
	Illuminate(name string, on bool)
	Surface(name string, params ParamList)
	Displacement(name string, params ParamList)
	Atmosphere(name string, params ParamList)
	Interior(name string, params ParamList)
	Exterior(name string, params ParamList)
	ShaderLayer(kind, name, layer string, params ParamList)
	ConnectShaderLayers(kind, layer1, variable1, layer2, variable2 string)
	ShadingRate(size float64)
	ShadingInterpolation(kind string)
	Matte(on bool)
	Bound(b Bound)
	Detail(b Bound)
	DetailRange(offLow, onLow, onHigh, offHigh float64)
	GeometricApproximation(kind string, value float64)
	Orientation(orientation string)
	ReverseOrientation()
	Sides(n int)
	Attribute(name string, params ParamList)

	// Transformations.
	Identity()
	Transform(m Matrix)
	ConcatTransform(m Matrix)
	Perspective(fov float64)
	Translate(dx, dy, dz float64)
	Rotate(angle, dx, dy, dz float64)
	Scale(sx, sy, sz float64)
	Skew(angle, dx1, dy1, dz1, dx2, dy2, dz2 float64)
	CoordinateSystem(space string)
	CoordSysTransform(space string)
	TransformBegin()
	TransformEnd()

	// Resources.
	Resource(handle, kind string, params ParamList)
	ResourceBegin()
	ResourceEnd()

	// Geometric primitives.
	Polygon(params ParamList)
	GeneralPolygon(nverts []int, params ParamList)
	PointsPolygons(nverts, verts []int, params ParamList)
	PointsGeneralPolygons(nloops, nverts, verts []int, params ParamList)
	Basis(u Basis, ustep int, v Basis, vstep int)
	Patch(kind string, params ParamList)
	PatchMesh(kind string, nu int, uwrap string, nv int, vwrap string, params ParamList)
	NuPatch(nu, uorder int, uknot []float64, umin, umax float64,
		nv, vorder int, vknot []float64, vmin, vmax float64, params ParamList)
	TrimCurve(ncurves, order []int, knot, min, max []float64, n []int, u, v, w []float64)
	SubdivisionMesh(scheme string, nvertices, vertices []int, tags []string,
		nargs, intargs []int, floatargs []float64, params ParamList)
	Sphere(radius, zmin, zmax, thetamax float64, params ParamList)
	Cone(height, radius, thetamax float64, params ParamList)
	Cylinder(radius, zmin, zmax, thetamax float64, params ParamList)
	Hyperboloid(point1, point2 Point, thetamax float64, params ParamList)
	Paraboloid(rmax, zmin, zmax, thetamax float64, params ParamList)
	Disk(height, radius, thetamax float64, params ParamList)
	Torus(majorrad, minorrad, phimin, phimax, thetamax float64, params ParamList)
	Points(params ParamList)
	Curves(kind string, nvertices []int, wrap string, params ParamList)
	Blobby(nleaf int, code []int, floats []float64, strings []string, params ParamList)
	Procedural(name string, args []string, b Bound)
	Geometry(kind string, params ParamList)

	// Solids and motion.
	SolidBegin(kind string)
	SolidEnd()
	MotionBegin(times []float64)
	MotionEnd()

	// Texture map generation.
	MakeTexture(imagefile, texturefile, swrap, twrap, filter string,
		swidth, twidth float64, params ParamList)
	MakeLatLongEnvironment(imagefile, reflfile, filter string,
		swidth, twidth float64, params ParamList)
	MakeCubeFaceEnvironment(px, nx, py, ny, pz, nz, reflfile string, fov float64,
		filter string, swidth, twidth float64, params ParamList)
	MakeShadow(picfile, shadowfile string, params ParamList)
	MakeOcclusion(picfiles []string, shadowfile string, params ParamList)

	// Archives and object instancing.
	ArchiveRecord(kind, text string)
	ArchiveBegin(name string, params ParamList)
	ArchiveEnd()
	ReadArchive(name string, params ParamList)
	ObjectBegin(name string)
	ObjectEnd()
	ObjectInstance(name string)

	// Misc.
	ErrorHandler(name string)
}
