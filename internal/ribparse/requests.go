package ribparse

import "github.com/strattonbrazil/aqsis/internal/ri"

// requestFunc consumes one request's arguments and invokes the target.
type requestFunc func(p *Parser) error

// Shared handler shapes. Most requests are "fixed args then parameter
// list"; these constructors cover the recurring signatures so the table
// below stays one line per request.

func simple(fn func(ri.Renderer)) requestFunc {
	return func(p *Parser) error {
		fn(p.target)
		return nil
	}
}

func nameOnly(fn func(ri.Renderer, string)) requestFunc {
	return func(p *Parser) error {
		name, err := p.stringArg()
		if err != nil {
			return err
		}
		fn(p.target, name)
		return nil
	}
}

func nameParams(fn func(ri.Renderer, string, ri.ParamList)) requestFunc {
	return func(p *Parser) error {
		name, err := p.stringArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		fn(p.target, name, pl)
		return nil
	}
}

func twoNamesParams(fn func(ri.Renderer, string, string, ri.ParamList)) requestFunc {
	return func(p *Parser) error {
		a, err := p.stringArg()
		if err != nil {
			return err
		}
		b, err := p.stringArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		fn(p.target, a, b, pl)
		return nil
	}
}

func floatsOnly(n int, fn func(ri.Renderer, []float64)) requestFunc {
	return func(p *Parser) error {
		fs, err := p.nFloats(n)
		if err != nil {
			return err
		}
		fn(p.target, fs)
		return nil
	}
}

func floatsParams(n int, fn func(ri.Renderer, []float64, ri.ParamList)) requestFunc {
	return func(p *Parser) error {
		fs, err := p.nFloats(n)
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		fn(p.target, fs, pl)
		return nil
	}
}

func paramsOnly(fn func(ri.Renderer, ri.ParamList)) requestFunc {
	return func(p *Parser) error {
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		fn(p.target, pl)
		return nil
	}
}

var requests = map[string]requestFunc{
	"Declare": func(p *Parser) error {
		name, err := p.stringArg()
		if err != nil {
			return err
		}
		decl, err := p.stringArg()
		if err != nil {
			return err
		}
		p.target.Declare(name, decl)
		return nil
	},

	"FrameBegin": func(p *Parser) error {
		n, err := p.intArg()
		if err != nil {
			return err
		}
		p.target.FrameBegin(n)
		return nil
	},
	"FrameEnd":   simple(func(r ri.Renderer) { r.FrameEnd() }),
	"WorldBegin": simple(func(r ri.Renderer) { r.WorldBegin() }),
	"WorldEnd":   simple(func(r ri.Renderer) { r.WorldEnd() }),

	"IfBegin": nameOnly(func(r ri.Renderer, s string) { r.IfBegin(s) }),
	"ElseIf":  nameOnly(func(r ri.Renderer, s string) { r.ElseIf(s) }),
	"Else":    simple(func(r ri.Renderer) { r.Else() }),
	"IfEnd":   simple(func(r ri.Renderer) { r.IfEnd() }),

	"Format": func(p *Parser) error {
		x, err := p.intArg()
		if err != nil {
			return err
		}
		y, err := p.intArg()
		if err != nil {
			return err
		}
		aspect, err := p.floatArg()
		if err != nil {
			return err
		}
		p.target.Format(x, y, aspect)
		return nil
	},
	"FrameAspectRatio": floatsOnly(1, func(r ri.Renderer, f []float64) { r.FrameAspectRatio(f[0]) }),
	"ScreenWindow": floatsOnly(4, func(r ri.Renderer, f []float64) {
		r.ScreenWindow(f[0], f[1], f[2], f[3])
	}),
	"CropWindow": floatsOnly(4, func(r ri.Renderer, f []float64) {
		r.CropWindow(f[0], f[1], f[2], f[3])
	}),
	"Projection": nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Projection(s, pl) }),
	"Clipping":   floatsOnly(2, func(r ri.Renderer, f []float64) { r.Clipping(f[0], f[1]) }),
	"ClippingPlane": floatsOnly(6, func(r ri.Renderer, f []float64) {
		r.ClippingPlane(f[0], f[1], f[2], f[3], f[4], f[5])
	}),
	"DepthOfField": floatsOnly(3, func(r ri.Renderer, f []float64) {
		r.DepthOfField(f[0], f[1], f[2])
	}),
	"Shutter":       floatsOnly(2, func(r ri.Renderer, f []float64) { r.Shutter(f[0], f[1]) }),
	"PixelVariance": floatsOnly(1, func(r ri.Renderer, f []float64) { r.PixelVariance(f[0]) }),
	"PixelSamples":  floatsOnly(2, func(r ri.Renderer, f []float64) { r.PixelSamples(f[0], f[1]) }),
	"PixelFilter": func(p *Parser) error {
		name, err := p.stringArg()
		if err != nil {
			return err
		}
		fs, err := p.nFloats(2)
		if err != nil {
			return err
		}
		p.target.PixelFilter(name, fs[0], fs[1])
		return nil
	},
	"Exposure": floatsOnly(2, func(r ri.Renderer, f []float64) { r.Exposure(f[0], f[1]) }),
	"Imager":   nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Imager(s, pl) }),
	"Quantize": func(p *Parser) error {
		kind, err := p.stringArg()
		if err != nil {
			return err
		}
		one, err := p.intArg()
		if err != nil {
			return err
		}
		min, err := p.intArg()
		if err != nil {
			return err
		}
		max, err := p.intArg()
		if err != nil {
			return err
		}
		dither, err := p.floatArg()
		if err != nil {
			return err
		}
		p.target.Quantize(kind, one, min, max, dither)
		return nil
	},
	"Display": func(p *Parser) error {
		name, err := p.stringArg()
		if err != nil {
			return err
		}
		kind, err := p.stringArg()
		if err != nil {
			return err
		}
		mode, err := p.stringArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.Display(name, kind, mode, pl)
		return nil
	},
	"Hider": nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Hider(s, pl) }),
	"ColorSamples": func(p *Parser) error {
		nRGB, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		RGBn, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		p.target.ColorSamples(nRGB, RGBn)
		return nil
	},
	"RelativeDetail": floatsOnly(1, func(r ri.Renderer, f []float64) { r.RelativeDetail(f[0]) }),
	"Option":         nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Option(s, pl) }),

	"AttributeBegin": simple(func(r ri.Renderer) { r.AttributeBegin() }),
	"AttributeEnd":   simple(func(r ri.Renderer) { r.AttributeEnd() }),
	"Color": func(p *Parser) error {
		c, err := p.tripleArg()
		if err != nil {
			return err
		}
		p.target.Color(ri.Color(c))
		return nil
	},
	"Opacity": func(p *Parser) error {
		c, err := p.tripleArg()
		if err != nil {
			return err
		}
		p.target.Opacity(ri.Color(c))
		return nil
	},
	"TextureCoordinates": floatsOnly(8, func(r ri.Renderer, f []float64) {
		r.TextureCoordinates(f[0], f[1], f[2], f[3], f[4], f[5], f[6], f[7])
	}),
	"LightSource": twoNamesParams(func(r ri.Renderer, a, b string, pl ri.ParamList) {
		r.LightSource(a, b, pl)
	}),
	"AreaLightSource": twoNamesParams(func(r ri.Renderer, a, b string, pl ri.ParamList) {
		r.AreaLightSource(a, b, pl)
	}),
	"Illuminate": func(p *Parser) error {
		name, err := p.stringArg()
		if err != nil {
			return err
		}
		on, err := p.boolArg()
		if err != nil {
			return err
		}
		p.target.Illuminate(name, on)
		return nil
	},
	"Surface":      nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Surface(s, pl) }),
	"Displacement": nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Displacement(s, pl) }),
	"Atmosphere":   nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Atmosphere(s, pl) }),
	"Interior":     nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Interior(s, pl) }),
	"Exterior":     nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Exterior(s, pl) }),
	"ShaderLayer": func(p *Parser) error {
		kind, err := p.stringArg()
		if err != nil {
			return err
		}
		name, err := p.stringArg()
		if err != nil {
			return err
		}
		layer, err := p.stringArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.ShaderLayer(kind, name, layer, pl)
		return nil
	},
	"ConnectShaderLayers": func(p *Parser) error {
		args := make([]string, 5)
		for i := range args {
			s, err := p.stringArg()
			if err != nil {
				return err
			}
			args[i] = s
		}
		p.target.ConnectShaderLayers(args[0], args[1], args[2], args[3], args[4])
		return nil
	},
	"ShadingRate": floatsOnly(1, func(r ri.Renderer, f []float64) { r.ShadingRate(f[0]) }),
	"ShadingInterpolation": nameOnly(func(r ri.Renderer, s string) {
		r.ShadingInterpolation(s)
	}),
	"Matte": func(p *Parser) error {
		on, err := p.boolArg()
		if err != nil {
			return err
		}
		p.target.Matte(on)
		return nil
	},
	"Bound": func(p *Parser) error {
		b, err := p.boundArg()
		if err != nil {
			return err
		}
		p.target.Bound(b)
		return nil
	},
	"Detail": func(p *Parser) error {
		b, err := p.boundArg()
		if err != nil {
			return err
		}
		p.target.Detail(b)
		return nil
	},
	"DetailRange": floatsOnly(4, func(r ri.Renderer, f []float64) {
		r.DetailRange(f[0], f[1], f[2], f[3])
	}),
	"GeometricApproximation": func(p *Parser) error {
		kind, err := p.stringArg()
		if err != nil {
			return err
		}
		v, err := p.floatArg()
		if err != nil {
			return err
		}
		p.target.GeometricApproximation(kind, v)
		return nil
	},
	"Orientation":        nameOnly(func(r ri.Renderer, s string) { r.Orientation(s) }),
	"ReverseOrientation": simple(func(r ri.Renderer) { r.ReverseOrientation() }),
	"Sides": func(p *Parser) error {
		n, err := p.intArg()
		if err != nil {
			return err
		}
		p.target.Sides(n)
		return nil
	},
	"Attribute": nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Attribute(s, pl) }),

	"Identity": simple(func(r ri.Renderer) { r.Identity() }),
	"Transform": func(p *Parser) error {
		m, err := p.matrixArg()
		if err != nil {
			return err
		}
		p.target.Transform(m)
		return nil
	},
	"ConcatTransform": func(p *Parser) error {
		m, err := p.matrixArg()
		if err != nil {
			return err
		}
		p.target.ConcatTransform(m)
		return nil
	},
	"Perspective": floatsOnly(1, func(r ri.Renderer, f []float64) { r.Perspective(f[0]) }),
	"Translate":   floatsOnly(3, func(r ri.Renderer, f []float64) { r.Translate(f[0], f[1], f[2]) }),
	"Rotate": floatsOnly(4, func(r ri.Renderer, f []float64) {
		r.Rotate(f[0], f[1], f[2], f[3])
	}),
	"Scale": floatsOnly(3, func(r ri.Renderer, f []float64) { r.Scale(f[0], f[1], f[2]) }),
	"Skew": floatsOnly(7, func(r ri.Renderer, f []float64) {
		r.Skew(f[0], f[1], f[2], f[3], f[4], f[5], f[6])
	}),
	"CoordinateSystem":  nameOnly(func(r ri.Renderer, s string) { r.CoordinateSystem(s) }),
	"CoordSysTransform": nameOnly(func(r ri.Renderer, s string) { r.CoordSysTransform(s) }),
	"TransformBegin":    simple(func(r ri.Renderer) { r.TransformBegin() }),
	"TransformEnd":      simple(func(r ri.Renderer) { r.TransformEnd() }),

	"Resource": twoNamesParams(func(r ri.Renderer, a, b string, pl ri.ParamList) {
		r.Resource(a, b, pl)
	}),
	"ResourceBegin": simple(func(r ri.Renderer) { r.ResourceBegin() }),
	"ResourceEnd":   simple(func(r ri.Renderer) { r.ResourceEnd() }),

	"Polygon": paramsOnly(func(r ri.Renderer, pl ri.ParamList) { r.Polygon(pl) }),
	"GeneralPolygon": func(p *Parser) error {
		nverts, err := p.intArrayArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.GeneralPolygon(nverts, pl)
		return nil
	},
	"PointsPolygons": func(p *Parser) error {
		nverts, err := p.intArrayArg()
		if err != nil {
			return err
		}
		verts, err := p.intArrayArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.PointsPolygons(nverts, verts, pl)
		return nil
	},
	"PointsGeneralPolygons": func(p *Parser) error {
		nloops, err := p.intArrayArg()
		if err != nil {
			return err
		}
		nverts, err := p.intArrayArg()
		if err != nil {
			return err
		}
		verts, err := p.intArrayArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.PointsGeneralPolygons(nloops, nverts, verts, pl)
		return nil
	},
	"Basis": func(p *Parser) error {
		u, err := p.basisArg()
		if err != nil {
			return err
		}
		ustep, err := p.intArg()
		if err != nil {
			return err
		}
		v, err := p.basisArg()
		if err != nil {
			return err
		}
		vstep, err := p.intArg()
		if err != nil {
			return err
		}
		p.target.Basis(u, ustep, v, vstep)
		return nil
	},
	"Patch": nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Patch(s, pl) }),
	"PatchMesh": func(p *Parser) error {
		kind, err := p.stringArg()
		if err != nil {
			return err
		}
		nu, err := p.intArg()
		if err != nil {
			return err
		}
		uwrap, err := p.stringArg()
		if err != nil {
			return err
		}
		nv, err := p.intArg()
		if err != nil {
			return err
		}
		vwrap, err := p.stringArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.PatchMesh(kind, nu, uwrap, nv, vwrap, pl)
		return nil
	},
	"NuPatch": func(p *Parser) error {
		nu, err := p.intArg()
		if err != nil {
			return err
		}
		uorder, err := p.intArg()
		if err != nil {
			return err
		}
		uknot, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		urange, err := p.nFloats(2)
		if err != nil {
			return err
		}
		nv, err := p.intArg()
		if err != nil {
			return err
		}
		vorder, err := p.intArg()
		if err != nil {
			return err
		}
		vknot, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		vrange, err := p.nFloats(2)
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.NuPatch(nu, uorder, uknot, urange[0], urange[1],
			nv, vorder, vknot, vrange[0], vrange[1], pl)
		return nil
	},
	"TrimCurve": func(p *Parser) error {
		ncurves, err := p.intArrayArg()
		if err != nil {
			return err
		}
		order, err := p.intArrayArg()
		if err != nil {
			return err
		}
		knot, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		min, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		max, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		n, err := p.intArrayArg()
		if err != nil {
			return err
		}
		u, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		v, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		w, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		p.target.TrimCurve(ncurves, order, knot, min, max, n, u, v, w)
		return nil
	},
	"SubdivisionMesh": func(p *Parser) error {
		scheme, err := p.stringArg()
		if err != nil {
			return err
		}
		nvertices, err := p.intArrayArg()
		if err != nil {
			return err
		}
		vertices, err := p.intArrayArg()
		if err != nil {
			return err
		}
		// The tag arrays are optional in RIB; a following bracket
		// means the full form.
		var tags []string
		var nargs, intargs []int
		var floatargs []float64
		if p.tok.kind == tokLBracket {
			if tags, err = p.stringArrayArg(); err != nil {
				return err
			}
			if nargs, err = p.intArrayArg(); err != nil {
				return err
			}
			if intargs, err = p.intArrayArg(); err != nil {
				return err
			}
			if floatargs, err = p.floatArrayArg(); err != nil {
				return err
			}
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.SubdivisionMesh(scheme, nvertices, vertices, tags, nargs, intargs, floatargs, pl)
		return nil
	},
	"Sphere": floatsParams(4, func(r ri.Renderer, f []float64, pl ri.ParamList) {
		r.Sphere(f[0], f[1], f[2], f[3], pl)
	}),
	"Cone": floatsParams(3, func(r ri.Renderer, f []float64, pl ri.ParamList) {
		r.Cone(f[0], f[1], f[2], pl)
	}),
	"Cylinder": floatsParams(4, func(r ri.Renderer, f []float64, pl ri.ParamList) {
		r.Cylinder(f[0], f[1], f[2], f[3], pl)
	}),
	"Hyperboloid": func(p *Parser) error {
		p1, err := p.tripleArg()
		if err != nil {
			return err
		}
		p2, err := p.tripleArg()
		if err != nil {
			return err
		}
		thetamax, err := p.floatArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.Hyperboloid(ri.Point(p1), ri.Point(p2), thetamax, pl)
		return nil
	},
	"Paraboloid": floatsParams(4, func(r ri.Renderer, f []float64, pl ri.ParamList) {
		r.Paraboloid(f[0], f[1], f[2], f[3], pl)
	}),
	"Disk": floatsParams(3, func(r ri.Renderer, f []float64, pl ri.ParamList) {
		r.Disk(f[0], f[1], f[2], pl)
	}),
	"Torus": floatsParams(5, func(r ri.Renderer, f []float64, pl ri.ParamList) {
		r.Torus(f[0], f[1], f[2], f[3], f[4], pl)
	}),
	"Points": paramsOnly(func(r ri.Renderer, pl ri.ParamList) { r.Points(pl) }),
	"Curves": func(p *Parser) error {
		kind, err := p.stringArg()
		if err != nil {
			return err
		}
		nvertices, err := p.intArrayArg()
		if err != nil {
			return err
		}
		wrap, err := p.stringArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.Curves(kind, nvertices, wrap, pl)
		return nil
	},
	"Blobby": func(p *Parser) error {
		nleaf, err := p.intArg()
		if err != nil {
			return err
		}
		code, err := p.intArrayArg()
		if err != nil {
			return err
		}
		floats, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		strs, err := p.stringArrayArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.Blobby(nleaf, code, floats, strs, pl)
		return nil
	},
	"Procedural": func(p *Parser) error {
		name, err := p.stringArg()
		if err != nil {
			return err
		}
		args, err := p.stringArrayArg()
		if err != nil {
			return err
		}
		b, err := p.boundArg()
		if err != nil {
			return err
		}
		p.target.Procedural(name, args, b)
		return nil
	},
	"Geometry": nameParams(func(r ri.Renderer, s string, pl ri.ParamList) { r.Geometry(s, pl) }),

	"SolidBegin": nameOnly(func(r ri.Renderer, s string) { r.SolidBegin(s) }),
	"SolidEnd":   simple(func(r ri.Renderer) { r.SolidEnd() }),
	"MotionBegin": func(p *Parser) error {
		times, err := p.floatArrayArg()
		if err != nil {
			return err
		}
		p.target.MotionBegin(times)
		return nil
	},
	"MotionEnd": simple(func(r ri.Renderer) { r.MotionEnd() }),

	"MakeTexture": func(p *Parser) error {
		args := make([]string, 5)
		for i := range args {
			s, err := p.stringArg()
			if err != nil {
				return err
			}
			args[i] = s
		}
		widths, err := p.nFloats(2)
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.MakeTexture(args[0], args[1], args[2], args[3], args[4],
			widths[0], widths[1], pl)
		return nil
	},
	"MakeLatLongEnvironment": func(p *Parser) error {
		args := make([]string, 3)
		for i := range args {
			s, err := p.stringArg()
			if err != nil {
				return err
			}
			args[i] = s
		}
		widths, err := p.nFloats(2)
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.MakeLatLongEnvironment(args[0], args[1], args[2], widths[0], widths[1], pl)
		return nil
	},
	"MakeCubeFaceEnvironment": func(p *Parser) error {
		faces := make([]string, 7)
		for i := range faces {
			s, err := p.stringArg()
			if err != nil {
				return err
			}
			faces[i] = s
		}
		fov, err := p.floatArg()
		if err != nil {
			return err
		}
		filter, err := p.stringArg()
		if err != nil {
			return err
		}
		widths, err := p.nFloats(2)
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.MakeCubeFaceEnvironment(faces[0], faces[1], faces[2], faces[3],
			faces[4], faces[5], faces[6], fov, filter, widths[0], widths[1], pl)
		return nil
	},
	"MakeShadow": twoNamesParams(func(r ri.Renderer, a, b string, pl ri.ParamList) {
		r.MakeShadow(a, b, pl)
	}),
	"MakeOcclusion": func(p *Parser) error {
		pics, err := p.stringArrayArg()
		if err != nil {
			return err
		}
		shadow, err := p.stringArg()
		if err != nil {
			return err
		}
		pl, err := p.paramList()
		if err != nil {
			return err
		}
		p.target.MakeOcclusion(pics, shadow, pl)
		return nil
	},

	"ArchiveBegin": nameParams(func(r ri.Renderer, s string, pl ri.ParamList) {
		r.ArchiveBegin(s, pl)
	}),
	"ArchiveEnd": simple(func(r ri.Renderer) { r.ArchiveEnd() }),
	"ReadArchive": nameParams(func(r ri.Renderer, s string, pl ri.ParamList) {
		r.ReadArchive(s, pl)
	}),
	"ObjectBegin":    nameOnly(func(r ri.Renderer, s string) { r.ObjectBegin(s) }),
	"ObjectEnd":      simple(func(r ri.Renderer) { r.ObjectEnd() }),
	"ObjectInstance": nameOnly(func(r ri.Renderer, s string) { r.ObjectInstance(s) }),

	"ErrorHandler": nameOnly(func(r ri.Renderer, s string) { r.ErrorHandler(s) }),
}
