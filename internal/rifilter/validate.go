package rifilter

import "github.com/strattonbrazil/aqsis/internal/ri"

// Validator checks that block-structured scopes are properly balanced:
// Frame, World, Attribute, Transform, Solid, Motion, Resource, and If
// blocks. Begin calls push a scope and pass through; an End call that does
// not match the innermost open scope reports a nesting error and is not
// forwarded, keeping downstream stages' scope stacks consistent.
//
// Archive and object scopes are not checked here. Their tolerance policy
// (silently ignoring unmatched ends) belongs to the archive filter.
type Validator struct {
	Passthrough
	svc  Services
	open []string
}

var _ ri.Renderer = (*Validator)(nil)

// NewValidator creates the filter bound to a chain and its next stage.
func NewValidator(svc Services, next ri.Renderer) *Validator {
	return &Validator{Passthrough: Passthrough{Next: next}, svc: svc}
}

// Validate returns a chain constructor for the filter.
func Validate() Constructor {
	return func(svc Services, next ri.Renderer) ri.Renderer {
		return NewValidator(svc, next)
	}
}

func (v *Validator) push(kind string) {
	v.open = append(v.open, kind)
}

// pop closes the innermost scope if it matches kind. Otherwise it reports
// a nesting error and reports false so the caller drops the call.
func (v *Validator) pop(kind string) bool {
	if len(v.open) == 0 {
		v.svc.ErrorHandler().HandleError(ri.Errorf(ri.ErrNesting,
			"%sEnd with no open %s block", kind, kind))
		return false
	}
	top := v.open[len(v.open)-1]
	if top != kind {
		v.svc.ErrorHandler().HandleError(ri.Errorf(ri.ErrNesting,
			"%sEnd closes open %s block", kind, top))
		return false
	}
	v.open = v.open[:len(v.open)-1]
	return true
}

// inIf reports whether the innermost open scope is an If block.
func (v *Validator) inIf() bool {
	return len(v.open) > 0 && v.open[len(v.open)-1] == "If"
}

func (v *Validator) FrameBegin(number int) {
	v.push("Frame")
	v.Next.FrameBegin(number)
}

func (v *Validator) FrameEnd() {
	if v.pop("Frame") {
		v.Next.FrameEnd()
	}
}

func (v *Validator) WorldBegin() {
	v.push("World")
	v.Next.WorldBegin()
}

func (v *Validator) WorldEnd() {
	if v.pop("World") {
		v.Next.WorldEnd()
	}
}

func (v *Validator) AttributeBegin() {
	v.push("Attribute")
	v.Next.AttributeBegin()
}

func (v *Validator) AttributeEnd() {
	if v.pop("Attribute") {
		v.Next.AttributeEnd()
	}
}

func (v *Validator) TransformBegin() {
	v.push("Transform")
	v.Next.TransformBegin()
}

func (v *Validator) TransformEnd() {
	if v.pop("Transform") {
		v.Next.TransformEnd()
	}
}

func (v *Validator) SolidBegin(kind string) {
	v.push("Solid")
	v.Next.SolidBegin(kind)
}

func (v *Validator) SolidEnd() {
	if v.pop("Solid") {
		v.Next.SolidEnd()
	}
}

func (v *Validator) MotionBegin(times []float64) {
	v.push("Motion")
	v.Next.MotionBegin(times)
}

func (v *Validator) MotionEnd() {
	if v.pop("Motion") {
		v.Next.MotionEnd()
	}
}

func (v *Validator) ResourceBegin() {
	v.push("Resource")
	v.Next.ResourceBegin()
}

func (v *Validator) ResourceEnd() {
	if v.pop("Resource") {
		v.Next.ResourceEnd()
	}
}

func (v *Validator) IfBegin(condition string) {
	v.push("If")
	v.Next.IfBegin(condition)
}

func (v *Validator) ElseIf(condition string) {
	if !v.inIf() {
		v.svc.ErrorHandler().HandleError(ri.Errorf(ri.ErrNesting,
			"ElseIf outside an If block"))
		return
	}
	v.Next.ElseIf(condition)
}

func (v *Validator) Else() {
	if !v.inIf() {
		v.svc.ErrorHandler().HandleError(ri.Errorf(ri.ErrNesting,
			"Else outside an If block"))
		return
	}
	v.Next.Else()
}

func (v *Validator) IfEnd() {
	if v.pop("If") {
		v.Next.IfEnd()
	}
}

// OpenScopes returns the currently open scope kinds, outermost first.
// Tooling uses it to report unterminated blocks at end of input.
func (v *Validator) OpenScopes() []string {
	out := make([]string, len(v.open))
	copy(out, v.open)
	return out
}
