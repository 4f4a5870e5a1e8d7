// Package rifilter implements the scene stream filter pipeline.
//
// A Chain is an explicit, ordered list of stages terminated by a sink.
// Each stage is an ri.Renderer that receives every call and usually
// forwards it to the next stage. Stages also get a Services handle giving
// them the head of the whole chain, which is where cached content is
// re-injected so that every stage observes replayed calls as if the
// original definition had been textually inlined at the reference point.
package rifilter

import (
	"log/slog"

	"github.com/strattonbrazil/aqsis/internal/ri"
)

// Services is the view a filter stage has of its owning chain, beyond the
// next stage it forwards to.
type Services interface {
	// FirstFilter returns the current head of the chain. Replayed
	// content enters here, not at the next stage, so that earlier
	// stages can observe and re-process it.
	FirstFilter() ri.Renderer

	// ErrorHandler returns the chain's error reporting collaborator.
	ErrorHandler() ri.ErrorHandler
}

// Constructor builds a filter stage bound to a chain and its next stage.
type Constructor func(svc Services, next ri.Renderer) ri.Renderer

// Chain owns an ordered list of filter stages in front of a sink.
//
// A chain is single-threaded: every call into In() runs to completion on
// the calling goroutine, mutating only chain-owned state. Use one chain
// per logical stream of requests.
type Chain struct {
	handler ri.ErrorHandler
	sink    ri.Renderer
	stages  []ri.Renderer // front of chain first
}

// Option configures a Chain.
type Option func(*Chain)

// WithErrorHandler sets the error reporting collaborator.
// Default: a LogHandler on slog.Default.
func WithErrorHandler(h ri.ErrorHandler) Option {
	return func(c *Chain) {
		c.handler = h
	}
}

// NewChain creates a chain with no filter stages: calls into In() go
// straight to sink until filters are prepended.
func NewChain(sink ri.Renderer, opts ...Option) *Chain {
	c := &Chain{
		handler: &ri.LogHandler{Logger: slog.Default()},
		sink:    sink,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prepend installs a new stage in front of the current head. Filters are
// therefore added sink-side first; the last Prepend call becomes the head.
func (c *Chain) Prepend(ctor Constructor) {
	stage := ctor(c, c.In())
	c.stages = append([]ri.Renderer{stage}, c.stages...)
}

// In returns the chain entry point: the first stage, or the sink when no
// filters are installed. Callers feed the request stream here.
func (c *Chain) In() ri.Renderer {
	if len(c.stages) > 0 {
		return c.stages[0]
	}
	return c.sink
}

// FirstFilter implements Services. It is evaluated at call time, so a
// stage constructed before later Prepend calls still replays into the
// true head of the finished chain.
func (c *Chain) FirstFilter() ri.Renderer { return c.In() }

// ErrorHandler implements Services.
func (c *Chain) ErrorHandler() ri.ErrorHandler { return c.handler }
