package ri

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Error represents a recoverable error raised while processing a scene
// stream. No Error aborts the pipeline; stages report and continue.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// File and Line locate the error in a source stream, when known.
	File string
	Line int
}

// ErrorCode categorizes stream processing errors.
type ErrorCode string

const (
	// ErrBadHandle indicates a reference to an undefined object handle.
	ErrBadHandle ErrorCode = "BAD_HANDLE"

	// ErrBadToken indicates an unrecognized request or token.
	ErrBadToken ErrorCode = "BAD_TOKEN"

	// ErrSyntax indicates malformed stream input.
	ErrSyntax ErrorCode = "SYNTAX"

	// ErrNesting indicates an unbalanced begin/end scope pair.
	ErrNesting ErrorCode = "NESTING"

	// ErrLimit indicates an implementation limit was hit, such as the
	// replay recursion guard.
	ErrLimit ErrorCode = "LIMIT"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errorf constructs an Error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsBadHandle returns true if the error is a bad handle error.
// Uses errors.As to handle wrapped errors.
func IsBadHandle(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Code == ErrBadHandle
}

// IsLimit returns true if the error is an implementation limit error.
func IsLimit(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Code == ErrLimit
}

// ErrorHandler receives recoverable stream errors. Handlers must not
// block; reporting is fire-and-forget from the caller's point of view.
type ErrorHandler interface {
	HandleError(err *Error)
}

// LogHandler reports errors through a slog.Logger.
// This is the production handler; the zero value logs via slog.Default.
type LogHandler struct {
	Logger *slog.Logger
}

// HandleError implements ErrorHandler.
func (h *LogHandler) HandleError(err *Error) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if err.File != "" {
		logger.Error("stream error", "code", string(err.Code), "msg", err.Message,
			"file", err.File, "line", err.Line)
		return
	}
	logger.Error("stream error", "code", string(err.Code), "msg", err.Message)
}

// CaptureHandler collects errors for later inspection. Used by tests and
// by tooling that wants to summarize a run.
//
// Thread-safety: safe for concurrent use via internal mutex.
type CaptureHandler struct {
	mu   sync.Mutex
	errs []*Error
}

// HandleError implements ErrorHandler.
func (h *CaptureHandler) HandleError(err *Error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

// Errors returns a copy of the captured errors in report order.
func (h *CaptureHandler) Errors() []*Error {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*Error, len(h.errs))
	copy(out, h.errs)
	return out
}

// Count returns how many errors have been captured.
func (h *CaptureHandler) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.errs)
}
