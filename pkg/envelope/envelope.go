// Package envelope centralizes the API response shape and its factory
// functions. Handlers rely on it to keep controllers thin and uniform:
// every boundary returns the same record whether the call succeeded or not,
// and every record carries a non-empty correlation reference.
package envelope

import (
	"strings"

	"github.com/google/uuid"

	"github.com/maxviazov/apikit/pkg/failure"
)

// NoData is the empty payload placeholder used by envelopes that carry no
// payload. It serializes as an empty JSON object rather than null.
type NoData = struct{}

// Envelope is the canonical response record returned by every API boundary.
// Construct it through the factory functions below; never mutate one after
// construction.
type Envelope[T any] struct {
	IsError       bool   `json:"is_error"`
	Message       string `json:"message"`
	Data          T      `json:"data"`
	ReferenceName string `json:"reference_name"`
}

// Validated is the typed variant carrying field-level validation errors.
// FieldErrors stays empty on success and on non-validation failures.
type Validated[T any] struct {
	Envelope[T]
	FieldErrors []failure.FieldError `json:"field_errors,omitempty"`
}

// Option adjusts envelope construction. The only knob today is the
// reference-name generator, injected so tests can use deterministic ids.
type Option func(*settings)

type settings struct {
	newID func() string
}

// WithIDSource overrides the reference-name generator for one construction.
// A nil fn keeps the default (uuid.NewString).
func WithIDSource(fn func() string) Option {
	return func(s *settings) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{newID: uuid.NewString}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// reference passes a non-blank caller-supplied value through verbatim and
// generates a fresh id otherwise, so a constructed envelope is never without one.
func (s settings) reference(ref string) string {
	if strings.TrimSpace(ref) == "" {
		return s.newID()
	}
	return ref
}

const (
	defaultErrorMessage      = "Error"
	defaultBadRequestMessage = "Bad request"
)

// OK builds a success envelope without a payload.
func OK(message string, opts ...Option) Envelope[NoData] {
	s := newSettings(opts)
	return Envelope[NoData]{Message: message, ReferenceName: s.newID()}
}

// Success builds a success envelope carrying data. The zero value of T is
// the payload when callers have nothing meaningful to return.
func Success[T any](message string, data T, opts ...Option) Envelope[T] {
	s := newSettings(opts)
	return Envelope[T]{Message: message, Data: data, ReferenceName: s.newID()}
}

// Error builds a failure envelope with no payload. An empty message falls
// back to a generic one; a blank referenceName is replaced by a fresh id.
func Error(message, referenceName string, opts ...Option) Envelope[NoData] {
	s := newSettings(opts)
	if message == "" {
		message = defaultErrorMessage
	}
	return Envelope[NoData]{
		IsError:       true,
		Message:       message,
		ReferenceName: s.reference(referenceName),
	}
}

// ErrorData builds a failure envelope that still carries a payload, for the
// rare boundary that reports partial results alongside the failure.
func ErrorData[T any](message, referenceName string, data T, opts ...Option) Envelope[T] {
	s := newSettings(opts)
	if message == "" {
		message = defaultErrorMessage
	}
	return Envelope[T]{
		IsError:       true,
		Message:       message,
		Data:          data,
		ReferenceName: s.reference(referenceName),
	}
}

// ErrorFrom derives a failure envelope from an existing one, keeping its
// message and reference but discarding its payload. The payload loss is
// intentional; callers needing it use ErrorData instead.
func ErrorFrom[T any](src Envelope[T], opts ...Option) Envelope[NoData] {
	s := newSettings(opts)
	return Envelope[NoData]{
		IsError:       true,
		Message:       src.Message,
		ReferenceName: s.reference(src.ReferenceName),
	}
}

// NotFound builds a failure envelope for missing resources. Same shape as
// Error; the name documents intent at the call site.
func NotFound(message string, opts ...Option) Envelope[NoData] {
	s := newSettings(opts)
	return Envelope[NoData]{
		IsError:       true,
		Message:       message,
		ReferenceName: s.newID(),
	}
}

// BadRequest wraps a failure's description into an envelope, never exposing
// the failure value itself. A nil error or blank description falls back to
// a generic message.
func BadRequest(err error, opts ...Option) Envelope[NoData] {
	s := newSettings(opts)
	message := defaultBadRequestMessage
	if err != nil {
		if m := strings.TrimSpace(err.Error()); m != "" {
			message = m
		}
	}
	return Envelope[NoData]{
		IsError:       true,
		Message:       message,
		ReferenceName: s.reference(failure.ReferenceOf(err)),
	}
}

// Invalid builds the typed failure envelope with field-level errors.
func Invalid[T any](message, referenceName string, fields []failure.FieldError, opts ...Option) Validated[T] {
	s := newSettings(opts)
	if message == "" {
		message = defaultErrorMessage
	}
	return Validated[T]{
		Envelope: Envelope[T]{
			IsError:       true,
			Message:       message,
			ReferenceName: s.reference(referenceName),
		},
		FieldErrors: fields,
	}
}

// FromFailure converts a carryable failure raised deep in a call chain into
// the typed envelope, extracting its reference and field errors when present.
func FromFailure[T any](err error, opts ...Option) Validated[T] {
	s := newSettings(opts)
	message := defaultBadRequestMessage
	if err != nil {
		if m := strings.TrimSpace(err.Error()); m != "" {
			message = m
		}
	}
	return Validated[T]{
		Envelope: Envelope[T]{
			IsError:       true,
			Message:       message,
			ReferenceName: s.reference(failure.ReferenceOf(err)),
		},
		FieldErrors: failure.FieldsOf(err),
	}
}
