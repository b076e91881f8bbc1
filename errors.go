package wirekit

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/reoring/wirekit/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNoRuleForClass         = "no_rule_for_class"
	CodeUnknownTypeID          = "unknown_type_id"
	CodeInvalidInputClass      = "invalid_input_class"
	CodeInvalidTranslationSpec = "invalid_translation_spec"
	CodeConflictingRule        = "conflicting_rule"
	CodeBuilderClosed          = "builder_closed"
	CodeMalformedPayload       = "malformed_payload"
)

// Sentinels for errors.Is. An *Error matches a sentinel when the codes agree.
var (
	ErrNoRuleForClass         = &Error{Code: CodeNoRuleForClass}
	ErrUnknownTypeID          = &Error{Code: CodeUnknownTypeID}
	ErrInvalidInputClass      = &Error{Code: CodeInvalidInputClass}
	ErrInvalidTranslationSpec = &Error{Code: CodeInvalidTranslationSpec}
	ErrConflictingRule        = &Error{Code: CodeConflictingRule}
	ErrBuilderClosed          = &Error{Code: CodeBuilderClosed}
	ErrMalformedPayload       = &Error{Code: CodeMalformedPayload}
)

// Error reports a translation failure. Every failure is a configuration or
// wiring defect, so none of them is worth retrying.
type Error struct {
	Code    string // One of the codes listed above.
	Class   string // Offending Go type or message full name, when known.
	TypeID  string // Offending envelope type id, when known.
	Message string // Optional detail.
	Cause   error  // Optional: underlying error.
}

func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString("wirekit: ")
	b.WriteString(i18n.T(e.Code, e.params()))
	if e.Class != "" {
		fmt.Fprintf(b, " %s", e.Class)
	}
	if e.TypeID != "" {
		fmt.Fprintf(b, " %q", e.TypeID)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches sentinels by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// NonRetryable reports that the failure is permanent.
func (e *Error) NonRetryable() bool { return true }

func (e *Error) params() map[string]string {
	p := map[string]string{}
	if e.Class != "" {
		p["class"] = e.Class
	}
	if e.TypeID != "" {
		p["type_id"] = e.TypeID
	}
	return p
}

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsNonRetryable returns true when the error (or any error in its chain)
// signals that the operation must not be retried.
func IsNonRetryable(err error) bool {
	var target interface{ NonRetryable() bool }
	if errors.As(err, &target) {
		return target.NonRetryable()
	}
	return false
}

// ---- constructors ----

func noRuleForClass(class string) error {
	return &Error{Code: CodeNoRuleForClass, Class: class}
}

func unknownTypeID(id string) error {
	return &Error{Code: CodeUnknownTypeID, TypeID: id}
}

func invalidInputClass(class, msg string) error {
	return &Error{Code: CodeInvalidInputClass, Class: class, Message: msg}
}

func invalidTranslationSpec(msg string) error {
	return &Error{Code: CodeInvalidTranslationSpec, Message: msg}
}

func malformedPayload(class string, cause error) error {
	return &Error{Code: CodeMalformedPayload, Class: class, Cause: cause}
}

func builderClosed() error {
	return &Error{Code: CodeBuilderClosed}
}

// className renders the class of v for diagnostics.
func className(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
