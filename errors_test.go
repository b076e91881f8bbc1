package wirekit_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/protobuf/types/known/anypb"

	"github.com/reoring/wirekit"
	"github.com/reoring/wirekit/i18n"
)

func TestError_MessageAndMatching(t *testing.T) {
	reg := newRegistry(t)
	_, err := reg.Unbox(&anypb.Any{TypeUrl: "type.googleapis.com/no.such.schema"})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if got, want := err.Error(), `wirekit: unknown type id "no.such.schema"`; got != want {
		t.Fatalf("unexpected message %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("restore checkpoint: %w", err)
	if !errors.Is(wrapped, wirekit.ErrUnknownTypeID) || errors.Is(wrapped, wirekit.ErrNoRuleForClass) {
		t.Fatalf("sentinels must match by code only")
	}
	if !wirekit.IsNonRetryable(wrapped) {
		t.Fatalf("translation errors are never retryable")
	}
	if wirekit.IsNonRetryable(errors.New("io timeout")) {
		t.Fatalf("foreign errors carry no marker")
	}
	if _, ok := wirekit.AsError(nil); ok {
		t.Fatalf("nil is not an *Error")
	}
}

func TestError_CauseIsUnwrapped(t *testing.T) {
	reg := newRegistry(t)
	_, err := reg.Unbox(&anypb.Any{TypeUrl: wirekit.TypeURLPrefix + "google.protobuf.StringValue", Value: []byte{0x0a, 0x05}})
	e, ok := wirekit.AsError(err)
	if !ok || e.Code != wirekit.CodeMalformedPayload {
		t.Fatalf("expected malformed payload, got %v", err)
	}
	if e.Unwrap() == nil || !strings.Contains(err.Error(), e.Unwrap().Error()) {
		t.Fatalf("expected the decode cause in %q", err.Error())
	}
}

func TestError_LocalizedMessage(t *testing.T) {
	i18n.SetLanguage("ja")
	t.Cleanup(func() { i18n.SetLanguage("en") })

	reg := newRegistry(t)
	_, err := reg.Convert(struct{}{})
	if !strings.Contains(err.Error(), "変換ルールが登録されていません") {
		t.Fatalf("expected the japanese message, got %q", err.Error())
	}
	if !errors.Is(err, wirekit.ErrNoRuleForClass) {
		t.Fatalf("codes do not depend on the language")
	}
}

func TestSeverityAndFormatStrings(t *testing.T) {
	if wirekit.Warn.String() != "warn" || wirekit.Reject.String() != "reject" || wirekit.Severity(9).String() != "severity(9)" {
		t.Fatalf("unexpected severity strings")
	}
	for in, want := range map[string]wirekit.Format{"json": wirekit.FormatJSON, "YAML": wirekit.FormatYAML, "yml": wirekit.FormatYAML} {
		got, err := wirekit.ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("%s: got %v, %v", in, got, err)
		}
	}
	if _, err := wirekit.ParseFormat("toml"); err == nil {
		t.Fatalf("expected an error for toml")
	}
}
