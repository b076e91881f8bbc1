package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/wirekit"
)

func defaultConfig() Config {
	return Config{LogLevel: "error", LogFormat: "console", Format: "json", Indent: 2, Duplicates: "warn", Lang: "en"}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(defaultConfig())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// --- config ---

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Format != "json" || c.Indent != 2 || c.Duplicates != "warn" {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("WIREKIT_FORMAT", "yaml")
	t.Setenv("WIREKIT_INDENT", "4")
	t.Setenv("WIREKIT_DUPLICATES", "reject")
	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Format != "yaml" || c.Indent != 4 || c.Duplicates != "reject" {
		t.Errorf("unexpected config: %+v", c)
	}
}

func TestLoadConfig_BadInt(t *testing.T) {
	t.Setenv("WIREKIT_INDENT", "wide")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected a parse error")
	}
}

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		input string
		want  wirekit.Severity
	}{
		{"ignore", wirekit.Ignore},
		{"WARN", wirekit.Warn},
		{"", wirekit.Warn},
		{"reject", wirekit.Reject},
		{"error", wirekit.Reject},
	}
	for _, c := range cases {
		got, err := parseSeverity(c.input)
		if err != nil || got != c.want {
			t.Errorf("parseSeverity(%q) = %v, %v; want %v", c.input, got, err, c.want)
		}
	}
	if _, err := parseSeverity("panic"); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}

// --- commands ---

func TestSchemas_ListsDemoTypes(t *testing.T) {
	out, err := run(t, "schemas")
	if err != nil {
		t.Fatalf("schemas: %v", err)
	}
	for _, want := range []string{"wirekit.demo.v1.PersonInput", "wirekit.demo.v1.GlobalPropertyIdInput", "google.type.Date"} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("expected %s in:\n%s", want, out)
		}
	}
}

func TestJSONSchema_PrintsProjection(t *testing.T) {
	out, err := run(t, "jsonschema", "wirekit.demo.v1.PersonInput")
	if err != nil {
		t.Fatalf("jsonschema: %v", err)
	}
	if !strings.Contains(out, `"title": "wirekit.demo.v1.PersonInput"`) {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = run(t, "jsonschema", "--format", "yaml", "wirekit.demo.v1.RegionIdInput")
	if err != nil {
		t.Fatalf("jsonschema yaml: %v", err)
	}
	if !strings.Contains(out, "title: wirekit.demo.v1.RegionIdInput") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestJSONSchema_UnknownTypeID(t *testing.T) {
	_, err := run(t, "jsonschema", "no.such.schema")
	if !errors.Is(err, wirekit.ErrUnknownTypeID) {
		t.Errorf("expected unknown type id, got %v", err)
	}
}

func TestCheckpoint_WriteThenShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.cbor")
	if _, err := run(t, "checkpoint", "write", path); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := run(t, "checkpoint", "show", path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"# people", "# regions", "# tick", `"name": "Ada"`, "wirekit.demo.v1.PeoplePluginDataInput"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}

	out, err = run(t, "checkpoint", "show", "-f", "yaml", path)
	if err != nil {
		t.Fatalf("show yaml: %v", err)
	}
	if !strings.Contains(out, "name: Grace") {
		t.Errorf("expected yaml output, got:\n%s", out)
	}
}

func TestCheckpoint_ShowMissingFile(t *testing.T) {
	if _, err := run(t, "checkpoint", "show", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestRoot_RejectsBadFlags(t *testing.T) {
	if _, err := run(t, "schemas", "--format", "toml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
	if _, err := run(t, "schemas", "--duplicates", "panic"); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}
