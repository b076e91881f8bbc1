package demo_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/protobuf/proto"

	"github.com/reoring/wirekit"
	"github.com/reoring/wirekit/internal/demo"
	"github.com/reoring/wirekit/internal/demo/demopb"
)

func mustRegistry(t *testing.T, modules ...demo.Module) *wirekit.Registry {
	t.Helper()
	reg, err := demo.NewRegistry(modules)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return reg
}

func TestSampleState_ConvertRoundTrip(t *testing.T) {
	reg := mustRegistry(t)
	for key, in := range demo.SampleState() {
		wire, err := reg.Convert(in)
		if err != nil {
			t.Fatalf("%s: to wire: %v", key, err)
		}
		if _, ok := wire.(proto.Message); !ok {
			t.Fatalf("%s: expected a wire message, got %T", key, wire)
		}
		out, err := reg.Convert(wire)
		if err != nil {
			t.Fatalf("%s: to domain: %v", key, err)
		}
		if diff := cmp.Diff(in, out); diff != "" {
			t.Fatalf("%s: roundtrip mismatch (-want +got):\n%s", key, diff)
		}
	}
}

func TestSampleState_BoxUnboxRoundTrip(t *testing.T) {
	reg := mustRegistry(t)
	for key, in := range demo.SampleState() {
		env, err := reg.BoxValue(in)
		if err != nil {
			t.Fatalf("%s: box: %v", key, err)
		}
		out, err := reg.Unbox(env)
		if err != nil {
			t.Fatalf("%s: unbox: %v", key, err)
		}
		if diff := cmp.Diff(in, out); diff != "" {
			t.Fatalf("%s: roundtrip mismatch (-want +got):\n%s", key, diff)
		}
	}
}

func TestPeopleModule_DiscoversNestedSchemas(t *testing.T) {
	reg := mustRegistry(t, demo.People())
	ids := reg.TypeIDs()

	for _, want := range []string{
		"wirekit.demo.v1.PeoplePluginDataInput",
		"wirekit.demo.v1.PersonInput",
		"wirekit.demo.v1.RegionIdInput",
		"wirekit.demo.v1.PropertyValueInput",
		"wirekit.demo.v1.PropertyIdInput",
	} {
		if !slices.Contains(ids, want) {
			t.Fatalf("expected %s in %v", want, ids)
		}
	}
	// Only reachable through google.protobuf.Any fields.
	for _, absent := range []string{
		"wirekit.demo.v1.GlobalPropertyIdInput",
		"wirekit.demo.v1.RegionPropertyIdInput",
		"wirekit.demo.v1.RegionsPluginDataInput",
	} {
		if slices.Contains(ids, absent) {
			t.Fatalf("did not expect %s in %v", absent, ids)
		}
	}
}

func TestPropertyID_ConvertAsInterface(t *testing.T) {
	reg := mustRegistry(t)
	iface := reflect.TypeFor[demo.PropertyID]()

	cases := []struct {
		id      demo.PropertyID
		typeURL string
	}{
		{demo.PersonVaccinated, "type.googleapis.com/google.protobuf.EnumValue"},
		{demo.GlobalProperty("occupation"), "type.googleapis.com/wirekit.demo.v1.GlobalPropertyIdInput"},
		{demo.RegionProperty{Name: "population", Index: 3}, "type.googleapis.com/wirekit.demo.v1.RegionPropertyIdInput"},
	}
	for _, tc := range cases {
		out, err := reg.ConvertAs(tc.id, iface)
		if err != nil {
			t.Fatalf("%v: convert as: %v", tc.id, err)
		}
		w, ok := out.(*demopb.PropertyIdInput)
		if !ok {
			t.Fatalf("%v: expected *demopb.PropertyIdInput, got %T", tc.id, out)
		}
		if got := w.GetId().GetTypeUrl(); got != tc.typeURL {
			t.Fatalf("%v: unexpected type url %s", tc.id, got)
		}
		back, err := wirekit.ToDomain[demo.PropertyID](reg, w)
		if err != nil {
			t.Fatalf("%v: back: %v", tc.id, err)
		}
		if back != tc.id {
			t.Fatalf("roundtrip mismatch: %v != %v", back, tc.id)
		}
	}
}

func TestPropertyID_ConcreteRulesStaySeparate(t *testing.T) {
	reg := mustRegistry(t)

	out, err := reg.Convert(demo.GlobalProperty("occupation"))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if _, ok := out.(*demopb.GlobalPropertyIdInput); !ok {
		t.Fatalf("expected the concrete rule, got %T", out)
	}

	_, err = reg.ConvertAs(int32(1), reflect.TypeFor[demo.PropertyID]())
	if !errors.Is(err, wirekit.ErrInvalidInputClass) {
		t.Fatalf("expected invalid input class, got %v", err)
	}
}

func TestMissingModule_FailsWithClass(t *testing.T) {
	reg := mustRegistry(t, demo.People())
	in := demo.SampleState()["people"]

	_, err := reg.Convert(in)
	if !errors.Is(err, wirekit.ErrNoRuleForClass) {
		t.Fatalf("expected no rule for class, got %v", err)
	}
	e, _ := wirekit.AsError(err)
	if e.Class != "demo.PropertyValue" {
		t.Fatalf("expected the missing class to be named, got %q", e.Class)
	}
}

func TestSharedRule_NoDuplicateWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	if _, err := demo.Registry(wirekit.WithLogger(zap.New(core))); err != nil {
		t.Fatalf("build: %v", err)
	}
	if n := logs.Len(); n != 0 {
		t.Fatalf("expected no warnings, got %d: %v", n, logs.All())
	}
}
