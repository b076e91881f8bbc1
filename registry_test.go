package wirekit_test

import (
	"errors"
	"reflect"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/apipb"
	"google.golang.org/protobuf/types/known/typepb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/reoring/wirekit"
)

func TestConvert_DomainRoundTrip(t *testing.T) {
	reg := newRegistry(t)
	in := library()

	wire, err := reg.Convert(in)
	if err != nil {
		t.Fatalf("to wire: %v", err)
	}
	api, ok := wire.(*apipb.Api)
	if !ok {
		t.Fatalf("expected *apipb.Api, got %T", wire)
	}
	if len(api.GetMethods()) != 2 || !api.GetMethods()[1].GetRequestStreaming() {
		t.Fatalf("unexpected wire value: %v", api)
	}

	out, err := reg.Convert(wire)
	if err != nil {
		t.Fatalf("to domain: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_WireRoundTrip(t *testing.T) {
	reg := newRegistry(t)
	in := &apipb.Method{Name: "ListBooks", RequestStreaming: true}

	d, err := reg.Convert(in)
	if err != nil {
		t.Fatalf("to domain: %v", err)
	}
	out, err := reg.Convert(d)
	if err != nil {
		t.Fatalf("to wire: %v", err)
	}
	if diff := cmp.Diff(in, out, protocmp.Transform()); diff != "" {
		t.Fatalf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_Primitives(t *testing.T) {
	reg := newRegistry(t)
	values := []any{
		true, int32(-7), uint32(7), int64(-1 << 40), uint64(1 << 63),
		"text", float32(1.5), 2.25,
		wirekit.Date{Year: 2024, Month: time.February, Day: 29},
		colorBlue,
	}
	for _, in := range values {
		wire, err := reg.Convert(in)
		if err != nil {
			t.Fatalf("%T: to wire: %v", in, err)
		}
		out, err := reg.Convert(wire)
		if err != nil {
			t.Fatalf("%T: to domain: %v", in, err)
		}
		if out != in {
			t.Fatalf("%T: roundtrip mismatch: %v != %v", in, out, in)
		}
	}
}

func TestConvert_NoRuleForClass(t *testing.T) {
	reg := newRegistry(t)
	type unregistered struct{}

	_, err := reg.Convert(unregistered{})
	if !errors.Is(err, wirekit.ErrNoRuleForClass) {
		t.Fatalf("expected no rule for class, got %v", err)
	}
	e, ok := wirekit.AsError(err)
	if !ok || e.Class != "wirekit_test.unregistered" {
		t.Fatalf("expected class in error, got %#v", e)
	}

	// A message without a rule is not convertible either.
	_, err = reg.Convert(&apipb.Mixin{Name: "m"})
	if !errors.Is(err, wirekit.ErrNoRuleForClass) {
		t.Fatalf("expected no rule for class, got %v", err)
	}

	_, err = reg.Convert(nil)
	if !errors.Is(err, wirekit.ErrInvalidInputClass) {
		t.Fatalf("expected invalid input class for nil, got %v", err)
	}
}

type named interface{ Label() string }

type cat struct{ Name string }
type dog struct{ Name string }

func (c cat) Label() string { return "cat:" + c.Name }
func (d dog) Label() string { return "dog:" + d.Name }

func TestConvertAs_InterfaceKeyedRule(t *testing.T) {
	namedRule := wirekit.NewRule(
		func(_ wirekit.Converter, w *wrapperspb.StringValue) (named, error) {
			return cat{Name: w.GetValue()}, nil
		},
		func(_ wirekit.Converter, n named) (*wrapperspb.StringValue, error) {
			return wrapperspb.String(n.Label()), nil
		},
	)
	reg, err := wirekit.New().AddRule(namedRule).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	iface := reflect.TypeFor[named]()

	for _, v := range []named{cat{Name: "tom"}, dog{Name: "rex"}} {
		if _, err := reg.Convert(v); !errors.Is(err, wirekit.ErrNoRuleForClass) {
			t.Fatalf("%T: concrete class must not resolve, got %v", v, err)
		}
		out, err := reg.ConvertAs(v, iface)
		if err != nil {
			t.Fatalf("%T: convert as: %v", v, err)
		}
		if got := out.(*wrapperspb.StringValue).GetValue(); got != v.Label() {
			t.Fatalf("unexpected wire value %q", got)
		}
	}

	m, err := wirekit.ConvertAsType[named](reg, dog{Name: "rex"})
	if err != nil {
		t.Fatalf("convert as type: %v", err)
	}
	if diff := cmp.Diff(wrapperspb.String("dog:rex"), m, protocmp.Transform()); diff != "" {
		t.Fatalf("unexpected message (-want +got):\n%s", diff)
	}

	_, err = reg.ConvertAs("plain", iface)
	if !errors.Is(err, wirekit.ErrInvalidInputClass) {
		t.Fatalf("expected invalid input class, got %v", err)
	}
}

func TestConvertAs_WireAncestor(t *testing.T) {
	reg := newRegistry(t)
	out, err := reg.ConvertAs(&apipb.Method{Name: "Get"}, reflect.TypeFor[*apipb.Method]())
	if err != nil {
		t.Fatalf("convert as: %v", err)
	}
	if out != (endpoint{Name: "Get"}) {
		t.Fatalf("unexpected value %v", out)
	}

	_, err = reg.ConvertAs(cat{}, reflect.TypeFor[named]())
	if !errors.Is(err, wirekit.ErrNoRuleForClass) {
		t.Fatalf("expected no rule for class, got %v", err)
	}
}

func TestBoxUnbox_RoundTrip(t *testing.T) {
	reg := newRegistry(t)
	values := []any{
		true, int32(42), uint32(42), int64(42), uint64(42),
		"hello", float32(0.5), 0.125,
		wirekit.Date{Year: 1999, Month: time.December, Day: 31},
		colorGreen,
		endpoint{Name: "GetBook"},
	}
	for _, in := range values {
		env, err := reg.BoxValue(in)
		if err != nil {
			t.Fatalf("%T: box: %v", in, err)
		}
		out, err := reg.Unbox(env)
		if err != nil {
			t.Fatalf("%T: unbox: %v", in, err)
		}
		if out != in {
			t.Fatalf("%T: roundtrip mismatch: %v != %v", in, out, in)
		}
	}

	env, err := reg.BoxValue(library())
	if err != nil {
		t.Fatalf("box service: %v", err)
	}
	out, err := reg.Unbox(env)
	if err != nil {
		t.Fatalf("unbox service: %v", err)
	}
	if diff := cmp.Diff(library(), out); diff != "" {
		t.Fatalf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestBoxValue_TypeIDs(t *testing.T) {
	reg := newRegistry(t)
	cases := map[any]string{
		int32(1):                "google.protobuf.Int32Value",
		"s":                     "google.protobuf.StringValue",
		wirekit.Date{Year: 1}:   "google.type.Date",
		colorRed:                "google.protobuf.EnumValue",
		endpoint{Name: "Get"}:   "google.protobuf.Method",
		&apipb.Mixin{Name: "m"}: "google.protobuf.Mixin",
	}
	for in, want := range cases {
		env, err := reg.BoxValue(in)
		if err != nil {
			t.Fatalf("%T: box: %v", in, err)
		}
		if got := env.GetTypeUrl(); got != wirekit.TypeURLPrefix+want {
			t.Fatalf("%T: unexpected type url %s", in, got)
		}
	}
}

func TestTypeIDOfURL(t *testing.T) {
	cases := map[string]string{
		"type.googleapis.com/google.protobuf.Api": "google.protobuf.Api",
		"example.com/a/b/demo.v1.Person":          "demo.v1.Person",
		"demo.v1.Person":                          "demo.v1.Person",
		"trailing/":                               "",
	}
	for in, want := range cases {
		if got := wirekit.TypeIDOfURL(in); got != want {
			t.Fatalf("%q: got %q, want %q", in, got, want)
		}
	}
}

func TestBoxValue_WireMessageWithoutRuleUnboxesAsMessage(t *testing.T) {
	reg := newRegistry(t)
	in := &apipb.Mixin{Name: "google.storage.v1", Root: "v1"}

	env, err := reg.BoxValue(in)
	if err != nil {
		t.Fatalf("box: %v", err)
	}
	out, err := reg.Unbox(env)
	if err != nil {
		t.Fatalf("unbox: %v", err)
	}
	if diff := cmp.Diff(in, out, protocmp.Transform()); diff != "" {
		t.Fatalf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestBoxValue_InvalidInputClass(t *testing.T) {
	reg := newRegistry(t)
	type opaque struct{ n int }

	for _, in := range []any{
		opaque{n: 1},
		42, // int has no fixed width; callers pick int32 or int64
		&typepb.Type{Name: "not discovered"},
		&anypb.Any{},
		nil,
	} {
		if _, err := reg.BoxValue(in); !errors.Is(err, wirekit.ErrInvalidInputClass) {
			t.Fatalf("%T: expected invalid input class, got %v", in, err)
		}
	}
}

func TestUnbox_UnknownTypeID(t *testing.T) {
	reg := newRegistry(t)
	env := &anypb.Any{TypeUrl: "type.googleapis.com/no.such.schema", Value: []byte{0x08, 0x01}}

	v, err := reg.Unbox(env)
	if !errors.Is(err, wirekit.ErrUnknownTypeID) {
		t.Fatalf("expected unknown type id, got %v (value %v)", err, v)
	}
	if v != nil {
		t.Fatalf("expected no value, got %v", v)
	}
	e, _ := wirekit.AsError(err)
	if e.TypeID != "no.such.schema" {
		t.Fatalf("expected type id in error, got %q", e.TypeID)
	}

	_, err = reg.Unbox(&anypb.Any{})
	if !errors.Is(err, wirekit.ErrUnknownTypeID) {
		t.Fatalf("expected unknown type id for empty url, got %v", err)
	}
}

func TestUnbox_UnknownEnumName(t *testing.T) {
	reg := newRegistry(t)
	b, err := proto.Marshal(&typepb.EnumValue{Name: "test.Shape", Number: 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	_, err = reg.Unbox(&anypb.Any{TypeUrl: wirekit.TypeURLPrefix + "google.protobuf.EnumValue", Value: b})
	if !errors.Is(err, wirekit.ErrUnknownTypeID) {
		t.Fatalf("expected unknown type id, got %v", err)
	}
}

func TestUnbox_MalformedPayload(t *testing.T) {
	reg := newRegistry(t)
	_, err := reg.Unbox(&anypb.Any{TypeUrl: wirekit.TypeURLPrefix + "google.protobuf.Int32Value", Value: []byte{0xff}})
	if !errors.Is(err, wirekit.ErrMalformedPayload) {
		t.Fatalf("expected malformed payload, got %v", err)
	}
}

func TestScenario_Int32AndEnum(t *testing.T) {
	reg, err := wirekit.New().
		AddRule(wirekit.Int32Rule()).
		AddEnum(colorEnum).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	env, err := reg.BoxValue(int32(42))
	if err != nil {
		t.Fatalf("box int32: %v", err)
	}
	v, err := reg.Unbox(env)
	if err != nil || v != int32(42) {
		t.Fatalf("unbox int32: %v, %v", v, err)
	}

	env, err = reg.BoxValue(colorGreen)
	if err != nil {
		t.Fatalf("box enum: %v", err)
	}
	var w typepb.EnumValue
	if err := env.UnmarshalTo(&w); err != nil {
		t.Fatalf("decode enum wrapper: %v", err)
	}
	if w.GetName() != "test.Color" || w.GetNumber() != 1 {
		t.Fatalf("unexpected enum wrapper: %v", &w)
	}
	v, err = reg.Unbox(env)
	if err != nil || v != colorGreen {
		t.Fatalf("unbox enum: %v, %v", v, err)
	}
}

func TestRegistry_Introspection(t *testing.T) {
	reg := newRegistry(t)

	mt, err := reg.ClassForTypeID("google.protobuf.Api")
	if err != nil {
		t.Fatalf("class for type id: %v", err)
	}
	if mt.Descriptor().FullName() != "google.protobuf.Api" {
		t.Fatalf("unexpected type %v", mt.Descriptor().FullName())
	}
	if _, err := reg.ClassForTypeID("google.protobuf.Type"); !errors.Is(err, wirekit.ErrUnknownTypeID) {
		t.Fatalf("expected unknown type id, got %v", err)
	}

	if !reg.HasDomainType(reflect.TypeFor[service]()) || !reg.HasDomainType(reflect.TypeFor[color]()) {
		t.Fatalf("expected service and color to be registered")
	}
	if !reg.HasWireType("google.protobuf.Method") || reg.HasWireType("google.protobuf.Mixin") {
		t.Fatalf("unexpected wire registrations")
	}

	ids := reg.TypeIDs()
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("type ids must be sorted: %v", ids)
	}
	for _, want := range []string{
		"google.protobuf.Api", "google.protobuf.Method", "google.protobuf.Mixin",
		"google.protobuf.Option", "google.protobuf.SourceContext",
		"google.protobuf.BoolValue", "google.protobuf.EnumValue", "google.type.Date",
	} {
		if !slices.Contains(ids, want) {
			t.Fatalf("expected %s in %v", want, ids)
		}
	}
	if got := len(reg.Schemas()); got != len(ids) {
		t.Fatalf("schemas and type ids disagree: %d != %d", got, len(ids))
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	reg := newRegistry(t)
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int32) {
			defer wg.Done()
			env, err := reg.BoxValue(n)
			if err != nil {
				errs <- err
				return
			}
			v, err := reg.Unbox(env)
			if err != nil {
				errs <- err
				return
			}
			if v != n {
				errs <- errors.New("value mismatch")
			}
		}(int32(i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent use: %v", err)
	}
}
