package wirekit

import (
	"reflect"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/typepb"

	"github.com/reoring/wirekit/internal/schema"
)

// TypeURLPrefix prefixes the type id in every envelope this package writes.
const TypeURLPrefix = "type.googleapis.com/"

var marshalOptions = proto.MarshalOptions{Deterministic: true}

// TypeIDOf returns the type id of a wire message.
func TypeIDOf(m proto.Message) string {
	return string(m.ProtoReflect().Descriptor().FullName())
}

// TypeIDOfURL returns the type id of an envelope type URL, the text after
// its last '/'.
func TypeIDOfURL(url string) string {
	if i := strings.LastIndexByte(url, '/'); i >= 0 {
		return url[i+1:]
	}
	return url
}

// BoxValue wraps v into an envelope. A wire message with a known schema is
// packed as-is, a registered enum goes through the enum wrapper, and any
// other value is converted by its domain rule first. Anything else fails
// with ErrInvalidInputClass.
func (r *Registry) BoxValue(v any) (*anypb.Any, error) {
	if v == nil {
		return nil, invalidInputClass(className(v), "cannot box nil")
	}
	if m, ok := v.(proto.Message); ok {
		name := m.ProtoReflect().Descriptor().FullName()
		if schema.IsEnvelope(name) {
			return nil, invalidInputClass(string(name), "envelopes do not nest directly")
		}
		if r.schemas.Has(name) {
			return pack(m)
		}
	}
	t := reflect.TypeOf(v)
	if e, ok := r.enums[t]; ok {
		w, err := e.wrap(v)
		if err != nil {
			return nil, err
		}
		return pack(w)
	}
	rule, ok := r.byDomain[t]
	if !ok {
		return nil, invalidInputClass(t.String(), "neither a known wire schema nor a registered domain type")
	}
	w, err := rule.toWire(r, v)
	if err != nil {
		return nil, err
	}
	return pack(w)
}

// Unbox restores the value carried by env. Primitive wrappers come back as
// native scalars, enum wrappers as the registered enum, and other messages as
// their domain value when a rule exists, otherwise as the message itself.
func (r *Registry) Unbox(env *anypb.Any) (any, error) {
	if env == nil {
		return nil, invalidInputClass(className(env), "cannot unbox nil")
	}
	id := TypeIDOfURL(env.GetTypeUrl())
	mt, ok := r.schemas.Lookup(protoreflect.FullName(id))
	if !ok {
		return nil, unknownTypeID(id)
	}
	m := mt.New().Interface()
	if err := proto.Unmarshal(env.GetValue(), m); err != nil {
		return nil, malformedPayload(id, err)
	}
	return r.fromWire(m)
}

// fromWire maps a decoded wire message to the value callers expect back.
// Primitive schemas always unwrap to their native scalar.
func (r *Registry) fromWire(m proto.Message) (any, error) {
	if w, ok := m.(*typepb.EnumValue); ok {
		return r.unwrapEnum(w)
	}
	if v, ok := unwrapPrimitive(m); ok {
		return v, nil
	}
	if rule, ok := r.byWire[m.ProtoReflect().Descriptor().FullName()]; ok {
		return rule.toDomain(r, m)
	}
	return m, nil
}

func pack(m proto.Message) (*anypb.Any, error) {
	b, err := marshalOptions.Marshal(m)
	if err != nil {
		return nil, malformedPayload(TypeIDOf(m), err)
	}
	return &anypb.Any{TypeUrl: TypeURLPrefix + TypeIDOf(m), Value: b}, nil
}
