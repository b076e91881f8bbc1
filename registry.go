package wirekit

import (
	"reflect"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/typepb"

	"github.com/reoring/wirekit/internal/schema"
	"github.com/reoring/wirekit/jsonschema"
)

// Registry is the frozen result of Builder.Build. It is immutable and safe
// for concurrent use; every method is a pure lookup over the frozen tables
// plus the rule it dispatches to.
type Registry struct {
	byDomain  map[reflect.Type]Rule
	byWire    map[protoreflect.FullName]Rule
	enums     map[reflect.Type]EnumType
	enumsByID map[string]EnumType
	schemas   *schema.Set
	text      *TextCodec
}

var _ Converter = (*Registry)(nil)

// Convert translates v to the other side. The exact runtime type of v is
// looked up among domain types first, then among wire types by message full
// name. It fails with ErrNoRuleForClass when neither side knows v.
func (r *Registry) Convert(v any) (any, error) {
	if v == nil {
		return nil, invalidInputClass(className(v), "cannot convert nil")
	}
	t := reflect.TypeOf(v)
	if rule, ok := r.byDomain[t]; ok {
		return rule.toWire(r, v)
	}
	if e, ok := r.enums[t]; ok {
		return e.wrap(v)
	}
	if m, ok := v.(proto.Message); ok {
		name := m.ProtoReflect().Descriptor().FullName()
		if rule, ok := r.byWire[name]; ok {
			return rule.toDomain(r, m)
		}
		if w, ok := m.(*typepb.EnumValue); ok {
			return r.unwrapEnum(w)
		}
	}
	return nil, noRuleForClass(t.String())
}

// ConvertAs is Convert keyed by ancestor instead of v's own type. It is how
// values reach a rule registered under an interface they implement. v must be
// assignable to ancestor.
func (r *Registry) ConvertAs(v any, ancestor reflect.Type) (any, error) {
	if v == nil || ancestor == nil {
		return nil, invalidInputClass(className(v), "value and ancestor must be non-nil")
	}
	if t := reflect.TypeOf(v); !t.AssignableTo(ancestor) {
		return nil, invalidInputClass(t.String(), "not assignable to "+ancestor.String())
	}
	if rule, ok := r.byDomain[ancestor]; ok {
		return rule.toWire(r, v)
	}
	if e, ok := r.enums[ancestor]; ok {
		return e.wrap(v)
	}
	if name, ok := messageName(ancestor); ok {
		if rule, ok := r.byWire[name]; ok {
			return rule.toDomain(r, v.(proto.Message))
		}
	}
	return nil, noRuleForClass(ancestor.String())
}

// ClassForTypeID resolves an envelope type id to its wire message type.
func (r *Registry) ClassForTypeID(id string) (protoreflect.MessageType, error) {
	mt, ok := r.schemas.Lookup(protoreflect.FullName(id))
	if !ok {
		return nil, unknownTypeID(id)
	}
	return mt, nil
}

// HasDomainType reports whether a rule or enum is registered for t.
func (r *Registry) HasDomainType(t reflect.Type) bool {
	if _, ok := r.byDomain[t]; ok {
		return true
	}
	_, ok := r.enums[t]
	return ok
}

// HasWireType reports whether a rule is registered for the named message.
func (r *Registry) HasWireType(name protoreflect.FullName) bool {
	_, ok := r.byWire[name]
	return ok
}

// Schemas returns every known wire schema sorted by full name.
func (r *Registry) Schemas() []protoreflect.MessageType {
	names := r.schemas.Names()
	out := make([]protoreflect.MessageType, 0, len(names))
	for _, n := range names {
		mt, _ := r.schemas.Lookup(n)
		out = append(out, mt)
	}
	return out
}

// TypeIDs returns the type id of every known schema, sorted.
func (r *Registry) TypeIDs() []string {
	names := r.schemas.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

// TextCodec returns the text front end derived from this registry's schemas.
func (r *Registry) TextCodec() *TextCodec { return r.text }

// JSONSchema projects the schema registered under typeID into JSON Schema.
func (r *Registry) JSONSchema(typeID string) (*jsonschema.Schema, error) {
	mt, err := r.ClassForTypeID(typeID)
	if err != nil {
		return nil, err
	}
	return jsonschema.FromDescriptor(mt.Descriptor()), nil
}

func (r *Registry) unwrapEnum(w *typepb.EnumValue) (any, error) {
	e, ok := r.enumsByID[w.GetName()]
	if !ok {
		return nil, unknownTypeID(w.GetName())
	}
	return e.unwrap(w), nil
}

// ---- typed helpers ----

// ToWire converts the domain value d and asserts the wire type.
func ToWire[W proto.Message](c Converter, d any) (W, error) {
	var zero W
	out, err := c.Convert(d)
	if err != nil {
		return zero, err
	}
	w, ok := out.(W)
	if !ok {
		return zero, invalidInputClass(className(d), "converts to "+className(out)+", not "+reflect.TypeFor[W]().String())
	}
	return w, nil
}

// ToDomain converts the wire message w and asserts the domain type. D may be
// an interface type.
func ToDomain[D any](c Converter, w proto.Message) (D, error) {
	var zero D
	out, err := c.Convert(w)
	if err != nil {
		return zero, err
	}
	d, ok := out.(D)
	if !ok {
		return zero, invalidInputClass(className(w), "converts to "+className(out)+", not "+reflect.TypeFor[D]().String())
	}
	return d, nil
}

// ConvertAsType converts v through the rule registered under I.
func ConvertAsType[I any](c Converter, v I) (proto.Message, error) {
	out, err := c.ConvertAs(v, reflect.TypeFor[I]())
	if err != nil {
		return nil, err
	}
	m, ok := out.(proto.Message)
	if !ok {
		return nil, invalidInputClass(className(v), "rule for "+reflect.TypeFor[I]().String()+" did not produce a message")
	}
	return m, nil
}

// messageName returns the full name of t when t is a generated message
// pointer type.
func messageName(t reflect.Type) (protoreflect.FullName, bool) {
	if t.Kind() != reflect.Pointer || !t.Implements(reflect.TypeFor[proto.Message]()) {
		return "", false
	}
	m := reflect.Zero(t).Interface().(proto.Message)
	return m.ProtoReflect().Descriptor().FullName(), true
}
