package wirekit

import (
	"reflect"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/reoring/wirekit/internal/schema"
)

// Converter is the dispatch surface handed to every rule so nested fields can
// recurse through the same registry. *Registry implements it.
type Converter interface {
	Convert(v any) (any, error)
	ConvertAs(v any, ancestor reflect.Type) (any, error)
	BoxValue(v any) (*anypb.Any, error)
	Unbox(env *anypb.Any) (any, error)
}

// Rule converts one wire message type to one domain type and back.
//
// Rules are built with NewRule or NewLeafRule; the conversion methods are
// unexported so a Rule can only come from this package. The two directions
// must be mutually inverse for every value the other direction produces.
type Rule interface {
	// WireType is the message type on the wire side.
	WireType() protoreflect.MessageType
	// DomainType is the Go type on the domain side. It may be an interface
	// type, in which case callers reach the rule through ConvertAs.
	DomainType() reflect.Type

	toDomain(c Converter, w proto.Message) (any, error)
	toWire(c Converter, d any) (proto.Message, error)
	check() error
}

// NewRule builds a rule from a pair of conversion functions. W must be a
// generated message type.
func NewRule[W proto.Message, D any](toDomain func(Converter, W) (D, error), toWire func(Converter, D) (W, error)) Rule {
	return &typedRule[W, D]{
		wire:   wireTypeOf[W](),
		domain: reflect.TypeFor[D](),
		decode: toDomain,
		encode: toWire,
	}
}

// NewLeafRule builds a rule whose conversions neither fail nor need the
// registry, such as scalar wrappers.
func NewLeafRule[W proto.Message, D any](toDomain func(W) D, toWire func(D) W) Rule {
	return newLeafRule(toDomain, toWire)
}

func newLeafRule[W proto.Message, D any](toDomain func(W) D, toWire func(D) W) *typedRule[W, D] {
	r := &typedRule[W, D]{
		wire:   wireTypeOf[W](),
		domain: reflect.TypeFor[D](),
	}
	if toDomain != nil {
		r.decode = func(_ Converter, w W) (D, error) { return toDomain(w), nil }
	}
	if toWire != nil {
		r.encode = func(_ Converter, d D) (W, error) { return toWire(d), nil }
	}
	return r
}

type typedRule[W proto.Message, D any] struct {
	wire   protoreflect.MessageType
	domain reflect.Type
	decode func(Converter, W) (D, error)
	encode func(Converter, D) (W, error)
	// builtin marks the scalar rules of this package, the only rules allowed
	// on the primitive wire family.
	builtin bool
}

func (r *typedRule[W, D]) WireType() protoreflect.MessageType { return r.wire }
func (r *typedRule[W, D]) DomainType() reflect.Type           { return r.domain }

func (r *typedRule[W, D]) toDomain(c Converter, w proto.Message) (any, error) {
	tw, ok := w.(W)
	if !ok {
		return nil, invalidInputClass(className(w), "rule expects "+reflect.TypeFor[W]().String())
	}
	return r.decode(c, tw)
}

func (r *typedRule[W, D]) toWire(c Converter, d any) (proto.Message, error) {
	td, ok := d.(D)
	if !ok {
		return nil, invalidInputClass(className(d), "rule expects "+r.domain.String())
	}
	w, err := r.encode(c, td)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *typedRule[W, D]) check() error {
	switch {
	case r.wire == nil:
		return invalidTranslationSpec("wire type " + reflect.TypeFor[W]().String() + " is not a generated message")
	case schema.IsEnvelope(r.wire.Descriptor().FullName()):
		return invalidTranslationSpec("the envelope cannot be the wire type of a rule")
	case schema.IsPrimitive(r.wire.Descriptor().FullName()) && !r.builtin:
		return invalidTranslationSpec("wire type " + string(r.wire.Descriptor().FullName()) + " is reserved for the primitive rules")
	case r.decode == nil || r.encode == nil:
		return invalidTranslationSpec("rule for " + r.domain.String() + " is missing a conversion function")
	}
	return nil
}

// wireTypeOf resolves the message type of W from its nil value, which
// generated messages support. Interface type arguments yield nil.
func wireTypeOf[W proto.Message]() protoreflect.MessageType {
	if reflect.TypeFor[W]().Kind() != reflect.Pointer {
		return nil
	}
	var w W
	return w.ProtoReflect().Type()
}

var rulePkgPath = reflect.TypeFor[Registry]().PkgPath()

// validateRule is the builder's admission check. Only rules built by
// NewRule or NewLeafRule pass; a type embedding Rule satisfies the interface
// but carries no conversion.
func validateRule(r Rule) error {
	if r == nil {
		return invalidTranslationSpec("rule is nil")
	}
	t := reflect.TypeOf(r)
	if t.Kind() != reflect.Pointer || t.Elem().PkgPath() != rulePkgPath {
		return invalidTranslationSpec(t.String() + " was not built by NewRule or NewLeafRule")
	}
	if reflect.ValueOf(r).IsNil() {
		return invalidTranslationSpec("rule is nil")
	}
	if r.DomainType() == nil {
		return invalidTranslationSpec("rule has no domain type")
	}
	return r.check()
}
