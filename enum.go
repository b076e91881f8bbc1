package wirekit

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
	"google.golang.org/protobuf/types/known/typepb"
)

// EnumType describes a Go enum carried through the generic enum wrapper
// google.protobuf.EnumValue, whose name is the enum's type id and whose
// number is the ordinal.
//
// The zero EnumType is invalid; build one with Enum.
type EnumType struct {
	id          string
	typ         reflect.Type
	toOrdinal   func(any) (int32, bool)
	fromOrdinal func(int32) any
}

// Enum describes the enum E under typeID. E must be a defined integer type
// whose values fit in 32 bits; builtin integer types are the primitive rules'
// business and are rejected by Builder.AddEnum.
func Enum[E constraints.Integer](typeID string) EnumType {
	return EnumType{
		id:  typeID,
		typ: reflect.TypeFor[E](),
		toOrdinal: func(v any) (int32, bool) {
			e, ok := v.(E)
			if !ok {
				return 0, false
			}
			n := int64(e)
			// uint64 values above MaxInt64 wrap negative and fail the range check too.
			if n < math.MinInt32 || n > math.MaxInt32 || (e > 0 && n < 0) {
				return 0, false
			}
			return int32(n), true
		},
		fromOrdinal: func(n int32) any { return E(n) },
	}
}

// TypeID returns the name written into enum wrappers.
func (e EnumType) TypeID() string { return e.id }

// Type returns the Go type of the enum.
func (e EnumType) Type() reflect.Type { return e.typ }

func (e EnumType) check() error {
	switch {
	case e.typ == nil || e.toOrdinal == nil:
		return invalidTranslationSpec("enum type is not initialised")
	case e.id == "":
		return invalidTranslationSpec("enum " + e.typ.String() + " has an empty type id")
	case e.typ.PkgPath() == "":
		return invalidTranslationSpec("enum " + e.typ.String() + " is not a defined type")
	}
	return nil
}

func (e EnumType) wrap(v any) (*typepb.EnumValue, error) {
	n, ok := e.toOrdinal(v)
	if !ok {
		return nil, invalidInputClass(className(v), "ordinal does not fit the enum wrapper")
	}
	return &typepb.EnumValue{Name: e.id, Number: n}, nil
}

func (e EnumType) unwrap(w *typepb.EnumValue) any {
	return e.fromOrdinal(w.GetNumber())
}
