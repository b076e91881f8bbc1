package wirekit

import (
	"fmt"
	"time"

	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/typepb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Date is a calendar date without a time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight of d in loc (UTC when loc is nil).
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ---- primitive rules ----

var (
	boolRule   = primitiveRule(func(w *wrapperspb.BoolValue) bool { return w.GetValue() }, wrapperspb.Bool)
	int32Rule  = primitiveRule(func(w *wrapperspb.Int32Value) int32 { return w.GetValue() }, wrapperspb.Int32)
	uint32Rule = primitiveRule(func(w *wrapperspb.UInt32Value) uint32 { return w.GetValue() }, wrapperspb.UInt32)
	int64Rule  = primitiveRule(func(w *wrapperspb.Int64Value) int64 { return w.GetValue() }, wrapperspb.Int64)
	uint64Rule = primitiveRule(func(w *wrapperspb.UInt64Value) uint64 { return w.GetValue() }, wrapperspb.UInt64)
	stringRule = primitiveRule(func(w *wrapperspb.StringValue) string { return w.GetValue() }, wrapperspb.String)
	floatRule  = primitiveRule(func(w *wrapperspb.FloatValue) float32 { return w.GetValue() }, wrapperspb.Float)
	doubleRule = primitiveRule(func(w *wrapperspb.DoubleValue) float64 { return w.GetValue() }, wrapperspb.Double)
	dateRule   = primitiveRule(dateFromWire, dateToWire)
)

func primitiveRule[W proto.Message, D any](toDomain func(W) D, toWire func(D) W) Rule {
	r := newLeafRule(toDomain, toWire)
	r.builtin = true
	return r
}

// BoolRule converts google.protobuf.BoolValue <-> bool.
func BoolRule() Rule { return boolRule }

// Int32Rule converts google.protobuf.Int32Value <-> int32.
func Int32Rule() Rule { return int32Rule }

// UInt32Rule converts google.protobuf.UInt32Value <-> uint32.
func UInt32Rule() Rule { return uint32Rule }

// Int64Rule converts google.protobuf.Int64Value <-> int64.
func Int64Rule() Rule { return int64Rule }

// UInt64Rule converts google.protobuf.UInt64Value <-> uint64.
func UInt64Rule() Rule { return uint64Rule }

// StringRule converts google.protobuf.StringValue <-> string.
func StringRule() Rule { return stringRule }

// FloatRule converts google.protobuf.FloatValue <-> float32.
func FloatRule() Rule { return floatRule }

// DoubleRule converts google.protobuf.DoubleValue <-> float64.
func DoubleRule() Rule { return doubleRule }

// DateRule converts google.type.Date <-> Date.
func DateRule() Rule { return dateRule }

// PrimitiveRules returns the scalar rules every registry falls back to.
func PrimitiveRules() []Rule {
	return []Rule{boolRule, int32Rule, uint32Rule, int64Rule, uint64Rule, stringRule, floatRule, doubleRule, dateRule}
}

func dateFromWire(w *date.Date) Date {
	return Date{Year: int(w.GetYear()), Month: time.Month(w.GetMonth()), Day: int(w.GetDay())}
}

func dateToWire(d Date) *date.Date {
	return &date.Date{Year: int32(d.Year), Month: int32(d.Month), Day: int32(d.Day)}
}

// primitiveSchemas is the fixed schema family unioned into every registry.
func primitiveSchemas() []protoreflect.MessageType {
	return []protoreflect.MessageType{
		(*wrapperspb.BoolValue)(nil).ProtoReflect().Type(),
		(*wrapperspb.Int32Value)(nil).ProtoReflect().Type(),
		(*wrapperspb.UInt32Value)(nil).ProtoReflect().Type(),
		(*wrapperspb.Int64Value)(nil).ProtoReflect().Type(),
		(*wrapperspb.UInt64Value)(nil).ProtoReflect().Type(),
		(*wrapperspb.StringValue)(nil).ProtoReflect().Type(),
		(*wrapperspb.FloatValue)(nil).ProtoReflect().Type(),
		(*wrapperspb.DoubleValue)(nil).ProtoReflect().Type(),
		(*date.Date)(nil).ProtoReflect().Type(),
		(*typepb.EnumValue)(nil).ProtoReflect().Type(),
	}
}

// unwrapPrimitive extracts the native scalar held by a primitive wrapper.
// Enum wrappers are not handled here since they need the enum table.
func unwrapPrimitive(m proto.Message) (any, bool) {
	switch w := m.(type) {
	case *wrapperspb.BoolValue:
		return w.GetValue(), true
	case *wrapperspb.Int32Value:
		return w.GetValue(), true
	case *wrapperspb.UInt32Value:
		return w.GetValue(), true
	case *wrapperspb.Int64Value:
		return w.GetValue(), true
	case *wrapperspb.UInt64Value:
		return w.GetValue(), true
	case *wrapperspb.StringValue:
		return w.GetValue(), true
	case *wrapperspb.FloatValue:
		return w.GetValue(), true
	case *wrapperspb.DoubleValue:
		return w.GetValue(), true
	case *date.Date:
		return dateFromWire(w), true
	}
	return nil, false
}
