// Package schema keeps the set of wire schemas known to a translation
// registry and discovers nested schemas reachable from a message.
//
// This package is internal and not part of the public API.
package schema

import (
	"slices"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// EnvelopeName is the full name of the polymorphic envelope. Discovery never
// descends into envelope fields; their contents are resolved per value.
const EnvelopeName protoreflect.FullName = "google.protobuf.Any"

// EnumWrapperName is the schema used to carry enum values inside envelopes.
const EnumWrapperName protoreflect.FullName = "google.protobuf.EnumValue"

// DateName is the calendar date schema.
const DateName protoreflect.FullName = "google.type.Date"

var primitiveNames = map[protoreflect.FullName]struct{}{
	"google.protobuf.BoolValue":   {},
	"google.protobuf.Int32Value":  {},
	"google.protobuf.UInt32Value": {},
	"google.protobuf.Int64Value":  {},
	"google.protobuf.UInt64Value": {},
	"google.protobuf.StringValue": {},
	"google.protobuf.FloatValue":  {},
	"google.protobuf.DoubleValue": {},
	DateName:                      {},
	EnumWrapperName:               {},
}

// IsEnvelope reports whether name is the polymorphic envelope.
func IsEnvelope(name protoreflect.FullName) bool { return name == EnvelopeName }

// IsPrimitive reports whether name belongs to the fixed primitive family.
func IsPrimitive(name protoreflect.FullName) bool {
	_, ok := primitiveNames[name]
	return ok
}

// Set is an insertion-ordered set of message types keyed by full name.
// The first type added under a name wins.
type Set struct {
	order  []protoreflect.MessageType
	byName map[protoreflect.FullName]protoreflect.MessageType
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{byName: make(map[protoreflect.FullName]protoreflect.MessageType)}
}

// Add registers mt and reports whether it was newly added.
func (s *Set) Add(mt protoreflect.MessageType) bool {
	name := mt.Descriptor().FullName()
	if _, ok := s.byName[name]; ok {
		return false
	}
	s.byName[name] = mt
	s.order = append(s.order, mt)
	return true
}

// Has reports whether a schema with the given name is present.
func (s *Set) Has(name protoreflect.FullName) bool {
	_, ok := s.byName[name]
	return ok
}

// Lookup returns the schema registered under name.
func (s *Set) Lookup(name protoreflect.FullName) (protoreflect.MessageType, bool) {
	mt, ok := s.byName[name]
	return mt, ok
}

// Len returns the number of schemas.
func (s *Set) Len() int { return len(s.order) }

// Types returns the schemas in insertion order.
func (s *Set) Types() []protoreflect.MessageType {
	out := make([]protoreflect.MessageType, len(s.order))
	copy(out, s.order)
	return out
}

// Names returns the schema names sorted lexically.
func (s *Set) Names() []protoreflect.FullName {
	out := make([]protoreflect.FullName, 0, len(s.order))
	for _, mt := range s.order {
		out = append(out, mt.Descriptor().FullName())
	}
	slices.Sort(out)
	return out
}
