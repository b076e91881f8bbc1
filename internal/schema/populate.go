package schema

import "google.golang.org/protobuf/reflect/protoreflect"

// Populate registers the type of m and, recursively, every statically typed
// message reachable through its fields (singular, repeated and map values).
//
// Envelope fields stop the walk: what they carry differs per value and is
// resolved by type id when the value is unboxed. Primitive schemas are also
// skipped since every registry carries them anyway.
//
// A type that is already present is not visited again, so the walk
// terminates even on self-referencing descriptors.
func Populate(s *Set, m protoreflect.Message) {
	if !s.Add(m.Type()) {
		return
	}
	fields := m.Descriptor().Fields()
	for i := 0; i < fields.Len(); i++ {
		nested := nestedMessage(m, fields.Get(i))
		if nested == nil {
			continue
		}
		name := nested.Descriptor().FullName()
		if IsEnvelope(name) || IsPrimitive(name) {
			continue
		}
		Populate(s, nested)
	}
}

// nestedMessage returns an empty value of the message type held by fd, or
// nil when fd does not hold a message.
func nestedMessage(m protoreflect.Message, fd protoreflect.FieldDescriptor) protoreflect.Message {
	switch {
	case fd.IsMap():
		if fd.MapValue().Message() == nil {
			return nil
		}
		return m.NewField(fd).Map().NewValue().Message()
	case fd.Message() == nil:
		return nil
	case fd.IsList():
		return m.NewField(fd).List().NewElement().Message()
	default:
		return m.NewField(fd).Message()
	}
}
