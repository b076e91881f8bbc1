package jsonschema

import (
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// FromDescriptor projects a message descriptor into the JSON Schema of its
// protojson rendering (proto field names). Recursive message types are cut
// at the second visit with a titled object schema.
func FromDescriptor(md protoreflect.MessageDescriptor) *Schema {
	return fromMessage(md, map[protoreflect.FullName]bool{})
}

func fromMessage(md protoreflect.MessageDescriptor, visiting map[protoreflect.FullName]bool) *Schema {
	name := md.FullName()
	if s, ok := wellKnown(name); ok {
		s.Title = string(name)
		return s
	}
	if visiting[name] {
		return &Schema{Type: "object", Title: string(name), Description: "recursive reference"}
	}
	visiting[name] = true
	defer delete(visiting, name)

	s := &Schema{Type: "object", Title: string(name), Properties: map[string]*Schema{}}
	fields := md.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		s.Properties[string(fd.Name())] = fromField(fd, visiting)
		if fd.Cardinality() == protoreflect.Required {
			s.Required = append(s.Required, string(fd.Name()))
		}
	}
	return s
}

func fromField(fd protoreflect.FieldDescriptor, visiting map[protoreflect.FullName]bool) *Schema {
	switch {
	case fd.IsMap():
		return &Schema{Type: "object", AdditionalProperties: fromKind(fd.MapValue(), visiting)}
	case fd.IsList():
		return &Schema{Type: "array", Items: fromKind(fd, visiting)}
	}
	return fromKind(fd, visiting)
}

func fromKind(fd protoreflect.FieldDescriptor, visiting map[protoreflect.FullName]bool) *Schema {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return &Schema{Type: "boolean"}
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return &Schema{Type: "integer", Format: "int32"}
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return &Schema{Type: "string", Format: "int64", Description: "64-bit integer as a decimal string"}
	case protoreflect.FloatKind, protoreflect.DoubleKind:
		return &Schema{Type: "number"}
	case protoreflect.StringKind:
		return &Schema{Type: "string"}
	case protoreflect.BytesKind:
		return &Schema{Type: "string", Format: "byte"}
	case protoreflect.EnumKind:
		ed := fd.Enum()
		values := ed.Values()
		s := &Schema{Type: "string", Title: string(ed.FullName())}
		for i := 0; i < values.Len(); i++ {
			s.Enum = append(s.Enum, string(values.Get(i).Name()))
		}
		return s
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return fromMessage(fd.Message(), visiting)
	}
	return &Schema{}
}

// wellKnown covers messages with a special protojson mapping.
func wellKnown(name protoreflect.FullName) (*Schema, bool) {
	switch name {
	case "google.protobuf.Any":
		return &Schema{
			Type:       "object",
			Properties: map[string]*Schema{"@type": {Type: "string"}},
			Required:   []string{"@type"},
		}, true
	case "google.protobuf.BoolValue":
		return &Schema{Type: "boolean"}, true
	case "google.protobuf.Int32Value", "google.protobuf.UInt32Value":
		return &Schema{Type: "integer", Format: "int32"}, true
	case "google.protobuf.Int64Value", "google.protobuf.UInt64Value":
		return &Schema{Type: "string", Format: "int64"}, true
	case "google.protobuf.FloatValue", "google.protobuf.DoubleValue":
		return &Schema{Type: "number"}, true
	case "google.protobuf.StringValue":
		return &Schema{Type: "string"}, true
	case "google.protobuf.BytesValue":
		return &Schema{Type: "string", Format: "byte"}, true
	case "google.protobuf.Timestamp":
		return &Schema{Type: "string", Format: "date-time"}, true
	case "google.protobuf.Duration":
		return &Schema{Type: "string", Format: "duration"}, true
	case "google.protobuf.Struct":
		return &Schema{Type: "object", AdditionalProperties: true}, true
	case "google.protobuf.Value":
		return &Schema{}, true
	case "google.protobuf.ListValue":
		return &Schema{Type: "array"}, true
	}
	return nil, false
}
