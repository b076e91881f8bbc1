package wirekit

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/anypb"
	"gopkg.in/yaml.v3"
)

// TextCodec renders registered values as JSON or YAML for debugging and
// inspection. It is derived from the frozen schema set, so envelope fields
// render their contents for every type id the registry knows.
//
// Failures mirror Registry.Convert: ErrNoRuleForClass for values with no
// rule, ErrUnknownTypeID for type ids outside the schema set and
// ErrMalformedPayload for text that does not parse.
type TextCodec struct {
	reg    *Registry
	types  *protoregistry.Types
	indent string
	mo     protojson.MarshalOptions
	uo     protojson.UnmarshalOptions
}

func newTextCodec(reg *Registry, indent string) (*TextCodec, error) {
	types := new(protoregistry.Types)
	for _, mt := range reg.schemas.Types() {
		if err := types.RegisterMessage(mt); err != nil {
			return nil, invalidTranslationSpec(err.Error())
		}
	}
	return &TextCodec{
		reg:    reg,
		types:  types,
		indent: indent,
		mo:     protojson.MarshalOptions{Resolver: types, UseProtoNames: true},
		uo:     protojson.UnmarshalOptions{Resolver: types},
	}, nil
}

// Marshal renders v. Wire messages with a known schema are rendered as they
// are; any other value is converted to its wire form first.
func (c *TextCodec) Marshal(v any, f Format) ([]byte, error) {
	m, err := c.wireOf(v)
	if err != nil {
		return nil, err
	}
	return c.render(m, f)
}

// Unmarshal parses data as the schema registered under typeID and returns
// the same value Registry.Unbox would return for it.
func (c *TextCodec) Unmarshal(data []byte, typeID string, f Format) (any, error) {
	mt, err := c.reg.ClassForTypeID(typeID)
	if err != nil {
		return nil, err
	}
	m := mt.New().Interface()
	if err := c.parse(data, m, f); err != nil {
		return nil, malformedPayload(typeID, err)
	}
	return c.reg.fromWire(m)
}

// MarshalEnvelope renders an envelope together with the value it carries.
func (c *TextCodec) MarshalEnvelope(env *anypb.Any, f Format) ([]byte, error) {
	if env == nil {
		return nil, invalidInputClass(className(env), "cannot render nil envelope")
	}
	id := TypeIDOfURL(env.GetTypeUrl())
	if !c.reg.schemas.Has(protoreflect.FullName(id)) {
		return nil, unknownTypeID(id)
	}
	return c.render(env, f)
}

// UnmarshalEnvelope parses an envelope rendered by MarshalEnvelope. An @type
// outside the schema set fails with ErrUnknownTypeID.
func (c *TextCodec) UnmarshalEnvelope(data []byte, f Format) (*anypb.Any, error) {
	env := new(anypb.Any)
	raw, err := toJSON(data, f)
	if err != nil {
		return nil, malformedPayload(TypeIDOf(env), err)
	}
	var head struct {
		TypeURL string `json:"@type"`
	}
	if json.Unmarshal(raw, &head) == nil && head.TypeURL != "" {
		if id := TypeIDOfURL(head.TypeURL); !c.reg.schemas.Has(protoreflect.FullName(id)) {
			return nil, unknownTypeID(id)
		}
	}
	if err := c.uo.Unmarshal(raw, env); err != nil {
		return nil, malformedPayload(TypeIDOf(env), err)
	}
	return env, nil
}

func (c *TextCodec) wireOf(v any) (proto.Message, error) {
	if m, ok := v.(proto.Message); ok && c.reg.schemas.Has(m.ProtoReflect().Descriptor().FullName()) {
		return m, nil
	}
	out, err := c.reg.Convert(v)
	if err != nil {
		return nil, err
	}
	m, ok := out.(proto.Message)
	if !ok {
		return nil, noRuleForClass(className(v))
	}
	return m, nil
}

func (c *TextCodec) render(m proto.Message, f Format) ([]byte, error) {
	raw, err := c.mo.Marshal(m)
	if err != nil {
		return nil, malformedPayload(TypeIDOf(m), err)
	}
	switch f {
	case FormatJSON:
		var buf bytes.Buffer
		if c.indent == "" {
			err = json.Compact(&buf, raw)
		} else {
			err = json.Indent(&buf, raw, "", c.indent)
		}
		if err != nil {
			return nil, malformedPayload(TypeIDOf(m), err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		out, err := jsonToYAML(raw)
		if err != nil {
			return nil, malformedPayload(TypeIDOf(m), err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("wirekit: unsupported text format %v", f)
}

func (c *TextCodec) parse(data []byte, m proto.Message, f Format) error {
	raw, err := toJSON(data, f)
	if err != nil {
		return err
	}
	return c.uo.Unmarshal(raw, m)
}

func toJSON(data []byte, f Format) ([]byte, error) {
	if f == FormatYAML {
		return yamlToJSON(data)
	}
	return data, nil
}

// ---- YAML bridge ----

// jsonToYAML re-encodes protojson output as YAML. Numbers keep their
// integer-ness so int32 fields do not come back as floats.
func jsonToYAML(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return yaml.Marshal(jsonNumbers(v))
}

func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(yamlNormalizeValue(v))
}

func jsonNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			t[k] = jsonNumbers(vv)
		}
		return t
	case []any:
		for i := range t {
			t[i] = jsonNumbers(t[i])
		}
		return t
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any) into JSON-like values recursively.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
