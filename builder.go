package wirekit

import (
	"reflect"

	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/reoring/wirekit/internal/schema"
)

// Builder stages rules contributed by independent modules and freezes them
// into a Registry. A Builder is not safe for concurrent use.
//
// Calls chain; the first failure is recorded and returned by Build. Once
// Build has been called every further call fails with ErrBuilderClosed.
type Builder struct {
	opts options
	err  error

	rules     []Rule
	byDomain  map[reflect.Type]Rule
	byWire    map[protoreflect.FullName]Rule
	enums     map[reflect.Type]EnumType
	enumsByID map[string]EnumType
	schemas   *schema.Set
	built     bool
}

// New returns an open Builder.
func New(opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{
		opts:      o,
		byDomain:  make(map[reflect.Type]Rule),
		byWire:    make(map[protoreflect.FullName]Rule),
		enums:     make(map[reflect.Type]EnumType),
		enumsByID: make(map[string]EnumType),
		schemas:   schema.NewSet(),
	}
}

// AddRule registers r under its domain type and its wire type and discovers
// every wire schema nested in r's wire type. When a class already has a rule
// the first registration stays in effect; see WithDuplicatePolicy.
func (b *Builder) AddRule(r Rule) *Builder {
	if !b.open() {
		return b
	}
	if err := validateRule(r); err != nil {
		b.fail(err)
		return b
	}
	domain, wire := r.DomainType(), r.WireType().Descriptor().FullName()
	if b.byDomain[domain] == r && b.byWire[wire] == r {
		return b
	}
	b.rules = append(b.rules, r)
	if prev, ok := b.byDomain[domain]; ok {
		b.duplicate("domain", domain.String(), prev)
	} else {
		b.byDomain[domain] = r
	}
	if prev, ok := b.byWire[wire]; ok {
		b.duplicate("wire", string(wire), prev)
	} else {
		b.byWire[wire] = r
	}
	before := b.schemas.Len()
	schema.Populate(b.schemas, r.WireType().New())
	b.opts.logger.Debug("conversion rule added",
		zap.Stringer("domain", domain),
		zap.String("wire", string(wire)),
		zap.Int("schemas_discovered", b.schemas.Len()-before),
	)
	return b
}

// AddRules adds each rule in order.
func (b *Builder) AddRules(rules ...Rule) *Builder {
	for _, r := range rules {
		b.AddRule(r)
	}
	return b
}

// AddEnum registers a Go enum so its values can be boxed through the generic
// enum wrapper and restored on unbox.
func (b *Builder) AddEnum(e EnumType) *Builder {
	if !b.open() {
		return b
	}
	if err := e.check(); err != nil {
		b.fail(err)
		return b
	}
	prevT, hasT := b.enums[e.typ]
	prevID, hasID := b.enumsByID[e.id]
	if hasT && hasID && prevT.id == e.id && prevID.typ == e.typ {
		return b
	}
	if hasT {
		b.duplicate("enum", e.typ.String(), nil)
	} else {
		b.enums[e.typ] = e
	}
	if hasID {
		b.duplicate("enum_type_id", e.id, nil)
	} else {
		b.enumsByID[e.id] = e
	}
	b.opts.logger.Debug("enum added", zap.Stringer("type", e.typ), zap.String("type_id", e.id))
	return b
}

// AddSchema registers the schema of m, and the schemas nested in it, without
// a rule. Values of that message type can then be boxed and unboxed as-is.
func (b *Builder) AddSchema(m proto.Message) *Builder {
	if !b.open() {
		return b
	}
	if m == nil {
		b.fail(invalidTranslationSpec("schema message is nil"))
		return b
	}
	name := m.ProtoReflect().Descriptor().FullName()
	if schema.IsEnvelope(name) {
		b.fail(invalidTranslationSpec("the envelope is always known and cannot be added"))
		return b
	}
	schema.Populate(b.schemas, m.ProtoReflect().Type().New())
	return b
}

// Build installs the primitive rules for every class no module claimed,
// unions in the primitive schemas and returns the frozen Registry. The
// Builder is closed afterwards whether or not Build succeeds.
func (b *Builder) Build() (*Registry, error) {
	if b.built {
		return nil, builderClosed()
	}
	b.built = true
	if b.err != nil {
		b.release()
		return nil, b.err
	}

	for _, r := range PrimitiveRules() {
		domain, wire := r.DomainType(), r.WireType().Descriptor().FullName()
		if _, ok := b.byDomain[domain]; !ok {
			b.byDomain[domain] = r
		}
		if _, ok := b.byWire[wire]; !ok {
			b.byWire[wire] = r
		}
	}
	for _, mt := range primitiveSchemas() {
		b.schemas.Add(mt)
	}

	reg := &Registry{
		byDomain:  b.byDomain,
		byWire:    b.byWire,
		enums:     b.enums,
		enumsByID: b.enumsByID,
		schemas:   b.schemas,
	}
	text, err := newTextCodec(reg, b.opts.indent)
	if err != nil {
		b.release()
		return nil, err
	}
	reg.text = text

	b.opts.logger.Info("translation registry built",
		zap.Int("rules", len(b.rules)),
		zap.Int("enums", len(b.enums)),
		zap.Int("schemas", b.schemas.Len()),
	)
	b.release()
	return reg, nil
}

// release drops the staged maps; the Registry owns them now.
func (b *Builder) release() {
	b.rules = nil
	b.byDomain = nil
	b.byWire = nil
	b.enums = nil
	b.enumsByID = nil
	b.schemas = nil
}

func (b *Builder) open() bool {
	if b.built {
		b.fail(builderClosed())
		return false
	}
	return true
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// duplicate applies the duplicate policy to a class that already has a
// registration. The first registration always stays in effect.
func (b *Builder) duplicate(key, class string, kept Rule) {
	switch b.opts.duplicates {
	case Ignore:
	case Reject:
		b.fail(&Error{Code: CodeConflictingRule, Class: class, Message: key + " class already registered"})
	default:
		fields := []zap.Field{zap.String("key", key), zap.String("class", class)}
		if kept != nil {
			fields = append(fields, zap.Stringer("kept_domain", kept.DomainType()))
		}
		b.opts.logger.Warn("duplicate registration ignored", fields...)
	}
}
