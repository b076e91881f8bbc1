// Package checkpoint persists heterogeneous plugin state through a wirekit
// registry: every value is boxed into an envelope and the envelopes are
// framed as one canonical CBOR document.
package checkpoint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	cbor "github.com/fxamacker/cbor/v2"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/reoring/wirekit"
)

// Version is the document version written by Save.
const Version = 1

// ErrUnsupportedVersion is returned for documents written by another version.
var ErrUnsupportedVersion = errors.New("checkpoint: unsupported document version")

// Boxer is the registry surface Save needs.
type Boxer interface {
	BoxValue(v any) (*anypb.Any, error)
}

// Unboxer is the registry surface Load needs.
type Unboxer interface {
	Unbox(env *anypb.Any) (any, error)
}

// Entry is one boxed value of a checkpoint.
type Entry struct {
	Key      string
	Envelope *anypb.Any
}

type document struct {
	Version uint    `cbor:"1,keyasint"`
	Entries []entry `cbor:"2,keyasint"`
}

type entry struct {
	Key     string `cbor:"1,keyasint"`
	TypeID  string `cbor:"2,keyasint"`
	Payload []byte `cbor:"3,keyasint"`
}

var (
	encMode = mustEncMode()
	decMode = mustDecMode()
)

func mustEncMode() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// Option configures Save and Load.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Save boxes every value of entries through b and writes the document to w.
// Entries are written sorted by key, so equal input yields equal bytes.
// Nothing is written when any value fails to box.
func Save(w io.Writer, b Boxer, entries map[string]any, opts ...Option) error {
	o := buildOptions(opts)
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := document{Version: Version, Entries: make([]entry, 0, len(keys))}
	for _, k := range keys {
		env, err := b.BoxValue(entries[k])
		if err != nil {
			return fmt.Errorf("checkpoint: box %q: %w", k, err)
		}
		doc.Entries = append(doc.Entries, entry{
			Key:     k,
			TypeID:  wirekit.TypeIDOfURL(env.GetTypeUrl()),
			Payload: env.GetValue(),
		})
	}
	data, err := encMode.Marshal(doc)
	if err != nil {
		return fmt.Errorf("checkpoint: encode: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("checkpoint: write: %w", err)
	}
	o.logger.Debug("checkpoint saved", zap.Int("entries", len(doc.Entries)), zap.Int("bytes", len(data)))
	return nil
}

// Load reads a document written by Save and unboxes every entry through u.
// The first entry that fails aborts the restore; an unknown type id surfaces
// as wirekit.ErrUnknownTypeID.
func Load(r io.Reader, u Unboxer, opts ...Option) (map[string]any, error) {
	o := buildOptions(opts)
	entries, err := ReadEnvelopes(r)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(entries))
	for _, e := range entries {
		v, err := u.Unbox(e.Envelope)
		if err != nil {
			return nil, fmt.Errorf("checkpoint: unbox %q: %w", e.Key, err)
		}
		out[e.Key] = v
	}
	o.logger.Debug("checkpoint loaded", zap.Int("entries", len(out)))
	return out, nil
}

// ReadEnvelopes reads a document without unboxing it, in stored order.
func ReadEnvelopes(r io.Reader) ([]Entry, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("checkpoint: read: %w", err)
	}
	var doc document
	if err := decMode.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("checkpoint: decode: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	out := make([]Entry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		out = append(out, Entry{
			Key:      e.Key,
			Envelope: &anypb.Any{TypeUrl: wirekit.TypeURLPrefix + e.TypeID, Value: e.Payload},
		})
	}
	return out, nil
}
