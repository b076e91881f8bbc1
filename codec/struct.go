package codec

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/reoring/wirekit"
)

// Struct returns a rule converting google.protobuf.Struct <-> map[string]any.
// Numbers come back as float64, as with encoding/json.
func Struct() wirekit.Rule {
	return wirekit.NewRule(
		func(_ wirekit.Converter, w *structpb.Struct) (map[string]any, error) {
			return w.AsMap(), nil
		},
		func(_ wirekit.Converter, m map[string]any) (*structpb.Struct, error) {
			w, err := structpb.NewStruct(m)
			if err != nil {
				return nil, &wirekit.Error{Code: wirekit.CodeInvalidInputClass, Class: "map[string]interface {}", Message: "value not representable as a struct", Cause: err}
			}
			return w, nil
		},
	)
}
