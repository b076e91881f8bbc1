package wirekit_test

import (
	"testing"

	"google.golang.org/protobuf/types/known/apipb"
	"google.golang.org/protobuf/types/known/sourcecontextpb"

	"github.com/reoring/wirekit"
)

// endpoint and service are small domain types backed by google.protobuf.Api.
type endpoint struct {
	Name      string
	Streaming bool
}

type service struct {
	Name    string
	File    string
	Methods []endpoint
}

type color int32

const (
	colorRed color = iota
	colorGreen
	colorBlue
)

var (
	endpointRule = wirekit.NewLeafRule(
		func(w *apipb.Method) endpoint {
			return endpoint{Name: w.GetName(), Streaming: w.GetRequestStreaming()}
		},
		func(e endpoint) *apipb.Method {
			return &apipb.Method{Name: e.Name, RequestStreaming: e.Streaming}
		},
	)

	serviceRule = wirekit.NewRule(
		func(c wirekit.Converter, w *apipb.Api) (service, error) {
			s := service{Name: w.GetName(), File: w.GetSourceContext().GetFileName()}
			for _, m := range w.GetMethods() {
				e, err := wirekit.ToDomain[endpoint](c, m)
				if err != nil {
					return service{}, err
				}
				s.Methods = append(s.Methods, e)
			}
			return s, nil
		},
		func(c wirekit.Converter, s service) (*apipb.Api, error) {
			w := &apipb.Api{Name: s.Name, SourceContext: &sourcecontextpb.SourceContext{FileName: s.File}}
			for _, e := range s.Methods {
				m, err := wirekit.ToWire[*apipb.Method](c, e)
				if err != nil {
					return nil, err
				}
				w.Methods = append(w.Methods, m)
			}
			return w, nil
		},
	)

	colorEnum = wirekit.Enum[color]("test.Color")
)

func library() service {
	return service{
		Name: "Library",
		File: "library.proto",
		Methods: []endpoint{
			{Name: "GetBook"},
			{Name: "WatchShelf", Streaming: true},
		},
	}
}

func newRegistry(t *testing.T, opts ...wirekit.Option) *wirekit.Registry {
	t.Helper()
	reg, err := wirekit.New(opts...).
		AddRules(serviceRule, endpointRule).
		AddEnum(colorEnum).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return reg
}
