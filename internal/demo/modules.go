package demo

import (
	"time"

	"github.com/reoring/wirekit"
)

// Module is the contribution of one plugin to the registry.
type Module struct {
	Name  string
	Rules []wirekit.Rule
	Enums []wirekit.EnumType
}

// Properties owns the property identifier family.
func Properties() Module {
	return Module{
		Name: "properties",
		Rules: []wirekit.Rule{
			propertyIDRule,
			propertyValueRule,
			globalPropertyRule,
			regionPropertyRule,
		},
		Enums: []wirekit.EnumType{personPropertyEnum},
	}
}

// People owns person records. It shares the region id rule with Regions.
func People() Module {
	return Module{
		Name:  "people",
		Rules: []wirekit.Rule{peopleDataRule, personRule, regionIDRule},
	}
}

// Regions owns the region list and region-level properties.
func Regions() Module {
	return Module{
		Name:  "regions",
		Rules: []wirekit.Rule{regionsDataRule, regionIDRule},
	}
}

// Modules returns every demo plugin.
func Modules() []Module {
	return []Module{People(), Regions(), Properties()}
}

// NewRegistry assembles the given modules, or all of them when none are
// given.
func NewRegistry(modules []Module, opts ...wirekit.Option) (*wirekit.Registry, error) {
	if len(modules) == 0 {
		modules = Modules()
	}
	b := wirekit.New(opts...)
	for _, m := range modules {
		b.AddRules(m.Rules...)
		for _, e := range m.Enums {
			b.AddEnum(e)
		}
	}
	return b.Build()
}

// Registry assembles every demo module.
func Registry(opts ...wirekit.Option) (*wirekit.Registry, error) {
	return NewRegistry(nil, opts...)
}

// SampleState returns a small but complete plugin state, keyed the way a
// checkpoint stores it.
func SampleState() map[string]any {
	return map[string]any{
		"people": PeopleData{
			People: []Person{
				{
					ID:     0,
					Name:   "Ada",
					Born:   wirekit.Date{Year: 1990, Month: time.March, Day: 14},
					Region: "north",
					Properties: []PropertyValue{
						{ID: PersonAge, Value: int32(35)},
						{ID: PersonVaccinated, Value: true},
					},
				},
				{
					ID:     1,
					Name:   "Grace",
					Born:   wirekit.Date{Year: 1985, Month: time.December, Day: 9},
					Region: "south",
					Properties: []PropertyValue{
						{ID: PersonHeight, Value: 1.68},
						{ID: GlobalProperty("occupation"), Value: "engineer"},
					},
				},
			},
			NextPersonID: 2,
		},
		"regions": RegionsData{
			Regions: []RegionID{"north", "south"},
			Properties: []PropertyValue{
				{ID: RegionProperty{Name: "population", Index: 0}, Value: int64(120000)},
				{ID: RegionProperty{Name: "founded", Index: 1}, Value: wirekit.Date{Year: 1850, Month: time.June, Day: 1}},
			},
		},
		"tick":   int64(1440),
		"season": GlobalProperty("winter"),
	}
}
