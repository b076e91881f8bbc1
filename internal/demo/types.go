// Package demo is a small population model whose plugins register their own
// conversion rules, the way independently developed modules would.
package demo

import (
	"fmt"

	"github.com/reoring/wirekit"
)

// PropertyID identifies a property. Implementations are unrelated types, so
// they share a single rule registered under this interface.
type PropertyID interface {
	fmt.Stringer
	isPropertyID()
}

// PersonProperty enumerates the built-in person properties.
type PersonProperty int32

const (
	PersonAge PersonProperty = iota
	PersonHeight
	PersonVaccinated
)

// PersonPropertyTypeID is the enum wrapper name of PersonProperty.
const PersonPropertyTypeID = "wirekit.demo.v1.PersonProperty"

func (p PersonProperty) String() string {
	switch p {
	case PersonAge:
		return "AGE"
	case PersonHeight:
		return "HEIGHT"
	case PersonVaccinated:
		return "VACCINATED"
	}
	return fmt.Sprintf("PersonProperty(%d)", int32(p))
}

func (PersonProperty) isPropertyID() {}

// GlobalProperty is a simulation-wide property named at runtime.
type GlobalProperty string

func (g GlobalProperty) String() string { return string(g) }
func (GlobalProperty) isPropertyID()    {}

// RegionProperty is an indexed region property.
type RegionProperty struct {
	Name  string
	Index int32
}

func (r RegionProperty) String() string { return fmt.Sprintf("%s[%d]", r.Name, r.Index) }
func (RegionProperty) isPropertyID()    {}

// RegionID names a region.
type RegionID string

// PropertyValue assigns a value to a property. Value must be boxable by the
// registry: a scalar, a Date, a registered enum or a registered domain type.
type PropertyValue struct {
	ID    PropertyID
	Value any
}

// Person is one member of the population.
type Person struct {
	ID         int32
	Name       string
	Born       wirekit.Date
	Region     RegionID
	Properties []PropertyValue
}

// PeopleData is the checkpointed state of the people plugin.
type PeopleData struct {
	People       []Person
	NextPersonID int32
}

// RegionsData is the checkpointed state of the regions plugin.
type RegionsData struct {
	Regions    []RegionID
	Properties []PropertyValue
}
