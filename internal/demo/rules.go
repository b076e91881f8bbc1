package demo

import (
	"google.golang.org/genproto/googleapis/type/date"

	"github.com/reoring/wirekit"
	"github.com/reoring/wirekit/internal/demo/demopb"
)

var (
	regionIDRule = wirekit.NewLeafRule(
		func(w *demopb.RegionIdInput) RegionID { return RegionID(w.GetId()) },
		func(id RegionID) *demopb.RegionIdInput { return &demopb.RegionIdInput{Id: string(id)} },
	)

	globalPropertyRule = wirekit.NewLeafRule(
		func(w *demopb.GlobalPropertyIdInput) GlobalProperty { return GlobalProperty(w.GetId()) },
		func(p GlobalProperty) *demopb.GlobalPropertyIdInput {
			return &demopb.GlobalPropertyIdInput{Id: string(p)}
		},
	)

	regionPropertyRule = wirekit.NewLeafRule(
		func(w *demopb.RegionPropertyIdInput) RegionProperty {
			return RegionProperty{Name: w.GetName(), Index: w.GetIndex()}
		},
		func(p RegionProperty) *demopb.RegionPropertyIdInput {
			return &demopb.RegionPropertyIdInput{Name: p.Name, Index: p.Index}
		},
	)

	propertyIDRule     = wirekit.NewRule(propertyIDToDomain, propertyIDToWire)
	propertyValueRule  = wirekit.NewRule(propertyValueToDomain, propertyValueToWire)
	personRule         = wirekit.NewRule(personToDomain, personToWire)
	peopleDataRule     = wirekit.NewRule(peopleDataToDomain, peopleDataToWire)
	regionsDataRule    = wirekit.NewRule(regionsDataToDomain, regionsDataToWire)
	personPropertyEnum = wirekit.Enum[PersonProperty](PersonPropertyTypeID)
)

// ---- property identifiers ----

func propertyIDToDomain(c wirekit.Converter, w *demopb.PropertyIdInput) (PropertyID, error) {
	v, err := c.Unbox(w.GetId())
	if err != nil {
		return nil, err
	}
	id, ok := v.(PropertyID)
	if !ok {
		return nil, &wirekit.Error{Code: wirekit.CodeInvalidInputClass, Class: wirekit.TypeIDOf(w), Message: "envelope does not hold a property id"}
	}
	return id, nil
}

func propertyIDToWire(c wirekit.Converter, id PropertyID) (*demopb.PropertyIdInput, error) {
	env, err := c.BoxValue(id)
	if err != nil {
		return nil, err
	}
	return &demopb.PropertyIdInput{Id: env}, nil
}

func propertyValueToDomain(c wirekit.Converter, w *demopb.PropertyValueInput) (PropertyValue, error) {
	id, err := wirekit.ToDomain[PropertyID](c, w.GetPropertyId())
	if err != nil {
		return PropertyValue{}, err
	}
	v, err := c.Unbox(w.GetValue())
	if err != nil {
		return PropertyValue{}, err
	}
	return PropertyValue{ID: id, Value: v}, nil
}

func propertyValueToWire(c wirekit.Converter, p PropertyValue) (*demopb.PropertyValueInput, error) {
	m, err := wirekit.ConvertAsType(c, p.ID)
	if err != nil {
		return nil, err
	}
	id, ok := m.(*demopb.PropertyIdInput)
	if !ok {
		return nil, &wirekit.Error{Code: wirekit.CodeInvalidInputClass, Class: wirekit.TypeIDOf(m), Message: "property id rule produced an unexpected message"}
	}
	v, err := c.BoxValue(p.Value)
	if err != nil {
		return nil, err
	}
	return &demopb.PropertyValueInput{PropertyId: id, Value: v}, nil
}

func propertiesToDomain(c wirekit.Converter, ws []*demopb.PropertyValueInput) ([]PropertyValue, error) {
	var out []PropertyValue
	for _, w := range ws {
		p, err := wirekit.ToDomain[PropertyValue](c, w)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func propertiesToWire(c wirekit.Converter, ps []PropertyValue) ([]*demopb.PropertyValueInput, error) {
	var out []*demopb.PropertyValueInput
	for _, p := range ps {
		w, err := wirekit.ToWire[*demopb.PropertyValueInput](c, p)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// ---- people ----

func personToDomain(c wirekit.Converter, w *demopb.PersonInput) (Person, error) {
	born, err := wirekit.ToDomain[wirekit.Date](c, w.GetBorn())
	if err != nil {
		return Person{}, err
	}
	region, err := wirekit.ToDomain[RegionID](c, w.GetRegionId())
	if err != nil {
		return Person{}, err
	}
	props, err := propertiesToDomain(c, w.GetProperties())
	if err != nil {
		return Person{}, err
	}
	return Person{ID: w.GetId(), Name: w.GetName(), Born: born, Region: region, Properties: props}, nil
}

func personToWire(c wirekit.Converter, p Person) (*demopb.PersonInput, error) {
	born, err := wirekit.ToWire[*date.Date](c, p.Born)
	if err != nil {
		return nil, err
	}
	region, err := wirekit.ToWire[*demopb.RegionIdInput](c, p.Region)
	if err != nil {
		return nil, err
	}
	props, err := propertiesToWire(c, p.Properties)
	if err != nil {
		return nil, err
	}
	return &demopb.PersonInput{Id: p.ID, Name: p.Name, Born: born, RegionId: region, Properties: props}, nil
}

func peopleDataToDomain(c wirekit.Converter, w *demopb.PeoplePluginDataInput) (PeopleData, error) {
	var people []Person
	for _, pw := range w.GetPeople() {
		p, err := wirekit.ToDomain[Person](c, pw)
		if err != nil {
			return PeopleData{}, err
		}
		people = append(people, p)
	}
	return PeopleData{People: people, NextPersonID: w.GetNextPersonId()}, nil
}

func peopleDataToWire(c wirekit.Converter, d PeopleData) (*demopb.PeoplePluginDataInput, error) {
	w := &demopb.PeoplePluginDataInput{NextPersonId: d.NextPersonID}
	for _, p := range d.People {
		pw, err := wirekit.ToWire[*demopb.PersonInput](c, p)
		if err != nil {
			return nil, err
		}
		w.People = append(w.People, pw)
	}
	return w, nil
}

// ---- regions ----

func regionsDataToDomain(c wirekit.Converter, w *demopb.RegionsPluginDataInput) (RegionsData, error) {
	var d RegionsData
	for _, rw := range w.GetRegionIds() {
		id, err := wirekit.ToDomain[RegionID](c, rw)
		if err != nil {
			return RegionsData{}, err
		}
		d.Regions = append(d.Regions, id)
	}
	props, err := propertiesToDomain(c, w.GetRegionProperties())
	if err != nil {
		return RegionsData{}, err
	}
	d.Properties = props
	return d, nil
}

func regionsDataToWire(c wirekit.Converter, d RegionsData) (*demopb.RegionsPluginDataInput, error) {
	w := &demopb.RegionsPluginDataInput{}
	for _, id := range d.Regions {
		rw, err := wirekit.ToWire[*demopb.RegionIdInput](c, id)
		if err != nil {
			return nil, err
		}
		w.RegionIds = append(w.RegionIds, rw)
	}
	props, err := propertiesToWire(c, d.Properties)
	if err != nil {
		return nil, err
	}
	w.RegionProperties = props
	return w, nil
}
