// Package wirekit translates between application ("domain") values and
// protobuf wire messages through a registry of conversion rules.
//
// Modules contribute rules independently, in any order, to a Builder; Build
// freezes them into a Registry that is safe for concurrent use:
//
//	reg, err := wirekit.New(wirekit.WithLogger(logger)).
//		AddRules(people.Rules()...).
//		AddEnum(wirekit.Enum[Color]("example.Color")).
//		Build()
//
//	wire, err := reg.Convert(person)         // domain -> wire
//	env, err := reg.BoxValue(int32(42))      // any registered value -> *anypb.Any
//	v, err := reg.Unbox(env)                 // int32(42)
//	w, err := reg.ConvertAs(id, idInterface) // rule keyed by an interface
//
// Adding a rule also registers every message schema nested in its wire type,
// except behind google.protobuf.Any fields, whose contents are resolved by
// type id when unboxed. Scalars, calendar dates and enums travel through the
// primitive wrapper schemas and unbox to native Go values.
//
// Every failure is an *Error whose code matches one of the Err sentinels via
// errors.Is. They report wiring defects and are never worth retrying.
package wirekit
