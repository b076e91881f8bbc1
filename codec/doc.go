// Package codec provides ready-made conversion rules for well-known wire
// types beyond the primitive wrappers every registry carries.
//
// Register them like any module rule:
//
//	reg, err := wirekit.New().
//		AddRule(codec.Timestamp()).
//		AddRule(codec.Duration()).
//		Build()
package codec
