// Package dsl builds sentence field grammars for gonmea.
//
// Overview
//   - Field: a closed set of field validators (Status, Latitude, Time, ...)
//     plus repeatable groups (ZeroOrOne, ZeroOrMore, OneOrMore, Repeat).
//   - Sentence: an ordered list of fields for one formatter. It implements
//     gonmea.Grammar and is registered in a catalog.
//
// Fields are consumed left to right starting at the first data field. A
// field that has no data field left reports E015 at the checksum field;
// surplus data fields after the grammar are accepted.
//
// Example
//
//	gll := g.Sentence("GLL",
//	    g.Latitude(), g.Literal("NS"),
//	    g.Longitude(), g.Literal("EW"),
//	    g.Time(), g.Status(),
//	    g.ZeroOrOne(g.Literal("ADEMSN")),
//	)
//	err := gll.Validate(line, elem.Fields)
//
// File layout (roles)
//   - field.go: Field variants, constructors and notation rendering.
//   - validate.go: per-variant validation and group iteration.
//   - sentence.go: Sentence grammar (gonmea.Grammar).
package dsl
