// Package milsymbol builds renderable symbols from APP-6D SIDC strings and
// is the authority on whether a code maps to a drawable icon.
//
// A Symbol carries the decoded letter-code semantics of a SIDC (affiliation,
// battle dimension, headquarters and task force flags, operational
// condition) plus the glyph lookup that decides ValidIcon. Only icons
// present in the glyph tables are drawable; "000000" always is, since it
// renders as the bare frame.
package milsymbol
