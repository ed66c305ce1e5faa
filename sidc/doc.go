// Package sidc encodes and decodes APP-6D / MIL-STD-2525D Symbol
// Identification Codes.
//
// A SIDC is twenty ASCII digits at fixed offsets:
//
//	offset  width  field
//	 0      2      version (always "10")
//	 2      1      context
//	 3      1      standard identity
//	 4      2      symbol set
//	 6      1      status
//	 7      1      headquarters / task force / dummy
//	 8      2      echelon / mobility
//	10      6      main icon (function id)
//	16      2      modifier 1
//	18      2      modifier 2
//
// Generate is total: unknown labels fall back to per-field defaults and
// malformed code fragments are fitted to their column width, so the result is
// always twenty characters. Parse is the strict inverse used for codes that
// arrive from outside. Validate and Metadata consult a Renderer, which is the
// authority on whether a code draws a real glyph.
//
// All tables are built once at package initialization and never mutated, so
// every function here is safe for concurrent use.
package sidc
