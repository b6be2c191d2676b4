// Package lines parses emission-line identifiers written in the Meudon PDR
// code's naming convention.
//
// An identifier has the shape species_highlevels__lowlevels: a chemical
// species segment, then the upper-level quantum numbers, a double underscore,
// and the lower-level quantum numbers. Single underscores separate both the
// species from the transition and the individual level tokens, so the
// canonical species table (not a fixed split position) decides where the
// species ends: "c_18o_j2__j1" is a C18O line, not a line of species "c".
//
// # Level grammar
//
// Each level is an ordered sequence of tokens:
//
//   - Energy tokens: a short label followed by an integer ("j2", "n10") or a
//     half-integer in either the fraction form "j5_2" (5/2) or the decimal
//     form "f9d5" (9.5).
//   - Electronic tokens: an "el" prefix, a shell number, and a state letter
//     ("el3d", "el2po"), optionally followed by energy tokens scoped to that
//     electronic state.
//   - Literal tokens: bare flags with no numeric payload, such as the parity
//     markers "pp" and "pm". Parts with an unrecognized label are kept as
//     literal tokens rather than guessed at.
//
// The hyperfine quantum number f is, when present, the last token of a
// level; identifiers that differ only in their f tokens belong to the same
// hyperfine manifold. See the hyperfine operations for classification,
// grouping, and stripping.
//
// Parsing is pure and synchronous: no I/O, no configuration, no shared
// state. Rendering of parsed lines lives in the notation package.
package lines
