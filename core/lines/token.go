package lines

import (
	"strconv"
	"strings"
)

// TokenKind identifies the token families of the level grammar.
type TokenKind int

const (
	// EnergyToken is a labeled quantum number ("j2", "v0", "f9d5").
	EnergyToken TokenKind = iota
	// ElectronicToken is an electronic-state token ("el3d", "el2po").
	ElectronicToken
	// LiteralToken is a bare flag with no numeric payload ("pp", "pm").
	LiteralToken
)

// String returns the token kind name.
func (k TokenKind) String() string {
	switch k {
	case EnergyToken:
		return "energy"
	case ElectronicToken:
		return "electronic"
	case LiteralToken:
		return "literal"
	default:
		return "unknown"
	}
}

// Value is a quantum-number value: an integer (Den == 1) or a half-integer
// (Den == 2, Num odd). Values are always stored normalized, so "j4_2" and
// "j2" carry the same Value.
type Value struct {
	Num int
	Den int
}

// IntValue returns the Value for an integer quantum number.
func IntValue(n int) Value {
	return Value{Num: n, Den: 1}
}

// HalfValue returns the normalized Value for num/2.
func HalfValue(num int) Value {
	if num%2 == 0 {
		return Value{Num: num / 2, Den: 1}
	}
	return Value{Num: num, Den: 2}
}

// IsHalf reports whether the value is a proper half-integer.
func (v Value) IsHalf() bool {
	return v.Den == 2
}

// String renders the value as "n" or "n/2".
func (v Value) String() string {
	if v.Den == 1 {
		return strconv.Itoa(v.Num)
	}
	return strconv.Itoa(v.Num) + "/" + strconv.Itoa(v.Den)
}

// Token is one element of a level's ordered token sequence.
type Token struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind TokenKind

	// Key is the energy label ("j", "v", "ka", ...) for energy tokens and
	// the whole part text for literal tokens. Electronic tokens have no key.
	Key string

	// Value is the quantum number of an energy token.
	Value Value

	// Shell and State describe an electronic token: "el3d" has Shell 3 and
	// State "d"; odd-parity forms carry the trailing "o" ("po", "do").
	Shell int
	State string

	// Sub holds the energy tokens scoped to an electronic state, in order.
	Sub []Token
}

// Equal reports deep equality of two tokens, including scoped sub-tokens.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind || t.Key != o.Key || t.Value != o.Value ||
		t.Shell != o.Shell || t.State != o.State || len(t.Sub) != len(o.Sub) {
		return false
	}
	for i := range t.Sub {
		if !t.Sub[i].Equal(o.Sub[i]) {
			return false
		}
	}
	return true
}

// Segment re-serializes the token into identifier form. Half-integers use
// the fraction shape ("j5_2"); decimal inputs reparse to the same value.
func (t Token) Segment() string {
	switch t.Kind {
	case ElectronicToken:
		var sb strings.Builder
		sb.WriteString("el")
		sb.WriteString(strconv.Itoa(t.Shell))
		sb.WriteString(t.State)
		for _, sub := range t.Sub {
			sb.WriteString("_")
			sb.WriteString(sub.Segment())
		}
		return sb.String()
	case LiteralToken:
		return t.Key
	default:
		if t.Value.IsHalf() {
			return t.Key + strconv.Itoa(t.Value.Num) + "_2"
		}
		return t.Key + strconv.Itoa(t.Value.Num)
	}
}

// Flatten expands electronic tokens into a head token followed by their
// scoped energy tokens, preserving order. Renderers and hyperfine
// comparisons work on the flattened sequence.
func Flatten(tokens []Token) []Token {
	flat := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == ElectronicToken && len(t.Sub) > 0 {
			head := t
			head.Sub = nil
			flat = append(flat, head)
			flat = append(flat, t.Sub...)
			continue
		}
		flat = append(flat, t)
	}
	return flat
}

// TokensEqual reports element-wise equality of two token sequences.
func TokensEqual(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Line is a fully tokenized identifier.
type Line struct {
	// Species is the canonical species name.
	Species string

	// Upper and Lower are the token sequences of the two transition halves.
	Upper []Token
	Lower []Token
}

// Identifier reconstructs the canonical identifier string.
func (l *Line) Identifier() string {
	return l.Species + "_" + levelSegment(l.Upper) + "__" + levelSegment(l.Lower)
}

func levelSegment(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Segment()
	}
	return strings.Join(parts, "_")
}
