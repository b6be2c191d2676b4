package lines

// HyperfineKey is the energy label of the hyperfine quantum number. A level
// is hyperfine-degenerate iff its token sequence contains this key; the
// identifier grammar places it last in a level when present.
const HyperfineKey = "f"

// IsHyperfineLine reports whether either level of the identifier carries a
// hyperfine token.
func IsHyperfineLine(identifier string) (bool, error) {
	line, err := Parse(identifier)
	if err != nil {
		return false, err
	}
	return hasHyperfine(line.Upper) || hasHyperfine(line.Lower), nil
}

// SameHyperfineGroup reports whether two identifiers belong to the same
// hyperfine manifold: equal canonical species, and equal ordered token
// sequences once hyperfine tokens are stripped from both levels of both
// identifiers. The relation is symmetric and holds for an identifier and
// itself.
func SameHyperfineGroup(identifierA, identifierB string) (bool, error) {
	a, err := Parse(identifierA)
	if err != nil {
		return false, err
	}
	b, err := Parse(identifierB)
	if err != nil {
		return false, err
	}
	if a.Species != b.Species {
		return false, nil
	}
	return TokensEqual(stripHyperfine(a.Upper), stripHyperfine(b.Upper)) &&
		TokensEqual(stripHyperfine(a.Lower), stripHyperfine(b.Lower)), nil
}

// RemoveHyperfine returns the identifier with hyperfine tokens removed from
// whichever levels contain them. The result is a canonical re-serialization
// (species alias spelling is not preserved); identifiers without hyperfine
// tokens round-trip to their canonical form unchanged. The operation is
// idempotent.
func RemoveHyperfine(identifier string) (string, error) {
	line, err := Parse(identifier)
	if err != nil {
		return "", err
	}
	line.Upper = stripHyperfine(line.Upper)
	line.Lower = stripHyperfine(line.Lower)
	return line.Identifier(), nil
}

func hasHyperfine(tokens []Token) bool {
	for _, t := range tokens {
		if t.Key == HyperfineKey {
			return true
		}
		if t.Kind == ElectronicToken && hasHyperfine(t.Sub) {
			return true
		}
	}
	return false
}

func stripHyperfine(tokens []Token) []Token {
	stripped := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Key == HyperfineKey {
			continue
		}
		if t.Kind == ElectronicToken && hasHyperfine(t.Sub) {
			t.Sub = stripHyperfine(t.Sub)
		}
		stripped = append(stripped, t)
	}
	return stripped
}
