package lines

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/ismlines/core/errors"
)

// energyKeys is the static vocabulary of energy labels. Parts whose label is
// outside this set are kept as literal tokens.
var energyKeys = map[string]struct{}{
	"j":  {},
	"v":  {},
	"n":  {},
	"f":  {},
	"ka": {},
	"kc": {},
}

// KnownEnergyKeys returns the energy-label vocabulary in grammar order.
func KnownEnergyKeys() []string {
	return []string{"j", "v", "n", "f", "ka", "kc"}
}

// levelGrammar is the participle grammar for one level segment.
// Examples: "v0_j2", "j1_ka1_kc1", "el3d_j5_2", "n10_j10_f9d5", "pp_fif1"
//
//nolint:govet // participle grammar tags are not standard struct tags
type levelGrammar struct {
	First levelPart   `@@`
	Rest  []levelPart `( "_" @@ )*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type levelPart struct {
	Electronic *electronicPart `  @@`
	Energy     *energyPart     `| @@`
	Literal    *string         `| @Alpha`
}

//nolint:govet // participle grammar tags are not standard struct tags
type electronicPart struct {
	Shell int    `"el" @Int`
	State string `@Alpha`
}

//nolint:govet // participle grammar tags are not standard struct tags
type energyPart struct {
	Key  string    `@Alpha`
	Num  int       `@Int`
	Frac *fracPart `@@?`
}

// fracPart is the secondary-delimiter tail of a half-integer value: the
// fraction form "_2" or the decimal form "dN".
//
//nolint:govet // participle grammar tags are not standard struct tags
type fracPart struct {
	Den *int `  "_" @Int`
	Dec *int `| "d" @Int`
}

// levelLexer splits a level segment into label, number, and separator runs.
var levelLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Alpha", Pattern: `[a-z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Sep", Pattern: `_`},
})

// levelParser is the participle parser for level segments.
var levelParser = participle.MustBuild[levelGrammar](
	participle.Lexer(levelLexer),
	participle.UseLookahead(2),
)

// transitionOpening matches the first segment that can only start a
// transition: an energy label with a number, an electronic-state part, or a
// parity marker. Used as a fallback boundary when no species-table prefix
// matches.
var transitionOpening = regexp.MustCompile(`(?:^|_)(?:(?:j|v|n|f|ka|kc)[0-9]|el[0-9]|pp(?:_|$)|pm(?:_|$))`)

// SplitSpeciesTransition splits an identifier into its canonical species and
// its transition segment. The species is the longest canonical-or-alias
// table entry prefixing the identifier; when no entry matches, the boundary
// falls back to the first transition-opening segment and the species text is
// returned verbatim, so an unrecognized species surfaces as UnknownSpecies
// at render time rather than being mis-split here.
func SplitSpeciesTransition(identifier string) (species, transition string, err error) {
	id := strings.ToLower(strings.TrimSpace(identifier))
	if !strings.Contains(id, "_") {
		return "", "", errors.NewMalformed(identifier, "expected the form species_highlevels__lowlevels")
	}

	best, bestCanon := "", ""
	for name := range canonicalSpecies {
		if len(name) > len(best) && strings.HasPrefix(id, name+"_") {
			best, bestCanon = name, name
		}
	}
	for alias, canon := range speciesAliases {
		if len(alias) > len(best) && strings.HasPrefix(id, alias+"_") {
			best, bestCanon = alias, canon
		}
	}
	if best != "" {
		transition = id[len(best)+1:]
		if transition == "" {
			return "", "", errors.NewMalformed(identifier, "empty transition segment")
		}
		return bestCanon, transition, nil
	}

	loc := transitionOpening.FindStringIndex(id)
	if loc == nil {
		return "", "", errors.NewMalformed(identifier, "no transition tokens found")
	}
	if loc[0] == 0 {
		return "", "", errors.NewMalformed(identifier, "missing species segment")
	}
	return id[:loc[0]], id[loc[0]+1:], nil
}

// SplitTransition splits a transition segment on the double-underscore level
// separator. Exactly one separator must be present and both halves must be
// non-empty.
func SplitTransition(transition string) (upper, lower string, err error) {
	switch strings.Count(transition, "__") {
	case 0:
		return "", "", errors.NewMalformed(transition, "missing the __ level separator")
	case 1:
	default:
		return "", "", errors.NewMalformed(transition, "more than one __ level separator")
	}
	parts := strings.SplitN(transition, "__", 2)
	if parts[0] == "" || parts[1] == "" {
		return "", "", errors.NewMalformed(transition, "empty level segment")
	}
	return parts[0], parts[1], nil
}

// TokenizeLevel tokenizes one level segment into its ordered token
// sequence. Tokenization is a pure function of the segment and the static
// energy-key vocabulary; no configuration is consulted.
func TokenizeLevel(segment string) ([]Token, error) {
	segment = strings.ToLower(strings.TrimSpace(segment))
	if segment == "" {
		return nil, errors.NewMalformed(segment, "empty level segment")
	}

	parsed, err := levelParser.ParseString("", segment)
	if err != nil {
		return nil, &errors.MalformedError{Input: segment, Reason: "invalid level segment", Err: err}
	}

	parts := append([]levelPart{parsed.First}, parsed.Rest...)
	flat := make([]Token, 0, len(parts))
	for _, p := range parts {
		tok, err := p.token(segment)
		if err != nil {
			return nil, err
		}
		flat = append(flat, tok)
	}
	return groupElectronic(flat), nil
}

// token converts one parsed part into a Token, folding half-integer tails
// into a normalized Value and demoting unknown labels to literal tokens.
func (p levelPart) token(segment string) (Token, error) {
	switch {
	case p.Electronic != nil:
		return Token{Kind: ElectronicToken, Shell: p.Electronic.Shell, State: p.Electronic.State}, nil
	case p.Energy != nil:
		e := p.Energy
		value := IntValue(e.Num)
		if e.Frac != nil {
			switch {
			case e.Frac.Den != nil:
				if *e.Frac.Den != 2 {
					return Token{}, errors.NewMalformed(segment,
						"denominator "+strconv.Itoa(*e.Frac.Den)+" is not a half-integer")
				}
				value = HalfValue(e.Num)
			case e.Frac.Dec != nil:
				switch *e.Frac.Dec {
				case 0:
					value = IntValue(e.Num)
				case 5:
					value = HalfValue(2*e.Num + 1)
				default:
					return Token{}, errors.NewMalformed(segment,
						"decimal ."+strconv.Itoa(*e.Frac.Dec)+" is not a half-integer")
				}
			}
		}
		if _, ok := energyKeys[e.Key]; !ok {
			// Unknown label: keep the whole part as a literal token.
			return Token{Kind: LiteralToken, Key: e.literalText()}, nil
		}
		return Token{Kind: EnergyToken, Key: e.Key, Value: value}, nil
	default:
		return Token{Kind: LiteralToken, Key: *p.Literal}, nil
	}
}

func (e *energyPart) literalText() string {
	text := e.Key + strconv.Itoa(e.Num)
	if e.Frac != nil {
		switch {
		case e.Frac.Den != nil:
			text += "_" + strconv.Itoa(*e.Frac.Den)
		case e.Frac.Dec != nil:
			text += "d" + strconv.Itoa(*e.Frac.Dec)
		}
	}
	return text
}

// groupElectronic attaches the energy tokens following an electronic token
// to its scope, stopping at the end of the segment or at the next
// non-energy token.
func groupElectronic(flat []Token) []Token {
	grouped := make([]Token, 0, len(flat))
	for i := 0; i < len(flat); i++ {
		tok := flat[i]
		if tok.Kind == ElectronicToken {
			for i+1 < len(flat) && flat[i+1].Kind == EnergyToken {
				tok.Sub = append(tok.Sub, flat[i+1])
				i++
			}
		}
		grouped = append(grouped, tok)
	}
	return grouped
}

// Parse tokenizes a full identifier.
func Parse(identifier string) (*Line, error) {
	species, transition, err := SplitSpeciesTransition(identifier)
	if err != nil {
		return nil, err
	}
	upperSeg, lowerSeg, err := SplitTransition(transition)
	if err != nil {
		return nil, err
	}
	upper, err := TokenizeLevel(upperSeg)
	if err != nil {
		return nil, err
	}
	lower, err := TokenizeLevel(lowerSeg)
	if err != nil {
		return nil, err
	}
	return &Line{Species: species, Upper: upper, Lower: lower}, nil
}

// Species returns the canonical species of an identifier.
func Species(identifier string) (string, error) {
	species, _, err := SplitSpeciesTransition(identifier)
	return species, err
}

// Transition returns the transition segment of an identifier.
func Transition(identifier string) (string, error) {
	_, transition, err := SplitSpeciesTransition(identifier)
	return transition, err
}
