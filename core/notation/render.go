package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/ismlines/core/errors"
	"github.com/FocuswithJustin/ismlines/core/lines"
)

// RenderSpecies renders the species fragment alone. The input may be a
// canonical name or an alias; a species absent from the backend's table is
// an UnknownSpecies error, never a silent fallback, because mis-labeling a
// species is worse than failing.
func RenderSpecies(b *Backend, opts Options, species string) (string, error) {
	name, ok := lines.CanonicalSpecies(species)
	if !ok {
		name = strings.ToLower(strings.TrimSpace(species))
	}
	frag, ok := b.Species[name]
	if !ok {
		return "", errors.NewUnknownSpecies(species)
	}
	return b.math(opts, frag), nil
}

// RenderTransition renders an upper/lower level pair. Tokens are filtered
// by the options, paired positionally, and split into the part shared by
// both levels (rendered once, leading) and the part that changes across the
// transition (rendered around the arrow, parenthesized). A pair left empty
// by filtering renders as an empty parenthetical group.
func RenderTransition(b *Backend, opts Options, upper, lower []lines.Token) (string, error) {
	up := filterTokens(lines.Flatten(upper), opts)
	lo := filterTokens(lines.Flatten(lower), opts)
	if len(up) != len(lo) {
		return "", errors.NewMalformed("", "upper and lower levels do not list the same quantum numbers")
	}

	var shared, from, to []string
	for i := range up {
		a, z := up[i], lo[i]
		if a.Kind != z.Kind || (a.Kind == lines.EnergyToken && a.Key != z.Key) {
			return "", errors.NewMalformed("",
				fmt.Sprintf("quantum numbers are ordered differently in the two levels (%s vs %s)", a.Segment(), z.Segment()))
		}
		fragA, err := renderToken(b, opts, a)
		if err != nil {
			return "", err
		}
		if a.Equal(z) {
			shared = append(shared, fragA)
			continue
		}
		fragZ, err := renderToken(b, opts, z)
		if err != nil {
			return "", err
		}
		from = append(from, fragA)
		to = append(to, fragZ)
	}

	group := "()"
	if len(from) > 0 {
		group = "(" + strings.Join(from, ", ") + " " + b.math(opts, b.Arrow) + " " + strings.Join(to, ", ") + ")"
	}
	if len(shared) == 0 {
		return group, nil
	}
	return strings.Join(shared, " ") + " " + group, nil
}

// RenderLine renders a full identifier: species fragment, then the
// transition. This is the primary entry point.
func RenderLine(b *Backend, opts Options, identifier string) (string, error) {
	line, err := lines.Parse(identifier)
	if err != nil {
		return "", err
	}
	species, err := RenderSpecies(b, opts, line.Species)
	if err != nil {
		return "", err
	}
	transition, err := RenderTransition(b, opts, line.Upper, line.Lower)
	if err != nil {
		return "", err
	}
	return species + " " + transition, nil
}

// filterTokens applies the option switches in their documented order:
// suppression set, electronic, literal, rotational-only.
func filterTokens(tokens []lines.Token, opts Options) []lines.Token {
	kept := make([]lines.Token, 0, len(tokens))
	for _, t := range tokens {
		switch {
		case t.Key != "" && opts.suppressed(t.Key):
		case opts.HideElectronic && t.Kind == lines.ElectronicToken:
		case opts.HideLiteral && t.Kind == lines.LiteralToken:
		case opts.RotationalOnly && !(t.Kind == lines.EnergyToken && t.Key == "j"):
		default:
			kept = append(kept, t)
		}
	}
	return kept
}

// renderToken renders one token through the backend's tables. A key that
// survived filtering but has no template is an UnknownLabel error: a table
// gap must surface, not be dropped.
func renderToken(b *Backend, opts Options, t lines.Token) (string, error) {
	switch t.Kind {
	case lines.ElectronicToken:
		tmpl, ok := b.Electronic[t.State]
		if !ok {
			return "", errors.NewUnknownLabel("el"+t.State, b.Name)
		}
		return b.math(opts, fmt.Sprintf(tmpl, t.Shell)), nil
	case lines.LiteralToken:
		frag, ok := b.Literal[t.Key]
		if !ok {
			return "", errors.NewUnknownLabel(t.Key, b.Name)
		}
		return b.math(opts, frag), nil
	default:
		tmpl, ok := b.Energy[t.Key]
		if !ok {
			return "", errors.NewUnknownLabel(t.Key, b.Name)
		}
		return b.math(opts, fmt.Sprintf(tmpl, renderValue(b, t.Value))), nil
	}
}

func renderValue(b *Backend, v lines.Value) string {
	if v.IsHalf() {
		return b.Fraction(v.Num, v.Den)
	}
	return strconv.Itoa(v.Num)
}
