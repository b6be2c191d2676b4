package lines

import (
	"sort"
	"strings"
)

// canonicalSpecies is the set of species names the tokenizer recognizes.
// The table is authoritative for the species/transition boundary: several
// names contain underscores ("c_18o", "c_c3h2"), so the species segment is
// found by longest-prefix match against this table, never by position.
var canonicalSpecies = map[string]struct{}{
	"h":       {},
	"h2":      {},
	"hd":      {},
	"co":      {},
	"13c_o":   {},
	"c_18o":   {},
	"13c_18o": {},
	"c":       {},
	"n":       {},
	"o":       {},
	"s":       {},
	"si":      {},
	"cs":      {},
	"cn":      {},
	"hcn":     {},
	"hnc":     {},
	"oh":      {},
	"h2o":     {},
	"h2_18o":  {},
	"c2h":     {},
	"c_c3h2":  {},
	"so":      {},
	"cp":      {},
	"sp":      {},
	"hcop":    {},
	"chp":     {},
	"ohp":     {},
	"shp":     {},
}

// speciesAliases maps alternate spellings to canonical species names.
// Aliases are accepted anywhere a species is: in identifiers, in filter
// targets, and in render calls.
var speciesAliases = map[string]string{
	"13co":   "13c_o",
	"c18o":   "c_18o",
	"13c18o": "13c_18o",
	"cc3h2":  "c_c3h2",
}

// CanonicalSpecies resolves a species name or alias to its canonical form.
// Matching is case-insensitive. The second return value reports whether the
// name is known.
func CanonicalSpecies(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := canonicalSpecies[name]; ok {
		return name, true
	}
	if canon, ok := speciesAliases[name]; ok {
		return canon, true
	}
	return "", false
}

// KnownSpecies returns the canonical species names in sorted order.
func KnownSpecies() []string {
	names := make([]string, 0, len(canonicalSpecies))
	for name := range canonicalSpecies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
