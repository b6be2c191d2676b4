package lines

import "strings"

// Collection operations over ordered identifier sequences. All of them
// propagate the first parse error encountered; callers wanting lenient
// behavior must pre-filter their input.

// resolveTarget alias-resolves a target species; names outside the table
// are normalized but kept, so callers can match species the boundary
// fallback extracted verbatim.
func resolveTarget(species string) string {
	if canon, ok := CanonicalSpecies(species); ok {
		return canon
	}
	return strings.ToLower(strings.TrimSpace(species))
}

// MoleculesAmong returns the canonical species of the given identifiers in
// first-seen order, without duplicates.
func MoleculesAmong(identifiers []string) ([]string, error) {
	seen := make(map[string]struct{})
	var species []string
	for _, id := range identifiers {
		sp, err := Species(id)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[sp]; ok {
			continue
		}
		seen[sp] = struct{}{}
		species = append(species, sp)
	}
	return species, nil
}

// FilterBySpecies returns the subsequence of identifiers whose species is in
// the target set, preserving input order. Targets may be aliases; an empty
// or nil target set returns the input unchanged.
func FilterBySpecies(identifiers []string, targetSpecies []string) ([]string, error) {
	if len(targetSpecies) == 0 {
		return identifiers, nil
	}
	targets := make(map[string]struct{}, len(targetSpecies))
	for _, t := range targetSpecies {
		targets[resolveTarget(t)] = struct{}{}
	}

	var filtered []string
	for _, id := range identifiers {
		sp, err := Species(id)
		if err != nil {
			return nil, err
		}
		if _, ok := targets[sp]; ok {
			filtered = append(filtered, id)
		}
	}
	return filtered, nil
}

// IsLineOf reports whether the identifier is a line of the given species.
// The target may be an alias; it resolves to the same canonical species the
// tokenizer extracts.
func IsLineOf(identifier, species string) (bool, error) {
	sp, err := Species(identifier)
	if err != nil {
		return false, err
	}
	return sp == resolveTarget(species), nil
}
