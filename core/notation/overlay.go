package notation

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/FocuswithJustin/ismlines/core/errors"
)

// Overlay is a user-supplied patch over a backend's symbol tables, loaded
// from TOML. All tables are optional; entries replace or extend the
// backend's own. Overlays change display only; they cannot teach the
// tokenizer new species.
//
// Example:
//
//	arrow = "\\rightarrow"
//
//	[species]
//	h2o = "\\mathrm{H_2O}"
//
//	[energy]
//	j = "J = %s"
type Overlay struct {
	Species    map[string]string `toml:"species,omitempty"`
	Energy     map[string]string `toml:"energy,omitempty"`
	Electronic map[string]string `toml:"electronic,omitempty"`
	Literal    map[string]string `toml:"literal,omitempty"`
	Arrow      string            `toml:"arrow,omitempty"`
}

// LoadOverlay reads an overlay from a TOML file.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading symbol overlay %s", path)
	}
	var o Overlay
	if err := toml.Unmarshal(data, &o); err != nil {
		return nil, errors.Wrapf(err, "parsing symbol overlay %s", path)
	}
	return &o, nil
}

// Apply returns a copy of the backend with the overlay's entries merged in.
// The registered backend is never mutated.
func (o *Overlay) Apply(b *Backend) *Backend {
	dup := b.clone()
	mergeTable(dup.Species, o.Species)
	mergeTable(dup.Energy, o.Energy)
	mergeTable(dup.Electronic, o.Electronic)
	mergeTable(dup.Literal, o.Literal)
	if o.Arrow != "" {
		dup.Arrow = o.Arrow
	}
	return dup
}

func mergeTable(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
