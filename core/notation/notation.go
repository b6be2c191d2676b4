// Package notation renders tokenized emission lines into display strings.
//
// The renderer itself is backend-agnostic: a Backend is pure symbol data
// (species fragments, per-label templates, the arrow and math delimiters)
// and the render functions consume whichever backend the caller selects.
// The latex backend is the reference behavior; the text backend shows the
// same pipeline targeting plain terminals. Render options are an explicit
// value passed to every call, never process state, so concurrent rendering
// with different options is safe.
package notation

import (
	"fmt"
	"sort"
)

// Options are the presentation switches consulted on every render call.
// The zero value disables everything including math mode; use
// DefaultOptions for the documented defaults.
type Options struct {
	// MathMode wraps every rendered fragment in the backend's math
	// delimiters.
	MathMode bool

	// Suppress lists energy labels (and literal keys) to drop entirely.
	Suppress []string

	// HideElectronic drops electronic-state tokens.
	HideElectronic bool

	// HideLiteral drops literal tokens.
	HideLiteral bool

	// RotationalOnly keeps only the rotational (j) token of each level.
	RotationalOnly bool
}

// DefaultOptions returns the default rendering configuration: math mode on,
// no suppression.
func DefaultOptions() Options {
	return Options{MathMode: true}
}

func (o Options) suppressed(key string) bool {
	for _, k := range o.Suppress {
		if k == key {
			return true
		}
	}
	return false
}

// Backend is a symbol table targeting one output notation. It is data, not
// logic: the render functions in this package interpret it.
type Backend struct {
	// Name registers the backend ("latex", "text").
	Name string

	// Species maps canonical species names to display fragments.
	Species map[string]string

	// Energy maps energy labels to templates with one %s slot for the
	// rendered value.
	Energy map[string]string

	// Electronic maps state letters (with optional parity suffix "o") to
	// templates with one %d slot for the shell number.
	Electronic map[string]string

	// Literal maps literal keys to complete fragments; nothing is
	// substituted.
	Literal map[string]string

	// Arrow separates the upper and lower halves of a transition group.
	Arrow string

	// MathOpen and MathClose delimit math fragments when math mode is on.
	// Backends with no math concept leave them empty.
	MathOpen  string
	MathClose string

	// Fraction renders a half-integer value num/den.
	Fraction func(num, den int) string
}

// math wraps a fragment in the backend's math delimiters when math mode is
// on.
func (b *Backend) math(opts Options, s string) string {
	if !opts.MathMode || (b.MathOpen == "" && b.MathClose == "") {
		return s
	}
	return b.MathOpen + s + b.MathClose
}

// clone returns a deep copy safe to mutate (overlays modify copies, never
// registered backends).
func (b *Backend) clone() *Backend {
	dup := *b
	dup.Species = cloneTable(b.Species)
	dup.Energy = cloneTable(b.Energy)
	dup.Electronic = cloneTable(b.Electronic)
	dup.Literal = cloneTable(b.Literal)
	return &dup
}

func cloneTable(m map[string]string) map[string]string {
	dup := make(map[string]string, len(m))
	for k, v := range m {
		dup[k] = v
	}
	return dup
}

// registry of available backends, populated by init functions.
var backends = make(map[string]*Backend)

// Register adds a backend to the registry. Later registrations with the
// same name replace earlier ones.
func Register(b *Backend) {
	backends[b.Name] = b
}

// Lookup returns the registered backend with the given name.
func Lookup(name string) (*Backend, error) {
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown notation backend %q (have %v)", name, Names())
	}
	return b, nil
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
