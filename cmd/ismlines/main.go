// Command ismlines parses and renders Meudon PDR emission-line identifiers.
// It provides commands for rendering lines to a chosen notation, listing
// and filtering species, and working with hyperfine structure.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/ismlines/core/lines"
	"github.com/FocuswithJustin/ismlines/core/notation"
	"github.com/FocuswithJustin/ismlines/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for ismlines.
var CLI struct {
	// Global flags
	Backend        string   `name:"backend" short:"b" default:"latex" help:"Notation backend (latex, text)"`
	Symbols        string   `name:"symbols" help:"TOML symbol-table overlay file" type:"existingfile"`
	NoMath         bool     `name:"no-math" help:"Do not wrap fragments in math delimiters"`
	Suppress       []string `name:"suppress" short:"s" help:"Energy labels to drop (repeatable, e.g. -s v -s f)"`
	NoElectronic   bool     `name:"no-electronic" help:"Drop electronic-state tokens"`
	NoLiteral      bool     `name:"no-literal" help:"Drop literal tokens (parity markers)"`
	RotationalOnly bool     `name:"rotational-only" short:"j" help:"Keep only the rotational (J) token of each level"`
	LogLevel       string   `name:"log-level" default:"warn" help:"Log level (debug, info, warn, error)"`
	LogJSON        bool     `name:"log-json" help:"Log in JSON format"`

	Render    RenderCmd      `cmd:"" help:"Render line identifiers to the selected notation"`
	Species   SpeciesCmd     `cmd:"" help:"Render the species fragment of each identifier"`
	Molecules MoleculesCmd   `cmd:"" help:"List the distinct species among identifiers, first-seen order"`
	Filter    FilterCmd      `cmd:"" help:"Keep only lines of the given species"`
	Hyperfine HyperfineGroup `cmd:"" help:"Hyperfine-structure operations"`
	Version   VersionCmd     `cmd:"" help:"Print version information"`
}

// HyperfineGroup contains hyperfine-structure operations.
type HyperfineGroup struct {
	Check CheckCmd `cmd:"" help:"Report whether each identifier is a hyperfine line"`
	Strip StripCmd `cmd:"" help:"Remove hyperfine tokens from each identifier"`
	Group GroupCmd `cmd:"" help:"Test whether two identifiers share a hyperfine manifold"`
}

// options assembles the render options from the global flags.
func options() notation.Options {
	opts := notation.DefaultOptions()
	opts.MathMode = !CLI.NoMath
	opts.Suppress = CLI.Suppress
	opts.HideElectronic = CLI.NoElectronic
	opts.HideLiteral = CLI.NoLiteral
	opts.RotationalOnly = CLI.RotationalOnly
	return opts
}

// backend resolves the selected backend and applies the symbol overlay, if
// any.
func backend() (*notation.Backend, error) {
	b, err := notation.Lookup(CLI.Backend)
	if err != nil {
		return nil, err
	}
	if CLI.Symbols != "" {
		overlay, err := notation.LoadOverlay(CLI.Symbols)
		if err != nil {
			return nil, err
		}
		logging.Debug("applied symbol overlay", "path", CLI.Symbols, "backend", b.Name)
		b = overlay.Apply(b)
	}
	return b, nil
}

// gatherIdentifiers returns the positional identifiers, or reads them from
// stdin (one per line, blank lines skipped) when none are given.
func gatherIdentifiers(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var ids []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return ids, nil
}

// RenderCmd renders full lines.
type RenderCmd struct {
	Identifiers []string `arg:"" optional:"" help:"Line identifiers (default: read from stdin)"`
}

func (c *RenderCmd) Run() error {
	b, err := backend()
	if err != nil {
		return err
	}
	ids, err := gatherIdentifiers(c.Identifiers)
	if err != nil {
		return err
	}
	opts := options()
	for _, id := range ids {
		rendered, err := notation.RenderLine(b, opts, id)
		if err != nil {
			logging.Error("render failed", "identifier", id, "error", err)
			return err
		}
		fmt.Println(rendered)
	}
	return nil
}

// SpeciesCmd renders species fragments only.
type SpeciesCmd struct {
	Identifiers []string `arg:"" optional:"" help:"Line identifiers or species names (default: read from stdin)"`
}

func (c *SpeciesCmd) Run() error {
	b, err := backend()
	if err != nil {
		return err
	}
	ids, err := gatherIdentifiers(c.Identifiers)
	if err != nil {
		return err
	}
	opts := options()
	for _, id := range ids {
		name := id
		// Accept both bare species names and full identifiers. A bare name
		// wins: "c_18o" is a species, not a line of "c".
		if _, ok := lines.CanonicalSpecies(id); !ok {
			if sp, err := lines.Species(id); err == nil {
				name = sp
			}
		}
		rendered, err := notation.RenderSpecies(b, opts, name)
		if err != nil {
			logging.Error("species render failed", "input", id, "error", err)
			return err
		}
		fmt.Println(rendered)
	}
	return nil
}

// MoleculesCmd lists distinct species.
type MoleculesCmd struct {
	Pretty      bool     `help:"Render species through the backend instead of canonical names"`
	Identifiers []string `arg:"" optional:"" help:"Line identifiers (default: read from stdin)"`
}

func (c *MoleculesCmd) Run() error {
	ids, err := gatherIdentifiers(c.Identifiers)
	if err != nil {
		return err
	}
	species, err := lines.MoleculesAmong(ids)
	if err != nil {
		return err
	}
	if !c.Pretty {
		for _, sp := range species {
			fmt.Println(sp)
		}
		return nil
	}
	b, err := backend()
	if err != nil {
		return err
	}
	opts := options()
	for _, sp := range species {
		rendered, err := notation.RenderSpecies(b, opts, sp)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
	}
	return nil
}

// FilterCmd keeps only lines of the given species.
type FilterCmd struct {
	Species     []string `required:"" help:"Species to keep (canonical names or aliases, repeatable)"`
	Identifiers []string `arg:"" optional:"" help:"Line identifiers (default: read from stdin)"`
}

func (c *FilterCmd) Run() error {
	ids, err := gatherIdentifiers(c.Identifiers)
	if err != nil {
		return err
	}
	filtered, err := lines.FilterBySpecies(ids, c.Species)
	if err != nil {
		return err
	}
	for _, id := range filtered {
		fmt.Println(id)
	}
	return nil
}

// CheckCmd reports hyperfine membership per identifier.
type CheckCmd struct {
	Identifiers []string `arg:"" optional:"" help:"Line identifiers (default: read from stdin)"`
}

func (c *CheckCmd) Run() error {
	ids, err := gatherIdentifiers(c.Identifiers)
	if err != nil {
		return err
	}
	for _, id := range ids {
		hyperfine, err := lines.IsHyperfineLine(id)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%t\n", id, hyperfine)
	}
	return nil
}

// StripCmd removes hyperfine tokens.
type StripCmd struct {
	Identifiers []string `arg:"" optional:"" help:"Line identifiers (default: read from stdin)"`
}

func (c *StripCmd) Run() error {
	ids, err := gatherIdentifiers(c.Identifiers)
	if err != nil {
		return err
	}
	for _, id := range ids {
		stripped, err := lines.RemoveHyperfine(id)
		if err != nil {
			return err
		}
		fmt.Println(stripped)
	}
	return nil
}

// GroupCmd tests two identifiers for hyperfine-manifold co-membership.
type GroupCmd struct {
	A string `arg:"" help:"First identifier"`
	B string `arg:"" help:"Second identifier"`
}

func (c *GroupCmd) Run() error {
	same, err := lines.SameHyperfineGroup(c.A, c.B)
	if err != nil {
		return err
	}
	fmt.Println(same)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("ismlines %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ismlines"),
		kong.Description("Parse and render Meudon PDR emission-line identifiers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level, err := logging.ParseLevel(CLI.LogLevel)
	if err != nil {
		ctx.FatalIfErrorf(err)
	}
	format := logging.FormatText
	if CLI.LogJSON {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
