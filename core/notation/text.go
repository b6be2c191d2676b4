package notation

import "fmt"

// Text is a plain-terminal backend: no markup, ASCII arrow, math mode is a
// no-op. It exists for log output and quick inspection, and doubles as the
// proof that the render pipeline is notation-agnostic.
func Text() *Backend {
	return textBackend
}

var textBackend = &Backend{
	Name: "text",

	Species: map[string]string{
		"h":       "H",
		"h2":      "H2",
		"hd":      "HD",
		"co":      "CO",
		"13c_o":   "13CO",
		"c_18o":   "C18O",
		"13c_18o": "13C18O",
		"c":       "C",
		"n":       "N",
		"o":       "O",
		"s":       "S",
		"si":      "Si",
		"cs":      "CS",
		"cn":      "CN",
		"hcn":     "HCN",
		"hnc":     "HNC",
		"oh":      "OH",
		"h2o":     "H2O",
		"h2_18o":  "H2-18O",
		"c2h":     "C2H",
		"c_c3h2":  "c-C3H2",
		"so":      "SO",
		"cp":      "C+",
		"sp":      "S+",
		"hcop":    "HCO+",
		"chp":     "CH+",
		"ohp":     "OH+",
		"shp":     "SH+",
	},

	Energy: map[string]string{
		"j":  "J=%s",
		"v":  "v=%s",
		"f":  "F=%s",
		"n":  "N=%s",
		"ka": "Ka=%s",
		"kc": "Kc=%s",
	},

	Electronic: map[string]string{
		"s":  "%ds",
		"p":  "%dp",
		"d":  "%dd",
		"f":  "%df",
		"so": "%ds*",
		"po": "%dp*",
		"do": "%dd*",
		"fo": "%df*",
	},

	Literal: map[string]string{
		"pp": "p+",
		"pm": "p-",
	},

	Arrow: "->",

	Fraction: func(num, den int) string {
		return fmt.Sprintf("%d/%d", num, den)
	},
}

func init() {
	Register(textBackend)
}
