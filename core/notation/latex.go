package notation

import "fmt"

// LaTeX is the reference backend: math-mode fragments for use in plot
// labels and tables. The tables mirror the Meudon PDR naming convention.
func LaTeX() *Backend {
	return latexBackend
}

var latexBackend = &Backend{
	Name: "latex",

	Species: map[string]string{
		"h":       "H",
		"h2":      "H_2",
		"hd":      "HD",
		"co":      "CO",
		"13c_o":   "^{13}CO",
		"c_18o":   "C^{18}O",
		"13c_18o": "^{13}C^{18}O",
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
		"h2o":     "H_2O",
		"h2_18o":  "H_2^{18}O",
		"c2h":     "C_2H",
		"c_c3h2":  "c-C_3H_2",
		"so":      "SO",
		"cp":      "C^+",
		"sp":      "S^+",
		"hcop":    "HCO^+",
		"chp":     "CH^+",
		"ohp":     "OH^+",
		"shp":     "SH^+",
	},

	Energy: map[string]string{
		"j":  "J=%s",
		"v":  "\\nu=%s",
		"f":  "f=%s",
		"n":  "n=%s",
		"ka": "k_a=%s",
		"kc": "k_c=%s",
	},

	Electronic: map[string]string{
		"s":  "%ds",
		"p":  "%dp",
		"d":  "%dd",
		"f":  "%df",
		"so": "%ds^o",
		"po": "%dp^o",
		"do": "%dd^o",
		"fo": "%df^o",
	},

	Literal: map[string]string{
		"pp": "p^+",
		"pm": "p^-",
	},

	Arrow:     "\\to",
	MathOpen:  "$",
	MathClose: "$",

	Fraction: func(num, den int) string {
		return fmt.Sprintf("\\frac{%d}{%d}", num, den)
	},
}

func init() {
	Register(latexBackend)
}
