package grid

// Density is a named grid size preset
type Density struct {
	Name       string
	Cols, Rows int
}

// DefaultDensity is the preset selected on startup
const DefaultDensity = "medium"

var densities = []Density{
	{"tiny", 12, 8},
	{"small", 18, 12},
	{"medium", 32, 20},
	{"large", 44, 28},
	{"xlarge", 60, 38},
	{"extreme", 80, 50},
	{"insane", 120, 80},
}

// Densities returns the presets from smallest to largest
func Densities() []Density {
	return append([]Density(nil), densities...)
}

// LookupDensity finds a preset by name
func LookupDensity(name string) (Density, bool) {
	for _, d := range densities {
		if d.Name == name {
			return d, true
		}
	}
	return Density{}, false
}

// NewFromDensity allocates a grid sized by the preset
func NewFromDensity(d Density) *Grid {
	return New(d.Cols, d.Rows)
}
