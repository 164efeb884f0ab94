package workout

// Intensity is the effort label logged for a set.
type Intensity string

const (
	IntensityNone  Intensity = ""
	IntensityFail  Intensity = "FAIL"
	IntensityRIR0  Intensity = "RIR 0"
	IntensityRIR01 Intensity = "RIR 0-1"
	IntensityRIR12 Intensity = "RIR 1-2"
	IntensityRIR23 Intensity = "RIR 2-3"
)

// Intensities lists the selectable values, highest effort first.
var Intensities = []Intensity{
	IntensityNone,
	IntensityFail,
	IntensityRIR0,
	IntensityRIR01,
	IntensityRIR12,
	IntensityRIR23,
}

var intensityColors = map[Intensity]string{
	IntensityFail:  "#FF4B4B",
	IntensityRIR0:  "#FF8C4B",
	IntensityRIR01: "#FFD700",
	IntensityRIR12: "#4CAF50",
	IntensityRIR23: "#2196F3",
}

type IntensityOption struct {
	Value     Intensity `json:"value"`
	Color     string    `json:"color,omitempty"`
	TextColor string    `json:"textColor,omitempty"`
}

// ParseIntensity maps a raw cell value onto the enumeration. Unknown values
// come back as IntensityNone with ok=false.
func ParseIntensity(raw string) (Intensity, bool) {
	for _, i := range Intensities {
		if string(i) == raw {
			return i, true
		}
	}
	return IntensityNone, false
}

// Color returns the display color, empty for IntensityNone.
func (i Intensity) Color() string {
	return intensityColors[i]
}

func (i Intensity) TextColor() string {
	switch i {
	case IntensityNone:
		return ""
	case IntensityRIR01:
		// gold background
		return "black"
	default:
		return "white"
	}
}

func IntensityOptions() []IntensityOption {
	options := make([]IntensityOption, 0, len(Intensities))
	for _, i := range Intensities {
		options = append(options, IntensityOption{
			Value:     i,
			Color:     i.Color(),
			TextColor: i.TextColor(),
		})
	}
	return options
}
