package domain

// Recognized theme keys.
const (
	ThemeKeyName            = "name"
	ThemeKeyDescription     = "description"
	ThemeKeyBackground      = "bg"
	ThemeKeyText            = "text"
	ThemeKeyGradient        = "gradient_color"
	ThemeKeyWater           = "water"
	ThemeKeyParks           = "parks"
	ThemeKeyCoastline       = "coastline"
	ThemeKeyRoadMotorway    = "road_motorway"
	ThemeKeyRoadPrimary     = "road_primary"
	ThemeKeyRoadSecondary   = "road_secondary"
	ThemeKeyRoadTertiary    = "road_tertiary"
	ThemeKeyRoadResidential = "road_residential"
	ThemeKeyRoadDefault     = "road_default"
)

// ThemeKeys lists every recognized key in file order.
var ThemeKeys = []string{
	ThemeKeyName,
	ThemeKeyDescription,
	ThemeKeyBackground,
	ThemeKeyText,
	ThemeKeyGradient,
	ThemeKeyWater,
	ThemeKeyParks,
	ThemeKeyCoastline,
	ThemeKeyRoadMotorway,
	ThemeKeyRoadPrimary,
	ThemeKeyRoadSecondary,
	ThemeKeyRoadTertiary,
	ThemeKeyRoadResidential,
	ThemeKeyRoadDefault,
}

// Theme is a named set of colors controlling the poster appearance.
// Colors are CSS hex strings ("#RRGGBB").
type Theme struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Background      string `json:"bg"`
	Text            string `json:"text"`
	Gradient        string `json:"gradient_color"`
	Water           string `json:"water"`
	Parks           string `json:"parks"`
	Coastline       string `json:"coastline"`
	RoadMotorway    string `json:"road_motorway"`
	RoadPrimary     string `json:"road_primary"`
	RoadSecondary   string `json:"road_secondary"`
	RoadTertiary    string `json:"road_tertiary"`
	RoadResidential string `json:"road_residential"`
	RoadDefault     string `json:"road_default"`
}

// ThemeInfo describes a theme file available in the theme store.
type ThemeInfo struct {
	ID          string `json:"id"`
	Display     string `json:"display"`
	Description string `json:"description"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Name:            "Default",
		Description:     "Default theme",
		Background:      "#FFFFFF",
		Text:            "#000000",
		Gradient:        "#FFFFFF",
		Water:           "#C0C0C0",
		Parks:           "#F0F0F0",
		Coastline:       "#000000",
		RoadMotorway:    "#0A0A0A",
		RoadPrimary:     "#1A1A1A",
		RoadSecondary:   "#2A2A2A",
		RoadTertiary:    "#3A3A3A",
		RoadResidential: "#4A4A4A",
		RoadDefault:     "#3A3A3A",
	}
}

// NewTheme builds a theme from the keys present in a theme file. Keys
// missing from values are taken from the default theme; present keys are
// kept verbatim, even when empty. Unknown keys are ignored.
func NewTheme(values map[string]string) Theme {
	t := DefaultTheme()
	for key, value := range values {
		if field := t.field(key); field != nil {
			*field = value
		}
	}
	return t
}

// Value returns the color (or text) stored under a theme key.
func (t Theme) Value(key string) string {
	if field := t.field(key); field != nil {
		return *field
	}
	return ""
}

// Values returns every recognized key with its value.
func (t Theme) Values() map[string]string {
	out := make(map[string]string, len(ThemeKeys))
	for _, key := range ThemeKeys {
		out[key] = t.Value(key)
	}
	return out
}

func (t *Theme) field(key string) *string {
	switch key {
	case ThemeKeyName:
		return &t.Name
	case ThemeKeyDescription:
		return &t.Description
	case ThemeKeyBackground:
		return &t.Background
	case ThemeKeyText:
		return &t.Text
	case ThemeKeyGradient:
		return &t.Gradient
	case ThemeKeyWater:
		return &t.Water
	case ThemeKeyParks:
		return &t.Parks
	case ThemeKeyCoastline:
		return &t.Coastline
	case ThemeKeyRoadMotorway:
		return &t.RoadMotorway
	case ThemeKeyRoadPrimary:
		return &t.RoadPrimary
	case ThemeKeyRoadSecondary:
		return &t.RoadSecondary
	case ThemeKeyRoadTertiary:
		return &t.RoadTertiary
	case ThemeKeyRoadResidential:
		return &t.RoadResidential
	case ThemeKeyRoadDefault:
		return &t.RoadDefault
	}
	return nil
}
