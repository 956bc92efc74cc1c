package agenda

// Two independent department color tables ship with the client: one for
// event cards and one for the small department tags. They carry different
// default fallbacks and must never be merged into a single map. Lookups
// are exact: case- and accent-sensitive ("Economía" and "Economia" are
// different keys), no fuzzy matching.

// Card color fallbacks.
const (
	cardDefaultLight = "#22033dff"
	cardDefaultDark  = "#145172ff"
)

var cardColors = map[string]string{
	"Sistemas computacionales": "#3B82F6",
	"Industrial":               "#F59E0B",
	"Mecatrónica":              "#10B981",
	"Gestión empresarial":      "#8B5CF6",
	"Arquitectura":             "#EF4444",
	"Contabilidad":             "#14B8A6",
	"Economía":                 "#F97316",
	"Gastronomía":              "#EC4899",
	"Actividades culturales":   "#6366F1",
	"Deportes":                 "#84CC16",
}

// CardColor resolves the card background color for a department, falling
// back to the mode-specific default on a miss.
func CardColor(department string, darkMode bool) string {
	if color, ok := cardColors[department]; ok {
		return color
	}
	if darkMode {
		return cardDefaultDark
	}
	return cardDefaultLight
}

// Tag color fallbacks.
const (
	tagDefaultLight = "#6B7280"
	tagDefaultDark  = "#999"
)

type tagVariant struct {
	light string
	dark  string
}

var tagColors = map[string]tagVariant{
	"Sistemas computacionales": {light: "#1D4ED8", dark: "#60A5FA"},
	"Industrial":               {light: "#B45309", dark: "#FBBF24"},
	"Mecatrónica":              {light: "#047857", dark: "#34D399"},
	"Gestión empresarial":      {light: "#6D28D9", dark: "#A78BFA"},
	"Arquitectura":             {light: "#B91C1C", dark: "#F87171"},
	"Contabilidad":             {light: "#0F766E", dark: "#2DD4BF"},
	"Economía":                 {light: "#C2410C", dark: "#FB923C"},
	"Gastronomía":              {light: "#BE185D", dark: "#F472B6"},
	"Actividades culturales":   {light: "#4338CA", dark: "#818CF8"},
	"Deportes":                 {light: "#4D7C0F", dark: "#A3E635"},
}

// TagColor resolves the department tag color for the requested mode,
// falling back to the tag table's own defaults on a miss.
func TagColor(department string, darkMode bool) string {
	if variant, ok := tagColors[department]; ok {
		if darkMode {
			return variant.dark
		}
		return variant.light
	}
	if darkMode {
		return tagDefaultDark
	}
	return tagDefaultLight
}
