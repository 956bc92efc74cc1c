// Package agenda holds the pure event-relevance and display-normalization
// core: temporal bucketing, favorite/attendance reconciliation, relative
// timestamps and search. Every function is synchronous, side-effect free
// and safe to call concurrently; malformed input degrades to a named
// default instead of failing, so a single bad record never breaks a list
// render.
package agenda

// Display defaults for missing event fields. The literal Spanish text is
// part of the client contract; call sites must use these constants
// instead of re-literalizing the strings.
const (
	DefaultTitle      = "Evento sin título"
	DefaultDepartment = "Sin departamento"
	DefaultLocation   = "Ubicación no especificada"
	DefaultImageURL   = "https://via.placeholder.com/150"
	DefaultDate       = "Fecha no disponible"
)
