package coerce

// Strictness selects which input shapes a coercer accepts. It is supplied per
// top-level validation call and propagated unchanged into every recursive
// coercion; the engine never stores it.
type Strictness int

const (
	// Lax widens acceptance to convertible textual and alternate forms.
	Lax Strictness = iota
	// Strict narrows accepted shapes to those matching the native type.
	Strict
)

// String returns "lax" or "strict".
func (s Strictness) String() string {
	if s == Strict {
		return "strict"
	}
	return "lax"
}
