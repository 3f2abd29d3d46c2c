package tensor

// Accessor selects how a view's At and Set treat indices.
type Accessor int

const (
	// Direct maps indices to offsets without per-dimension checks.
	// Go's slice bounds still stop reads past the end of the buffer.
	Direct Accessor = iota

	// Checked verifies every index against its extent and panics with *IndexError.
	Checked
)

// String returns the accessor name.
func (a Accessor) String() string {
	switch a {
	case Direct:
		return "direct"
	case Checked:
		return "checked"
	default:
		return "unknown"
	}
}
