package cpu

// Flags is the comparison state. At most one bit is ever set.
type Flags uint8

//go:generate go tool stringer -linecomment -type=Flags
const (
	FLAG_NONE         = Flags(0b000) // -
	FLAG_EQUAL        = Flags(0b001) // eq
	FLAG_GREATER_THAN = Flags(0b010) // gt
	FLAG_LESS_THAN    = Flags(0b100) // lt
)

// Compare returns the flags for the unsigned comparison of a with b.
func Compare(a, b uint8) Flags {
	switch {
	case a < b:
		return FLAG_LESS_THAN
	case a > b:
		return FLAG_GREATER_THAN
	default:
		return FLAG_EQUAL
	}
}

// Equal is true if the last comparison was equal.
func (fl Flags) Equal() bool {
	return fl&FLAG_EQUAL != 0
}

// Greater is true if the last comparison was greater-than.
func (fl Flags) Greater() bool {
	return fl&FLAG_GREATER_THAN != 0
}

// Less is true if the last comparison was less-than.
func (fl Flags) Less() bool {
	return fl&FLAG_LESS_THAN != 0
}
