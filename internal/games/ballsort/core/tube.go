package core

// Tube is a stack of balls ordered bottom to top.
// The last element is the top and the only ball that can move.
type Tube []Color

// Len returns the number of balls in the tube.
func (t Tube) Len() int {
	return len(t)
}

// IsEmpty returns true if the tube holds no balls.
func (t Tube) IsEmpty() bool {
	return len(t) == 0
}

// IsFull reports whether the tube has reached capacity.
func (t Tube) IsFull(capacity int) bool {
	return len(t) >= capacity
}

// Top returns the topmost ball, or false for an empty tube.
func (t Tube) Top() (Color, bool) {
	if len(t) == 0 {
		return "", false
	}
	return t[len(t)-1], true
}

// IsMonochrome returns true if every ball has the same color.
// An empty tube is monochrome.
func (t Tube) IsMonochrome() bool {
	for _, c := range t {
		if c != t[0] {
			return false
		}
	}
	return true
}

// IsComplete reports whether the tube is full and holds a single color.
func (t Tube) IsComplete(capacity int) bool {
	return len(t) == capacity && t.IsMonochrome()
}

// Clone creates a copy of the tube.
func (t Tube) Clone() Tube {
	if t == nil {
		return Tube{}
	}
	out := make(Tube, len(t))
	copy(out, t)
	return out
}

// Equal reports whether two tubes hold the same balls in the same order.
func (t Tube) Equal(o Tube) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}
	return true
}
