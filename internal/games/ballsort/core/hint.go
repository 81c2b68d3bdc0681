package core

// GetHint suggests a legal move for the board.
//
// The first pass scans pairs (from, to) in ascending order and returns the
// first move that stacks onto a ball of the same color, or that moves into
// an empty tube out of a mixed tube. Moving an already sorted stack into an
// empty tube is skipped there. If nothing qualifies, the second pass returns
// the first legal move of any kind. Returns false when the board has no
// legal move at all.
func GetHint(b Board, capacity int) (Move, bool) {
	for i, from := range b {
		for j, to := range b {
			if i == j || !IsValidMove(from, to, capacity) {
				continue
			}
			if to.IsEmpty() {
				if !from.IsMonochrome() {
					return Move{From: i, To: j}, true
				}
				continue
			}
			// IsValidMove already guarantees matching tops here.
			return Move{From: i, To: j}, true
		}
	}

	for i, from := range b {
		for j, to := range b {
			if i != j && IsValidMove(from, to, capacity) {
				return Move{From: i, To: j}, true
			}
		}
	}

	return Move{}, false
}

// HasMoves reports whether any legal move exists.
func HasMoves(b Board, capacity int) bool {
	_, ok := GetHint(b, capacity)
	return ok
}
