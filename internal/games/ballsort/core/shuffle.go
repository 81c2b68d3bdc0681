package core

import (
	"math/rand"
	"time"
)

// Initialize builds a fresh board for the level.
//
// Every color is repeated BallsPerColor times, the sequence is shuffled
// with a Fisher-Yates pass from the last index downward, and the result is
// cut into consecutive chunks of BallsPerColor, one chunk per tube in order.
// Tubes past the last chunk stay empty. The board may come out solved or
// unsolvable; no check is made.
func Initialize(l Level, rng *rand.Rand) Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	balls := make([]Color, 0, l.TotalBalls())
	for _, c := range l.Colors {
		for range l.BallsPerColor {
			balls = append(balls, c)
		}
	}

	for i := len(balls) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		balls[i], balls[j] = balls[j], balls[i]
	}

	board := NewEmptyBoard(l.TubeCount)
	for i, c := range balls {
		tube := i / l.BallsPerColor
		board[tube] = append(board[tube], c)
	}
	return board
}
