package levels

import "github.com/vovakirdan/ballsort/internal/games/ballsort/core"

func init() {
	MustRegister(core.Level{
		Key:           "easy",
		Name:          "Easy",
		TubeCount:     6,
		Colors:        []core.Color{core.Red, core.Blue, core.Green, core.Yellow},
		BallsPerColor: 3,
	})
	MustRegister(core.Level{
		Key:           "medium",
		Name:          "Medium",
		TubeCount:     8,
		Colors:        []core.Color{core.Red, core.Blue, core.Green, core.Yellow, core.Purple},
		BallsPerColor: 4,
	})
	MustRegister(core.Level{
		Key:       "hard",
		Name:      "Hard",
		TubeCount: 10,
		Colors: []core.Color{
			core.Red, core.Blue, core.Green, core.Yellow,
			core.Purple, core.Orange, core.Teal,
		},
		BallsPerColor: 4,
	})
	MustRegister(core.Level{
		Key:       "expert",
		Name:      "Expert",
		TubeCount: 12,
		Colors: []core.Color{
			core.Red, core.Blue, core.Green, core.Yellow,
			core.Purple, core.Orange, core.Teal, core.Pink, core.Brown,
		},
		BallsPerColor: 4,
	})
}
