// Package confetti generates the decorative pieces of the thank-you page.
package confetti

import (
	"fmt"
	"math/rand/v2"
)

// Count is how many pieces one page render gets
const Count = 40

// Palette holds the colors a piece can take
var Palette = []string{"#ffecb3", "#ffd54f", "#ff8a65", "#81d4fa", "#b39ddb", "#a5d6a7"}

// Piece is one falling confetti dot
type Piece struct {
	Color       string
	LeftPercent float64 // 0-100
	DelaySec    float64 // 0-2
	DurationSec float64 // 2-4
	Scale       float64 // 0.7-1.3
}

// Style renders the piece as an inline CSS declaration list
func (p Piece) Style() string {
	return fmt.Sprintf("background: %s; left: %.2f%%; animation-delay: %.2fs; animation-duration: %.2fs; transform: scale(%.2f);",
		p.Color, p.LeftPercent, p.DelaySec, p.DurationSec, p.Scale)
}

// Generate returns a fresh set of n pieces. A nil rng uses the global source.
func Generate(rng *rand.Rand, n int) []Piece {
	float := rand.Float64
	intN := rand.IntN
	if rng != nil {
		float = rng.Float64
		intN = rng.IntN
	}

	pieces := make([]Piece, n)
	for i := range pieces {
		pieces[i] = Piece{
			Color:       Palette[intN(len(Palette))],
			LeftPercent: float() * 100,
			DelaySec:    float() * 2,
			DurationSec: 2 + float()*2,
			Scale:       0.7 + float()*0.6,
		}
	}
	return pieces
}
