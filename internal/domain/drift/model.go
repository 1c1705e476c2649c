package drift

import (
	"math/rand/v2"

	"github.com/riskibarqy/fantasy-market/internal/domain/player"
)

// MarketValueStep is the fixed change applied to a market value on every drift.
const MarketValueStep int64 = 5000

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// Draw maps one uniform value onto {0,1,2,3} with weights {0.4,0.3,0.2,0.1}.
func Draw(src Source) int64 {
	r := src.Float64()
	switch {
	case r < 0.4:
		return 0
	case r < 0.7:
		return 1
	case r < 0.9:
		return 2
	default:
		return 3
	}
}

// Draws holds the named random values used to drift a single row.
type Draws struct {
	// Magnitude scales goal, assist and save increments.
	Magnitude int64
	// ValueDirection lowers the market value when 0 and raises it otherwise.
	ValueDirection int64
	// AssistFactor multiplies Magnitude for assists. Unused for goalkeepers.
	AssistFactor int64
}

// Roller produces Draws for each row.
//
// In coupled mode ValueDirection reuses Magnitude, so a player whose stats did not move
// loses value. In independent mode it is a fresh draw.
type Roller struct {
	src     Source
	coupled bool
}

func NewRoller(src Source, coupled bool) *Roller {
	if src == nil {
		src = NewSource(0)
	}
	return &Roller{src: src, coupled: coupled}
}

func (r *Roller) Coupled() bool {
	return r.coupled
}

// Roll consumes draws in row order: magnitude, then direction (independent mode only),
// then the assist factor for outfield players.
func (r *Roller) Roll(goalkeeper bool) Draws {
	d := Draws{Magnitude: Draw(r.src)}
	if r.coupled {
		d.ValueDirection = d.Magnitude
	} else {
		d.ValueDirection = Draw(r.src)
	}
	if !goalkeeper {
		d.AssistFactor = Draw(r.src)
	}
	return d
}

// Apply returns p with its market value and stats drifted by d.
// Market value is not clamped at zero.
func Apply(p player.Player, d Draws) player.Player {
	if d.ValueDirection == 0 {
		p.MarketValue -= MarketValueStep
	} else {
		p.MarketValue += MarketValueStep
	}

	if p.IsGoalkeeper() {
		p.Saves += 2 * d.Magnitude
		return p
	}

	p.Goals += d.Magnitude
	p.Assists += d.Magnitude * d.AssistFactor
	return p
}

// NewSource returns a math/rand source. A zero seed picks a random one.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
