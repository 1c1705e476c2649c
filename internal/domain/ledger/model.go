package ledger

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-market/internal/domain/player"
)

// UnknownBudget is reported in place of a budget that could not be read.
const UnknownBudget int64 = -1

var ErrInsufficientBudget = errors.New("insufficient budget")

// Outcome is the result of a purchase attempt.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomePurchased
	OutcomeInsufficientBudget
)

func (o Outcome) String() string {
	switch o {
	case OutcomePurchased:
		return "purchased"
	case OutcomeInsufficientBudget:
		return "insufficient_budget"
	default:
		return "failed"
	}
}

// Document is the persisted team: remaining budget plus owned players in purchase order.
type Document struct {
	Budget int64
	Team   []player.Summary
}

func (d Document) Owns(playerID int64) bool {
	for _, s := range d.Team {
		if s.ID == playerID {
			return true
		}
	}
	return false
}

// Purchase debits the player's current market value and appends its summary.
// A budget that would end below zero is rejected without touching d. Duplicate ids are
// not rejected here.
func (d *Document) Purchase(p player.Player) error {
	remaining := d.Budget - p.MarketValue
	if remaining < 0 {
		return fmt.Errorf("%w: budget=%d price=%d", ErrInsufficientBudget, d.Budget, p.MarketValue)
	}

	d.Budget = remaining
	d.Team = append(d.Team, p.Summary())
	return nil
}

// Release drops every entry for p and credits its current market value.
// It returns how many entries were removed.
func (d *Document) Release(p player.Player) int {
	kept := d.Team[:0]
	removed := 0
	for _, s := range d.Team {
		if s.ID == p.ID {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	d.Team = kept
	d.Budget += p.MarketValue
	return removed
}

func (d Document) Clone() Document {
	out := d
	out.Team = append([]player.Summary(nil), d.Team...)
	return out
}
