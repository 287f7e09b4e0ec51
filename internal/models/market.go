package models

import "math"

// MarketLine carries the posted betting market for a game: the spread
// (negative numbers favor the side they are attached to, home by
// convention), the total, and each side's American moneyline price.
type MarketLine struct {
	Spread        float64 `json:"spread"`
	Total         float64 `json:"total" validate:"gt=0"`
	HomeMoneyline int     `json:"home_moneyline"`
	AwayMoneyline int     `json:"away_moneyline"`
}

// AbsSpread returns the magnitude of the handicap.
func (m *MarketLine) AbsSpread() float64 {
	return math.Abs(m.Spread)
}
