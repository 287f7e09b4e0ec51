package engine

import "math"

// Favorite identifies which side the moneyline market favors. It is used
// to orient margin sign so that "cover" always means the favorite beat
// the line, whether the favorite is home or away.
type Favorite struct {
	IsHome        bool
	Side          string // "home" or "away"
	ImpliedProb   float64
}

// ResolveFavorite maps two American moneyline prices to the favored side.
// The side with the more negative (or smaller positive) price is the
// favorite; an exactly even market defaults to home.
func ResolveFavorite(homeMoneyline, awayMoneyline int) Favorite {
	homeImplied := AmericanToImplied(homeMoneyline)
	awayImplied := AmericanToImplied(awayMoneyline)

	if awayImplied > homeImplied {
		return Favorite{IsHome: false, Side: "away", ImpliedProb: awayImplied}
	}
	return Favorite{IsHome: true, Side: "home", ImpliedProb: homeImplied}
}

// AmericanToImplied converts an American odds price to implied probability.
// -150 yields 0.6, +150 yields 0.4. A zero price yields 0.
func AmericanToImplied(odds int) float64 {
	if odds == 0 {
		return 0
	}
	if odds > 0 {
		return 100.0 / (float64(odds) + 100.0)
	}
	return math.Abs(float64(odds)) / (math.Abs(float64(odds)) + 100.0)
}

// RemoveVig rescales a two-way market's implied probabilities so they
// sum to 1 (multiplicative vig removal).
func RemoveVig(impliedA, impliedB float64) (float64, float64) {
	total := impliedA + impliedB
	if impliedA <= 0 || impliedB <= 0 || total <= 0 {
		return 0, 0
	}
	return impliedA / total, impliedB / total
}
