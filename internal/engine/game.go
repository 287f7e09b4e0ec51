package engine

import (
	"math"
	"math/rand"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// GameSimulator runs one full randomized replay of a matchup. It carries
// no state between calls; every replay draws fresh variance.
type GameSimulator struct {
	tuning      Tuning
	strengths   *StrengthCalculator
	weather     *WeatherAdjuster
	possessions *PossessionSimulator
}

// NewGameSimulator wires the leaf components under one tuning table.
func NewGameSimulator(t Tuning) *GameSimulator {
	return &GameSimulator{
		tuning:      t,
		strengths:   NewStrengthCalculator(t),
		weather:     NewWeatherAdjuster(t),
		possessions: NewPossessionSimulator(t),
	}
}

// SimulateGame replays one game and returns rounded non-negative final
// scores for home and away. The per-game strength jitter is the dominant
// source of upset potential and is drawn fresh on every call.
func (g *GameSimulator) SimulateGame(rng *rand.Rand, home, away *models.TeamStatisticalProfile, cond *models.WeatherConditions) (int, int) {
	t := g.tuning

	possessions := g.possessionCount(rng, home, away)

	homeOff := g.jitter(rng, g.strengths.OffensiveStrength(home))
	homeDef := g.jitter(rng, g.strengths.DefensiveStrength(home))
	awayOff := g.jitter(rng, g.strengths.OffensiveStrength(away))
	awayDef := g.jitter(rng, g.strengths.DefensiveStrength(away))

	homeAdj := g.weather.Adjust(cond, homeOff, awayDef, home.PassingYardsPerGame, home.RushingYardsPerGame)
	awayAdj := g.weather.Adjust(cond, awayOff, homeDef, away.PassingYardsPerGame, away.RushingYardsPerGame)

	boost := t.HomeBoost * (1 + (rng.Float64()*2-1)*t.HomeBoostJitter)

	var homePoints, awayPoints float64
	for i := 0; i < possessions; i++ {
		homePoints += boost * float64(g.possessions.SimulatePossession(rng, home, away, homeOff, awayDef, &homeAdj))
		awayPoints += float64(g.possessions.SimulatePossession(rng, away, home, awayOff, homeDef, &awayAdj))
	}

	// Rare defensive/special-teams score the possession model cannot
	// produce on its own.
	if rng.Float64() < t.ChaosProbability {
		points := float64(t.ChaosScores[rng.Intn(len(t.ChaosScores))])
		if rng.Intn(2) == 0 {
			homePoints += points
		} else {
			awayPoints += points
		}
	}

	homeScore := int(math.Round(homePoints))
	awayScore := int(math.Round(awayPoints))
	if homeScore < 0 {
		homeScore = 0
	}
	if awayScore < 0 {
		awayScore = 0
	}
	return homeScore, awayScore
}

// possessionCount blends the two teams' pace into a per-side possession
// count with a small uniform variance, clamped to the plausible band.
func (g *GameSimulator) possessionCount(rng *rand.Rand, home, away *models.TeamStatisticalProfile) int {
	t := g.tuning
	homePace := home.DrivesPerGame
	if homePace <= 0 {
		homePace = refDrivesPerGame
	}
	awayPace := away.DrivesPerGame
	if awayPace <= 0 {
		awayPace = refDrivesPerGame
	}

	base := t.HomePaceWeight*homePace + (1-t.HomePaceWeight)*awayPace
	count := int(math.Round(base)) + rng.Intn(2*t.PossessionSpread+1) - t.PossessionSpread
	if count < t.MinPossessions {
		count = t.MinPossessions
	}
	if count > t.MaxPossessions {
		count = t.MaxPossessions
	}
	return count
}

// jitter applies the per-game form variance to a base strength score,
// clamped back into the modeled band.
func (g *GameSimulator) jitter(rng *rand.Rand, strength float64) float64 {
	t := g.tuning
	factor := 1 + (rng.Float64()*2-1)*t.StrengthJitter
	return clamp(strength*factor, t.JitterFloor, t.JitterCeiling)
}
