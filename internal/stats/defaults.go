package stats

import (
	"context"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// League-average NFL box-score values. These fill absent fields before a
// profile reaches the engine and serve as the full fallback profile when
// the provider is unreachable. The engine's strength scale is normalized
// against the same numbers, so a defaulted team scores exactly average.
const (
	DefaultPointsPerGame    = 22.5
	DefaultYardsPerGame     = 335.0
	DefaultPassingYards     = 215.0
	DefaultRushingYards     = 120.0
	DefaultCompletionPct    = 63.5
	DefaultYardsPerAttempt  = 7.1
	DefaultYardsPerCarry    = 4.3
	DefaultYardsPerPlay     = 5.4
	DefaultPassingTDRate    = 4.5
	DefaultInterceptionRate = 2.3
	DefaultRushingTDRate    = 2.5
	DefaultFumbleRate       = 1.5
	DefaultFirstDowns       = 20.0
	DefaultThirdDownPct     = 40.0
	DefaultRedZonePct       = 55.0
	DefaultPenaltyYards     = 45.0
	DefaultTurnovers        = 1.3
	DefaultDrivesPerGame    = 11.5
)

// LeagueAverageProfile returns a fully-populated profile carrying every
// league-average default.
func LeagueAverageProfile(team string) *models.TeamStatisticalProfile {
	return &models.TeamStatisticalProfile{
		TeamName: team,

		PointsPerGame:        DefaultPointsPerGame,
		YardsPerGame:         DefaultYardsPerGame,
		PassingYardsPerGame:  DefaultPassingYards,
		RushingYardsPerGame:  DefaultRushingYards,
		CompletionPct:        DefaultCompletionPct,
		YardsPerAttempt:      DefaultYardsPerAttempt,
		YardsPerCarry:        DefaultYardsPerCarry,
		YardsPerPlay:         DefaultYardsPerPlay,
		PassingTDRate:        DefaultPassingTDRate,
		InterceptionRate:     DefaultInterceptionRate,
		RushingTDRate:        DefaultRushingTDRate,
		FumbleRate:           DefaultFumbleRate,
		FirstDownsPerGame:    DefaultFirstDowns,
		ThirdDownPct:         DefaultThirdDownPct,
		RedZonePct:           DefaultRedZonePct,
		PenaltyYardsPerGame:  DefaultPenaltyYards,
		TurnoversLostPerGame: DefaultTurnovers,
		DrivesPerGame:        DefaultDrivesPerGame,

		PointsAllowedPerGame:       DefaultPointsPerGame,
		YardsAllowedPerGame:        DefaultYardsPerGame,
		PassingYardsAllowedPerGame: DefaultPassingYards,
		RushingYardsAllowedPerGame: DefaultRushingYards,
		CompletionPctAllowed:       DefaultCompletionPct,
		YardsPerAttemptAllowed:     DefaultYardsPerAttempt,
		YardsPerCarryAllowed:       DefaultYardsPerCarry,
		YardsPerPlayAllowed:        DefaultYardsPerPlay,
		ThirdDownPctAllowed:        DefaultThirdDownPct,
		RedZonePctAllowed:          DefaultRedZonePct,
		TurnoversForcedPerGame:     DefaultTurnovers,
	}
}

// LeagueAverageProvider is a ProfileProvider that always serves league
// averages. Used for offline runs and as the last-resort fallback.
type LeagueAverageProvider struct{}

// FetchProfile returns a league-average profile for the team.
func (LeagueAverageProvider) FetchProfile(ctx context.Context, team string, season int) (*models.TeamStatisticalProfile, error) {
	return LeagueAverageProfile(team), nil
}

// FillAbsent replaces zero-valued fields on a fetched profile with the
// documented league-average constants. Temperature-like signed fields are
// not part of the profile, so zero is a reliable "absent" marker here.
func FillAbsent(p *models.TeamStatisticalProfile) {
	defaults := LeagueAverageProfile(p.TeamName)
	fill := func(dst *float64, def float64) {
		if *dst == 0 {
			*dst = def
		}
	}
	fill(&p.PointsPerGame, defaults.PointsPerGame)
	fill(&p.YardsPerGame, defaults.YardsPerGame)
	fill(&p.PassingYardsPerGame, defaults.PassingYardsPerGame)
	fill(&p.RushingYardsPerGame, defaults.RushingYardsPerGame)
	fill(&p.CompletionPct, defaults.CompletionPct)
	fill(&p.YardsPerAttempt, defaults.YardsPerAttempt)
	fill(&p.YardsPerCarry, defaults.YardsPerCarry)
	fill(&p.YardsPerPlay, defaults.YardsPerPlay)
	fill(&p.PassingTDRate, defaults.PassingTDRate)
	fill(&p.InterceptionRate, defaults.InterceptionRate)
	fill(&p.RushingTDRate, defaults.RushingTDRate)
	fill(&p.FumbleRate, defaults.FumbleRate)
	fill(&p.FirstDownsPerGame, defaults.FirstDownsPerGame)
	fill(&p.ThirdDownPct, defaults.ThirdDownPct)
	fill(&p.RedZonePct, defaults.RedZonePct)
	fill(&p.PenaltyYardsPerGame, defaults.PenaltyYardsPerGame)
	fill(&p.TurnoversLostPerGame, defaults.TurnoversLostPerGame)
	fill(&p.DrivesPerGame, defaults.DrivesPerGame)
	fill(&p.PointsAllowedPerGame, defaults.PointsAllowedPerGame)
	fill(&p.YardsAllowedPerGame, defaults.YardsAllowedPerGame)
	fill(&p.PassingYardsAllowedPerGame, defaults.PassingYardsAllowedPerGame)
	fill(&p.RushingYardsAllowedPerGame, defaults.RushingYardsAllowedPerGame)
	fill(&p.CompletionPctAllowed, defaults.CompletionPctAllowed)
	fill(&p.YardsPerAttemptAllowed, defaults.YardsPerAttemptAllowed)
	fill(&p.YardsPerCarryAllowed, defaults.YardsPerCarryAllowed)
	fill(&p.YardsPerPlayAllowed, defaults.YardsPerPlayAllowed)
	fill(&p.ThirdDownPctAllowed, defaults.ThirdDownPctAllowed)
	fill(&p.RedZonePctAllowed, defaults.RedZonePctAllowed)
	fill(&p.TurnoversForcedPerGame, defaults.TurnoversForcedPerGame)
}
