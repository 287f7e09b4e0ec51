package models

// TeamStatisticalProfile holds a team's season-to-date box-score averages.
// Profiles are assembled by the stats provider (with league-average defaults
// for absent fields) before they reach the simulation engine; the engine
// treats them as read-only.
type TeamStatisticalProfile struct {
	TeamName string `json:"team_name" validate:"required"`

	// Offense
	PointsPerGame        float64 `json:"points_per_game" validate:"gte=0"`
	YardsPerGame         float64 `json:"yards_per_game" validate:"gte=0"`
	PassingYardsPerGame  float64 `json:"passing_yards_per_game" validate:"gte=0"`
	RushingYardsPerGame  float64 `json:"rushing_yards_per_game" validate:"gte=0"`
	CompletionPct        float64 `json:"completion_pct" validate:"gte=0,lte=100"`
	YardsPerAttempt      float64 `json:"yards_per_attempt" validate:"gte=0"`
	YardsPerCarry        float64 `json:"yards_per_carry" validate:"gte=0"`
	YardsPerPlay         float64 `json:"yards_per_play" validate:"gte=0"`
	PassingTDRate        float64 `json:"passing_td_rate" validate:"gte=0,lte=100"`
	InterceptionRate     float64 `json:"interception_rate" validate:"gte=0,lte=100"`
	RushingTDRate        float64 `json:"rushing_td_rate" validate:"gte=0,lte=100"`
	FumbleRate           float64 `json:"fumble_rate" validate:"gte=0,lte=100"`
	FirstDownsPerGame    float64 `json:"first_downs_per_game" validate:"gte=0"`
	ThirdDownPct         float64 `json:"third_down_pct" validate:"gte=0,lte=100"`
	RedZonePct           float64 `json:"red_zone_pct" validate:"gte=0,lte=100"`
	PenaltyYardsPerGame  float64 `json:"penalty_yards_per_game" validate:"gte=0"`
	TurnoversLostPerGame float64 `json:"turnovers_lost_per_game" validate:"gte=0"`
	DrivesPerGame        float64 `json:"drives_per_game" validate:"gte=0"`

	// Defense (allowed mirrors)
	PointsAllowedPerGame       float64 `json:"points_allowed_per_game" validate:"gte=0"`
	YardsAllowedPerGame        float64 `json:"yards_allowed_per_game" validate:"gte=0"`
	PassingYardsAllowedPerGame float64 `json:"passing_yards_allowed_per_game" validate:"gte=0"`
	RushingYardsAllowedPerGame float64 `json:"rushing_yards_allowed_per_game" validate:"gte=0"`
	CompletionPctAllowed       float64 `json:"completion_pct_allowed" validate:"gte=0,lte=100"`
	YardsPerAttemptAllowed     float64 `json:"yards_per_attempt_allowed" validate:"gte=0"`
	YardsPerCarryAllowed       float64 `json:"yards_per_carry_allowed" validate:"gte=0"`
	YardsPerPlayAllowed        float64 `json:"yards_per_play_allowed" validate:"gte=0"`
	ThirdDownPctAllowed        float64 `json:"third_down_pct_allowed" validate:"gte=0,lte=100"`
	RedZonePctAllowed          float64 `json:"red_zone_pct_allowed" validate:"gte=0,lte=100"`
	TurnoversForcedPerGame     float64 `json:"turnovers_forced_per_game" validate:"gte=0"`
}

// PassShare returns the fraction of total yardage gained through the air.
// Falls back to the league-average pass share when yardage is missing.
func (p *TeamStatisticalProfile) PassShare() float64 {
	total := p.PassingYardsPerGame + p.RushingYardsPerGame
	if total <= 0 {
		return 0.58
	}
	return p.PassingYardsPerGame / total
}

// TurnoverRate returns turnovers lost per offensive possession.
func (p *TeamStatisticalProfile) TurnoverRate() float64 {
	if p.DrivesPerGame <= 0 {
		return 0.11
	}
	return p.TurnoversLostPerGame / p.DrivesPerGame
}

// TakeawayRate returns turnovers forced per defensive possession faced.
func (p *TeamStatisticalProfile) TakeawayRate() float64 {
	if p.DrivesPerGame <= 0 {
		return 0.11
	}
	return p.TurnoversForcedPerGame / p.DrivesPerGame
}
