package models

// SimulationResult is the aggregate output of a Monte Carlo run for one
// game. All probabilities are percentages in [0,100]. Win, loss and tie
// probabilities for the two sides sum to 100, as do the cover and the
// over/under pairs. Scores are the raw (uncalibrated) simulated means,
// rounded.
type SimulationResult struct {
	HomeWinProbability       float64 `json:"home_win_probability"`
	AwayWinProbability       float64 `json:"away_win_probability"`
	TieProbability           float64 `json:"tie_probability"`
	FavoriteCoverProbability float64 `json:"favorite_cover_probability"`
	UnderdogCoverProbability float64 `json:"underdog_cover_probability"`
	OverProbability          float64 `json:"over_probability"`
	UnderProbability         float64 `json:"under_probability"`
	PredictedHomeScore       int     `json:"predicted_home_score"`
	PredictedAwayScore       int     `json:"predicted_away_score"`
	Iterations               int     `json:"iterations"`

	// Diagnostics: uncalibrated simulated means, useful for judging how
	// far the model sat from the market before calibration.
	SimulatedMeanTotal  float64 `json:"simulated_mean_total"`
	SimulatedMeanMargin float64 `json:"simulated_mean_margin"`
	FavoriteIsHome      bool    `json:"favorite_is_home"`
}

// ImpliedEdgeSide returns "home" or "away" for whichever side the raw win
// probabilities favor.
func (r *SimulationResult) ImpliedEdgeSide() string {
	if r.AwayWinProbability > r.HomeWinProbability {
		return "away"
	}
	return "home"
}
