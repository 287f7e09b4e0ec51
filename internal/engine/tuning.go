// Package engine implements the Monte Carlo game simulation and market
// calibration core. Two opposing statistical profiles, a posted market
// line and optional weather conditions go in; win, spread-cover and
// over/under probabilities come out.
package engine

// Tuning consolidates every model constant in one table. Production runs
// use DefaultTuning; tests substitute alternates to pin behavior.
type Tuning struct {
	// Strength scoring
	PassWeight        float64
	RushWeight        float64
	EfficiencyWeight  float64
	TurnoverWeight    float64
	RawScoreFloor     float64 // raw strength mapping to 0
	RawScoreCeiling   float64 // raw strength mapping to 100
	DivisionFallback  float64 // safeDiv result when a denominator is zero

	// Weather
	WindLadder        []WeatherStep
	TempLadder        []WeatherStep
	HeavyPrecipLevel  float64
	HeavyPrecipPass   float64
	HeavyPrecipRush   float64
	ModeratePrecip    float64
	ModeratePrecipPass float64
	SnowPass          float64
	SnowRush          float64
	DefenseBenefit    float64 // fraction of offensive suppression credited to the defense
	DefaultPassShare  float64

	// Possession
	ScoreStrengthBlend float64 // weight on strength ratio vs efficiency ratio
	FieldGoalBand      float64
	TDThresholdBase    float64
	TDRedZoneWeight    float64
	TDRateWeight       float64
	TDThresholdMin     float64
	TDThresholdMax     float64
	MinTurnoverProb    float64
	MaxTurnoverProb    float64

	// Game
	HomePaceWeight     float64
	PossessionSpread   int // uniform variance drawn from [-spread, +spread]
	MinPossessions     int
	MaxPossessions     int
	StrengthJitter     float64 // per-game multiplicative jitter band
	JitterFloor        float64
	JitterCeiling      float64
	HomeBoost          float64
	HomeBoostJitter    float64
	ChaosProbability   float64
	ChaosScores        []int
}

// WeatherStep is one rung of an ordered threshold ladder. Steps are
// evaluated from the most severe threshold down and the first crossed
// rung applies.
type WeatherStep struct {
	Threshold float64
	PassMod   float64
	RushMod   float64
}

// DefaultTuning returns the production model constants.
func DefaultTuning() Tuning {
	return Tuning{
		PassWeight:       0.40,
		RushWeight:       0.30,
		EfficiencyWeight: 0.20,
		TurnoverWeight:   0.10,
		RawScoreFloor:    15,
		RawScoreCeiling:  85,
		DivisionFallback: 1.0,

		// Wind bites passing hardest; rungs ordered most severe first.
		WindLadder: []WeatherStep{
			{Threshold: 25, PassMod: 0.78, RushMod: 1.00},
			{Threshold: 20, PassMod: 0.85, RushMod: 1.00},
			{Threshold: 15, PassMod: 0.92, RushMod: 1.00},
			{Threshold: 10, PassMod: 0.97, RushMod: 1.00},
		},
		// Cold thresholds in degrees Fahrenheit, coldest first.
		TempLadder: []WeatherStep{
			{Threshold: 10, PassMod: 0.88, RushMod: 0.97},
			{Threshold: 20, PassMod: 0.92, RushMod: 0.99},
			{Threshold: 32, PassMod: 0.96, RushMod: 1.00},
		},
		HeavyPrecipLevel:   70,
		HeavyPrecipPass:    0.90,
		HeavyPrecipRush:    0.95,
		ModeratePrecip:     40,
		ModeratePrecipPass: 0.96,
		SnowPass:           0.85,
		SnowRush:           0.90,
		DefenseBenefit:     0.5,
		DefaultPassShare:   0.58,

		ScoreStrengthBlend: 0.70,
		FieldGoalBand:      0.35,
		TDThresholdBase:    0.30,
		TDRedZoneWeight:    0.25,
		TDRateWeight:       0.80,
		TDThresholdMin:     0.20,
		TDThresholdMax:     0.65,
		MinTurnoverProb:    0.02,
		MaxTurnoverProb:    0.25,

		HomePaceWeight:   0.55,
		PossessionSpread: 2,
		MinPossessions:   8,
		MaxPossessions:   15,
		StrengthJitter:   0.15,
		JitterFloor:      10,
		JitterCeiling:    90,
		HomeBoost:        1.03,
		HomeBoostJitter:  0.03,
		ChaosProbability: 0.15,
		ChaosScores:      []int{2, 7},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// safeDiv divides num by den, returning fallback when the denominator is
// zero. Zero denominators are normal for sparse early-season stats and
// are not an error path.
func safeDiv(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	return num / den
}
