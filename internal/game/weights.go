package game

// Weights are the scoring coefficients for one game phase.
type Weights struct {
	Territory int // per newly claimed cell
	Liberties int // per empty neighbor of a claimed cell
	Pressure  int // per opponent neighbor of a claimed cell
	Heat      int // per unit of distance to the opponent; negative pulls toward the front
}

// HeuristicParams bundles every tunable of the move scorer. The phase
// cutoffs split the game by the fraction of the board already claimed.
type HeuristicParams struct {
	Early Weights
	Mid   Weights
	Late  Weights

	EarlyCutoff float64
	LateCutoff  float64

	// AggressionBonus is extra pressure weight applied while behind
	// on territory.
	AggressionBonus int

	// ConnectivityRadius caps the Manhattan distance considered when
	// rewarding anchors near existing territory; ConnectivityScale is
	// the per-step value of that reward.
	ConnectivityRadius int
	ConnectivityScale  int
}

// DefaultHeuristicParams returns the tuned coefficients. Early game
// favors expansion and open space, late game favors grabbing cells and
// choking the opponent.
func DefaultHeuristicParams() HeuristicParams {
	return HeuristicParams{
		Early:              Weights{Territory: 150, Liberties: 40, Pressure: 15, Heat: -5},
		Mid:                Weights{Territory: 120, Liberties: 20, Pressure: 35, Heat: -15},
		Late:               Weights{Territory: 200, Liberties: 10, Pressure: 50, Heat: -25},
		EarlyCutoff:        0.35,
		LateCutoff:         0.70,
		AggressionBonus:    20,
		ConnectivityRadius: 10,
		ConnectivityScale:  10,
	}
}

// phaseWeights picks the weight set for the given board fill fraction.
func (p HeuristicParams) phaseWeights(phase float64) Weights {
	switch {
	case phase < p.EarlyCutoff:
		return p.Early
	case phase < p.LateCutoff:
		return p.Mid
	default:
		return p.Late
	}
}
