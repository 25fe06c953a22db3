package progression

// StreakBand maps a minimum current-streak length to the value granted at
// that length. Bands are evaluated in descending MinStreak order and the
// first matching band wins, making lookups pure step functions.
type StreakBand struct {
	MinStreak  int
	Multiplier float64
}

// RerollBand maps a minimum current-streak length to the number of bonus
// rerolls allowed per day.
type RerollBand struct {
	MinStreak int
	Allowance int
}

// BadgeRule grants a stable label when the best or current streak reaches
// a threshold. Rules are additive only; a badge is never removed.
type BadgeRule struct {
	Label      string
	MinBest    int
	MinCurrent int
}

// RankBand maps a minimum officer level to a rank name. Bands are
// evaluated in descending MinLevel order.
type RankBand struct {
	MinLevel int
	Name     string
}

// Params defines all configurable parameters for the progression engines.
type Params struct {
	// Streak engine
	MultiplierBands []StreakBand
	RerollBands     []RerollBand
	BadgeRules      []BadgeRule

	// MaxStreakScan bounds the backward day walk when computing the
	// current streak, guaranteeing termination on degenerate logs.
	MaxStreakScan int

	// Mission selector
	DefaultMissionCount  int
	SelectionWeightFloor float64

	// XP / unlock engine
	// MaxUnlockPasses bounds the fixpoint iteration over the skill tree,
	// which must cover the deepest prerequisite chain.
	MaxUnlockPasses int

	// Infinite leveling
	LevelGrowthFactor    float64
	MaxNodeLevel         int
	FallbackBaseRequired int

	// Officer engine
	OfficerLevelSize int
	RankLadder       []RankBand

	// Reflection drift engine
	TrendMinEntries int
	TrendDelta      float64
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	MaxStreakScan int

	DefaultMissionCount  int
	SelectionWeightFloor float64

	MaxUnlockPasses int

	LevelGrowthFactor    float64
	MaxNodeLevel         int
	FallbackBaseRequired int

	OfficerLevelSize int

	TrendMinEntries int
	TrendDelta      float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		// Streak multiplier step function: 0-2 days x1.0, 3-6 x1.1,
		// 7-13 x1.2, 14-29 x1.3, 30+ x1.5.
		MultiplierBands: []StreakBand{
			{MinStreak: 30, Multiplier: 1.5},
			{MinStreak: 14, Multiplier: 1.3},
			{MinStreak: 7, Multiplier: 1.2},
			{MinStreak: 3, Multiplier: 1.1},
			{MinStreak: 0, Multiplier: 1.0},
		},

		// Bonus rerolls: none below a week, one at 7+, two at 14+.
		RerollBands: []RerollBand{
			{MinStreak: 14, Allowance: 2},
			{MinStreak: 7, Allowance: 1},
			{MinStreak: 0, Allowance: 0},
		},

		BadgeRules: []BadgeRule{
			{Label: "bronze_streak", MinBest: 3},
			{Label: "silver_streak", MinBest: 7},
			{Label: "gold_streak", MinBest: 30},
			{Label: "hot_streak", MinCurrent: 7},
		},

		// Ten years of consecutive days is far beyond any real log.
		MaxStreakScan: 3650,

		DefaultMissionCount:  3,
		SelectionWeightFloor: 25,

		MaxUnlockPasses: 10,

		LevelGrowthFactor:    1.2,
		MaxNodeLevel:         50,
		FallbackBaseRequired: 100,

		OfficerLevelSize: 100,
		RankLadder: []RankBand{
			{MinLevel: 20, Name: "Commander"},
			{MinLevel: 15, Name: "Major"},
			{MinLevel: 10, Name: "Captain"},
			{MinLevel: 7, Name: "Lieutenant"},
			{MinLevel: 4, Name: "Ensign"},
			{MinLevel: 0, Name: "Cadet"},
		},

		TrendMinEntries: 4,
		TrendDelta:      5,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MaxStreakScan > 0 {
		params.MaxStreakScan = config.MaxStreakScan
	}

	if config.DefaultMissionCount > 0 {
		params.DefaultMissionCount = config.DefaultMissionCount
	}
	if config.SelectionWeightFloor > 0 {
		params.SelectionWeightFloor = config.SelectionWeightFloor
	}

	if config.MaxUnlockPasses > 0 {
		params.MaxUnlockPasses = config.MaxUnlockPasses
	}

	if config.LevelGrowthFactor > 1 {
		params.LevelGrowthFactor = config.LevelGrowthFactor
	}
	if config.MaxNodeLevel > 0 {
		params.MaxNodeLevel = config.MaxNodeLevel
	}
	if config.FallbackBaseRequired > 0 {
		params.FallbackBaseRequired = config.FallbackBaseRequired
	}

	if config.OfficerLevelSize > 0 {
		params.OfficerLevelSize = config.OfficerLevelSize
	}

	if config.TrendMinEntries > 0 {
		params.TrendMinEntries = config.TrendMinEntries
	}
	if config.TrendDelta > 0 {
		params.TrendDelta = config.TrendDelta
	}

	return params
}
