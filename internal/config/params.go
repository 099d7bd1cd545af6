package config

// Params holds the tunable balance knobs of one simulation run.
type Params struct {
	// Starting conditions.
	StartAge   int `yaml:"start_age"`
	StartDay   int `yaml:"start_day"`
	StartMoney int `yaml:"start_money"`
	MonthMoney int `yaml:"month_money"` // unconditional monthly income

	// Vital trait limits and penalties.
	StressLimit    int `yaml:"stress_limit"`
	DiseaseLimit   int `yaml:"disease_limit"`
	MadLimit       int `yaml:"mad_limit"`
	LowMoneyStress int `yaml:"low_money_stress"`

	// Career thresholds.
	MinPromotionTimes int `yaml:"min_promotion_times"`
	MinRecommendTimes int `yaml:"min_recommend_times"`
	MaxSkipWorkDays   int `yaml:"max_skip_work_days"`
	MaxApplyAge       int `yaml:"max_apply_age"`

	// Stochastic knobs.
	RandomEventChance float64 `yaml:"random_event_chance"`
	DeathChance       float64 `yaml:"death_chance"`
	MinDeathChanceAge int     `yaml:"min_death_chance_age"`

	// Time and economy.
	TimeScale    float64 `yaml:"time_scale"` // multiplies scaled decision durations
	InflateDays  int     `yaml:"inflate_days"`
	InflateValue int     `yaml:"inflate_value"`
}

// WarnFraction of a vital limit triggers the one-shot warning notice.
const WarnFraction = 0.6

// DefaultParams returns the baseline balance configuration.
func DefaultParams() Params {
	return Params{
		StartAge:          18,
		StartDay:          1,
		StartMoney:        500,
		MonthMoney:        50,
		StressLimit:       100,
		DiseaseLimit:      100,
		MadLimit:          100,
		LowMoneyStress:    15,
		MinPromotionTimes: 6,
		MinRecommendTimes: 3,
		MaxSkipWorkDays:   10,
		MaxApplyAge:       65,
		RandomEventChance: 0.15,
		DeathChance:       0.01,
		MinDeathChanceAge: 60,
		TimeScale:         1,
		InflateDays:       93,
		InflateValue:      10,
	}
}
