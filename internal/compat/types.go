// Package compat scores lifestyle compatibility between two roommate
// profiles. It is a pure package: no I/O, no shared state, safe to
// call from any number of goroutines.
package compat

// ImportanceWeights maps a question's importance level to its weight
// in the aggregate score.
type ImportanceWeights struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Config holds the scoring tunables. It is passed explicitly into
// every Compute call so tests can vary it freely; there is no
// package-level configuration.
type Config struct {
	ImportanceWeights            ImportanceWeights `json:"importance_weights"`
	DealBreakerPenalty           int               `json:"deal_breaker_penalty"`
	IncompatibleLifestylePenalty int               `json:"incompatible_lifestyle_penalty"`
	MinimumCompatibilityScore    int               `json:"minimum_compatibility_score"`
}

// DefaultConfig returns the reference tunables.
func DefaultConfig() Config {
	return Config{
		ImportanceWeights: ImportanceWeights{
			High:   3,
			Medium: 2,
			Low:    1,
		},
		DealBreakerPenalty:           30,
		IncompatibleLifestylePenalty: 15,
		MinimumCompatibilityScore:    15,
	}
}

// Result is the outcome of scoring one profile against another.
// HasIncompatibilities is the combined flag: true when any hard
// incompatibility or declared deal-breaker matched. The individual
// signals are exposed alongside it because the UI surfaces them
// differently.
type Result struct {
	Score                  int      `json:"score"`
	SharedTraits           []string `json:"shared_traits"`
	HasIncompatibilities   bool     `json:"has_incompatibilities"`
	HasDealBreakers        bool     `json:"has_deal_breakers"`
	MajorIncompatibilities int      `json:"major_incompatibilities"`
}
