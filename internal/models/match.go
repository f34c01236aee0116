package models

// MatchEntry is one ranked candidate in a match listing. The score is
// recomputed on demand from both answer sets; it is never stored as a
// source of truth.
type MatchEntry struct {
	Profile              RoommateProfile `json:"profile"`
	Score                int             `json:"score"`
	SharedTraits         []string        `json:"shared_traits"`
	HasIncompatibilities bool            `json:"has_incompatibilities"`
	HasDealBreakers      bool            `json:"has_deal_breakers"`
}
