package compat

import (
	"slices"
	"strings"

	"roommate-service/internal/models"
)

// DealBreakerRule maps a family of free-text deal-breaker keywords to
// the questions it concerns and the candidate answers that trigger it.
// Deal-breakers are user-declared free text ("smoking", "loud music"),
// matched case-insensitively by substring, so the detection is
// deliberately fuzzy.
type DealBreakerRule struct {
	Keywords    []string
	QuestionIDs []string
	Triggers    func(answerValue string) bool
}

var dealBreakerRules = []DealBreakerRule{
	{
		Keywords:    []string{"smok", "cigarette"},
		QuestionIDs: []string{"smoking-habits"},
		Triggers:    func(v string) bool { return v != "no" },
	},
	{
		Keywords:    []string{"noise", "loud", "quiet"},
		QuestionIDs: []string{"noise-tolerance", "music-habits"},
		Triggers:    func(v string) bool { return strings.Contains(v, "loud") || v == "not-bothered" },
	},
	{
		Keywords:    []string{"clean", "tidy", "mess"},
		QuestionIDs: []string{"cleaning-preferences"},
		Triggers:    func(v string) bool { return v == "not-into-cleaning" },
	},
	{
		Keywords:    []string{"guest", "visit"},
		QuestionIDs: []string{"guests-policy"},
		Triggers:    func(v string) bool { return v == "frequent-visits" },
	},
	{
		Keywords:    []string{"alcohol", "drink"},
		QuestionIDs: []string{"alcohol-habits"},
		Triggers:    func(v string) bool { return v != "no" },
	},
	{
		Keywords:    []string{"early", "morning"},
		QuestionIDs: []string{"wake-time"},
		Triggers:    func(v string) bool { return v == "after-11am" },
	},
	{
		Keywords:    []string{"night", "late"},
		QuestionIDs: []string{"bedtime"},
		Triggers:    func(v string) bool { return v == "before-10pm" },
	},
}

// hardIncompatibility is a zero-tolerance lifestyle mismatch, checked
// independently of the weighted scoring pass. Each contributes at most
// one count per pair.
type hardIncompatibility struct {
	questionID string
	mismatch   func(userValue, candidateValue string) bool
}

var hardIncompatibilities = []hardIncompatibility{
	{
		// Non-smoker paired with a smoker.
		questionID: "smoking-habits",
		mismatch: func(u, c string) bool {
			return u == "no" && c == "yes"
		},
	},
	{
		// Early riser paired with a late riser, either direction.
		questionID: "wake-time",
		mismatch: func(u, c string) bool {
			return (u == "before-7am" && c == "after-11am") || (u == "after-11am" && c == "before-7am")
		},
	},
	{
		// Non-drinker paired with a frequent drinker.
		questionID: "alcohol-habits",
		mismatch: func(u, c string) bool {
			return u == "no" && c == "frequently"
		},
	},
	{
		// Noise-sensitive paired with noise-indifferent, either direction.
		questionID: "noise-tolerance",
		mismatch: func(u, c string) bool {
			return (u == "very-sensitive" && c == "not-bothered") || (u == "not-bothered" && c == "very-sensitive")
		},
	},
}

func checkDealBreakers(dealBreakers []string, candidateAnswers []models.Answer, questionsByID map[string]*models.Question) bool {
	if len(dealBreakers) == 0 {
		return false
	}
	for _, dealBreaker := range dealBreakers {
		lower := strings.ToLower(dealBreaker)
		for _, rule := range dealBreakerRules {
			if !containsAnyKeyword(lower, rule.Keywords) {
				continue
			}
			for _, answer := range candidateAnswers {
				if _, known := questionsByID[answer.QuestionID]; !known {
					continue
				}
				if !slices.Contains(rule.QuestionIDs, answer.QuestionID) {
					continue
				}
				if rule.Triggers(answer.Value) {
					return true
				}
			}
		}
	}
	return false
}

func countHardIncompatibilities(userAnswers, candidateAnswers []models.Answer) int {
	userByQuestion := answersByQuestion(userAnswers)
	candidateByQuestion := answersByQuestion(candidateAnswers)

	count := 0
	for _, h := range hardIncompatibilities {
		user, userOK := userByQuestion[h.questionID]
		candidate, candidateOK := candidateByQuestion[h.questionID]
		if userOK && candidateOK && h.mismatch(user.Value, candidate.Value) {
			count++
		}
	}
	return count
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
