package compat

import (
	"math"
	"strings"

	"roommate-service/internal/models"
)

const (
	// Similarity above this records a shared trait.
	sharedTraitThreshold = 0.7
	// At most this many shared traits are reported, in discovery order.
	maxSharedTraits = 3
	// Similarity used when an answer value is not among the question's
	// options and the category has no rule of its own.
	unknownOptionSimilarity = 0.5
)

// Compute scores how compatible a candidate is with a user. It walks
// the user's answers only, so the result is direction-sensitive:
// scoring A against B with A's deal-breakers can legitimately differ
// from scoring B against A with B's. That asymmetry is expected, not
// a bug.
//
// Malformed input never fails: answers to questions missing from the
// catalog are skipped, and unknown option values fall back to a
// neutral similarity. The returned score is always within
// [cfg.MinimumCompatibilityScore, 100].
func Compute(userAnswers []models.Answer, userDealBreakers []string, candidateAnswers []models.Answer, catalog []models.Question, cfg Config) Result {
	questionsByID := indexCatalog(catalog)
	candidateByQuestion := answersByQuestion(candidateAnswers)

	hasDealBreakers := checkDealBreakers(userDealBreakers, candidateAnswers, questionsByID)
	majorIncompatibilities := countHardIncompatibilities(userAnswers, candidateAnswers)

	totalWeight := 0
	weightedMatches := 0.0
	sharedTraits := []string{}

	for _, userAnswer := range userAnswers {
		question, ok := questionsByID[userAnswer.QuestionID]
		if !ok {
			continue
		}
		candidateAnswer, ok := candidateByQuestion[userAnswer.QuestionID]
		if !ok {
			continue
		}

		weight := importanceWeight(question.ImportanceLevel, cfg.ImportanceWeights)
		totalWeight += weight

		similarity := answerSimilarity(userAnswer.Value, candidateAnswer.Value, question)
		weightedMatches += similarity * float64(weight)

		if similarity > sharedTraitThreshold && len(sharedTraits) < maxSharedTraits {
			if label, found := question.OptionLabel(userAnswer.Value); found {
				trait := strings.SplitN(question.Text, "?", 2)[0] + " - " + label
				sharedTraits = append(sharedTraits, trait)
			}
		}
	}

	score := 0
	if totalWeight > 0 {
		score = int(math.Round(weightedMatches / float64(totalWeight) * 100))
	}
	if hasDealBreakers {
		score = max(0, score-cfg.DealBreakerPenalty)
	}
	score = max(0, score-majorIncompatibilities*cfg.IncompatibleLifestylePenalty)
	if score < cfg.MinimumCompatibilityScore {
		score = cfg.MinimumCompatibilityScore
	}

	return Result{
		Score:                  score,
		SharedTraits:           sharedTraits,
		HasIncompatibilities:   hasDealBreakers || majorIncompatibilities > 0,
		HasDealBreakers:        hasDealBreakers,
		MajorIncompatibilities: majorIncompatibilities,
	}
}

// OptionIndex returns the position of value within the question's
// ordered options, or -1 when the value is not an option. The position
// is what gives answers their ordinal distance; every similarity rule
// below leans on it.
func OptionIndex(q *models.Question, value string) int {
	for i, o := range q.Options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

// answerSimilarity rates two answers to the same question on [0, 1].
// Identical values always score 1.0. Otherwise the question's category
// decides how quickly similarity decays with ordinal distance:
// sleep-schedule questions decay gently, noise-related questions
// sharply, cleaning has an opposite-extremes special case, and
// everything else decays linearly over the option range.
func answerSimilarity(userValue, candidateValue string, q *models.Question) float64 {
	if userValue == candidateValue {
		return 1.0
	}

	userIdx := OptionIndex(q, userValue)
	candidateIdx := OptionIndex(q, candidateValue)
	diff := userIdx - candidateIdx
	if diff < 0 {
		diff = -diff
	}

	switch q.ID {
	case "wake-time", "sleep-time":
		switch diff {
		case 0:
			return 1.0
		case 1:
			return 0.7
		case 2:
			return 0.3
		default:
			return 0.0
		}

	case "noise-tolerance", "music-habits", "study-style":
		switch diff {
		case 0:
			return 1.0
		case 1:
			return 0.5
		default:
			return 0.0
		}

	case "cleaning-preferences":
		// Opposite extremes (spotless vs. not into cleaning) conflict
		// far more than their ordinal distance suggests.
		if (userIdx == 0 && candidateIdx == 2) || (userIdx == 2 && candidateIdx == 0) {
			return 0.1
		}
		switch diff {
		case 0:
			return 1.0
		case 1:
			return 0.6
		default:
			return 0.2
		}

	default:
		if userIdx == -1 || candidateIdx == -1 {
			return unknownOptionSimilarity
		}
		maxDiff := len(q.Options) - 1
		if maxDiff <= 0 {
			return 1.0
		}
		return 1 - float64(diff)/float64(maxDiff)
	}
}

func importanceWeight(level models.ImportanceLevel, weights ImportanceWeights) int {
	switch level {
	case models.ImportanceHigh:
		return weights.High
	case models.ImportanceLow:
		return weights.Low
	default:
		return weights.Medium
	}
}

func indexCatalog(catalog []models.Question) map[string]*models.Question {
	byID := make(map[string]*models.Question, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}
	return byID
}

func answersByQuestion(answers []models.Answer) map[string]models.Answer {
	byQuestion := make(map[string]models.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}
	return byQuestion
}
