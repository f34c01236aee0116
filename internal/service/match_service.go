package service

import (
	"context"
	"sort"

	"roommate-service/internal/cache"
	"roommate-service/internal/compat"
	"roommate-service/internal/models"
	"roommate-service/internal/repository"
)

// MatchService runs the compatibility engine over stored profiles.
// Scores are direction-sensitive: the caller's deal-breakers apply,
// the candidate's do not.
type MatchService struct {
	Profiles  *repository.ProfileRepository
	Questions *repository.QuestionRepository
	Cache     *cache.ScoreCache // nil when Redis is not configured
	Config    compat.Config
}

func NewMatchService(profiles *repository.ProfileRepository, questions *repository.QuestionRepository, scoreCache *cache.ScoreCache, cfg compat.Config) *MatchService {
	return &MatchService{Profiles: profiles, Questions: questions, Cache: scoreCache, Config: cfg}
}

// ScorePair computes the caller's compatibility with one candidate,
// serving from the cache when possible.
func (s *MatchService) ScorePair(ctx context.Context, userID, candidateProfileID string) (*compat.Result, error) {
	user, err := s.Profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, user.ID, candidateProfileID); err == nil && cached != nil {
			return cached, nil
		}
	}

	candidate, err := s.Profiles.FindByID(ctx, candidateProfileID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.Questions.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := compat.Compute(user.Answers, user.DealBreakers, candidate.Answers, catalog, s.Config)
	if s.Cache != nil {
		_ = s.Cache.Set(ctx, user.ID, candidate.ID, result)
	}
	return &result, nil
}

// RankCandidates scores every other profile against the caller and
// returns them ordered best-first. lookingFor narrows candidates to
// one intent; limit <= 0 means no limit. The listing always recomputes
// so a profile edit shows up immediately.
func (s *MatchService) RankCandidates(ctx context.Context, userID, lookingFor string, limit int) ([]models.MatchEntry, error) {
	user, err := s.Profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.Profiles.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	catalog, err := s.Questions.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := buildMatchEntries(user, candidates, catalog, lookingFor, s.Config)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// buildMatchEntries is the pure ranking core behind RankCandidates.
func buildMatchEntries(user *models.RoommateProfile, candidates []models.RoommateProfile, catalog []models.Question, lookingFor string, cfg compat.Config) []models.MatchEntry {
	entries := make([]models.MatchEntry, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == user.ID {
			continue
		}
		if lookingFor != "" && candidate.LookingFor != lookingFor {
			continue
		}
		result := compat.Compute(user.Answers, user.DealBreakers, candidate.Answers, catalog, cfg)
		candidate.Answers = candidate.PublicAnswers()
		entries = append(entries, models.MatchEntry{
			Profile:              candidate,
			Score:                result.Score,
			SharedTraits:         result.SharedTraits,
			HasIncompatibilities: result.HasIncompatibilities,
			HasDealBreakers:      result.HasDealBreakers,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}
