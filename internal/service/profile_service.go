package service

import (
	"context"
	"time"

	"roommate-service/internal/cache"
	"roommate-service/internal/models"
	"roommate-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type ProfileService struct {
	Repo  *repository.ProfileRepository
	Cache *cache.ScoreCache // nil when Redis is not configured
}

func NewProfileService(repo *repository.ProfileRepository, scoreCache *cache.ScoreCache) *ProfileService {
	return &ProfileService{Repo: repo, Cache: scoreCache}
}

func (s *ProfileService) GetProfile(ctx context.Context, id string) (*models.RoommateProfile, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ProfileService) GetProfileByUser(ctx context.Context, userID string) (*models.RoommateProfile, error) {
	return s.Repo.FindByUserID(ctx, userID)
}

func (s *ProfileService) ListProfiles(ctx context.Context, lookingFor string) ([]models.RoommateProfile, error) {
	filter := bson.M{}
	if lookingFor != "" {
		filter["looking_for"] = lookingFor
	}
	return s.Repo.FindAll(ctx, filter)
}

func (s *ProfileService) CreateProfile(ctx context.Context, userID string, profile *models.RoommateProfile) error {
	now := time.Now().UTC()
	profile.ID = uuid.NewString()
	profile.UserID = userID
	if profile.Answers == nil {
		profile.Answers = []models.Answer{}
	}
	if profile.DealBreakers == nil {
		profile.DealBreakers = []string{}
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now
	return s.Repo.Create(ctx, profile)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, update map[string]any) (*models.RoommateProfile, error) {
	profile, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Identity and ownership fields are not client-writable.
	delete(update, "_id")
	delete(update, "id")
	delete(update, "user_id")
	update["updated_at"] = time.Now().UTC()
	if err := s.Repo.Update(ctx, profile.ID, bson.M(update)); err != nil {
		return nil, err
	}
	s.invalidateScores(ctx, profile.ID)
	return s.Repo.FindByID(ctx, profile.ID)
}

// SubmitAnswer adds or replaces one questionnaire answer. Last write
// wins per question.
func (s *ProfileService) SubmitAnswer(ctx context.Context, userID string, answer models.Answer) (*models.RoommateProfile, error) {
	profile, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.SetAnswer(answer)
	update := bson.M{
		"answers":    profile.Answers,
		"updated_at": time.Now().UTC(),
	}
	if err := s.Repo.Update(ctx, profile.ID, update); err != nil {
		return nil, err
	}
	s.invalidateScores(ctx, profile.ID)
	return profile, nil
}

func (s *ProfileService) SetDealBreakers(ctx context.Context, userID string, dealBreakers []string) (*models.RoommateProfile, error) {
	profile, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if dealBreakers == nil {
		dealBreakers = []string{}
	}
	update := bson.M{
		"deal_breakers": dealBreakers,
		"updated_at":    time.Now().UTC(),
	}
	if err := s.Repo.Update(ctx, profile.ID, update); err != nil {
		return nil, err
	}
	profile.DealBreakers = dealBreakers
	s.invalidateScores(ctx, profile.ID)
	return profile, nil
}

// invalidateScores drops cached pair scores involving this profile.
// Cache errors are ignored: entries expire on TTL anyway and a stale
// read is only a hint, never the source of truth.
func (s *ProfileService) invalidateScores(ctx context.Context, profileID string) {
	if s.Cache == nil {
		return
	}
	_ = s.Cache.Invalidate(ctx, profileID)
}
