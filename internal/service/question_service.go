package service

import (
	"context"
	"log"

	"roommate-service/internal/models"
	"roommate-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.Repo.FindAll(ctx)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if question.ImportanceLevel == "" {
		question.ImportanceLevel = models.ImportanceMedium
	}
	return s.Repo.Create(ctx, question)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update map[string]any) error {
	return s.Repo.Update(ctx, id, bson.M(update))
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// SeedDefaultCatalog loads the built-in lifestyle catalog when the
// questions collection is empty. Comparable scores require every
// profile to be scored against the same catalog, so seeding happens
// once and later edits go through the admin endpoints.
func (s *QuestionService) SeedDefaultCatalog(ctx context.Context) error {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	catalog := models.DefaultQuestionCatalog()
	if err := s.Repo.CreateMany(ctx, catalog); err != nil {
		return err
	}
	log.Printf("Seeded question catalog with %d questions", len(catalog))
	return nil
}
