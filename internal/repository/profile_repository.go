package repository

import (
	"context"

	"roommate-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProfileRepository struct {
	Col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{Col: db.Collection("profiles")}
}

func (r *ProfileRepository) FindAll(ctx context.Context, filter bson.M) ([]models.RoommateProfile, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var profiles []models.RoommateProfile
	for cur.Next(ctx) {
		var p models.RoommateProfile
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, cur.Err()
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*models.RoommateProfile, error) {
	var profile models.RoommateProfile
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.RoommateProfile, error) {
	var profile models.RoommateProfile
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *models.RoommateProfile) error {
	_, err := r.Col.InsertOne(ctx, profile)
	return err
}

func (r *ProfileRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}
