package models

import "time"

type RoommateProfile struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Name         string    `bson:"name" json:"name"`
	Age          int       `bson:"age" json:"age"`
	Gender       string    `bson:"gender" json:"gender"`
	Occupation   string    `bson:"occupation" json:"occupation"`
	LookingFor   string    `bson:"looking_for" json:"looking_for"` // room-and-roommate | just-roommate
	Answers      []Answer  `bson:"answers" json:"answers"`
	DealBreakers []string  `bson:"deal_breakers" json:"deal_breakers"`
	Bio          string    `bson:"bio" json:"bio"`
	ImageURL     string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// SetAnswer adds or replaces the answer for a question. One answer per
// question per profile, last write wins.
func (p *RoommateProfile) SetAnswer(a Answer) {
	for i, existing := range p.Answers {
		if existing.QuestionID == a.QuestionID {
			p.Answers[i] = a
			return
		}
	}
	p.Answers = append(p.Answers, a)
}

// PublicAnswers returns only the answers the profile owner chose to
// show on their public profile. Scoring always uses the full set.
func (p *RoommateProfile) PublicAnswers() []Answer {
	public := make([]Answer, 0, len(p.Answers))
	for _, a := range p.Answers {
		if a.IsPublic {
			public = append(public, a)
		}
	}
	return public
}
