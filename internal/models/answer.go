package models

// Answer is a profile's response to one catalog question. Value is
// expected to be one of the question's option values; the scoring
// engine treats anything else as "index not found" rather than
// rejecting it.
type Answer struct {
	QuestionID string `bson:"question_id" json:"question_id"`
	Value      string `bson:"value" json:"value"`
	IsPublic   bool   `bson:"is_public" json:"is_public"`
}
