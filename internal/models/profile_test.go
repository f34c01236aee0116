package models

import "testing"

func TestSetAnswerLastWriteWins(t *testing.T) {
	profile := &RoommateProfile{}

	profile.SetAnswer(Answer{QuestionID: "smoking-habits", Value: "no", IsPublic: true})
	profile.SetAnswer(Answer{QuestionID: "wake-time", Value: "7am-9am", IsPublic: true})
	profile.SetAnswer(Answer{QuestionID: "smoking-habits", Value: "occasionally", IsPublic: false})

	if len(profile.Answers) != 2 {
		t.Fatalf("Expected 2 answers after upsert, got %d", len(profile.Answers))
	}
	if profile.Answers[0].Value != "occasionally" {
		t.Errorf("Expected smoking answer replaced in place, got %q", profile.Answers[0].Value)
	}
	if profile.Answers[0].IsPublic {
		t.Error("Expected visibility to follow the latest write")
	}
}

func TestPublicAnswers(t *testing.T) {
	profile := &RoommateProfile{
		Answers: []Answer{
			{QuestionID: "smoking-habits", Value: "no", IsPublic: true},
			{QuestionID: "alcohol-habits", Value: "occasionally", IsPublic: false},
			{QuestionID: "wake-time", Value: "7am-9am", IsPublic: true},
		},
	}

	public := profile.PublicAnswers()
	if len(public) != 2 {
		t.Fatalf("Expected 2 public answers, got %d", len(public))
	}
	for _, a := range public {
		if !a.IsPublic {
			t.Errorf("Private answer %q leaked into public set", a.QuestionID)
		}
	}
}
