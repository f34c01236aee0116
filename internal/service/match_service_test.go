package service

import (
	"testing"

	"roommate-service/internal/compat"
	"roommate-service/internal/models"
)

func testProfile(id, lookingFor string, answers []models.Answer) models.RoommateProfile {
	return models.RoommateProfile{
		ID:         id,
		UserID:     "user-" + id,
		Name:       "Profile " + id,
		LookingFor: lookingFor,
		Answers:    answers,
	}
}

func TestBuildMatchEntriesRanking(t *testing.T) {
	catalog := models.DefaultQuestionCatalog()
	userAnswers := []models.Answer{
		{QuestionID: "smoking-habits", Value: "no", IsPublic: true},
		{QuestionID: "food-sharing", Value: "happy-to-share", IsPublic: true},
	}
	user := testProfile("self", "just-roommate", userAnswers)

	identical := testProfile("identical", "just-roommate", userAnswers)
	smoker := testProfile("smoker", "just-roommate", []models.Answer{
		{QuestionID: "smoking-habits", Value: "yes", IsPublic: true},
		{QuestionID: "food-sharing", Value: "happy-to-share", IsPublic: true},
	})
	candidates := []models.RoommateProfile{smoker, identical, user}

	entries := buildMatchEntries(&user, candidates, catalog, "", compat.DefaultConfig())

	if len(entries) != 2 {
		t.Fatalf("Expected caller's own profile excluded, got %d entries", len(entries))
	}
	if entries[0].Profile.ID != "identical" {
		t.Errorf("Expected best match first, got %q", entries[0].Profile.ID)
	}
	if entries[0].Score != 100 {
		t.Errorf("Expected identical profile to score 100, got %d", entries[0].Score)
	}
	if entries[1].Profile.ID != "smoker" {
		t.Errorf("Expected smoker ranked last, got %q", entries[1].Profile.ID)
	}
	if entries[1].Score >= entries[0].Score {
		t.Errorf("Expected descending order, got %d then %d", entries[0].Score, entries[1].Score)
	}
	if !entries[1].HasIncompatibilities {
		t.Error("Expected smoker flagged as incompatible")
	}
}

func TestBuildMatchEntriesLookingForFilter(t *testing.T) {
	catalog := models.DefaultQuestionCatalog()
	user := testProfile("self", "just-roommate", nil)
	candidates := []models.RoommateProfile{
		testProfile("a", "just-roommate", nil),
		testProfile("b", "room-and-roommate", nil),
	}

	entries := buildMatchEntries(&user, candidates, catalog, "room-and-roommate", compat.DefaultConfig())

	if len(entries) != 1 || entries[0].Profile.ID != "b" {
		t.Errorf("Expected only the room-and-roommate candidate, got %+v", entries)
	}
}

func TestBuildMatchEntriesStripsPrivateAnswers(t *testing.T) {
	catalog := models.DefaultQuestionCatalog()
	user := testProfile("self", "", nil)
	candidate := testProfile("c", "", []models.Answer{
		{QuestionID: "smoking-habits", Value: "no", IsPublic: true},
		{QuestionID: "alcohol-habits", Value: "frequently", IsPublic: false},
	})

	entries := buildMatchEntries(&user, []models.RoommateProfile{candidate}, catalog, "", compat.DefaultConfig())

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	for _, a := range entries[0].Profile.Answers {
		if !a.IsPublic {
			t.Errorf("Private answer %q leaked into match listing", a.QuestionID)
		}
	}
	if len(entries[0].Profile.Answers) != 1 {
		t.Errorf("Expected 1 public answer in listing, got %d", len(entries[0].Profile.Answers))
	}
}
