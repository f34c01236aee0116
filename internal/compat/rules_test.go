package compat

import (
	"testing"

	"roommate-service/internal/models"
)

func TestCheckDealBreakers(t *testing.T) {
	questionsByID := indexCatalog(models.DefaultQuestionCatalog())

	cases := []struct {
		name        string
		dealBreaker string
		answer      models.Answer
		want        bool
	}{
		{"smoking triggers on smoker", "Smoking", answer("smoking-habits", "occasionally"), true},
		{"smoking does not trigger on non-smoker", "smoking", answer("smoking-habits", "no"), false},
		{"cigarette keyword", "cigarettes", answer("smoking-habits", "yes"), true},

		{"loud music triggers on loud speakers", "loud music", answer("music-habits", "loud-speakers"), true},
		{"quiet keyword triggers on noise-indifferent", "I need quiet", answer("noise-tolerance", "not-bothered"), true},
		{"noise keyword does not trigger on sensitive", "noise", answer("noise-tolerance", "very-sensitive"), false},

		{"mess keyword triggers on not-into-cleaning", "messy people", answer("cleaning-preferences", "not-into-cleaning"), true},
		{"tidy keyword does not trigger on clean-enough", "untidy flatmates", answer("cleaning-preferences", "clean-enough"), false},

		{"guest keyword triggers on frequent visits", "too many guests", answer("guests-policy", "frequent-visits"), true},
		{"visit keyword does not trigger on rare visits", "visitors", answer("guests-policy", "rare-visits"), false},

		{"drink keyword triggers on any drinking", "heavy drinking", answer("alcohol-habits", "occasionally"), true},
		{"alcohol keyword does not trigger on non-drinker", "alcohol", answer("alcohol-habits", "no"), false},

		{"morning keyword triggers on late riser", "morning person wanted", answer("wake-time", "after-11am"), true},
		{"early keyword does not trigger on early riser", "early", answer("wake-time", "before-7am"), false},

		{"late keyword triggers on early sleeper", "late nights", answer("bedtime", "before-10pm"), true},
		{"night keyword does not trigger on night owl", "night", answer("bedtime", "after-12am"), false},

		{"unrelated keyword never triggers", "cats", answer("smoking-habits", "yes"), false},
		{"answer to unknown question is ignored", "smoking", answer("vaping-habits", "yes"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := checkDealBreakers([]string{tc.dealBreaker}, []models.Answer{tc.answer}, questionsByID)
			if got != tc.want {
				t.Errorf("checkDealBreakers(%q, %+v) = %v, want %v", tc.dealBreaker, tc.answer, got, tc.want)
			}
		})
	}

	t.Run("empty deal-breaker list", func(t *testing.T) {
		if checkDealBreakers(nil, []models.Answer{answer("smoking-habits", "yes")}, questionsByID) {
			t.Error("Expected no match with an empty deal-breaker list")
		}
	})

	t.Run("any one of several deal-breakers matches", func(t *testing.T) {
		dealBreakers := []string{"cats", "parties", "smoking"}
		if !checkDealBreakers(dealBreakers, []models.Answer{answer("smoking-habits", "yes")}, questionsByID) {
			t.Error("Expected a match from the third deal-breaker")
		}
	})
}

func TestCountHardIncompatibilities(t *testing.T) {
	cases := []struct {
		name      string
		user      []models.Answer
		candidate []models.Answer
		want      int
	}{
		{
			name:      "non-smoker with smoker",
			user:      []models.Answer{answer("smoking-habits", "no")},
			candidate: []models.Answer{answer("smoking-habits", "yes")},
			want:      1,
		},
		{
			name:      "smoker with non-smoker is one-directional",
			user:      []models.Answer{answer("smoking-habits", "yes")},
			candidate: []models.Answer{answer("smoking-habits", "no")},
			want:      0,
		},
		{
			name:      "wake-time extremes either direction",
			user:      []models.Answer{answer("wake-time", "after-11am")},
			candidate: []models.Answer{answer("wake-time", "before-7am")},
			want:      1,
		},
		{
			name:      "non-drinker with frequent drinker",
			user:      []models.Answer{answer("alcohol-habits", "no")},
			candidate: []models.Answer{answer("alcohol-habits", "frequently")},
			want:      1,
		},
		{
			name:      "occasional drinker is tolerated",
			user:      []models.Answer{answer("alcohol-habits", "no")},
			candidate: []models.Answer{answer("alcohol-habits", "occasionally")},
			want:      0,
		},
		{
			name:      "noise extremes either direction",
			user:      []models.Answer{answer("noise-tolerance", "not-bothered")},
			candidate: []models.Answer{answer("noise-tolerance", "very-sensitive")},
			want:      1,
		},
		{
			name:      "unanswered question cannot count",
			user:      []models.Answer{answer("smoking-habits", "no")},
			candidate: nil,
			want:      0,
		},
		{
			name: "all four at once",
			user: []models.Answer{
				answer("smoking-habits", "no"),
				answer("wake-time", "before-7am"),
				answer("alcohol-habits", "no"),
				answer("noise-tolerance", "very-sensitive"),
			},
			candidate: []models.Answer{
				answer("smoking-habits", "yes"),
				answer("wake-time", "after-11am"),
				answer("alcohol-habits", "frequently"),
				answer("noise-tolerance", "not-bothered"),
			},
			want: 4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := countHardIncompatibilities(tc.user, tc.candidate)
			if got != tc.want {
				t.Errorf("countHardIncompatibilities() = %d, want %d", got, tc.want)
			}
		})
	}
}
