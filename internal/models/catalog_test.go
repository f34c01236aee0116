package models

import "testing"

// The scoring engine keys its category rules and hard-incompatibility
// checks on these ids; the seeded catalog has to carry all of them.
var engineQuestionIDs = []string{
	"smoking-habits",
	"alcohol-habits",
	"wake-time",
	"sleep-time",
	"bedtime",
	"noise-tolerance",
	"music-habits",
	"study-style",
	"cleaning-preferences",
	"guests-policy",
}

func TestDefaultCatalogCoversEngineCategories(t *testing.T) {
	byID := map[string]Question{}
	for _, q := range DefaultQuestionCatalog() {
		if _, dup := byID[q.ID]; dup {
			t.Errorf("Duplicate question id %q", q.ID)
		}
		byID[q.ID] = q
	}

	for _, id := range engineQuestionIDs {
		if _, ok := byID[id]; !ok {
			t.Errorf("Catalog is missing question %q", id)
		}
	}
}

func TestDefaultCatalogOptionIntegrity(t *testing.T) {
	for _, q := range DefaultQuestionCatalog() {
		if len(q.Options) < 2 {
			t.Errorf("Question %q has fewer than 2 options", q.ID)
		}
		seen := map[string]bool{}
		for _, o := range q.Options {
			if o.Value == "" || o.Label == "" {
				t.Errorf("Question %q has an empty option value or label", q.ID)
			}
			if seen[o.Value] {
				t.Errorf("Question %q has duplicate option value %q", q.ID, o.Value)
			}
			seen[o.Value] = true
		}
		switch q.ImportanceLevel {
		case ImportanceHigh, ImportanceMedium, ImportanceLow:
		default:
			t.Errorf("Question %q has invalid importance level %q", q.ID, q.ImportanceLevel)
		}
	}
}

// Option order is an ordinal scale; the trigger values the engine
// hardcodes must sit at the positions its rules assume.
func TestDefaultCatalogOrdinalAssumptions(t *testing.T) {
	byID := map[string]Question{}
	for _, q := range DefaultQuestionCatalog() {
		byID[q.ID] = q
	}

	cases := []struct {
		questionID string
		value      string
		index      int
	}{
		{"smoking-habits", "no", 0},
		{"smoking-habits", "yes", 2},
		{"wake-time", "before-7am", 0},
		{"wake-time", "after-11am", 3},
		{"alcohol-habits", "no", 0},
		{"alcohol-habits", "frequently", 2},
		{"noise-tolerance", "very-sensitive", 0},
		{"noise-tolerance", "not-bothered", 2},
		{"cleaning-preferences", "not-into-cleaning", 2},
		{"guests-policy", "frequent-visits", 2},
		{"bedtime", "before-10pm", 0},
	}

	for _, tc := range cases {
		q, ok := byID[tc.questionID]
		if !ok {
			t.Errorf("Catalog is missing question %q", tc.questionID)
			continue
		}
		found := -1
		for i, o := range q.Options {
			if o.Value == tc.value {
				found = i
				break
			}
		}
		if found != tc.index {
			t.Errorf("Question %q: expected value %q at index %d, found at %d", tc.questionID, tc.value, tc.index, found)
		}
	}
}

func TestOptionLabel(t *testing.T) {
	q := Question{
		ID: "smoking-habits",
		Options: []Option{
			{Value: "no", Label: "No"},
			{Value: "yes", Label: "Yes"},
		},
	}

	label, ok := q.OptionLabel("yes")
	if !ok || label != "Yes" {
		t.Errorf("Expected label Yes, got %q (found=%v)", label, ok)
	}
	if _, ok := q.OptionLabel("sometimes"); ok {
		t.Error("Expected unknown value to report not found")
	}
}
