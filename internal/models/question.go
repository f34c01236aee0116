package models

type Option struct {
	Value string `bson:"value" json:"value"`
	Label string `bson:"label" json:"label"`
}

// ImportanceLevel controls how much a question counts toward the
// aggregate compatibility score.
type ImportanceLevel string

const (
	ImportanceHigh   ImportanceLevel = "high"
	ImportanceMedium ImportanceLevel = "medium"
	ImportanceLow    ImportanceLevel = "low"
)

// Question is one lifestyle attribute compared between two profiles.
// The order of Options is significant: it encodes an ordinal scale
// (e.g. wake times from earliest to latest) that distance-based
// similarity relies on. Reordering options changes every historical
// score, so treat the catalog as a versioned schema.
type Question struct {
	ID              string          `bson:"_id,omitempty" json:"id"`
	Text            string          `bson:"text" json:"text"`
	Icon            string          `bson:"icon" json:"icon"`
	Options         []Option        `bson:"options" json:"options"`
	ImportanceLevel ImportanceLevel `bson:"importance_level,omitempty" json:"importance_level,omitempty"`
}

// OptionLabel returns the display label for an option value.
func (q *Question) OptionLabel(value string) (string, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Label, true
		}
	}
	return "", false
}
