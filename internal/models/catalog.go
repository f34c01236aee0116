package models

// DefaultQuestionCatalog returns the built-in lifestyle questionnaire.
// It is seeded into the questions collection on first boot.
func DefaultQuestionCatalog() []Question {
	return []Question{
		{
			ID:   "smoking-habits",
			Text: "Do you smoke?",
			Icon: "🚬",
			Options: []Option{
				{Value: "no", Label: "No"},
				{Value: "occasionally", Label: "Occasionally"},
				{Value: "yes", Label: "Yes"},
			},
			ImportanceLevel: ImportanceHigh,
		},
		{
			ID:   "alcohol-habits",
			Text: "How often do you drink alcohol?",
			Icon: "🍺",
			Options: []Option{
				{Value: "no", Label: "I don't drink"},
				{Value: "occasionally", Label: "Occasionally"},
				{Value: "frequently", Label: "Frequently"},
			},
			ImportanceLevel: ImportanceHigh,
		},
		{
			ID:   "wake-time",
			Text: "What time do you usually wake up?",
			Icon: "⏰",
			Options: []Option{
				{Value: "before-7am", Label: "Before 7 AM"},
				{Value: "7am-9am", Label: "7 AM to 9 AM"},
				{Value: "9am-11am", Label: "9 AM to 11 AM"},
				{Value: "after-11am", Label: "After 11 AM"},
			},
			ImportanceLevel: ImportanceMedium,
		},
		{
			ID:   "sleep-time",
			Text: "What time do you usually sleep?",
			Icon: "😴",
			Options: []Option{
				{Value: "before-10pm", Label: "Before 10 PM"},
				{Value: "10pm-12am", Label: "Between 10 PM and 12 AM"},
				{Value: "after-12am", Label: "After 12 AM"},
				{Value: "after-2am", Label: "After 2 AM"},
			},
			ImportanceLevel: ImportanceMedium,
		},
		{
			ID:   "bedtime",
			Text: "Are you in bed early or out late most nights?",
			Icon: "🌙",
			Options: []Option{
				{Value: "before-10pm", Label: "In bed early"},
				{Value: "10pm-12am", Label: "Somewhere in between"},
				{Value: "after-12am", Label: "Out late"},
			},
			ImportanceLevel: ImportanceLow,
		},
		{
			ID:   "noise-tolerance",
			Text: "How sensitive are you to noise?",
			Icon: "🔇",
			Options: []Option{
				{Value: "very-sensitive", Label: "Very sensitive"},
				{Value: "somewhat-sensitive", Label: "Somewhat sensitive"},
				{Value: "not-bothered", Label: "Not bothered at all"},
			},
			ImportanceLevel: ImportanceHigh,
		},
		{
			ID:   "music-habits",
			Text: "How do you listen to music at home?",
			Icon: "🎧",
			Options: []Option{
				{Value: "headphones", Label: "Headphones only"},
				{Value: "low-volume", Label: "Speakers at low volume"},
				{Value: "loud-speakers", Label: "Loud on speakers"},
			},
			ImportanceLevel: ImportanceMedium,
		},
		{
			ID:   "study-style",
			Text: "What's your ideal study environment?",
			Icon: "📚",
			Options: []Option{
				{Value: "complete-silence", Label: "Complete silence"},
				{Value: "some-background-noise", Label: "Some background noise"},
				{Value: "music-or-tv-on", Label: "Music or TV on"},
			},
			ImportanceLevel: ImportanceMedium,
		},
		{
			ID:   "cleaning-preferences",
			Text: "How do you feel about cleaning?",
			Icon: "🧹",
			Options: []Option{
				{Value: "love-it-spotless", Label: "I keep things spotless"},
				{Value: "clean-enough", Label: "Clean enough works for me"},
				{Value: "not-into-cleaning", Label: "Not into cleaning"},
			},
			ImportanceLevel: ImportanceHigh,
		},
		{
			ID:   "guests-policy",
			Text: "How often do you have guests over?",
			Icon: "👥",
			Options: []Option{
				{Value: "rare-visits", Label: "Rarely"},
				{Value: "occasional-visits", Label: "Occasionally"},
				{Value: "frequent-visits", Label: "All the time"},
			},
			ImportanceLevel: ImportanceMedium,
		},
		{
			ID:   "cooking-frequency",
			Text: "How often do you cook?",
			Icon: "🍳",
			Options: []Option{
				{Value: "daily", Label: "Daily"},
				{Value: "few-times-week", Label: "Few times a week"},
				{Value: "rarely", Label: "Rarely"},
				{Value: "never", Label: "Never"},
			},
			ImportanceLevel: ImportanceLow,
		},
		{
			ID:   "food-sharing",
			Text: "How do you feel about sharing food?",
			Icon: "🍱",
			Options: []Option{
				{Value: "happy-to-share", Label: "Happy to share"},
				{Value: "depends", Label: "Depends on the food"},
				{Value: "prefer-separate", Label: "Prefer to keep separate"},
			},
			ImportanceLevel: ImportanceLow,
		},
		{
			ID:   "language-preference",
			Text: "Preferred language at home?",
			Icon: "🗣️",
			Options: []Option{
				{Value: "english", Label: "English"},
				{Value: "hindi", Label: "Hindi"},
				{Value: "punjabi", Label: "Punjabi"},
				{Value: "other", Label: "Other"},
			},
			ImportanceLevel: ImportanceLow,
		},
	}
}
