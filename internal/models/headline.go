package models

import "time"

// Headline represents a single financial news headline, the unit of analysis.
type Headline struct {
	Text   string `json:"text" validate:"required,max=1000"`
	Source string `json:"source,omitempty"`
	Date   string `json:"date,omitempty"`
	Label  string `json:"label,omitempty"` // Ground truth sentiment if available
}

// NewHeadline wraps a raw text as a Headline dated today
func NewHeadline(text, source string) Headline {
	return Headline{
		Text:   text,
		Source: source,
		Date:   time.Now().Format("2006-01-02"),
	}
}

// FromTexts wraps raw strings as Headline records for ad-hoc analysis
func FromTexts(texts []string) []Headline {
	headlines := make([]Headline, 0, len(texts))
	for _, t := range texts {
		headlines = append(headlines, NewHeadline(t, "user_input"))
	}
	return headlines
}
