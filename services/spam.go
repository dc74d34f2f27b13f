package services

import "strings"

// SpamClassifier decides at submission time whether comment content is
// spam.
type SpamClassifier interface {
	IsSpam(content string) bool
}

// DefaultSpamKeywords is the denylist used when no other classifier is
// configured.
var DefaultSpamKeywords = []string{"spam", "scam", "fake", "click here", "buy now", "limited offer"}

// KeywordClassifier flags content containing any keyword as a
// case-insensitive substring.
type KeywordClassifier struct {
	keywords []string
}

func NewKeywordClassifier(keywords ...string) *KeywordClassifier {
	if len(keywords) == 0 {
		keywords = DefaultSpamKeywords
	}
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}
	return &KeywordClassifier{keywords: lowered}
}

func (k *KeywordClassifier) IsSpam(content string) bool {
	text := strings.ToLower(content)
	for _, kw := range k.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
