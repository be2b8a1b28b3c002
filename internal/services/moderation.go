package services

import (
	"strings"

	"careerhub-backend/internal/apperror"
)

// DefaultProhibitedWords is the built-in moderation list, used when the
// configuration does not supply one.
var DefaultProhibitedWords = []string{"广告", "微信", "加我", "买卖", "代写", "代考", "赚钱", "兼职刷单", "招代理"}

// Moderator scans submitted text for prohibited words. It is side-effect
// free and is consulted synchronously before any post, comment, reply,
// message or offer is stored; a rejection aborts the write entirely.
type Moderator struct {
	words []string
}

// NewModerator creates a moderator with the given word list, falling back
// to the defaults when the list is empty.
func NewModerator(words []string) *Moderator {
	if len(words) == 0 {
		words = DefaultProhibitedWords
	}
	return &Moderator{words: words}
}

// Check returns a moderation rejection naming the first prohibited word
// found, in list order. Matching is case-sensitive substring matching.
func (m *Moderator) Check(text string) error {
	for _, word := range m.words {
		if strings.Contains(text, word) {
			return apperror.NewModerationRejected(word)
		}
	}
	return nil
}
