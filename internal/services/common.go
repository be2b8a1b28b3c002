package services

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const contentIDLength = 8

// newContentID generates a short unique ID for content entities (posts,
// comments, messages, notifications, offers). Collision probability is
// negligible for the volumes a single process holds in memory.
func newContentID() string {
	id, err := gonanoid.New(contentIDLength)
	if err != nil {
		// Only fails if the OS entropy source is broken.
		panic(err)
	}
	return id
}

// truncateRunes shortens s to at most n characters, counting runes so
// multi-byte text is never split.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
