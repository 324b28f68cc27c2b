package service

import "strings"

// WordsPerMinute is the reading speed the estimate is based on. Tests pin the
// exact thresholds, so keep any change here in sync with them.
const WordsPerMinute = 200

// EstimateReadingTime returns the estimated minutes needed to read the post,
// never less than 1. Words are whitespace-delimited tokens across every block
// heading and body span.
func EstimateReadingTime(post Post) int {
	words := 0
	for _, block := range post.Content {
		words += len(strings.Fields(block.Heading))
		for _, span := range block.Body {
			words += len(strings.Fields(span.Text))
		}
	}

	minutes := words / WordsPerMinute
	if words%WordsPerMinute != 0 {
		minutes++
	}
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
