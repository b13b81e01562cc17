// Package matching ranks existing records against free text read from an
// invoice and decides whether the best candidate can be used automatically.
package matching

import (
	"strings"
	"unicode/utf8"
)

// DefaultThreshold is the minimum similarity for a candidate to be accepted.
const DefaultThreshold = 0.6

// Kind tells which of the three outcomes a Result holds.
type Kind string

const (
	KindResolved   Kind = "resolved"
	KindAmbiguous  Kind = "ambiguous"
	KindUnresolved Kind = "unresolved"
)

// Result is the outcome of ranking candidates against a query: exactly one
// best item, a set of tied items for the user to choose from, or nothing
// above the threshold.
type Result[T any] struct {
	kind  Kind
	items []T
	score float64
}

func Resolved[T any](item T, score float64) Result[T] {
	return Result[T]{kind: KindResolved, items: []T{item}, score: score}
}

func Ambiguous[T any](items []T, score float64) Result[T] {
	return Result[T]{kind: KindAmbiguous, items: items, score: score}
}

func Unresolved[T any]() Result[T] {
	return Result[T]{kind: KindUnresolved}
}

func (r Result[T]) Kind() Kind {
	if r.kind == "" {
		return KindUnresolved
	}

	return r.kind
}

// Resolved returns the matched item when the result is resolved.
func (r Result[T]) Resolved() (T, bool) {
	if r.kind != KindResolved {
		var zero T
		return zero, false
	}

	return r.items[0], true
}

// Candidates returns the tied items of an ambiguous result, in candidate order.
func (r Result[T]) Candidates() []T {
	if r.kind != KindAmbiguous {
		return nil
	}

	return r.items
}

// Score is the similarity of the winning item(s). Zero when unresolved.
func (r Result[T]) Score() float64 {
	return r.score
}

// Levenshtein returns the edit distance between a and b, counted in runes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	rows := make([][]int, len(rb)+1)
	for i := range rows {
		rows[i] = make([]int, len(ra)+1)
		rows[i][0] = i
	}

	for j := range rows[0] {
		rows[0][j] = j
	}

	for i := 1; i <= len(rb); i++ {
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				rows[i][j] = rows[i-1][j-1]
				continue
			}

			rows[i][j] = 1 + min(rows[i-1][j-1], rows[i][j-1], rows[i-1][j])
		}
	}

	return rows[len(rb)][len(ra)]
}

// Similarity returns a case-insensitive score in [0,1] where 1 means equal.
func Similarity(a, b string) float64 {
	distance := Levenshtein(strings.ToLower(a), strings.ToLower(b))
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b), 1)

	return 1 - float64(distance)/float64(longest)
}

// FindBestMatch scores every candidate against query and keeps the items
// sharing the highest score. The candidate slice is never modified.
func FindBestMatch[T any](candidates []T, key func(T) string, query string, threshold float64) Result[T] {
	var (
		bestScore float64
		bestItems []T
	)

	for _, c := range candidates {
		score := Similarity(key(c), query)

		switch {
		case score > bestScore:
			bestScore = score
			bestItems = []T{c}
		case score == bestScore:
			bestItems = append(bestItems, c)
		}
	}

	if len(bestItems) == 0 || bestScore < threshold {
		return Unresolved[T]()
	}

	if len(bestItems) == 1 {
		return Resolved(bestItems[0], bestScore)
	}

	return Ambiguous(bestItems, bestScore)
}
