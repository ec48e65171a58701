package components

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

const (
	slab16Size = 16 * 1024
	slab32Size = 2048
)

var initScheme sync.Once

// fuzzyTerms splits a query into lowercase terms. Every term must match.
func fuzzyTerms(query string) [][]rune {
	fields := strings.Fields(strings.ToLower(query))
	terms := make([][]rune, len(fields))
	for i, f := range fields {
		terms[i] = []rune(f)
	}
	return terms
}

// fuzzyScore matches all terms against text, case-insensitively and with
// Latin diacritics folded. The score is the sum of fzf's per-term scores;
// higher is better.
func fuzzyScore(text string, terms [][]rune, slab *util.Slab) (int, bool) {
	initScheme.Do(func() { algo.Init("default") })

	chars := util.ToChars([]byte(text))
	total := 0
	for _, term := range terms {
		res, _ := algo.FuzzyMatchV2(false, true, true, &chars, term, false, slab)
		if res.Start < 0 {
			return 0, false
		}
		total += res.Score
	}
	return total, true
}

// FuzzyFilter keeps the items whose text matches every space-separated term
// of query, best first. Equal scores prefer shorter text, then the original
// order. A blank query returns items unchanged.
func FuzzyFilter[T any](items []T, query string, getText func(T) string) []T {
	terms := fuzzyTerms(query)
	if len(terms) == 0 {
		return items
	}

	type ranked struct {
		item   T
		score  int
		length int
	}
	slab := util.MakeSlab(slab16Size, slab32Size)
	var matches []ranked
	for _, item := range items {
		text := getText(item)
		if score, ok := fuzzyScore(text, terms, slab); ok {
			matches = append(matches, ranked{item: item, score: score, length: len(text)})
		}
	}

	slices.SortStableFunc(matches, func(a, b ranked) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.length, b.length)
	})

	filtered := make([]T, len(matches))
	for i, m := range matches {
		filtered[i] = m.item
	}
	return filtered
}
