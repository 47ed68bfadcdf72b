package service

import (
	"regexp"
	"strings"

	"lingua_backend/internal/model"
)

// TranslationSimilarityThreshold is the minimum similarity ratio for a
// free-form translation attempt to count as correct.
const TranslationSimilarityThreshold = 0.8

var punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EvaluatePlacementAnswer checks a placement item answer. Every placement
// item type uses exact matching after normalization, including translation
// items; the lenient paths below apply to standalone tasks only. Unknown
// item types never match.
func EvaluatePlacementAnswer(itemType model.PlacementItemType, userAnswer, correctAnswer string) bool {
	user := normalizeAnswer(userAnswer)
	if user == "" {
		return false
	}
	switch itemType {
	case model.ItemMultipleChoice, model.ItemCloze, model.ItemTranslation:
		return user == normalizeAnswer(correctAnswer)
	default:
		return false
	}
}

// EvaluateTaskAnswer checks a task attempt answer using the per-type rules:
// multiple choice is exact, fill-blank ignores punctuation, translation
// accepts anything within the similarity threshold.
func EvaluateTaskAnswer(taskType model.TaskType, userAnswer, correctAnswer string) bool {
	user := normalizeAnswer(userAnswer)
	if user == "" {
		return false
	}
	correct := normalizeAnswer(correctAnswer)

	switch taskType {
	case model.TaskMultipleChoice:
		return user == correct
	case model.TaskFillBlank:
		user = punctuationPattern.ReplaceAllString(user, "")
		correct = punctuationPattern.ReplaceAllString(correct, "")
		return user == correct
	case model.TaskTranslation:
		return SimilarityRatio(user, correct) >= TranslationSimilarityThreshold
	default:
		return false
	}
}

// SimilarityRatio returns 2*M/T where M is the total length of the matching
// blocks between a and b and T is the combined length, computed over runes.
// Empty-vs-empty is 1.0; empty-vs-anything is 0.0.
func SimilarityRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchingBlocksLength(ra, rb)
	return 2.0 * float64(matched) / float64(total)
}

// matchingBlocksLength sums the lengths of the longest-matching-block
// decomposition: find the longest common block, then recurse on the pieces
// to its left and right.
func matchingBlocksLength(a, b []rune) int {
	type span struct {
		aLo, aHi, bLo, bHi int
	}
	matched := 0
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, k := longestMatch(a, b, s.aLo, s.aHi, s.bLo, s.bHi)
		if k == 0 {
			continue
		}
		matched += k
		queue = append(queue,
			span{s.aLo, i, s.bLo, j},
			span{i + k, s.aHi, j + k, s.bHi},
		)
	}
	return matched
}

// longestMatch finds the longest block a[i:i+k] == b[j:j+k] within the given
// window, preferring the earliest block in a, then in b, on ties.
func longestMatch(a, b []rune, aLo, aHi, bLo, bHi int) (bestI, bestJ, bestK int) {
	// Index positions of each rune in the b window.
	b2j := make(map[rune][]int, bHi-bLo)
	for j := bLo; j < bHi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	bestI, bestJ = aLo, bLo
	// j2len[j] holds the length of the match ending at a[i-1], b[j-1].
	j2len := make(map[int]int)
	for i := aLo; i < aHi; i++ {
		newJ2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > bestK {
				bestI, bestJ, bestK = i-k+1, j-k+1, k
			}
		}
		j2len = newJ2len
	}
	return bestI, bestJ, bestK
}
