package polish_go

// EditDistance is the Levenshtein distance between s1 and s2, computed one
// row of the table at a time. Without replacements a mismatch costs a
// deletion plus an insertion. A non-zero maxEditDistance ends the walk as
// soon as a whole row exceeds it, returning maxEditDistance+1.
func EditDistance(s1 string, s2 string, allowReplacements bool, maxEditDistance int) int {
	prev := make([]int, len(s2)+1)
	cur := make([]int, len(s2)+1)
	for x := range prev {
		prev[x] = x
	}

	for y := 1; y <= len(s1); y++ {
		cur[0] = y
		best := y
		for x := 1; x <= len(s2); x++ {
			d := min(prev[x], cur[x-1]) + 1
			if s1[y-1] == s2[x-1] {
				d = min(d, prev[x-1])
			} else if allowReplacements {
				d = min(d, prev[x-1]+1)
			}
			cur[x] = d
			best = min(best, d)
		}
		if maxEditDistance != 0 && best > maxEditDistance {
			return maxEditDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(s2)]
}

// / SpellcheckString returns the closest word within an edit distance of 3,
// / or "" when nothing is close enough.
func SpellcheckString(text string, words ...string) string {
	const kAllowReplacements = true
	const kMaxValidEditDistance = 3

	min_distance := kMaxValidEditDistance + 1
	result := ""
	for _, word := range words {
		distance := EditDistance(word, text, kAllowReplacements, kMaxValidEditDistance)
		if distance < min_distance {
			min_distance = distance
			result = word
		}
	}
	return result
}
