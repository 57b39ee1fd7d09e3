// Package similarity provides the string-distance primitives used by the
// answer evaluation engine: Levenshtein edit distance and Jaro-Winkler
// similarity. Both operate on Unicode code points and are case-sensitive;
// callers are expected to casefold beforehand.
package similarity

// Levenshtein computes edit distance (insertion, deletion, substitution
// cost 1) over code points.
func Levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n, m := len(ar), len(br)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			tmp := dp[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			ins := dp[j] + 1
			del := dp[j-1] + 1
			sub := prev + cost
			dp[j] = min3(ins, del, sub)
			prev = tmp
		}
	}
	return dp[m]
}

// Ratio derives a similarity in [0,1] from the edit distance:
// 1 - distance/max(len). Two empty strings are identical (1.0); one empty
// side against a non-empty one is 0.0.
func Ratio(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
