package similarity

const (
	winklerPrefixWeight = 0.1
	winklerMaxPrefix    = 4
)

// JaroWinkler returns the Jaro-Winkler similarity of two strings in [0,1].
// Characters are matched greedily within a window of
// floor(max(len)/2)-1 around each position; the Winkler boost rewards a
// shared prefix of up to four characters.
func JaroWinkler(a, b string) float64 {
	if a == b {
		return 1.0
	}
	ar := []rune(a)
	br := []rune(b)
	la, lb := len(ar), len(br)
	if la == 0 || lb == 0 {
		return 0.0
	}

	longest := la
	if lb > longest {
		longest = lb
	}
	window := longest/2 - 1
	if window < 0 {
		return 0.0
	}

	aMatched := make([]bool, la)
	bMatched := make([]bool, lb)
	matches := 0
	for i := 0; i < la; i++ {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi >= lb {
			hi = lb - 1
		}
		for j := lo; j <= hi; j++ {
			if bMatched[j] || ar[i] != br[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0.0
	}

	// Transpositions: positional mismatches between the matched
	// subsequences, later halved in the Jaro formula.
	transpositions := 0
	k := 0
	for i := 0; i < la; i++ {
		if !aMatched[i] {
			continue
		}
		for !bMatched[k] {
			k++
		}
		if ar[i] != br[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	jaro := (m/float64(la) + m/float64(lb) + (m-float64(transpositions)/2)/m) / 3

	prefix := 0
	for i := 0; i < la && i < lb && i < winklerMaxPrefix; i++ {
		if ar[i] != br[i] {
			break
		}
		prefix++
	}
	return jaro + float64(prefix)*winklerPrefixWeight*(1-jaro)
}
