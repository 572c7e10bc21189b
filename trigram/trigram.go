// Package trigram decomposes strings into overlapping 3-character windows
// for approximate similarity scoring.
package trigram

// Split returns every overlapping 3-character window of val in left-to-right
// order. Windows are taken over runes, not bytes, so multi-byte characters
// count as one. Strings shorter than three characters yield no trigrams.
func Split(val string) []string {
	runes := []rune(val)
	if len(runes) < 3 {
		return nil
	}
	out := make([]string, 0, len(runes)-2)
	for i := 0; i+3 <= len(runes); i++ {
		out = append(out, string(runes[i:i+3]))
	}
	return out
}

// Set returns the distinct trigrams of val.
func Set(val string) map[string]struct{} {
	grams := Split(val)
	if grams == nil {
		return nil
	}
	set := make(map[string]struct{}, len(grams))
	for _, g := range grams {
		set[g] = struct{}{}
	}
	return set
}
