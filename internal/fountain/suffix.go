package fountain

// MaxSuffixRepeats is the largest occurrence index representable by a 1-3
// letter bijective base-26 suffix: 26 + 26^2 + 26^3. A (scene, letter) pair
// repeated beyond this is a fatal error for the document.
const MaxSuffixRepeats = 26 + 26*26 + 26*26*26

// suffixFor converts a 0-based occurrence index into its disambiguation
// suffix. Index 0 (the first occurrence) gets the empty suffix; subsequent
// indexes advance through bijective base-26: A..Z, AA..ZZ, AAA..ZZZ.
// Returns false if the index exceeds MaxSuffixRepeats.
func suffixFor(index int) (string, bool) {
	if index == 0 {
		return "", true
	}
	if index > MaxSuffixRepeats {
		return "", false
	}

	// Bijective base-26: no zero digit, so borrow one before each division.
	n := index
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:]), true
}
