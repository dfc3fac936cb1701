package tips

import (
	"hash/fnv"
	"math/bits"
	"strings"
)

// fingerprint computes a 64-bit similarity hash of the text: each
// case-folded whitespace token votes its FNV-64a bits into a signed vector,
// and the vector's signs form the fingerprint. Texts that share most of
// their words land within a few bits of each other.
func fingerprint(text string) uint64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	var vector [64]int
	for _, word := range words {
		h := fnv.New64a()
		h.Write([]byte(word))
		sum := h.Sum64()

		for i := 0; i < 64; i++ {
			if sum&(1<<uint(i)) != 0 {
				vector[i]++
			} else {
				vector[i]--
			}
		}
	}

	var fp uint64
	for i := 0; i < 64; i++ {
		if vector[i] > 0 {
			fp |= 1 << uint(i)
		}
	}
	return fp
}

// hamming returns the number of differing bits between two fingerprints.
func hamming(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}
