package pattern

// Slim Teddy candidate search.
//
// Literals are spread over up to eight buckets. For each of the first
// fingerprintLen bytes of every literal, the bucket bit is set in a low-nibble
// and a high-nibble lookup table. A haystack position is a candidate when some
// bucket bit survives the AND of both tables over all fingerprint positions.
// Candidates are not verified here; Match does that.
//
// Reference: BurntSushi/aho-corasick, src/packed/teddy.
const (
	teddyMinPatterns  = 2
	teddyMaxPatterns  = automatonThreshold
	teddyMinLen       = 3
	teddyFingerprint  = 2
	teddyMaxBuckets   = 8
	maxFingerprintLen = 4
)

type teddy struct {
	fingerprintLen int
	loMasks        [maxFingerprintLen][16]byte
	hiMasks        [maxFingerprintLen][16]byte
}

// newTeddy returns nil if lits are too few, too many or too short for the
// fingerprint to pay off.
func newTeddy(lits []string) *teddy {
	if len(lits) < teddyMinPatterns || len(lits) > teddyMaxPatterns {
		return nil
	}
	minLen := len(lits[0])
	for _, lit := range lits {
		if len(lit) < teddyMinLen {
			return nil
		}
		minLen = min(minLen, len(lit))
	}

	t := &teddy{fingerprintLen: min(teddyFingerprint, minLen, maxFingerprintLen)}
	numBuckets := min(len(lits), teddyMaxBuckets)
	for id, lit := range lits {
		bucketBit := byte(1) << (id % numBuckets)
		for pos := 0; pos < t.fingerprintLen; pos++ {
			b := lit[pos]
			t.loMasks[pos][b&0x0F] |= bucketBit
			t.hiMasks[pos][b>>4] |= bucketBit
		}
	}
	return t
}

// candidate returns the first i < limit whose fingerprint matches some
// bucket, or -1. The caller guarantees limit+fingerprintLen-1 <= len(haystack).
func (t *teddy) candidate(haystack []byte, limit int) int {
	for i := 0; i < limit; i++ {
		mask := byte(0xFF)
		for pos := 0; pos < t.fingerprintLen && mask != 0; pos++ {
			b := haystack[i+pos]
			mask &= t.loMasks[pos][b&0x0F] & t.hiMasks[pos][b>>4]
		}
		if mask != 0 {
			return i
		}
	}
	return -1
}
