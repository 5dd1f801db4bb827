package bignum

import "errors"

// Normalize carries the 120-bit overflow of each limb of v into the next
// limb, walking low to high: for i = 0..len-1, split limb[i] into (lo,
// hi), set limb[i] = lo, and
// add hi into limb[i+1]; at the last position, hi must be zero — the
// caller is required to have sized v to cover the value's actual bit
// length. A nonzero final carry is reported as an error rather than
// silently truncated.
//
// Normalize does not mutate v; it returns a fresh WideVec.
func Normalize(v WideVec) (WideVec, error) {
	out := v.Clone()
	for i := 0; i < len(out); i++ {
		lo, hi, err := Split120(out[i])
		if err != nil {
			return nil, err
		}
		out[i] = lo
		if i+1 < len(out) {
			out.AddAt(i+1, hi)
		} else if !hi.IsZero() {
			return nil, errors.New("bignum: Normalize: nonzero carry out of the top limb, vector too short for its value")
		}
	}
	return out, nil
}
