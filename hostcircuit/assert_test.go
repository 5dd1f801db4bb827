package hostcircuit

import (
	"testing"

	"bignum.mleku.dev/nativefield"
)

func TestAssertMaxBitSize(t *testing.T) {
	testCases := []struct {
		name    string
		value   uint64
		bits    int
		wantErr bool
	}{
		{name: "fits_exactly", value: 0x7F, bits: 7, wantErr: false},
		{name: "too_large", value: 0xFF, bits: 7, wantErr: true},
		{name: "zero_always_fits", value: 0, bits: 0, wantErr: false},
		{name: "one_does_not_fit_zero_bits", value: 1, bits: 0, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := nativefield.FromUint64(tc.value)
			err := AssertMaxBitSize(f, tc.bits)
			if (err != nil) != tc.wantErr {
				t.Errorf("AssertMaxBitSize(%d, %d) error = %v, wantErr %v", tc.value, tc.bits, err, tc.wantErr)
			}
		})
	}
}
