package tendermint

import (
	cmtmath "github.com/cometbft/cometbft/libs/math"
)

// Fraction is the client state's trust threshold (spec §3 "trust threshold
// fraction"), kept as two plain uint64s rather than a decimal type: exact
// fractions (e.g. 1/3, 2/3) are all this client ever needs, and native
// integers avoid dragging in an arbitrary-precision dependency the rest of
// the engine has no other use for (see DESIGN.md).
type Fraction struct {
	Numerator   uint64
	Denominator uint64
}

// DefaultTrustLevel is the canonical 1/3 trust threshold used by the
// Tendermint light client algorithm.
var DefaultTrustLevel = Fraction{Numerator: 1, Denominator: 3}

// ToTendermint converts to cometbft's own fraction type, which is what the
// underlying light client verifier consumes.
func (f Fraction) ToTendermint() cmtmath.Fraction {
	return cmtmath.Fraction{Numerator: int64(f.Numerator), Denominator: int64(f.Denominator)}
}

// IsValid reports whether the fraction describes a threshold in (0, 1].
func (f Fraction) IsValid() bool {
	if f.Denominator == 0 {
		return false
	}
	return f.Numerator > 0 && f.Numerator <= f.Denominator
}
