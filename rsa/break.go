package rsa

import (
	"math/big"
)

// BreakResult is what an interceptor learns from a successful attack.
type BreakResult struct {
	P, Q *big.Int
	Key  *PrivateKey
	M    *big.Int // decrypted message; nil if no ciphertext was given
}

// Break attempts to recover the private key from public information alone:
// trial-division factor n, rebuild d from the factors, decrypt c. The search
// stops at min(sqrt(n), bound) so an honestly-sized modulus reports failure
// instead of spinning forever. c may be nil to only recover the key.
func Break(pub *PublicKey, c *big.Int, bound int64) (*BreakResult, error) {
	p := factorTrialDivision(pub.N, bound)
	if p == nil {
		return nil, ErrSearchExhausted
	}
	q := new(big.Int).Div(pub.N, p)
	priv, err := FromPrimes(p, q, pub.E)
	if err != nil {
		return nil, err
	}
	res := &BreakResult{P: p, Q: q, Key: priv}
	if c != nil {
		m, err := Decrypt(priv, c)
		if err != nil {
			return nil, err
		}
		res.M = m
	}
	return res, nil
}

// BreakPollard is Break with the Pollard p-1 factoring method instead of
// trial division. It wins when p-1 is smooth even if p itself is large.
func BreakPollard(pub *PublicKey, c *big.Int, bound int64) (*BreakResult, error) {
	p := FactorPollard(pub.N, bound)
	if p == nil {
		return nil, ErrSearchExhausted
	}
	q := new(big.Int).Div(pub.N, p)
	priv, err := FromPrimes(p, q, pub.E)
	if err != nil {
		return nil, err
	}
	res := &BreakResult{P: p, Q: q, Key: priv}
	if c != nil {
		m, err := Decrypt(priv, c)
		if err != nil {
			return nil, err
		}
		res.M = m
	}
	return res, nil
}

// factorTrialDivision returns the smallest prime factor of n found by
// checking divisors up to min(sqrt(n), bound), or nil.
func factorTrialDivision(n *big.Int, bound int64) *big.Int {
	d := new(big.Int)
	sq := new(big.Int)
	rem := new(big.Int)
	for i := int64(2); i <= bound; i++ {
		d.SetInt64(i)
		if sq.Mul(d, d); sq.Cmp(n) > 0 {
			return nil // no factor below sqrt(n): n is prime
		}
		if rem.Mod(n, d); rem.Sign() == 0 {
			return new(big.Int).Set(d)
		}
	}
	return nil
}

// FactorPollard runs the Pollard p-1 method with smoothness bound b:
// a = 2^(j!) mod n for j = 2..b, checking gcd(a-1, n) at each step.
// Returns a nontrivial factor of n, or nil if none is found.
func FactorPollard(n *big.Int, b int64) *big.Int {
	a := big.NewInt(2)
	j := new(big.Int)
	d := new(big.Int)
	am1 := new(big.Int)
	for i := int64(2); i <= b; i++ {
		j.SetInt64(i)
		a.Exp(a, j, n)
		am1.Sub(a, one)
		d.GCD(nil, nil, am1, n)
		if d.Cmp(one) > 0 && d.Cmp(n) < 0 {
			return new(big.Int).Set(d)
		}
	}
	return nil
}
