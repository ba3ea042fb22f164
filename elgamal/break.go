package elgamal

import (
	"math/big"
)

// BreakResult is what an interceptor learns from a successful attack.
type BreakResult struct {
	X   *big.Int
	Key *PrivateKey
	M   *big.Int // decrypted message; nil if no ciphertext was given
}

// Break recovers the private key by brute-force discrete log: scan x upward
// from 0 until g^x = y (mod p), then decrypt (c1, c2) normally. The scan
// stops after min(p-2, bound) steps so an honestly-sized group reports
// failure instead of hanging. c1 and c2 may be nil to only recover the key.
func Break(pub *PublicKey, c1, c2 *big.Int, bound int64) (*BreakResult, error) {
	limit := new(big.Int).Sub(pub.P, two)
	if b := big.NewInt(bound); b.Cmp(limit) < 0 {
		limit = b
	}
	acc := big.NewInt(1) // g^x as x counts up
	x := new(big.Int)
	for ; x.Cmp(limit) <= 0; x.Add(x, one) {
		if acc.Cmp(pub.Y) == 0 {
			priv := &PrivateKey{PublicKey: *pub, X: new(big.Int).Set(x)}
			res := &BreakResult{X: priv.X, Key: priv}
			if c1 != nil && c2 != nil {
				m, err := Decrypt(priv, c1, c2)
				if err != nil {
					return nil, err
				}
				res.M = m
			}
			return res, nil
		}
		acc.Mul(acc, pub.G)
		acc.Mod(acc, pub.P)
	}
	return nil, ErrSearchExhausted
}
