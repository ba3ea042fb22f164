package elgamal

import (
	"io"
	"math/big"
)

// Encrypt produces the ciphertext pair (c1, c2) = (g^k, m*y^k) mod p.
// The ephemeral k is drawn fresh on every call, in [1, p-2] and coprime to
// p-1, and is never reused or returned.
func Encrypt(random io.Reader, pub *PublicKey, m *big.Int) (c1, c2 *big.Int, err error) {
	if m.Sign() < 0 || m.Cmp(pub.P) >= 0 {
		return nil, nil, ErrMsgRange
	}
	pm1 := new(big.Int).Sub(pub.P, one)
	gcd := new(big.Int)
	var k *big.Int
	for {
		k, err = randRange(random, pm1) // 1 <= k <= p-2
		if err != nil {
			return nil, nil, err
		}
		if gcd.GCD(nil, nil, k, pm1); gcd.Cmp(one) == 0 {
			break
		}
	}
	c1, c2 = encryptWithK(pub, m, k)
	return c1, c2, nil
}

// encryptWithK is the deterministic core of Encrypt, split out so the
// textbook worked examples with a fixed k can be checked.
func encryptWithK(pub *PublicKey, m, k *big.Int) (c1, c2 *big.Int) {
	c1 = new(big.Int).Exp(pub.G, k, pub.P)
	c2 = new(big.Int).Exp(pub.Y, k, pub.P)
	c2.Mul(c2, m)
	c2.Mod(c2, pub.P)
	return c1, c2
}

// Decrypt recovers m from (c1, c2): s = c1^x, m = c2 * s^-1 mod p.
func Decrypt(priv *PrivateKey, c1, c2 *big.Int) (*big.Int, error) {
	if c1.Sign() <= 0 || c1.Cmp(priv.P) >= 0 {
		return nil, ErrCipherRange
	}
	if c2.Sign() < 0 || c2.Cmp(priv.P) >= 0 {
		return nil, ErrCipherRange
	}
	s := new(big.Int).Exp(c1, priv.X, priv.P)
	if s.ModInverse(s, priv.P) == nil {
		return nil, ErrNoInverse
	}
	m := new(big.Int).Mul(c2, s)
	m.Mod(m, priv.P)
	return m, nil
}
