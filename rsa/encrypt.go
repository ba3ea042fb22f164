package rsa

import (
	"fmt"
	"math/big"
)

// Encrypt computes c = m^e mod n.
func Encrypt(pub *PublicKey, m *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, ErrMsgRange
	}
	return new(big.Int).Exp(m, pub.E, pub.N), nil
}

// Decrypt computes m = c^d mod n.
func Decrypt(priv *PrivateKey, c *big.Int) (*big.Int, error) {
	if c.Sign() < 0 || c.Cmp(priv.N) >= 0 {
		return nil, ErrMsgRange
	}
	return new(big.Int).Exp(c, priv.D, priv.N), nil
}

// DecryptCRT decrypts with two half-size exponentiations glued together by
// the chinese remainder theorem. It needs the prime factors, which a key
// reconstructed from (n, d) alone does not have.
func DecryptCRT(priv *PrivateKey, c *big.Int) (*big.Int, error) {
	if priv.P == nil || priv.Q == nil {
		return nil, fmt.Errorf("rsa: private key is missing its prime factors")
	}
	if c.Sign() < 0 || c.Cmp(priv.N) >= 0 {
		return nil, ErrMsgRange
	}
	dp := new(big.Int).Mod(priv.D, new(big.Int).Sub(priv.P, one))
	dq := new(big.Int).Mod(priv.D, new(big.Int).Sub(priv.Q, one))
	mp := new(big.Int).Exp(c, dp, priv.P)
	mq := new(big.Int).Exp(c, dq, priv.Q)
	qinv := new(big.Int).ModInverse(priv.Q, priv.P)
	if qinv == nil {
		return nil, ErrNoInverse
	}
	h := new(big.Int).Sub(mp, mq)
	h.Mul(h, qinv)
	h.Mod(h, priv.P)
	m := new(big.Int).Mul(h, priv.Q)
	m.Add(m, mq)
	m.Mod(m, priv.N)
	return m, nil
}
