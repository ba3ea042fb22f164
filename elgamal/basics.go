package elgamal

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

type SystemKey struct { // shared group parameters
	P, G *big.Int
}

type PublicKey struct { // receiver's shareable key
	P, G, Y *big.Int
}

type PrivateKey struct { // receiver's secret key
	PublicKey
	X *big.Int // Y = G^X mod P. 1 <= X <= P-2
}

var (
	ErrNotPrime        = errors.New("elgamal: p is not prime")
	ErrBadGenerator    = errors.New("elgamal: g must satisfy 1 < g < p")
	ErrNoInverse       = errors.New("elgamal: no modular inverse exists")
	ErrMsgRange        = errors.New("elgamal: message out of range [0, p)")
	ErrCipherRange     = errors.New("elgamal: ciphertext out of range")
	ErrSearchExhausted = errors.New("elgamal: discrete log search exhausted")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// generate a number from 1 to max-1, inclusive
func randRange(random io.Reader, max *big.Int) (r *big.Int, err error) {
	r, err = rand.Int(random, new(big.Int).Sub(max, one))
	if err != nil {
		return
	}
	r.Add(r, one)
	return
}
