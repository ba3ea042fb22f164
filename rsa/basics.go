package rsa

import (
	"errors"
	"math/big"
)

// default public exponent for generated keys. small enough that
// gcd(e, phi) can fail on demonstration-sized primes, which GenKey
// handles by drawing fresh primes.
const defaultE = 17

type PublicKey struct { // receiver's shareable key
	N, E *big.Int
}

type PrivateKey struct { // receiver's secret key
	PublicKey
	D    *big.Int // E*D = 1 (mod phi(N))
	P, Q *big.Int // prime factors of N, kept for CRT decryption
}

var (
	ErrNotPrime        = errors.New("rsa: parameter is not prime")
	ErrEqualPrimes     = errors.New("rsa: p and q must be distinct")
	ErrBadExponent     = errors.New("rsa: e must satisfy 1 < e < phi(n)")
	ErrNotCoprime      = errors.New("rsa: e is not coprime to phi(n)")
	ErrNoInverse       = errors.New("rsa: no modular inverse exists")
	ErrMsgRange        = errors.New("rsa: value out of range [0, n)")
	ErrSearchExhausted = errors.New("rsa: factor search exhausted")
)

var one = big.NewInt(1)
