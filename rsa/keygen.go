package rsa

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// GenKey generates a keypair with two random primes of about bits/2 bits
// each, so N has about the requested size. If e = 17 does not work out for
// the drawn primes, fresh primes are drawn.
func GenKey(random io.Reader, bits int) (privkey *PrivateKey, err error) {
	if bits < 8 {
		return nil, errors.New("rsa: modulus must be at least 8 bits")
	}
	e := big.NewInt(defaultE)
	for {
		var p, q *big.Int
		p, err = rand.Prime(random, bits/2)
		if err != nil {
			return
		}
		q, err = rand.Prime(random, bits-bits/2)
		if err != nil {
			return
		}
		if p.Cmp(q) == 0 {
			continue
		}
		privkey, err = FromPrimes(p, q, e)
		if err == nil {
			return
		}
		// e not usable for these primes; draw again
	}
}

// FromPrimes builds a keypair from explicitly chosen parameters, which is
// how the manual key entry path works. The inputs are checked so that a
// typo surfaces as an error instead of a silently broken key.
func FromPrimes(p, q, e *big.Int) (*PrivateKey, error) {
	if !p.ProbablyPrime(40) || !q.ProbablyPrime(40) {
		return nil, ErrNotPrime
	}
	if p.Cmp(q) == 0 {
		return nil, ErrEqualPrimes
	}
	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Sub(p, one)
	phi.Mul(phi, new(big.Int).Sub(q, one))
	if e.Cmp(one) <= 0 || e.Cmp(phi) >= 0 {
		return nil, ErrBadExponent
	}
	gcd := new(big.Int).GCD(nil, nil, e, phi)
	if gcd.Cmp(one) != 0 {
		return nil, ErrNotCoprime
	}
	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		return nil, ErrNoInverse
	}
	return &PrivateKey{
		PublicKey: PublicKey{N: n, E: new(big.Int).Set(e)},
		D:         d,
		P:         new(big.Int).Set(p),
		Q:         new(big.Int).Set(q),
	}, nil
}
