package bbs

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// Generator is a Blum-Blum-Shub pseudorandom bit generator. It implements
// io.Reader so it can stand in for crypto/rand.Reader in key generation:
// the randomness feeding the demonstration keys is then itself built from
// the same modular arithmetic the ciphers use.
//
// Not safe for concurrent use; every Read advances the internal state.
type Generator struct {
	p, q *big.Int // Blum primes, = 3 (mod 4)
	n    *big.Int // modulus p*q
	x    *big.Int // current state
}

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// New seeds a generator with two distinct Blum primes of about bits/2 bits
// each, and an initial state x0 = r^2 mod n for a random r coprime to n.
func New(random io.Reader, bits int) (*Generator, error) {
	if bits < 8 {
		return nil, errors.New("bbs: modulus must be at least 8 bits")
	}
	p, err := blumPrime(random, bits/2)
	if err != nil {
		return nil, err
	}
	q, err := blumPrime(random, bits-bits/2)
	if err != nil {
		return nil, err
	}
	for q.Cmp(p) == 0 {
		q, err = blumPrime(random, bits-bits/2)
		if err != nil {
			return nil, err
		}
	}
	n := new(big.Int).Mul(p, q)
	gcd := new(big.Int)
	var r *big.Int
	for {
		r, err = rand.Int(random, new(big.Int).Sub(n, two))
		if err != nil {
			return nil, err
		}
		r.Add(r, two) // 2 <= r <= n-1
		if gcd.GCD(nil, nil, r, n); gcd.Cmp(one) == 0 {
			break
		}
	}
	x := new(big.Int).Mul(r, r)
	x.Mod(x, n)
	return &Generator{p: p, q: q, n: n, x: x}, nil
}

// blumPrime draws primes until one = 3 (mod 4) comes up.
func blumPrime(random io.Reader, bits int) (*big.Int, error) {
	rem := new(big.Int)
	for {
		p, err := rand.Prime(random, bits)
		if err != nil {
			return nil, err
		}
		if rem.Mod(p, four); rem.Cmp(three) == 0 {
			return p, nil
		}
	}
}

// Bit advances the generator one squaring step and returns the parity bit
// of the new state.
func (g *Generator) Bit() uint {
	g.x.Mul(g.x, g.x)
	g.x.Mod(g.x, g.n)
	return g.x.Bit(0)
}

// Read fills buf with pseudorandom bytes, eight squaring steps per byte.
// It never fails and never returns a short read.
func (g *Generator) Read(buf []byte) (int, error) {
	for i := range buf {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | byte(g.Bit())
		}
		buf[i] = b
	}
	return len(buf), nil
}
