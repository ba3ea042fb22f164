package elgamal

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// GenSysKey generates group parameters to base the system off of: a safe
// prime p = 2q + 1 and a generator g of the full multiplicative group mod p.
// The safe prime keeps the generator check down to two exponentiations.
func GenSysKey(random io.Reader, bits int) (syskey *SystemKey, err error) {
	if bits < 5 {
		return nil, errors.New("elgamal: modulus must be at least 5 bits")
	}
	var p *big.Int
	q := new(big.Int)
	for {
		p, err = rand.Prime(random, bits)
		if err != nil {
			return
		}
		q.Sub(p, one)
		q.Rsh(q, 1) // q = (p-1)/2
		if q.ProbablyPrime(40) {
			break
		}
	}
	// g generates the whole group iff g^2 != 1 and g^q != 1 (mod p)
	tmp := new(big.Int)
	var g *big.Int
	for {
		g, err = randRange(random, p) // 1 <= g <= p-1
		if err != nil {
			return
		}
		if g.Cmp(two) < 0 {
			continue
		}
		if tmp.Exp(g, two, p); tmp.Cmp(one) == 0 {
			continue
		}
		if tmp.Exp(g, q, p); tmp.Cmp(one) == 0 {
			continue
		}
		break
	}
	syskey = &SystemKey{P: p, G: g}
	return
}

// FromParams builds system parameters from explicitly chosen p and g, which
// is how the manual parameter entry path works.
func FromParams(p, g *big.Int) (*SystemKey, error) {
	if p.Cmp(two) <= 0 || !p.ProbablyPrime(40) {
		return nil, ErrNotPrime
	}
	if g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return nil, ErrBadGenerator
	}
	return &SystemKey{P: new(big.Int).Set(p), G: new(big.Int).Set(g)}, nil
}

// GenUserKey generates a user's keypair for the given system parameters:
// random x in [1, p-2], y = g^x mod p.
func GenUserKey(random io.Reader, syskey *SystemKey) (privkey *PrivateKey, err error) {
	x, err := randRange(random, new(big.Int).Sub(syskey.P, one)) // 1 <= x <= p-2
	if err != nil {
		return
	}
	privkey = &PrivateKey{
		PublicKey: PublicKey{
			P: syskey.P, G: syskey.G,
			Y: new(big.Int).Exp(syskey.G, x, syskey.P),
		},
		X: x,
	}
	return
}
