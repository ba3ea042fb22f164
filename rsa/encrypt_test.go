package rsa

import (
	"crypto/rand"
	"math/big"
	"testing"
)

// the classic textbook parameters: p=61, q=53 give n=3233, phi=3120,
// and e=17 pairs with d=2753.
func textbookKey(t *testing.T) *PrivateKey {
	t.Helper()
	priv, err := FromPrimes(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	if err != nil {
		t.Fatalf("%v", err)
	}
	return priv
}

func TestTextbookVector(t *testing.T) {
	priv := textbookKey(t)
	if priv.N.Int64() != 3233 {
		t.Fatalf("n = %v, want 3233", priv.N)
	}
	if priv.D.Int64() != 2753 {
		t.Fatalf("d = %v, want 2753", priv.D)
	}
	c, err := Encrypt(&priv.PublicKey, big.NewInt(65))
	if err != nil {
		t.Fatalf("%v", err)
	}
	if c.Int64() != 2790 {
		t.Fatalf("encrypt(65) = %v, want 2790", c)
	}
	m, err := Decrypt(priv, c)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if m.Int64() != 65 {
		t.Fatalf("decrypt(2790) = %v, want 65", m)
	}
}

func TestRoundTripAllMessages(t *testing.T) {
	priv, err := FromPrimes(big.NewInt(11), big.NewInt(13), big.NewInt(7))
	if err != nil {
		t.Fatalf("%v", err)
	}
	// n = 143 is small enough to check every message in [0, n)
	for m := int64(0); m < priv.N.Int64(); m++ {
		c, err := Encrypt(&priv.PublicKey, big.NewInt(m))
		if err != nil {
			t.Fatalf("encrypt(%d): %v", m, err)
		}
		d, err := Decrypt(priv, c)
		if err != nil {
			t.Fatalf("decrypt(%d): %v", m, err)
		}
		if d.Int64() != m {
			t.Fatalf("round trip %d -> %v", m, d)
		}
	}
}

func TestGenKeyRoundTrip(t *testing.T) {
	for i := 0; i < 5; i++ {
		priv, err := GenKey(rand.Reader, 64)
		if err != nil {
			t.Fatalf("%v", err)
		}
		check := new(big.Int).Mul(priv.E, priv.D)
		check.Mod(check, new(big.Int).Mul(
			new(big.Int).Sub(priv.P, one),
			new(big.Int).Sub(priv.Q, one)))
		if check.Cmp(one) != 0 {
			t.Fatalf("e*d != 1 mod phi")
		}
		msg, err := PrepareMsg([]byte("squid"), priv.N.BitLen())
		if err != nil {
			t.Fatalf("%v", err)
		}
		c, err := Encrypt(&priv.PublicKey, msg)
		if err != nil {
			t.Fatalf("%v", err)
		}
		m, err := Decrypt(priv, c)
		if err != nil {
			t.Fatalf("%v", err)
		}
		out, err := ExtractMsg(m)
		if err != nil {
			t.Fatalf("%v", err)
		}
		if string(out) != "squid" {
			t.Fatalf("round trip gave %q", out)
		}
	}
}

func TestDecryptCRTMatchesDecrypt(t *testing.T) {
	priv := textbookKey(t)
	for _, m := range []int64{0, 1, 65, 1000, 3232} {
		c, err := Encrypt(&priv.PublicKey, big.NewInt(m))
		if err != nil {
			t.Fatalf("%v", err)
		}
		plain, err := Decrypt(priv, c)
		if err != nil {
			t.Fatalf("%v", err)
		}
		crt, err := DecryptCRT(priv, c)
		if err != nil {
			t.Fatalf("%v", err)
		}
		if plain.Cmp(crt) != 0 {
			t.Fatalf("m=%d: crt %v != plain %v", m, crt, plain)
		}
	}
}

func TestFromPrimesRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name    string
		p, q, e int64
		want    error
	}{
		{"composite p", 15, 53, 17, ErrNotPrime},
		{"composite q", 61, 51, 17, ErrNotPrime},
		{"equal primes", 61, 61, 17, ErrEqualPrimes},
		{"e too small", 61, 53, 1, ErrBadExponent},
		{"e too large", 61, 53, 4000, ErrBadExponent},
		{"e shares factor with phi", 61, 53, 6, ErrNotCoprime},
	}
	for _, c := range cases {
		_, err := FromPrimes(big.NewInt(c.p), big.NewInt(c.q), big.NewInt(c.e))
		if err != c.want {
			t.Fatalf("%s: err = %v, want %v", c.name, err, c.want)
		}
	}
}

func TestEncryptRange(t *testing.T) {
	priv := textbookKey(t)
	if _, err := Encrypt(&priv.PublicKey, big.NewInt(3233)); err != ErrMsgRange {
		t.Fatalf("err = %v, want %v", err, ErrMsgRange)
	}
	if _, err := Encrypt(&priv.PublicKey, big.NewInt(-1)); err != ErrMsgRange {
		t.Fatalf("err = %v, want %v", err, ErrMsgRange)
	}
	if _, err := Decrypt(priv, big.NewInt(5000)); err != ErrMsgRange {
		t.Fatalf("err = %v, want %v", err, ErrMsgRange)
	}
}

func TestPrepareMsgTooLong(t *testing.T) {
	if _, err := PrepareMsg([]byte("much too long for a tiny key"), 16); err == nil {
		t.Fatalf("expected error for oversized message")
	}
}
