package elgamal

import (
	"crypto/rand"
	"math/big"
	"testing"
)

// the classic worked example: p=23, g=5, x=6 gives y = 5^6 mod 23 = 8.
func textbookKey(t *testing.T) *PrivateKey {
	t.Helper()
	syskey, err := FromParams(big.NewInt(23), big.NewInt(5))
	if err != nil {
		t.Fatalf("%v", err)
	}
	priv := &PrivateKey{
		PublicKey: PublicKey{
			P: syskey.P, G: syskey.G,
			Y: new(big.Int).Exp(syskey.G, big.NewInt(6), syskey.P),
		},
		X: big.NewInt(6),
	}
	if priv.Y.Int64() != 8 {
		t.Fatalf("y = %v, want 8", priv.Y)
	}
	return priv
}

func TestTextbookVector(t *testing.T) {
	priv := textbookKey(t)
	c1, c2 := encryptWithK(&priv.PublicKey, big.NewInt(10), big.NewInt(3))
	if c1.Int64() != 10 || c2.Int64() != 14 {
		t.Fatalf("(c1, c2) = (%v, %v), want (10, 14)", c1, c2)
	}
	m, err := Decrypt(priv, c1, c2)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if m.Int64() != 10 {
		t.Fatalf("decrypted %v, want 10", m)
	}
}

func TestRoundTripAllMessages(t *testing.T) {
	priv := textbookKey(t)
	for m := int64(0); m < 23; m++ {
		c1, c2, err := Encrypt(rand.Reader, &priv.PublicKey, big.NewInt(m))
		if err != nil {
			t.Fatalf("encrypt(%d): %v", m, err)
		}
		d, err := Decrypt(priv, c1, c2)
		if err != nil {
			t.Fatalf("decrypt(%d): %v", m, err)
		}
		if d.Int64() != m {
			t.Fatalf("round trip %d -> %v", m, d)
		}
	}
}

func TestGeneratedKeysRoundTrip(t *testing.T) {
	syskey, err := GenSysKey(rand.Reader, 64)
	if err != nil {
		t.Fatalf("%v", err)
	}
	priv, err := GenUserKey(rand.Reader, syskey)
	if err != nil {
		t.Fatalf("%v", err)
	}
	msg, err := PrepareMsg([]byte("squid"), syskey.P.BitLen())
	if err != nil {
		t.Fatalf("%v", err)
	}
	c1, c2, err := Encrypt(rand.Reader, &priv.PublicKey, msg)
	if err != nil {
		t.Fatalf("%v", err)
	}
	d, err := Decrypt(priv, c1, c2)
	if err != nil {
		t.Fatalf("%v", err)
	}
	out, err := ExtractMsg(d)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if string(out) != "squid" {
		t.Fatalf("round trip gave %q", out)
	}
}

func TestGenSysKeyGenerator(t *testing.T) {
	syskey, err := GenSysKey(rand.Reader, 16)
	if err != nil {
		t.Fatalf("%v", err)
	}
	// p = 2q+1, so g generates the group iff g^2 != 1 and g^q != 1
	q := new(big.Int).Sub(syskey.P, one)
	q.Rsh(q, 1)
	if !q.ProbablyPrime(40) {
		t.Fatalf("p = %v is not a safe prime", syskey.P)
	}
	if new(big.Int).Exp(syskey.G, two, syskey.P).Cmp(one) == 0 {
		t.Fatalf("g has order 2")
	}
	if new(big.Int).Exp(syskey.G, q, syskey.P).Cmp(one) == 0 {
		t.Fatalf("g has order q")
	}
}

func TestFromParamsRejectsBadParameters(t *testing.T) {
	if _, err := FromParams(big.NewInt(21), big.NewInt(2)); err != ErrNotPrime {
		t.Fatalf("err = %v, want %v", err, ErrNotPrime)
	}
	if _, err := FromParams(big.NewInt(23), big.NewInt(1)); err != ErrBadGenerator {
		t.Fatalf("err = %v, want %v", err, ErrBadGenerator)
	}
	if _, err := FromParams(big.NewInt(23), big.NewInt(23)); err != ErrBadGenerator {
		t.Fatalf("err = %v, want %v", err, ErrBadGenerator)
	}
}

func TestEncryptRange(t *testing.T) {
	priv := textbookKey(t)
	if _, _, err := Encrypt(rand.Reader, &priv.PublicKey, big.NewInt(23)); err != ErrMsgRange {
		t.Fatalf("err = %v, want %v", err, ErrMsgRange)
	}
	if _, err := Decrypt(priv, big.NewInt(0), big.NewInt(5)); err != ErrCipherRange {
		t.Fatalf("err = %v, want %v", err, ErrCipherRange)
	}
}
