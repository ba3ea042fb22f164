package bbs

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/cipherclass/cipherclass/rsa"
)

func TestBlumPrimes(t *testing.T) {
	g, err := New(rand.Reader, 64)
	if err != nil {
		t.Fatalf("%v", err)
	}
	four := big.NewInt(4)
	if new(big.Int).Mod(g.p, four).Int64() != 3 {
		t.Fatalf("p = %v is not a Blum prime", g.p)
	}
	if new(big.Int).Mod(g.q, four).Int64() != 3 {
		t.Fatalf("q = %v is not a Blum prime", g.q)
	}
	if g.p.Cmp(g.q) == 0 {
		t.Fatalf("p and q must be distinct")
	}
	if new(big.Int).Mul(g.p, g.q).Cmp(g.n) != 0 {
		t.Fatalf("n != p*q")
	}
}

func TestReadFills(t *testing.T) {
	g, err := New(rand.Reader, 64)
	if err != nil {
		t.Fatalf("%v", err)
	}
	buf1 := make([]byte, 32)
	n, err := g.Read(buf1)
	if err != nil || n != 32 {
		t.Fatalf("Read = (%d, %v)", n, err)
	}
	buf2 := make([]byte, 32)
	g.Read(buf2)
	// consecutive outputs of a squaring generator must differ
	if bytes.Equal(buf1, buf2) {
		t.Fatalf("generator produced identical consecutive blocks")
	}
}

func TestAsKeyGenerationSource(t *testing.T) {
	g, err := New(rand.Reader, 128)
	if err != nil {
		t.Fatalf("%v", err)
	}
	priv, err := rsa.GenKey(g, 32)
	if err != nil {
		t.Fatalf("%v", err)
	}
	c, err := rsa.Encrypt(&priv.PublicKey, big.NewInt(12345))
	if err != nil {
		t.Fatalf("%v", err)
	}
	m, err := rsa.Decrypt(priv, c)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if m.Int64() != 12345 {
		t.Fatalf("round trip gave %v", m)
	}
}
