package exchange

import (
	crand "crypto/rand"
	"errors"
	"testing"

	"github.com/cipherclass/cipherclass/network"
	"github.com/cipherclass/cipherclass/rsa"
)

// runExchange wires a receiver, a sender, and a wiretapping interceptor
// over an in-process connection provider, then sends msg.
func runExchange(t *testing.T, cipher Cipher, bits int, msg string) (*Receiver, *Interceptor) {
	t.Helper()

	receiver, err := NewReceiver(cipher, crand.Reader, bits)
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	cp := network.NewLocal(receiver)
	ic := NewInterceptor()
	cp.AddWiretap(ic)

	sender := NewSender(cipher, crand.Reader, cp, 0)
	if err := sender.FetchKey(); err != nil {
		t.Fatalf("FetchKey: %v", err)
	}
	if err := sender.Send(msg); err != nil {
		t.Fatalf("Send: %v", err)
	}
	return receiver, ic
}

func TestExchangeRSA(t *testing.T) {
	receiver, ic := runExchange(t, RSACipher{}, 32, "hi")

	got := receiver.Received()
	if len(got) != 1 || got[0] != "hi" {
		t.Fatalf("receiver got %v", got)
	}
	if ic.Captured() != 1 {
		t.Fatalf("interceptor captured %d ciphertexts", ic.Captured())
	}

	msgs, err := ic.Break(1 << 17)
	if err != nil {
		t.Fatalf("Break: %v", err)
	}
	if len(msgs) != 1 || msgs[0] != "hi" {
		t.Fatalf("interceptor recovered %v", msgs)
	}
}

func TestExchangeElGamal(t *testing.T) {
	receiver, ic := runExchange(t, ElGamalCipher{}, 18, "A")

	got := receiver.Received()
	if len(got) != 1 || got[0] != "A" {
		t.Fatalf("receiver got %v", got)
	}

	msgs, err := ic.Break(1 << 18)
	if err != nil {
		t.Fatalf("Break: %v", err)
	}
	if len(msgs) != 1 || msgs[0] != "A" {
		t.Fatalf("interceptor recovered %v", msgs)
	}
}

func TestInterceptorBoundTooSmall(t *testing.T) {
	_, ic := runExchange(t, RSACipher{}, 32, "hi")

	if _, err := ic.Break(2); !errors.Is(err, rsa.ErrSearchExhausted) {
		t.Fatalf("Break with tiny bound: err = %v", err)
	}
}

func TestInterceptorNothingCaptured(t *testing.T) {
	ic := NewInterceptor()
	if _, err := ic.Break(100); !errors.Is(err, ErrNothingCaptured) {
		t.Fatalf("err = %v", err)
	}
}

func TestConfigCipher(t *testing.T) {
	cfg := Config{Scheme: "elgamal", Bits: 18, BreakBound: 100}
	c, err := cfg.Cipher()
	if err != nil {
		t.Fatalf("%v", err)
	}
	if c.Name() != "elgamal" {
		t.Fatalf("cipher = %q", c.Name())
	}
	if _, err := (Config{Scheme: "nope"}).Cipher(); err == nil {
		t.Fatalf("unknown scheme should fail")
	}
}

func TestSenderSchemeMismatch(t *testing.T) {
	receiver, err := NewReceiver(RSACipher{}, crand.Reader, 32)
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	cp := network.NewLocal(receiver)

	sender := NewSender(ElGamalCipher{}, crand.Reader, cp, 0)
	if err := sender.FetchKey(); err == nil {
		t.Fatalf("FetchKey should reject a receiver running a different scheme")
	}
}

func TestKilledReceiverRefuses(t *testing.T) {
	receiver, err := NewReceiver(RSACipher{}, crand.Reader, 32)
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	cp := network.NewLocal(receiver)
	receiver.Kill()

	sender := NewSender(RSACipher{}, crand.Reader, cp, 0)
	if err := sender.FetchKey(); err == nil {
		t.Fatalf("FetchKey should fail against a killed receiver")
	}
}
