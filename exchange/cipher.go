package exchange

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/cipherclass/cipherclass/elgamal"
	"github.com/cipherclass/cipherclass/rsa"
)

var (
	ErrBadKey        = errors.New("exchange: malformed public key parts")
	ErrBadCiphertext = errors.New("exchange: malformed ciphertext parts")
)

// Cipher abstracts over the two demonstrated schemes so the roles do not
// care which one is running.
type Cipher interface {
	// Name identifies the scheme on the wire.
	Name() string

	// GenKey generates the receiver's keypair. bits sizes the modulus.
	GenKey(random io.Reader, bits int) (Keyholder, error)

	// Encrypter builds an encrypter from public key parts off the wire.
	Encrypter(keyParts [][]byte) (Encrypter, error)

	// Break attempts plaintext recovery from an intercepted public key and
	// ciphertext, searching at most bound steps.
	Break(keyParts, cipherParts [][]byte, bound int64) ([]byte, error)
}

// Keyholder is the receiver's side of a keypair.
type Keyholder interface {
	// PublicParts serializes the public key for the wire.
	PublicParts() [][]byte

	// Decrypt recovers the message bytes from ciphertext parts.
	Decrypt(cipherParts [][]byte) ([]byte, error)
}

// Encrypter is the sender's side: encrypt one message into ciphertext parts.
type Encrypter interface {
	Encrypt(random io.Reader, msg []byte) ([][]byte, error)
}

// ByName returns the cipher for a scheme name.
func ByName(name string) (Cipher, error) {
	switch name {
	case "rsa":
		return RSACipher{}, nil
	case "elgamal":
		return ElGamalCipher{}, nil
	}
	return nil, fmt.Errorf("exchange: unknown scheme %q", name)
}

// RSACipher puts textbook RSA behind the Cipher interface. Key parts are
// [n, e]; ciphertext parts are [c].
type RSACipher struct{}

func (RSACipher) Name() string { return "rsa" }

func (RSACipher) GenKey(random io.Reader, bits int) (Keyholder, error) {
	priv, err := rsa.GenKey(random, bits)
	if err != nil {
		return nil, err
	}
	return rsaKeyholder{priv}, nil
}

func (RSACipher) Encrypter(keyParts [][]byte) (Encrypter, error) {
	pub, err := rsaPubFromParts(keyParts)
	if err != nil {
		return nil, err
	}
	return rsaEncrypter{pub}, nil
}

func (RSACipher) Break(keyParts, cipherParts [][]byte, bound int64) ([]byte, error) {
	pub, err := rsaPubFromParts(keyParts)
	if err != nil {
		return nil, err
	}
	if len(cipherParts) != 1 {
		return nil, ErrBadCiphertext
	}
	c := new(big.Int).SetBytes(cipherParts[0])
	res, err := rsa.Break(pub, c, bound)
	if err != nil {
		return nil, err
	}
	return rsa.ExtractMsg(res.M)
}

func rsaPubFromParts(parts [][]byte) (*rsa.PublicKey, error) {
	if len(parts) != 2 {
		return nil, ErrBadKey
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(parts[0]),
		E: new(big.Int).SetBytes(parts[1]),
	}, nil
}

type rsaKeyholder struct {
	priv *rsa.PrivateKey
}

func (k rsaKeyholder) PublicParts() [][]byte {
	return [][]byte{k.priv.N.Bytes(), k.priv.E.Bytes()}
}

func (k rsaKeyholder) Decrypt(cipherParts [][]byte) ([]byte, error) {
	if len(cipherParts) != 1 {
		return nil, ErrBadCiphertext
	}
	c := new(big.Int).SetBytes(cipherParts[0])
	m, err := rsa.Decrypt(k.priv, c)
	if err != nil {
		return nil, err
	}
	return rsa.ExtractMsg(m)
}

type rsaEncrypter struct {
	pub *rsa.PublicKey
}

func (e rsaEncrypter) Encrypt(random io.Reader, msg []byte) ([][]byte, error) {
	m, err := rsa.PrepareMsg(msg, e.pub.N.BitLen())
	if err != nil {
		return nil, err
	}
	c, err := rsa.Encrypt(e.pub, m)
	if err != nil {
		return nil, err
	}
	return [][]byte{c.Bytes()}, nil
}

// ElGamalCipher puts textbook ElGamal behind the Cipher interface. Key
// parts are [p, g, y]; ciphertext parts are [c1, c2].
type ElGamalCipher struct{}

func (ElGamalCipher) Name() string { return "elgamal" }

func (ElGamalCipher) GenKey(random io.Reader, bits int) (Keyholder, error) {
	syskey, err := elgamal.GenSysKey(random, bits)
	if err != nil {
		return nil, err
	}
	priv, err := elgamal.GenUserKey(random, syskey)
	if err != nil {
		return nil, err
	}
	return elgamalKeyholder{priv}, nil
}

func (ElGamalCipher) Encrypter(keyParts [][]byte) (Encrypter, error) {
	pub, err := elgamalPubFromParts(keyParts)
	if err != nil {
		return nil, err
	}
	return elgamalEncrypter{pub}, nil
}

func (ElGamalCipher) Break(keyParts, cipherParts [][]byte, bound int64) ([]byte, error) {
	pub, err := elgamalPubFromParts(keyParts)
	if err != nil {
		return nil, err
	}
	if len(cipherParts) != 2 {
		return nil, ErrBadCiphertext
	}
	c1 := new(big.Int).SetBytes(cipherParts[0])
	c2 := new(big.Int).SetBytes(cipherParts[1])
	res, err := elgamal.Break(pub, c1, c2, bound)
	if err != nil {
		return nil, err
	}
	return elgamal.ExtractMsg(res.M)
}

func elgamalPubFromParts(parts [][]byte) (*elgamal.PublicKey, error) {
	if len(parts) != 3 {
		return nil, ErrBadKey
	}
	return &elgamal.PublicKey{
		P: new(big.Int).SetBytes(parts[0]),
		G: new(big.Int).SetBytes(parts[1]),
		Y: new(big.Int).SetBytes(parts[2]),
	}, nil
}

type elgamalKeyholder struct {
	priv *elgamal.PrivateKey
}

func (k elgamalKeyholder) PublicParts() [][]byte {
	return [][]byte{k.priv.P.Bytes(), k.priv.G.Bytes(), k.priv.Y.Bytes()}
}

func (k elgamalKeyholder) Decrypt(cipherParts [][]byte) ([]byte, error) {
	if len(cipherParts) != 2 {
		return nil, ErrBadCiphertext
	}
	c1 := new(big.Int).SetBytes(cipherParts[0])
	c2 := new(big.Int).SetBytes(cipherParts[1])
	m, err := elgamal.Decrypt(k.priv, c1, c2)
	if err != nil {
		return nil, err
	}
	return elgamal.ExtractMsg(m)
}

type elgamalEncrypter struct {
	pub *elgamal.PublicKey
}

func (e elgamalEncrypter) Encrypt(random io.Reader, msg []byte) ([][]byte, error) {
	m, err := elgamal.PrepareMsg(msg, e.pub.P.BitLen())
	if err != nil {
		return nil, err
	}
	c1, c2, err := elgamal.Encrypt(random, e.pub, m)
	if err != nil {
		return nil, err
	}
	return [][]byte{c1.Bytes(), c2.Bytes()}, nil
}
