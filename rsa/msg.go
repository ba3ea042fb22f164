package rsa

import (
	"errors"
	"fmt"
	"math/big"
)

// bytesMaxSize gives the max message length in bytes for a modulus of the
// given bit length. The padded message must have strictly fewer bits than n,
// and one byte is reserved for the length prefix.
func bytesMaxSize(bits int) int {
	maxsize := (bits-1)/8 - 1
	if maxsize > 255 {
		maxsize = 255 // length prefix is a single byte
	}
	return maxsize
}

// PrepareMsg converts a []byte message into an integer below the modulus.
// nlen = PublicKey.N.BitLen()
func PrepareMsg(msg []byte, nlen int) (*big.Int, error) {
	maxsize := bytesMaxSize(nlen)
	if len(msg) > maxsize {
		return nil, fmt.Errorf("rsa: message size %d too long for %d bit modulus", len(msg), nlen)
	}
	return new(big.Int).SetBytes(pad(msg, maxsize+1)), nil
}

// ExtractMsg reverses PrepareMsg on a fully decrypted value.
func ExtractMsg(m *big.Int) ([]byte, error) {
	return unPad(m.Bytes())
}

// pad prefixes the message length and zero-fills up to targetlen.
// the length byte is nonzero for nonempty messages, so the big.Int
// round trip cannot strip it.
func pad(msg []byte, targetlen int) []byte {
	if len(msg) >= targetlen {
		panic("message too long to pad")
	}
	padded := make([]byte, targetlen)
	padded[0] = byte(len(msg))
	copy(padded[targetlen-len(msg):], msg)
	return padded
}

// unPad undoes pad
func unPad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return []byte{}, nil // empty message: everything was stripped
	}
	msglen := int(b[0])
	if msglen > len(b)-1 {
		return nil, errors.New("rsa: malformed padding")
	}
	return b[len(b)-msglen:], nil
}
