package elgamal

import (
	"errors"
	"fmt"
	"math/big"
)

// bytesMaxSize gives the max message length in bytes for a modulus of the
// given bit length, one byte reserved for the length prefix.
func bytesMaxSize(bits int) int {
	maxsize := (bits-1)/8 - 1
	if maxsize > 255 {
		maxsize = 255
	}
	return maxsize
}

// PrepareMsg converts a []byte message into an integer below the modulus.
// plen = PublicKey.P.BitLen()
func PrepareMsg(msg []byte, plen int) (*big.Int, error) {
	maxsize := bytesMaxSize(plen)
	if len(msg) > maxsize {
		return nil, fmt.Errorf("elgamal: message size %d too long for %d bit modulus", len(msg), plen)
	}
	return new(big.Int).SetBytes(pad(msg, maxsize+1)), nil
}

// ExtractMsg reverses PrepareMsg on a fully decrypted value.
func ExtractMsg(m *big.Int) ([]byte, error) {
	return unPad(m.Bytes())
}

// pad prefixes the message length and zero-fills up to targetlen.
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
		return []byte{}, nil
	}
	msglen := int(b[0])
	if msglen > len(b)-1 {
		return nil, errors.New("elgamal: malformed padding")
	}
	return b[len(b)-msglen:], nil
}
