package exchange

import (
	"github.com/google/uuid"
)

type Err string

const (
	OK              Err = "OK"
	ErrKilled       Err = "ErrKilled"
	ErrDecryptFail  Err = "ErrDecryptFail"
	ErrNoSuchMethod Err = "ErrNoSuchMethod"
)

// GetPublicKeyArgs asks the receiver for its public key.
// Key material crosses the wire as byte slice parts; *big.Int cannot be
// sent over rpc.
type GetPublicKeyArgs struct {
	Session uuid.UUID
}

type GetPublicKeyReply struct {
	Scheme string
	Key    [][]byte
	Err    Err
}

// SubmitCiphertextArgs delivers an encrypted message to the receiver.
type SubmitCiphertextArgs struct {
	Session uuid.UUID
	From    uuid.UUID
	Cipher  [][]byte
}

type SubmitCiphertextReply struct {
	Err Err
}

func copyParts(parts [][]byte) [][]byte {
	out := make([][]byte, len(parts))
	for i, p := range parts {
		out[i] = make([]byte, len(p))
		copy(out[i], p)
	}
	return out
}
