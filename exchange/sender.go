package exchange

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/cipherclass/cipherclass/network"
)

var ErrRPCFailed = errors.New("exchange: rpc failed")

// Sender fetches the receiver's public key and submits encrypted messages.
type Sender struct {
	Id uuid.UUID

	cipher  Cipher
	random  io.Reader
	cp      network.ConnectionProvider
	server  int
	session uuid.UUID
	enc     Encrypter
}

func NewSender(cipher Cipher, random io.Reader, cp network.ConnectionProvider, server int) *Sender {
	return &Sender{
		Id:      uuid.New(),
		cipher:  cipher,
		random:  random,
		cp:      cp,
		server:  server,
		session: uuid.New(),
	}
}

// FetchKey asks the receiver for its public key and prepares the encrypter.
// Must succeed before Send can be called.
func (s *Sender) FetchKey() error {
	args := GetPublicKeyArgs{Session: s.session}
	var reply GetPublicKeyReply
	if ok := s.cp.Call(s.server, "Receiver.GetPublicKey", &args, &reply); !ok {
		return ErrRPCFailed
	}
	if reply.Err != OK {
		return fmt.Errorf("exchange: get public key: %v", reply.Err)
	}
	if reply.Scheme != s.cipher.Name() {
		return fmt.Errorf("exchange: receiver runs %q, want %q", reply.Scheme, s.cipher.Name())
	}
	enc, err := s.cipher.Encrypter(reply.Key)
	if err != nil {
		return err
	}
	s.enc = enc
	s.logf("got %v public key from server %d", reply.Scheme, s.server)
	return nil
}

// Send encrypts msg under the fetched key and submits it to the receiver.
func (s *Sender) Send(msg string) error {
	if s.enc == nil {
		return errors.New("exchange: no public key fetched")
	}
	cipher, err := s.enc.Encrypt(s.random, []byte(msg))
	if err != nil {
		return err
	}
	args := SubmitCiphertextArgs{
		Session: s.session,
		From:    s.Id,
		Cipher:  cipher,
	}
	var reply SubmitCiphertextReply
	if ok := s.cp.Call(s.server, "Receiver.SubmitCiphertext", &args, &reply); !ok {
		return ErrRPCFailed
	}
	if reply.Err != OK {
		return fmt.Errorf("exchange: submit ciphertext: %v", reply.Err)
	}
	s.logf("sent %d-byte message", len(msg))
	return nil
}

func (s *Sender) logf(format string, a ...interface{}) {
	DPrintf("[sender %v] "+format, append([]interface{}{s.Id}, a...)...)
}
