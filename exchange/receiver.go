package exchange

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
)

// Receiver is the keyholding party. It generates a keypair, hands out the
// public key over rpc, and decrypts ciphertexts submitted to it.
type Receiver struct {
	Id uuid.UUID

	mu   sync.Mutex
	dead int32

	cipher   Cipher
	key      Keyholder
	received []string
}

func NewReceiver(cipher Cipher, random io.Reader, bits int) (*Receiver, error) {
	key, err := cipher.GenKey(random, bits)
	if err != nil {
		return nil, err
	}
	r := &Receiver{
		Id:     uuid.New(),
		cipher: cipher,
		key:    key,
	}
	r.logf("up with %v key %v", cipher.Name(), spew.Sdump(key.PublicParts()))
	return r, nil
}

// GetPublicKey hands the scheme name and public key parts to the caller.
func (r *Receiver) GetPublicKey(ctx context.Context, args *GetPublicKeyArgs, reply *GetPublicKeyReply) error {
	if r.killed() {
		reply.Err = ErrKilled
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	reply.Scheme = r.cipher.Name()
	reply.Key = copyParts(r.key.PublicParts())
	reply.Err = OK
	r.logf("gave out public key for session %v", args.Session)
	return nil
}

// SubmitCiphertext decrypts a submitted ciphertext and records the message.
func (r *Receiver) SubmitCiphertext(ctx context.Context, args *SubmitCiphertextArgs, reply *SubmitCiphertextReply) error {
	if r.killed() {
		reply.Err = ErrKilled
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, err := r.key.Decrypt(args.Cipher)
	if err != nil {
		r.logf("failed to decrypt from %v: %v", args.From, err)
		reply.Err = ErrDecryptFail
		return nil
	}
	r.received = append(r.received, string(msg))
	r.logf("received %q from %v", string(msg), args.From)
	reply.Err = OK
	return nil
}

// Dispatch routes an in-process rpc to the right handler.
func (r *Receiver) Dispatch(svcMeth string, args interface{}, reply interface{}) bool {
	switch svcMeth {
	case "Receiver.GetPublicKey":
		a, aok := args.(*GetPublicKeyArgs)
		rep, rok := reply.(*GetPublicKeyReply)
		if !aok || !rok {
			return false
		}
		return r.GetPublicKey(context.Background(), a, rep) == nil
	case "Receiver.SubmitCiphertext":
		a, aok := args.(*SubmitCiphertextArgs)
		rep, rok := reply.(*SubmitCiphertextReply)
		if !aok || !rok {
			return false
		}
		return r.SubmitCiphertext(context.Background(), a, rep) == nil
	}
	return false
}

// Received returns the messages decrypted so far, oldest first.
func (r *Receiver) Received() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.received))
	copy(out, r.received)
	return out
}

func (r *Receiver) Kill() {
	atomic.StoreInt32(&r.dead, 1)
}

func (r *Receiver) killed() bool {
	return atomic.LoadInt32(&r.dead) == 1
}

func (r *Receiver) logf(format string, a ...interface{}) {
	DPrintf("[receiver %v] "+format, append([]interface{}{r.Id}, a...)...)
}
