package exchange

import (
	"errors"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
)

var ErrNothingCaptured = errors.New("exchange: nothing captured yet")

// Capture is one ciphertext lifted off the wire.
type Capture struct {
	Session uuid.UUID
	From    uuid.UUID
	Cipher  [][]byte
}

// Interceptor passively watches rpc traffic. Everything it learns comes
// from the wire: the public key from GetPublicKey replies and ciphertexts
// from SubmitCiphertext calls. It never sees a private key.
type Interceptor struct {
	mu sync.Mutex

	scheme   string
	key      [][]byte
	captures []Capture
}

func NewInterceptor() *Interceptor {
	return &Interceptor{}
}

// Observe implements network.Wiretap.
func (ic *Interceptor) Observe(server int, svcMeth string, args interface{}, reply interface{}) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	switch svcMeth {
	case "Receiver.GetPublicKey":
		rep, ok := reply.(*GetPublicKeyReply)
		if !ok || rep.Err != OK {
			return
		}
		ic.scheme = rep.Scheme
		ic.key = copyParts(rep.Key)
		ic.logf("captured %v public key %v", rep.Scheme, spew.Sdump(ic.key))
	case "Receiver.SubmitCiphertext":
		a, ok := args.(*SubmitCiphertextArgs)
		if !ok {
			return
		}
		ic.captures = append(ic.captures, Capture{
			Session: a.Session,
			From:    a.From,
			Cipher:  copyParts(a.Cipher),
		})
		ic.logf("captured ciphertext #%d in session %v", len(ic.captures), a.Session)
	}
}

// Captured reports how many ciphertexts have been seen.
func (ic *Interceptor) Captured() int {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return len(ic.captures)
}

// Break attacks every captured ciphertext with the captured public key,
// searching at most bound steps per ciphertext. Messages come back in
// capture order.
func (ic *Interceptor) Break(bound int64) ([]string, error) {
	ic.mu.Lock()
	scheme := ic.scheme
	key := copyParts(ic.key)
	captures := make([]Capture, len(ic.captures))
	copy(captures, ic.captures)
	ic.mu.Unlock()

	if key == nil || len(captures) == 0 {
		return nil, ErrNothingCaptured
	}
	cipher, err := ByName(scheme)
	if err != nil {
		return nil, err
	}
	var msgs []string
	for i, cpt := range captures {
		msg, err := cipher.Break(key, cpt.Cipher, bound)
		if err != nil {
			return nil, err
		}
		ic.logf("broke ciphertext #%d (session %v): %q", i+1, cpt.Session, string(msg))
		msgs = append(msgs, string(msg))
	}
	return msgs, nil
}

func (ic *Interceptor) logf(format string, a ...interface{}) {
	DPrintf("[interceptor] "+format, a...)
}
