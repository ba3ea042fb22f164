package network

import (
	"testing"
)

type echoArgs struct {
	S string
}

type echoReply struct {
	S string
}

type echoService struct{}

func (echoService) Dispatch(svcMeth string, args interface{}, reply interface{}) bool {
	if svcMeth != "Echo.Echo" {
		return false
	}
	a, aok := args.(*echoArgs)
	r, rok := reply.(*echoReply)
	if !aok || !rok {
		return false
	}
	r.S = a.S
	return true
}

type recordingTap struct {
	calls []string
}

func (t *recordingTap) Observe(server int, svcMeth string, args interface{}, reply interface{}) {
	t.calls = append(t.calls, svcMeth)
}

func TestLocalCallRoutesAndTaps(t *testing.T) {
	cp := NewLocal(echoService{})
	tap := &recordingTap{}
	cp.AddWiretap(tap)

	args := echoArgs{S: "hello"}
	var reply echoReply
	if ok := cp.Call(0, "Echo.Echo", &args, &reply); !ok {
		t.Fatalf("call failed")
	}
	if reply.S != "hello" {
		t.Fatalf("reply = %q", reply.S)
	}
	if len(tap.calls) != 1 || tap.calls[0] != "Echo.Echo" {
		t.Fatalf("tap saw %v", tap.calls)
	}
}

func TestLocalCallBadServer(t *testing.T) {
	cp := NewLocal(echoService{})
	var reply echoReply
	if cp.Call(3, "Echo.Echo", &echoArgs{}, &reply) {
		t.Fatalf("call to unknown server should fail")
	}
	if cp.Call(0, "Echo.Nope", &echoArgs{}, &reply) {
		t.Fatalf("call to unknown method should fail")
	}
	if cp.NumPeers() != 1 {
		t.Fatalf("NumPeers = %d", cp.NumPeers())
	}
}
