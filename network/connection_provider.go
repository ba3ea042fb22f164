package network

/* An abstraction over the transport. The roles identify each other by
index. This interface is responsible for taking a call, translating the
index into either an in-process peer or an actual network connection, and
executing the rpc. Using it lets the exchange code stay identical whether
the demonstration runs in one process or across machines. */
type ConnectionProvider interface {
	Call(server int, svcMeth string, args interface{}, reply interface{}) bool
	NumPeers() int
}
