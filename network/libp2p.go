package network

import (
	"context"
	"fmt"
	"strings"

	"github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p-core/host"
	"github.com/libp2p/go-libp2p-core/peer"
	gorpc "github.com/libp2p/go-libp2p-gorpc"
	"github.com/multiformats/go-multiaddr"
)

const rpcProtocolID = "/p2p/rpc/cipherclass"

// Libp2pConnectionProvider runs the same rpcs over a real network, for
// demonstrations where the roles are separate processes on separate hosts.
type Libp2pConnectionProvider struct {
	Host   host.Host
	Client *gorpc.Client
	Server *gorpc.Server
}

func NewLibp2p(listenAddr string) (*Libp2pConnectionProvider, error) {
	h, err := libp2p.New(context.Background(), libp2p.ListenAddrStrings(listenAddr))
	if err != nil {
		return nil, fmt.Errorf("creating libp2p host: %v", err)
	}
	cp := &Libp2pConnectionProvider{Host: h}
	cp.Server = gorpc.NewServer(h, rpcProtocolID)
	cp.Client = gorpc.NewClientWithServer(h, rpcProtocolID, cp.Server)
	return cp, nil
}

// Register exposes a receiver object's rpc methods to remote callers.
func (cp *Libp2pConnectionProvider) Register(rcvr interface{}) error {
	return cp.Server.Register(rcvr)
}

// CallAddr executes an rpc against the peer at the given multiaddr.
func (cp *Libp2pConnectionProvider) CallAddr(server string, svcName string, svcMeth string, args interface{}, reply interface{}) bool {
	ma, err := multiaddr.NewMultiaddr(server)
	if err != nil {
		return false
	}
	peerInfo, err := peer.AddrInfoFromP2pAddr(ma)
	if err != nil {
		return false
	}
	if peerInfo.ID != cp.Host.ID() {
		if err := cp.Host.Connect(context.Background(), *peerInfo); err != nil {
			return false
		}
	}
	err = cp.Client.Call(peerInfo.ID, svcName, svcMeth, args, reply)
	return err == nil
}

// Me returns a multiaddr that other processes can dial, preferring a
// non-loopback address when one exists.
func (cp *Libp2pConnectionProvider) Me() string {
	pi := peer.AddrInfo{
		ID:    cp.Host.ID(),
		Addrs: cp.Host.Addrs(),
	}
	addrs, err := peer.AddrInfoToP2pAddrs(&pi)
	if err != nil {
		return ""
	}
	var chosen string
	for _, addr := range addrs {
		chosen = addr.String()
		if !strings.Contains(chosen, "127.0.0.1") {
			break
		}
	}
	return chosen
}

func (cp *Libp2pConnectionProvider) Close() error {
	return cp.Host.Close()
}

// Directory adapts a Libp2pConnectionProvider to the index-based
// ConnectionProvider interface by mapping indices to known multiaddrs.
type Directory struct {
	cp    *Libp2pConnectionProvider
	addrs []string
}

func NewDirectory(cp *Libp2pConnectionProvider, addrs []string) *Directory {
	return &Directory{cp: cp, addrs: addrs}
}

func (d *Directory) Call(server int, svcMeth string, args interface{}, reply interface{}) bool {
	if server < 0 || server >= len(d.addrs) {
		return false
	}
	parts := strings.SplitN(svcMeth, ".", 2)
	if len(parts) != 2 {
		return false
	}
	return d.cp.CallAddr(d.addrs[server], parts[0], parts[1], args, reply)
}

func (d *Directory) NumPeers() int {
	return len(d.addrs)
}
