package node

import (
	"net"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Version and CommitHash are set at link time with -ldflags "-X".
var (
	Version    = "development"
	CommitHash = "unknown"
)

// Node describes the running process in health and log output.
type Node struct {
	ID         string
	Hostname   string
	IPAddress  string
	Version    string
	CommitHash string
	StartedAt  time.Time
}

var (
	current     Node
	currentOnce sync.Once
)

func GetNodeInfo() *Node {
	currentOnce.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "localhost"
		}
		current = Node{
			ID:        uuid.New().String(),
			Hostname:  hostname,
			IPAddress: firstUnicastAddress(),
			StartedAt: time.Now(),
		}
	})

	info := current
	info.Version = Version
	info.CommitHash = CommitHash
	return &info
}

func (n *Node) Uptime() time.Duration {
	return time.Since(n.StartedAt)
}

func firstUnicastAddress() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}

	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip := ipNet.IP.To4(); ip != nil {
			return ip.String()
		}
	}
	return "127.0.0.1"
}
