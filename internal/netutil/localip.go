// Package netutil discovers the local address a share should bind to.
package netutil

import (
	"fmt"
	"net"

	"github.com/jackpal/gateway"
)

// LocalIP returns the address to bind the share to. An explicit bind IP
// wins. Otherwise the address of the interface facing the default gateway
// is used, falling back to the source address the OS would pick for an
// outbound packet.
func LocalIP(bind net.IP) (net.IP, error) {
	if bind != nil {
		return bind, nil
	}
	if ip, err := gatewayLocalIP(); err == nil {
		return ip, nil
	}
	ip, err := outboundIP()
	if err != nil {
		return nil, fmt.Errorf("can't determine local ip: %w", err)
	}
	return ip, nil
}

// gatewayLocalIP finds the IPv4 address of the interface that shares a
// subnet with the default gateway.
func gatewayLocalIP() (net.IP, error) {
	gw, err := gateway.DiscoverGateway()
	if err != nil {
		return nil, err
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipnet.IP.To4()
			if ip == nil || !ip.IsGlobalUnicast() {
				continue
			}
			if ipnet.Contains(gw) {
				return ip, nil
			}
		}
	}
	return nil, fmt.Errorf("no interface shares a subnet with gateway %s", gw)
}

// outboundIP asks the OS which source address it would use for an outbound
// packet. UDP is connectionless, so no traffic is actually sent.
func outboundIP() (net.IP, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP, nil
}
