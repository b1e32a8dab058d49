package display

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"
)

// PingTimeout bounds each reachability check during a scan.
const PingTimeout = 500 * time.Millisecond

// Device is a display found on the network.
type Device struct {
	Name string
	IP   string
}

// ProgressFunc is called during scanning to report progress.
type ProgressFunc func(current, total int)

// Scan checks every host of the local /24 subnet for a display.
func Scan(ctx context.Context, onProgress ProgressFunc) ([]Device, error) {
	subnet, err := localSubnet()
	if err != nil {
		return nil, err
	}
	hosts := make([]string, 0, 254)
	for i := 1; i <= 254; i++ {
		hosts = append(hosts, fmt.Sprintf("%s.%d", subnet, i))
	}
	return ScanHosts(ctx, hosts, func(ip string) *Client { return NewClient(ip) }, onProgress)
}

// ScanHosts checks hosts in batches of 50 concurrent requests. newClient
// builds the client used for each check.
func ScanHosts(ctx context.Context, hosts []string, newClient func(ip string) *Client, onProgress ProgressFunc) ([]Device, error) {
	var devices []Device
	var mu sync.Mutex
	var wg sync.WaitGroup

	const batchSize = 50
	total := len(hosts)

	for start := 0; start < total; start += batchSize {
		end := min(start+batchSize, total)

		for _, ip := range hosts[start:end] {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if ping(ctx, newClient(ip)) {
					mu.Lock()
					devices = append(devices, Device{Name: "Pixoo", IP: ip})
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		if onProgress != nil {
			onProgress(end, total)
		}

		select {
		case <-ctx.Done():
			return devices, ctx.Err()
		default:
		}
	}

	return devices, nil
}

// localSubnet returns the first three octets of the first non-loopback IPv4
// address, e.g. "192.168.1".
func localSubnet() (string, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("failed to get network interfaces: %w", err)
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipNet.IP.To4()
			if ip == nil || ip.IsLoopback() {
				continue
			}
			return fmt.Sprintf("%d.%d.%d", ip[0], ip[1], ip[2]), nil
		}
	}

	return "", fmt.Errorf("could not determine local network")
}

func ping(ctx context.Context, c *Client) bool {
	c.HTTPClient.Timeout = PingTimeout
	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()

	return c.IsReachable(pingCtx)
}
