package monitoring

import (
	"context"
	"errors"
	"net"
	"os"
	"runtime"
	"time"
)

// Detail is the standard payload each checker returns.
type Detail map[string]any

var (
	ErrNoDatabaseAddr = errors.New("no database address configured")
	ErrNoPinger       = errors.New("no database pinger configured")
)

// -------------------------
// Server Information
// -------------------------

type ServerInfoOptions struct {
	AppName   string
	Env       string
	Version   string
	Revision  string
	BuiltAt   string
	StartTime time.Time
}

// ServerInformation describes the running process: which build, where, since when.
func ServerInformation(ctx context.Context, opt ServerInfoOptions) (Detail, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	uptime := time.Since(opt.StartTime)
	return Detail{
		"app":           opt.AppName,
		"env":           opt.Env,
		"build":         Detail{"version": opt.Version, "revision": opt.Revision, "builtAt": opt.BuiltAt},
		"hostname":      hostname,
		"pid":           os.Getpid(),
		"go":            runtime.Version(),
		"startedAtUTC":  opt.StartTime.UTC().Format(time.RFC3339),
		"uptimeSeconds": int64(uptime.Seconds()),
	}, nil
}

// -------------------------
// Runtime Metrics
// -------------------------

// Metrics reports scheduler and heap figures of this process.
func Metrics(ctx context.Context) (Detail, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	lastGC := ""
	if ms.LastGC > 0 {
		lastGC = time.Unix(0, int64(ms.LastGC)).UTC().Format(time.RFC3339)
	}
	return Detail{
		"cpus":           runtime.NumCPU(),
		"goroutines":     runtime.NumGoroutine(),
		"heapAllocBytes": ms.HeapAlloc,
		"heapObjects":    ms.HeapObjects,
		"gcCount":        ms.NumGC,
		"lastGCUTC":      lastGC,
	}, nil
}

// -------------------------
// Database
// -------------------------

// DatabaseStatus is what a Pinger learns from one round trip.
type DatabaseStatus struct {
	ServerVersion string
	// RecordPresent tells whether the dashboard row exists. A missing row
	// still answers the dashboard (with 404), so it does not fail the check.
	RecordPresent bool
}

// Pinger opens a connection the same way the dashboard lookup does and
// queries the table it reads.
type Pinger interface {
	Ping(ctx context.Context) (DatabaseStatus, error)
}

// DatabaseByPinger runs p and reports the result under mode "query".
func DatabaseByPinger(ctx context.Context, p Pinger) (Detail, error) {
	if p == nil {
		return Detail{"mode": "query"}, ErrNoPinger
	}
	st, err := p.Ping(ctx)
	if err != nil {
		return Detail{"mode": "query"}, err
	}
	return Detail{
		"mode":          "query",
		"serverVersion": st.ServerVersion,
		"recordPresent": st.RecordPresent,
	}, nil
}

// DatabaseByTCP checks simple TCP reachability to a DB host:port.
func DatabaseByTCP(ctx context.Context, addr string) (Detail, error) {
	if addr == "" {
		return Detail{"mode": "tcp"}, ErrNoDatabaseAddr
	}
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return Detail{"mode": "tcp", "addr": addr}, err
	}
	_ = conn.Close()
	return Detail{"mode": "tcp", "addr": addr, "reachable": true}, nil
}
