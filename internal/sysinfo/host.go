package sysinfo

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostStatus is a live snapshot of the machine. Unlike AppInfo and
// SystemInfo it reads the OS on every call and can fail.
type HostStatus struct {
	Hostname        string  `json:"hostname"`
	Platform        string  `json:"platform"`
	PlatformVersion string  `json:"platform_version"`
	Kernel          string  `json:"kernel"`
	UptimeSec       uint64  `json:"uptime_sec"`
	MemTotal        uint64  `json:"mem_total"`
	MemUsedPct      float64 `json:"mem_used_pct"`
}

// HostReader reads HostStatus through gopsutil.
type HostReader struct{}

// HostStatus collects host and memory facts.
func (HostReader) HostStatus(ctx context.Context) (HostStatus, error) {
	h, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostStatus{}, fmt.Errorf("host info: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return HostStatus{}, fmt.Errorf("memory info: %w", err)
	}
	return HostStatus{
		Hostname:        h.Hostname,
		Platform:        h.Platform,
		PlatformVersion: h.PlatformVersion,
		Kernel:          h.KernelVersion,
		UptimeSec:       h.Uptime,
		MemTotal:        vm.Total,
		MemUsedPct:      vm.UsedPercent,
	}, nil
}
