package models

import (
	"time"

	"github.com/jroosing/bindman/internal/audit"
)

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string    `json:"uptime"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	StartTime     time.Time `json:"start_time"`
	GoRoutines    int       `json:"goroutines"`
	MemoryAllocMB float64   `json:"memory_alloc_mb"`
	NumCPU        int       `json:"num_cpu"`
	// Host metrics; zero when unavailable.
	HostMemoryUsedPct float64 `json:"host_memory_used_pct"`
	HostCPUPct        float64 `json:"host_cpu_pct"`
	ManagedZones      int     `json:"managed_zones"`
}

// AuditListResponse wraps the audit journal listing.
type AuditListResponse struct {
	Entries []audit.Entry `json:"entries"`
	Count   int           `json:"count"`
}
