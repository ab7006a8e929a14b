package transport

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/npesaras/clens/internal/config"
	"github.com/npesaras/clens/internal/logger"
	"github.com/shirou/gopsutil/v3/process"
)

// Pinger pings the database, *sql.DB satisfies it
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status      string       `json:"status"`
	Timestamp   time.Time    `json:"timestamp"`
	Environment string       `json:"environment"`
	Database    string       `json:"database"`
	Uptime      float64      `json:"uptime"`
	Memory      HealthMemory `json:"memory"`
}

// HealthMemory is reported in bytes
type HealthMemory struct {
	RSS       uint64 `json:"rss"`
	VMS       uint64 `json:"vms"`
	HeapAlloc uint64 `json:"heapAlloc"`
	HeapSys   uint64 `json:"heapSys"`
}

type healthHttp struct {
	env     config.Environment
	db      Pinger
	started time.Time
}

// NewHealthHttp registers the unauthenticated health check on the configured path
func NewHealthHttp(cfg config.Configuration, db Pinger, r gin.IRouter) {
	h := &healthHttp{
		env:     cfg.Environment,
		db:      db,
		started: time.Now(),
	}
	r.GET(cfg.Server.HealthCheckPath, h.check())
}

func (h *healthHttp) check() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		res := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Environment: string(h.env),
			Database:    "connected",
			Uptime:      time.Since(h.started).Seconds(),
			Memory:      memory(ctx),
		}
		status := http.StatusOK
		if err := h.db.PingContext(ctx); err != nil {
			logger.Log.WithError(err).Warn("Health check failed to reach the database")
			res.Status = "degraded"
			res.Database = "disconnected"
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, res)
	}
}

func memory(ctx context.Context) HealthMemory {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	mem := HealthMemory{
		HeapAlloc: ms.HeapAlloc,
		HeapSys:   ms.HeapSys,
	}
	// Process level numbers are best effort, not every platform exposes them
	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return mem
	}
	if info, err := proc.MemoryInfoWithContext(ctx); err == nil {
		mem.RSS = info.RSS
		mem.VMS = info.VMS
	}
	return mem
}
