package keepalive

import (
	"context"
	"log"
	"time"

	"github.com/launchscore-dev/launchscore/db"
)

// Pinger issues a periodic liveness query against the database so managed
// Postgres instances do not idle out. Failures are logged and otherwise
// ignored; the pinger never affects request handling.
type Pinger struct {
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewPinger(interval time.Duration) *Pinger {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pinger{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the ping loop. A non-positive interval disables it.
func (p *Pinger) Start() {
	if p.interval <= 0 {
		return
	}

	go p.run()

	log.Printf("Keep-alive pinger started with interval %s", p.interval)
}

func (p *Pinger) Stop() {
	p.cancel()
}

func (p *Pinger) run() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.ping()
		}
	}
}

func (p *Pinger) ping() {
	sqlDB, err := db.DB.DB()

	if err != nil {
		log.Printf("Keep-alive ping failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(p.ctx, 10*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Printf("Keep-alive ping failed: %v", err)
	}
}
