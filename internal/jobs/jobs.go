package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"merchflow/internal/domain/camp"
	"merchflow/internal/domain/lead"
)

// Runner drives the scheduled background work: the daily stale-claim sweep
// and the camp occupancy rollup. All jobs are read-and-notify; none of them
// move a lead or order through its lifecycle.
type Runner struct {
	cron  *cron.Cron
	leads *lead.Service
	camps *camp.Service
}

func NewRunner(leads *lead.Service, camps *camp.Service) *Runner {
	return &Runner{
		cron:  cron.New(),
		leads: leads,
		camps: camps,
	}
}

// Start registers the jobs on the given schedule and begins the scheduler.
func (r *Runner) Start(spec string) error {
	if _, err := r.cron.AddFunc(spec, r.sweepStaleClaims); err != nil {
		return err
	}
	if _, err := r.cron.AddFunc(spec, r.rollupCamps); err != nil {
		return err
	}
	r.cron.Start()
	log.Printf("jobs: scheduler started spec=%q", spec)
	return nil
}

// Stop waits for any running job to finish.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Runner) sweepStaleClaims() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := r.leads.NotifyStaleClaims(ctx)
	if err != nil {
		log.Printf("jobs: stale claim sweep failed err=%v", err)
		return
	}
	log.Printf("jobs: stale claim sweep done notified=%d", count)
}

func (r *Runner) rollupCamps() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	camps, err := r.camps.List(ctx)
	if err != nil {
		log.Printf("jobs: camp rollup failed err=%v", err)
		return
	}

	var active, completed int
	for _, c := range camps {
		switch c.Status {
		case camp.StatusActive:
			active++
			log.Printf("jobs: camp active id=%d name=%q registered=%d capacity=%d",
				c.ID, c.Name, c.Registered, c.Capacity)
		case camp.StatusCompleted:
			completed++
		}
	}
	log.Printf("jobs: camp rollup done total=%d active=%d completed=%d",
		len(camps), active, completed)
}
