package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type StoreProbe interface {
	Ping(ctx context.Context) error
	Stats() sql.DBStats
}

// StoreMonitor periodically pings the store and logs pool statistics.
type StoreMonitor struct {
	probe   StoreProbe
	log     zerolog.Logger
	timeout time.Duration
	cron    *cron.Cron
}

func NewStoreMonitor(probe StoreProbe, log zerolog.Logger) *StoreMonitor {
	return &StoreMonitor{
		probe:   probe,
		log:     log.With().Str("component", "store_monitor").Logger(),
		timeout: 5 * time.Second,
		cron:    cron.New(),
	}
}

// Start runs Check on a cron schedule (standard or @every syntax). An empty
// schedule leaves the monitor disabled.
func (m *StoreMonitor) Start(schedule string) error {
	if schedule == "" {
		m.log.Info().Msg("Store monitor disabled")
		return nil
	}
	if _, err := m.cron.AddFunc(schedule, m.Check); err != nil {
		return err
	}
	m.cron.Start()
	m.log.Info().Str("schedule", schedule).Msg("Store monitor started")
	return nil
}

// Stop waits for a running check to finish.
func (m *StoreMonitor) Stop() {
	<-m.cron.Stop().Done()
}

func (m *StoreMonitor) Check() {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	stats := m.probe.Stats()
	event := m.log.Info()
	if err := m.probe.Ping(ctx); err != nil {
		event = m.log.Error().Err(err)
	}
	event.
		Int("open", stats.OpenConnections).
		Int("in_use", stats.InUse).
		Int("idle", stats.Idle).
		Int64("wait_count", stats.WaitCount).
		Dur("wait_duration", stats.WaitDuration).
		Msg("Store check")
}
