package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mktrading-backend/database/dbtest"
)

type failingProbe struct{}

func (failingProbe) Ping(context.Context) error { return errors.New("connection refused") }
func (failingProbe) Stats() sql.DBStats         { return sql.DBStats{OpenConnections: 3} }

func TestStoreMonitorCheck(t *testing.T) {
	buf := &bytes.Buffer{}
	m := NewStoreMonitor(dbtest.New(t), zerolog.New(buf))
	m.Check()
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), `"message":"Store check"`)

	buf.Reset()
	m = NewStoreMonitor(failingProbe{}, zerolog.New(buf))
	m.Check()
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "connection refused")
	assert.Contains(t, buf.String(), `"open":3`)
}

func TestStoreMonitorStart(t *testing.T) {
	buf := &bytes.Buffer{}
	m := NewStoreMonitor(failingProbe{}, zerolog.New(buf))

	require.NoError(t, m.Start(""))
	assert.Contains(t, buf.String(), "Store monitor disabled")

	assert.Error(t, m.Start("not a schedule"))

	require.NoError(t, m.Start("@every 1h"))
	m.Stop()
}
