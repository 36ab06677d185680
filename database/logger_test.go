package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLoggerTrace(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewGormLogger(zerolog.New(buf).Level(zerolog.DebugLevel))
	fc := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), fc, errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "Statement failed")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)
	assert.Contains(t, buf.String(), "Slow statement")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), fc, gorm.ErrRecordNotFound)
	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestGormLoggerSilent(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewGormLogger(zerolog.New(buf)).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	l.Error(context.Background(), "ignored %d", 1)
	assert.Empty(t, buf.String())
}
