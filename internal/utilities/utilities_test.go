package utilities_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/antonio-alexander/go-employee-directory/internal"
	"github.com/antonio-alexander/go-employee-directory/internal/utilities"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buffer bytes.Buffer

	logger := utilities.NewLogger(&buffer)
	ctx := context.TODO()

	// default level only logs errors
	logger.Info(ctx, "info message")
	logger.Error(ctx, "error message: %d", 1)
	assert.NotContains(t, buffer.String(), "info message")
	assert.Contains(t, buffer.String(), "[error] error message: 1")
	assert.Equal(t, 1, strings.Count(buffer.String(), "\n"))

	// trace logs everything, correlation id is included when set
	buffer.Reset()
	err := logger.Configure(map[string]string{"LOG_LEVEL": "trace"})
	assert.Nil(t, err)
	ctx = internal.CtxWithCorrelationId(ctx, "abc123")
	logger.Trace(ctx, "trace message")
	logger.Debug(ctx, "debug message")
	assert.Contains(t, buffer.String(), "[trace] (abc123) trace message")
	assert.Contains(t, buffer.String(), "[debug] (abc123) debug message")

	// unknown levels fall back to error
	buffer.Reset()
	err = logger.Configure(map[string]string{"LOG_LEVEL": "verbose"})
	assert.Nil(t, err)
	logger.Debug(ctx, "debug message")
	assert.Empty(t, buffer.String())
}

func TestTimers(t *testing.T) {
	timers := utilities.NewTimers()

	index := timers.Start("employee_read")
	assert.Equal(t, 0, index)
	time.Sleep(time.Millisecond)
	elapsed := timers.Stop("employee_read", index)
	assert.Greater(t, elapsed, int64(0))

	// a running timer doesn't count towards the average
	running := timers.Start("employee_read")
	assert.Equal(t, 1, running)
	readAll := timers.ReadAll()
	assert.Equal(t, elapsed, readAll.Totals["employee_read"])
	assert.Equal(t, elapsed, readAll.Averages["employee_read"])

	// stopping a timer that doesn't exist
	assert.Equal(t, int64(-1), timers.Stop("employees_list", 0))
	assert.Equal(t, int64(-1), timers.Stop("employee_read", 5))

	timers.Clear()
	assert.Equal(t, int64(-1), timers.Stop("employee_read", running))
	assert.Empty(t, timers.ReadAll().Totals)
}
