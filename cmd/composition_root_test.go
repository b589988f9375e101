package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fooddelivery/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompositionRoot_JobManagerFollowsTTL(t *testing.T) {
	root := cmd.NewCompositionRoot(cmd.Config{}, nil, nil, discardLogger())
	manager, err := root.CreateJobManager()
	require.NoError(t, err)
	assert.Equal(t, 0, manager.Len())

	root = cmd.NewCompositionRoot(cmd.Config{PendingOrderTTL: 15 * time.Minute}, nil, nil, discardLogger())
	manager, err = root.CreateJobManager()
	require.NoError(t, err)
	assert.Equal(t, 1, manager.Len())
}

func TestCompositionRoot_JobManagerRejectsBadSchedule(t *testing.T) {
	root := cmd.NewCompositionRoot(cmd.Config{
		PendingOrderTTL:           time.Minute,
		PendingOrderSweepSchedule: "every now and then",
	}, nil, nil, discardLogger())

	manager, err := root.CreateJobManager()
	require.NoError(t, err)
	assert.Error(t, manager.StartAll())
}

func TestCompositionRoot_HTTPServerServesHealth(t *testing.T) {
	root := cmd.NewCompositionRoot(cmd.Config{}, nil, nil, discardLogger())
	e := root.CreateHTTPServer().NewEcho()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}
