package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"github.com/stretchr/testify/require"
)

func TestSaveConfigValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSensorService(db, NewRealtimeHub())
	ctx := context.Background()

	_, err := svc.SaveConfig(ctx, 1, "", 2000)
	require.Error(t, err)

	_, err = svc.SaveConfig(ctx, 1, "192.168.1.50", 100)
	require.ErrorIs(t, err, ErrInvalidPollInterval)
}

func TestSaveConfigUpserts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSensorService(db, NewRealtimeHub())
	ctx := context.Background()

	first, err := svc.SaveConfig(ctx, 1, "192.168.1.50", 2000)
	require.NoError(t, err)

	updated, err := svc.SaveConfig(ctx, 1, "192.168.1.99", 5000)
	require.NoError(t, err)
	require.Equal(t, first.ID, updated.ID, "one config row per user")
	require.Equal(t, "192.168.1.99", updated.DeviceIP)
	require.Equal(t, 5000, updated.PollIntervalMs)

	var count int64
	require.NoError(t, db.Model(&models.SensorDevice{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestGetConfigMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSensorService(db, NewRealtimeHub())

	_, err := svc.GetConfig(context.Background(), 77)
	require.ErrorIs(t, err, ErrNoSensorConfig)
}

func TestReadWeight(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/weight", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"weight": 1.27}`))
	}))
	defer ts.Close()

	db := setupTestDB(t)
	svc := NewSensorService(db, NewRealtimeHub())

	deviceIP := strings.TrimPrefix(ts.URL, "http://")
	weight, err := svc.ReadWeight(context.Background(), deviceIP)
	require.NoError(t, err)
	require.Equal(t, 1.27, weight)
}

func TestReadWeightDeviceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "scale not ready", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	db := setupTestDB(t)
	svc := NewSensorService(db, NewRealtimeHub())

	_, err := svc.ReadWeight(context.Background(), strings.TrimPrefix(ts.URL, "http://"))
	require.Error(t, err)
}

func TestStartPollingRequiresConfig(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSensorService(db, NewRealtimeHub())

	err := svc.StartPolling(99)
	require.ErrorIs(t, err, ErrNoSensorConfig)
}

func TestStopPollingWithoutStartIsNoop(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSensorService(db, NewRealtimeHub())

	svc.StopPolling(42)
}
