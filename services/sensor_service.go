package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"gorm.io/gorm"
)

var (
	ErrNoSensorConfig      = errors.New("no sensor device configured")
	ErrInvalidPollInterval = errors.New("poll interval must be at least 500ms")
)

// SensorService talks to a user's IoT scale over plain HTTP on the local
// network (GET http://{ip}/weight, no auth) and optionally runs a per-user
// poll loop that pushes readings onto the realtime hub.
type SensorService struct {
	db     *gorm.DB
	rt     *RealtimeHub
	client *http.Client

	mu      sync.Mutex
	pollers map[uint]chan struct{}
}

func NewSensorService(db *gorm.DB, rt *RealtimeHub) *SensorService {
	return &SensorService{
		db:      db,
		rt:      rt,
		client:  &http.Client{Timeout: 3 * time.Second},
		pollers: make(map[uint]chan struct{}),
	}
}

// SaveConfig upserts the user's device settings. The interval floor keeps a
// misconfigured client from hammering the device.
func (s *SensorService) SaveConfig(ctx context.Context, userID uint, deviceIP string, pollIntervalMs int) (*models.SensorDevice, error) {
	if deviceIP == "" {
		return nil, errors.New("device_ip is required")
	}
	if pollIntervalMs < 500 {
		return nil, ErrInvalidPollInterval
	}

	var dev models.SensorDevice
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&dev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dev = models.SensorDevice{UserID: userID, DeviceIP: deviceIP, PollIntervalMs: pollIntervalMs}
		if err := s.db.WithContext(ctx).Create(&dev).Error; err != nil {
			return nil, err
		}
		return &dev, nil
	}
	if err != nil {
		return nil, err
	}

	dev.DeviceIP = deviceIP
	dev.PollIntervalMs = pollIntervalMs
	if err := s.db.WithContext(ctx).Save(&dev).Error; err != nil {
		return nil, err
	}
	return &dev, nil
}

func (s *SensorService) GetConfig(ctx context.Context, userID uint) (*models.SensorDevice, error) {
	var dev models.SensorDevice
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&dev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSensorConfig
		}
		return nil, err
	}
	return &dev, nil
}

type sensorReading struct {
	Weight float64 `json:"weight"`
}

// ReadWeight performs one GET against the device. Failures surface to the
// caller as-is; there is no retry.
func (s *SensorService) ReadWeight(ctx context.Context, deviceIP string) (float64, error) {
	u := fmt.Sprintf("http://%s/weight", deviceIP)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("create sensor request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call sensor: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read sensor response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("sensor error %d: %s", resp.StatusCode, string(body))
	}

	var reading sensorReading
	if err := json.Unmarshal(body, &reading); err != nil {
		return 0, fmt.Errorf("parse sensor response: %w", err)
	}
	return reading.Weight, nil
}

// StartPolling launches (or restarts) the user's poll loop using their saved
// config. Reads run strictly one at a time: the next fetch is scheduled only
// after the previous one returns, so a slow device never piles up requests.
func (s *SensorService) StartPolling(userID uint) error {
	dev, err := s.GetConfig(context.Background(), userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if stop, running := s.pollers[userID]; running {
		close(stop)
	}
	stop := make(chan struct{})
	s.pollers[userID] = stop
	s.mu.Unlock()

	interval := time.Duration(dev.PollIntervalMs) * time.Millisecond
	go func() {
		timer := time.NewTimer(0)
		defer timer.Stop()
		for {
			select {
			case <-stop:
				return
			case <-timer.C:
			}

			weight, err := s.ReadWeight(context.Background(), dev.DeviceIP)
			if err != nil {
				s.rt.BroadcastEvent(userID, "sensor.error", map[string]any{"error": err.Error()})
			} else {
				s.rt.BroadcastEvent(userID, "sensor.weight", map[string]any{
					"weight":    weight,
					"read_at":   time.Now().Format(time.RFC3339),
					"device_ip": dev.DeviceIP,
				})
			}
			timer.Reset(interval)
		}
	}()

	return nil
}

func (s *SensorService) StopPolling(userID uint) {
	s.mu.Lock()
	if stop, running := s.pollers[userID]; running {
		close(stop)
		delete(s.pollers, userID)
	}
	s.mu.Unlock()
}
