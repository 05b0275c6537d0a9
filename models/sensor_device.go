package models

import "time"

// SensorDevice stores a user's saved IoT scale connection settings.
// The device lives on the user's own network; the IP is only meaningful
// from wherever this server (or the poller) runs.
type SensorDevice struct {
    ID             uint   `gorm:"primaryKey"`
    UserID         uint   `gorm:"uniqueIndex"`
    DeviceIP       string `gorm:"size:45"`
    PollIntervalMs int    `gorm:"default:2000"`
    UpdatedAt      time.Time
    CreatedAt      time.Time
}
