package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Pragathi1123/eco-hive-smart/services"

	"github.com/gin-gonic/gin"
)

type SensorController struct {
	Svc *services.SensorService
}

func NewSensorController(svc *services.SensorService) *SensorController {
	return &SensorController{Svc: svc}
}

type sensorConfigInput struct {
	DeviceIP       string `json:"device_ip" binding:"required"`
	PollIntervalMs int    `json:"poll_interval_ms"`
}

func (sc *SensorController) SaveConfig(c *gin.Context) {
	uid := c.GetUint("userID")

	var body sensorConfigInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.PollIntervalMs == 0 {
		body.PollIntervalMs = 2000
	}

	dev, err := sc.Svc.SaveConfig(c.Request.Context(), uid, body.DeviceIP, body.PollIntervalMs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dev)
}

func (sc *SensorController) GetConfig(c *gin.Context) {
	uid := c.GetUint("userID")

	dev, err := sc.Svc.GetConfig(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrNoSensorConfig) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dev)
}

// GetWeight takes one reading from the user's configured device.
func (sc *SensorController) GetWeight(c *gin.Context) {
	uid := c.GetUint("userID")

	dev, err := sc.Svc.GetConfig(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrNoSensorConfig) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	weight, err := sc.Svc.ReadWeight(c.Request.Context(), dev.DeviceIP)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to connect to sensor. Check IP and network."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weight":  weight,
		"read_at": time.Now().Format(time.RFC3339),
	})
}

// StartPolling begins pushing readings to the caller's websocket.
func (sc *SensorController) StartPolling(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := sc.Svc.StartPolling(uid); err != nil {
		if errors.Is(err, services.ErrNoSensorConfig) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "polling started"})
}

func (sc *SensorController) StopPolling(c *gin.Context) {
	uid := c.GetUint("userID")
	sc.Svc.StopPolling(uid)
	c.JSON(http.StatusOK, gin.H{"message": "polling stopped"})
}
