package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/le0623/slack-app-demo/internal/adapter/http/middleware"
)

const (
	StatusOk   = "ok"
	StatusDown = "down"
)

// ConnectionChecker reports whether the Slack socket connection is
// currently established.
type ConnectionChecker interface {
	Connected() bool
}

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Slack     string `json:"slack"`
	Scheduler string `json:"scheduler"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	slack            ConnectionChecker
	schedulerRunning func() bool
}

func NewHealthHandler(slack ConnectionChecker, schedulerRunning func() bool) *HealthHandler {
	return &HealthHandler{slack: slack, schedulerRunning: schedulerRunning}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if h.slack == nil || !h.slack.Connected() {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	slackStatus := StatusDown
	if h.slack != nil && h.slack.Connected() {
		slackStatus = StatusOk
	}

	schedulerStatus := StatusDown
	if h.schedulerRunning != nil && h.schedulerRunning() {
		schedulerStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Slack:     slackStatus,
			Scheduler: schedulerStatus,
		},
	})
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
