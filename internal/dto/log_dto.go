package dto

import "time"

type LogResponse struct {
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Origin    string    `json:"origin"`
}

type EmailLogsRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,email"`
}

type EmailLogsResponse struct {
	Sent bool `json:"sent"`
}

// CheckRequest.URL defaults to the monitored URL when empty.
type CheckRequest struct {
	URL string `json:"url" validate:"omitempty,url"`
}

type CheckResponse struct {
	URL string `json:"url"`
	OK  bool   `json:"ok"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	MonitorURL string `json:"monitorUrl"`
}
