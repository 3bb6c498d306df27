package models

// HealthStatus is the liveness payload.
type HealthStatus struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Backend is running"`
}

// RootInfo describes the API and where its endpoints live.
type RootInfo struct {
	Message   string            `json:"message" example:"Welcome to the Go API"`
	Endpoints map[string]string `json:"endpoints"` // logical name -> path
}
