package model

import "github.com/m-mizutani/zipscope/pkg/domain/types"

// ServiceName is reported by the health endpoint
const ServiceName = "zipscope"

// HealthStatus is the body of GET /health
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// NewHealthStatus returns a healthy status for the running binary
func NewHealthStatus() *HealthStatus {
	return &HealthStatus{
		Status:  "healthy",
		Service: ServiceName,
		Version: types.Version,
	}
}
