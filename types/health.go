package types

// HealthStatus is the reported state of a component or the whole service.
type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "up"
	HealthStatusDegraded HealthStatus = "degraded"
	HealthStatusDown     HealthStatus = "down"
)

// HealthComponent reports the state of one dependency.
type HealthComponent struct {
	Status    HealthStatus `json:"status"`
	LatencyMS int64        `json:"latency_ms,omitempty"`
	Details   string       `json:"details,omitempty"`
}

// HealthCheck is the aggregate health report.
type HealthCheck struct {
	Status     HealthStatus               `json:"status"`
	Components map[string]HealthComponent `json:"components"`
	Version    string                     `json:"version"`
	Timestamp  string                     `json:"timestamp"`
}
