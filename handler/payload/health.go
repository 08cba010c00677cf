package payload

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
	HealthVersion   = "1.0.0"
)

type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type ModelsCheck struct {
	Profiles *int64 `json:"profiles,omitempty"`
	Skills   *int64 `json:"skills,omitempty"`
	Projects *int64 `json:"projects,omitempty"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

type HealthChecks struct {
	Database CheckResult `json:"database"`
	Cache    CheckResult `json:"cache"`
	Models   ModelsCheck `json:"models"`
}

type HealthResponse struct {
	Status    string       `json:"status"`
	Timestamp float64      `json:"timestamp"`
	Version   string       `json:"version"`
	Checks    HealthChecks `json:"checks"`
}

type UnhealthyResponse struct {
	Status    string  `json:"status"`
	Error     string  `json:"error"`
	Timestamp float64 `json:"timestamp"`
}
