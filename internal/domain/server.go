package domain

type Role string

const (
	RoleWebFrontend Role = "web_frontend"
	RoleAPIBackend  Role = "api_backend"
	RoleDatabase    Role = "database"
)

type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusDegraded Status = "degraded"
)

type ServerDescriptor struct {
	IP       string `json:"ip"`
	Hostname string `json:"hostname"`
	Role     Role   `json:"role"`
	Region   string `json:"region"`
	Status   Status `json:"status"`
}
