package synth

import "github.com/Egor213/LogiProbe/internal/domain"

var fleet = [...]domain.ServerDescriptor{
	{IP: "10.0.1.101", Hostname: "web-server-01", Role: domain.RoleWebFrontend, Region: "us-east-1", Status: domain.StatusHealthy},
	{IP: "10.0.1.102", Hostname: "web-server-02", Role: domain.RoleWebFrontend, Region: "us-east-1", Status: domain.StatusHealthy},
	{IP: DegradedIP, Hostname: "api-server-01", Role: domain.RoleAPIBackend, Region: "us-west-2", Status: domain.StatusDegraded},
	{IP: "10.0.2.102", Hostname: "api-server-02", Role: domain.RoleAPIBackend, Region: "us-west-2", Status: domain.StatusHealthy},
	{IP: "10.0.3.101", Hostname: "db-server-01", Role: domain.RoleDatabase, Region: "eu-central-1", Status: domain.StatusHealthy},
}

type ServerDirectory struct{}

func NewServerDirectory() *ServerDirectory {
	return &ServerDirectory{}
}

// ListServers returns a fresh copy of the fleet on every call.
func (ServerDirectory) ListServers() []domain.ServerDescriptor {
	out := make([]domain.ServerDescriptor, len(fleet))
	copy(out, fleet[:])
	return out
}
