package service

import (
	"context"

	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/repo"
)

type ServerService struct {
	servers repo.Servers
}

func NewServerService(s repo.Servers) *ServerService {
	return &ServerService{servers: s}
}

func (s *ServerService) ListServers(_ context.Context) []domain.ServerDescriptor {
	return s.servers.ListServers()
}
