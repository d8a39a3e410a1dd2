package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/repo"
	"github.com/Egor213/LogiProbe/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
)

type DiagnosisService struct {
	diagnostics repo.Diagnostics
}

func NewDiagnosisService(d repo.Diagnostics) *DiagnosisService {
	return &DiagnosisService{diagnostics: d}
}

func (s *DiagnosisService) Diagnose(_ context.Context, serverIP, action string) (domain.DiagnosisReport, error) {
	report, err := s.diagnostics.Diagnose(serverIP, action)
	if errors.Is(err, repoerrs.ErrNotFound) {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("%w: %q", ErrUnknownAction, action))
	}
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return report, nil
}

func (s *DiagnosisService) Actions() []string {
	return s.diagnostics.Actions()
}
