package usecase

import (
	"context"

	"github.com/finbridge/cardproc/internal/domain"
)

// StatusUseCase reports external program availability diagnostics.
type StatusUseCase struct {
	driver ExternalDriver
}

// NewStatusUseCase creates a StatusUseCase.
func NewStatusUseCase(driver ExternalDriver) *StatusUseCase {
	return &StatusUseCase{driver: driver}
}

// Status probes the external program. The probe runs fresh on every call.
func (uc *StatusUseCase) Status(ctx context.Context) domain.ProgramStatus {
	return uc.driver.Status()
}
