package usecase

import (
	"item-api/internal/item"
	"item-api/pkg/log"
)

// implUseCase is the private implementation of item.UseCase. It holds no
// per-request state, so one instance serves every request concurrently.
type implUseCase struct {
	l log.Logger
}

var _ item.UseCase = (*implUseCase)(nil)

// New creates a new item UseCase implementation.
func New(l log.Logger) *implUseCase {
	return &implUseCase{
		l: l,
	}
}
