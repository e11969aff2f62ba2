package http

import (
	"github.com/gin-gonic/gin"

	"item-api/internal/item"
	pkgErrors "item-api/pkg/errors"
	"item-api/pkg/log"
)

// Handler is the public interface for the item HTTP delivery layer.
type Handler interface {
	Read(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc item.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) *handler {
	pkgErrors.UseJSONFieldNames()

	return &handler{
		l:  l,
		uc: uc,
	}
}
