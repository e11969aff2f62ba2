package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "item-api/internal/item/delivery/http"
	itemUC "item-api/internal/item/usecase"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// The item domain has no repository: the usecase is a pure function of its
// input.
func (srv *HTTPServer) setupItemDomain(ctx context.Context, rg *gin.RouterGroup) error {
	// 1. UseCase
	uc := itemUC.New(srv.l)

	// 2. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 3. Routes: registers /items/:item_id
	itemHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
