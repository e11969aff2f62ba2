package http

import (
	"github.com/gin-gonic/gin"
)

const paramItemID = "item_id"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	items := rg.Group("/items")
	{
		items.GET("/:"+paramItemID, h.Read)
		items.PUT("/:"+paramItemID, h.Update)
	}
}
