package httpserver

import (
	"github.com/gin-gonic/gin"

	"item-api/pkg/response"
)

type rootResp struct {
	Hello string `json:"Hello"`
}

// root handles the index route
// @Summary Root
// @Description Returns a constant greeting
// @Tags Root
// @Produce json
// @Success 200 {object} rootResp
// @Router / [get]
func (srv *HTTPServer) root(c *gin.Context) {
	response.Raw(c, rootResp{Hello: "World"})
}
