package http

import (
	"github.com/gin-gonic/gin"

	"item-api/pkg/response"
)

// Read godoc
// @Summary     Read item
// @Description Echoes the item ID and the optional q query parameter.
// @Tags        Items
// @Produce     json
// @Param       item_id path  int    true  "Item ID"
// @Param       q       query string false "Free-form query"
// @Success     200 {object} readResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Router      /items/{item_id} [GET]
func (h *handler) Read(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReadReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processReadReq: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Read(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Read: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Raw(c, h.newReadResp(output))
}

// Update godoc
// @Summary     Update item
// @Description Accepts an Item for the given ID and returns its name. Nothing is stored.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       item_id path int       true "Item ID"
// @Param       body    body updateReq true "Item"
// @Success     200 {object} updateResp
// @Failure     422 {object} response.Resp "Validation Error"
// @Router      /items/{item_id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processUpdateReq: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Raw(c, h.newUpdateResp(output))
}
