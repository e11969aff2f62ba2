package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "item-api/pkg/errors"
)

// processItemID parses the item_id URI param as a signed 64-bit integer.
func (h *handler) processItemID(c *gin.Context) (int64, error) {
	raw := c.Param(paramItemID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgErrors.IntParsing(pkgErrors.LocationPath, paramItemID, raw)
	}
	return id, nil
}

// processReadReq binds the URI param and the query string.
func (h *handler) processReadReq(c *gin.Context) (readReq, error) {
	var req readReq

	id, err := h.processItemID(c)
	if err != nil {
		return req, err
	}

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.FromBindError(pkgErrors.LocationQuery, err)
	}
	req.ItemID = id
	return req, nil
}

// processUpdateReq binds and validates the Item body plus the URI param.
// The path is checked first, matching the order clients see errors in.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq

	id, err := h.processItemID(c)
	if err != nil {
		return req, err
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.FromBindError(pkgErrors.LocationBody, err)
	}
	req.ItemID = id
	return req, nil
}
