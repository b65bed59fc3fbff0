package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "inventory-management/pkg/errors"
)

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("invalid request body: %v", err)
	}
	return req, req.validate()
}

// processListReq binds and validates the list items query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewValidationError("invalid query parameters: %v", err)
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update item request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("invalid request body: %v", err)
	}
	id, err := parseID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, req.validate()
}

// parseID extracts and parses the numeric :id URI param.
func parseID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewValidationError("invalid item id %q", raw)
	}
	return id, nil
}
