package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-bff/internal/pkg/clock"
	"marketplace-bff/internal/transforms/category"
	"marketplace-bff/internal/viewservice"
	"marketplace-bff/services/marketplace/helpers"
	"marketplace-bff/utils"
)

type MarketplaceServiceInterface interface {
	Get(ctx context.Context, resource, id string, scope viewservice.Scope) (any, error)
	List(ctx context.Context, resource string, scope viewservice.Scope) (any, error)
	Create(ctx context.Context, resource string, body []byte, scope viewservice.Scope) (any, error)
	Update(ctx context.Context, resource, id string, body []byte, scope viewservice.Scope) (any, error)
	CategoryTree(ctx context.Context) ([]category.Node, error)
}

type MarketplaceHandler struct {
	service MarketplaceServiceInterface
	clock   clock.Clock
}

func NewMarketplaceHandler(service MarketplaceServiceInterface, clk clock.Clock) *MarketplaceHandler {
	return &MarketplaceHandler{service: service, clock: clk}
}

// ListHandler handles GET /api/:resource
func (h *MarketplaceHandler) ListHandler(c *gin.Context) {
	resource := c.Param("resource")

	var q helpers.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListHandler", err)
		return
	}

	views, err := h.service.List(c.Request.Context(), resource, viewservice.Scope{
		ActingUserID: helpers.ActingUser(c),
		Params:       helpers.QueryParams(c),
		Limit:        q.Limit,
	})
	if err != nil {
		h.fail(c, "ListHandler", err, map[string]any{"resource": resource})
		return
	}

	utils.JSONList(c, http.StatusOK, views, resource+" retrieved successfully")
	helpers.LogSuccess("ListHandler", "documents listed", map[string]any{
		"resource": resource,
		"user_id":  helpers.ActingUser(c),
	})
}

// GetHandler handles GET /api/:resource/:id
func (h *MarketplaceHandler) GetHandler(c *gin.Context) {
	resource, id := c.Param("resource"), c.Param("id")

	view, err := h.service.Get(c.Request.Context(), resource, id, h.scope(c))
	if err != nil {
		h.fail(c, "GetHandler", err, map[string]any{"resource": resource, "id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "document retrieved successfully")
	helpers.LogSuccess("GetHandler", "document retrieved", map[string]any{
		"resource": resource,
		"id":       id,
	})
}

// CreateHandler handles POST /api/:resource
func (h *MarketplaceHandler) CreateHandler(c *gin.Context) {
	resource := c.Param("resource")

	body, err := readBody(c)
	if err != nil {
		helpers.HandleBindError(c, "CreateHandler", err)
		return
	}

	view, err := h.service.Create(c.Request.Context(), resource, body, h.scope(c))
	if err != nil {
		h.fail(c, "CreateHandler", err, map[string]any{"resource": resource})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, view, "document created successfully")
	helpers.LogSuccess("CreateHandler", "document created", map[string]any{
		"resource": resource,
		"user_id":  helpers.ActingUser(c),
	})
}

// UpdateHandler handles PATCH /api/:resource/:id
func (h *MarketplaceHandler) UpdateHandler(c *gin.Context) {
	resource, id := c.Param("resource"), c.Param("id")

	body, err := readBody(c)
	if err != nil {
		helpers.HandleBindError(c, "UpdateHandler", err)
		return
	}

	view, err := h.service.Update(c.Request.Context(), resource, id, body, h.scope(c))
	if err != nil {
		h.fail(c, "UpdateHandler", err, map[string]any{"resource": resource, "id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "document updated successfully")
	helpers.LogSuccess("UpdateHandler", "document updated", map[string]any{
		"resource": resource,
		"id":       id,
		"user_id":  helpers.ActingUser(c),
	})
}

// CategoryTreeHandler handles GET /api/categories-tree
func (h *MarketplaceHandler) CategoryTreeHandler(c *gin.Context) {
	tree, err := h.service.CategoryTree(c.Request.Context())
	if err != nil {
		h.fail(c, "CategoryTreeHandler", err, nil)
		return
	}

	utils.JSONList(c, http.StatusOK, tree, "category tree retrieved successfully")
	helpers.LogSuccess("CategoryTreeHandler", "category tree retrieved", map[string]any{"roots": len(tree)})
}

// HealthHandler handles GET /healthz
func (h *MarketplaceHandler) HealthHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.HealthResponse{
		Status:    "ok",
		Resources: len(viewservice.Resources()),
		Time:      h.clock.Now().UTC().Format(time.RFC3339),
	}, "healthy")
}

func (h *MarketplaceHandler) scope(c *gin.Context) viewservice.Scope {
	return viewservice.Scope{
		ActingUserID: helpers.ActingUser(c),
		Params:       helpers.QueryParams(c),
	}
}

// fail writes the mapped error response. Client errors log at warn level,
// server errors at error level.
func (h *MarketplaceHandler) fail(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	logFields := map[string]any{"handler": handlerName, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", logFields)
		return
	}
	utils.Warn(handlerName+": request rejected", logFields)
}

func readBody(c *gin.Context) ([]byte, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errors.New("empty body")
	}
	return body, nil
}
