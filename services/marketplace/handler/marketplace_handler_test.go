package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"marketplace-bff/internal/marketerrors"
	"marketplace-bff/internal/pkg/clock"
	"marketplace-bff/internal/timestamp"
	"marketplace-bff/internal/transforms/category"
	"marketplace-bff/internal/viewservice"
	"marketplace-bff/services/marketplace/helpers"
)

// Helper to build a router around a mocked service
func newRouter(t *testing.T) (*gin.Engine, *MockMarketplaceServiceInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockMarketplaceServiceInterface(ctrl)
	h := NewMarketplaceHandler(mockService, clock.NewFake(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-User-ID"); id != "" {
			c.Set(helpers.ActingUserKey, id)
		}
	})
	router.GET("/healthz", h.HealthHandler)
	router.GET("/api/categories-tree", h.CategoryTreeHandler)
	router.GET("/api/:resource", h.ListHandler)
	router.POST("/api/:resource", h.CreateHandler)
	router.GET("/api/:resource/:id", h.GetHandler)
	router.PATCH("/api/:resource/:id", h.UpdateHandler)
	return router, mockService
}

func do(t *testing.T, router *gin.Engine, method, url, userID, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestGetHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		userID         string
		mockSetup      func(m *MockMarketplaceServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "success",
			url:    "/api/auctions/auc-1",
			userID: "u1",
			mockSetup: func(m *MockMarketplaceServiceInterface) {
				m.EXPECT().
					Get(gomock.Any(), "auctions", "auc-1", viewservice.Scope{ActingUserID: "u1", Params: map[string]string{}}).
					Return(map[string]any{"id": "auc-1", "isYourAuction": true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "document retrieved successfully",
		},
		{
			name: "not_found",
			url:  "/api/orders/missing",
			mockSetup: func(m *MockMarketplaceServiceInterface) {
				m.EXPECT().Get(gomock.Any(), "orders", "missing", gomock.Any()).
					Return(nil, fmt.Errorf("service: %w", marketerrors.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "document not found",
		},
		{
			name: "unknown_resource",
			url:  "/api/widgets/w1",
			mockSetup: func(m *MockMarketplaceServiceInterface) {
				m.EXPECT().Get(gomock.Any(), "widgets", "w1", gomock.Any()).
					Return(nil, marketerrors.ErrUnknownResource)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "unknown resource",
		},
		{
			name: "malformed_document",
			url:  "/api/orders/o1",
			mockSetup: func(m *MockMarketplaceServiceInterface) {
				m.EXPECT().Get(gomock.Any(), "orders", "o1", gomock.Any()).
					Return(nil, fmt.Errorf("service: failed to render: %w", timestamp.ErrMalformed))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "malformed document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.mockSetup(mockService)

			w, resp := do(t, router, http.MethodGet, tt.url, tt.userID, "")
			require.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, tt.expectedMsg, resp["message"])
			if w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, "auc-1", data["id"])
				require.Equal(t, true, data["isYourAuction"])
			} else {
				require.NotEmpty(t, resp["error"])
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	t.Run("passes_filters_and_limit", func(t *testing.T) {
		router, mockService := newRouter(t)
		mockService.EXPECT().
			List(gomock.Any(), "bids", viewservice.Scope{
				ActingUserID: "u1",
				Params:       map[string]string{"auctionId": "auc-1", "limit": "10"},
				Limit:        10,
			}).
			Return([]map[string]any{{"id": "b1"}, {"id": "b2"}}, nil)

		w, resp := do(t, router, http.MethodGet, "/api/bids?auctionId=auc-1&limit=10", "u1", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"], 2)
		require.Equal(t, float64(2), resp["count"])
		require.Equal(t, "bids retrieved successfully", resp["message"])
	})

	t.Run("invalid_limit", func(t *testing.T) {
		router, _ := newRouter(t)
		w, resp := do(t, router, http.MethodGet, "/api/bids?limit=abc", "", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "invalid request payload", resp["message"])
	})

	t.Run("limit_out_of_range", func(t *testing.T) {
		router, _ := newRouter(t)
		w, _ := do(t, router, http.MethodGet, "/api/bids?limit=1000", "", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unsupported", func(t *testing.T) {
		router, mockService := newRouter(t)
		mockService.EXPECT().List(gomock.Any(), "riplimit-purchases", gomock.Any()).
			Return(nil, marketerrors.ErrUnsupported)

		w, resp := do(t, router, http.MethodGet, "/api/riplimit-purchases", "", "")
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
		require.Equal(t, "operation not supported", resp["message"])
	})
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockMarketplaceServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			body: `{"auctionId":"auc-1","amount":1600}`,
			mockSetup: func(m *MockMarketplaceServiceInterface) {
				m.EXPECT().
					Create(gomock.Any(), "bids", []byte(`{"auctionId":"auc-1","amount":1600}`), viewservice.Scope{ActingUserID: "u1", Params: map[string]string{}}).
					Return(map[string]any{"id": "b1", "formattedAmount": "₹1,600"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "document created successfully",
		},
		{
			name:           "empty_body",
			body:           "",
			mockSetup:      func(m *MockMarketplaceServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_rejects_payload",
			body: `{"amount":0}`,
			mockSetup: func(m *MockMarketplaceServiceInterface) {
				m.EXPECT().Create(gomock.Any(), "bids", gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("service: invalid bids form: %w", marketerrors.ErrInvalidPayload))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "store_failure",
			body: `{"auctionId":"auc-1","amount":1600}`,
			mockSetup: func(m *MockMarketplaceServiceInterface) {
				m.EXPECT().Create(gomock.Any(), "bids", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("deadline exceeded"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.mockSetup(mockService)

			w, resp := do(t, router, http.MethodPost, "/api/bids", "u1", tt.body)
			require.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, tt.expectedMsg, resp["message"])
			if w.Code == http.StatusCreated {
				require.Equal(t, "₹1,600", resp["data"].(map[string]any)["formattedAmount"])
			}
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	router, mockService := newRouter(t)
	mockService.EXPECT().
		Update(gomock.Any(), "shops", "s1", []byte(`{"name":"New"}`), gomock.Any()).
		Return(map[string]any{"id": "s1", "name": "New"}, nil)
	mockService.EXPECT().
		Update(gomock.Any(), "bids", "b1", gomock.Any(), gomock.Any()).
		Return(nil, marketerrors.ErrUnsupported)

	w, resp := do(t, router, http.MethodPatch, "/api/shops/s1", "owner-1", `{"name":"New"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "New", resp["data"].(map[string]any)["name"])

	w, _ = do(t, router, http.MethodPatch, "/api/bids/b1", "", `{"amount":1}`)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w, _ = do(t, router, http.MethodPatch, "/api/shops/s1", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryTreeHandler(t *testing.T) {
	router, mockService := newRouter(t)
	mockService.EXPECT().CategoryTree(gomock.Any()).Return([]category.Node{
		{CategoryFE: category.CategoryFE{ID: "root", Name: "Electronics"}, Children: []category.Node{
			{CategoryFE: category.CategoryFE{ID: "cams", Name: "Cameras"}, Children: []category.Node{}},
		}},
	}, nil)

	w, resp := do(t, router, http.MethodGet, "/api/categories-tree", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	roots := resp["data"].([]any)
	require.Len(t, roots, 1)
	root := roots[0].(map[string]any)
	require.Equal(t, "root", root["id"])
	require.Len(t, root["children"], 1)
}

func TestHealthHandler(t *testing.T) {
	router, _ := newRouter(t)
	w, resp := do(t, router, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, "ok", data["status"])
	require.Equal(t, float64(len(viewservice.Resources())), data["resources"])
	require.Equal(t, "2024-06-01T12:00:00Z", data["time"])
}
