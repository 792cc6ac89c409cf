package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-bff/internal/pkg/clock"
	"marketplace-bff/internal/server"
	"marketplace-bff/internal/store"
	"marketplace-bff/internal/viewservice"
)

// seedFile holds the sample documents every test starts from.
const seedFile = "../../fixtures/seed.yaml"

// now is the instant the fake clock reports during the suite.
var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// SetupTestRouter initializes the router over a seeded in-memory store.
func SetupTestRouter(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := clock.NewFake(now)
	mem := store.NewMemoryStore(clk)
	if _, err := store.LoadSeed(seedFile, mem); err != nil {
		t.Fatalf("failed to load seed: %v", err)
	}

	service := viewservice.NewViewService(mem, clk, 50)
	router := server.SetupRouter(service, clk)
	return router, mem
}

// ExecuteRequestAndParse executes an HTTP request as userID and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(server.ActingUserHeader, userID)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data returns the envelope's data as an object
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("data is %T, want object", resp["data"])
	}
	return data
}

// Items returns the envelope's data as a list
func Items(t *testing.T, resp map[string]any) []any {
	t.Helper()
	items, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("data is %T, want list", resp["data"])
	}
	return items
}
