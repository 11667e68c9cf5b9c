package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	auction "marketplace-auction/internal/auctionService"
	"marketplace-auction/internal/auth"
	"marketplace-auction/internal/events"
	model "marketplace-auction/internal/models"
	"marketplace-auction/internal/repository"
	"marketplace-auction/internal/server"
	"marketplace-auction/internal/store"
)

var testTokens = auth.NewTokenManager("integration-test-secret", time.Hour)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// SetupTestRouter initializes the router with an in-memory store for
// integration testing. The returned fake clock drives bidding windows.
func SetupTestRouter() (*gin.Engine, *clockwork.FakeClock) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewLedgerRepo(store.NewMemoryStore())
	clock := clockwork.NewFakeClockAt(testStart)
	service := auction.NewAuctionService(repo, auth.ContextAuthorizer{}, clock, events.LogPublisher{})
	router := server.SetupRouter(service, testTokens)
	return router, clock
}

// ExecuteRequestAndParse executes an HTTP request on the given router,
// signing it as the given address when one is provided, and parses the
// response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, as model.Address) (map[string]any, *httptest.ResponseRecorder) {
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

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if as != "" {
		token, err := testTokens.Issue(as)
		if err != nil {
			t.Fatalf("failed to issue token for %s: %v", as, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// data unwraps the data object of a response envelope.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}
