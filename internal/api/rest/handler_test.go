package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/nft-ledger/internal/adapter"
	"github.com/feral-file/nft-ledger/internal/api/middleware"
	"github.com/feral-file/nft-ledger/internal/api/rest"
	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/ledger"
	"github.com/feral-file/nft-ledger/internal/logger"
	"github.com/feral-file/nft-ledger/internal/messaging"
	mockspkg "github.com/feral-file/nft-ledger/internal/mocks"
	"github.com/feral-file/nft-ledger/internal/store"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func account(b byte) domain.AccountID {
	var a domain.AccountID
	a[len(a)-1] = b
	return a
}

type testAPI struct {
	router   *gin.Engine
	ledger   *ledger.Ledger
	store    *store.MemoryStore
	journal  *mockspkg.MockEventJournal
	webhooks *mockspkg.MockWebhookStore
}

// setupTestAPI wires the handler behind a router that injects the caller
// identity the way the auth middleware would after validating a JWT
func setupTestAPI(t *testing.T, subject string) *testAPI {
	ctrl := gomock.NewController(t)

	st := store.NewMemoryStore()
	journal := mockspkg.NewMockEventJournal(ctrl)
	webhooks := mockspkg.NewMockWebhookStore(ctrl)
	l := ledger.New(st, messaging.NewNoopPublisher(), adapter.NewClock())

	h := rest.NewHandler(false, l, journal, webhooks)

	router := gin.New()
	identity := func(c *gin.Context) {
		if subject != "" {
			c.Set(middleware.AUTH_SUBJECT_KEY, subject)
		}
		c.Next()
	}

	router.GET("/health", h.HealthCheck)
	v1 := router.Group("/api/v1")
	v1.GET("/accounts/:account/balance", h.GetBalance)
	v1.GET("/accounts/:account/operators/:operator", h.GetOperator)
	v1.GET("/tokens/:token_id", h.GetToken)
	v1.GET("/events", h.ListEvents)
	v1.POST("/tokens/mint", identity, h.Mint)
	v1.POST("/tokens/burn", identity, h.Burn)
	v1.POST("/tokens/transfer", identity, h.Transfer)
	v1.POST("/tokens/transfer-from", identity, h.TransferFrom)
	v1.POST("/tokens/approve", identity, h.Approve)
	v1.POST("/operators", identity, h.SetApprovalForAll)
	v1.POST("/webhooks/clients", h.CreateWebhookClient)

	return &testAPI{
		router:   router,
		ledger:   l,
		store:    st,
		journal:  journal,
		webhooks: webhooks,
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	api := setupTestAPI(t, "")

	w := api.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMintEndpoint(t *testing.T) {
	caller := account(1)
	api := setupTestAPI(t, caller.String())

	w := api.do(t, http.MethodPost, "/api/v1/tokens/mint", rest.MintRequest{TokenID: 1})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp rest.OwnerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.TokenID(1), resp.TokenID)
	assert.Equal(t, caller.String(), resp.Owner)

	// Duplicate mint conflicts
	w = api.do(t, http.MethodPost, "/api/v1/tokens/mint", rest.MintRequest{TokenID: 1})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMintEndpoint_RequiresIdentity(t *testing.T) {
	api := setupTestAPI(t, "")

	w := api.do(t, http.MethodPost, "/api/v1/tokens/mint", rest.MintRequest{TokenID: 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMintEndpoint_RejectsZeroSubject(t *testing.T) {
	api := setupTestAPI(t, domain.ZeroAccount.String())

	w := api.do(t, http.MethodPost, "/api/v1/tokens/mint", rest.MintRequest{TokenID: 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMintEndpoint_RejectsMalformedSubject(t *testing.T) {
	api := setupTestAPI(t, "not-an-account")

	w := api.do(t, http.MethodPost, "/api/v1/tokens/mint", rest.MintRequest{TokenID: 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetBalanceEndpoint(t *testing.T) {
	caller := account(1)
	api := setupTestAPI(t, caller.String())

	require.NoError(t, api.ledger.Mint(context.Background(), caller, 1))
	require.NoError(t, api.ledger.Mint(context.Background(), caller, 2))

	w := api.do(t, http.MethodGet, "/api/v1/accounts/"+caller.String()+"/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp rest.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(2), resp.Balance)

	// Unknown accounts read as zero
	other := account(9)
	w = api.do(t, http.MethodGet, "/api/v1/accounts/"+other.String()+"/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(0), resp.Balance)
}

func TestGetBalanceEndpoint_BadAccount(t *testing.T) {
	api := setupTestAPI(t, "")

	w := api.do(t, http.MethodGet, "/api/v1/accounts/xyz/balance", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTokenEndpoint(t *testing.T) {
	caller := account(1)
	delegate := account(2)
	api := setupTestAPI(t, caller.String())

	require.NoError(t, api.ledger.Mint(context.Background(), caller, 7))
	require.NoError(t, api.ledger.Approve(context.Background(), caller, delegate, 7))

	w := api.do(t, http.MethodGet, "/api/v1/tokens/7", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp rest.OwnerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, caller.String(), resp.Owner)
	require.NotNil(t, resp.Delegate)
	assert.Equal(t, delegate.String(), *resp.Delegate)
}

func TestGetTokenEndpoint_NotFound(t *testing.T) {
	api := setupTestAPI(t, "")

	w := api.do(t, http.MethodGet, "/api/v1/tokens/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTokenEndpoint_BadID(t *testing.T) {
	api := setupTestAPI(t, "")

	w := api.do(t, http.MethodGet, "/api/v1/tokens/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransferEndpoint(t *testing.T) {
	caller := account(1)
	to := account(2)
	api := setupTestAPI(t, caller.String())

	require.NoError(t, api.ledger.Mint(context.Background(), caller, 1))

	w := api.do(t, http.MethodPost, "/api/v1/tokens/transfer", rest.TransferRequest{
		TokenID: 1,
		To:      to.String(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	owner, err := api.ledger.OwnerOf(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, to, *owner)
}

func TestTransferEndpoint_Forbidden(t *testing.T) {
	stranger := account(9)
	api := setupTestAPI(t, stranger.String())

	owner := account(1)
	require.NoError(t, api.ledger.Mint(context.Background(), owner, 1))

	w := api.do(t, http.MethodPost, "/api/v1/tokens/transfer", rest.TransferRequest{
		TokenID: 1,
		To:      stranger.String(),
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTransferEndpoint_TokenNotFound(t *testing.T) {
	caller := account(1)
	api := setupTestAPI(t, caller.String())

	w := api.do(t, http.MethodPost, "/api/v1/tokens/transfer", rest.TransferRequest{
		TokenID: 99,
		To:      account(2).String(),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransferFromEndpoint(t *testing.T) {
	owner := account(1)
	delegate := account(2)
	to := account(3)
	api := setupTestAPI(t, delegate.String())

	require.NoError(t, api.ledger.Mint(context.Background(), owner, 1))
	require.NoError(t, api.ledger.Approve(context.Background(), owner, delegate, 1))

	w := api.do(t, http.MethodPost, "/api/v1/tokens/transfer-from", rest.TransferFromRequest{
		TokenID: 1,
		From:    owner.String(),
		To:      to.String(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	got, err := api.ledger.OwnerOf(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, to, *got)
}

func TestApproveEndpoint_Conflict(t *testing.T) {
	caller := account(1)
	api := setupTestAPI(t, caller.String())

	require.NoError(t, api.ledger.Mint(context.Background(), caller, 1))
	require.NoError(t, api.ledger.Approve(context.Background(), caller, account(2), 1))

	w := api.do(t, http.MethodPost, "/api/v1/tokens/approve", rest.ApproveRequest{
		TokenID: 1,
		To:      account(3).String(),
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBurnEndpoint(t *testing.T) {
	caller := account(1)
	api := setupTestAPI(t, caller.String())

	require.NoError(t, api.ledger.Mint(context.Background(), caller, 1))

	w := api.do(t, http.MethodPost, "/api/v1/tokens/burn", rest.BurnRequest{TokenID: 1})
	assert.Equal(t, http.StatusNoContent, w.Code)

	exists, err := api.ledger.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSetApprovalForAllEndpoint(t *testing.T) {
	caller := account(1)
	operator := account(2)
	api := setupTestAPI(t, caller.String())

	w := api.do(t, http.MethodPost, "/api/v1/operators", rest.ApprovalForAllRequest{
		Operator: operator.String(),
		Approved: true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	path := fmt.Sprintf("/api/v1/accounts/%s/operators/%s", caller.String(), operator.String())
	w = api.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp rest.OperatorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Approved)
}

func TestSetApprovalForAllEndpoint_SelfGrant(t *testing.T) {
	caller := account(1)
	api := setupTestAPI(t, caller.String())

	w := api.do(t, http.MethodPost, "/api/v1/operators", rest.ApprovalForAllRequest{
		Operator: caller.String(),
		Approved: true,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListEventsEndpoint(t *testing.T) {
	api := setupTestAPI(t, "")

	tokenID := uint64(7)
	rows := []*schema.LedgerEvent{
		{
			Cursor:    1,
			EventID:   "01ARZ3NDEKTSV4RRFFQ69G5FA1",
			EventType: string(domain.EventTypeTransfer),
			TokenID:   &tokenID,
			Payload:   []byte(`{"event_id":"01ARZ3NDEKTSV4RRFFQ69G5FA1"}`),
			CreatedAt: time.Now().UTC(),
		},
		{
			Cursor:    2,
			EventID:   "01ARZ3NDEKTSV4RRFFQ69G5FA2",
			EventType: string(domain.EventTypeApproval),
			TokenID:   &tokenID,
			Payload:   []byte(`{"event_id":"01ARZ3NDEKTSV4RRFFQ69G5FA2"}`),
			CreatedAt: time.Now().UTC(),
		},
	}
	api.journal.EXPECT().ListEvents(gomock.Any(), int64(0), 100, gomock.Nil()).Return(rows, nil)

	w := api.do(t, http.MethodGet, "/api/v1/events", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp rest.ListEventsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 2)
	assert.Equal(t, int64(2), resp.NextCursor)
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FA1", resp.Events[0].EventID)
}

func TestListEventsEndpoint_TypeFilter(t *testing.T) {
	api := setupTestAPI(t, "")

	filter := domain.EventTypeTransfer
	api.journal.EXPECT().ListEvents(gomock.Any(), int64(5), 10, &filter).
		Return([]*schema.LedgerEvent{}, nil)

	w := api.do(t, http.MethodGet, "/api/v1/events?cursor=5&limit=10&type=transfer", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListEventsEndpoint_BadParams(t *testing.T) {
	api := setupTestAPI(t, "")

	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/events?cursor=-1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/events?limit=0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/events?limit=5000", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/events?type=minted", nil).Code)
	// The wildcard is a webhook filter, not a query filter
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/events?type=*", nil).Code)
}

func TestCreateWebhookClientEndpoint(t *testing.T) {
	api := setupTestAPI(t, "")

	var created *schema.WebhookClient
	api.webhooks.EXPECT().CreateWebhookClient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, client *schema.WebhookClient) error {
			created = client
			return nil
		})

	w := api.do(t, http.MethodPost, "/api/v1/webhooks/clients", rest.CreateWebhookClientRequest{
		WebhookURL:   "https://example.com/hooks",
		EventFilters: []string{"transfer", "approval"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp rest.CreateWebhookClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ClientID)
	// 32 random bytes, hex encoded
	assert.Len(t, resp.WebhookSecret, 64)

	require.NotNil(t, created)
	assert.True(t, created.IsActive)
	assert.Equal(t, resp.ClientID, created.ClientID)
	assert.JSONEq(t, `["transfer","approval"]`, string(created.EventFilters))
}

func TestCreateWebhookClientEndpoint_Validation(t *testing.T) {
	api := setupTestAPI(t, "")

	// Plain HTTP is rejected outside debug mode
	w := api.do(t, http.MethodPost, "/api/v1/webhooks/clients", rest.CreateWebhookClientRequest{
		WebhookURL:   "http://example.com/hooks",
		EventFilters: []string{"transfer"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown filters are rejected
	w = api.do(t, http.MethodPost, "/api/v1/webhooks/clients", rest.CreateWebhookClientRequest{
		WebhookURL:   "https://example.com/hooks",
		EventFilters: []string{"minted"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Gin rejects two different wildcard names in the same path segment at
// registration time, so the production route table must keep one name per
// segment. Wire the real routes and exercise both /accounts/:account routes.
func TestSetupRoutes_RegistersAndServes(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := store.NewMemoryStore()
	l := ledger.New(st, messaging.NewNoopPublisher(), adapter.NewClock())
	h := rest.NewHandler(false, l, mockspkg.NewMockEventJournal(ctrl), mockspkg.NewMockWebhookStore(ctrl))

	router := gin.New()
	require.NotPanics(t, func() {
		rest.SetupRoutes(router, h, middleware.AuthConfig{})
	})

	owner := account(1)
	operator := account(2)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	path := fmt.Sprintf("/api/v1/accounts/%s/balance", owner.String())
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	path = fmt.Sprintf("/api/v1/accounts/%s/operators/%s", owner.String(), operator.String())
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp rest.OperatorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, owner.String(), resp.Owner)
	assert.Equal(t, operator.String(), resp.Operator)
	assert.False(t, resp.Approved)
}
