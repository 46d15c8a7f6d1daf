package rest

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feral-file/nft-ledger/internal/api/middleware"
	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/ledger"
	"github.com/feral-file/nft-ledger/internal/store"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

const (
	defaultEventPageSize = 100
	maxEventPageSize     = 1000
)

// Handler defines the REST API handler interface
type Handler interface {
	// GetBalance returns the token count of an account
	// GET /api/v1/accounts/:account/balance
	GetBalance(c *gin.Context)

	// GetToken returns the owner and recorded delegate of a token
	// GET /api/v1/tokens/:token_id
	GetToken(c *gin.Context)

	// GetOperator reports whether an operator grant exists
	// GET /api/v1/accounts/:account/operators/:operator
	GetOperator(c *gin.Context)

	// Mint creates a token owned by the caller
	// POST /api/v1/tokens/mint
	Mint(c *gin.Context)

	// Burn destroys a caller-owned token
	// POST /api/v1/tokens/burn
	Burn(c *gin.Context)

	// Transfer moves a caller-owned token
	// POST /api/v1/tokens/transfer
	Transfer(c *gin.Context)

	// TransferFrom moves a token on behalf of its owner
	// POST /api/v1/tokens/transfer-from
	TransferFrom(c *gin.Context)

	// Approve records a single-token transfer delegate
	// POST /api/v1/tokens/approve
	Approve(c *gin.Context)

	// SetApprovalForAll grants or revokes an operator
	// POST /api/v1/operators
	SetApprovalForAll(c *gin.Context)

	// ListEvents pages through the durable event journal
	// GET /api/v1/events
	ListEvents(c *gin.Context)

	// CreateWebhookClient registers a webhook client (requires API key)
	// POST /api/v1/webhooks/clients
	CreateWebhookClient(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	ledger   *ledger.Ledger
	journal  store.EventJournal
	webhooks store.WebhookStore
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, l *ledger.Ledger, journal store.EventJournal, webhooks store.WebhookStore) Handler {
	return &handler{
		debug:    debug,
		ledger:   l,
		journal:  journal,
		webhooks: webhooks,
	}
}

// caller resolves the authenticated caller's account id from the JWT subject.
// API-key callers carry no account identity and cannot mutate the ledger.
func caller(c *gin.Context) (domain.AccountID, bool) {
	subject := c.GetString(middleware.AUTH_SUBJECT_KEY)
	if subject == "" {
		respondUnauthorized(c, "Caller identity required", "mutations require a JWT whose subject is an account id")
		return domain.ZeroAccount, false
	}

	account, err := domain.ParseAccountID(subject)
	if err != nil {
		respondUnauthorized(c, "Invalid caller identity", err.Error())
		return domain.ZeroAccount, false
	}
	if account.IsZero() {
		respondUnauthorized(c, "Invalid caller identity", "the null account cannot act")
		return domain.ZeroAccount, false
	}

	return account, true
}

// parseTokenIDParam parses the :token_id path parameter
func parseTokenIDParam(c *gin.Context) (domain.TokenID, bool) {
	raw := c.Param("token_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid token id", raw)
		return 0, false
	}
	return domain.TokenID(id), true
}

// GetBalance returns the token count of an account
func (h *handler) GetBalance(c *gin.Context) {
	account, err := domain.ParseAccountID(c.Param("account"))
	if err != nil {
		respondBadRequest(c, "Invalid account id", err.Error())
		return
	}

	balance, err := h.ledger.BalanceOf(c.Request.Context(), account)
	if err != nil {
		respondInternalError(c, err, "Failed to fetch balance")
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		Account: account.String(),
		Balance: balance,
	})
}

// GetToken returns the owner and recorded delegate of a token
func (h *handler) GetToken(c *gin.Context) {
	id, ok := parseTokenIDParam(c)
	if !ok {
		return
	}

	owner, err := h.ledger.OwnerOf(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to fetch token")
		return
	}
	if owner == nil {
		respondNotFound(c, "Token not found")
		return
	}

	delegate, err := h.ledger.TokenDelegate(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to fetch token delegate")
		return
	}

	resp := OwnerResponse{
		TokenID: id,
		Owner:   owner.String(),
	}
	if delegate != nil {
		s := delegate.String()
		resp.Delegate = &s
	}

	c.JSON(http.StatusOK, resp)
}

// GetOperator reports whether an operator grant exists
func (h *handler) GetOperator(c *gin.Context) {
	owner, err := domain.ParseAccountID(c.Param("account"))
	if err != nil {
		respondBadRequest(c, "Invalid owner account id", err.Error())
		return
	}
	operator, err := domain.ParseAccountID(c.Param("operator"))
	if err != nil {
		respondBadRequest(c, "Invalid operator account id", err.Error())
		return
	}

	approved, err := h.ledger.IsOperator(c.Request.Context(), owner, operator)
	if err != nil {
		respondInternalError(c, err, "Failed to fetch operator grant")
		return
	}

	c.JSON(http.StatusOK, OperatorResponse{
		Owner:    owner.String(),
		Operator: operator.String(),
		Approved: approved,
	})
}

// Mint creates a token owned by the caller
func (h *handler) Mint(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.ledger.Mint(c.Request.Context(), account, req.TokenID); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, OwnerResponse{
		TokenID: req.TokenID,
		Owner:   account.String(),
	})
}

// Burn destroys a caller-owned token
func (h *handler) Burn(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	var req BurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.ledger.Burn(c.Request.Context(), account, req.TokenID); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Transfer moves a caller-owned token
func (h *handler) Transfer(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	to, err := domain.ParseAccountID(req.To)
	if err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid destination account: %v", err))
		return
	}

	if err := h.ledger.Transfer(c.Request.Context(), account, to, req.TokenID); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, OwnerResponse{
		TokenID: req.TokenID,
		Owner:   to.String(),
	})
}

// TransferFrom moves a token on behalf of its owner
func (h *handler) TransferFrom(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	var req TransferFromRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	from, err := domain.ParseAccountID(req.From)
	if err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid source account: %v", err))
		return
	}
	to, err := domain.ParseAccountID(req.To)
	if err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid destination account: %v", err))
		return
	}

	if err := h.ledger.TransferFrom(c.Request.Context(), account, from, to, req.TokenID); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, OwnerResponse{
		TokenID: req.TokenID,
		Owner:   to.String(),
	})
}

// Approve records a single-token transfer delegate
func (h *handler) Approve(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	to, err := domain.ParseAccountID(req.To)
	if err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid delegate account: %v", err))
		return
	}

	if err := h.ledger.Approve(c.Request.Context(), account, to, req.TokenID); err != nil {
		respondLedgerError(c, err)
		return
	}

	delegate := to.String()
	c.JSON(http.StatusOK, OwnerResponse{
		TokenID:  req.TokenID,
		Owner:    account.String(),
		Delegate: &delegate,
	})
}

// SetApprovalForAll grants or revokes an operator
func (h *handler) SetApprovalForAll(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	var req ApprovalForAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	operator, err := domain.ParseAccountID(req.Operator)
	if err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid operator account: %v", err))
		return
	}

	if err := h.ledger.SetApprovalForAll(c.Request.Context(), account, operator, req.Approved); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, OperatorResponse{
		Owner:    account.String(),
		Operator: operator.String(),
		Approved: req.Approved,
	})
}

// ListEvents pages through the durable event journal
func (h *handler) ListEvents(c *gin.Context) {
	var cursor int64
	if raw := c.Query("cursor"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			respondBadRequest(c, "Invalid cursor", raw)
			return
		}
		cursor = parsed
	}

	limit := defaultEventPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxEventPageSize {
			respondBadRequest(c, "Invalid limit", raw)
			return
		}
		limit = parsed
	}

	var eventType *domain.EventType
	if raw := c.Query("type"); raw != "" {
		t := domain.EventType(raw)
		if !domain.ValidEventFilter(t) || t == domain.EventTypeWildcard {
			respondBadRequest(c, "Invalid event type", raw)
			return
		}
		eventType = &t
	}

	events, err := h.journal.ListEvents(c.Request.Context(), cursor, limit, eventType)
	if err != nil {
		respondInternalError(c, err, "Failed to list events")
		return
	}

	resp := ListEventsResponse{
		Events:     make([]EventResponse, 0, len(events)),
		NextCursor: cursor,
	}
	for _, event := range events {
		var payload interface{}
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			respondInternalError(c, err, "Failed to decode event payload")
			return
		}
		resp.Events = append(resp.Events, EventResponse{
			Cursor:    event.Cursor,
			EventID:   event.EventID,
			EventType: domain.EventType(event.EventType),
			TokenID:   event.TokenID,
			Payload:   payload,
			CreatedAt: event.CreatedAt,
		})
		resp.NextCursor = event.Cursor
	}

	c.JSON(http.StatusOK, resp)
}

// CreateWebhookClient registers a webhook client (requires API key)
func (h *handler) CreateWebhookClient(c *gin.Context) {
	var req CreateWebhookClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(h.debug); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	secret, err := generateWebhookSecret()
	if err != nil {
		respondInternalError(c, err, "Failed to generate webhook secret")
		return
	}

	filters, err := json.Marshal(req.EventFilters)
	if err != nil {
		respondInternalError(c, err, "Failed to encode event filters")
		return
	}

	client := &schema.WebhookClient{
		ClientID:      uuid.New().String(),
		WebhookURL:    req.WebhookURL,
		WebhookSecret: secret,
		EventFilters:  filters,
		IsActive:      true,
	}
	if req.RetryMaxAttempts != nil {
		client.RetryMaxAttempts = *req.RetryMaxAttempts
	}

	if err := h.webhooks.CreateWebhookClient(c.Request.Context(), client); err != nil {
		respondInternalError(c, err, "Failed to create webhook client")
		return
	}

	c.JSON(http.StatusCreated, CreateWebhookClientResponse{
		ClientID:      client.ClientID,
		WebhookSecret: secret,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// generateWebhookSecret produces a 256-bit random secret, hex encoded
func generateWebhookSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
