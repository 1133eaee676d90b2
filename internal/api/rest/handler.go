package rest

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tokentreat/treat-service/internal/api/shared/dto"
	"github.com/tokentreat/treat-service/internal/api/shared/errors"
	"github.com/tokentreat/treat-service/internal/api/shared/executor"
	"github.com/tokentreat/treat-service/internal/creation"
	"github.com/tokentreat/treat-service/internal/imagegen"
)

const IDEMPOTENCY_KEY_HEADER = "Idempotency-Key"

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetTreat retrieves a single treat with its owner
	// GET /api/v1/treats/:id
	GetTreat(c *gin.Context)

	// ListIssuedTreats lists every treat issued by an address, unfiltered
	// GET /api/v1/issuers/:address/treats
	ListIssuedTreats(c *gin.Context)

	// ListBurnableTreats lists burn eligible treats
	// GET /api/v1/treats/burnable?source=<scan|supply|index>&offset=<offset>&limit=<limit>
	ListBurnableTreats(c *gin.Context)

	// GetToken resolves a token descriptor; the zero address is the native currency
	// GET /api/v1/tokens/:address
	GetToken(c *gin.Context)

	// ListTokens lists the offered payment tokens
	// GET /api/v1/tokens
	ListTokens(c *gin.Context)

	// CreateQuote computes the fee breakdown for a value
	// POST /api/v1/quotes
	CreateQuote(c *gin.Context)

	// CreateTreat validates a draft and runs it through creation (requires authentication)
	// POST /api/v1/treats
	CreateTreat(c *gin.Context)

	// GetCreationRun retrieves a persisted creation run
	// GET /api/v1/creations/:id
	GetCreationRun(c *gin.Context)

	// BurnTreat burns a burn eligible treat (requires authentication)
	// POST /api/v1/treats/:id/burn
	BurnTreat(c *gin.Context)

	// SubmitImagePrompt records a prompt edit for an image session (requires authentication)
	// PUT /api/v1/images/sessions/:session
	SubmitImagePrompt(c *gin.Context)

	// GetImageSession retrieves the latest generation of an image session
	// GET /api/v1/images/sessions/:session
	GetImageSession(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) GetTreat(c *gin.Context) {
	id, err := parseTreatID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid treat id", err.Error())
		return
	}

	treat, err := h.executor.GetTreat(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get treat")
		return
	}

	c.JSON(http.StatusOK, treat)
}

func (h *handler) ListIssuedTreats(c *gin.Context) {
	issuer := c.Param("address")
	if !validAddress(issuer) {
		respondBadRequest(c, "Invalid issuer address")
		return
	}

	treats, err := h.executor.ListIssuedTreats(c.Request.Context(), issuer)
	if err != nil {
		respondError(c, err, "Failed to list issued treats")
		return
	}

	c.JSON(http.StatusOK, dto.TreatListResponse{Treats: treats, Count: len(treats)})
}

func (h *handler) ListBurnableTreats(c *gin.Context) {
	queryParams, err := ParseBurnableQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	page, err := h.executor.ListBurnableTreats(c.Request.Context(), queryParams.Page())
	if err != nil {
		respondError(c, err, "Failed to list burnable treats")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *handler) GetToken(c *gin.Context) {
	address := c.Param("address")
	if !validAddress(address) {
		respondBadRequest(c, "Invalid token address")
		return
	}

	desc, err := h.executor.GetToken(c.Request.Context(), address)
	if err != nil {
		respondError(c, err, "Failed to resolve token")
		return
	}

	c.JSON(http.StatusOK, desc)
}

func (h *handler) ListTokens(c *gin.Context) {
	tokens, err := h.executor.ListTokens(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list tokens")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}

func (h *handler) CreateQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	quote, err := h.executor.Quote(c.Request.Context(), req.Value, req.TokenAddress)
	if err != nil {
		respondError(c, err, "Failed to compute quote")
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *handler) CreateTreat(c *gin.Context) {
	var req dto.CreateTreatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	key := req.IdempotencyKey
	if key == "" {
		key = c.GetHeader(IDEMPOTENCY_KEY_HEADER)
	}

	run, err := h.executor.CreateTreat(c.Request.Context(), creation.Request{
		Draft:          draft,
		IdempotencyKey: key,
	})
	if err != nil {
		if run == nil {
			respondError(c, err, creation.GenericErrorMessage)
			return
		}

		// The run is persisted as FAILED and carries the user facing message
		fallback := run.Error
		if fallback == "" {
			fallback = creation.GenericErrorMessage
		}
		status, apiErr := errors.FromDomain(err, fallback)
		logCause(c, status, err)
		c.JSON(status, dto.CreationErrorResponse{Error: apiErr, Run: run})
		return
	}

	c.JSON(http.StatusCreated, run)
}

func (h *handler) GetCreationRun(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondBadRequest(c, "Creation run id is required")
		return
	}

	run, err := h.executor.GetCreationRun(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get creation run")
		return
	}

	c.JSON(http.StatusOK, run)
}

func (h *handler) BurnTreat(c *gin.Context) {
	id, err := parseTreatID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid treat id", err.Error())
		return
	}

	result, err := h.executor.BurnTreat(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Error burning treat, please try again later")
		return
	}

	c.JSON(http.StatusOK, dto.BurnResponse{ID: result.ID.String(), TxHash: result.TxHash})
}

func (h *handler) SubmitImagePrompt(c *gin.Context) {
	session := strings.TrimSpace(c.Param("session"))
	if session == "" {
		respondBadRequest(c, "Session is required")
		return
	}

	var req dto.ImagePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	result := h.executor.SubmitImagePrompt(session, req.Prompt)
	c.JSON(http.StatusAccepted, toImageSessionResponse(session, result))
}

func (h *handler) GetImageSession(c *gin.Context) {
	session := strings.TrimSpace(c.Param("session"))

	result, ok := h.executor.GetImageSession(session)
	if !ok {
		respondNotFound(c, "Image session not found")
		return
	}

	c.JSON(http.StatusOK, toImageSessionResponse(session, result))
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "treat-service-api",
	})
}

func toImageSessionResponse(session string, result imagegen.Result) dto.ImageSessionResponse {
	resp := dto.ImageSessionResponse{
		Session:  session,
		Prompt:   result.Prompt,
		ImageURL: result.ImageURL,
		Error:    result.Error,
		Sequence: result.Sequence,
		Pending:  result.Pending,
	}
	if !result.UpdatedAt.IsZero() {
		resp.UpdatedAt = result.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
