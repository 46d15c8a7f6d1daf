package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/nft-ledger/internal/api/apierrors"
	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError(message, details...))
}

// respondInternalError responds with an internal server error and logs it
func respondInternalError(c *gin.Context, err error, message string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondLedgerError maps the ledger's sentinel errors onto HTTP statuses.
// ErrCannotFetchValue is a consistency fault in the balance tables, so it
// surfaces as a server error, not a client one.
func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTokenNotFound):
		respondNotFound(c, "Token not found")
	case errors.Is(err, domain.ErrTokenExists):
		c.JSON(http.StatusConflict, apierrors.NewConflictError("Token already exists"))
	case errors.Is(err, domain.ErrCannotInsert):
		c.JSON(http.StatusConflict, apierrors.NewConflictError("Approval slot already taken"))
	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError("Caller is not the token owner"))
	case errors.Is(err, domain.ErrNotApproved):
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError("Caller is not authorized for this token"))
	case errors.Is(err, domain.ErrNotAllowed):
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError("Operation not allowed"))
	case errors.Is(err, domain.ErrCannotFetchValue):
		respondInternalError(c, err, "Ledger state is inconsistent")
	default:
		respondInternalError(c, err, "Operation failed")
	}
}
