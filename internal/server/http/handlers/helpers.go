package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
	"github.com/naijamart/storefront/internal/server/http/middleware"
)

// CurrentActor extracts the authenticated principal from the gin context.
func CurrentActor(c *gin.Context) model.Actor {
	actor := model.Actor{Role: model.RoleUser}
	if val, ok := c.Get(middleware.UserIDContextKey); ok {
		actor.UserID, _ = val.(int64)
	}
	if val, ok := c.Get(middleware.RoleContextKey); ok {
		if role, ok := val.(model.Role); ok {
			actor.Role = role
		}
	}
	return actor
}

// CurrentUserID extracts the authenticated user identifier from the context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// statusFromError maps domain errors onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrConflict), errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domainErrors.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
