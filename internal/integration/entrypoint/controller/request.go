// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// requireUserID returns the authenticated user or writes a 401 response.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id path parameter or writes a 400 response.
func pathID(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("Invalid %s ID format", resource),
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseDate accepts a calendar date (midnight UTC) or an RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dto.DateLayout, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", value)
	}
	return t.UTC(), nil
}

// parseEndDate is parseDate, except a calendar date covers the whole day
// (to the microsecond, the finest precision postgres keeps).
func parseEndDate(value string) (time.Time, error) {
	if t, err := time.Parse(dto.DateLayout, value); err == nil {
		return t.UTC().Add(24*time.Hour - time.Microsecond), nil
	}
	return parseDate(value)
}

func parseOptionalDate(value *string, parse func(string) (time.Time, error)) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parse(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func writeInternalError(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
