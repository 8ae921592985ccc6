package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gruposcout/tropa-api/internal/api/handler/v1/response"
	"github.com/gruposcout/tropa-api/internal/api/middleware"
	"github.com/gruposcout/tropa-api/internal/domain"
)

const dateLayout = "02/01/2006"

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// getUserFromContext resolves the authenticated dirigente from the request
// context set by the JWT middleware.
func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrWrongCredentials(errors.New("missing authentication"))
	}

	userID, ok := value.(uint)
	if !ok {
		return domain.User{}, response.ErrWrongCredentials(errors.New("invalid authentication"))
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> svc.GetUser -> %w", err))
	}

	return user, nil
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}

	return uint(value), nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
