package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gruposcout/tropa-api/internal/api/handler/v1/response"
	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/service"
)

type UnitService interface {
	ListUnits(ctx context.Context, branch domain.Branch) ([]domain.Unit, error)
	ListMembers(ctx context.Context, branch domain.Branch) ([]domain.Member, error)
}

type UnitHandler struct {
	svc UnitService
}

func NewUnitHandler(svc UnitService) UnitHandler {
	return UnitHandler{
		svc: svc,
	}
}

// HandleListUnits godoc
// @Summary      Lists the units of a branch
// @Security     Bearer
// @Tags         units
// @Produce      json
// @Param        branch  query     string  true  "branch"
// @Success      200     {array}   domain.Unit
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /units [get]
func (h *UnitHandler) HandleListUnits(ctx *gin.Context) {
	units, err := h.svc.ListUnits(ctx.Request.Context(), domain.Branch(ctx.Query("branch")))
	if err != nil {
		if errors.Is(err, service.ErrInvalidBranch) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidBranch))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleListUnits -> h.svc.ListUnits -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, units)
}

// HandleListMembers godoc
// @Summary      Lists the members of a branch in name order
// @Security     Bearer
// @Tags         units
// @Produce      json
// @Param        branch  query     string  true  "branch"
// @Success      200     {array}   domain.Member
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /members [get]
func (h *UnitHandler) HandleListMembers(ctx *gin.Context) {
	members, err := h.svc.ListMembers(ctx.Request.Context(), domain.Branch(ctx.Query("branch")))
	if err != nil {
		if errors.Is(err, service.ErrInvalidBranch) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidBranch))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleListMembers -> h.svc.ListMembers -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, members)
}
