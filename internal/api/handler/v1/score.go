package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gruposcout/tropa-api/internal/api/handler/v1/request"
	"github.com/gruposcout/tropa-api/internal/api/handler/v1/response"
	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/service"
)

type ScoreService interface {
	GetScoresForActivity(ctx context.Context, activityID uint) ([]domain.ScoreEntry, error)
	SaveScores(ctx context.Context, activityID uint, entries []domain.ScoreEntry) (int, error)
}

type ScoreHandler struct {
	svc ScoreService
}

func NewScoreHandler(svc ScoreService) ScoreHandler {
	return ScoreHandler{
		svc: svc,
	}
}

// HandleGetScores godoc
// @Summary      Gets the saved scores of an activity
// @Security     Bearer
// @Tags         scores
// @Produce      json
// @Param        activityID  path      int  true  "activity ID"
// @Success      200         {array}   domain.ScoreEntry
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /activities/{activityID}/scores [get]
func (h *ScoreHandler) HandleGetScores(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "activityID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entries, err := h.svc.GetScoresForActivity(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "id", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleGetScores -> h.svc.GetScoresForActivity -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// HandleSaveScores godoc
// @Summary      Replaces the score set of an activity
// @Description  Zero scores mean the unit did not take part and are not stored.
// @Security     Bearer
// @Tags         scores
// @Accept       json
// @Produce      json
// @Param        activityID  path      int                        true  "activity ID"
// @Param        request     body      request.SaveScoresRequest  true  "query params"
// @Success      200         {object}  response.CountResponse
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /activities/{activityID}/scores [put]
func (h *ScoreHandler) HandleSaveScores(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "activityID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.SaveScoresRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entries := make([]domain.ScoreEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, domain.ScoreEntry{
			ActivityID: id,
			UnitID:     e.UnitID,
			Score:      e.Score,
			Note:       e.Note,
		})
	}

	count, err := h.svc.SaveScores(ctx.Request.Context(), id, entries)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.RenderErr(ctx, response.ErrNotFound("activity", "id", id))
		case errors.Is(err, service.ErrScoreOutOfRange):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrScoreOutOfRange))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleSaveScores -> h.svc.SaveScores -> %w", err)))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.CountResponse{Count: count})
}
