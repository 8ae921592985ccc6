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

type AttendanceService interface {
	AttendanceForProgram(ctx context.Context, programID uint) (map[uint]domain.AttendanceStatus, error)
	SaveAll(ctx context.Context, records []domain.AttendanceRecord) (int, error)
}

type AttendanceHandler struct {
	svc AttendanceService
}

func NewAttendanceHandler(svc AttendanceService) AttendanceHandler {
	return AttendanceHandler{
		svc: svc,
	}
}

// HandleGetAttendance godoc
// @Summary      Gets the saved attendance of a program as member_id -> status
// @Security     Bearer
// @Tags         attendance
// @Produce      json
// @Param        programID  path      int  true  "program ID"
// @Success      200        {object}  map[uint]domain.AttendanceStatus
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /programs/{programID}/attendance [get]
func (h *AttendanceHandler) HandleGetAttendance(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "programID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	statuses, err := h.svc.AttendanceForProgram(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("program", "id", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleGetAttendance -> h.svc.AttendanceForProgram -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, statuses)
}

// HandleSaveAttendance godoc
// @Summary      Upserts a batch of attendance records
// @Security     Bearer
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        request  body      request.BulkAttendanceRequest  true  "query params"
// @Success      200      {object}  response.CountResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /attendance [post]
func (h *AttendanceHandler) HandleSaveAttendance(ctx *gin.Context) {
	var req request.BulkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	records := make([]domain.AttendanceRecord, 0, len(req.Records))
	for _, r := range req.Records {
		date, err := parseDate(r.Date)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date: %w", err)))
			return
		}
		records = append(records, domain.AttendanceRecord{
			MemberID:  r.MemberID,
			ProgramID: r.ProgramID,
			Status:    domain.AttendanceStatus(r.Status),
			Date:      date,
		})
	}

	count, err := h.svc.SaveAll(ctx.Request.Context(), records)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAttendanceStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidAttendanceStatus))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleSaveAttendance -> h.svc.SaveAll -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.CountResponse{Count: count})
}
