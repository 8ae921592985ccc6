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

type ProgramService interface {
	CreateProgram(ctx context.Context, program domain.Program) (domain.Program, error)
	GetProgram(ctx context.Context, id uint) (domain.Program, error)
	ListPrograms(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error)
	UpdateProgram(ctx context.Context, program domain.Program) (domain.Program, error)
	DeleteProgram(ctx context.Context, id uint) error
}

type ProgramHandler struct {
	svc     ProgramService
	userSvc UserService
}

func NewProgramHandler(svc ProgramService, userSvc UserService) ProgramHandler {
	return ProgramHandler{
		svc:     svc,
		userSvc: userSvc,
	}
}

func programFromRequest(req request.ProgramRequest) (domain.Program, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return domain.Program{}, fmt.Errorf("invalid start_date: %w", err)
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return domain.Program{}, fmt.Errorf("invalid end_date: %w", err)
	}

	if endDate.Before(startDate) {
		return domain.Program{}, errors.New("end_date must not be before start_date")
	}

	activities := make([]domain.Activity, 0, len(req.Activities))
	for i, a := range req.Activities {
		activities = append(activities, domain.Activity{
			Position:    i + 1,
			Name:        a.Name,
			Development: a.Development,
			StartTime:   a.StartTime,
			DurationMin: a.DurationMin,
			Responsible: a.Responsible,
			Materials:   a.Materials,
			Notes:       a.Notes,
		})
	}

	return domain.Program{
		StartDate:  startDate,
		EndDate:    endDate,
		Theme:      req.Theme,
		Branch:     domain.Branch(req.Branch),
		Objectives: req.Objectives,
		Status:     domain.ProgramStatus(req.Status),
		LeaderName: req.LeaderName,
		Notes:      req.Notes,
		Activities: activities,
	}, nil
}

// HandleListPrograms godoc
// @Summary      Lists weekly programs
// @Security     Bearer
// @Tags         programs
// @Produce      json
// @Param        branch  query     string  false  "branch filter"
// @Param        from    query     string  false  "start date lower bound, DD/MM/YYYY"
// @Param        to      query     string  false  "start date upper bound, DD/MM/YYYY"
// @Param        leader  query     string  false  "leader name filter, partial match"
// @Success      200     {array}   domain.Program
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /programs [get]
func (h *ProgramHandler) HandleListPrograms(ctx *gin.Context) {
	filter := domain.ProgramFilter{
		Branch: domain.Branch(ctx.Query("branch")),
		Leader: ctx.Query("leader"),
	}

	if raw := ctx.Query("from"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid from: %w", err)))
			return
		}
		filter.From = from
	}

	if raw := ctx.Query("to"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid to: %w", err)))
			return
		}
		filter.To = to
	}

	programs, err := h.svc.ListPrograms(ctx.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBranch) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidBranch))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleListPrograms -> h.svc.ListPrograms -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, programs)
}

// HandleCreateProgram godoc
// @Summary      Creates a weekly program with its activities
// @Security     Bearer
// @Tags         programs
// @Accept       json
// @Produce      json
// @Param        request  body      request.ProgramRequest  true  "query params"
// @Success      201      {object}  domain.Program
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /programs [post]
func (h *ProgramHandler) HandleCreateProgram(ctx *gin.Context) {
	var req request.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	program, err := programFromRequest(req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// A program created without an explicit leader belongs to whoever is
	// logged in.
	if program.LeaderName == "" {
		user, respErr := getUserFromContext(ctx, h.userSvc)
		if respErr != nil {
			response.RenderErr(ctx, respErr)
			return
		}
		program.LeaderName = user.Name
	}

	created, err := h.svc.CreateProgram(ctx.Request.Context(), program)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBranch) || errors.Is(err, service.ErrInvalidStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleCreateProgram -> h.svc.CreateProgram -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetProgram godoc
// @Summary      Gets a program with its activities in position order
// @Security     Bearer
// @Tags         programs
// @Produce      json
// @Param        programID  path      int  true  "program ID"
// @Success      200        {object}  domain.Program
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /programs/{programID} [get]
func (h *ProgramHandler) HandleGetProgram(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "programID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	program, err := h.svc.GetProgram(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("program", "id", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleGetProgram -> h.svc.GetProgram -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, program)
}

// HandleUpdateProgram godoc
// @Summary      Replaces a program and its activity list
// @Security     Bearer
// @Tags         programs
// @Accept       json
// @Produce      json
// @Param        programID  path      int                     true  "program ID"
// @Param        request    body      request.ProgramRequest  true  "query params"
// @Success      200        {object}  domain.Program
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /programs/{programID} [put]
func (h *ProgramHandler) HandleUpdateProgram(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "programID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	program, err := programFromRequest(req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	program.ID = id
	if program.Status == "" {
		program.Status = domain.ProgramPlanned
	}

	updated, err := h.svc.UpdateProgram(ctx.Request.Context(), program)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProgramNotFound):
			response.RenderErr(ctx, response.ErrNotFound("program", "id", id))
		case errors.Is(err, service.ErrInvalidBranch), errors.Is(err, service.ErrInvalidStatus):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleUpdateProgram -> h.svc.UpdateProgram -> %w", err)))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteProgram godoc
// @Summary      Deletes a program with its activities, scores and attendance
// @Security     Bearer
// @Tags         programs
// @Produce      json
// @Param        programID  path  int  true  "program ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /programs/{programID} [delete]
func (h *ProgramHandler) HandleDeleteProgram(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "programID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteProgram(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("program", "id", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleDeleteProgram -> h.svc.DeleteProgram -> %w", err)))
		return
	}

	ctx.Status(http.StatusNoContent)
}
