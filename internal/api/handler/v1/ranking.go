package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gruposcout/tropa-api/internal/api/handler/v1/response"
	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/export"
	"github.com/gruposcout/tropa-api/internal/service"
)

type RankingService interface {
	RankingForProgram(ctx context.Context, programID uint) ([]domain.RankingRow, error)
}

type RosterService interface {
	RosterForProgram(ctx context.Context, program domain.Program) ([]domain.AttendanceRecord, []domain.Member, error)
}

type RankingHandler struct {
	svc        RankingService
	programSvc ProgramService
	rosterSvc  RosterService
}

func NewRankingHandler(svc RankingService, programSvc ProgramService, rosterSvc RosterService) RankingHandler {
	return RankingHandler{
		svc:        svc,
		programSvc: programSvc,
		rosterSvc:  rosterSvc,
	}
}

// HandleGetRanking godoc
// @Summary      Gets the unit ranking of a program
// @Security     Bearer
// @Tags         ranking
// @Produce      json
// @Param        programID  path      int  true  "program ID"
// @Success      200        {array}   domain.RankingRow
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /programs/{programID}/ranking [get]
func (h *RankingHandler) HandleGetRanking(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "programID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rows, err := h.svc.RankingForProgram(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("program", "id", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleGetRanking -> h.svc.RankingForProgram -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// HandleExportRanking godoc
// @Summary      Exports a program's ranking and attendance as an xlsx workbook
// @Security     Bearer
// @Tags         ranking
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        programID  path  int  true  "program ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /programs/{programID}/ranking/export [get]
func (h *RankingHandler) HandleExportRanking(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "programID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	program, err := h.programSvc.GetProgram(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("program", "id", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleExportRanking -> h.programSvc.GetProgram -> %w", err)))
		return
	}

	ranking, err := h.svc.RankingForProgram(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleExportRanking -> h.svc.RankingForProgram -> %w", err)))
		return
	}

	roster, members, err := h.rosterSvc.RosterForProgram(ctx.Request.Context(), program)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleExportRanking -> h.rosterSvc.RosterForProgram -> %w", err)))
		return
	}

	file, err := export.RankingWorkbook(program, ranking, roster, members)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleExportRanking -> export.RankingWorkbook -> %w", err)))
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("ranking-%v-%v.xlsx", program.Branch, program.StartDate.Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%v"`, filename))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(ctx.Writer); err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleExportRanking -> file.Write -> %w", err)))
		return
	}
}
