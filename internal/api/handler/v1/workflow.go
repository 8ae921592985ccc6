package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gruposcout/tropa-api/internal/api/handler/v1/request"
	"github.com/gruposcout/tropa-api/internal/api/handler/v1/response"
	"github.com/gruposcout/tropa-api/internal/service"
	"github.com/gruposcout/tropa-api/internal/workflow"
)

// WorkflowHandler exposes the scoring and attendance wizards as server side
// sessions. Each session walks one dirigente through the steps; nothing is
// persisted until the save endpoint is hit.
type WorkflowHandler struct {
	store *workflow.Store
}

func NewWorkflowHandler(store *workflow.Store) WorkflowHandler {
	return WorkflowHandler{
		store: store,
	}
}

// renderWorkflowErr maps wizard errors onto the response envelope. subject is
// whatever identifier the failed call was about, used in not found bodies.
func renderWorkflowErr(ctx *gin.Context, err error, subject any) {
	switch {
	case errors.Is(err, workflow.ErrSessionUnknown):
		response.RenderErr(ctx, response.ErrNotFound("session", "id", ctx.Param("sessionID")))
	case errors.Is(err, service.ErrProgramNotFound):
		response.RenderErr(ctx, response.ErrNotFound("program", "id", subject))
	case errors.Is(err, service.ErrActivityNotFound):
		response.RenderErr(ctx, response.ErrNotFound("activity", "id", subject))
	case errors.Is(err, workflow.ErrInvalidTransition),
		errors.Is(err, workflow.ErrUnknownUnit),
		errors.Is(err, workflow.ErrUnknownMember),
		errors.Is(err, workflow.ErrActivityNotInProgram):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleCreateScoringSession godoc
// @Summary      Opens a scoring wizard session at the program selection step
// @Security     Bearer
// @Tags         workflows
// @Produce      json
// @Success      201  {object}  response.WorkflowStateResponse
// @Router       /workflows/scoring [post]
func (h *WorkflowHandler) HandleCreateScoringSession(ctx *gin.Context) {
	id, w := h.store.CreateScoring()
	ctx.JSON(http.StatusCreated, response.NewScoringState(id, w))
}

// HandleGetScoringSession godoc
// @Summary      Gets the current state of a scoring wizard session
// @Security     Bearer
// @Tags         workflows
// @Produce      json
// @Param        sessionID  path      string  true  "session ID"
// @Success      200        {object}  response.WorkflowStateResponse
// @Failure      404        {object}  response.Err
// @Router       /workflows/scoring/{sessionID} [get]
func (h *WorkflowHandler) HandleGetScoringSession(ctx *gin.Context) {
	id := ctx.Param("sessionID")

	w, err := h.store.GetScoring(id)
	if err != nil {
		renderWorkflowErr(ctx, err, id)
		return
	}

	ctx.JSON(http.StatusOK, response.NewScoringState(id, w))
}

// HandleScoringSelectProgram godoc
// @Summary      Picks the program to score and advances to activity selection
// @Security     Bearer
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                        true  "session ID"
// @Param        request    body      request.SelectProgramRequest  true  "query params"
// @Success      200        {object}  response.WorkflowStateResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Router       /workflows/scoring/{sessionID}/program [post]
func (h *WorkflowHandler) HandleScoringSelectProgram(ctx *gin.Context) {
	id := ctx.Param("sessionID")

	w, err := h.store.GetScoring(id)
	if err != nil {
		renderWorkflowErr(ctx, err, id)
		return
	}

	var req request.SelectProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := w.SelectProgram(ctx.Request.Context(), req.ProgramID); err != nil {
		renderWorkflowErr(ctx, fmt.Errorf("HandleScoringSelectProgram -> w.SelectProgram -> %w", err), req.ProgramID)
		return
	}

	ctx.JSON(http.StatusOK, response.NewScoringState(id, w))
}

// HandleScoringSelectActivity godoc
// @Summary      Picks the activity and loads one score row per unit
// @Security     Bearer
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                         true  "session ID"
// @Param        request    body      request.SelectActivityRequest  true  "query params"
// @Success      200        {object}  response.WorkflowStateResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Router       /workflows/scoring/{sessionID}/activity [post]
func (h *WorkflowHandler) HandleScoringSelectActivity(ctx *gin.Context) {
	id := ctx.Param("sessionID")

	w, err := h.store.GetScoring(id)
	if err != nil {
		renderWorkflowErr(ctx, err, id)
		return
	}

	var req request.SelectActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := w.SelectActivity(ctx.Request.Context(), req.ActivityID); err != nil {
		renderWorkflowErr(ctx, fmt.Errorf("HandleScoringSelectActivity -> w.SelectActivity -> %w", err), req.ActivityID)
		return
	}

	ctx.JSON(http.StatusOK, response.NewScoringState(id, w))
}

// HandleScoringSetScore godoc
// @Summary      Edits one unit's score in the session, without persisting
// @Security     Bearer
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                     true  "session ID"
// @Param        request    body      request.ScoreEntryPayload  true  "query params"
// @Success      200        {object}  response.WorkflowStateResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Router       /workflows/scoring/{sessionID}/score [post]
func (h *WorkflowHandler) HandleScoringSetScore(ctx *gin.Context) {
	id := ctx.Param("sessionID")

	w, err := h.store.GetScoring(id)
	if err != nil {
		renderWorkflowErr(ctx, err, id)
		return
	}

	var req request.ScoreEntryPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := w.SetScore(req.UnitID, req.Score, req.Note); err != nil {
		renderWorkflowErr(ctx, fmt.Errorf("HandleScoringSetScore -> w.SetScore -> %w", err), req.UnitID)
		return
	}

	ctx.JSON(http.StatusOK, response.NewScoringState(id, w))
}

// HandleScoringSave godoc
// @Summary      Persists the session's score rows and refreshes the ranking
// @Description  The wizard stays on the scoring step so more rows can be edited.
// @Security     Bearer
// @Tags         workflows
// @Produce      json
// @Param        sessionID  path      string  true  "session ID"
// @Success      200        {object}  response.WorkflowStateResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /workflows/scoring/{sessionID}/save [post]
func (h *WorkflowHandler) HandleScoringSave(ctx *gin.Context) {
	id := ctx.Param("sessionID")

	w, err := h.store.GetScoring(id)
	if err != nil {
		renderWorkflowErr(ctx, err, id)
		return
	}

	if _, err := w.SaveScores(ctx.Request.Context()); err != nil {
		renderWorkflowErr(ctx, fmt.Errorf("HandleScoringSave -> w.SaveScores -> %w", err), id)
		return
	}

	ctx.JSON(http.StatusOK, response.NewScoringState(id, w))
}

// HandleScoringBack godoc
// @Summary      Steps the scoring wizard back, discarding unsaved edits
// @Security     Bearer
// @Tags         workflows
// @Produce      json
// @Param        sessionID  path      string  true  "session ID"
// @Success      200        {object}  response.WorkflowStateResponse
// @Failure      404        {object}  response.Err
// @Router       /workflows/scoring/{sessionID}/back [post]
func (h *WorkflowHandler) HandleScoringBack(ctx *gin.Context) {
	id := ctx.Param("sessionID")

	w, err := h.store.GetScoring(id)
	if err != nil {
		renderWorkflowErr(ctx, err, id)
		return
	}

	w.Back()

	ctx.JSON(http.StatusOK, response.NewScoringState(id, w))
}

// HandleCreateAttendanceSession godoc
// @Summary      Opens an attendance wizard session at the program selection step
// @Security     Bearer
// @Tags         workflows
// @Produce      json
// @Success      201  {object}  response.WorkflowStateResponse
// @Router       /workflows/attendance [post]
func (h *WorkflowHandler) HandleCreateAttendanceSession(ctx *gin.Context) {
	id, w := h.store.CreateAttendance()
	ctx.JSON(http.StatusCreated, response.NewAttendanceState(id, w))
}

// HandleGetAttendanceSession godoc
// @Summary      Gets the current state of an attendance wizard session
// @Security     Bearer
// @Tags         workflows
// @Produce      json
// @Param        sessionID  path      string  true  "session ID"
// @Success      200        {object}  response.WorkflowStateResponse
// @Failure      404        {object}  response.Err
// @Router       /workflows/attendance/{sessionID} [get]
func (h *WorkflowHandler) HandleGetAttendanceSession(ctx *gin.Context) {
	id := ctx.Param("sessionID")

	w, err := h.store.GetAttendance(id)
	if err != nil {
		renderWorkflowErr(ctx, err, id)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAttendanceState(id, w))
}

// HandleAttendanceSelectProgram godoc
// @Summary      Picks the program and loads the branch roster, defaulting to presente
// @Security     Bearer
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                        true  "session ID"
// @Param        request    body      request.SelectProgramRequest  true  "query params"
// @Success      200        {object}  response.WorkflowStateResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Router       /workflows/attendance/{sessionID}/program [post]
func (h *WorkflowHandler) HandleAttendanceSelectProgram(ctx *gin.Context) {
	id := ctx.Param("sessionID")

	w, err := h.store.GetAttendance(id)
	if err != nil {
		renderWorkflowErr(ctx, err, id)
		return
	}

	var req request.SelectProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := w.SelectProgram(ctx.Request.Context(), req.ProgramID); err != nil {
		renderWorkflowErr(ctx, fmt.Errorf("HandleAttendanceSelectProgram -> w.SelectProgram -> %w", err), req.ProgramID)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAttendanceState(id, w))
}

// HandleAttendanceCycleStatus godoc
// @Summary      Cycles one member through presente, tardanza, ausente
// @Security     Bearer
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                      true  "session ID"
// @Param        request    body      request.CycleStatusRequest  true  "query params"
// @Success      200        {object}  response.WorkflowStateResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Router       /workflows/attendance/{sessionID}/cycle [post]
func (h *WorkflowHandler) HandleAttendanceCycleStatus(ctx *gin.Context) {
	id := ctx.Param("sessionID")

	w, err := h.store.GetAttendance(id)
	if err != nil {
		renderWorkflowErr(ctx, err, id)
		return
	}

	var req request.CycleStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err := w.CycleStatus(req.MemberID); err != nil {
		renderWorkflowErr(ctx, fmt.Errorf("HandleAttendanceCycleStatus -> w.CycleStatus -> %w", err), req.MemberID)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAttendanceState(id, w))
}

// HandleAttendanceSave godoc
// @Summary      Persists the session's roster as one attendance batch
// @Security     Bearer
// @Tags         workflows
// @Produce      json
// @Param        sessionID  path      string  true  "session ID"
// @Success      200        {object}  response.WorkflowStateResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /workflows/attendance/{sessionID}/save [post]
func (h *WorkflowHandler) HandleAttendanceSave(ctx *gin.Context) {
	id := ctx.Param("sessionID")

	w, err := h.store.GetAttendance(id)
	if err != nil {
		renderWorkflowErr(ctx, err, id)
		return
	}

	if _, err := w.SaveAll(ctx.Request.Context()); err != nil {
		renderWorkflowErr(ctx, fmt.Errorf("HandleAttendanceSave -> w.SaveAll -> %w", err), id)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAttendanceState(id, w))
}

// HandleAttendanceBack godoc
// @Summary      Steps the attendance wizard back, discarding unsaved edits
// @Security     Bearer
// @Tags         workflows
// @Produce      json
// @Param        sessionID  path      string  true  "session ID"
// @Success      200        {object}  response.WorkflowStateResponse
// @Failure      404        {object}  response.Err
// @Router       /workflows/attendance/{sessionID}/back [post]
func (h *WorkflowHandler) HandleAttendanceBack(ctx *gin.Context) {
	id := ctx.Param("sessionID")

	w, err := h.store.GetAttendance(id)
	if err != nil {
		renderWorkflowErr(ctx, err, id)
		return
	}

	w.Back()

	ctx.JSON(http.StatusOK, response.NewAttendanceState(id, w))
}

// HandleDeleteSession godoc
// @Summary      Closes a wizard session
// @Security     Bearer
// @Tags         workflows
// @Produce      json
// @Param        sessionID  path  string  true  "session ID"
// @Success      204
// @Router       /workflows/{sessionID} [delete]
func (h *WorkflowHandler) HandleDeleteSession(ctx *gin.Context) {
	h.store.Delete(ctx.Param("sessionID"))
	ctx.Status(http.StatusNoContent)
}
