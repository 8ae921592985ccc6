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

type GoldenBookService interface {
	CreateEntry(ctx context.Context, entry domain.GoldenBookEntry) (domain.GoldenBookEntry, error)
	ListEntries(ctx context.Context) ([]domain.GoldenBookEntry, error)
	GetEntry(ctx context.Context, id uint) (domain.GoldenBookEntry, error)
	UpdateEntry(ctx context.Context, entry domain.GoldenBookEntry) (domain.GoldenBookEntry, error)
	DeleteEntry(ctx context.Context, id uint) error
}

type GoldenBookHandler struct {
	svc     GoldenBookService
	userSvc UserService
}

func NewGoldenBookHandler(svc GoldenBookService, userSvc UserService) GoldenBookHandler {
	return GoldenBookHandler{
		svc:     svc,
		userSvc: userSvc,
	}
}

func goldenBookEntryFromRequest(req request.GoldenBookEntryRequest) (domain.GoldenBookEntry, error) {
	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		return domain.GoldenBookEntry{}, fmt.Errorf("invalid event_date: %w", err)
	}

	return domain.GoldenBookEntry{
		Title:      req.Title,
		Body:       req.Body,
		EventDate:  eventDate,
		AuthorName: req.AuthorName,
	}, nil
}

// HandleCreateEntry godoc
// @Summary      Creates a golden book entry
// @Security     Bearer
// @Tags         goldenbook
// @Accept       json
// @Produce      json
// @Param        request  body      request.GoldenBookEntryRequest  true  "query params"
// @Success      201      {object}  domain.GoldenBookEntry
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /goldenbook [post]
func (h *GoldenBookHandler) HandleCreateEntry(ctx *gin.Context) {
	var req request.GoldenBookEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := goldenBookEntryFromRequest(req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// Unsigned entries carry the name of the dirigente writing them.
	if entry.AuthorName == "" {
		user, respErr := getUserFromContext(ctx, h.userSvc)
		if respErr != nil {
			response.RenderErr(ctx, respErr)
			return
		}
		entry.AuthorName = user.Name
	}

	created, err := h.svc.CreateEntry(ctx.Request.Context(), entry)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleCreateEntry -> h.svc.CreateEntry -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListEntries godoc
// @Summary      Lists golden book entries, newest event first
// @Security     Bearer
// @Tags         goldenbook
// @Produce      json
// @Success      200  {array}   domain.GoldenBookEntry
// @Failure      500  {object}  response.Err
// @Router       /goldenbook [get]
func (h *GoldenBookHandler) HandleListEntries(ctx *gin.Context) {
	entries, err := h.svc.ListEntries(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleListEntries -> h.svc.ListEntries -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// HandleGetEntry godoc
// @Summary      Gets a golden book entry
// @Security     Bearer
// @Tags         goldenbook
// @Produce      json
// @Param        entryID  path      int  true  "entry ID"
// @Success      200      {object}  domain.GoldenBookEntry
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /goldenbook/{entryID} [get]
func (h *GoldenBookHandler) HandleGetEntry(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "entryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := h.svc.GetEntry(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGoldenBookEntryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("golden book entry", "id", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleGetEntry -> h.svc.GetEntry -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// HandleUpdateEntry godoc
// @Summary      Updates a golden book entry
// @Security     Bearer
// @Tags         goldenbook
// @Accept       json
// @Produce      json
// @Param        entryID  path      int                             true  "entry ID"
// @Param        request  body      request.GoldenBookEntryRequest  true  "query params"
// @Success      200      {object}  domain.GoldenBookEntry
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /goldenbook/{entryID} [put]
func (h *GoldenBookHandler) HandleUpdateEntry(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "entryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.GoldenBookEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := goldenBookEntryFromRequest(req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	entry.ID = id

	updated, err := h.svc.UpdateEntry(ctx.Request.Context(), entry)
	if err != nil {
		if errors.Is(err, service.ErrGoldenBookEntryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("golden book entry", "id", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleUpdateEntry -> h.svc.UpdateEntry -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEntry godoc
// @Summary      Deletes a golden book entry
// @Security     Bearer
// @Tags         goldenbook
// @Produce      json
// @Param        entryID  path  int  true  "entry ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /goldenbook/{entryID} [delete]
func (h *GoldenBookHandler) HandleDeleteEntry(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "entryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteEntry(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGoldenBookEntryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("golden book entry", "id", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("HandleDeleteEntry -> h.svc.DeleteEntry -> %w", err)))
		return
	}

	ctx.Status(http.StatusNoContent)
}
