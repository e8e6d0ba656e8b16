package api

import (
	"log/slog"
	"net/http"

	domdrop "drop-arbiter/internal/domain/drop"
	reqdto "drop-arbiter/internal/handler/dto/request"
	resdto "drop-arbiter/internal/handler/dto/response"
	"drop-arbiter/internal/handler/httperr"
	"drop-arbiter/internal/handler/middleware"
	"drop-arbiter/internal/usecase/commands"
	"drop-arbiter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DropHandler struct {
	cmds commands.DropCommands
	q    queries.DropQueries
}

func NewDropHandler(cmds commands.DropCommands, q queries.DropQueries) *DropHandler {
	return &DropHandler{cmds: cmds, q: q}
}

// @Summary Launch drop
// @Description Publish a capacity-limited drop that expires after its timer
// @Tags drops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Key for safe retries"
// @Param request body reqdto.CreateDropRequest true "Create drop request"
// @Success 201 {object} resdto.DropResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/drops [post]
func (h *DropHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}
	var req reqdto.CreateDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	d, err := h.cmds.CreateDrop(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDrop(d)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List drops
// @Tags drops
// @Produce json
// @Security BearerAuth
// @Param status query string false "live, filled, expired or cancelled"
// @Success 200 {array} resdto.DropListItemResponse
// @Failure 400 {object} httperr.Response
// @Router /api/drops [get]
func (h *DropHandler) List(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}
	h.sweep(c)

	items, err := h.q.List(c.Request.Context(), operatorID, c.Query("status"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDropList(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Drop history
// @Description Non-live drops with their confirmed claim counts
// @Tags drops
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DropHistoryItemResponse
// @Router /api/drops/history [get]
func (h *DropHandler) History(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}
	h.sweep(c)

	items, err := h.q.History(c.Request.Context(), operatorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDropHistory(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get drop
// @Tags drops
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drop ID"
// @Success 200 {object} resdto.DropDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/drops/{id} [get]
func (h *DropHandler) Get(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}
	dropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid drop id")
		return
	}
	h.sweep(c)

	detail, err := h.q.Get(c.Request.Context(), operatorID, dropID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDropDetail(detail)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update drop
// @Description Extend, cancel or stop a live drop
// @Tags drops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drop ID"
// @Param request body reqdto.PatchDropRequest true "Action"
// @Success 200 {object} resdto.DropResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/drops/{id} [patch]
func (h *DropHandler) Patch(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}
	dropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid drop id")
		return
	}
	var req reqdto.PatchDropRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "action must be one of: extend, cancel, stop")
		return
	}

	ctx := c.Request.Context()
	switch req.NormalizedAction() {
	case reqdto.DropActionExtend:
		d, cmdErr := h.cmds.ExtendDrop(ctx, actor, dropID, req.AdditionalSeconds)
		h.respondDrop(c, d, cmdErr)
	case reqdto.DropActionCancel, reqdto.DropActionStop:
		d, cmdErr := h.cmds.CancelDrop(ctx, actor, dropID)
		h.respondDrop(c, d, cmdErr)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "action must be one of: extend, cancel, stop")
	}
}

func (h *DropHandler) respondDrop(c *gin.Context, d *domdrop.Drop, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDrop(d)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// sweep expires due drops before an operator read; failures only cost freshness.
func (h *DropHandler) sweep(c *gin.Context) {
	if _, err := h.cmds.ExpireDue(c.Request.Context()); err != nil {
		slog.WarnContext(c.Request.Context(), "lazy sweep before read failed", "error", err.Error())
	}
}
