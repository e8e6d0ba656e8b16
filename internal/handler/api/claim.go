package api

import (
	"net/http"

	domclaim "drop-arbiter/internal/domain/claim"
	reqdto "drop-arbiter/internal/handler/dto/request"
	resdto "drop-arbiter/internal/handler/dto/response"
	"drop-arbiter/internal/handler/httperr"
	"drop-arbiter/internal/handler/middleware"
	"drop-arbiter/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	cmds commands.ClaimCommands
}

func NewClaimHandler(cmds commands.ClaimCommands) *ClaimHandler {
	return &ClaimHandler{cmds: cmds}
}

// @Summary Claim a spot
// @Description Public endpoint; the claim stays pending until the operator confirms it
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Drop ID"
// @Param Idempotency-Key header string false "Key for safe retries"
// @Param request body reqdto.SubmitClaimRequest true "Claimant"
// @Success 201 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/drops/{id}/claim [post]
func (h *ClaimHandler) Submit(c *gin.Context) {
	dropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid drop id")
		return
	}
	var req reqdto.SubmitClaimRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	cl, err := h.cmds.SubmitClaim(c.Request.Context(), dropID, req.ToInput())
	respondClaim(c, http.StatusCreated, cl, err)
}

// @Summary Confirm claim
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/claims/{id}/confirm [patch]
func (h *ClaimHandler) Confirm(c *gin.Context) {
	actor, claimID, ok := claimTarget(c)
	if !ok {
		return
	}
	cl, err := h.cmds.ConfirmClaim(c.Request.Context(), actor, claimID)
	respondClaim(c, http.StatusOK, cl, err)
}

// @Summary Reject claim
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 404 {object} httperr.Response
// @Router /api/claims/{id}/reject [patch]
func (h *ClaimHandler) Reject(c *gin.Context) {
	actor, claimID, ok := claimTarget(c)
	if !ok {
		return
	}
	cl, err := h.cmds.RejectClaim(c.Request.Context(), actor, claimID)
	respondClaim(c, http.StatusOK, cl, err)
}

func claimTarget(c *gin.Context) (commands.Actor, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return commands.Actor{}, uuid.Nil, false
	}
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid claim id")
		return commands.Actor{}, uuid.Nil, false
	}
	return actor, claimID, true
}

func respondClaim(c *gin.Context, status int, cl *domclaim.Claim, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromClaim(cl)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
