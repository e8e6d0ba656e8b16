package api

import (
	"net/http"
	"time"

	reqdto "drop-arbiter/internal/handler/dto/request"
	resdto "drop-arbiter/internal/handler/dto/response"
	"drop-arbiter/internal/handler/httperr"
	"drop-arbiter/internal/handler/middleware"
	"drop-arbiter/internal/pkg/config"
	"drop-arbiter/internal/pkg/cookie"
	"drop-arbiter/internal/pkg/jwt"
	"drop-arbiter/internal/usecase/commands"
	"drop-arbiter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	q         queries.OperatorQueries
	cookieCfg config.CookieConfig
	tokenTTL  time.Duration
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.OperatorQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		q:         q,
		cookieCfg: cfg.Cookie,
		tokenTTL:  jwtService.TokenDuration(),
	}
}

// @Summary Operator login
// @Description Exchange an operator id and access code for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.OperatorID, req.AccessCode)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	if h.tokenTTL > 0 {
		cookie.SetAccessToken(c, h.cookieCfg, result.Token, h.tokenTTL)
	}
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Token:    result.Token,
		Operator: resdto.FromOperatorView(result.Operator),
	})
}

// @Summary Operator logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; only the cookie needs clearing
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current operator
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.OperatorResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Operator not authenticated")
		return
	}

	op, err := h.q.GetCurrentOperator(c.Request.Context(), operatorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOperatorView(op))
}
