package api

import (
	"net/http"
	"strconv"

	resdto "drop-arbiter/internal/handler/dto/response"
	"drop-arbiter/internal/handler/httperr"
	"drop-arbiter/internal/handler/middleware"
	"drop-arbiter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Today's stats
// @Description Recovered revenue and activity counts for the current UTC day
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TodayStatsResponse
// @Router /api/stats/today [get]
func (h *StatsHandler) Today(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}
	stats, err := h.q.Today(c.Request.Context(), operatorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTodayStats(stats))
}

// @Summary Daily history
// @Description One row per UTC day ending today. days defaults to 7 and is clamped to 1..90
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param days query int false "Number of days"
// @Success 200 {array} resdto.DayStatsResponse
// @Router /api/stats/history [get]
func (h *StatsHandler) History(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}
	// unparsable values fall back to the default
	days, _ := strconv.Atoi(c.Query("days"))
	history, err := h.q.History(c.Request.Context(), operatorID, days)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDailyStats(history))
}
