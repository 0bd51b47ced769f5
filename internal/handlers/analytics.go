package handlers

import (
	"net/http"

	"taskboard/internal/analytics"
	"taskboard/internal/auth"
	"taskboard/internal/dto"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the read-only reporting endpoints. All of
// them accept an optional ?list_id to scope the report to one list.
type AnalyticsHandler struct {
	svc *service.TaskService
}

func NewAnalyticsHandler(svc *service.TaskService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Stats godoc
// @Summary      Task counts, completion rate and priority breakdown
// @Tags         analytics
// @Produce      json
// @Security     CookieAuth
// @Param        list_id  query  int  false  "Restrict to one list"
// @Success      200  {object}  dto.StatsResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /analytics/stats [get]
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	listID, ok := parseOptionalListID(c)
	if !ok {
		return
	}
	stats, err := h.svc.Stats(c.Request.Context(), auth.UserIDFromContext(c), listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	breakdown := make(map[string]int, len(stats.PriorityBreakdown))
	for pri, n := range stats.PriorityBreakdown {
		breakdown[string(pri)] = n
	}
	c.JSON(http.StatusOK, dto.StatsResponse{
		Total:             stats.Total,
		Completed:         stats.Completed,
		Pending:           stats.Pending,
		Overdue:           stats.Overdue,
		CompletionRate:    stats.CompletionRate,
		PriorityBreakdown: breakdown,
	})
}

// Deadlines godoc
// @Summary      Pending tasks bucketed by deadline proximity
// @Tags         analytics
// @Produce      json
// @Security     CookieAuth
// @Param        list_id  query  int  false  "Restrict to one list"
// @Success      200  {object}  dto.DeadlineGroupsResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /analytics/deadlines [get]
func (h *AnalyticsHandler) Deadlines(c *gin.Context) {
	listID, ok := parseOptionalListID(c)
	if !ok {
		return
	}
	groups, err := h.svc.Deadlines(c.Request.Context(), auth.UserIDFromContext(c), listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, deadlineGroupsToResponse(groups))
}

// Productivity godoc
// @Summary      Weekly and monthly productivity insights
// @Tags         analytics
// @Produce      json
// @Security     CookieAuth
// @Param        list_id  query  int  false  "Restrict to one list"
// @Success      200  {object}  dto.ProductivityResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /analytics/productivity [get]
func (h *AnalyticsHandler) Productivity(c *gin.Context) {
	listID, ok := parseOptionalListID(c)
	if !ok {
		return
	}
	ins, err := h.svc.Productivity(c.Request.Context(), auth.UserIDFromContext(c), listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ProductivityResponse{
		CreatedThisWeek:      ins.CreatedThisWeek,
		CompletedThisWeek:    ins.CompletedThisWeek,
		CompletedThisMonth:   ins.CompletedThisMonth,
		WeeklyCompletionRate: ins.WeeklyCompletionRate,
		AverageTasksPerDay:   ins.AverageTasksPerDay,
		MostProductiveDay:    ins.MostProductiveDay,
		CompletionTrend:      string(ins.CompletionTrend),
	})
}

func deadlineGroupsToResponse(g analytics.DeadlineGroups) dto.DeadlineGroupsResponse {
	return dto.DeadlineGroupsResponse{
		Overdue:    tasksToResponses(g.Overdue),
		Today:      tasksToResponses(g.Today),
		Tomorrow:   tasksToResponses(g.Tomorrow),
		ThisWeek:   tasksToResponses(g.ThisWeek),
		Later:      tasksToResponses(g.Later),
		NoDeadline: tasksToResponses(g.NoDeadline),
	}
}
