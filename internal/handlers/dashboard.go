package handlers

import (
	"net/http"

	mw "inkwell/internal/middleware"
	"inkwell/internal/service"
)

type DashboardHandler struct {
	analytics *service.AnalyticsService
	streaks   *service.StreakService
}

func NewDashboardHandler(analytics *service.AnalyticsService, streaks *service.StreakService) *DashboardHandler {
	return &DashboardHandler{analytics: analytics, streaks: streaks}
}

func windowFromQuery(r *http.Request) (service.Window, error) {
	var w service.Window
	if s := r.URL.Query().Get("start"); s != "" {
		start, err := parseDate(s)
		if err != nil {
			return w, err
		}
		w.Start = &start
	}
	if s := r.URL.Query().Get("end"); s != "" {
		end, err := parseDate(s)
		if err != nil {
			return w, err
		}
		w.End = &end
	}
	return w, nil
}

// Get composes the dashboard statistics over an optional window.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	window, err := windowFromQuery(r)
	if err != nil {
		http.Error(w, "invalid date format; expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	stats, err := h.analytics.Dashboard(r.Context(), mw.UserID(r), window)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Analytics returns the detailed aggregates: mood distribution, tag usage,
// tag breakdown, word count average and trend.
func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	window, err := windowFromQuery(r)
	if err != nil {
		http.Error(w, "invalid date format; expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	userID := mw.UserID(r)
	ctx := r.Context()

	dist, err := h.analytics.MoodDistribution(ctx, userID, window)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	topTags, err := h.analytics.MostUsedTags(ctx, userID, window, 10)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	breakdown, err := h.analytics.TagBreakdown(ctx, userID, window)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	avg, err := h.analytics.AverageWordCount(ctx, userID, window)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	trend, err := h.analytics.WordCountTrend(ctx, userID, window)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	type trendPoint struct {
		LocalDate string `json:"local_date"`
		WordCount int    `json:"word_count"`
	}
	points := make([]trendPoint, 0, len(trend))
	for _, p := range trend {
		points = append(points, trendPoint{LocalDate: p.Date.Format("2006-01-02"), WordCount: p.WordCount})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"mood_distribution":  dist,
		"most_used_tags":     topTags,
		"tag_breakdown":      breakdown,
		"average_word_count": avg,
		"word_count_trend":   points,
	})
}

// Streak returns the user's streak record.
func (h *DashboardHandler) Streak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.streaks.Get(r.Context(), mw.UserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if streak == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, streak)
}

// MissedDays lists blank days in the requested window.
func (h *DashboardHandler) MissedDays(w http.ResponseWriter, r *http.Request) {
	startStr, endStr := r.URL.Query().Get("start"), r.URL.Query().Get("end")
	start, err := parseDate(startStr)
	if err != nil {
		http.Error(w, "invalid start format; expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	end, err := parseDate(endStr)
	if err != nil {
		http.Error(w, "invalid end format; expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	missed, err := h.streaks.MissedDays(r.Context(), mw.UserID(r), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]string, 0, len(missed))
	for _, d := range missed {
		out = append(out, d.Format("2006-01-02"))
	}
	writeJSON(w, http.StatusOK, map[string]any{"missed_days": out})
}
