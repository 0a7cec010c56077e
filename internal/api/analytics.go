package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
)

// Streak fetches the server-computed streak for a group member. userID
// zero means the caller's own streak.
func (c *Client) Streak(ctx context.Context, groupID, userID int) (models.Streak, error) {
	query := url.Values{}
	query.Set("group_id", strconv.Itoa(groupID))
	if userID != 0 {
		query.Set("user_id", strconv.Itoa(userID))
	}

	var streak models.Streak
	_, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/analytics/streak",
		query:  query,
	}, &streak)
	return streak, err
}

// History fetches per-day completion records for the last `days` days.
// userID zero means the caller's own history.
func (c *Client) History(ctx context.Context, groupID, days, userID int) ([]models.DayRecord, error) {
	query := url.Values{}
	query.Set("group_id", strconv.Itoa(groupID))
	query.Set("days", strconv.Itoa(days))
	if userID != 0 {
		query.Set("user_id", strconv.Itoa(userID))
	}

	var records []models.DayRecord
	_, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/analytics/history",
		query:  query,
	}, &records)
	return records, err
}
