package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
)

type saveEntryRequest struct {
	GroupID int    `json:"group_id"`
	Section string `json:"section"`
	Content string `json:"content"`
	Date    string `json:"date,omitempty"`
}

// Entries fetches the entries for a group and date. userID narrows the
// result to one member's entries; zero means all visible entries, which
// the caller filters down to the viewed user.
func (c *Client) Entries(ctx context.Context, groupID int, date string, userID int) ([]models.Entry, error) {
	query := url.Values{}
	query.Set("group_id", strconv.Itoa(groupID))
	if date != "" {
		query.Set("entry_date", date)
	}
	if userID != 0 {
		query.Set("user_id", strconv.Itoa(userID))
	}

	var entries []models.Entry
	_, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/entries",
		query:  query,
	}, &entries)
	return entries, err
}

// SaveEntry creates or updates the caller's entry for (group, section,
// date). The server upserts on the (group, user, date, section) key.
func (c *Client) SaveEntry(ctx context.Context, groupID int, section, content, date string) (models.Entry, error) {
	var entry models.Entry
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/entries",
		body:   saveEntryRequest{GroupID: groupID, Section: section, Content: content, Date: date},
	}, &entry)
	return entry, err
}
