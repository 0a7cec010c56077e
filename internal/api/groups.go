package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
)

type createGroupRequest struct {
	Name string `json:"name"`
}

type addMemberRequest struct {
	Email string `json:"email"`
}

// Groups lists the caller's groups.
func (c *Client) Groups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	_, err := c.do(ctx, request{method: http.MethodGet, path: "/api/groups"}, &groups)
	return groups, err
}

// CreateGroup creates a group owned by the caller.
func (c *Client) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	var group models.Group
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/groups",
		body:   createGroupRequest{Name: name},
	}, &group)
	return group, err
}

// Members lists the members of a group.
func (c *Client) Members(ctx context.Context, groupID int) ([]models.Member, error) {
	var members []models.Member
	_, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/groups/%d/members", groupID),
	}, &members)
	return members, err
}

// AddMember invites a user to a group by email. Owner only.
func (c *Client) AddMember(ctx context.Context, groupID int, email string) (models.Member, error) {
	var member models.Member
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/api/groups/%d/members", groupID),
		body:   addMemberRequest{Email: email},
	}, &member)
	return member, err
}

// RemoveMember removes a user from a group. Owner only.
func (c *Client) RemoveMember(ctx context.Context, groupID, userID int) error {
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/api/groups/%d/members/%d", groupID, userID),
	}, nil)
	return err
}
