package cli

import (
	"context"
	"fmt"

	"github.com/rakesh-arrepu/HHH-sub000/internal/api"
	"github.com/rakesh-arrepu/HHH-sub000/internal/journal"
	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
	"github.com/rakesh-arrepu/HHH-sub000/internal/session"
)

// Context carries the shared dependencies into every command.
type Context struct {
	API       *api.Client
	Session   *session.Manager
	ConfigDir string
}

// ResolveGroup picks the target group: the one matching groupID, or the
// caller's first group when groupID is zero.
func (c *Context) ResolveGroup(ctx context.Context, groupID int) (models.Group, error) {
	groups, err := c.API.Groups(ctx)
	if err != nil {
		return models.Group{}, err
	}
	if len(groups) == 0 {
		return models.Group{}, fmt.Errorf("you are not a member of any group; create one with 'hhh groups create'")
	}
	if groupID == 0 {
		return groups[0], nil
	}
	for _, g := range groups {
		if g.ID == groupID {
			return g, nil
		}
	}
	return models.Group{}, fmt.Errorf("group %d not found", groupID)
}

// ResolveView resolves the viewed user for a command that accepts --user.
// Only a group owner can view another member, and only read-only.
func (c *Context) ResolveView(ctx context.Context, group models.Group, requestedUserID int) (journal.Perspective, error) {
	if requestedUserID == 0 {
		return journal.Perspective{}, nil
	}
	me, err := c.API.Me(ctx)
	if err != nil {
		return journal.Perspective{}, err
	}
	if requestedUserID == me.ID {
		return journal.Perspective{}, nil
	}
	members, err := c.API.Members(ctx, group.ID)
	if err != nil {
		return journal.Perspective{}, err
	}
	view := journal.ResolvePerspective(group.IsOwner, members, requestedUserID, me.ID)
	if view.UserID == 0 {
		return view, fmt.Errorf("cannot view user %d: requires group ownership and an existing member", requestedUserID)
	}
	return view, nil
}
