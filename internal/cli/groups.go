package cli

import (
	"context"
	"fmt"
)

type GroupsCmd struct {
	List   GroupListCmd    `cmd:"" help:"List your groups." default:"1"`
	Create GroupCreateCmd  `cmd:"" help:"Create a new group."`
	Member GroupMembersCmd `cmd:"" name:"members" help:"List members of a group."`
	Invite GroupInviteCmd  `cmd:"" help:"Invite a user to a group by email."`
	Remove GroupRemoveCmd  `cmd:"" help:"Remove a member from a group."`
}

type GroupListCmd struct{}

func (c *GroupListCmd) Run(ctx *Context) error {
	groups, err := ctx.API.Groups(context.Background())
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Println("No groups yet. Create one with 'hhh groups create <name>'.")
		return nil
	}
	for _, g := range groups {
		marker := ""
		if g.IsOwner {
			marker = " (owner)"
		}
		fmt.Printf("%d\t%s%s\n", g.ID, g.Name, marker)
	}
	return nil
}

type GroupCreateCmd struct {
	Name string `arg:"" help:"Group name."`
}

func (c *GroupCreateCmd) Run(ctx *Context) error {
	group, err := ctx.API.CreateGroup(context.Background(), c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Created group %q (id %d)\n", group.Name, group.ID)
	return nil
}

type GroupMembersCmd struct {
	Group int `help:"Group ID (default: first group)." short:"g"`
}

func (c *GroupMembersCmd) Run(ctx *Context) error {
	bg := context.Background()
	group, err := ctx.ResolveGroup(bg, c.Group)
	if err != nil {
		return err
	}
	members, err := ctx.API.Members(bg, group.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Members of %s:\n", group.Name)
	for _, m := range members {
		fmt.Printf("%d\t%s <%s>\n", m.UserID, m.Name, m.Email)
	}
	return nil
}

type GroupInviteCmd struct {
	Email string `arg:"" help:"Email of the user to invite."`
	Group int    `help:"Group ID (default: first group)." short:"g"`
}

func (c *GroupInviteCmd) Run(ctx *Context) error {
	bg := context.Background()
	group, err := ctx.ResolveGroup(bg, c.Group)
	if err != nil {
		return err
	}
	member, err := ctx.API.AddMember(bg, group.ID, c.Email)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s to %s\n", member.Name, group.Name)
	return nil
}

type GroupRemoveCmd struct {
	UserID int `arg:"" help:"User ID of the member to remove."`
	Group  int `help:"Group ID (default: first group)." short:"g"`
}

func (c *GroupRemoveCmd) Run(ctx *Context) error {
	bg := context.Background()
	group, err := ctx.ResolveGroup(bg, c.Group)
	if err != nil {
		return err
	}
	if err := ctx.API.RemoveMember(bg, group.ID, c.UserID); err != nil {
		return err
	}
	fmt.Printf("Removed user %d from %s\n", c.UserID, group.Name)
	return nil
}
