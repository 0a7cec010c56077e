package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
	"github.com/rakesh-arrepu/HHH-sub000/internal/journal"
	"github.com/rakesh-arrepu/HHH-sub000/internal/utils"
)

type LogCmd struct {
	Section string `arg:"" help:"Section: health, happiness, or hela."`
	Content string `arg:"" help:"Entry content."`
	Date    string `help:"Date in YYYY-MM-DD format (default: today)." short:"d"`
	Group   int    `help:"Group ID (default: first group)." short:"g"`
}

func (c *LogCmd) Run(ctx *Context) error {
	bg := context.Background()
	group, err := ctx.ResolveGroup(bg, c.Group)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.Today()
	} else {
		if _, err := utils.ParseDate(date); err != nil {
			return fmt.Errorf("invalid date %q: use YYYY-MM-DD", c.Date)
		}
		if utils.AfterDate(date, utils.Today()) {
			return fmt.Errorf("cannot log entries for a future date")
		}
	}

	store := journal.NewEntryStore()
	store.SetCursor(journal.Cursor{GroupID: group.ID, Date: date}, false)
	content, err := store.ValidateSave(c.Section, c.Content)
	if err != nil {
		return err
	}

	entry, err := ctx.API.SaveEntry(bg, group.ID, c.Section, content, date)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s entry for %s\n", entry.Section, entry.Date)
	return nil
}

type DayCmd struct {
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." short:"d"`
	Group int    `help:"Group ID (default: first group)." short:"g"`
	User  int    `help:"View another member's day (group owners only)." short:"u"`
}

func (c *DayCmd) Run(ctx *Context) error {
	bg := context.Background()
	group, err := ctx.ResolveGroup(bg, c.Group)
	if err != nil {
		return err
	}
	view, err := ctx.ResolveView(bg, group, c.User)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	me, err := ctx.API.Me(bg)
	if err != nil {
		return err
	}
	viewedID := view.UserID
	if viewedID == 0 {
		viewedID = me.ID
	}

	entries, err := ctx.API.Entries(bg, group.ID, date, view.UserID)
	if err != nil {
		return err
	}

	cursor := journal.Cursor{GroupID: group.ID, Date: date, UserID: viewedID}
	store := journal.NewEntryStore()
	store.SetCursor(cursor, view.ReadOnly)
	store.Replace(cursor, entries)

	header := fmt.Sprintf("%s — %s", group.Name, date)
	if view.ReadOnly {
		header += " (viewing member, read-only)"
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", len(header)))
	for _, section := range constants.Sections {
		content, ok := store.Content(section)
		if !ok || strings.TrimSpace(content) == "" {
			fmt.Printf("%-10s (empty)\n", section)
			continue
		}
		fmt.Printf("%-10s %s\n", section, content)
	}
	fmt.Printf("\n%d/%d sections complete\n", store.CompletedCount(), constants.SectionCount)
	return nil
}
