package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rakesh-arrepu/HHH-sub000/internal/calendar"
	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
	"github.com/rakesh-arrepu/HHH-sub000/internal/utils"
)

type HistoryCmd struct {
	Month string `help:"Month in YYYY-MM format (default: current month)." short:"m"`
	Group int    `help:"Group ID (default: first group)." short:"g"`
	User  int    `help:"View another member's history (group owners only)." short:"u"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	bg := context.Background()
	group, err := ctx.ResolveGroup(bg, c.Group)
	if err != nil {
		return err
	}
	view, err := ctx.ResolveView(bg, group, c.User)
	if err != nil {
		return err
	}

	now := time.Now()
	year, month := now.Year(), now.Month()
	if c.Month != "" {
		t, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q: use YYYY-MM", c.Month)
		}
		year, month = t.Year(), t.Month()
	}

	// Request a window long enough to cover the displayed month.
	days := int(now.Sub(time.Date(year, month, 1, 0, 0, 0, 0, now.Location())).Hours()/24) + 1
	if days < constants.DefaultHistoryDays {
		days = constants.DefaultHistoryDays
	}
	records, err := ctx.API.History(bg, group.ID, days, view.UserID)
	if err != nil {
		return err
	}

	grid := calendar.BuildMonth(year, month, records, utils.Today())
	fmt.Printf("%s %d — %s\n\n", month, year, group.Name)
	fmt.Println(renderGrid(grid))
	fmt.Printf("\ncomplete: %d  two sections: %d  one section: %d  rate: %d%%\n",
		grid.Stats.CompleteDays, grid.Stats.TwoSectionDays, grid.Stats.OneSectionDays, grid.Stats.CompletionRate)
	return nil
}

// renderGrid draws the month as a text calendar. Tiers get distinct
// glyphs so one- and two-section days stay distinguishable: '.' empty,
// '-' one section, '=' two, '#' complete.
func renderGrid(grid calendar.MonthGrid) string {
	var b strings.Builder
	b.WriteString("Su  Mo  Tu  We  Th  Fr  Sa\n")
	col := 0
	for _, cell := range grid.Cells {
		if col > 0 {
			b.WriteString(" ")
		}
		switch {
		case cell.Blank():
			b.WriteString("   ")
		case cell.IsFuture:
			b.WriteString("  .")
		default:
			glyph := " "
			switch {
			case cell.IsComplete:
				glyph = "#"
			case cell.SectionCount == 2:
				glyph = "="
			case cell.SectionCount == 1:
				glyph = "-"
			}
			b.WriteString(fmt.Sprintf("%2d%s", cell.Day, glyph))
		}
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

type StreakCmd struct {
	Group int `help:"Group ID (default: first group)." short:"g"`
	User  int `help:"View another member's streak (group owners only)." short:"u"`
}

func (c *StreakCmd) Run(ctx *Context) error {
	bg := context.Background()
	group, err := ctx.ResolveGroup(bg, c.Group)
	if err != nil {
		return err
	}
	view, err := ctx.ResolveView(bg, group, c.User)
	if err != nil {
		return err
	}

	streak, err := ctx.API.Streak(bg, group.ID, view.UserID)
	if err != nil {
		return err
	}
	fmt.Printf("Current streak: %d day(s)\n", streak.Streak)
	if streak.LastCompleteDate != "" {
		fmt.Printf("Last complete day: %s\n", streak.LastCompleteDate)
	}
	return nil
}
