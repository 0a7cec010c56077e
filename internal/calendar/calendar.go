// Package calendar turns a flat list of day records into a renderable
// month grid. BuildMonth is pure: "today" is a parameter, never read from
// the clock, so the grid is reproducible in tests.
package calendar

import (
	"math"
	"time"

	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
	"github.com/rakesh-arrepu/HHH-sub000/internal/utils"
)

// Cell is one slot in the month grid. A nil-date cell is a leading blank
// aligning day 1 to its weekday column.
type Cell struct {
	Date         string // empty for leading blanks
	Day          int    // 0 for leading blanks
	SectionCount int
	IsComplete   bool
	IsFuture     bool
	IsToday      bool
}

// Blank reports whether the cell is a leading placeholder.
func (c Cell) Blank() bool {
	return c.Date == ""
}

// Stats aggregates the month. One- and two-section days are distinct
// tiers; PartialDays is their sum. CompletionRate uses the calendar
// month's day count as denominator, so a freshly started month reads low
// rather than inflated.
type Stats struct {
	CompleteDays   int
	OneSectionDays int
	TwoSectionDays int
	PartialDays    int
	CompletionRate int // percent, 0..100
	DaysInMonth    int
}

// MonthGrid is the derived, ephemeral render model for one month.
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []Cell
	Stats Stats
}

// BuildMonth produces the ordered grid for (year, month): leading blanks
// for the weekday offset of the 1st (Sunday == 0), then one cell per day.
// Days without a record render as zero-completion cells rather than being
// omitted. Cells after today are marked future and excluded from stats.
func BuildMonth(year int, month time.Month, records []models.DayRecord, today string) MonthGrid {
	byDate := make(map[string]models.DayRecord, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}

	offset := utils.FirstWeekday(year, month)
	totalDays := utils.DaysInMonth(year, month)

	cells := make([]Cell, 0, offset+totalDays)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}

	var stats Stats
	stats.DaysInMonth = totalDays

	for day := 1; day <= totalDays; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)
		cell := Cell{
			Date:     date,
			Day:      day,
			IsFuture: utils.AfterDate(date, today),
			IsToday:  date == today,
		}
		if record, ok := byDate[date]; ok {
			cell.SectionCount = len(record.CompletedSections)
			if cell.SectionCount > constants.SectionCount {
				cell.SectionCount = constants.SectionCount
			}
			cell.IsComplete = record.IsComplete
		}
		if !cell.IsFuture {
			switch {
			case cell.IsComplete:
				stats.CompleteDays++
			case cell.SectionCount == 2:
				stats.TwoSectionDays++
			case cell.SectionCount == 1:
				stats.OneSectionDays++
			}
		}
		cells = append(cells, cell)
	}

	stats.PartialDays = stats.OneSectionDays + stats.TwoSectionDays
	stats.CompletionRate = int(math.Round(float64(stats.CompleteDays) / float64(totalDays) * 100))

	return MonthGrid{Year: year, Month: month, Cells: cells, Stats: stats}
}

// MonthCursor is the month-level navigation state for history views,
// independent of the day cursor. Paging forward stops at the current
// month.
type MonthCursor struct {
	year  int
	month time.Month
	now   func() time.Time
}

// NewMonthCursor creates a cursor positioned on the current month. now
// defaults to time.Now and is injectable for tests.
func NewMonthCursor(now func() time.Time) *MonthCursor {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &MonthCursor{year: t.Year(), month: t.Month(), now: now}
}

// Year returns the displayed year.
func (c *MonthCursor) Year() int {
	return c.year
}

// Month returns the displayed month.
func (c *MonthCursor) Month() time.Month {
	return c.month
}

// PrevMonth pages back one month, wrapping December of the prior year.
func (c *MonthCursor) PrevMonth() {
	if c.month == time.January {
		c.month = time.December
		c.year--
		return
	}
	c.month--
}

// NextMonth pages forward one month, wrapping January of the next year.
// A no-op when the current month is already displayed.
func (c *MonthCursor) NextMonth() {
	t := c.now()
	if c.year == t.Year() && c.month == t.Month() {
		return
	}
	if c.month == time.December {
		c.month = time.January
		c.year++
		return
	}
	c.month++
}

// AtCurrentMonth reports whether the cursor shows the current month.
func (c *MonthCursor) AtCurrentMonth() bool {
	t := c.now()
	return c.year == t.Year() && c.month == t.Month()
}
