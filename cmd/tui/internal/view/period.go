package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

const dateLayout = "02/01/2006"

// Period is a report window preset.
type Period string

const (
	PeriodThisMonth  Period = "this_month"
	PeriodLastMonth  Period = "last_month"
	PeriodLast30Days Period = "last_30_days"
	PeriodThisYear   Period = "this_year"
	PeriodCustom     Period = "custom"
)

var periodLabels = []struct {
	period Period
	label  string
}{
	{PeriodThisMonth, "This month"},
	{PeriodLastMonth, "Last month"},
	{PeriodLast30Days, "Last 30 days"},
	{PeriodThisYear, "This year"},
	{PeriodCustom, "Custom range"},
}

// Range returns the first and last calendar day of the period, both at
// midnight. Custom has no range of its own.
func (p Period) Range(now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch p {
	case PeriodThisMonth:
		return today.AddDate(0, 0, 1-today.Day()), today
	case PeriodLastMonth:
		first := today.AddDate(0, 0, 1-today.Day())
		return first.AddDate(0, -1, 0), first.AddDate(0, 0, -1)
	case PeriodLast30Days:
		return today.AddDate(0, 0, -29), today
	case PeriodThisYear:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()), today
	}

	return today, today
}

// ParseDate reads DD/MM/YYYY in the local timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("use DD/MM/YYYY")
	}

	return t, nil
}

// periodChoice is bound to the period form fields.
type periodChoice struct {
	period Period
	start  string
	end    string
}

func newPeriodChoice() *periodChoice {
	return &periodChoice{period: PeriodThisMonth}
}

// Dates resolves the choice into an inclusive window.
func (c *periodChoice) Dates(now time.Time) (time.Time, time.Time, error) {
	if c.period != PeriodCustom {
		start, end := c.period.Range(now)
		return start, end, nil
	}

	start, err := ParseDate(c.start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start date: %w", err)
	}

	end, err := ParseDate(c.end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end date: %w", err)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date is before start date")
	}

	return start, end, nil
}

// groups returns the preset select and the custom date inputs, which stay
// hidden unless the custom range is picked.
func (c *periodChoice) groups() []*huh.Group {
	opts := make([]huh.Option[Period], 0, len(periodLabels))
	for _, p := range periodLabels {
		opts = append(opts, huh.NewOption(p.label, p.period))
	}

	validDate := func(s string) error {
		_, err := ParseDate(s)
		return err
	}

	return []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[Period]().
				Title("Period").
				Options(opts...).
				Value(&c.period),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("From").
				Placeholder("01/05/2024").
				Validate(validDate).
				Value(&c.start),
			huh.NewInput().
				Title("To").
				Placeholder("31/05/2024").
				Validate(func(s string) error {
					end, err := ParseDate(s)
					if err != nil {
						return err
					}

					if start, err := ParseDate(c.start); err == nil && end.Before(start) {
						return errors.New("must not be before the start date")
					}

					return nil
				}).
				Value(&c.end),
		).WithHideFunc(func() bool { return c.period != PeriodCustom }),
	}
}
