package view

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"aura/internal/model"
	"aura/pkg/datemath"
)

// Sort orders tasks in place by key. The sort is stable: equal keys keep
// their relative input order.
func Sort(tasks []model.Task, key model.SortBy, locale language.Tag) {
	switch model.ParseSortBy(string(key)) {
	case model.SortByTitle:
		if locale == language.Und {
			locale = language.Spanish
		}
		// Collators keep scratch buffers, so each call gets its own.
		c := collate.New(locale, collate.IgnoreCase)
		slices.SortStableFunc(tasks, func(a, b model.Task) int {
			return c.CompareString(a.Title, b.Title)
		})
	case model.SortByPriority:
		slices.SortStableFunc(tasks, func(a, b model.Task) int {
			return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
		})
	default:
		slices.SortStableFunc(tasks, compareDates)
	}
}

// compareDates orders ISO dates chronologically; missing or malformed dates go last.
func compareDates(a, b model.Task) int {
	aOK, bOK := validDate(a.Date), validDate(b.Date)
	switch {
	case aOK && bOK:
		return cmp.Compare(a.Date, b.Date)
	case aOK:
		return -1
	case bOK:
		return 1
	default:
		return 0
	}
}

func validDate(s string) bool {
	_, err := datemath.ParseISO(s, nil)
	return err == nil
}
