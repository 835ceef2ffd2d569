package capture

import (
	"iter"
	"regexp"
	"strings"
	"time"

	"aura/internal/model"
	"aura/pkg/datemath"
)

// SeparatorPattern splits one capture line into several tasks: "a; b / c".
const SeparatorPattern = `;|\s/\s`

// Service turns free-form text into draft tasks. It performs no I/O.
type Service interface {
	// ParseDateFromText extracts a date phrase and returns the cleaned title.
	ParseDateFromText(input string, baseTime time.Time) datemath.Result

	// ParseCommand splits input into items and yields one draft task per item.
	// The sequence is lazy and can be ranged over more than once.
	ParseCommand(input string, baseTime time.Time) iter.Seq[model.Task]

	// Classify infers the task type from keywords in the title.
	Classify(title string) model.TaskType
}

type service struct {
	dates     *datemath.Parser
	separator *regexp.Regexp
}

func New(dates *datemath.Parser) Service {
	return &service{
		dates:     dates,
		separator: regexp.MustCompile(SeparatorPattern),
	}
}

func (s *service) ParseDateFromText(input string, baseTime time.Time) datemath.Result {
	return s.dates.ParseDateFromText(input, baseTime)
}

// ParseCommand yields drafts in input order. Drafts have no ID; every draft
// carries a date (today when none was written) and the not-started status.
func (s *service) ParseCommand(input string, baseTime time.Time) iter.Seq[model.Task] {
	return func(yield func(model.Task) bool) {
		for _, item := range s.separator.Split(input, -1) {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if !yield(s.draft(item, baseTime)) {
				return
			}
		}
	}
}

func (s *service) draft(item string, baseTime time.Time) model.Task {
	res := s.dates.ParseDateFromText(item, baseTime)

	title := res.Title
	if strings.TrimSpace(title) == "" {
		title = item
	}

	date := s.dates.Today(baseTime)
	if res.HasDate() {
		date = res.Date
	}

	return model.Task{
		Title:    title,
		Date:     datemath.FormatISO(date),
		Status:   model.StatusNotStarted,
		Priority: model.PriorityMedium,
		Type:     s.Classify(title),
		ListID:   model.DefaultProjectID,
	}
}

func (s *service) Classify(title string) model.TaskType {
	folded := datemath.Fold(title)
	for _, t := range triggers {
		if t.pattern.MatchString(folded) {
			return t.taskType
		}
	}
	return model.TaskTypeNormal
}
