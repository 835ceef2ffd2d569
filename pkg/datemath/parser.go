package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Optional preposition tokens swallowed together with a date phrase,
// e.g. "para el viernes", "on monday". The english articles only belong to
// weekdays ("this friday"); elsewhere they are part of the title.
const (
	leadingTokens        = `(?:\b(?:para|el|este|de|en|for|on|of)\s+){0,2}`
	weekdayLeadingTokens = `(?:\b(?:para|el|este|de|en|for|on|of|the|this)\s+){0,2}`
)

var (
	tomorrowPattern = regexp.MustCompile(leadingTokens + `\b(?:manana|tomorrow)\b`)
	todayPattern    = regexp.MustCompile(leadingTokens + `\b(?:hoy|today)\b`)
	weekdayPattern  = regexp.MustCompile(weekdayLeadingTokens +
		`\b(lunes|martes|miercoles|jueves|viernes|sabado|domingo|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	namedDatePattern = regexp.MustCompile(leadingTokens +
		`\b(\d{1,2})(?:\s+de)?\s+(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|setiembre|octubre|noviembre|diciembre|january|february|march|april|may|june|july|august|september|october|november|december)\b(?:\s+(?:de\s+)?(\d{4})\b)?`)
	// Only "/" separates day and month: "1.5 kg" and "2-3 pastillas" are quantities.
	numericDatePattern = regexp.MustCompile(leadingTokens +
		`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?\b`)

	spacePattern    = regexp.MustCompile(`\s+`)
	danglingPattern = regexp.MustCompile(`(?i)\s+(?:para|el|del|de|en|a|por|for|on|of|at|to)$`)
)

var weekdays = map[string]time.Weekday{
	"domingo":   time.Sunday,
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
	"january":    time.January,
	"february":   time.February,
	"march":      time.March,
	"april":      time.April,
	"may":        time.May,
	"june":       time.June,
	"july":       time.July,
	"august":     time.August,
	"september":  time.September,
	"october":    time.October,
	"november":   time.November,
	"december":   time.December,
}

// Parser extracts due dates from free-form capture text.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Madrid"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns midnight of baseTime's calendar day in the parser's timezone.
func (p *Parser) Today(baseTime time.Time) time.Time {
	return p.startOfDay(baseTime)
}

// ParseDateFromText finds the first date phrase in input and returns the
// input without it. Rules are tried in a fixed order and the first match wins:
// tomorrow, today, weekday name, explicit day+month.
// A weekday equal to today's resolves to next week. An explicit date already
// past this year rolls over to next year unless a year was written.
func (p *Parser) ParseDateFromText(input string, baseTime time.Time) Result {
	today := p.startOfDay(baseTime)
	f := foldWithOffsets(input)

	if loc := tomorrowPattern.FindStringIndex(f.text); loc != nil {
		return p.result(input, f, loc, today.AddDate(0, 0, 1), RuleTomorrow)
	}

	if loc := todayPattern.FindStringIndex(f.text); loc != nil {
		return p.result(input, f, loc, today, RuleToday)
	}

	if m := weekdayPattern.FindStringSubmatchIndex(f.text); m != nil {
		target := weekdays[f.text[m[2]:m[3]]]
		daysUntil := int(target - today.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return p.result(input, f, m[:2], today.AddDate(0, 0, daysUntil), RuleWeekday)
	}

	if m := namedDatePattern.FindStringSubmatchIndex(f.text); m != nil {
		day, _ := strconv.Atoi(f.text[m[2]:m[3]])
		month := months[f.text[m[4]:m[5]]]
		if date, ok := p.explicitDate(today, day, month, group(f.text, m, 3)); ok {
			return p.result(input, f, m[:2], date, RuleExplicit)
		}
	}

	for _, m := range numericDatePattern.FindAllStringSubmatchIndex(f.text, -1) {
		// "30/06/202" is a broken date, not 30/06 followed by noise.
		if continuesWithDigits(f.text, m[1]) {
			continue
		}
		day, _ := strconv.Atoi(f.text[m[2]:m[3]])
		month, _ := strconv.Atoi(f.text[m[4]:m[5]])
		if month < 1 || month > 12 {
			continue
		}
		if date, ok := p.explicitDate(today, day, time.Month(month), group(f.text, m, 3)); ok {
			return p.result(input, f, m[:2], date, RuleExplicit)
		}
	}

	return Result{Title: strings.TrimSpace(input)}
}

// explicitDate resolves day/month/year. Without a year the current one is
// used, moving forward while the date is in the past or does not exist.
func (p *Parser) explicitDate(today time.Time, day int, month time.Month, yearText string) (time.Time, bool) {
	if yearText != "" {
		year, _ := strconv.Atoi(yearText)
		if len(yearText) == 2 {
			year += 2000
		}
		return p.validDate(year, month, day)
	}

	for year := today.Year(); year <= today.Year()+8; year++ {
		date, ok := p.validDate(year, month, day)
		if !ok {
			continue
		}
		if date.Before(today) {
			continue
		}
		return date, true
	}
	return time.Time{}, false
}

func (p *Parser) validDate(year int, month time.Month, day int) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if date.Day() != day || date.Month() != month {
		return time.Time{}, false
	}
	return date, true
}

func (p *Parser) result(input string, f folded, loc []int, date time.Time, rule Rule) Result {
	start, end := f.span(loc[0], loc[1])
	return Result{
		Title: CleanTitle(input[:start] + " " + input[end:]),
		Date:  date,
		Rule:  rule,
	}
}

// CleanTitle collapses whitespace and drops one dangling trailing preposition.
func CleanTitle(s string) string {
	s = strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
	return strings.TrimSpace(danglingPattern.ReplaceAllString(s, ""))
}

// continuesWithDigits reports whether text[end:] starts with "/" and a digit.
func continuesWithDigits(text string, end int) bool {
	return end+1 < len(text) && text[end] == '/' && text[end+1] >= '0' && text[end+1] <= '9'
}

func group(text string, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return text[m[2*n]:m[2*n+1]]
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
