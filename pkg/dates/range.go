package dates

import (
	"fmt"
	"regexp"
	"time"

	apperrors "cocoresort/pkg/errors"
	"cocoresort/pkg/locale"
	"cocoresort/pkg/logger"
	"cocoresort/pkg/sanitizer"
)

// Range is an inclusive stay period extracted from text.
type Range struct {
	Start    time.Time
	End      time.Time
	Pattern  string
	Language locale.Language
}

func (r Range) StartISO() string { return FormatISODate(r.Start) }

func (r Range) EndISO() string { return FormatISODate(r.End) }

// component order of the three captures making up one date
type order int

const (
	dayMonthYear order = iota
	monthDayYear
	yearMonthDay
)

type pattern struct {
	name     string
	re       *regexp.Regexp
	order    order
	language locale.Language // empty: inferred from the text
}

// Patterns are tried in this order and the first one that matches is used
// exclusively, even if its dates turn out to be invalid.
var patterns = []pattern{
	{
		name:     "spanish_del_al",
		re:       regexp.MustCompile(`(?i)\bdel? (\d{1,2}) de (\p{L}+) de (\d{4}) al? (\d{1,2}) de (\p{L}+) de (\d{4})\b`),
		order:    dayMonthYear,
		language: locale.Spanish,
	},
	{
		name:     "english_from_to",
		re:       regexp.MustCompile(`(?i)\bfrom (\p{L}+\.?) (\d{1,2}), (\d{4}) to (\p{L}+\.?) (\d{1,2}), (\d{4})\b`),
		order:    monthDayYear,
		language: locale.English,
	},
	{
		name:  "numeric_slash",
		re:    regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4}) ?- ?(\d{1,2})/(\d{1,2})/(\d{4})\b`),
		order: dayMonthYear,
	},
	{
		name:  "iso_to",
		re:    regexp.MustCompile(`(?i)\b(\d{4})-(\d{2})-(\d{2}) (?:to|al) (\d{4})-(\d{2})-(\d{2})\b`),
		order: yearMonthDay,
	},
	{
		name:  "day_month_year_dash",
		re:    regexp.MustCompile(`\b(\d{2}) (\p{L}+) (\d{4}) - (\d{2}) (\p{L}+) (\d{4})\b`),
		order: dayMonthYear,
	},
	{
		name:     "ordinal_to",
		re:       regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th) (\p{L}+) (\d{4}) to (\d{1,2})(?:st|nd|rd|th) (\p{L}+) (\d{4})\b`),
		order:    dayMonthYear,
		language: locale.English,
	},
	{
		name:     "spanish_al",
		re:       regexp.MustCompile(`(?i)\b(\d{1,2}) de (\p{L}+) de (\d{4}) al (\d{1,2}) de (\p{L}+) de (\d{4})\b`),
		order:    dayMonthYear,
		language: locale.Spanish,
	},
}

// Parser extracts date ranges. A nil log disables diagnostics.
type Parser struct {
	log *logger.Logger
}

func NewParser(log *logger.Logger) *Parser {
	return &Parser{log: log}
}

var defaultParser = &Parser{}

// ExtractDateRange returns the start and end of the first recognised range in
// text as YYYY-MM-DD strings.
func ExtractDateRange(text string) (string, string, error) {
	r, err := defaultParser.Parse(text)
	if err != nil {
		return "", "", err
	}
	return r.StartISO(), r.EndISO(), nil
}

// Parse matches text against the known patterns. Any failure, whether no
// pattern matched or the matched dates do not exist, is ErrInvalidDateRange.
func (p *Parser) Parse(text string) (Range, error) {
	cleaned := sanitizer.CleanText(text)

	for _, pat := range patterns {
		m := pat.re.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		p.debug("Date range pattern matched", "pattern", pat.name, "match", m[0])

		start, err := pat.date(m[1:4])
		if err != nil {
			return Range{}, p.reject(pat.name, fmt.Errorf("start date: %w", err))
		}
		end, err := pat.date(m[4:7])
		if err != nil {
			return Range{}, p.reject(pat.name, fmt.Errorf("end date: %w", err))
		}
		if end.Before(start) {
			return Range{}, p.reject(pat.name, fmt.Errorf("end %s is before start %s", FormatISODate(end), FormatISODate(start)))
		}

		return Range{
			Start:    start,
			End:      end,
			Pattern:  pat.name,
			Language: pat.languageOf(m, cleaned),
		}, nil
	}

	p.debug("No date range pattern matched", "text", cleaned)
	return Range{}, fmt.Errorf("%w: no recognized date range in %q", apperrors.ErrInvalidDateRange, cleaned)
}

func (pat pattern) date(parts []string) (time.Time, error) {
	var dayStr, monthStr, yearStr string
	switch pat.order {
	case monthDayYear:
		monthStr, dayStr, yearStr = parts[0], parts[1], parts[2]
	case yearMonthDay:
		yearStr, monthStr, dayStr = parts[0], parts[1], parts[2]
	default:
		dayStr, monthStr, yearStr = parts[0], parts[1], parts[2]
	}

	day, err := atoi(dayStr)
	if err != nil {
		return time.Time{}, err
	}
	year, err := atoi(yearStr)
	if err != nil {
		return time.Time{}, err
	}
	month, err := parseMonth(monthStr)
	if err != nil {
		return time.Time{}, err
	}
	return civilDate(year, month, day)
}

func (pat pattern) languageOf(m []string, text string) locale.Language {
	if pat.language != "" {
		return pat.language
	}
	if _, lang, ok := locale.LookupMonth(m[2]); ok {
		return lang
	}
	return locale.DetectLanguage(text)
}

func parseMonth(s string) (time.Month, error) {
	if n, err := atoi(s); err == nil {
		return time.Month(n), nil
	}
	m, _, ok := locale.LookupMonth(s)
	if !ok {
		return 0, fmt.Errorf("unknown month %q", s)
	}
	return m, nil
}

func (p *Parser) reject(patternName string, cause error) error {
	if p.log != nil {
		p.log.Warn("Date range rejected", "pattern", patternName, "reason", cause.Error())
	}
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidDateRange, cause)
}

func (p *Parser) debug(msg string, args ...any) {
	if p.log != nil {
		p.log.Debug(msg, args...)
	}
}
