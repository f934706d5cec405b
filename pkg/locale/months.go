package locale

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

type monthName struct {
	month    time.Month
	language Language
}

// Keys are case-folded. Abbreviations shared by both languages ("mar", "may",
// "jun", ...) are registered as English; the month is the same either way.
var months = map[string]monthName{
	"january":   {time.January, English},
	"february":  {time.February, English},
	"march":     {time.March, English},
	"april":     {time.April, English},
	"may":       {time.May, English},
	"june":      {time.June, English},
	"july":      {time.July, English},
	"august":    {time.August, English},
	"september": {time.September, English},
	"october":   {time.October, English},
	"november":  {time.November, English},
	"december":  {time.December, English},
	"jan":       {time.January, English},
	"feb":       {time.February, English},
	"mar":       {time.March, English},
	"apr":       {time.April, English},
	"jun":       {time.June, English},
	"jul":       {time.July, English},
	"aug":       {time.August, English},
	"sep":       {time.September, English},
	"sept":      {time.September, English},
	"oct":       {time.October, English},
	"nov":       {time.November, English},
	"dec":       {time.December, English},

	"enero":      {time.January, Spanish},
	"febrero":    {time.February, Spanish},
	"marzo":      {time.March, Spanish},
	"abril":      {time.April, Spanish},
	"mayo":       {time.May, Spanish},
	"junio":      {time.June, Spanish},
	"julio":      {time.July, Spanish},
	"agosto":     {time.August, Spanish},
	"septiembre": {time.September, Spanish},
	"setiembre":  {time.September, Spanish},
	"octubre":    {time.October, Spanish},
	"noviembre":  {time.November, Spanish},
	"diciembre":  {time.December, Spanish},
	"ene":        {time.January, Spanish},
	"abr":        {time.April, Spanish},
	"ago":        {time.August, Spanish},
	"dic":        {time.December, Spanish},
}

// LookupMonth resolves a Spanish or English month name or abbreviation,
// ignoring case and a trailing period.
func LookupMonth(name string) (time.Month, Language, bool) {
	key := foldMonth(name)
	m, ok := months[key]
	if !ok {
		return 0, "", false
	}
	return m.month, m.language, true
}

// ToEnglishMonth returns the canonical English name for any known month token.
func ToEnglishMonth(name string) (string, bool) {
	m, _, ok := LookupMonth(name)
	if !ok {
		return "", false
	}
	return m.String(), true
}

// DetectLanguage reports Spanish when the text contains a full Spanish month
// name or the "de ... de" connective; otherwise English. Three-letter
// abbreviations are ignored since "ago" is also an English word.
func DetectLanguage(text string) Language {
	words := strings.Fields(foldMonth(text))
	connectives := 0
	for _, w := range words {
		if m, ok := months[w]; ok && m.language == Spanish && len(w) > 3 {
			return Spanish
		}
		if w == "de" || w == "del" {
			connectives++
		}
	}
	if connectives >= 2 {
		return Spanish
	}
	return English
}

func foldMonth(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".")
	return cases.Fold().String(s)
}
