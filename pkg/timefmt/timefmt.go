package timefmt

import (
	"time"

	"golang.org/x/text/language"
)

// isoLayout is RFC3339 with millisecond precision.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// supported lists the locales with a dedicated layout. English first: it is
// the matcher's fallback for anything unrecognized.
var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Dutch,
	language.Portuguese,
	language.Japanese,
}

var matcher = language.NewMatcher(supported)

// layouts keyed by base language.
var layouts = map[string]string{
	"en": "Jan 2, 2006, 3:04:05 PM",
	"de": "02.01.2006, 15:04:05",
	"fr": "02/01/2006 15:04:05",
	"es": "2/1/2006 15:04:05",
	"it": "02/01/2006, 15:04:05",
	"nl": "2-1-2006, 15:04:05",
	"pt": "02/01/2006, 15:04:05",
	"ja": "2006/01/02 15:04:05",
}

// ISO returns the UTC ISO-8601 representation of t.
func ISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// Localized renders t using the layout of the best-matching locale for the
// given Accept-Language header value. Malformed or empty headers fall back
// to English. The time is rendered in its own location; callers pick the
// zone before formatting.
func Localized(t time.Time, acceptLanguage string) string {
	tag := match(acceptLanguage)

	base, _ := tag.Base()
	layout, ok := layouts[base.String()]
	if !ok {
		layout = layouts["en"]
	}
	return t.Format(layout)
}

// match negotiates the display locale. ParseAcceptLanguage tolerates
// quality-weighted lists like "de-DE,de;q=0.9,en;q=0.8".
func match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return language.English
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return language.English
	}
	tag, _, _ := matcher.Match(prefs...)
	return tag
}
