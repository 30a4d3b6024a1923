// Package timefmt renders the two timestamp representations carried by
// every collected record: a machine-readable ISO-8601 string and a
// locale-formatted one for human consumption.
//
// The locale is negotiated from an Accept-Language header value using
// golang.org/x/text language matching against a small supported set; an
// unmatched or malformed header falls back to English. Layouts are
// deliberately coarse (date plus wall-clock time) – this is a display
// convenience, not an i18n framework.
package timefmt
