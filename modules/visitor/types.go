package visitor

import (
	"github.com/trackkit/trackkit/pkg/geolocate"
	"github.com/trackkit/trackkit/pkg/useragent"
)

// DirectAccess is the referrer sentinel used when a page was reached without
// one (typed URL, bookmark, stripped referrer).
const DirectAccess = "Direct access"

// Origin describes where a tracked page view came from.
type Origin struct {
	Page     string `json:"page"`
	Referrer string `json:"referrer"`
	Pathname string `json:"pathname"`
}

// Record is one collected visitor snapshot. It is assembled once per beacon,
// stored, optionally forwarded, and never mutated afterwards. The ID is the
// creation time in unix milliseconds – monotonic enough for ordering but not
// guaranteed unique under high-frequency tracking.
type Record struct {
	ID                 int64              `json:"id"`
	Timestamp          string             `json:"timestamp"`
	LocalizedTimestamp string             `json:"localizedTimestamp"`
	Location           geolocate.Location `json:"location"`
	Device             useragent.Device   `json:"device"`
	Origin             Origin             `json:"origin"`
}

// Beacon carries the facts a tracked page reports about itself, plus the
// request-derived facts the handler fills in before calling Track.
type Beacon struct {
	// Page-reported facts (request body).
	Page     string `json:"page"`
	Pathname string `json:"pathname"`
	Referrer string `json:"referrer"`
	Screen   string `json:"screen"`
	Language string `json:"language"`

	// Request-derived facts, never taken from the body.
	IP             string `json:"-"`
	UserAgent      string `json:"-"`
	AcceptLanguage string `json:"-"`
}
