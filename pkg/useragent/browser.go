package useragent

// Browser marker sets, in checking priority order. Chromium Edge advertises
// both "Chrome" and "Edg", and Opera both "Chrome" and "OPR", so Edge and
// Opera must be checked before Chrome. Every Chrome advertises "Safari", so
// Safari comes last among the named families.
var (
	edgeKeywords    = keywordSet{"edg/", "edge/", "edga/", "edgios/"}
	operaKeywords   = keywordSet{"opr/", "opera"}
	chromeKeywords  = keywordSet{"chrome", "crios"}
	firefoxKeywords = keywordSet{"firefox", "fxios"}
	safariKeywords  = keywordSet{"safari"}
)

// ParseBrowser identifies the browser family from a lower-cased UA string.
// The check order encodes the exclusion rules: Edge over Chrome, Opera over
// Chrome, Chrome over Safari.
func ParseBrowser(lowerUA string) string {
	switch {
	case edgeKeywords.matches(lowerUA):
		return BrowserEdge
	case operaKeywords.matches(lowerUA):
		return BrowserOpera
	case chromeKeywords.matches(lowerUA):
		return BrowserChrome
	case firefoxKeywords.matches(lowerUA):
		return BrowserFirefox
	case safariKeywords.matches(lowerUA):
		return BrowserSafari
	default:
		return BrowserUnknown
	}
}
