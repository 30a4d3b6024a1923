package useragent

import "strings"

// keywordSet groups markers for a single classification outcome.
type keywordSet []string

func (k keywordSet) matches(s string) bool {
	for _, keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Marker sets per device class. Tablet markers are checked after mobile ones
// so that a UA carrying both (every iPad advertises "Mobile") still resolves
// to Tablet.
var (
	mobileKeywords = keywordSet{"mobile", "iphone", "android", "windows phone", "iemobile", "blackberry", "opera mini"}
	tabletKeywords = keywordSet{"ipad", "tablet", "kindle", "silk", "playbook"}
)

// ParseDeviceType classifies the device class from a lower-cased UA string.
// Desktop is the default; a mobile marker switches to Mobile; a tablet marker
// overrides either.
func ParseDeviceType(lowerUA string) string {
	deviceType := DeviceDesktop

	if mobileKeywords.matches(lowerUA) {
		deviceType = DeviceMobile
	}

	// Android tablets omit the "mobile" token, so this check must run after
	// the mobile one and override it rather than short-circuit before it.
	if tabletKeywords.matches(lowerUA) {
		deviceType = DeviceTablet
	}
	if strings.Contains(lowerUA, "android") && !strings.Contains(lowerUA, "mobile") {
		deviceType = DeviceTablet
	}

	return deviceType
}
