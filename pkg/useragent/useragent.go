package useragent

import "strings"

// Device is the classification result for one identification string plus the
// screen and locale facts supplied by the caller.
type Device struct {
	Type             string `json:"type"`
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	OS               string `json:"os"`
	Browser          string `json:"browser"`
	ScreenResolution string `json:"screenResolution"`
	Language         string `json:"language"`
	UserAgent        string `json:"userAgent"`
}

// IsMobile reports whether the device classified as a handheld.
func (d Device) IsMobile() bool { return d.Type == DeviceMobile }

// IsTablet reports whether the device classified as a tablet.
func (d Device) IsTablet() bool { return d.Type == DeviceTablet }

// IsDesktop reports whether the device classified as a desktop.
func (d Device) IsDesktop() bool { return d.Type == DeviceDesktop }

// Inspect classifies a User-Agent string. It is a pure function of its
// arguments and never fails: an empty or unrecognizable UA yields a Desktop
// PC with unknown OS and browser. Screen and language are carried through
// verbatim since the server cannot derive them from the UA alone.
func Inspect(ua, screen, language string) Device {
	lowerUA := strings.ToLower(ua)

	return Device{
		Type:             ParseDeviceType(lowerUA),
		Brand:            ParseBrand(lowerUA),
		Model:            ModelUnknown,
		OS:               ParseOS(lowerUA),
		Browser:          ParseBrowser(lowerUA),
		ScreenResolution: screen,
		Language:         language,
		UserAgent:        ua,
	}
}
