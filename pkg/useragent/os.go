package useragent

// OS marker sets. Order matters: iOS is checked before macOS because iPhone
// UA strings contain "like Mac OS X", and Android before Linux because
// Android UA strings contain "Linux".
var (
	windowsKeywords = keywordSet{"windows nt", "windows"}
	iosKeywords     = keywordSet{"iphone", "ipad", "ipod"}
	macKeywords     = keywordSet{"macintosh", "mac os x"}
	androidKeywords = keywordSet{"android"}
	linuxKeywords   = keywordSet{"linux", "x11", "ubuntu"}
)

// ParseOS identifies the operating system family from a lower-cased UA
// string. First match wins; no marker yields OSUnknown.
func ParseOS(lowerUA string) string {
	switch {
	case windowsKeywords.matches(lowerUA):
		return OSWindows
	case iosKeywords.matches(lowerUA):
		return OSiOS
	case macKeywords.matches(lowerUA):
		return OSMacOS
	case androidKeywords.matches(lowerUA):
		return OSAndroid
	case linuxKeywords.matches(lowerUA):
		return OSLinux
	default:
		return OSUnknown
	}
}
