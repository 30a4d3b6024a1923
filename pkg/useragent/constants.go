package useragent

// Device type classes reported by Inspect.
const (
	// DeviceDesktop identifies desktop computers and laptops. It is the
	// default class when no mobile or tablet marker is present.
	DeviceDesktop = "Desktop"

	// DeviceMobile identifies smartphones and other handheld devices.
	DeviceMobile = "Mobile"

	// DeviceTablet identifies tablets. Tablet markers override mobile ones.
	DeviceTablet = "Tablet"
)

// Operating system families.
const (
	OSWindows = "Windows"
	OSMacOS   = "MacOS"
	OSLinux   = "Linux"
	OSAndroid = "Android"
	OSiOS     = "iOS"

	// OSUnknown is reported when no OS marker matches.
	OSUnknown = "Unknown"
)

// Browser families.
const (
	BrowserChrome  = "Chrome"
	BrowserSafari  = "Safari"
	BrowserFirefox = "Firefox"
	BrowserEdge    = "Edge"
	BrowserOpera   = "Opera"

	// BrowserUnknown is reported when no browser marker matches.
	BrowserUnknown = "Unknown"
)

// Hardware brands.
const (
	BrandSamsung  = "Samsung"
	BrandApple    = "Apple"
	BrandHuawei   = "Huawei"
	BrandXiaomi   = "Xiaomi"
	BrandMotorola = "Motorola"
	BrandLG       = "LG"
	BrandNokia    = "Nokia"

	// BrandPC is the fallback brand for anything without a handset marker.
	BrandPC = "PC"
)

// ModelUnknown is the only model value Inspect reports. Model detection is a
// documented limitation, not a fallback.
const ModelUnknown = "Unknown"
