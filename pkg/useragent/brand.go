package useragent

// Brand marker sets in priority order. Best effort only: the markers cover
// the handset vendors that show up in UA strings; everything else, desktops
// included, falls back to BrandPC.
var brandPatterns = []struct {
	brand    string
	keywords keywordSet
}{
	{BrandSamsung, keywordSet{"samsung", "sm-g", "sm-a", "sm-n", "sm-t"}},
	{BrandApple, keywordSet{"iphone", "ipad", "ipod", "macintosh"}},
	{BrandHuawei, keywordSet{"huawei", "honor"}},
	{BrandXiaomi, keywordSet{"xiaomi", "redmi", "miui"}},
	{BrandMotorola, keywordSet{"motorola", "moto "}},
	{BrandLG, keywordSet{"lg-", "lge"}},
	{BrandNokia, keywordSet{"nokia"}},
}

// ParseBrand identifies the hardware brand from a lower-cased UA string.
// First match wins; no marker yields BrandPC.
func ParseBrand(lowerUA string) string {
	for _, p := range brandPatterns {
		if p.keywords.matches(lowerUA) {
			return p.brand
		}
	}
	return BrandPC
}
