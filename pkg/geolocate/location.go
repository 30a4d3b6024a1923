package geolocate

// Location is the canonical geolocation record shared by all providers.
// Every identity field is optional: nil means "the provider did not supply
// this field", not an error. Timezone is the one guaranteed field – the
// resolver falls back to the host environment's zone when no provider
// supplies one.
type Location struct {
	IP          *string  `json:"ip"`
	Country     *string  `json:"country"`
	CountryCode *string  `json:"countryCode"`
	City        *string  `json:"city"`
	Region      *string  `json:"region"`
	ISP         *string  `json:"isp"`
	Timezone    string   `json:"timezone"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// clean normalizes optional string fields: a pointer to an empty string is
// collapsed to nil so that "present but blank" and "absent" read the same.
func clean(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
