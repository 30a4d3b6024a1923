package geolocate

import (
	"encoding/json"
	"fmt"
)

// IPAPIProvider queries ip-api.com. Richest free schema of the chain; the
// fields parameter keeps the response down to what the Location record uses.
type IPAPIProvider struct{}

func (IPAPIProvider) Name() string { return "ip-api.com" }

func (IPAPIProvider) Request(ip string) string {
	return "http://ip-api.com/json/" + ip + "?fields=status,message,query,country,countryCode,regionName,city,isp,timezone,lat,lon"
}

func (IPAPIProvider) Decode(body []byte) (Location, error) {
	var raw struct {
		Status      string   `json:"status"`
		Message     string   `json:"message"`
		Query       *string  `json:"query"`
		Country     *string  `json:"country"`
		CountryCode *string  `json:"countryCode"`
		RegionName  *string  `json:"regionName"`
		City        *string  `json:"city"`
		ISP         *string  `json:"isp"`
		Timezone    *string  `json:"timezone"`
		Lat         *float64 `json:"lat"`
		Lon         *float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if raw.Status != "success" {
		return Location{}, fmt.Errorf("%w: %s", ErrLookupRefused, raw.Message)
	}

	loc := Location{
		IP:          clean(raw.Query),
		Country:     clean(raw.Country),
		CountryCode: clean(raw.CountryCode),
		City:        clean(raw.City),
		Region:      clean(raw.RegionName),
		ISP:         clean(raw.ISP),
		Latitude:    raw.Lat,
		Longitude:   raw.Lon,
	}
	if tz := clean(raw.Timezone); tz != nil {
		loc.Timezone = *tz
	}
	return loc, nil
}

// IPAPICoProvider queries ipapi.co. Comparable data to ip-api.com but with a
// different field vocabulary and an error flag instead of a status string.
type IPAPICoProvider struct{}

func (IPAPICoProvider) Name() string { return "ipapi.co" }

func (IPAPICoProvider) Request(ip string) string {
	if ip == "" {
		return "https://ipapi.co/json/"
	}
	return "https://ipapi.co/" + ip + "/json/"
}

func (IPAPICoProvider) Decode(body []byte) (Location, error) {
	var raw struct {
		Error       bool     `json:"error"`
		Reason      string   `json:"reason"`
		IP          *string  `json:"ip"`
		CountryName *string  `json:"country_name"`
		CountryCode *string  `json:"country_code"`
		City        *string  `json:"city"`
		Region      *string  `json:"region"`
		Org         *string  `json:"org"`
		Timezone    *string  `json:"timezone"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if raw.Error {
		return Location{}, fmt.Errorf("%w: %s", ErrLookupRefused, raw.Reason)
	}

	loc := Location{
		IP:          clean(raw.IP),
		Country:     clean(raw.CountryName),
		CountryCode: clean(raw.CountryCode),
		City:        clean(raw.City),
		Region:      clean(raw.Region),
		ISP:         clean(raw.Org),
		Latitude:    raw.Latitude,
		Longitude:   raw.Longitude,
	}
	if tz := clean(raw.Timezone); tz != nil {
		loc.Timezone = *tz
	}
	return loc, nil
}

// IPWhoisProvider queries ipwho.is. The timezone comes back as a structured
// object; only its identifier subfield is carried over.
type IPWhoisProvider struct{}

func (IPWhoisProvider) Name() string { return "ipwho.is" }

func (IPWhoisProvider) Request(ip string) string {
	return "https://ipwho.is/" + ip
}

func (IPWhoisProvider) Decode(body []byte) (Location, error) {
	var raw struct {
		Success     bool     `json:"success"`
		Message     string   `json:"message"`
		IP          *string  `json:"ip"`
		Country     *string  `json:"country"`
		CountryCode *string  `json:"country_code"`
		City        *string  `json:"city"`
		Region      *string  `json:"region"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		Connection  struct {
			ISP *string `json:"isp"`
		} `json:"connection"`
		Timezone struct {
			ID *string `json:"id"`
		} `json:"timezone"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if !raw.Success {
		return Location{}, fmt.Errorf("%w: %s", ErrLookupRefused, raw.Message)
	}

	loc := Location{
		IP:          clean(raw.IP),
		Country:     clean(raw.Country),
		CountryCode: clean(raw.CountryCode),
		City:        clean(raw.City),
		Region:      clean(raw.Region),
		ISP:         clean(raw.Connection.ISP),
		Latitude:    raw.Latitude,
		Longitude:   raw.Longitude,
	}
	if tz := clean(raw.Timezone.ID); tz != nil {
		loc.Timezone = *tz
	}
	return loc, nil
}

// IPifyProvider queries api.ipify.org, which only echoes the caller's public
// IP. Last resort: a record with the IP and nothing else still identifies
// the visitor better than an empty one.
type IPifyProvider struct{}

func (IPifyProvider) Name() string { return "api.ipify.org" }

func (IPifyProvider) Request(string) string {
	return "https://api.ipify.org?format=json"
}

func (IPifyProvider) Decode(body []byte) (Location, error) {
	var raw struct {
		IP *string `json:"ip"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return Location{IP: clean(raw.IP)}, nil
}
