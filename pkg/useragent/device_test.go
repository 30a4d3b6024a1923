package useragent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trackkit/trackkit/pkg/useragent"
)

func TestParseDeviceType(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{
			name:     "Windows desktop",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			expected: useragent.DeviceDesktop,
		},
		{
			name:     "iPhone",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
			expected: useragent.DeviceMobile,
		},
		{
			name:     "Android phone",
			ua:       "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36",
			expected: useragent.DeviceMobile,
		},
		{
			name:     "iPad with Mobile token still classifies as tablet",
			ua:       "Mozilla/5.0 (iPad; CPU OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
			expected: useragent.DeviceTablet,
		},
		{
			name:     "Android tablet without Mobile token",
			ua:       "Mozilla/5.0 (Linux; Android 11; SM-T870) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			expected: useragent.DeviceTablet,
		},
		{
			name:     "explicit tablet marker overrides mobile marker",
			ua:       "Mozilla/5.0 (Linux; Android 9; Tablet) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/79.0.3945.116 Mobile Safari/537.36",
			expected: useragent.DeviceTablet,
		},
		{
			name:     "empty UA defaults to desktop",
			ua:       "",
			expected: useragent.DeviceDesktop,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := useragent.ParseDeviceType(strings.ToLower(tc.ua))
			assert.Equal(t, tc.expected, result)
		})
	}
}
