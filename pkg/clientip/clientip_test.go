package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trackkit/trackkit/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "Cloudflare header wins",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.5", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "10.0.0.1:4321",
			expected:   "203.0.113.5",
		},
		{
			name:       "first valid X-Forwarded-For entry",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 198.51.100.1, 10.0.0.1"},
			remoteAddr: "10.0.0.1:4321",
			expected:   "203.0.113.7",
		},
		{
			name:       "invalid X-Forwarded-For entries are skipped",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip, 198.51.100.1"},
			remoteAddr: "10.0.0.1:4321",
			expected:   "198.51.100.1",
		},
		{
			name:       "X-Real-IP fallback",
			headers:    map[string]string{"X-Real-IP": "198.51.100.23"},
			remoteAddr: "10.0.0.1:4321",
			expected:   "198.51.100.23",
		},
		{
			name:       "RemoteAddr with port",
			remoteAddr: "203.0.113.50:58214",
			expected:   "203.0.113.50",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "203.0.113.50",
			expected:   "203.0.113.50",
		},
		{
			name:       "IPv6 is normalized",
			headers:    map[string]string{"X-Real-IP": "2001:0db8:0000:0000:0000:0000:0000:0001"},
			remoteAddr: "10.0.0.1:4321",
			expected:   "2001:db8::1",
		},
		{
			name:       "all sources invalid",
			headers:    map[string]string{"X-Forwarded-For": "garbage"},
			remoteAddr: "not-an-address",
			expected:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tc.expected, clientip.GetIP(r))
		})
	}
}
