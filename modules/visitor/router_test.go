package visitor_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackkit/trackkit/modules/visitor"
	"github.com/trackkit/trackkit/pkg/geolocate"
	"github.com/trackkit/trackkit/pkg/useragent"
)

func decodeRecord(t *testing.T, body string) visitor.Record {
	t.Helper()
	var rec visitor.Record
	require.NoError(t, jsonUnmarshal(body, &rec))
	return rec
}

func TestHandleTrack(t *testing.T) {
	city := "Berlin"
	svc := visitor.NewService(
		stubResolver{loc: geolocate.Location{City: &city, Timezone: "Europe/Berlin"}},
		newVisitorStore(t),
		newCaptureSink(),
	)
	router := visitor.Router(svc)

	t.Run("full beacon", func(t *testing.T) {
		body := `{"page":"https://example.com/pricing","pathname":"/pricing","referrer":"https://google.com/","screen":"390x844","language":"de-DE"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1")
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
		req.RemoteAddr = "203.0.113.7:51234"
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		rec := decodeRecord(t, w.Body.String())
		assert.Equal(t, useragent.DeviceMobile, rec.Device.Type)
		assert.Equal(t, "de-DE", rec.Device.Language)
		assert.Equal(t, "390x844", rec.Device.ScreenResolution)
		require.NotNil(t, rec.Location.City)
		assert.Equal(t, "Berlin", *rec.Location.City)
		assert.Equal(t, "https://google.com/", rec.Origin.Referrer)
	})

	t.Run("empty body still produces a record", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Accept-Language", "fr-FR,fr;q=0.8")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		rec := decodeRecord(t, w.Body.String())
		assert.Equal(t, visitor.DirectAccess, rec.Origin.Referrer)
		assert.Equal(t, "fr-FR", rec.Device.Language, "language falls back to the Accept-Language primary tag")
	})

	t.Run("referrer header fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"page":"https://example.com/"}`))
		req.Header.Set("Referer", "https://news.ycombinator.com/")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		rec := decodeRecord(t, w.Body.String())
		assert.Equal(t, "https://news.ycombinator.com/", rec.Origin.Referrer)
	})
}

func TestHandleList(t *testing.T) {
	svc := visitor.NewService(stubResolver{}, newVisitorStore(t), newCaptureSink())
	router := visitor.Router(svc)

	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var records []visitor.Record
	require.NoError(t, jsonUnmarshal(w.Body.String(), &records))
	assert.Len(t, records, 2)
}
