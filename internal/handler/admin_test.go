package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammowing/lawncare-api/internal/config"
	"github.com/ammowing/lawncare-api/internal/utils"
)

func sydneyAreaHandler() *AdminHandler {
	return NewAdminHandler(config.Config{
		ServiceAreaLat:      -33.8688,
		ServiceAreaLng:      151.2093,
		ServiceAreaRadiusKM: 50,
	}, nil)
}

func TestCheckServiceAreaGET(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode int
		wantIn   bool
	}{
		{name: "inside", query: "latitude=-33.8150&longitude=151.0011", wantCode: http.StatusOK, wantIn: true},
		{name: "outside", query: "latitude=-37.8136&longitude=144.9631", wantCode: http.StatusOK, wantIn: false},
		{name: "missing longitude", query: "latitude=-33.8150", wantCode: http.StatusBadRequest},
		{name: "missing both", query: "", wantCode: http.StatusBadRequest},
		{name: "non numeric", query: "latitude=abc&longitude=151.0", wantCode: http.StatusBadRequest},
		{name: "latitude out of range", query: "latitude=95&longitude=151.0", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/service-area/check?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, sydneyAreaHandler().CheckServiceArea(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var res utils.ServiceAreaResult
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Equal(t, tt.wantIn, res.InServiceArea)
				assert.Equal(t, 50.0, res.ServiceAreaRadiusKM)
			}
		})
	}
}

func TestCheckServiceAreaPOST(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantIn   bool
	}{
		{name: "inside", body: `{"latitude":-33.8150,"longitude":151.0011}`, wantCode: http.StatusOK, wantIn: true},
		{name: "outside", body: `{"latitude":-34.4278,"longitude":150.8931}`, wantCode: http.StatusOK, wantIn: false},
		{name: "missing longitude", body: `{"latitude":-33.8150}`, wantCode: http.StatusBadRequest},
		{name: "empty body", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "malformed json", body: `{latitude:}`, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/admin/service-area/check", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, sydneyAreaHandler().CheckServiceArea(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var res utils.ServiceAreaResult
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Equal(t, tt.wantIn, res.InServiceArea)
			}
		})
	}
}
