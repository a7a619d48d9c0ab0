package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ftzops/internal/config"
	"ftzops/internal/domain"
	"ftzops/internal/handler"
	"ftzops/internal/repository/static"
	"ftzops/internal/service"
	"ftzops/mocks"
)

func testStore() *static.Store {
	return static.NewStore(static.Data{
		Countries: []domain.Country{
			{Code: "CA", Name: "Canada", Region: "North America", TradeAgreement: "USMCA"},
			{Code: "CN", Name: "China", Region: "Asia"},
			{Code: "MX", Name: "Mexico", Region: "North America", TradeAgreement: "USMCA"},
		},
		Entries: []domain.HTSEntry{
			{HTSCode: "8471.30.0100", Description: "Portable automatic data processing machines", Category: "Electronics", Chapter: "84", Heading: "8471", Subheading: "847130", Unit: "No.", GeneralRate: "0%", SpecialRate: "Free"},
			{HTSCode: "8542.31.0001", Description: "Electronic integrated circuits: processors and controllers", Category: "Electronics", Chapter: "85", Heading: "8542", Subheading: "854231", Unit: "No.", GeneralRate: "2.5%", SpecialRate: "Free (CA,MX)"},
		},
		Popular: []domain.PopularCode{
			{HTSCode: "8471.30.0100", Description: "Portable machines", Category: "Electronics", UsageFrequency: domain.FrequencyVeryHigh, GeneralRate: "0%", Unit: "No."},
		},
		BrowseNodes: []domain.BrowseNode{
			{Type: domain.LevelChapter, Code: "84", Title: "Machinery", Level: 1},
			{Type: domain.LevelTariffLine, HTSCode: "8471.30.0100", Description: "Portable machines", Level: 4, Chapter: "84", Heading: "8471", Subheading: "847130"},
		},
		DutyRates: map[string]domain.DutyRateRecord{
			"8542.31.0001": {GeneralRate: "2.5%", SpecialRates: map[string]string{"MX": "Free"}},
		},
		Agreements: map[string]string{"MX": "USMCA"},
	})
}

func newTestRouter(authSvc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := testStore()
	limits := config.LimitsConfig{MaxSearchResults: 100, DefaultPopularSize: 20, DefaultBrowseSize: 50}

	h := handler.NewHTSHandler(
		service.NewCountryService(store),
		service.NewPopularService(store),
		service.NewSearchService(store),
		service.NewBrowseService(store),
		service.NewDutyService(store),
		service.NewSystemService(store, config.ServiceConfig{Name: "hts-lookup", Version: "test"}, limits),
		authSvc,
		limits,
	)

	r := gin.New()
	r.Any("/api/hts", h.Dispatch)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, handler.APIResponse) {
	t.Helper()
	var reader = http.NoBody
	req, err := http.NewRequest(method, target, reader)
	if body != "" {
		req, err = http.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestDispatch_MissingAction(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodGet, "/api/hts", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "missing action parameter", resp.Error)
	assert.Len(t, resp.AvailableActions, 8)
}

func TestDispatch_UnknownAction(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodGet, "/api/hts?action=destroy", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "destroy")
	assert.Contains(t, resp.AvailableActions, "duty-rate")
}

func TestDispatch_MethodMismatch(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodGet, "/api/hts?action=duty-rate", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, resp.Error, "GET")
	assert.Contains(t, resp.Error, "duty-rate")

	w, resp = doRequest(t, r, http.MethodPost, "/api/hts?action=search", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, resp.Error, "POST")
}

func TestDispatch_Countries(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodGet, "/api/hts?action=countries&region=Asia", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	meta, ok := resp.Meta.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, meta["total"])
}

func TestDispatch_Status(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodGet, "/api/hts?action=status", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hts-lookup", data["service"])
}

func TestDispatch_SearchShortQuerySucceeds(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodGet, "/api/hts?action=search&q=x", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data)
}

func TestDispatch_CodeMissingParameter(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodGet, "/api/hts?action=code", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Error, "htsCode")
}

func TestDispatch_CodeNotFound(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodGet, "/api/hts?action=code&htsCode=9999.99.9999", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, resp.Error, "9999.99.9999")
}

func TestDispatch_CodeFoundWithDutyFreeNote(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodGet, "/api/hts?action=code&htsCode=8471300100", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "8471.30.0100", data["hts_code"])
	assert.Equal(t, true, data["found"])
	notes, ok := data["notes"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, notes, "This item is duty-free under general rates")
}

func TestDispatch_DutyRateMissingField(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodPost, "/api/hts?action=duty-rate",
		`{"htsCode":"8542.31.0001"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Error, "countryOfOrigin")
}

func TestDispatch_DutyRateSuccess(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodPost, "/api/hts?action=duty-rate",
		`{"htsCode":"8542.31.0001","countryOfOrigin":"MX"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Free", data["applicable_rate"])
	assert.Equal(t, true, data["is_preferential"])
	assert.Equal(t, true, data["is_duty_free"])
	assert.Equal(t, "USMCA", data["trade_agreement"])
}

func TestDispatch_RefreshWithoutToken(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodPost, "/api/hts?action=refresh", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)
}

func TestDispatch_RefreshInvalidToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "bad-token").Return(nil, domain.ErrUnauthorized)
	r := newTestRouter(authSvc)

	w, resp := doRequest(t, r, http.MethodPost, "/api/hts?action=refresh", "",
		map[string]string{"Authorization": "Bearer bad-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)
	authSvc.AssertExpectations(t)
}

func TestDispatch_RefreshAuthorized(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", mock.Anything).Return(&service.Claims{Scope: service.ScopeAdmin}, nil)
	r := newTestRouter(authSvc)

	w, resp := doRequest(t, r, http.MethodPost, "/api/hts?action=refresh", "",
		map[string]string{"Authorization": "Bearer good-token"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["cache_cleared"])
	counts, ok := data["update_counts"].(map[string]interface{})
	require.True(t, ok)
	for name, count := range counts {
		assert.EqualValues(t, 0, count, "counter %s", name)
	}
	authSvc.AssertExpectations(t)
}

func TestDispatch_BrowsePagination(t *testing.T) {
	r := newTestRouter(new(mocks.MockAuthService))

	w, resp := doRequest(t, r, http.MethodGet, "/api/hts?action=browse&offset=1&limit=10", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	meta, ok := resp.Meta.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, meta["total"])
	assert.EqualValues(t, 1, meta["returned"])
	assert.Equal(t, false, meta["has_more"])
}
