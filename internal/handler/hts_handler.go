package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ftzops/internal/config"
	"ftzops/internal/domain"
	"ftzops/internal/service"
)

// actionRoute fixes the HTTP method and auth requirement for one action.
type actionRoute struct {
	method       string
	requiresAuth bool
	handle       gin.HandlerFunc
}

// HTSHandler dispatches the action-selected HTS API surface.
type HTSHandler struct {
	countrySvc service.CountryService
	popularSvc service.PopularService
	searchSvc  service.SearchService
	browseSvc  service.BrowseService
	dutySvc    service.DutyService
	systemSvc  service.SystemService
	authSvc    service.AuthService
	limits     config.LimitsConfig
	routes     map[domain.Action]actionRoute
}

// NewHTSHandler creates a new HTSHandler with its closed action table.
func NewHTSHandler(
	countrySvc service.CountryService,
	popularSvc service.PopularService,
	searchSvc service.SearchService,
	browseSvc service.BrowseService,
	dutySvc service.DutyService,
	systemSvc service.SystemService,
	authSvc service.AuthService,
	limits config.LimitsConfig,
) *HTSHandler {
	h := &HTSHandler{
		countrySvc: countrySvc,
		popularSvc: popularSvc,
		searchSvc:  searchSvc,
		browseSvc:  browseSvc,
		dutySvc:    dutySvc,
		systemSvc:  systemSvc,
		authSvc:    authSvc,
		limits:     limits,
	}
	h.routes = map[domain.Action]actionRoute{
		domain.ActionCountries: {method: http.MethodGet, handle: h.handleCountries},
		domain.ActionPopular:   {method: http.MethodGet, handle: h.handlePopular},
		domain.ActionStatus:    {method: http.MethodGet, handle: h.handleStatus},
		domain.ActionSearch:    {method: http.MethodGet, handle: h.handleSearch},
		domain.ActionBrowse:    {method: http.MethodGet, handle: h.handleBrowse},
		domain.ActionCode:      {method: http.MethodGet, handle: h.handleCode},
		domain.ActionDutyRate:  {method: http.MethodPost, handle: h.handleDutyRate},
		domain.ActionRefresh:   {method: http.MethodPost, requiresAuth: true, handle: h.handleRefresh},
	}
	return h
}

// Dispatch handles GET/POST /api/hts?action=...
// @Summary Dispatch an HTS action
// @Description Single entry point: the action query parameter selects the operation. Read actions use GET; duty-rate and refresh use POST. Refresh requires a Bearer admin token.
// @Tags hts
// @Produce json
// @Param action query string true "Action name" Enums(countries, popular, status, search, browse, code, duty-rate, refresh)
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse "Missing or unknown action, missing parameter"
// @Failure 401 {object} APIResponse "Refresh without valid credentials"
// @Failure 404 {object} APIResponse "Code or rate record not found"
// @Failure 405 {object} APIResponse "Wrong HTTP method for the action"
// @Router /api/hts [get]
func (h *HTSHandler) Dispatch(c *gin.Context) {
	name := c.Query("action")
	if name == "" {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success:          false,
			Error:            domain.ErrMissingAction.Error(),
			AvailableActions: actionNames(),
		})
		return
	}

	route, ok := h.routes[domain.Action(name)]
	if !ok {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success:          false,
			Error:            fmt.Sprintf("%s %q", domain.ErrUnknownAction, name),
			AvailableActions: actionNames(),
		})
		return
	}

	if c.Request.Method != route.method {
		HandleError(c, fmt.Errorf("%w: %s for action %q", domain.ErrMethodNotAllowed, c.Request.Method, name))
		return
	}

	if route.requiresAuth && !h.authorize(c) {
		return
	}

	// A panicking handler must never leak internals; log it and return a
	// generic envelope still carrying the action name.
	defer func() {
		if r := recover(); r != nil {
			requestID, _ := c.Get("request_id")
			log.Printf("[%v] panic in action %q: %v", requestID, name, r)
			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, APIResponse{
					Success: false,
					Error:   "an internal error occurred",
					Action:  name,
				})
			}
			c.Abort()
		}
	}()
	route.handle(c)
}

func (h *HTSHandler) authorize(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		RespondError(c, http.StatusUnauthorized, "missing or invalid authorization header")
		return false
	}
	if _, err := h.authSvc.ValidateToken(strings.TrimPrefix(authHeader, "Bearer ")); err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid or expired token")
		return false
	}
	return true
}

func (h *HTSHandler) handleCountries(c *gin.Context) {
	list := h.countrySvc.List(service.CountryFilter{
		Region:             c.Query("region"),
		TradeAgreementOnly: parseBoolQuery(c, "trade_agreement_only"),
		Search:             c.Query("search"),
	})
	RespondWithMeta(c, list.Countries, gin.H{
		"total":            list.Total,
		"regions":          list.Regions,
		"trade_agreements": list.TradeAgreements,
	})
}

func (h *HTSHandler) handlePopular(c *gin.Context) {
	list := h.popularSvc.List(service.PopularFilter{
		Limit:          parseIntQuery(c, "limit", h.limits.DefaultPopularSize),
		Category:       c.Query("category"),
		UsageFrequency: c.Query("usage_frequency"),
		Search:         c.Query("search"),
	})
	RespondWithMeta(c, list.Codes, gin.H{
		"total_matched":   list.TotalMatched,
		"categories":      list.Categories,
		"frequencies":     list.Frequencies,
		"total_available": list.TotalAvailable,
	})
}

func (h *HTSHandler) handleStatus(c *gin.Context) {
	RespondOK(c, h.systemSvc.Status())
}

func (h *HTSHandler) handleSearch(c *gin.Context) {
	set := h.searchSvc.Search(service.SearchQuery{
		Query:           c.Query("q"),
		Type:            domain.SearchType(c.DefaultQuery("type", string(domain.SearchByDescription))),
		Limit:           parseIntQuery(c, "limit", h.limits.MaxSearchResults),
		CountryOfOrigin: c.Query("countryOfOrigin"),
		Category:        c.Query("category"),
	})
	RespondWithMeta(c, set.Results, gin.H{
		"total_matched":     set.TotalMatched,
		"search_term":       set.SearchTerm,
		"search_type":       set.SearchType,
		"country_of_origin": set.CountryOfOrigin,
		"categories":        set.Categories,
		"database_size":     set.DatabaseSize,
	})
}

func (h *HTSHandler) handleBrowse(c *gin.Context) {
	page := h.browseSvc.Browse(service.BrowseQuery{
		Offset:         parseIntQuery(c, "offset", 0),
		Limit:          parseIntQuery(c, "limit", h.limits.DefaultBrowseSize),
		IncludeHeaders: c.DefaultQuery("includeHeaders", "true") != "false",
		Level:          c.Query("level"),
		Chapter:        c.Query("chapter"),
		Heading:        c.Query("heading"),
		Subheading:     c.Query("subheading"),
	})
	RespondWithMeta(c, page.Nodes, gin.H{
		"total":        page.Total,
		"offset":       page.Offset,
		"limit":        page.Limit,
		"returned":     page.Returned,
		"has_more":     page.HasMore,
		"filters":      page.Filters,
		"valid_levels": page.ValidLevels,
		"chapters":     page.Chapters,
	})
}

func (h *HTSHandler) handleCode(c *gin.Context) {
	htsCode := c.Query("htsCode")
	if strings.TrimSpace(htsCode) == "" {
		RespondError(c, http.StatusBadRequest, "missing required parameter: htsCode")
		return
	}
	result, err := h.dutySvc.LookupCode(htsCode, c.Query("countryOfOrigin"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

func (h *HTSHandler) handleDutyRate(c *gin.Context) {
	var input service.DutyRateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(input.HTSCode) == "" {
		RespondError(c, http.StatusBadRequest, "missing required field: htsCode")
		return
	}
	if strings.TrimSpace(input.CountryOfOrigin) == "" {
		RespondError(c, http.StatusBadRequest, "missing required field: countryOfOrigin")
		return
	}
	result, err := h.dutySvc.CalculateDutyRate(input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

func (h *HTSHandler) handleRefresh(c *gin.Context) {
	RespondOK(c, h.systemSvc.Refresh())
}

func parseIntQuery(c *gin.Context, name string, def int) int {
	raw, ok := c.GetQuery(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func parseBoolQuery(c *gin.Context, name string) bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(raw)
	return err == nil && b
}
