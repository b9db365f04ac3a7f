package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/campus-portal/internal/core/ports"
)

type SearchHandler struct {
	search ports.SearchService
	live   ports.LiveSearch
}

func NewSearchHandler(search ports.SearchService, live ports.LiveSearch) *SearchHandler {
	return &SearchHandler{search: search, live: live}
}

type liveQueryRequest struct {
	Query string `json:"query"`
}

type navigateRequest struct {
	ResultID string `json:"result_id" validate:"required"`
}

// Search handles GET /v1/search?q=. It answers immediately without debounce.
//
// @Summary      Global search
// @Tags         search
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Free-text query"
// @Success      200  {object}  ports.SearchOutcome
// @Router       /v1/search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	out, err := h.search.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// TypeQuery handles PUT /v1/search/session. The query runs after the
// debounce delay; poll GET /v1/search/session for the outcome.
//
// @Summary      Update the live search query
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      liveQueryRequest  true  "Query as typed"
// @Success      202   {object}  ports.SearchOutcome
// @Router       /v1/search/session [put]
func (h *SearchHandler) TypeQuery(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req liveQueryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	return c.JSON(http.StatusAccepted, h.live.Type(who.UserID, req.Query))
}

// Session handles GET /v1/search/session.
//
// @Summary      Current live search state
// @Tags         search
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.SearchOutcome
// @Router       /v1/search/session [get]
func (h *SearchHandler) Session(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.live.Current(who.UserID))
}

// ClearSession handles DELETE /v1/search/session.
//
// @Summary      Clear the live search
// @Tags         search
// @Security     BearerAuth
// @Success      204
// @Router       /v1/search/session [delete]
func (h *SearchHandler) ClearSession(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	h.live.Clear(who.UserID)
	return c.NoContent(http.StatusNoContent)
}

// Navigate handles POST /v1/search/session/navigate. It returns the chosen
// result, whose URL is the navigation target, and clears the session.
//
// @Summary      Select a live search result
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      navigateRequest  true  "Selected result"
// @Success      200   {object}  domain.SearchResult
// @Failure      404   {object}  errorResponse
// @Router       /v1/search/session/navigate [post]
func (h *SearchHandler) Navigate(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.live.Navigate(who.UserID, req.ResultID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
