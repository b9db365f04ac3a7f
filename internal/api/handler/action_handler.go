package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/campus-portal/internal/api/metrics"
	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

// ActionHandler serves the record actions: comments, registrations and votes.
type ActionHandler struct {
	actions ports.RecordActions
}

func NewActionHandler(actions ports.RecordActions) *ActionHandler {
	return &ActionHandler{actions: actions}
}

type commentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type voteRequest struct {
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"answer,omitempty"`
}

// AddComment handles POST /v1/complaints/:id/comments.
//
// @Summary      Comment on a complaint
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Complaint id"
// @Param        body  body      commentRequest  true  "Comment"
// @Success      201   {object}  domain.Complaint
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/complaints/{id}/comments [post]
func (h *ActionHandler) AddComment(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.actions.AddComment(c.Request().Context(), c.Param("id"), req.Text, who)
	countAction("comment", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, complaint)
}

// RegisterForEvent handles POST /v1/events/:id/register.
//
// @Summary      Register for an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/events/{id}/register [post]
func (h *ActionHandler) RegisterForEvent(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	event, err := h.actions.RegisterForEvent(c.Request().Context(), c.Param("id"), who)
	countAction("event_registration", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// RegisterTeam handles POST /v1/hackathons/:id/register.
//
// @Summary      Register a hackathon team
// @Tags         hackathons
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hackathon id"
// @Success      200  {object}  domain.Hackathon
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/hackathons/{id}/register [post]
func (h *ActionHandler) RegisterTeam(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	hackathon, err := h.actions.RegisterTeam(c.Request().Context(), c.Param("id"), who)
	countAction("team_registration", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hackathon)
}

// Vote handles POST /v1/polls/:id/votes. Multiple-choice polls take
// "options", every other poll type takes "answer".
//
// @Summary      Vote on a poll
// @Tags         polls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Poll id"
// @Param        body  body      voteRequest  true  "Ballot"
// @Success      200   {object}  domain.Poll
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/polls/{id}/votes [post]
func (h *ActionHandler) Vote(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	poll, err := h.actions.Vote(c.Request().Context(), c.Param("id"), who, domain.Ballot{
		Options: req.Options,
		Answer:  req.Answer,
	})
	countAction("vote", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, poll)
}

func countAction(action string, err error) {
	metrics.ActionsTotal.WithLabelValues(action, metrics.Result(err, "ok", "rejected")).Inc()
}
