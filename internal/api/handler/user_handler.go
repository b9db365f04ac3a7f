package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

const streamKeepAlive = 15 * time.Second

// UserHandler is the admin user directory.
type UserHandler struct {
	directory ports.UserDirectory
	log       zerolog.Logger
}

func NewUserHandler(directory ports.UserDirectory, log zerolog.Logger) *UserHandler {
	return &UserHandler{directory: directory, log: log}
}

// List handles GET /v1/admin/users.
//
// @Summary      List registered users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.directory.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[domain.User]{Items: users, Total: len(users)})
}

// Delete handles DELETE /v1/admin/users/:id.
//
// @Summary      Delete a registered user
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.directory.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Stream handles GET /v1/admin/users/stream as server-sent events, one
// "directory" event per registration, deletion or password change.
//
// @Summary      Stream user directory changes
// @Tags         admin
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200
// @Router       /v1/admin/users/stream [get]
func (h *UserHandler) Stream(c echo.Context) error {
	events, cancel := h.directory.Subscribe()
	defer cancel()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ctx := c.Request().Context()
	ticker := time.NewTicker(streamKeepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			data, err := json.Marshal(ev)
			if err != nil {
				h.log.Error().Err(err).Msg("encode directory event")
				continue
			}
			if _, err := fmt.Fprintf(w, "event: directory\ndata: %s\n\n", data); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
