package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/campus-portal/internal/api/metrics"
	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

const maxPatchBytes = 1 << 20

// RecordHandler serves list/get/create/patch for one record collection.
type RecordHandler[T domain.Record] struct {
	service ports.RecordService[T]
}

func NewRecordHandler[T domain.Record](service ports.RecordService[T]) *RecordHandler[T] {
	return &RecordHandler[T]{service: service}
}

// List handles GET /v1/{collection}. Records come back newest first.
//
// @Summary      List records of a collection
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path      string  true  "Collection (e.g. complaints, bookings)"
// @Success      200         {object}  map[string]any
// @Failure      401         {object}  errorResponse
// @Router       /v1/{collection} [get]
func (h *RecordHandler[T]) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[T]{Items: items, Total: len(items)})
}

// Get handles GET /v1/{collection}/:id.
//
// @Summary      Get a record
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path      string  true  "Collection"
// @Param        id          path      string  true  "Record id (e.g. COMP-M5X2K1AB-3F9A0C1D)"
// @Success      200         {object}  map[string]any
// @Failure      404         {object}  errorResponse
// @Router       /v1/{collection}/{id} [get]
func (h *RecordHandler[T]) Get(c echo.Context) error {
	rec, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

// Create handles POST /v1/{collection}. The server assigns id and created_at.
//
// @Summary      Create a record
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path      string          true  "Collection"
// @Param        body        body      map[string]any  true  "Record fields"
// @Success      201         {object}  map[string]any
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Router       /v1/{collection} [post]
func (h *RecordHandler[T]) Create(c echo.Context) error {
	var rec T
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.service.Add(c.Request().Context(), rec)
	if err != nil {
		return err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(string(h.service.Kind())).Inc()

	return c.JSON(http.StatusCreated, created)
}

// Patch handles PATCH /v1/{collection}/:id. Fields present in the body
// replace the stored ones; id and created_at are never changed.
//
// @Summary      Update a record
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path      string          true  "Collection"
// @Param        id          path      string          true  "Record id"
// @Param        body        body      map[string]any  true  "Fields to change"
// @Success      200         {object}  map[string]any
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/{collection}/{id} [patch]
func (h *RecordHandler[T]) Patch(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxPatchBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), body)
	if err != nil {
		return err
	}
	metrics.RecordsUpdatedTotal.WithLabelValues(string(h.service.Kind())).Inc()

	return c.JSON(http.StatusOK, updated)
}
