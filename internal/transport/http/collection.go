package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"art_academy/internal/lib/logger/sl"
	"art_academy/internal/transport/http/dto/response"
)

// Collection serves the admin CRUD endpoints of one content collection.
// Successful writes signal the orchestrator to refetch.
type Collection[T, P any] struct {
	log     *slog.Logger
	name    string
	svc     ContentService[T, P]
	changed func()
}

func newCollection[T, P any](log *slog.Logger, name string, svc ContentService[T, P], changed func()) *Collection[T, P] {
	return &Collection[T, P]{
		log:     log,
		name:    name,
		svc:     svc,
		changed: changed,
	}
}

// List godoc
// @Summary Все записи коллекции, включая скрытые
// @Tags admin
// @Produce json
// @Param collection path string true "Коллекция" Enums(gallery, courses, instructors, techniques)
// @Success 200 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/v1/admin/{collection} [get]
func (h *Collection[T, P]) List(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(h.svc.ListAll(c.Request().Context())))
}

// Get godoc
// @Summary Запись коллекции по id
// @Tags admin
// @Produce json
// @Param collection path string true "Коллекция" Enums(gallery, courses, instructors, techniques)
// @Param id path int true "ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/{collection}/{id} [get]
func (h *Collection[T, P]) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	item, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		status, body := errorStatus(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

// Create godoc
// @Summary Создание записи
// @Tags admin
// @Accept json
// @Produce json
// @Param collection path string true "Коллекция" Enums(gallery, courses, instructors, techniques)
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/{collection} [post]
func (h *Collection[T, P]) Create(c echo.Context) error {
	const op = "http.routers.Collection.Create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("collection", h.name),
	)

	var item T
	if err := c.Bind(&item); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	created, err := h.svc.Create(c.Request().Context(), item)
	if err != nil {
		status, body := errorStatus(err)
		return c.JSON(status, body)
	}

	h.changed()

	return c.JSON(http.StatusCreated, response.SuccessResponse(created))
}

// Update godoc
// @Summary Частичное обновление записи
// @Description Обновляются только переданные поля; updated_at проставляется сервером.
// @Tags admin
// @Accept json
// @Produce json
// @Param collection path string true "Коллекция" Enums(gallery, courses, instructors, techniques)
// @Param id path int true "ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/{collection}/{id} [patch]
func (h *Collection[T, P]) Update(c echo.Context) error {
	const op = "http.routers.Collection.Update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("collection", h.name),
	)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var patch P
	if err := c.Bind(&patch); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(&patch); err != nil {
		status, body := errorStatus(err)
		return c.JSON(status, body)
	}

	updated, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		status, body := errorStatus(err)
		return c.JSON(status, body)
	}

	h.changed()

	return c.JSON(http.StatusOK, response.SuccessResponse(updated))
}

// Delete godoc
// @Summary Удаление записи
// @Tags admin
// @Produce json
// @Param collection path string true "Коллекция" Enums(gallery, courses, instructors, techniques)
// @Param id path int true "ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/{collection}/{id} [delete]
func (h *Collection[T, P]) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	// the façade folds not-found and store failures into false
	if !h.svc.Delete(c.Request().Context(), id) {
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	}

	h.changed()

	return c.JSON(http.StatusOK, response.MessageResponse("deleted"))
}
