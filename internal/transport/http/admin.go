package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"art_academy/internal/domain/models"
	"art_academy/internal/lib/logger/sl"
	"art_academy/internal/services/auth"
	"art_academy/internal/transport/http/dto"
	"art_academy/internal/transport/http/dto/request"
	"art_academy/internal/transport/http/dto/response"
)

const (
	SessionName     = "admin_session"
	sessionAdminKey = "admin"

	maxSettingSize = 1 << 20
)

// Login godoc
// @Summary Вход администратора
// @Description Проверяет пароль администратора, возвращает JWT и устанавливает cookie-сессию.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Пароль"
// @Success 200 {object} response.Response{data=dto.LoginResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/admin/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
		slog.String("remote_ip", c.RealIP()),
	)

	var req request.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid login request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(response.CodeValidationFailed, err.Error()))
	}

	token, err := r.svc.Auth.Login(c.Request().Context(), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	ttl := r.svc.Auth.TokenTTL()

	if sess, err := session.Get(SessionName, c); err == nil {
		sess.Options = &sessions.Options{
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		sess.Values[sessionAdminKey] = true
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Warn("failed to save session", sl.Err(err))
		}
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(ttl.Seconds()),
	}))
}

// Logout godoc
// @Summary Выход администратора
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/v1/admin/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	if sess, err := session.Get(SessionName, c); err == nil {
		sess.Options = &sessions.Options{Path: "/", MaxAge: -1}
		delete(sess.Values, sessionAdminKey)
		_ = sess.Save(c.Request(), c.Response())
	}

	return c.JSON(http.StatusOK, response.MessageResponse("logged out"))
}

// HasAdminSession reports whether the request carries an authenticated admin cookie.
func HasAdminSession(c echo.Context) bool {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return false
	}

	ok, _ := sess.Values[sessionAdminKey].(bool)
	return ok
}

// GetConfig godoc
// @Summary Документ конфигурации сайта
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=dto.ConfigResponse}
// @Security ApiKeyAuth
// @Router /api/v1/admin/config [get]
func (r *Routers) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(dto.ConfigResponse{
		Config: r.svc.Site.Config(),
		Status: r.svc.ConfigState.Status(c.Request().Context()),
	}))
}

// SaveConfig godoc
// @Summary Сохранение конфигурации сайта
// @Description Ссылки WhatsApp, телефона и Viber пересчитываются из номера телефона.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.SiteConfiguration true "Документ конфигурации"
// @Success 200 {object} response.Response{data=models.SiteConfiguration}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/config [put]
func (r *Routers) SaveConfig(c echo.Context) error {
	var doc models.SiteConfiguration
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(&doc); err != nil {
		status, body := errorStatus(err)
		return c.JSON(status, body)
	}

	if !r.svc.Site.SaveConfig(c.Request().Context(), doc) {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(r.svc.Site.Config()))
}

// ResetConfig godoc
// @Summary Сброс конфигурации к значениям по умолчанию
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=models.SiteConfiguration}
// @Security ApiKeyAuth
// @Router /api/v1/admin/config [delete]
func (r *Routers) ResetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(r.svc.Site.ResetConfig(c.Request().Context())))
}

// UploadImage godoc
// @Summary Загрузка изображения
// @Description Принимаются только изображения размером до лимита (по умолчанию 10MB).
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Изображение"
// @Param kind formData string true "Тип сущности" Enums(instructor, gallery, course, technique, logo)
// @Param item_id formData integer false "ID записи"
// @Success 201 {object} response.Response{data=dto.UploadResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 413 {object} response.ErrorResponse
// @Failure 415 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/uploads [post]
func (r *Routers) UploadImage(c echo.Context) error {
	const op = "http.routers.UploadImage"

	log := r.log.With(slog.String("op", op))

	var form request.UploadForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(&form); err != nil {
		status, body := errorStatus(err)
		return c.JSON(status, body)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		log.Warn("empty file in request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(response.CodeInvalidRequest, "file is required"))
	}

	src, err := fh.Open()
	if err != nil {
		log.Error("failed to open uploaded file", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}
	defer src.Close()

	in := models.UploadInput{
		File:        src,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Kind:        models.UploadKind(form.Kind),
	}
	if form.ItemID != "" {
		id, err := strconv.ParseInt(form.ItemID, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
		}
		in.ItemID = &id
	}

	url, err := r.svc.Media.UploadImage(c.Request().Context(), in)
	if err != nil {
		status, body := errorStatus(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(dto.UploadResponse{URL: url}))
}

// DeleteUpload godoc
// @Summary Удаление изображения по публичному URL
// @Tags uploads
// @Produce json
// @Param url query string true "Публичный URL изображения"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/uploads [delete]
func (r *Routers) DeleteUpload(c echo.Context) error {
	url := c.QueryParam("url")
	if url == "" {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(response.CodeInvalidRequest, "url is required"))
	}

	if !r.svc.Media.DeleteByURL(c.Request().Context(), url) {
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	}

	return c.JSON(http.StatusOK, response.MessageResponse("deleted"))
}

// GetSetting godoc
// @Summary Значение настройки
// @Tags settings
// @Produce json
// @Param key path string true "Ключ"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/settings/{key} [get]
func (r *Routers) GetSetting(c echo.Context) error {
	value := r.svc.Settings.Get(c.Request().Context(), c.Param("key"))
	if value == nil {
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(value))
}

// PutSetting godoc
// @Summary Запись настройки
// @Description Тело запроса: произвольный JSON, сохраняется как есть.
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Ключ"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/settings/{key} [put]
func (r *Routers) PutSetting(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxSettingSize))
	if err != nil || !json.Valid(body) {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if !r.svc.Settings.Set(c.Request().Context(), c.Param("key"), json.RawMessage(body)) {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.MessageResponse("saved"))
}

// RefreshContent godoc
// @Summary Принудительное обновление данных сайта
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=dto.RefreshResponse}
// @Security ApiKeyAuth
// @Router /api/v1/admin/refresh [post]
func (r *Routers) RefreshContent(c echo.Context) error {
	// refresh outlives the admin connection
	published := r.svc.Site.Refresh(context.WithoutCancel(c.Request().Context()))

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.RefreshResponse{Published: published}))
}
