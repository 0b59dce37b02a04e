package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"art_academy/internal/domain/models"
	"art_academy/internal/lib/phone"
	"art_academy/internal/storage"
	"art_academy/internal/transport/http/dto"
	"art_academy/internal/transport/http/dto/response"
	"art_academy/internal/viewmodel"
)

// GetSite godoc
// @Summary Модель представления сайта
// @Description Конфигурация сайта, объединённая с опубликованными данными коллекций.
// @Tags site
// @Produce json
// @Success 200 {object} response.Response{data=models.SiteView}
// @Router /api/v1/site [get]
func (r *Routers) GetSite(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(r.svc.Site.View()))
}

// ListTechniques godoc
// @Summary Опубликованные техники рисования
// @Description Фильтр по запросу q, категории или уровню сложности (в этом порядке приоритета).
// @Tags techniques
// @Produce json
// @Param q query string false "Поиск по названию, описанию и содержимому"
// @Param category query string false "Категория"
// @Param difficulty query string false "Уровень сложности" Enums(مبتدئ, متوسط, متقدم)
// @Success 200 {object} response.Response{data=[]models.TechniqueView}
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/techniques [get]
func (r *Routers) ListTechniques(c echo.Context) error {
	ctx := c.Request().Context()

	var items []models.DrawingTechnique

	switch q, category, difficulty := c.QueryParam("q"), c.QueryParam("category"), c.QueryParam("difficulty"); {
	case q != "":
		items = r.svc.Techniques.Search(ctx, q)
	case category != "":
		items = r.svc.Techniques.ListByCategory(ctx, category)
	case difficulty != "":
		level := models.SkillLevel(difficulty)
		if !level.Valid() {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(response.CodeInvalidRequest, "unknown difficulty level"))
		}
		items = r.svc.Techniques.ListByDifficulty(ctx, level)
	default:
		items = r.svc.Techniques.ListVisible(ctx)
	}

	views := make([]models.TechniqueView, 0, len(items))
	for _, d := range items {
		views = append(views, viewmodel.Technique(d))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(views))
}

// GetTechnique godoc
// @Summary Страница техники
// @Description Возвращает технику и связанные техники; каждый запрос увеличивает счётчик просмотров.
// @Tags techniques
// @Produce json
// @Param id path int true "ID техники"
// @Success 200 {object} response.Response{data=dto.TechniqueDetail}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/techniques/{id} [get]
func (r *Routers) GetTechnique(c echo.Context) error {
	const op = "http.routers.GetTechnique"

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	ctx := c.Request().Context()

	d, err := r.svc.Techniques.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn("technique lookup failed", slog.String("op", op), slog.Int64("id", id))
		}
		status, body := errorStatus(err)
		return c.JSON(status, body)
	}

	// hidden techniques are not public
	if !d.IsVisible() {
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	}

	related := r.svc.Techniques.ListRelated(ctx, *d)
	detail := dto.TechniqueDetail{
		Technique: viewmodel.Technique(*d),
		Related:   make([]models.TechniqueView, 0, len(related)),
	}
	for _, rd := range related {
		detail.Related = append(detail.Related, viewmodel.Technique(rd))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(detail))
}

// ChatLink godoc
// @Summary Ссылка на чат академии
// @Description Ссылка wa.me на номер из конфигурации сайта с необязательным текстом сообщения.
// @Tags site
// @Produce json
// @Param message query string false "Текст сообщения"
// @Param course query string false "Название курса для сообщения о записи"
// @Success 200 {object} response.Response{data=dto.ChatLink}
// @Router /api/v1/links/chat [get]
func (r *Routers) ChatLink(c echo.Context) error {
	number := r.svc.Site.Config().General.PhoneNumber

	var link string
	switch course, message := c.QueryParam("course"), c.QueryParam("message"); {
	case course != "":
		link = phone.CourseEnrollmentLink(number, course)
	case message != "":
		link = phone.ChatLink(number, message)
	default:
		link = phone.GeneralInquiryLink(number)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.ChatLink{URL: link}))
}
