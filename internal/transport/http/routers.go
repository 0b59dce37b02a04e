package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"art_academy/internal/domain/models"
	"art_academy/internal/storage"
	"art_academy/internal/transport/http/dto/response"
)

type SiteOrchestrator interface {
	View() models.SiteView
	Config() models.SiteConfiguration
	SaveConfig(ctx context.Context, doc models.SiteConfiguration) bool
	ResetConfig(ctx context.Context) models.SiteConfiguration
	Refresh(ctx context.Context) bool
	NotifyDataChanged()
}

type ConfigStatus interface {
	Status(ctx context.Context) models.DataStatus
}

// ContentService is the admin façade of one collection.
type ContentService[T, P any] interface {
	ListAll(ctx context.Context) []T
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item T) (*T, error)
	Update(ctx context.Context, id int64, patch P) (*T, error)
	Delete(ctx context.Context, id int64) bool
}

type TechniqueService interface {
	ContentService[models.DrawingTechnique, models.DrawingTechniquePatch]
	GetByID(ctx context.Context, id int64) (*models.DrawingTechnique, error)
	ListVisible(ctx context.Context) []models.DrawingTechnique
	ListByCategory(ctx context.Context, category string) []models.DrawingTechnique
	ListByDifficulty(ctx context.Context, level models.SkillLevel) []models.DrawingTechnique
	Search(ctx context.Context, query string) []models.DrawingTechnique
	ListRelated(ctx context.Context, d models.DrawingTechnique) []models.DrawingTechnique
}

type MediaService interface {
	UploadImage(ctx context.Context, in models.UploadInput) (string, error)
	DeleteByURL(ctx context.Context, url string) bool
}

type SettingsService interface {
	Get(ctx context.Context, key string) json.RawMessage
	Set(ctx context.Context, key string, value json.RawMessage) bool
}

type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
	TokenTTL() time.Duration
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Services struct {
	Site        SiteOrchestrator
	ConfigState ConfigStatus
	Gallery     ContentService[models.GalleryItem, models.GalleryItemPatch]
	Courses     ContentService[models.Course, models.CoursePatch]
	Instructors ContentService[models.Instructor, models.InstructorPatch]
	Techniques  TechniqueService
	Media       MediaService
	Settings    SettingsService
	Auth        AuthService
	Health      HealthChecker
}

type Routers struct {
	log *slog.Logger
	svc Services

	Gallery     *Collection[models.GalleryItem, models.GalleryItemPatch]
	Courses     *Collection[models.Course, models.CoursePatch]
	Instructors *Collection[models.Instructor, models.InstructorPatch]
	Techniques  *Collection[models.DrawingTechnique, models.DrawingTechniquePatch]
}

func NewRouter(log *slog.Logger, svc Services) *Routers {
	notify := func() {
		if svc.Site != nil {
			svc.Site.NotifyDataChanged()
		}
	}

	return &Routers{
		log:         log,
		svc:         svc,
		Gallery:     newCollection(log, "gallery", svc.Gallery, notify),
		Courses:     newCollection(log, "courses", svc.Courses, notify),
		Instructors: newCollection(log, "instructors", svc.Instructors, notify),
		Techniques:  newCollection[models.DrawingTechnique, models.DrawingTechniquePatch](log, "techniques", svc.Techniques, notify),
	}
}

// Health godoc
// @Summary Проверка состояния сервиса
// @Tags health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.ErrorResponse
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	if r.svc.Health != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := r.svc.Health.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, response.ErrorResponseWithDetails("unavailable", err.Error()))
		}
	}

	return c.JSON(http.StatusOK, response.MessageResponse("ok"))
}

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// errorStatus maps service errors onto HTTP statuses.
func errorStatus(err error) (int, response.ErrorResponse) {
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest, response.ErrorResponseWithDetails(response.CodeValidationFailed, verrs.Error())
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, response.ErrNotFound
	case errors.Is(err, storage.ErrBadField), errors.Is(err, storage.ErrBadPayload):
		return http.StatusBadRequest, response.ErrorResponseWithDetails(response.CodeInvalidRequest, err.Error())
	case errors.Is(err, storage.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, response.ErrorResponseWithDetails(response.CodeFileTooLarge, "Image exceeds the size limit")
	case errors.Is(err, storage.ErrInvalidFileType):
		return http.StatusUnsupportedMediaType, response.ErrorResponseWithDetails(response.CodeUnsupportedMediaType, "Only images are accepted")
	default:
		return http.StatusInternalServerError, response.ErrInternal
	}
}
