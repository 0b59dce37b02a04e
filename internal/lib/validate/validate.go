// Package validate builds the validator shared by the HTTP layer and the services.
package validate

import (
	"github.com/go-playground/validator/v10"

	"art_academy/internal/domain/models"
)

func New() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("skill_level", func(fl validator.FieldLevel) bool {
		return models.SkillLevel(fl.Field().String()).Valid()
	})

	_ = v.RegisterValidation("upload_kind", func(fl validator.FieldLevel) bool {
		return models.UploadKind(fl.Field().String()).Valid()
	})

	return v
}
