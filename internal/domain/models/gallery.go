package models

import (
	"time"
)

// GalleryItem is a student artwork row of the gallery collection.
type GalleryItem struct {
	ID             int64      `db:"id" json:"id"`
	Title          string     `db:"title" json:"title" validate:"required"`
	TitleEn        *string    `db:"title_en" json:"title_en,omitempty"`
	Description    *string    `db:"description" json:"description,omitempty"`
	DescriptionEn  *string    `db:"description_en" json:"description_en,omitempty"`
	ImageURL       string     `db:"image_url" json:"image_url" validate:"required"`
	Category       string     `db:"category" json:"category" validate:"required"`
	CategoryEn     *string    `db:"category_en" json:"category_en,omitempty"`
	StudentName    string     `db:"student_name" json:"student_name" validate:"required"`
	StudentNameEn  *string    `db:"student_name_en" json:"student_name_en,omitempty"`
	Instructor     string     `db:"instructor" json:"instructor"`
	InstructorEn   *string    `db:"instructor_en" json:"instructor_en,omitempty"`
	CompletionDate string     `db:"completion_date" json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
	Featured       bool       `db:"featured" json:"featured"`
	Visible        bool       `db:"visible" json:"visible"`
	SkillLevel     SkillLevel `db:"skill_level" json:"skill_level" validate:"required,skill_level"`
	SkillLevelEn   *string    `db:"skill_level_en" json:"skill_level_en,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// GalleryItemPatch carries the fields of a partial gallery update; nil fields are left untouched.
type GalleryItemPatch struct {
	Title          *string     `db:"title" json:"title,omitempty"`
	TitleEn        *string     `db:"title_en" json:"title_en,omitempty"`
	Description    *string     `db:"description" json:"description,omitempty"`
	DescriptionEn  *string     `db:"description_en" json:"description_en,omitempty"`
	ImageURL       *string     `db:"image_url" json:"image_url,omitempty"`
	Category       *string     `db:"category" json:"category,omitempty"`
	CategoryEn     *string     `db:"category_en" json:"category_en,omitempty"`
	StudentName    *string     `db:"student_name" json:"student_name,omitempty"`
	StudentNameEn  *string     `db:"student_name_en" json:"student_name_en,omitempty"`
	Instructor     *string     `db:"instructor" json:"instructor,omitempty"`
	InstructorEn   *string     `db:"instructor_en" json:"instructor_en,omitempty"`
	CompletionDate *string     `db:"completion_date" json:"completion_date,omitempty"`
	Featured       *bool       `db:"featured" json:"featured,omitempty"`
	Visible        *bool       `db:"visible" json:"visible,omitempty"`
	SkillLevel     *SkillLevel `db:"skill_level" json:"skill_level,omitempty" validate:"omitempty,skill_level"`
	SkillLevelEn   *string     `db:"skill_level_en" json:"skill_level_en,omitempty"`
}
