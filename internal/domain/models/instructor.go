package models

import "time"

// Instructor has no featured flag; visible instructors are listed newest first.
type Instructor struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name" validate:"required"`
	NameEn        *string   `db:"name_en" json:"name_en,omitempty"`
	Title         string    `db:"title" json:"title" validate:"required"`
	TitleEn       *string   `db:"title_en" json:"title_en,omitempty"`
	ImageURL      *string   `db:"image_url" json:"image_url,omitempty"`
	ProfileURL    *string   `db:"profile_url" json:"profile_url,omitempty" validate:"omitempty,url"`
	Experience    *string   `db:"experience" json:"experience,omitempty"`
	ExperienceEn  *string   `db:"experience_en" json:"experience_en,omitempty"`
	Specialties   []string  `db:"specialties" json:"specialties,omitempty"`
	SpecialtiesEn []string  `db:"specialties_en" json:"specialties_en,omitempty"`
	Rating        *float64  `db:"rating" json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	StudentsCount *int      `db:"students_count" json:"students_count,omitempty" validate:"omitempty,gte=0"`
	Description   *string   `db:"description" json:"description,omitempty"`
	DescriptionEn *string   `db:"description_en" json:"description_en,omitempty"`
	Visible       bool      `db:"visible" json:"visible"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type InstructorPatch struct {
	Name          *string  `db:"name" json:"name,omitempty"`
	NameEn        *string  `db:"name_en" json:"name_en,omitempty"`
	Title         *string  `db:"title" json:"title,omitempty"`
	TitleEn       *string  `db:"title_en" json:"title_en,omitempty"`
	ImageURL      *string  `db:"image_url" json:"image_url,omitempty"`
	ProfileURL    *string  `db:"profile_url" json:"profile_url,omitempty" validate:"omitempty,url"`
	Experience    *string  `db:"experience" json:"experience,omitempty"`
	ExperienceEn  *string  `db:"experience_en" json:"experience_en,omitempty"`
	Specialties   []string `db:"specialties" json:"specialties,omitempty"`
	SpecialtiesEn []string `db:"specialties_en" json:"specialties_en,omitempty"`
	Rating        *float64 `db:"rating" json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	StudentsCount *int     `db:"students_count" json:"students_count,omitempty" validate:"omitempty,gte=0"`
	Description   *string  `db:"description" json:"description,omitempty"`
	DescriptionEn *string  `db:"description_en" json:"description_en,omitempty"`
	Visible       *bool    `db:"visible" json:"visible,omitempty"`
}
