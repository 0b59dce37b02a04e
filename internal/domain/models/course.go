package models

import "time"

type Course struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title" validate:"required"`
	TitleEn       *string   `db:"title_en" json:"title_en,omitempty"`
	Description   *string   `db:"description" json:"description,omitempty"`
	DescriptionEn *string   `db:"description_en" json:"description_en,omitempty"`
	Duration      string    `db:"duration" json:"duration"`
	DurationEn    *string   `db:"duration_en" json:"duration_en,omitempty"`
	LevelName     string    `db:"level_name" json:"level_name"`
	LevelNameEn   *string   `db:"level_name_en" json:"level_name_en,omitempty"`
	Price         *float64  `db:"price" json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency      string    `db:"currency" json:"currency"`
	ShowPrice     *bool     `db:"show_price" json:"show_price,omitempty"`
	HidePrice     *bool     `db:"hide_price" json:"hide_price,omitempty"` // legacy inverted flag, wins over ShowPrice
	ImageURL      *string   `db:"image_url" json:"image_url,omitempty"`
	Features      []string  `db:"features" json:"features,omitempty"`
	FeaturesEn    []string  `db:"features_en" json:"features_en,omitempty"`
	Instructor    string    `db:"instructor" json:"instructor"`
	InstructorEn  *string   `db:"instructor_en" json:"instructor_en,omitempty"`
	Category      string    `db:"category" json:"category"`
	CategoryEn    *string   `db:"category_en" json:"category_en,omitempty"`
	EnrollmentURL *string   `db:"enrollment_url" json:"enrollment_url,omitempty"`
	Visible       bool      `db:"visible" json:"visible"`
	Featured      bool      `db:"featured" json:"featured"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type CoursePatch struct {
	Title         *string  `db:"title" json:"title,omitempty"`
	TitleEn       *string  `db:"title_en" json:"title_en,omitempty"`
	Description   *string  `db:"description" json:"description,omitempty"`
	DescriptionEn *string  `db:"description_en" json:"description_en,omitempty"`
	Duration      *string  `db:"duration" json:"duration,omitempty"`
	DurationEn    *string  `db:"duration_en" json:"duration_en,omitempty"`
	LevelName     *string  `db:"level_name" json:"level_name,omitempty"`
	LevelNameEn   *string  `db:"level_name_en" json:"level_name_en,omitempty"`
	Price         *float64 `db:"price" json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency      *string  `db:"currency" json:"currency,omitempty"`
	ShowPrice     *bool    `db:"show_price" json:"show_price,omitempty"`
	HidePrice     *bool    `db:"hide_price" json:"hide_price,omitempty"`
	ImageURL      *string  `db:"image_url" json:"image_url,omitempty"`
	Features      []string `db:"features" json:"features,omitempty"`
	FeaturesEn    []string `db:"features_en" json:"features_en,omitempty"`
	Instructor    *string  `db:"instructor" json:"instructor,omitempty"`
	InstructorEn  *string  `db:"instructor_en" json:"instructor_en,omitempty"`
	Category      *string  `db:"category" json:"category,omitempty"`
	CategoryEn    *string  `db:"category_en" json:"category_en,omitempty"`
	EnrollmentURL *string  `db:"enrollment_url" json:"enrollment_url,omitempty"`
	Visible       *bool    `db:"visible" json:"visible,omitempty"`
	Featured      *bool    `db:"featured" json:"featured,omitempty"`
}
