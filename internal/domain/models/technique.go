package models

import "time"

type DrawingTechnique struct {
	ID                int64      `db:"id" json:"id"`
	Title             string     `db:"title" json:"title" validate:"required"`
	TitleEn           *string    `db:"title_en" json:"title_en,omitempty"`
	Description       *string    `db:"description" json:"description,omitempty"`
	DescriptionEn     *string    `db:"description_en" json:"description_en,omitempty"`
	Content           string     `db:"content" json:"content" validate:"required"`
	ContentEn         *string    `db:"content_en" json:"content_en,omitempty"`
	DifficultyLevel   SkillLevel `db:"difficulty_level" json:"difficulty_level" validate:"required,skill_level"`
	DifficultyLevelEn *string    `db:"difficulty_level_en" json:"difficulty_level_en,omitempty"`
	Category          string     `db:"category" json:"category" validate:"required"`
	CategoryEn        *string    `db:"category_en" json:"category_en,omitempty"`
	ToolsNeeded       []string   `db:"tools_needed" json:"tools_needed,omitempty"`
	ToolsNeededEn     []string   `db:"tools_needed_en" json:"tools_needed_en,omitempty"`
	Steps             []string   `db:"steps" json:"steps,omitempty"`
	StepsEn           []string   `db:"steps_en" json:"steps_en,omitempty"`
	Tips              []string   `db:"tips" json:"tips,omitempty"`
	TipsEn            []string   `db:"tips_en" json:"tips_en,omitempty"`
	ImageURL          *string    `db:"image_url" json:"image_url,omitempty"`
	VideoURL          *string    `db:"video_url" json:"video_url,omitempty" validate:"omitempty,url"`
	EstimatedTime     *string    `db:"estimated_time" json:"estimated_time,omitempty"`
	EstimatedTimeEn   *string    `db:"estimated_time_en" json:"estimated_time_en,omitempty"`
	Prerequisites     []string   `db:"prerequisites" json:"prerequisites,omitempty"`
	PrerequisitesEn   []string   `db:"prerequisites_en" json:"prerequisites_en,omitempty"`
	RelatedTechniques []int64    `db:"related_techniques" json:"related_techniques,omitempty"`
	Featured          bool       `db:"featured" json:"featured"`
	Visible           bool       `db:"visible" json:"visible"`
	ViewCount         int        `db:"view_count" json:"view_count"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// DrawingTechniquePatch has no view_count: the counter only moves through the
// atomic increment.
type DrawingTechniquePatch struct {
	Title             *string     `db:"title" json:"title,omitempty"`
	TitleEn           *string     `db:"title_en" json:"title_en,omitempty"`
	Description       *string     `db:"description" json:"description,omitempty"`
	DescriptionEn     *string     `db:"description_en" json:"description_en,omitempty"`
	Content           *string     `db:"content" json:"content,omitempty"`
	ContentEn         *string     `db:"content_en" json:"content_en,omitempty"`
	DifficultyLevel   *SkillLevel `db:"difficulty_level" json:"difficulty_level,omitempty" validate:"omitempty,skill_level"`
	DifficultyLevelEn *string     `db:"difficulty_level_en" json:"difficulty_level_en,omitempty"`
	Category          *string     `db:"category" json:"category,omitempty"`
	CategoryEn        *string     `db:"category_en" json:"category_en,omitempty"`
	ToolsNeeded       []string    `db:"tools_needed" json:"tools_needed,omitempty"`
	ToolsNeededEn     []string    `db:"tools_needed_en" json:"tools_needed_en,omitempty"`
	Steps             []string    `db:"steps" json:"steps,omitempty"`
	StepsEn           []string    `db:"steps_en" json:"steps_en,omitempty"`
	Tips              []string    `db:"tips" json:"tips,omitempty"`
	TipsEn            []string    `db:"tips_en" json:"tips_en,omitempty"`
	ImageURL          *string     `db:"image_url" json:"image_url,omitempty"`
	VideoURL          *string     `db:"video_url" json:"video_url,omitempty" validate:"omitempty,url"`
	EstimatedTime     *string     `db:"estimated_time" json:"estimated_time,omitempty"`
	EstimatedTimeEn   *string     `db:"estimated_time_en" json:"estimated_time_en,omitempty"`
	Prerequisites     []string    `db:"prerequisites" json:"prerequisites,omitempty"`
	PrerequisitesEn   []string    `db:"prerequisites_en" json:"prerequisites_en,omitempty"`
	RelatedTechniques []int64     `db:"related_techniques" json:"related_techniques,omitempty"`
	Featured          *bool       `db:"featured" json:"featured,omitempty"`
	Visible           *bool       `db:"visible" json:"visible,omitempty"`
}
