// Package viewmodel maps stored rows into the shapes served to the site.
//
// Every function is pure: the input is never modified, output slices are
// fresh copies, and calling twice on the same row yields deep-equal results.
package viewmodel

import (
	"art_academy/internal/domain/models"
	"art_academy/internal/lib/phone"
)

func Gallery(g models.GalleryItem) models.GalleryView {
	description := deref(g.Description)
	level := string(g.SkillLevel)

	return models.GalleryView{
		ID:            g.ID,
		Title:         g.Title,
		TitleEn:       orFallback(g.TitleEn, g.Title),
		Description:   description,
		DescriptionEn: orFallback(g.DescriptionEn, description),
		Image:         g.ImageURL,
		Category:      g.Category,
		CategoryEn:    orFallback(g.CategoryEn, g.Category),
		StudentName:   g.StudentName,
		StudentNameEn: orFallback(g.StudentNameEn, g.StudentName),
		Instructor:    g.Instructor,
		InstructorEn:  orFallback(g.InstructorEn, g.Instructor),
		Date:          g.CompletionDate,
		Featured:      g.Featured,
		Visible:       g.Visible,
		Level:         level,
		LevelEn:       orFallback(g.SkillLevelEn, level),
	}
}

func Course(c models.Course) models.CourseView {
	description := deref(c.Description)
	enrollmentURL := deref(c.EnrollmentURL)
	features := list(c.Features)

	var price float64
	if c.Price != nil {
		price = *c.Price
	}

	return models.CourseView{
		ID:            c.ID,
		Title:         c.Title,
		TitleEn:       orFallback(c.TitleEn, c.Title),
		Description:   description,
		DescriptionEn: orFallback(c.DescriptionEn, description),
		Duration:      c.Duration,
		DurationEn:    orFallback(c.DurationEn, c.Duration),
		Level:         c.LevelName,
		LevelEn:       orFallback(c.LevelNameEn, c.LevelName),
		Price:         price,
		Currency:      c.Currency,
		ShowPrice:     showPrice(c.HidePrice, c.ShowPrice),
		Image:         deref(c.ImageURL),
		Features:      features,
		FeaturesEn:    listOr(c.FeaturesEn, features),
		Instructor:    c.Instructor,
		InstructorEn:  orFallback(c.InstructorEn, c.Instructor),
		Category:      c.Category,
		CategoryEn:    orFallback(c.CategoryEn, c.Category),
		EnrollmentURL: enrollmentURL,
		EnrollViaChat: phone.IsChatEnrollment(enrollmentURL),
		Visible:       c.Visible,
		Featured:      c.Featured,
	}
}

// WithEnrollLink resolves where the enroll button of a course points, using
// the academy phone number for chat enrollment.
func WithEnrollLink(c models.CourseView, phoneNumber string) models.CourseView {
	c.EnrollLink = phone.EnrollmentTarget(phoneNumber, c.EnrollmentURL, c.Title)
	c.EnrollViaChat = phone.IsChatEnrollment(c.EnrollmentURL)
	return c
}

func Instructor(i models.Instructor) models.InstructorView {
	experience := deref(i.Experience)
	description := deref(i.Description)
	specialties := list(i.Specialties)

	var rating float64
	if i.Rating != nil {
		rating = *i.Rating
	}

	var students int
	if i.StudentsCount != nil {
		students = *i.StudentsCount
	}

	return models.InstructorView{
		ID:            i.ID,
		Name:          i.Name,
		NameEn:        orFallback(i.NameEn, i.Name),
		Title:         i.Title,
		TitleEn:       orFallback(i.TitleEn, i.Title),
		Image:         deref(i.ImageURL),
		ProfileURL:    deref(i.ProfileURL),
		Experience:    experience,
		ExperienceEn:  orFallback(i.ExperienceEn, experience),
		Specialties:   specialties,
		SpecialtiesEn: listOr(i.SpecialtiesEn, specialties),
		Rating:        rating,
		StudentsCount: students,
		Description:   description,
		DescriptionEn: orFallback(i.DescriptionEn, description),
		Visible:       i.Visible,
	}
}

func Technique(d models.DrawingTechnique) models.TechniqueView {
	description := deref(d.Description)
	difficulty := string(d.DifficultyLevel)
	estimated := deref(d.EstimatedTime)

	tools := list(d.ToolsNeeded)
	steps := list(d.Steps)
	tips := list(d.Tips)
	prerequisites := list(d.Prerequisites)

	related := make([]int64, len(d.RelatedTechniques))
	copy(related, d.RelatedTechniques)

	return models.TechniqueView{
		ID:                d.ID,
		Title:             d.Title,
		TitleEn:           orFallback(d.TitleEn, d.Title),
		Description:       description,
		DescriptionEn:     orFallback(d.DescriptionEn, description),
		Content:           d.Content,
		ContentEn:         orFallback(d.ContentEn, d.Content),
		DifficultyLevel:   difficulty,
		DifficultyLevelEn: orFallback(d.DifficultyLevelEn, difficulty),
		Category:          d.Category,
		CategoryEn:        orFallback(d.CategoryEn, d.Category),
		ToolsNeeded:       tools,
		ToolsNeededEn:     listOr(d.ToolsNeededEn, tools),
		Steps:             steps,
		StepsEn:           listOr(d.StepsEn, steps),
		Tips:              tips,
		TipsEn:            listOr(d.TipsEn, tips),
		Image:             deref(d.ImageURL),
		VideoURL:          deref(d.VideoURL),
		EstimatedTime:     estimated,
		EstimatedTimeEn:   orFallback(d.EstimatedTimeEn, estimated),
		Prerequisites:     prerequisites,
		PrerequisitesEn:   listOr(d.PrerequisitesEn, prerequisites),
		RelatedTechniques: related,
		Featured:          d.Featured,
		Visible:           d.Visible,
		ViewCount:         d.ViewCount,
	}
}

// showPrice: the legacy hide_price flag wins when set, then show_price, default true.
func showPrice(hide, show *bool) bool {
	if hide != nil {
		return !*hide
	}
	if show != nil {
		return *show
	}
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orFallback(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func list(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// listOr copies in, or fallback when in is absent or empty.
func listOr(in, fallback []string) []string {
	if len(in) == 0 {
		return list(fallback)
	}
	return list(in)
}
