package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"art_academy/internal/domain/models"
)

func TestNew_SkillLevel(t *testing.T) {
	v := New()

	ok := models.GalleryItem{
		Title:       "t",
		ImageURL:    "https://x/y.jpg",
		Category:    "c",
		StudentName: "s",
		SkillLevel:  models.SkillLevelBeginner,
	}
	assert.NoError(t, v.Struct(ok))

	bad := ok
	bad.SkillLevel = "expert"
	assert.Error(t, v.Struct(bad))

	badDate := ok
	badDate.CompletionDate = "15/12/2024"
	assert.Error(t, v.Struct(badDate))
}

func TestNew_UploadKind(t *testing.T) {
	v := New()

	type req struct {
		Kind string `validate:"required,upload_kind"`
	}

	assert.NoError(t, v.Struct(req{Kind: "gallery"}))
	assert.Error(t, v.Struct(req{Kind: "avatar"}))
}

func TestNew_Patches(t *testing.T) {
	v := New()

	expert := models.SkillLevel("expert")
	advanced := models.SkillLevelAdvanced
	negative := -1.0
	tooHigh := 5.5
	zero := 0
	minusOne := -1
	badURL := "not a url"

	tests := []struct {
		name    string
		patch   any
		wantErr bool
	}{
		{name: "empty gallery patch", patch: &models.GalleryItemPatch{}},
		{name: "valid skill level", patch: &models.GalleryItemPatch{SkillLevel: &advanced}},
		{name: "unknown skill level", patch: &models.GalleryItemPatch{SkillLevel: &expert}, wantErr: true},
		{name: "negative price", patch: &models.CoursePatch{Price: &negative}, wantErr: true},
		{name: "rating above five", patch: &models.InstructorPatch{Rating: &tooHigh}, wantErr: true},
		{name: "negative students count", patch: &models.InstructorPatch{StudentsCount: &minusOne}, wantErr: true},
		{name: "zero students count", patch: &models.InstructorPatch{StudentsCount: &zero}},
		{name: "bad profile url", patch: &models.InstructorPatch{ProfileURL: &badURL}, wantErr: true},
		{name: "unknown difficulty", patch: &models.DrawingTechniquePatch{DifficultyLevel: &expert}, wantErr: true},
		{name: "bad video url", patch: &models.DrawingTechniquePatch{VideoURL: &badURL}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.patch)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
