package viewmodel

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"art_academy/internal/domain/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNormalizers_Idempotent(t *testing.T) {
	faker := gofakeit.New(42)

	for i := 0; i < 50; i++ {
		var g models.GalleryItem
		var c models.Course
		var in models.Instructor
		var d models.DrawingTechnique
		require.NoError(t, faker.Struct(&g))
		require.NoError(t, faker.Struct(&c))
		require.NoError(t, faker.Struct(&in))
		require.NoError(t, faker.Struct(&d))

		assert.Equal(t, Gallery(g), Gallery(g))
		assert.Equal(t, Course(c), Course(c))
		assert.Equal(t, Instructor(in), Instructor(in))
		assert.Equal(t, Technique(d), Technique(d))
	}
}

func TestNormalizers_DoNotAliasInput(t *testing.T) {
	c := models.Course{Features: []string{"a"}}
	v := Course(c)
	v.Features[0] = "changed"

	assert.Equal(t, "a", c.Features[0])
}

func TestGallery_BilingualFallback(t *testing.T) {
	g := models.GalleryItem{
		ID:             1,
		Title:          "بورتريه",
		TitleEn:        strPtr(""),
		Description:    strPtr("وصف"),
		ImageURL:       "https://cdn/x.jpg",
		Category:       "رسم",
		StudentName:    "سارة",
		StudentNameEn:  strPtr("Sarah"),
		Instructor:     "أحمد",
		CompletionDate: "2024-12-15",
		SkillLevel:     models.SkillLevelAdvanced,
		Visible:        true,
	}

	v := Gallery(g)

	assert.Equal(t, "بورتريه", v.TitleEn, "empty secondary falls back")
	assert.Equal(t, "وصف", v.DescriptionEn)
	assert.Equal(t, "رسم", v.CategoryEn)
	assert.Equal(t, "Sarah", v.StudentNameEn)
	assert.Equal(t, "أحمد", v.InstructorEn)
	assert.Equal(t, "متقدم", v.LevelEn)
	assert.Equal(t, "2024-12-15", v.Date)
	assert.Equal(t, "https://cdn/x.jpg", v.Image)
}

func TestCourse(t *testing.T) {
	t.Run("absent optionals", func(t *testing.T) {
		v := Course(models.Course{Title: "أساسيات", Duration: "4 أسابيع"})

		assert.NotNil(t, v.Features)
		assert.NotNil(t, v.FeaturesEn)
		assert.Empty(t, v.Features)
		assert.Equal(t, float64(0), v.Price)
		assert.True(t, v.ShowPrice)
		assert.True(t, v.EnrollViaChat)
		assert.Equal(t, "أساسيات", v.TitleEn)
		assert.Equal(t, "4 أسابيع", v.DurationEn)
		assert.Equal(t, "", v.DescriptionEn)
	})

	t.Run("features fall back to primary list", func(t *testing.T) {
		v := Course(models.Course{Features: []string{"خطوط", "ظلال"}})
		assert.Equal(t, []string{"خطوط", "ظلال"}, v.FeaturesEn)
	})

	t.Run("external enrollment", func(t *testing.T) {
		v := Course(models.Course{EnrollmentURL: strPtr("https://academy.example/enroll")})
		assert.False(t, v.EnrollViaChat)
	})

	tests := []struct {
		name string
		hide *bool
		show *bool
		want bool
	}{
		{name: "default", want: true},
		{name: "show false", show: boolPtr(false), want: false},
		{name: "hide true", hide: boolPtr(true), want: false},
		{name: "hide false wins over show false", hide: boolPtr(false), show: boolPtr(false), want: true},
		{name: "hide true wins over show true", hide: boolPtr(true), show: boolPtr(true), want: false},
	}

	for _, tt := range tests {
		t.Run("price flag "+tt.name, func(t *testing.T) {
			v := Course(models.Course{HidePrice: tt.hide, ShowPrice: tt.show})
			assert.Equal(t, tt.want, v.ShowPrice)
		})
	}
}

func TestWithEnrollLink(t *testing.T) {
	chat := WithEnrollLink(Course(models.Course{Title: "Portrait", EnrollmentURL: strPtr("#enroll-portrait")}), "0501234567")
	assert.True(t, chat.EnrollViaChat)
	assert.Contains(t, chat.EnrollLink, "https://wa.me/966501234567?text=")

	ext := WithEnrollLink(Course(models.Course{EnrollmentURL: strPtr("https://x.example/e")}), "0501234567")
	assert.Equal(t, "https://x.example/e", ext.EnrollLink)
}

func TestInstructor_Defaults(t *testing.T) {
	v := Instructor(models.Instructor{Name: "أحمد", Title: "مدرب"})

	assert.Equal(t, float64(0), v.Rating)
	assert.Equal(t, 0, v.StudentsCount)
	assert.NotNil(t, v.Specialties)
	assert.NotNil(t, v.SpecialtiesEn)
	assert.Equal(t, "أحمد", v.NameEn)
	assert.Equal(t, "مدرب", v.TitleEn)

	rating := 4.9
	students := 150
	v = Instructor(models.Instructor{Rating: &rating, StudentsCount: &students, Specialties: []string{"بورتريه"}})
	assert.Equal(t, 4.9, v.Rating)
	assert.Equal(t, 150, v.StudentsCount)
	assert.Equal(t, []string{"بورتريه"}, v.SpecialtiesEn)
}

func TestTechnique_ListDefaults(t *testing.T) {
	v := Technique(models.DrawingTechnique{
		Title:           "التظليل",
		Content:         "نص",
		DifficultyLevel: models.SkillLevelBeginner,
		Steps:           []string{"1"},
		ViewCount:       3,
	})

	for name, l := range map[string][]string{
		"tools":         v.ToolsNeeded,
		"toolsEn":       v.ToolsNeededEn,
		"tips":          v.Tips,
		"tipsEn":        v.TipsEn,
		"prerequisites": v.Prerequisites,
	} {
		assert.NotNil(t, l, name)
		assert.Empty(t, l, name)
	}

	assert.Equal(t, []string{"1"}, v.StepsEn)
	assert.NotNil(t, v.RelatedTechniques)
	assert.Equal(t, "نص", v.ContentEn)
	assert.Equal(t, "مبتدئ", v.DifficultyLevelEn)
	assert.Equal(t, 3, v.ViewCount)
}

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		name string
		want Icon
	}{
		{"BookOpen", IconBookOpen},
		{"book-open", IconBookOpen},
		{"YouTube", IconYouTube},
		{"Youtube", IconYouTube},
		{"TwitterX", IconTwitterX},
		{"WhatsApp", IconWhatsApp},
		{"Video", IconVideo},
		{"", FallbackIcon},
		{"Unicorn", FallbackIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, ResolveIcon(tt.name))
			})
		})
	}
}

func TestResolveTarget(t *testing.T) {
	assert.Equal(t, Target{Kind: TargetView, Name: "gallery"}, ResolveTarget("#gallery"))
	assert.Equal(t, Target{Kind: TargetAnchor, Name: "schedule"}, ResolveTarget("#schedule"))
	assert.Equal(t, Target{Kind: TargetExternal, URL: "https://instagram.com/x"}, ResolveTarget(" https://instagram.com/x "))
	assert.Equal(t, Target{Kind: TargetNone}, ResolveTarget(""))
	assert.Equal(t, Target{Kind: TargetNone}, ResolveTarget("#"))
}
