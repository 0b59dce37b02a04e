package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchFields(t *testing.T) {
	title := "new"
	visible := false
	level := SkillLevelAdvanced

	fields := PatchFields(&GalleryItemPatch{
		Title:      &title,
		Visible:    &visible,
		SkillLevel: &level,
	})

	assert.Equal(t, map[string]interface{}{
		"title":       "new",
		"visible":     false,
		"skill_level": SkillLevelAdvanced,
	}, fields)
}

func TestPatchFields_SlicesAndNil(t *testing.T) {
	fields := PatchFields(CoursePatch{Features: []string{}})
	require.Contains(t, fields, "features")
	assert.Len(t, fields, 1)

	assert.Empty(t, PatchFields((*CoursePatch)(nil)))
	assert.Empty(t, PatchFields(InstructorPatch{}))
}

func TestSkillLevel(t *testing.T) {
	assert.True(t, SkillLevelBeginner.Valid())
	assert.False(t, SkillLevel("expert").Valid())
	assert.Equal(t, "Intermediate", SkillLevelIntermediate.English())

	var l SkillLevel
	require.NoError(t, l.Scan([]byte("متقدم")))
	assert.Equal(t, SkillLevelAdvanced, l)
	assert.Error(t, l.Scan(42))
}

func TestSiteConfigurationClone(t *testing.T) {
	orig := SiteConfiguration{
		Sections:    []LinkEntry{{ID: "courses"}},
		Courses:     []CourseView{{ID: 1, Features: []string{"a"}}},
		Instructors: []InstructorView{{ID: 1, Specialties: []string{"x"}}},
	}

	cp := orig.Clone()
	cp.Sections[0].ID = "changed"
	cp.Courses[0].Features[0] = "b"
	cp.Instructors[0].Specialties[0] = "y"

	assert.Equal(t, "courses", orig.Sections[0].ID)
	assert.Equal(t, "a", orig.Courses[0].Features[0])
	assert.Equal(t, "x", orig.Instructors[0].Specialties[0])
	assert.NotNil(t, cp.Gallery)
}
