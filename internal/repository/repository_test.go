package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"art_academy/internal/domain/models"
	"art_academy/internal/repository"
	"art_academy/internal/storage"
	"art_academy/internal/storage/postgresql"
)

var (
	testCtx = context.Background()
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	st, err := postgresql.New(ctx, dsn)
	require.NoError(t, err)

	// Применяем миграции
	require.NoError(t, st.Migrate(ctx))
	// повторный прогон схемы не должен падать
	require.NoError(t, st.Migrate(ctx))

	t.Cleanup(func() {
		st.Stop()
		_ = pgContainer.Terminate(ctx)
	})

	return st.Pool()
}

func strPtr(s string) *string { return &s }

func fakeGalleryItem(featured, visible bool, date string) models.GalleryItem {
	return models.GalleryItem{
		Title:          gofakeit.Sentence(3),
		ImageURL:       gofakeit.URL(),
		Category:       "بورتريه",
		StudentName:    gofakeit.Name(),
		Instructor:     "أحمد صادق",
		CompletionDate: date,
		Featured:       featured,
		Visible:        visible,
		SkillLevel:     models.SkillLevelIntermediate,
	}
}

func TestGalleryRepo_ListVisibleOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewGalleryRepo(db)

	first, err := repo.Create(testCtx, fakeGalleryItem(true, true, "2024-12-01"))
	require.NoError(t, err)
	second, err := repo.Create(testCtx, fakeGalleryItem(false, true, "2024-12-15"))
	require.NoError(t, err)
	_, err = repo.Create(testCtx, fakeGalleryItem(true, false, "2024-12-20"))
	require.NoError(t, err)

	t.Run("visible only, featured first", func(t *testing.T) {
		items, err := repo.List(testCtx, repository.ListFilter{VisibleOnly: true})
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, first.ID, items[0].ID)
		assert.Equal(t, second.ID, items[1].ID)
		for _, it := range items {
			assert.True(t, it.Visible)
		}
	})

	t.Run("list all includes hidden", func(t *testing.T) {
		items, err := repo.List(testCtx, repository.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})
}

func TestGalleryRepo_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewGalleryRepo(db)

	created, err := repo.Create(testCtx, fakeGalleryItem(false, true, "2024-11-28"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Nil(t, created.TitleEn)

	t.Run("partial update stamps updated_at", func(t *testing.T) {
		updated, err := repo.Update(testCtx, created.ID, map[string]interface{}{
			"title":    "new",
			"title_en": "New",
		})
		require.NoError(t, err)

		assert.Equal(t, "new", updated.Title)
		require.NotNil(t, updated.TitleEn)
		assert.Equal(t, "New", *updated.TitleEn)
		assert.Equal(t, created.StudentName, updated.StudentName)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("empty update touches the row", func(t *testing.T) {
		before, err := repo.GetByID(testCtx, created.ID)
		require.NoError(t, err)

		touched, err := repo.Update(testCtx, created.ID, map[string]interface{}{})
		require.NoError(t, err)

		assert.Equal(t, before.Title, touched.Title)
		assert.True(t, touched.UpdatedAt.After(before.UpdatedAt))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.Update(testCtx, 999999, map[string]interface{}{"title": "new"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("field outside whitelist", func(t *testing.T) {
		_, err := repo.Update(testCtx, created.ID, map[string]interface{}{"id": 7})
		assert.ErrorIs(t, err, storage.ErrBadField)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(testCtx, created.ID))
		assert.ErrorIs(t, repo.Delete(testCtx, created.ID), storage.ErrNotFound)

		_, err := repo.GetByID(testCtx, created.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestCourseAndInstructorRepo_NullableColumns(t *testing.T) {
	db := setupTestDB(t)
	courses := repository.NewCourseRepo(db)
	instructors := repository.NewInstructorRepo(db)

	hide := true
	course, err := courses.Create(testCtx, models.Course{
		Title:      "فن البورتريه",
		Currency:   "ريال",
		HidePrice:  &hide,
		Features:   []string{"تشريح الوجه ونسبه"},
		Instructor: "أحمد صادق",
		Visible:    true,
	})
	require.NoError(t, err)
	assert.Nil(t, course.Price)
	assert.Nil(t, course.FeaturesEn)
	assert.Equal(t, []string{"تشريح الوجه ونسبه"}, course.Features)
	require.NotNil(t, course.HidePrice)
	assert.True(t, *course.HidePrice)

	inst, err := instructors.Create(testCtx, models.Instructor{
		Name:    "أحمد صادق",
		Title:   "مدرب",
		NameEn:  strPtr("Ahmed Sadek"),
		Visible: true,
	})
	require.NoError(t, err)
	assert.Nil(t, inst.Rating)
	assert.Nil(t, inst.StudentsCount)
	assert.Nil(t, inst.Specialties)
}

func TestTechniqueRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewTechniqueRepo(db)

	base, err := repo.Create(testCtx, models.DrawingTechnique{
		Title:           "التظليل",
		Description:     strPtr("shading basics"),
		Content:         "content about hatching",
		DifficultyLevel: models.SkillLevelBeginner,
		Category:        "رسم تقليدي",
		Steps:           []string{"one", "two"},
		Visible:         true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, base.ViewCount)

	related, err := repo.Create(testCtx, models.DrawingTechnique{
		Title:             "الفحم",
		Content:           "charcoal 100% pure",
		DifficultyLevel:   models.SkillLevelAdvanced,
		Category:          "رسم تقليدي",
		RelatedTechniques: []int64{base.ID},
		Featured:          true,
		Visible:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{base.ID}, related.RelatedTechniques)

	t.Run("atomic view counter", func(t *testing.T) {
		const n = 20
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			go func() {
				_, err := repo.IncrementViewCount(testCtx, base.ID)
				errs <- err
			}()
		}
		for i := 0; i < n; i++ {
			require.NoError(t, <-errs)
		}

		got, err := repo.GetByID(testCtx, base.ID)
		require.NoError(t, err)
		assert.Equal(t, n, got.ViewCount)
	})

	t.Run("increment unknown id", func(t *testing.T) {
		_, err := repo.IncrementViewCount(testCtx, 424242)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("filters", func(t *testing.T) {
		byDifficulty, err := repo.List(testCtx, repository.ListFilter{VisibleOnly: true, Difficulty: string(models.SkillLevelAdvanced)})
		require.NoError(t, err)
		require.Len(t, byDifficulty, 1)
		assert.Equal(t, related.ID, byDifficulty[0].ID)

		byCategory, err := repo.List(testCtx, repository.ListFilter{VisibleOnly: true, Category: "رسم تقليدي"})
		require.NoError(t, err)
		require.Len(t, byCategory, 2)
		assert.Equal(t, related.ID, byCategory[0].ID, "featured first")

		search, err := repo.List(testCtx, repository.ListFilter{VisibleOnly: true, Search: "HATCH"})
		require.NoError(t, err)
		require.Len(t, search, 1)
		assert.Equal(t, base.ID, search[0].ID)

		// wildcard characters in the query are matched literally
		pct, err := repo.List(testCtx, repository.ListFilter{VisibleOnly: true, Search: "100%"})
		require.NoError(t, err)
		assert.Len(t, pct, 1)

		byIDs, err := repo.List(testCtx, repository.ListFilter{VisibleOnly: true, IDs: []int64{base.ID}})
		require.NoError(t, err)
		require.Len(t, byIDs, 1)
		assert.Equal(t, []string{"one", "two"}, byIDs[0].Steps)
	})
}

func TestSettingsRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewSettingsRepo(db)

	_, err := repo.Get(testCtx, "missing")
	assert.ErrorIs(t, err, storage.ErrNoSuchKey)

	require.NoError(t, repo.Upsert(testCtx, "contact", []byte(`{"email":"a@b.c"}`)))
	require.NoError(t, repo.Upsert(testCtx, "contact", []byte(`{"email":"x@y.z"}`)))

	got, err := repo.Get(testCtx, "contact")
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"x@y.z"}`, string(got))

	assert.ErrorIs(t, repo.Upsert(testCtx, "broken", []byte(`{`)), storage.ErrBadPayload)
}
