package orchestrator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"art_academy/internal/domain/models"
	"art_academy/internal/lib/logger/handlers/slogdiscard"
	siteconfig "art_academy/internal/services/siteconfig_service"
	"art_academy/internal/storage/memstore"
)

type listerFunc[T any] func(ctx context.Context) []T

func (f listerFunc[T]) ListVisible(ctx context.Context) []T { return f(ctx) }

func fixed[T any](items ...T) listerFunc[T] {
	return func(context.Context) []T { return append([]T{}, items...) }
}

func strPtr(s string) *string { return &s }

func newStore() *siteconfig.SiteConfigService {
	return siteconfig.NewSiteConfigService(slogdiscard.NewDiscardLogger(), memstore.New(), "", "memory")
}

func emptySources() Sources {
	return Sources{
		Gallery:     fixed[models.GalleryItem](),
		Courses:     fixed[models.Course](),
		Instructors: fixed[models.Instructor](),
		Techniques:  fixed[models.DrawingTechnique](),
	}
}

func TestStart_FallsBackToStaticArrays(t *testing.T) {
	ctx := context.Background()
	o := New(slogdiscard.NewDiscardLogger(), newStore(), emptySources(), time.Second)

	assert.True(t, o.Loading())
	o.Start(ctx)
	assert.False(t, o.Loading())

	view := o.View()
	def := siteconfig.Default()

	assert.Len(t, view.Courses, len(def.Courses))
	assert.Len(t, view.Gallery, len(def.Gallery))
	assert.Len(t, view.Instructors, len(def.Instructors))
	assert.NotNil(t, view.Techniques)
	assert.Empty(t, view.Techniques, "techniques have no static fallback")

	// static courses enroll through the chat link of the configured phone
	assert.Contains(t, view.Courses[0].EnrollLink, "https://wa.me/966501234567?text=")
}

func TestRefresh_PartialFailure(t *testing.T) {
	ctx := context.Background()
	src := emptySources()
	src.Gallery = fixed(
		models.GalleryItem{ID: 1, Title: "first", Visible: true, Featured: true},
		models.GalleryItem{ID: 2, Title: "second", Visible: true},
	)
	// a failing collection comes back empty from the content façade
	src.Courses = fixed[models.Course]()
	src.Techniques = fixed(models.DrawingTechnique{ID: 7, Title: "Hatching", Visible: true})

	o := New(slogdiscard.NewDiscardLogger(), newStore(), src, time.Second)
	o.Start(ctx)

	view := o.View()
	require.Len(t, view.Gallery, 2)
	assert.Equal(t, int64(1), view.Gallery[0].ID)
	assert.Equal(t, "first", view.Gallery[0].TitleEn, "normalized on the way in")
	assert.Len(t, view.Courses, len(siteconfig.Default().Courses))
	require.Len(t, view.Techniques, 1)
	assert.Equal(t, []string{}, view.Techniques[0].Steps)
}

func TestRefresh_FetchesConcurrently(t *testing.T) {
	ctx := context.Background()

	// each lister waits until all four have started
	var wg sync.WaitGroup
	wg.Add(4)
	barrier := func() {
		wg.Done()
		wg.Wait()
	}

	src := Sources{
		Gallery:     listerFunc[models.GalleryItem](func(context.Context) []models.GalleryItem { barrier(); return nil }),
		Courses:     listerFunc[models.Course](func(context.Context) []models.Course { barrier(); return nil }),
		Instructors: listerFunc[models.Instructor](func(context.Context) []models.Instructor { barrier(); return nil }),
		Techniques:  listerFunc[models.DrawingTechnique](func(context.Context) []models.DrawingTechnique { barrier(); return nil }),
	}

	o := New(slogdiscard.NewDiscardLogger(), newStore(), src, time.Second)

	done := make(chan struct{})
	go func() {
		o.Refresh(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("fetches did not overlap")
	}
}

func TestRefresh_FetchTimeout(t *testing.T) {
	src := emptySources()
	src.Instructors = listerFunc[models.Instructor](func(ctx context.Context) []models.Instructor {
		<-ctx.Done()
		return []models.Instructor{}
	})

	o := New(slogdiscard.NewDiscardLogger(), newStore(), src, 20*time.Millisecond)

	assert.True(t, o.Refresh(context.Background()))
	assert.False(t, o.Loading())
}

func TestRefresh_CancelledKeepsPublishedContent(t *testing.T) {
	src := emptySources()
	src.Techniques = listerFunc[models.DrawingTechnique](func(ctx context.Context) []models.DrawingTechnique {
		// the façade returns an empty slice when its context is done
		if ctx.Err() != nil {
			return []models.DrawingTechnique{}
		}
		return []models.DrawingTechnique{{ID: 7, Title: "Hatching", Visible: true}}
	})

	o := New(slogdiscard.NewDiscardLogger(), newStore(), src, time.Second)
	o.Start(context.Background())
	require.Len(t, o.View().Techniques, 1)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, o.Refresh(cancelled))
	assert.Len(t, o.View().Techniques, 1)

	// a later refresh still publishes
	assert.True(t, o.Refresh(context.Background()))
	assert.Len(t, o.View().Techniques, 1)
}

func TestRefresh_StaleResultDiscarded(t *testing.T) {
	ctx := context.Background()

	release := make(chan struct{})
	entered := make(chan struct{})
	var calls int
	var mu sync.Mutex

	src := emptySources()
	src.Courses = listerFunc[models.Course](func(context.Context) []models.Course {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			close(entered)
			<-release
			return []models.Course{{ID: 1, Title: "old", Visible: true}}
		}
		return []models.Course{{ID: 2, Title: "new", Visible: true}}
	})

	o := New(slogdiscard.NewDiscardLogger(), newStore(), src, time.Second)

	first := make(chan bool)
	go func() { first <- o.Refresh(ctx) }()

	<-entered
	require.True(t, o.Refresh(ctx))
	close(release)

	assert.False(t, <-first, "older refresh must not overwrite a newer one")

	view := o.View()
	require.Len(t, view.Courses, 1)
	assert.Equal(t, "new", view.Courses[0].Title)
}

func TestView_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	src := emptySources()
	src.Courses = fixed(models.Course{ID: 1, Title: "c", Features: []string{"a"}, Visible: true})

	o := New(slogdiscard.NewDiscardLogger(), newStore(), src, time.Second)
	o.Start(ctx)

	v := o.View()
	v.Courses[0].Features[0] = "mutated"
	v.General.SiteName = "mutated"
	v.SocialMedia[0].URL = "mutated"

	again := o.View()
	assert.Equal(t, "a", again.Courses[0].Features[0])
	assert.NotEqual(t, "mutated", again.General.SiteName)
	assert.NotEqual(t, "mutated", again.SocialMedia[0].URL)
}

func TestView_ExternalEnrollmentURL(t *testing.T) {
	ctx := context.Background()
	src := emptySources()
	src.Courses = fixed(
		models.Course{ID: 1, Title: "ext", EnrollmentURL: strPtr("https://forms.example/enroll"), Visible: true},
		models.Course{ID: 2, Title: "chat", Visible: true},
	)

	o := New(slogdiscard.NewDiscardLogger(), newStore(), src, time.Second)
	o.Start(ctx)

	view := o.View()
	assert.Equal(t, "https://forms.example/enroll", view.Courses[0].EnrollLink)
	assert.False(t, view.Courses[0].EnrollViaChat)
	assert.True(t, view.Courses[1].EnrollViaChat)
}

func TestSaveConfig_RefreshesAndRecomputesLinks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	fetches := 0
	src := emptySources()
	src.Gallery = listerFunc[models.GalleryItem](func(context.Context) []models.GalleryItem {
		mu.Lock()
		fetches++
		mu.Unlock()
		return nil
	})

	o := New(slogdiscard.NewDiscardLogger(), newStore(), src, time.Second)
	o.Start(ctx)
	go o.Run(ctx)

	doc := o.Config()
	doc.General.PhoneNumber = "0559998888"
	require.True(t, o.SaveConfig(ctx, doc))

	assert.Equal(t, "+966 55 999 8888", o.Config().Location.Phone)
	assert.Contains(t, o.View().Courses[0].EnrollLink, "966559998888")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fetches >= 2
	}, time.Second, 10*time.Millisecond)

	reset := o.ResetConfig(ctx)
	assert.Equal(t, siteconfig.Default(), reset)
	assert.Equal(t, "+966 50 123 4567", o.Config().Location.Phone)
}

func TestNotifyDataChanged_NeverBlocks(t *testing.T) {
	o := New(slogdiscard.NewDiscardLogger(), newStore(), emptySources(), time.Second)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			o.NotifyDataChanged()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("NotifyDataChanged blocked without a consumer")
	}
}
