// Package orchestrator holds the application state served to the site: the
// configuration document plus the normalized remote collections.
package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"art_academy/internal/domain/models"
	"art_academy/internal/lib/logger/sl"
	"art_academy/internal/metrics"
	"art_academy/internal/viewmodel"
)

const DefaultFetchTimeout = 10 * time.Second

type ConfigStore interface {
	Load(ctx context.Context) models.SiteConfiguration
	Save(ctx context.Context, doc models.SiteConfiguration) bool
	Reset(ctx context.Context) models.SiteConfiguration
}

// VisibleLister returns the published rows of a collection; failures yield an empty slice.
type VisibleLister[T any] interface {
	ListVisible(ctx context.Context) []T
}

type Sources struct {
	Gallery     VisibleLister[models.GalleryItem]
	Courses     VisibleLister[models.Course]
	Instructors VisibleLister[models.Instructor]
	Techniques  VisibleLister[models.DrawingTechnique]
}

type remoteContent struct {
	gallery     []models.GalleryView
	courses     []models.CourseView
	instructors []models.InstructorView
	techniques  []models.TechniqueView
}

type Orchestrator struct {
	log          *slog.Logger
	store        ConfigStore
	src          Sources
	fetchTimeout time.Duration

	issued  atomic.Uint64
	changed chan struct{}

	mu        sync.RWMutex
	config    models.SiteConfiguration
	remote    remoteContent
	published uint64
	loading   bool
}

func New(log *slog.Logger, store ConfigStore, src Sources, fetchTimeout time.Duration) *Orchestrator {
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}

	return &Orchestrator{
		log:          log,
		store:        store,
		src:          src,
		fetchTimeout: fetchTimeout,
		changed:      make(chan struct{}, 1),
		loading:      true,
	}
}

// Start loads the configuration document and performs the first refresh.
func (o *Orchestrator) Start(ctx context.Context) {
	doc := o.store.Load(ctx)

	o.mu.Lock()
	o.config = doc
	o.mu.Unlock()

	o.Refresh(ctx)
}

// Refresh fetches the four collections concurrently and publishes the
// normalized result. It reports false when a newer refresh published first
// or ctx was cancelled; in both cases the published content is left as is.
func (o *Orchestrator) Refresh(ctx context.Context) bool {
	const op = "orchestrator.Refresh"

	gen := o.issued.Add(1)
	log := o.log.With(
		slog.String("op", op),
		slog.Uint64("generation", gen),
	)

	fetchCtx, cancel := context.WithTimeout(ctx, o.fetchTimeout)
	defer cancel()

	started := time.Now()

	var (
		g    errgroup.Group
		next remoteContent
	)

	g.Go(func() error {
		next.gallery = mapSlice(o.src.Gallery.ListVisible(fetchCtx), viewmodel.Gallery)
		return nil
	})
	g.Go(func() error {
		next.courses = mapSlice(o.src.Courses.ListVisible(fetchCtx), viewmodel.Course)
		return nil
	})
	g.Go(func() error {
		next.instructors = mapSlice(o.src.Instructors.ListVisible(fetchCtx), viewmodel.Instructor)
		return nil
	})
	g.Go(func() error {
		next.techniques = mapSlice(o.src.Techniques.ListVisible(fetchCtx), viewmodel.Technique)
		return nil
	})

	// listers never return errors; failed collections come back empty
	_ = g.Wait()

	// caller went away: the empty results say nothing about the collections
	if err := ctx.Err(); err != nil {
		metrics.ContentRefreshes.WithLabelValues("cancelled").Inc()
		log.Warn("refresh cancelled, keeping published content", sl.Err(err))
		return false
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen < o.published {
		metrics.ContentRefreshes.WithLabelValues("stale").Inc()
		log.Warn("dropping stale refresh", slog.Uint64("published", o.published))
		return false
	}

	o.remote = next
	o.published = gen
	o.loading = false

	metrics.ContentRefreshes.WithLabelValues("published").Inc()
	log.Info("content refreshed",
		slog.Int("gallery", len(next.gallery)),
		slog.Int("courses", len(next.courses)),
		slog.Int("instructors", len(next.instructors)),
		slog.Int("techniques", len(next.techniques)),
		slog.Duration("took", time.Since(started)),
	)

	return true
}

// View returns a copy of the merged view model. Remote arrays win when they
// are non-empty, otherwise the static arrays of the configuration document
// are served.
func (o *Orchestrator) View() models.SiteView {
	o.mu.RLock()
	defer o.mu.RUnlock()

	doc := o.config
	if len(o.remote.gallery) > 0 {
		doc.Gallery = o.remote.gallery
	}
	if len(o.remote.courses) > 0 {
		doc.Courses = o.remote.courses
	}
	if len(o.remote.instructors) > 0 {
		doc.Instructors = o.remote.instructors
	}

	view := models.SiteView{
		SiteConfiguration: doc.Clone(),
		Techniques:        cloneTechniques(o.remote.techniques),
		Loading:           o.loading,
	}

	for i, c := range view.Courses {
		view.Courses[i] = viewmodel.WithEnrollLink(c, view.General.PhoneNumber)
	}

	return view
}

func (o *Orchestrator) Config() models.SiteConfiguration {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.config.Clone()
}

// SaveConfig persists doc and, on success, adopts the stored form and
// schedules a refresh.
func (o *Orchestrator) SaveConfig(ctx context.Context, doc models.SiteConfiguration) bool {
	if !o.store.Save(ctx, doc) {
		return false
	}

	stored := o.store.Load(ctx)

	o.mu.Lock()
	o.config = stored
	o.mu.Unlock()

	o.NotifyDataChanged()

	return true
}

func (o *Orchestrator) ResetConfig(ctx context.Context) models.SiteConfiguration {
	doc := o.store.Reset(ctx)

	o.mu.Lock()
	o.config = doc.Clone()
	o.mu.Unlock()

	o.NotifyDataChanged()

	return doc
}

// NotifyDataChanged asks Run for a refresh. Signals arriving while one is
// already pending are coalesced.
func (o *Orchestrator) NotifyDataChanged() {
	select {
	case o.changed <- struct{}{}:
	default:
	}
}

// Run refreshes on every data-changed signal until ctx is done.
func (o *Orchestrator) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-o.changed:
			o.Refresh(ctx)
		}
	}
}

func (o *Orchestrator) Loading() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.loading
}

func mapSlice[T, V any](in []T, fn func(T) V) []V {
	out := make([]V, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func cloneTechniques(in []models.TechniqueView) []models.TechniqueView {
	out := make([]models.TechniqueView, len(in))
	for i, t := range in {
		t.ToolsNeeded = append([]string{}, t.ToolsNeeded...)
		t.ToolsNeededEn = append([]string{}, t.ToolsNeededEn...)
		t.Steps = append([]string{}, t.Steps...)
		t.StepsEn = append([]string{}, t.StepsEn...)
		t.Tips = append([]string{}, t.Tips...)
		t.TipsEn = append([]string{}, t.TipsEn...)
		t.Prerequisites = append([]string{}, t.Prerequisites...)
		t.PrerequisitesEn = append([]string{}, t.PrerequisitesEn...)
		t.RelatedTechniques = append([]int64{}, t.RelatedTechniques...)
		out[i] = t
	}
	return out
}
