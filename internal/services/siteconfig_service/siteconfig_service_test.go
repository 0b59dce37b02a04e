package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"art_academy/internal/domain/models"
	"art_academy/internal/lib/logger/handlers/slogdiscard"
	services "art_academy/internal/services/siteconfig_service"
	"art_academy/internal/storage/memstore"
)

type MockKV struct {
	mock.Mock
}

func (m *MockKV) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKV) Set(ctx context.Context, key string, value []byte) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockKV) Remove(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func newService(kv services.KV) *services.SiteConfigService {
	return services.NewSiteConfigService(slogdiscard.NewDiscardLogger(), kv, "", "memory")
}

func socialURL(t *testing.T, doc models.SiteConfiguration, id string) string {
	t.Helper()
	for _, l := range doc.SocialMedia {
		if l.ID == id {
			return l.URL
		}
	}
	t.Fatalf("social link %q not found", id)
	return ""
}

func TestLoad_NothingPersisted(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	doc := svc.Load(ctx)

	assert.Equal(t, services.WithDerivedLinks(services.Default()), doc)
	assert.False(t, svc.Status(ctx).HasLocalData)
	assert.Equal(t, "memory", svc.Status(ctx).Driver)
}

func TestLoad_MissingSectionFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	kv := memstore.New()
	svc := newService(kv)

	// written by an older version: no pages, no gallery, partial general
	old := []byte(`{
		"general": {"siteName": "Old name", "whatsappNumber": "0559998888"},
		"courses": [{"id": 9, "title": "Only course"}]
	}`)
	require.NoError(t, kv.Set(ctx, services.DefaultKey, old))

	doc := svc.Load(ctx)
	def := services.Default()

	assert.Equal(t, def.Pages, doc.Pages)
	assert.Equal(t, def.Gallery, doc.Gallery)
	assert.Equal(t, def.Sections, doc.Sections)

	assert.Equal(t, "Old name", doc.General.SiteName)
	assert.Equal(t, def.General.SiteNameEn, doc.General.SiteNameEn, "missing fields keep defaults")
	assert.Equal(t, "0559998888", doc.General.PhoneNumber)

	require.Len(t, doc.Courses, 1)
	assert.Equal(t, "Only course", doc.Courses[0].Title)
	assert.Empty(t, doc.Courses[0].Description, "list sections are replaced, not merged")
}

func TestLoad_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	kv := memstore.New()
	svc := newService(kv)

	for _, raw := range []string{`{not json`, `null`, `[1,2]`, `{"courses": "nope"}`} {
		require.NoError(t, kv.Set(ctx, services.DefaultKey, []byte(raw)))

		var doc models.SiteConfiguration
		assert.NotPanics(t, func() { doc = svc.Load(ctx) }, raw)
		assert.Equal(t, services.WithDerivedLinks(services.Default()), doc, raw)
	}
}

func TestSave_RegeneratesDerivedLinks(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	doc := svc.Load(ctx)
	doc.General.PhoneNumber = "0559998888"
	for i := range doc.SocialMedia {
		// hand edits to derived links never survive
		doc.SocialMedia[i].URL = "https://stale.example"
	}

	require.True(t, svc.Save(ctx, doc))
	assert.True(t, svc.Status(ctx).HasLocalData)

	loaded := svc.Load(ctx)

	assert.Equal(t, "https://wa.me/966559998888", socialURL(t, loaded, models.SocialChatID))
	assert.Equal(t, "tel:+966 55 999 8888", socialURL(t, loaded, models.SocialCallID))
	assert.Equal(t, "viber://chat?number=966559998888", socialURL(t, loaded, models.SocialVoiceChatID))
	assert.Equal(t, "+966 55 999 8888", loaded.Location.Phone)
	assert.Equal(t, "https://stale.example", socialURL(t, loaded, "instagram"))
}

func TestSave_DoesNotTouchCallerDocument(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	doc := services.Default()
	doc.General.PhoneNumber = "0559998888"
	before := doc.SocialMedia[3].URL

	require.True(t, svc.Save(ctx, doc))
	assert.Equal(t, before, doc.SocialMedia[3].URL)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	doc := svc.Load(ctx)
	doc.General.SiteName = "changed"
	require.True(t, svc.Save(ctx, doc))

	assert.Equal(t, services.Default(), svc.Reset(ctx))
	assert.False(t, svc.Status(ctx).HasLocalData)
	assert.Equal(t, services.Default().General.SiteName, svc.Load(ctx).General.SiteName)
}

func TestStoreFailures(t *testing.T) {
	ctx := context.Background()
	kv := new(MockKV)
	svc := newService(kv)
	boom := errors.New("disk full")

	kv.On("Get", ctx, services.DefaultKey).Return(nil, boom)
	kv.On("Set", ctx, services.DefaultKey, mock.Anything).Return(boom)
	kv.On("Remove", ctx, services.DefaultKey).Return(boom)

	assert.Equal(t, services.WithDerivedLinks(services.Default()), svc.Load(ctx))
	assert.False(t, svc.Save(ctx, services.Default()))
	assert.Equal(t, services.Default(), svc.Reset(ctx))
	assert.False(t, svc.Status(ctx).HasLocalData)
}

func TestDefault_IsFreshEachCall(t *testing.T) {
	a := services.Default()
	a.Courses[0].Title = "mutated"
	a.Courses[0].Features[0] = "mutated"

	b := services.Default()
	assert.NotEqual(t, "mutated", b.Courses[0].Title)
	assert.NotEqual(t, "mutated", b.Courses[0].Features[0])
}

func TestMerge_JSONShape(t *testing.T) {
	raw, err := json.Marshal(services.Default())
	require.NoError(t, err)

	doc, err := services.Merge(raw)
	require.NoError(t, err)
	assert.Equal(t, services.Default(), doc)
}
