package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"art_academy/internal/domain/models"
	"art_academy/internal/lib/logger/sl"
	"art_academy/internal/lib/phone"
	"art_academy/internal/storage"
)

const DefaultKey = "siteData"

// KV is the local key/value store holding the serialized document.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// SiteConfigService persists the site configuration document. None of its
// methods fail: errors are logged and the built-in default is used instead.
type SiteConfigService struct {
	log    *slog.Logger
	kv     KV
	key    string
	driver string
}

func NewSiteConfigService(log *slog.Logger, kv KV, key, driver string) *SiteConfigService {
	if key == "" {
		key = DefaultKey
	}

	return &SiteConfigService{
		log:    log,
		kv:     kv,
		key:    key,
		driver: driver,
	}
}

// Load returns the persisted document merged over the default, with the
// phone-derived links recomputed.
func (s *SiteConfigService) Load(ctx context.Context) models.SiteConfiguration {
	const op = "siteconfig_service.Load"

	log := s.log.With(
		slog.String("op", op),
		slog.String("key", s.key),
	)

	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNoSuchKey) {
			log.Debug("no persisted document, using default")
		} else {
			log.Error("failed to read document", sl.Err(err))
		}
		return WithDerivedLinks(Default())
	}

	doc, err := Merge(raw)
	if err != nil {
		log.Error("corrupt document, using default", sl.Err(err))
		return WithDerivedLinks(Default())
	}

	return WithDerivedLinks(doc)
}

// Save recomputes the derived links and persists the document.
func (s *SiteConfigService) Save(ctx context.Context, doc models.SiteConfiguration) bool {
	const op = "siteconfig_service.Save"

	log := s.log.With(
		slog.String("op", op),
		slog.String("key", s.key),
	)

	data, err := json.Marshal(WithDerivedLinks(doc))
	if err != nil {
		log.Error("failed to encode document", sl.Err(err))
		return false
	}

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		log.Error("failed to persist document", sl.Err(err))
		return false
	}

	log.Info("document saved")

	return true
}

// Reset erases the persisted document and returns the default.
func (s *SiteConfigService) Reset(ctx context.Context) models.SiteConfiguration {
	const op = "siteconfig_service.Reset"

	if err := s.kv.Remove(ctx, s.key); err != nil {
		s.log.Error("failed to remove document",
			slog.String("op", op),
			slog.String("key", s.key),
			sl.Err(err),
		)
	}

	return Default()
}

func (s *SiteConfigService) Status(ctx context.Context) models.DataStatus {
	_, err := s.kv.Get(ctx, s.key)

	return models.DataStatus{
		HasLocalData: err == nil,
		Driver:       s.driver,
	}
}

// Merge overlays a persisted document on the default section by section.
// Struct sections (general, location, pages) merge field by field; list
// sections replace the default only when present and not null.
func Merge(raw []byte) (models.SiteConfiguration, error) {
	const op = "siteconfig_service.Merge"

	doc := Default()

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return doc, fmt.Errorf("%s: %w", op, err)
	}
	if sections == nil {
		return doc, fmt.Errorf("%s: %w", op, storage.ErrBadPayload)
	}

	if err := mergeGeneral(&doc.General, sections["general"]); err != nil {
		return doc, fmt.Errorf("%s: general: %w", op, err)
	}

	for name, dst := range map[string]any{
		"location": &doc.Location,
		"pages":    &doc.Pages,
	} {
		if err := mergeStruct(sections[name], dst); err != nil {
			return doc, fmt.Errorf("%s: %s: %w", op, name, err)
		}
	}

	var err error
	if doc.Sections, err = replaceList(sections["sections"], doc.Sections); err != nil {
		return doc, fmt.Errorf("%s: sections: %w", op, err)
	}
	if doc.SocialMedia, err = replaceList(sections["socialMedia"], doc.SocialMedia); err != nil {
		return doc, fmt.Errorf("%s: socialMedia: %w", op, err)
	}
	if doc.Courses, err = replaceList(sections["courses"], doc.Courses); err != nil {
		return doc, fmt.Errorf("%s: courses: %w", op, err)
	}
	if doc.Gallery, err = replaceList(sections["gallery"], doc.Gallery); err != nil {
		return doc, fmt.Errorf("%s: gallery: %w", op, err)
	}
	if doc.Instructors, err = replaceList(sections["instructors"], doc.Instructors); err != nil {
		return doc, fmt.Errorf("%s: instructors: %w", op, err)
	}

	return doc, nil
}

// WithDerivedLinks rewrites the chat, call and voice-chat social links and
// the location phone from general.phoneNumber.
func WithDerivedLinks(doc models.SiteConfiguration) models.SiteConfiguration {
	out := doc.Clone()
	number := out.General.PhoneNumber

	for i, link := range out.SocialMedia {
		switch link.ID {
		case models.SocialChatID:
			out.SocialMedia[i].URL = phone.ChatLink(number, "")
		case models.SocialCallID:
			out.SocialMedia[i].URL = phone.CallLink(number)
		case models.SocialVoiceChatID:
			out.SocialMedia[i].URL = phone.VoiceChatLink(number)
		}
	}

	out.Location.Phone = phone.Format(number)

	return out
}

// mergeGeneral also accepts the older whatsappNumber field name.
func mergeGeneral(dst *models.GeneralSettings, raw json.RawMessage) error {
	if err := mergeStruct(raw, dst); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}

	var legacy struct {
		PhoneNumber    *string `json:"phoneNumber"`
		WhatsappNumber *string `json:"whatsappNumber"`
	}
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return err
	}
	if legacy.PhoneNumber == nil && legacy.WhatsappNumber != nil {
		dst.PhoneNumber = *legacy.WhatsappNumber
	}

	return nil
}

func mergeStruct(raw json.RawMessage, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	return json.Unmarshal(raw, dst)
}

// replaceList decodes into a fresh slice: decoding into def directly would
// merge persisted elements into the default ones.
func replaceList[T any](raw json.RawMessage, def []T) ([]T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return def, nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return def, err
	}
	if out == nil {
		out = []T{}
	}

	return out, nil
}
