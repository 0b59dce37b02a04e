package models

import "io"

// UploadKind names the entity an uploaded image belongs to; it prefixes the storage key.
type UploadKind string

const (
	UploadKindInstructor UploadKind = "instructor"
	UploadKindGallery    UploadKind = "gallery"
	UploadKindCourse     UploadKind = "course"
	UploadKindTechnique  UploadKind = "technique"
	UploadKindLogo       UploadKind = "logo"
)

func (k UploadKind) Valid() bool {
	switch k {
	case UploadKindInstructor, UploadKindGallery, UploadKindCourse, UploadKindTechnique, UploadKindLogo:
		return true
	}
	return false
}

// UploadInput описывает загружаемое изображение
type UploadInput struct {
	File        io.Reader
	Filename    string
	ContentType string
	Size        int64
	Kind        UploadKind
	ItemID      *int64
}
