package request

// UploadForm carries the non-file fields of an image upload.
type UploadForm struct {
	Kind   string `form:"kind" validate:"required,upload_kind"`
	ItemID string `form:"item_id" validate:"omitempty,number"`
}
