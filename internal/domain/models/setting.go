package models

import (
	"encoding/json"
	"time"
)

// Setting is an ancillary key-value record outside the site configuration document.
type Setting struct {
	Key       string          `db:"setting_key" json:"key"`
	Value     json.RawMessage `db:"setting_value" json:"value"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
