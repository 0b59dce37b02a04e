package dto

import "art_academy/internal/domain/models"

// TechniqueDetail is a technique page: the technique and its visible related techniques.
type TechniqueDetail struct {
	Technique models.TechniqueView   `json:"technique"`
	Related   []models.TechniqueView `json:"related"`
}

type ChatLink struct {
	URL string `json:"url"`
}

type ConfigResponse struct {
	Config models.SiteConfiguration `json:"config"`
	Status models.DataStatus        `json:"status"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type RefreshResponse struct {
	Published bool `json:"published"`
}
