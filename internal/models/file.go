package models

// UploadResult describes a file stored by the platform's file service.
type UploadResult struct {
	ID           string `json:"id"`
	OriginalName string `json:"originalName"`
	ContentType  string `json:"contentType"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}
