package dto

// MediaUploadResponse describes a stored object after upload
type MediaUploadResponse struct {
	URL         string `json:"url"`
	ObjectName  string `json:"object_name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}
