package models

// Image request ratings and response statuses.
const (
	RatingSFW  = "SFW"
	RatingNSFW = "NSFW"

	ImageStatusCompleted = "completed"
	ImageStatusBlocked   = "blocked"
)

// ImageRequest is the request body for POST /images. Requests are never
// persisted; the response is derived per call.
type ImageRequest struct {
	CharacterID string  `json:"character_id" binding:"required"`
	Username    string  `json:"username" binding:"required"`
	Prompt      string  `json:"prompt" binding:"required,min=4,max=400"`
	Style       *string `json:"style"`
	Rating      string  `json:"rating" binding:"omitempty,oneof=SFW NSFW"`
}

// ImageGenResponse is the image generation result. ImageURL is nil when the
// request was blocked by the rating gate.
type ImageGenResponse struct {
	ID       string  `json:"id"`
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	ImageURL *string `json:"image_url"`
}
