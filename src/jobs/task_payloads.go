package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"membership-form-backend/src/services/uploads"
)

const TypeMediaPurge = "media:purge"

// MediaPurgePayload asset ที่ต้องลบออกจาก media host
type MediaPurgePayload struct {
	PublicID string       `json:"publicId"`
	Kind     uploads.Kind `json:"kind"`
	URL      string       `json:"url"`
}

func NewMediaPurgeTask(asset uploads.Asset) (*asynq.Task, error) {
	payload, err := json.Marshal(MediaPurgePayload{
		PublicID: asset.PublicID,
		Kind:     asset.Kind,
		URL:      asset.URL,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMediaPurge, payload, asynq.MaxRetry(5)), nil
}
