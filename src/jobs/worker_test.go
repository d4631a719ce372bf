package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-form-backend/src/services/uploads"
)

type fakeHost struct {
	deleted []uploads.Asset
	err     error
}

func (h *fakeHost) Upload(context.Context, string, uploads.Kind, uploads.File) (uploads.Asset, error) {
	return uploads.Asset{}, errors.New("not used")
}

func (h *fakeHost) Delete(_ context.Context, a uploads.Asset) error {
	if h.err != nil {
		return h.err
	}
	h.deleted = append(h.deleted, a)
	return nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (e *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.tasks = append(e.tasks, task)
	return &asynq.TaskInfo{ID: "1", Type: task.Type()}, nil
}

var cvAsset = uploads.Asset{
	URL:      "https://res.cloudinary.com/demo/raw/upload/v1/Uploads/abc.pdf",
	PublicID: "Uploads/abc.pdf",
	Kind:     uploads.KindRaw,
}

func TestNewMediaPurgeTask(t *testing.T) {
	task, err := NewMediaPurgeTask(cvAsset)
	require.NoError(t, err)
	assert.Equal(t, TypeMediaPurge, task.Type())

	var payload MediaPurgePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, MediaPurgePayload{PublicID: cvAsset.PublicID, Kind: uploads.KindRaw, URL: cvAsset.URL}, payload)
}

func TestHandleMediaPurge(t *testing.T) {
	t.Run("deletes asset", func(t *testing.T) {
		host := &fakeHost{}
		task, err := NewMediaPurgeTask(cvAsset)
		require.NoError(t, err)

		require.NoError(t, NewPurgeHandler(host).HandleMediaPurge(context.Background(), task))
		require.Len(t, host.deleted, 1)
		assert.Equal(t, cvAsset.PublicID, host.deleted[0].PublicID)
		assert.Equal(t, uploads.KindRaw, host.deleted[0].Kind)
	})

	t.Run("bad payload is not retried", func(t *testing.T) {
		task := asynq.NewTask(TypeMediaPurge, []byte("{"))
		err := NewPurgeHandler(&fakeHost{}).HandleMediaPurge(context.Background(), task)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("missing public id is not retried", func(t *testing.T) {
		task := asynq.NewTask(TypeMediaPurge, []byte(`{"kind":"raw"}`))
		err := NewPurgeHandler(&fakeHost{}).HandleMediaPurge(context.Background(), task)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("host error is retried", func(t *testing.T) {
		task, err := NewMediaPurgeTask(cvAsset)
		require.NoError(t, err)
		err = NewPurgeHandler(&fakeHost{err: errors.New("timeout")}).HandleMediaPurge(context.Background(), task)
		require.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestQueuePurger(t *testing.T) {
	enq := &fakeEnqueuer{}
	image := uploads.Asset{URL: "https://media.example/Images/x", PublicID: "Images/x", Kind: uploads.KindImage}

	NewQueuePurger(enq).Purge(context.Background(), cvAsset, image)
	require.Len(t, enq.tasks, 2)
	assert.Equal(t, TypeMediaPurge, enq.tasks[0].Type())

	assert.NotPanics(t, func() {
		NewQueuePurger(&fakeEnqueuer{err: errors.New("redis down")}).Purge(context.Background(), cvAsset)
	})
}

func TestInlinePurger(t *testing.T) {
	host := &fakeHost{}
	NewInlinePurger(host).Purge(context.Background(), cvAsset)
	assert.Len(t, host.deleted, 1)

	assert.NotPanics(t, func() {
		NewInlinePurger(&fakeHost{err: errors.New("gone")}).Purge(context.Background(), cvAsset)
	})
}
