package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/hibiken/asynq"

	"membership-form-backend/src/services/uploads"
)

// PurgeHandler ลบไฟล์ที่อัปโหลดไปแล้วแต่ request ล้มเหลว
type PurgeHandler struct {
	host uploads.MediaHost
}

func NewPurgeHandler(host uploads.MediaHost) *PurgeHandler {
	return &PurgeHandler{host: host}
}

func (h *PurgeHandler) HandleMediaPurge(ctx context.Context, t *asynq.Task) error {
	var payload MediaPurgePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Errorf("❌ Payload decode error: %v", err)
		return fmt.Errorf("decode %s payload: %v: %w", TypeMediaPurge, err, asynq.SkipRetry)
	}
	if payload.PublicID == "" {
		return fmt.Errorf("%s payload without publicId: %w", TypeMediaPurge, asynq.SkipRetry)
	}

	asset := uploads.Asset{PublicID: payload.PublicID, Kind: payload.Kind, URL: payload.URL}
	if err := h.host.Delete(ctx, asset); err != nil {
		log.Errorf("❌ Failed to purge %s: %v", payload.URL, err)
		return err
	}

	log.Infof("🧹 Purged orphaned %s asset %s", payload.Kind, payload.PublicID)
	return nil
}

// Worker asynq server ที่รันอยู่ใน process เดียวกับ API
type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewWorker(opt asynq.RedisConnOpt, handler *PurgeHandler) *Worker {
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: 2,
		Queues:      map[string]int{"default": 1},
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMediaPurge, handler.HandleMediaPurge)
	return &Worker{srv: srv, mux: mux}
}

func (w *Worker) Start() error {
	if err := w.srv.Start(w.mux); err != nil {
		return fmt.Errorf("start asynq worker: %w", err)
	}
	log.Info("✅ Asynq worker started")
	return nil
}

func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}

// TaskEnqueuer is the subset of *asynq.Client used to queue purge tasks.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueuePurger implements uploads.Purger on top of asynq.
type QueuePurger struct {
	client TaskEnqueuer
}

func NewQueuePurger(client TaskEnqueuer) *QueuePurger {
	return &QueuePurger{client: client}
}

func (p *QueuePurger) Purge(ctx context.Context, assets ...uploads.Asset) {
	for _, a := range assets {
		task, err := NewMediaPurgeTask(a)
		if err == nil {
			_, err = p.client.EnqueueContext(ctx, task)
		}
		if err != nil {
			log.Errorf("❌ Failed to enqueue purge of %s: %v", a.URL, err)
			continue
		}
		log.Infof("🗓️ Purge queued for %s", a.URL)
	}
}

// InlinePurger deletes assets directly when no queue is configured.
type InlinePurger struct {
	host uploads.MediaHost
}

func NewInlinePurger(host uploads.MediaHost) *InlinePurger {
	return &InlinePurger{host: host}
}

func (p *InlinePurger) Purge(ctx context.Context, assets ...uploads.Asset) {
	var errs []error
	for _, a := range assets {
		if err := p.host.Delete(ctx, a); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.URL, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.Warnf("⚠️ orphaned assets left on media host: %v", err)
	}
}
