package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RenderJob is the hand-off to the external rendering service: the
// timeline to render and the ordered clip plan. No durable delivery is
// promised here; timelines stuck in queued are re-enqueued by a worker.
type RenderJob struct {
	TimelineID string          `json:"timeline_id"`
	PropertyID string          `json:"property_id"`
	TemplateID string          `json:"template_id"`
	Clips      []RenderJobClip `json:"clips"`
}

type RenderJobClip struct {
	SlotOrder int     `json:"slot_order"`
	VideoPath string  `json:"video_path,omitempty"`
	Duration  float64 `json:"duration"`
}

// RenderResult is published by the renderer on the results channel.
type RenderResult struct {
	TimelineID string `json:"timeline_id"`
	Success    bool   `json:"success"`
	OutputPath string `json:"output_path,omitempty"`
	Error      string `json:"error,omitempty"`
}

type Config struct {
	Addr          string
	Password      string
	DB            int
	RenderQueue   string
	ResultChannel string
}

// RenderQueue pushes render jobs onto a redis list and exposes the
// renderer's result channel as a subscription.
type RenderQueue struct {
	client  *redis.Client
	queue   string
	channel string
}

func NewRenderQueue(cfg Config) *RenderQueue {
	return &RenderQueue{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		queue:   cfg.RenderQueue,
		channel: cfg.ResultChannel,
	}
}

func (q *RenderQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

func (q *RenderQueue) Enqueue(ctx context.Context, job *RenderJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal render job: %w", err)
	}
	if err := q.client.LPush(ctx, q.queue, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue render job: %w", err)
	}
	return nil
}

// QueueLength reports the number of pending render jobs.
func (q *RenderQueue) QueueLength(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.queue).Result()
}

// SubscribeResults blocks, invoking handler for every result published by
// the renderer until the context is cancelled. Malformed messages are
// reported to the handler's error callback and skipped.
func (q *RenderQueue) SubscribeResults(ctx context.Context, handler func(*RenderResult), onError func(error)) error {
	sub := q.client.Subscribe(ctx, q.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var result RenderResult
			if err := json.Unmarshal([]byte(msg.Payload), &result); err != nil {
				if onError != nil {
					onError(fmt.Errorf("malformed render result: %w", err))
				}
				continue
			}
			handler(&result)
		}
	}
}

func (q *RenderQueue) Close() error {
	return q.client.Close()
}
