package imagegen

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/logger"
)

const DefaultQuietPeriod = 5 * time.Second

// Result is the latest accepted generation of a debouncer
type Result struct {
	Prompt    string    `json:"prompt,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Error     string    `json:"error,omitempty"`
	Sequence  uint64    `json:"sequence"`
	Pending   bool      `json:"pending"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Debouncer coalesces prompt edits and fires one generation per quiet period.
// In-flight generations are never cancelled by later edits; a response is
// accepted only when its sequence number is still the latest issued.
type Debouncer struct {
	ctx    context.Context
	cancel context.CancelFunc
	client Client
	quiet  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	seq     uint64
	result  Result
	closed  bool
}

// NewDebouncer creates a debouncer firing client after quiet without edits
func NewDebouncer(ctx context.Context, client Client, quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Debouncer{
		ctx:    ctx,
		cancel: cancel,
		client: client,
		quiet:  quiet,
	}
}

// Submit records prompt as the latest edit and restarts the quiet period.
// An empty prompt only cancels the pending edit.
func (d *Debouncer) Submit(prompt string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = prompt
	if prompt == "" {
		return
	}
	d.result.Pending = true
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.closed || d.pending == "" {
		d.mu.Unlock()
		return
	}
	d.seq++
	seq := d.seq
	prompt := d.pending
	d.timer = nil
	d.mu.Unlock()

	imageURL, err := d.client.Generate(d.ctx, prompt)

	d.mu.Lock()
	defer d.mu.Unlock()

	if seq != d.seq {
		logger.DebugCtx(d.ctx, "Discarding stale image generation",
			zap.Uint64("sequence", seq),
			zap.Uint64("latest", d.seq))
		return
	}

	d.result = Result{
		Prompt:    prompt,
		ImageURL:  imageURL,
		Sequence:  seq,
		Pending:   d.timer != nil,
		UpdatedAt: time.Now().UTC(),
	}
	if err != nil {
		logger.WarnCtx(d.ctx, "Image generation failed", zap.Uint64("sequence", seq), zap.Error(err))
		d.result.ImageURL = ""
		d.result.Error = "Failed to generate image"
	}
}

// Latest returns the latest accepted result
func (d *Debouncer) Latest() Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result
}

// Close stops the pending timer and cancels in-flight generations
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.cancel()
}
