package jobs

import (
	"context"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	imageCleanupFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hrdesk_image_cleanup_failures_total",
		Help: "Stored images that could not be removed.",
	})
	imageCleanupDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hrdesk_image_cleanup_dropped_total",
		Help: "Image removals dropped because the queue was full.",
	})
)

type Remover interface {
	Remove(name string) error
}

// ImageCleaner removes orphaned image files off the request path. Failures
// are logged and never reach the request that scheduled them.
type ImageCleaner struct {
	remover Remover
	queue   chan string
	done    chan struct{}
}

func NewImageCleaner(remover Remover, size int) *ImageCleaner {
	if size <= 0 {
		size = 64
	}
	return &ImageCleaner{
		remover: remover,
		queue:   make(chan string, size),
		done:    make(chan struct{}),
	}
}

// Schedule never blocks.
func (c *ImageCleaner) Schedule(name string) {
	select {
	case c.queue <- name:
	default:
		imageCleanupDropped.Inc()
		log.Printf("image cleanup queue full, dropping name=%s", name)
	}
}

// Start runs the worker until ctx is done, then drains what is queued.
func (c *ImageCleaner) Start(ctx context.Context) {
	go func() {
		defer close(c.done)
		for {
			select {
			case <-ctx.Done():
				c.drain()
				return
			case name := <-c.queue:
				c.remove(name)
			}
		}
	}()
}

// Wait blocks until the worker started by Start has returned.
func (c *ImageCleaner) Wait() {
	<-c.done
}

func (c *ImageCleaner) drain() {
	for {
		select {
		case name := <-c.queue:
			c.remove(name)
		default:
			return
		}
	}
}

func (c *ImageCleaner) remove(name string) {
	if err := c.remover.Remove(name); err != nil {
		imageCleanupFailures.Inc()
		log.Printf("image cleanup error name=%s: %v", name, err)
	}
}
