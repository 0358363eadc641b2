package pptx

import (
	"time"

	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
)

// Slide geometry: 13.333in x 7.5in, the 16:9 widescreen size.
const (
	SlideWidth  = 12192000
	SlideHeight = 6858000
)

// ContentType is the media type of a produced package.
const ContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// Option configures Produce and Write.
type Option func(*options)

type options struct {
	clock  func() time.Time
	layout layout.Options
}

func newOptions(opts []Option) options {
	o := options{
		clock:  time.Now,
		layout: layout.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock sets the source of the creation timestamp. Tests pass a fixed
// clock to get reproducible bytes.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLayout overrides the pagination capacities used by Produce.
func WithLayout(lo layout.Options) Option {
	return func(o *options) {
		o.layout = lo
	}
}
