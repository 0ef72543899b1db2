package fit

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a wrapper returned by Bar or Pie.
type Option func(*settings)

type settings struct {
	logger    *log.Logger
	scheduler Scheduler
}

// WithLogger logs the geometry of every resize pass to l at debug level.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScheduler runs deferred legend passes on sched. Without it they run
// synchronously at the end of Render.
func WithScheduler(sched Scheduler) Option {
	return func(s *settings) {
		if sched != nil {
			s.scheduler = sched
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		logger:    log.New(io.Discard),
		scheduler: Immediate{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
