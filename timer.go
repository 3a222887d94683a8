package rend

import (
	"time"

	"github.com/loov/hrtime"
)

// FrameTimer measures spans inside a frame with the high resolution clock
// and keeps an exponential average of each.
type FrameTimer struct {
	// Smoothing is the weight of the newest sample, 0.1 when zero.
	Smoothing float64

	spans map[string]*span
	order []string
}

type span struct {
	start   time.Duration
	started bool
	last    time.Duration
	average time.Duration
	samples int
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{spans: map[string]*span{}}
}

func (timer *FrameTimer) span(name string) *span {
	if timer.spans == nil {
		timer.spans = map[string]*span{}
	}
	s, ok := timer.spans[name]
	if !ok {
		s = &span{}
		timer.spans[name] = s
		timer.order = append(timer.order, name)
	}
	return s
}

// Start begins measuring name.
func (timer *FrameTimer) Start(name string) {
	s := timer.span(name)
	s.start = hrtime.Now()
	s.started = true
}

// Stop ends measuring name and returns the elapsed time. Stopping a span
// that is not running records nothing and returns 0.
func (timer *FrameTimer) Stop(name string) time.Duration {
	s, ok := timer.spans[name]
	if !ok || !s.started {
		return 0
	}
	s.started = false
	elapsed := hrtime.Since(s.start)
	timer.record(s, elapsed)
	return elapsed
}

// Measure times fn under name.
func (timer *FrameTimer) Measure(name string, fn func()) time.Duration {
	timer.Start(name)
	fn()
	return timer.Stop(name)
}

func (timer *FrameTimer) record(s *span, elapsed time.Duration) {
	alpha := timer.Smoothing
	if alpha <= 0 || alpha > 1 {
		alpha = 0.1
	}
	s.last = elapsed
	if s.samples == 0 {
		s.average = elapsed
	} else {
		s.average = time.Duration(float64(s.average)*(1-alpha) + float64(elapsed)*alpha)
	}
	s.samples++
}

// Last is the most recent measurement of name.
func (timer *FrameTimer) Last(name string) time.Duration {
	if s, ok := timer.spans[name]; ok {
		return s.last
	}
	return 0
}

// Average is the smoothed measurement of name.
func (timer *FrameTimer) Average(name string) time.Duration {
	if s, ok := timer.spans[name]; ok {
		return s.average
	}
	return 0
}

// String lists the averages in the order the spans were first used,
// suitable for a window title.
func (timer *FrameTimer) String() string {
	var out []byte
	for i, name := range timer.order {
		if i > 0 {
			out = append(out, '\t')
		}
		out = append(out, name...)
		out = append(out, ":\t"...)
		out = append(out, timer.spans[name].average.Round(time.Microsecond).String()...)
	}
	return string(out)
}
