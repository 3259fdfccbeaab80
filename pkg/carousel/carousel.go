// Package carousel tracks the current slide of an image slider. Timing lives
// with the caller; Carousel only hands out tick tags so a stopped carousel can
// recognize and drop stale ticks.
package carousel

import "time"

// Interval is the default auto-advance period.
const Interval = 5 * time.Second

// Carousel is the slide index plus auto-advance bookkeeping.
type Carousel struct {
	slides  int
	current int

	running bool
	tag     int
}

// New returns a carousel over n slides starting at the first.
func New(n int) *Carousel {
	if n < 0 {
		n = 0
	}
	return &Carousel{slides: n}
}

// Len returns the slide count.
func (c *Carousel) Len() int { return c.slides }

// Current returns the active slide index.
func (c *Carousel) Current() int { return c.current }

// Next advances, wrapping to the first slide.
func (c *Carousel) Next() {
	if c.slides == 0 {
		return
	}
	if c.current == c.slides-1 {
		c.current = 0
		return
	}
	c.current++
}

// Prev steps back, wrapping to the last slide.
func (c *Carousel) Prev() {
	if c.slides == 0 {
		return
	}
	if c.current == 0 {
		c.current = c.slides - 1
		return
	}
	c.current--
}

// Go jumps to slide i; out of range is ignored.
func (c *Carousel) Go(i int) {
	if i < 0 || i >= c.slides {
		return
	}
	c.current = i
}

// Start begins auto-advance and returns the tag the next tick must carry.
func (c *Carousel) Start() int {
	c.running = true
	c.tag++
	return c.tag
}

// Stop ends auto-advance; ticks already scheduled become stale.
func (c *Carousel) Stop() {
	c.running = false
	c.tag++
}

// Running reports whether auto-advance is on.
func (c *Carousel) Running() bool { return c.running }

// Tick handles a scheduled tick carrying tag. It advances and reports true
// when the tick is current, in which case the caller schedules the next one.
func (c *Carousel) Tick(tag int) bool {
	if !c.running || tag != c.tag {
		return false
	}
	c.Next()
	return true
}
