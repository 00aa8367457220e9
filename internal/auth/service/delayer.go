package service

import (
	"math/rand/v2"
	"time"
)

// Default bounds of the unknown-token delay.
const (
	DefaultMinDelay = 200 * time.Millisecond
	DefaultMaxDelay = 400 * time.Millisecond
)

// randomDelayer sleeps for a duration drawn uniformly from [min, max).
type randomDelayer struct {
	min    time.Duration
	max    time.Duration
	sleep  func(time.Duration)
	int64n func(int64) int64
}

// NewRandomDelayer creates a Delayer sampling uniformly from [min, max).
// Negative bounds are treated as zero; when max <= min every delay is exactly min.
func NewRandomDelayer(min, max time.Duration) Delayer {
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	return &randomDelayer{
		min:    min,
		max:    max,
		sleep:  time.Sleep,
		int64n: rand.Int64N,
	}
}

// Delay sleeps the calling goroutine and returns the sampled duration.
func (d *randomDelayer) Delay() time.Duration {
	wait := d.next()
	d.sleep(wait)
	return wait
}

// next samples the next delay.
func (d *randomDelayer) next() time.Duration {
	span := d.max - d.min
	if span <= 0 {
		return d.min
	}
	return d.min + time.Duration(d.int64n(int64(span)))
}
