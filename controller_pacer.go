package monologue

import "github.com/edwinsyarief/monologue/jitter"

// Millisecond accumulator shared by character reveals and
// indicator blinks. The accumulator may go negative: after a
// page completes or the indicator toggles, it's rewound by the
// blink interval plus the current reveal threshold, so the next
// toggle happens on the same threshold check used for reveals.
type pacer struct {
	elapsed int
	jitter  int
}

func (self *pacer) reset() {
	self.elapsed = 0
	self.jitter = 0
}

func (self *pacer) elapse(millis int) {
	self.elapsed += millis
}

func (self *pacer) threshold(revealInterval int) int {
	return revealInterval + self.jitter
}

func (self *pacer) due(revealInterval int) bool {
	return self.elapsed >= self.threshold(revealInterval)
}

func (self *pacer) restart() {
	self.elapsed = 0
}

func (self *pacer) rewind(blinkInterval, revealInterval int) {
	self.elapsed = -(blinkInterval + self.threshold(revealInterval))
}

func (self *pacer) resample(sampler jitter.Sampler, bound int) {
	self.jitter = sampler.Sample(bound)
}
