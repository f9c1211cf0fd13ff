package game

// Countdown is the lobby timeout timer. It only runs while explicitly
// started and latches its trigger so it cannot fire twice.
type Countdown struct {
	remaining float64
	duration  float64
	active    bool
	triggered bool
}

// NewCountdown creates a stopped countdown with the given duration in
// seconds.
func NewCountdown(seconds float64) *Countdown {
	return &Countdown{remaining: seconds, duration: seconds}
}

// Start activates the countdown from its current remaining time.
func (t *Countdown) Start() {
	t.active = true
}

// Stop deactivates the countdown without resetting it.
func (t *Countdown) Stop() {
	t.active = false
}

// Reset restores the full duration and clears the trigger latch.
func (t *Countdown) Reset() {
	t.remaining = t.duration
	t.active = false
	t.triggered = false
}

// Update advances the countdown by dt seconds and reports whether it
// fired on this tick. The trigger is at-most-once per Reset.
func (t *Countdown) Update(dt float64) bool {
	if !t.active || t.triggered {
		return false
	}

	t.remaining -= dt
	// Absorb float accumulation drift so N updates of duration/N land on zero.
	if t.remaining < 1e-9 {
		t.remaining = 0
	}
	if t.remaining == 0 {
		t.triggered = true
		t.active = false
		return true
	}
	return false
}

// Remaining returns the time left in seconds, never negative.
func (t *Countdown) Remaining() float64 {
	return t.remaining
}

// Active reports whether the countdown is running.
func (t *Countdown) Active() bool {
	return t.active
}

// Triggered reports whether the countdown has fired since the last Reset.
func (t *Countdown) Triggered() bool {
	return t.triggered
}
