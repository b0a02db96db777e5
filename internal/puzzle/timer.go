package puzzle

// Timer is the cancellation token for a session's periodic tick source.
// Every restart or cancel bumps the epoch, so ticks scheduled under an older
// epoch can be recognised and dropped by the driver.
type Timer struct {
	epoch   uint64
	running bool
}

// Restart cancels any live schedule and issues a new one.
func (t *Timer) Restart() uint64 {
	t.epoch++
	t.running = true
	return t.epoch
}

// Cancel stops the timer. Calling it on a stopped timer is a no-op.
func (t *Timer) Cancel() {
	if !t.running {
		return
	}
	t.epoch++
	t.running = false
}

// Running reports whether a schedule is live.
func (t *Timer) Running() bool {
	return t.running
}

// Epoch returns the token of the current schedule.
func (t *Timer) Epoch() uint64 {
	return t.epoch
}

// Live reports whether a tick tagged with epoch belongs to the current schedule.
func (t *Timer) Live(epoch uint64) bool {
	return t.running && epoch == t.epoch
}
