package gridworld

import "time"

// clock abstracts the wall clock consulted by the world-speed gate, so that
// gate behavior can be tested deterministically.
type clock interface {
	Now() time.Time
}

// systemClock reads the real system time with monotonic clock readings.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// mockClock is a controllable time source for tests.
type mockClock struct {
	current time.Time
}

func newMockClock(start time.Time) *mockClock {
	return &mockClock{current: start}
}

func (m *mockClock) Now() time.Time {
	return m.current
}

// Advance moves the mocked time forward by d.
func (m *mockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
