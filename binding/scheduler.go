package binding

import (
	"sync"
	"time"
)

// TaskScheduler schedules a task to run once after a delay. The task runs
// on the scheduler's own goroutine, concurrently with caller threads.
type TaskScheduler interface {
	Schedule(task func(), delay time.Duration)
}

// TimerScheduler is a timer-backed TaskScheduler. Stop cancels all
// outstanding tasks; tasks scheduled after Stop are dropped.
type TimerScheduler struct {
	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	stopped bool
}

// NewTimerScheduler creates a running TimerScheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[*time.Timer]struct{}),
	}
}

// Schedule implements TaskScheduler.
func (s *TimerScheduler) Schedule(task func(), delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		stopped := s.stopped
		delete(s.timers, timer)
		s.mu.Unlock()
		if !stopped {
			task()
		}
	})
	s.timers[timer] = struct{}{}
}

// Stop cancels outstanding tasks and rejects new ones.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for timer := range s.timers {
		timer.Stop()
	}
	s.timers = make(map[*time.Timer]struct{})
}
