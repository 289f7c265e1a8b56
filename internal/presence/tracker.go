// Package presence implements the in-memory last-activity tracker that backs
// the online/offline indicator. It is the only shared mutable state in the
// process outside the database.
//
// The tracker is a thin layer over sync.Map: Touch and Online may be called
// from arbitrarily many request goroutines without a global lock. Entries are
// never evicted; the key space is bounded by the number of distinct usernames
// that ever act, and the map holds no external resources, so there is no
// teardown. State is lost on restart, which is acceptable for a soft presence
// signal.
package presence

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultWindow is how recently a user must have acted to count as online.
const DefaultWindow = 5 * time.Second

var trackedUsers = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "presence_tracked_users",
	Help: "Number of distinct usernames with a recorded last-activity timestamp.",
})

func init() {
	prometheus.MustRegister(trackedUsers)
}

// Tracker records the last-activity timestamp per username. The zero value is
// not usable; construct with New. Safe for concurrent use.
type Tracker struct {
	window time.Duration
	now    func() time.Time
	seen   sync.Map // username -> unix milliseconds (int64)
	keys   sync.Map // usernames ever seen, for the gauge
}

// New returns a Tracker considering users online while their last activity is
// strictly less than window ago. A non-positive window falls back to
// DefaultWindow.
func New(window time.Duration) *Tracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tracker{window: window, now: time.Now}
}

// Touch records the current wall-clock time as the user's last activity.
// Concurrent touches for the same key are last-writer-wins; each write is
// atomic. Touch never fails.
func (t *Tracker) Touch(username string) {
	t.seen.Store(username, t.now().UnixMilli())
	if _, loaded := t.keys.LoadOrStore(username, struct{}{}); !loaded {
		trackedUsers.Inc()
	}
}

// LastSeen returns the recorded last-activity time in unix milliseconds and
// whether the user has ever been seen.
func (t *Tracker) LastSeen(username string) (int64, bool) {
	v, ok := t.seen.Load(username)
	if !ok {
		return 0, false
	}
	return v.(int64), true
}

// OnlineAt reports whether the user acted within the window before now.
// Reads never block writers; a read racing a Touch may observe the previous
// timestamp, which only makes the indicator momentarily stale.
func (t *Tracker) OnlineAt(username string, now time.Time) bool {
	ms, ok := t.seen.Load(username)
	if !ok {
		return false
	}
	return now.UnixMilli()-ms.(int64) < t.window.Milliseconds()
}

// Online is OnlineAt evaluated against the wall clock.
func (t *Tracker) Online(username string) bool {
	return t.OnlineAt(username, t.now())
}
