// Package notify carries user-facing notifications produced by store actions.
package notify

import (
	"context"
	"sync"
	"time"

	"recyclehub/pkg/logger"
)

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one user-facing message.
type Notification struct {
	ID      int64     `json:"id"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Entity  string    `json:"entity"`
	Action  string    `json:"action"`
	Time    time.Time `json:"time"`
}

// Sink receives notifications.
type Sink interface {
	Notify(ctx context.Context, n Notification)
}

// --- Feed ---

// DefaultFeedSize is the capacity used when none is given.
const DefaultFeedSize = 100

// Feed keeps the most recent notifications in a bounded ring buffer.
type Feed struct {
	mu     sync.Mutex
	buf    []Notification
	next   int
	full   bool
	lastID int64
	now    func() time.Time
}

// NewFeed creates a feed holding at most size notifications.
func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{
		buf: make([]Notification, size),
		now: time.Now,
	}
}

// Notify stores n, evicting the oldest entry when full.
func (f *Feed) Notify(_ context.Context, n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastID++
	n.ID = f.lastID
	if n.Time.IsZero() {
		n.Time = f.now()
	}

	f.buf[f.next] = n
	f.next = (f.next + 1) % len(f.buf)
	if f.next == 0 {
		f.full = true
	}
}

// List returns the stored notifications, oldest first.
func (f *Feed) List() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.full {
		return append([]Notification{}, f.buf[:f.next]...)
	}
	out := make([]Notification, 0, len(f.buf))
	out = append(out, f.buf[f.next:]...)
	return append(out, f.buf[:f.next]...)
}

// Since returns the notifications with an ID greater than id, oldest first.
func (f *Feed) Since(id int64) []Notification {
	all := f.List()
	for i, n := range all {
		if n.ID > id {
			return all[i:]
		}
	}
	return []Notification{}
}

// --- Log ---

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a notifier backed by log.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.WithComponent("notify")}
}

// Notify logs n at info level, or warn level for errors.
func (l *LogNotifier) Notify(ctx context.Context, n Notification) {
	log := l.log.WithContext(ctx).WithAction(n.Entity, n.Action)
	if n.Level == LevelError {
		log.Warn(n.Message)
		return
	}
	log.Info(n.Message)
}

// --- Fanout ---

type fanout []Sink

// Fanout delivers every notification to each sink in order.
func Fanout(sinks ...Sink) Sink {
	return fanout(sinks)
}

func (f fanout) Notify(ctx context.Context, n Notification) {
	for _, s := range f {
		s.Notify(ctx, n)
	}
}
