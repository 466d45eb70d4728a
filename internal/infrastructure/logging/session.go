package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/reliefpage/internal/ports"
)

const defaultSessionLimit = 500

type sessionLevel int

const (
	sessionDebug sessionLevel = iota
	sessionInfo
	sessionWarn
	sessionError
)

type sessionEntry struct {
	ctx    context.Context
	level  sessionLevel
	msg    string
	fields []interface{}
}

// SessionBuffer holds log entries while a full-screen UI owns the terminal.
// The oldest entries are dropped once the limit is reached.
type SessionBuffer struct {
	mu      sync.Mutex
	limit   int
	entries []sessionEntry
}

// NewSessionBuffer creates a buffer holding at most limit entries.
func NewSessionBuffer(limit int) *SessionBuffer {
	if limit <= 0 {
		limit = defaultSessionLimit
	}
	return &SessionBuffer{limit: limit}
}

// Logger returns a ports.Logger writing into the buffer.
func (b *SessionBuffer) Logger() ports.Logger {
	return &sessionLogger{buffer: b}
}

// Len returns the number of buffered entries.
func (b *SessionBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Flush replays buffered entries into delegate in order and empties the
// buffer.
func (b *SessionBuffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	entries := b.entries
	b.entries = nil
	b.mu.Unlock()

	for _, e := range entries {
		switch e.level {
		case sessionDebug:
			delegate.Debug(e.ctx, e.msg, e.fields...)
		case sessionWarn:
			delegate.Warn(e.ctx, e.msg, e.fields...)
		case sessionError:
			delegate.Error(e.ctx, e.msg, e.fields...)
		default:
			delegate.Info(e.ctx, e.msg, e.fields...)
		}
	}
}

func (b *SessionBuffer) add(e sessionEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) == b.limit {
		b.entries = append(b.entries[:0], b.entries[1:]...)
	}
	b.entries = append(b.entries, e)
}

type sessionLogger struct {
	buffer *SessionBuffer
	fields []interface{}
}

func (l *sessionLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, sessionDebug, msg, fields)
}

func (l *sessionLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, sessionInfo, msg, fields)
}

func (l *sessionLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, sessionWarn, msg, fields)
}

func (l *sessionLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, sessionError, msg, fields)
}

func (l *sessionLogger) With(fields ...interface{}) ports.Logger {
	next := append(append([]interface{}{}, l.fields...), fields...)
	return &sessionLogger{buffer: l.buffer, fields: next}
}

func (l *sessionLogger) log(ctx context.Context, level sessionLevel, msg string, fields []interface{}) {
	payload := append(append([]interface{}{}, l.fields...), fields...)
	l.buffer.add(sessionEntry{ctx: ctx, level: level, msg: msg, fields: payload})
}
