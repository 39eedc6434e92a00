// Package console collects diagnostics posted by the patch and by the
// externals, the way the plugin's console window shows them.
package console

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Level is the severity of a console message. Lower values are more severe.
type Level int

const (
	// LevelFatal is for errors that leave the instance unusable.
	LevelFatal Level = iota
	// LevelError is for rejected messages and failed operations.
	LevelError
	// LevelNormal is for regular posts.
	LevelNormal
	// LevelLog is for verbose tracing.
	LevelLog
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelFatal:
		return "fatal"
	case LevelError:
		return "error"
	case LevelNormal:
		return "normal"
	case LevelLog:
		return "log"
	default:
		return "unknown"
	}
}

// defaultCapacity is the number of messages kept when New is given zero.
const defaultCapacity = 512

// Message is one console entry.
type Message struct {
	Level Level
	Text  string
	Time  time.Time
}

// Console is a bounded, thread-safe message history. When full, the oldest
// message is dropped. Console must not be used from the audio thread.
type Console struct {
	mu       sync.Mutex
	messages []Message
	capacity int
	mirror   *log.Logger
	now      func() time.Time
}

// New creates a console keeping at most capacity messages.
func New(capacity int) *Console {
	if capacity < 1 {
		capacity = defaultCapacity
	}
	return &Console{
		messages: make([]Message, 0, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

// SetMirror copies every message to l as well. A nil logger disables mirroring.
func (c *Console) SetMirror(l *log.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mirror = l
}

// Post appends a message with the given level.
func (c *Console) Post(level Level, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.messages) == c.capacity {
		copy(c.messages, c.messages[1:])
		c.messages = c.messages[:len(c.messages)-1]
	}
	c.messages = append(c.messages, Message{Level: level, Text: text, Time: c.now()})

	if c.mirror != nil {
		c.mirror.Printf("[%s] %s", level, text)
	}
}

// Errorf posts a formatted error message.
func (c *Console) Errorf(format string, args ...any) {
	c.Post(LevelError, fmt.Sprintf(format, args...))
}

// Printf posts a formatted normal message.
func (c *Console) Printf(format string, args ...any) {
	c.Post(LevelNormal, fmt.Sprintf(format, args...))
}

// Logf posts a formatted verbose message.
func (c *Console) Logf(format string, args ...any) {
	c.Post(LevelLog, fmt.Sprintf(format, args...))
}

// Messages returns a copy of the messages at level or more severe, oldest first.
func (c *Console) Messages(level Level) []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]Message, 0, len(c.messages))
	for _, m := range c.messages {
		if m.Level <= level {
			result = append(result, m)
		}
	}
	return result
}

// Len returns the number of stored messages.
func (c *Console) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// Clear removes all messages.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = c.messages[:0]
}
