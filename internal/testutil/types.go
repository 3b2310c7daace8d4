package testutil

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Common test errors
var (
	ErrTest        = errors.New("test error")
	ErrIntentional = errors.New("intentional error")
	ErrFactory     = errors.New("factory error")
	ErrInitializer = errors.New("initializer error")
	ErrDelegator   = errors.New("delegator error")
)

// Widget is a basic test service.
type Widget struct {
	ID        string
	CreatedAt time.Time
	Label     string
}

// NewWidget creates a widget with a unique ID.
func NewWidget(label string) *Widget {
	return &Widget{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Label:     label,
	}
}

// Greeter is a test service with observable output.
type Greeter struct {
	ID      string
	Message string
}

// NewGreeter creates a greeter with a unique ID.
func NewGreeter(message string) *Greeter {
	return &Greeter{
		ID:      uuid.NewString(),
		Message: message,
	}
}

func (g *Greeter) Greet() string {
	return g.Message
}

// Recorder collects ordered event strings from factories, delegators, and
// initializers across goroutines.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// Counter is a goroutine-safe invocation counter.
type Counter struct {
	mu sync.Mutex
	n  int
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Inc() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.n
}

func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
