// Package toast delivers user facing success/error notifications raised by
// console actions. The library does not render anything itself; embedders
// provide a Notifier that hands the toast to whatever surface displays it.
package toast

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// TitleSuccess is the fixed title of a success notification
	TitleSuccess = "Success"
	// TitleError is the fixed title of an error notification
	TitleError = "Error"
)

// Toast is a single dismissable notification
type Toast struct {
	ID          string
	Title       string
	Description string
}

// New creates a toast with a generated id
func New(title, description string) Toast {
	return Toast{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
	}
}

// Notifier receives toasts as they are raised
type Notifier interface {
	Notify(t Toast)
}

// LogNotifier writes toasts to the log. It is the default sink when an
// embedder has not wired a display surface yet
type LogNotifier struct{}

// Notify implements Notifier
func (LogNotifier) Notify(t Toast) {
	if t.Title == TitleError {
		log.Warn().Str("toastId", t.ID).Str("title", t.Title).
			Msg(t.Description)
		return
	}
	log.Info().Str("toastId", t.ID).Str("title", t.Title).
		Msg(t.Description)
}

// Recorder collects toasts in memory. Embedders that render their own
// notification area drain it; tests assert against it
type Recorder struct {
	mu   sync.Mutex
	list []Toast
}

// Notify implements Notifier
func (r *Recorder) Notify(t Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, t)
}

// Toasts returns a copy of the collected toasts in arrival order
func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Toast, len(r.list))
	copy(out, r.list)
	return out
}

// Reset discards all collected toasts
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = nil
}
