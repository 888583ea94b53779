// Package confirm implements the confirmation dialog contract used for
// every irreversible or state changing console action: open the dialog,
// run exactly one mutation on confirm, invalidate the declared cache keys,
// raise one toast and close. The mutation state is an explicit tagged
// variant so the no-resubmission-while-pending rule is testable on its
// own.
package confirm

import (
	"context"
	"sync"

	"github.com/swiftdrop/console-lib/e"
	"github.com/swiftdrop/console-lib/querycache"
	"github.com/swiftdrop/console-lib/toast"
)

const (
	ECode030001 = e.Code0300 + "01"
	ECode030002 = e.Code0300 + "02"
)

// State is the mutation state of one dialog instance
type State int

const (
	StateIdle State = iota
	StatePending
	StateSuccess
	StateError
)

// String implements fmt.Stringer
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Deps are the shared collaborators of every dialog
type Deps struct {
	Cache    *querycache.Cache
	Registry *querycache.Registry
	Notifier toast.Notifier
}

// Config declares one confirmation dialog
type Config struct {
	// Title and Question are what the dialog renders
	Title    string
	Question string
	// ConfirmLabel is the confirm control label; PendingLabel replaces it
	// while the mutation is in flight ("Delete" / "Deleting...")
	ConfirmLabel string
	PendingLabel string
	// SuccessMessage is the success toast description
	SuccessMessage string
	// Mutation names the action in the invalidation registry; the
	// registry, not the dialog, owns the affected key set
	Mutation querycache.Mutation
	// Run performs the one network call
	Run func(ctx context.Context) error
	// OnClose is called when the dialog closes, on success or cancel
	OnClose func()
	// Navigate, when set, runs after a successful close. Only actions
	// that invalidate the current detail view set it (merchant delete
	// navigates back to the list; manager/tax delete do not)
	Navigate func()
}

// Dialog is one confirmation dialog instance
type Dialog struct {
	cfg  Config
	deps Deps

	mu    sync.Mutex
	open  bool
	state State
}

// New returns a dialog in the closed, idle state
func New(cfg Config, deps Deps) (d *Dialog, err error) {
	if cfg.Run == nil {
		return nil, e.N(ECode030001, "confirm dialog requires a Run func")
	}
	if deps.Cache == nil || deps.Registry == nil || deps.Notifier == nil {
		return nil, e.N(ECode030002, "confirm dialog requires cache, registry and notifier")
	}

	return &Dialog{
		cfg:  cfg,
		deps: deps,
	}, nil
}

// Open shows the dialog. Reopening resets a finished instance to idle
func (d *Dialog) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StatePending {
		d.open = true
		return
	}
	d.open = true
	d.state = StateIdle
}

// Close hides the dialog without side effects (the Cancel control). An
// in-flight mutation is not cancelled; its handlers run against the
// closed dialog without raising UI
func (d *Dialog) Close() {
	d.mu.Lock()
	wasOpen := d.open
	d.open = false
	d.mu.Unlock()

	if wasOpen && d.cfg.OnClose != nil {
		d.cfg.OnClose()
	}
}

// IsOpen reports whether the dialog is showing
func (d *Dialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// State returns the current mutation state
func (d *Dialog) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// ConfirmLabel returns the label the confirm control should render for
// the current state
func (d *Dialog) ConfirmLabel() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StatePending && d.cfg.PendingLabel != "" {
		return d.cfg.PendingLabel
	}
	return d.cfg.ConfirmLabel
}

// Confirm runs the dialog's mutation. While a prior Confirm is pending,
// further calls are no-ops and issue no network call. On success the
// declared cache keys are invalidated, a success toast is raised and the
// dialog closes (then navigates, when configured). On failure an error
// toast is raised and the dialog stays open for retry or cancel
func (d *Dialog) Confirm(ctx context.Context) (err error) {
	d.mu.Lock()
	if !d.open || d.state == StatePending {
		d.mu.Unlock()
		return nil
	}
	d.state = StatePending
	d.mu.Unlock()

	err = d.cfg.Run(ctx)

	if err != nil {
		d.mu.Lock()
		d.state = StateError
		open := d.open
		d.mu.Unlock()

		if open {
			d.deps.Notifier.Notify(toast.New(toast.TitleError, e.UserMessage(err)))
		}
		return err
	}

	d.mu.Lock()
	d.state = StateSuccess
	wasOpen := d.open
	d.open = false
	d.mu.Unlock()

	// Invalidation happens regardless of whether the user closed the
	// dialog mid flight; the data changed server side either way
	keys, kerr := d.deps.Registry.Keys(d.cfg.Mutation)
	if kerr != nil {
		return kerr
	}
	d.deps.Cache.Invalidate(keys...)

	if !wasOpen {
		return nil
	}

	d.deps.Notifier.Notify(toast.New(toast.TitleSuccess, d.cfg.SuccessMessage))

	if d.cfg.OnClose != nil {
		d.cfg.OnClose()
	}
	if d.cfg.Navigate != nil {
		d.cfg.Navigate()
	}

	return nil
}
