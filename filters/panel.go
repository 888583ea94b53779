// Package filters composes the side panel filters that narrow a list
// query. Every control is fully controlled: its displayed selection is
// derived from the screen owned state, and changing a control reports
// exactly one key/value pair back. Combining the pairs into a query is
// the screen's job, not the panel's.
package filters

import (
	"time"

	"github.com/swiftdrop/console-lib/e"
	"github.com/swiftdrop/console-lib/session"
)

const (
	ECode050001 = e.Code0500 + "01"
	ECode050002 = e.Code0500 + "02"
	ECode050003 = e.Code0500 + "03"
)

// Key identifies one filter criterion
type Key string

const (
	KeyRole     Key = "role"
	KeyStatus   Key = "status"
	KeyMerchant Key = "merchant"
	KeyGeofence Key = "geofence"
	KeyCategory Key = "category"
	KeyDate     Key = "date"
)

// State is the screen owned mapping of filter key to selected value.
// The panel reads it to derive selections and never mutates it
type State map[Key]interface{}

// Option is one selectable entry of a Select control
type Option struct {
	Label string
	Value string
}

// Control is one filter widget in a panel
type Control interface {
	FilterKey() Key
	// VisibleTo reports whether the control renders for the viewer's
	// role. Display gating only; the backend enforces access
	VisibleTo(r session.Role) bool
}

// Select is a single choice control with a static or supplied option list
type Select struct {
	Key     Key
	Options []Option
	// HiddenFor lists roles the control is not rendered for, e.g. the
	// merchant selector is pointless when the viewer already is one
	HiddenFor []session.Role
}

// FilterKey implements Control
func (s Select) FilterKey() Key { return s.Key }

// VisibleTo implements Control
func (s Select) VisibleTo(r session.Role) bool {
	for _, hidden := range s.HiddenFor {
		if hidden == r {
			return false
		}
	}
	return true
}

// Selected derives the displayed option from the current state. A state
// value with no matching option reads as no selection
func (s Select) Selected(st State) (o Option, ok bool) {
	v, ok := st[s.Key].(string)
	if !ok {
		return Option{}, false
	}
	for _, o := range s.Options {
		if o.Value == v {
			return o, true
		}
	}
	return Option{}, false
}

// DateControl is a date picker with an upper bound offset from today.
// MaxOffsetDays 0 means no future dates. The bound is UX guidance, not a
// correctness boundary
type DateControl struct {
	Key           Key
	MaxOffsetDays int
	HiddenFor     []session.Role

	// Now is overridable for tests; nil means time.Now
	Now func() time.Time
}

// FilterKey implements Control
func (d DateControl) FilterKey() Key { return d.Key }

// VisibleTo implements Control
func (d DateControl) VisibleTo(r session.Role) bool {
	for _, hidden := range d.HiddenFor {
		if hidden == r {
			return false
		}
	}
	return true
}

// Selected derives the displayed date from the current state
func (d DateControl) Selected(st State) (t time.Time, ok bool) {
	t, ok = st[d.Key].(time.Time)
	return t, ok
}

func (d DateControl) maxSelectable() time.Time {
	now := time.Now()
	if d.Now != nil {
		now = d.Now()
	}
	y, m, day := now.AddDate(0, 0, d.MaxOffsetDays).Date()
	// End of the allowed day
	return time.Date(y, m, day, 23, 59, 59, 0, now.Location())
}

// OnChange receives exactly the one changed key/value pair
type OnChange func(key Key, value interface{})

// Panel is an ordered set of filter controls bound to one change callback
type Panel struct {
	controls []Control
	onChange OnChange
}

// NewPanel builds a panel over the given controls
func NewPanel(onChange OnChange, controls ...Control) (p *Panel, err error) {
	if onChange == nil {
		return nil, e.N(ECode050001, "filter panel requires an onChange callback")
	}

	return &Panel{
		controls: controls,
		onChange: onChange,
	}, nil
}

// Controls returns the controls visible to the viewer's role, in order
func (p *Panel) Controls(viewer session.Role) (out []Control) {
	for _, c := range p.controls {
		if c.VisibleTo(viewer) {
			out = append(out, c)
		}
	}
	return out
}

// Change reports a new value for one control. It validates the key and,
// for date controls, the upper bound, then invokes the callback with only
// that pair. No batching, no debouncing, no cross field validation
func (p *Panel) Change(key Key, value interface{}) (err error) {
	var ctrl Control
	for _, c := range p.controls {
		if c.FilterKey() == key {
			ctrl = c
			break
		}
	}
	if ctrl == nil {
		return e.N(ECode050002, e.MsgFilterUnknownKey)
	}

	if dc, ok := ctrl.(DateControl); ok {
		if t, ok := value.(time.Time); ok && t.After(dc.maxSelectable()) {
			return e.N(ECode050003, e.MsgFilterDateTooLate)
		}
	}

	p.onChange(key, value)

	return nil
}
