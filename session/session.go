// Package session owns the signed-in user state of a console application.
// A Store is created by the application root at sign in, cleared at sign
// out and handed read-only to everything below it.
package session

import (
	"sync"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode060001 = e.Code0600 + "01"
)

// Role is the closed set of console roles
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleMerchant Role = "Merchant"
)

// ParseRole validates a role string coming from the backend
func ParseRole(s string) (r Role, err error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleMerchant:
		return Role(s), nil
	}
	return "", e.N(ECode060001, e.MsgUnknownRole)
}

// Capabilities lists what a role may see in the console. Screens consult
// this once on mount instead of re-deriving role checks per component.
// This is display gating only; the backend enforces access control
type Capabilities struct {
	ModerateMerchants bool
	ManageManagers    bool
	ViewAllSales      bool
	ConfigurePlatform bool
	FilterByMerchant  bool
}

// CapabilitiesFor returns the capability set of a role
func CapabilitiesFor(r Role) Capabilities {
	switch r {
	case RoleAdmin:
		return Capabilities{
			ModerateMerchants: true,
			ManageManagers:    true,
			ViewAllSales:      true,
			ConfigurePlatform: true,
			FilterByMerchant:  true,
		}
	case RoleManager:
		return Capabilities{
			ModerateMerchants: true,
			ViewAllSales:      true,
			FilterByMerchant:  true,
		}
	case RoleMerchant:
		return Capabilities{}
	}
	return Capabilities{}
}

// Session is the state created by a successful sign in
type Session struct {
	UserID string
	Name   string
	Role   Role
	Token  string
}

// Store holds the current session. It is safe for concurrent use
type Store struct {
	mu sync.RWMutex
	s  *Session
}

// NewStore returns an empty store (signed out)
func NewStore() *Store {
	return &Store{}
}

// SignIn replaces the current session
func (st *Store) SignIn(s Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s = &s
}

// SignOut clears the current session
func (st *Store) SignOut() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s = nil
}

// Current returns a copy of the current session and whether one exists
func (st *Store) Current() (s Session, ok bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.s == nil {
		return Session{}, false
	}
	return *st.s, true
}

// Token returns the bearer token of the current session, or "" when
// signed out. Matches the token source signature of console.Config
func (st *Store) Token() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.s == nil {
		return ""
	}
	return st.s.Token
}
