package webstorage

import (
	"fmt"
	"strings"
)

// Mechanism names a persistence mechanism.
type Mechanism string

const (
	MechanismCookie  Mechanism = "cookie"
	MechanismLocal   Mechanism = "localStorage"
	MechanismSession Mechanism = "sessionStorage"
	// MechanismNone identifies NopStorage.
	MechanismNone Mechanism = "none"
)

// ParseMechanism maps a user supplied name to a Mechanism. Matching
// ignores case and accepts "local" and "session" as shorthands.
func ParseMechanism(name string) (Mechanism, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cookie", "cookies":
		return MechanismCookie, nil
	case "localstorage", "local":
		return MechanismLocal, nil
	case "sessionstorage", "session":
		return MechanismSession, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMechanism, name)
}

// Environment hands out the capability handles of a page. Any method may
// fail or panic, as a privacy-restricted browser does when a script
// touches blocked storage; the Detector treats both as "unsupported".
type Environment interface {
	// CookieEnabled reports whether cookies may be used.
	CookieEnabled() (bool, error)
	// Cookies returns the raw cookie string accessor.
	Cookies() RawCookies
	// LocalStorage returns the local storage handle, nil when absent.
	LocalStorage() (NativeStorage, error)
	// SessionStorage returns the session storage handle, nil when absent.
	SessionStorage() (NativeStorage, error)
}

// StaticEnv is an Environment built from fixed handles. A nil handle
// means the mechanism does not exist.
type StaticEnv struct {
	Document        RawCookies
	CookiesDisabled bool
	Local           NativeStorage
	Session         NativeStorage
}

func (e StaticEnv) CookieEnabled() (bool, error) {
	return e.Document != nil && !e.CookiesDisabled, nil
}

func (e StaticEnv) Cookies() RawCookies {
	return e.Document
}

func (e StaticEnv) LocalStorage() (NativeStorage, error) {
	return e.Local, nil
}

func (e StaticEnv) SessionStorage() (NativeStorage, error) {
	return e.Session, nil
}

var _ Environment = StaticEnv{}
