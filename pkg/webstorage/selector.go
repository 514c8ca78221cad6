package webstorage

import (
	"github.com/warpdl/warpstore/pkg/logger"
)

// Selector hands out a Storage for a requested mechanism, degrading
// requested -> cookie -> NopStorage when a mechanism is unavailable. It
// never returns an error and never returns nil.
type Selector struct {
	detector *Detector
	log      logger.Logger
}

// NewSelector returns a Selector probing env. l may be nil.
func NewSelector(env Environment, l logger.Logger) *Selector {
	l = logger.OrNop(l)
	return &Selector{
		detector: NewDetector(env, l),
		log:      l,
	}
}

// Supports reports whether m is usable in the environment.
func (s *Selector) Supports(m Mechanism) bool {
	return s.detector.Supports(m)
}

// Cookie returns a CookieStore when cookies are enabled, NopStorage
// otherwise.
func (s *Selector) Cookie() Storage {
	raw, ok := s.detector.cookies()
	if !ok {
		s.log.Warning("cookies unavailable, using inert storage")
		return NopStorage{}
	}
	s.log.Info("using %s", MechanismCookie)
	return NewCookieStore(raw)
}

// LocalStorage returns the native local storage, or Cookie() when it is
// unavailable.
func (s *Selector) LocalStorage() Storage {
	return s.nativeOrCookie(MechanismLocal)
}

// SessionStorage returns the native session storage, or Cookie() when it
// is unavailable.
func (s *Selector) SessionStorage() Storage {
	return s.nativeOrCookie(MechanismSession)
}

// Select dispatches to the accessor for m. Unknown mechanisms resolve to
// Cookie().
func (s *Selector) Select(m Mechanism) Storage {
	switch m {
	case MechanismLocal:
		return s.LocalStorage()
	case MechanismSession:
		return s.SessionStorage()
	}
	return s.Cookie()
}

func (s *Selector) nativeOrCookie(m Mechanism) Storage {
	h, ok := s.detector.native(m)
	if !ok {
		s.log.Warning("%s unavailable, falling back to %s", m, MechanismCookie)
		return s.Cookie()
	}
	s.log.Info("using %s", m)
	return &nativeStorage{native: h, mech: m}
}

// BackendOf reports which mechanism backs st.
func BackendOf(st Storage) Mechanism {
	switch v := st.(type) {
	case *CookieStore:
		return MechanismCookie
	case *nativeStorage:
		return v.mech
	case NopStorage, *NopStorage:
		return MechanismNone
	}
	return ""
}
