package webstorage

import (
	"fmt"

	"github.com/warpdl/warpstore/pkg/logger"
)

// Detector probes an Environment for usable mechanisms. Probes never
// fail: errors and panics raised by the environment count as
// "unsupported".
type Detector struct {
	env Environment
	log logger.Logger
}

// NewDetector returns a Detector over env. l may be nil.
func NewDetector(env Environment, l logger.Logger) *Detector {
	return &Detector{env: env, log: logger.OrNop(l)}
}

// Supports reports whether mechanism m is present and enabled. Unknown
// mechanisms are unsupported.
func (d *Detector) Supports(m Mechanism) bool {
	switch m {
	case MechanismCookie:
		_, ok := d.cookies()
		return ok
	case MechanismLocal, MechanismSession:
		_, ok := d.native(m)
		return ok
	}
	return false
}

// cookies returns the raw cookie accessor when cookies are enabled.
func (d *Detector) cookies() (RawCookies, bool) {
	var raw RawCookies
	ok := d.guard(MechanismCookie, func() (bool, error) {
		enabled, err := d.env.CookieEnabled()
		if err != nil || !enabled {
			return false, err
		}
		raw = d.env.Cookies()
		return raw != nil, nil
	})
	return raw, ok
}

// native returns the handle for a local or session mechanism.
func (d *Detector) native(m Mechanism) (NativeStorage, bool) {
	var h NativeStorage
	ok := d.guard(m, func() (bool, error) {
		var err error
		switch m {
		case MechanismLocal:
			h, err = d.env.LocalStorage()
		case MechanismSession:
			h, err = d.env.SessionStorage()
		}
		return err == nil && h != nil, err
	})
	if !ok {
		return nil, false
	}
	return h, true
}

// guard runs probe, converting errors and panics into false.
func (d *Detector) guard(m Mechanism, probe func() (bool, error)) (ok bool) {
	if d.env == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			d.log.Warning("probe %s: %v", m, fmt.Sprint(r))
			ok = false
		}
	}()
	ok, err := probe()
	if err != nil {
		d.log.Warning("probe %s: %v", m, err)
		return false
	}
	return ok
}
