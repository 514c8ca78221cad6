package cmd

import (
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/afero"

	"github.com/warpdl/warpstore/internal/config"
	"github.com/warpdl/warpstore/internal/native"
	"github.com/warpdl/warpstore/pkg/document"
	"github.com/warpdl/warpstore/pkg/logger"
	"github.com/warpdl/warpstore/pkg/webstorage"
)

// Seams swapped in tests.
var (
	loadConfig           = config.Load
	fileSystem afero.Fs  = afero.NewOsFs()
	logOutput  io.Writer = os.Stderr
)

// session is the emulated page a command operates on: the cookie jar
// replayed from the journal, the local storage database and a
// process-lifetime session storage.
type session struct {
	cfg   config.Config
	log   logger.Logger
	doc   *document.Document
	local *native.SQLiteStorage
	sess  *native.MemoryStorage
	env   webstorage.StaticEnv
	sel   *webstorage.Selector
}

func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	applyFlags(&cfg)
	l := logger.New(logOutput, cfg.Debug)

	doc, err := document.New(cfg.URL,
		document.WithLogger(l),
		document.WithJournal(fileSystem, cfg.CookieJournal()),
	)
	if err != nil {
		l.Close()
		return nil, err
	}
	s := &session{cfg: cfg, log: l, doc: doc}
	s.env = webstorage.StaticEnv{
		Document:        doc,
		CookiesDisabled: cfg.DisableCookies,
	}
	if !cfg.DisableLocal {
		// An unusable database leaves the page without localStorage.
		if local, err := s.openLocal(); err != nil {
			l.Warning("local storage: %v", err)
		} else {
			s.local = local
			s.env.Local = local
		}
	}
	if !cfg.DisableSession {
		s.sess = native.NewMemoryStorage(native.WithQuota(cfg.SessionQuota))
		s.env.Session = s.sess
	}
	s.sel = webstorage.NewSelector(s.env, l)
	return s, nil
}

func applyFlags(cfg *config.Config) {
	if backendName != "" {
		cfg.Backend = backendName
	}
	if pageURL != "" {
		cfg.URL = pageURL
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	cfg.DisableCookies = cfg.DisableCookies || disableCookies
	cfg.DisableLocal = cfg.DisableLocal || disableLocal
	cfg.DisableSession = cfg.DisableSession || disableSession
	cfg.Debug = cfg.Debug || debug
}

func (s *session) openLocal() (*native.SQLiteStorage, error) {
	if err := fileSystem.MkdirAll(s.cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return native.Open(s.cfg.LocalStorageDB(), origin(s.doc.URL()), native.WithLogger(s.log))
}

// storage returns the backend picked for the requested mechanism.
func (s *session) storage() (webstorage.Storage, error) {
	m, err := webstorage.ParseMechanism(s.cfg.Backend)
	if err != nil {
		return nil, err
	}
	return s.sel.Select(m), nil
}

func (s *session) Close() error {
	var err error
	if s.local != nil {
		err = s.local.Close()
	}
	s.log.Close()
	return err
}

// origin reduces a page url to scheme://host, the scope of web storage.
func origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Scheme + "://" + u.Host
}
