package webstorage

import (
	"errors"
	"strings"
	"testing"

	"github.com/warpdl/warpstore/pkg/logger"
)

func TestSelector_PicksRequested(t *testing.T) {
	env := StaticEnv{
		Document: newDocument(t),
		Local:    newFakeNative(),
		Session:  newFakeNative(),
	}
	s := NewSelector(env, nil)
	tests := []struct {
		got  Storage
		want Mechanism
	}{
		{s.Cookie(), MechanismCookie},
		{s.LocalStorage(), MechanismLocal},
		{s.SessionStorage(), MechanismSession},
		{s.Select(MechanismLocal), MechanismLocal},
		{s.Select(MechanismSession), MechanismSession},
		{s.Select(MechanismCookie), MechanismCookie},
		{s.Select("bogus"), MechanismCookie},
	}
	for i, tt := range tests {
		if got := BackendOf(tt.got); got != tt.want {
			t.Errorf("case %d: backend = %q, want %q", i, got, tt.want)
		}
	}
}

func TestSelector_FallsBackToCookie(t *testing.T) {
	log := logger.NewMockLogger()
	s := NewSelector(StaticEnv{Document: newDocument(t)}, log)
	if got := BackendOf(s.LocalStorage()); got != MechanismCookie {
		t.Errorf("local fallback = %q, want cookie", got)
	}
	if got := BackendOf(s.SessionStorage()); got != MechanismCookie {
		t.Errorf("session fallback = %q, want cookie", got)
	}
	if len(log.WarningCalls) != 2 {
		t.Errorf("expected a warning per fallback, got %v", log.WarningCalls)
	}
}

func TestSelector_FallsBackToNop(t *testing.T) {
	envs := []Environment{
		StaticEnv{},
		StaticEnv{Document: newDocument(t), CookiesDisabled: true},
		probeEnv{StaticEnv: StaticEnv{Document: newDocument(t)}, cookieErr: errBlocked},
		nil,
	}
	for i, env := range envs {
		s := NewSelector(env, nil)
		for _, st := range []Storage{s.Cookie(), s.LocalStorage(), s.SessionStorage()} {
			if got := BackendOf(st); got != MechanismNone {
				t.Errorf("env %d: backend = %q, want none", i, got)
			}
		}
	}
}

func TestSelector_ProbeFailuresAreUnsupported(t *testing.T) {
	doc := newDocument(t)
	tests := []struct {
		name string
		env  probeEnv
	}{
		{"error", probeEnv{StaticEnv: StaticEnv{Document: doc, Local: newFakeNative()}, localErr: errBlocked}},
		{"panic", probeEnv{StaticEnv: StaticEnv{Document: doc, Local: newFakeNative()}, panicLocal: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := logger.NewMockLogger()
			s := NewSelector(tt.env, log)
			if s.Supports(MechanismLocal) {
				t.Error("failing probe should report unsupported")
			}
			if got := BackendOf(s.LocalStorage()); got != MechanismCookie {
				t.Errorf("backend = %q, want cookie", got)
			}
			found := false
			for _, w := range log.WarningCalls {
				if strings.Contains(w, "probe localStorage") {
					found = true
				}
			}
			if !found {
				t.Errorf("expected probe warning, got %v", log.WarningCalls)
			}
		})
	}
}

func TestSelector_Supports(t *testing.T) {
	s := NewSelector(StaticEnv{Document: newDocument(t), Session: newFakeNative()}, nil)
	tests := []struct {
		m    Mechanism
		want bool
	}{
		{MechanismCookie, true},
		{MechanismLocal, false},
		{MechanismSession, true},
		{MechanismNone, false},
		{"indexedDB", false},
	}
	for _, tt := range tests {
		if got := s.Supports(tt.m); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.m, got, tt.want)
		}
	}
}

func TestNativeStorage_PassThrough(t *testing.T) {
	native := newFakeNative()
	st := NewSelector(StaticEnv{Local: native}, nil).LocalStorage()
	if err := st.SetItem("a", "1", WithPath("/ignored")); err != nil {
		t.Fatal(err)
	}
	st.SetItem("b", "")
	if got, ok := st.GetItem("a"); !ok || got != "1" {
		t.Errorf("GetItem(a) = %q, %v", got, ok)
	}
	// Native storage keeps empty values.
	if got, ok := st.GetItem("b"); !ok || got != "" {
		t.Errorf("GetItem(b) = %q, %v", got, ok)
	}
	if !st.HasOwnProperty("b") || st.HasOwnProperty("c") {
		t.Error("HasOwnProperty mismatch")
	}
	if k, _ := st.Key(1); k != "b" {
		t.Errorf("Key(1) = %q, want b", k)
	}
	if err := st.RemoveItem("missing"); err != nil {
		t.Errorf("RemoveItem of a missing key: %v", err)
	}
	if st.Length() != 2 {
		t.Errorf("Length() = %d, want 2", st.Length())
	}
	if err := st.Clear(); err != nil || st.Length() != 0 {
		t.Errorf("Clear: %v, Length() = %d", err, st.Length())
	}
}

func TestNopStorage(t *testing.T) {
	var st Storage = NopStorage{}
	if err := st.SetItem("a", "1"); err != nil {
		t.Error(err)
	}
	if _, ok := st.GetItem("a"); ok {
		t.Error("NopStorage should hold nothing")
	}
	if err := st.RemoveItem("a"); err != nil {
		t.Error(err)
	}
	if _, ok := st.Key(0); ok {
		t.Error("Key(0) should be absent")
	}
	if st.Length() != 0 || st.HasOwnProperty("a") {
		t.Error("NopStorage should be empty")
	}
	if err := st.Clear(); err != nil {
		t.Error(err)
	}
	if BackendOf(&NopStorage{}) != MechanismNone {
		t.Error("pointer NopStorage should report none")
	}
}

func TestParseMechanism(t *testing.T) {
	tests := []struct {
		in   string
		want Mechanism
	}{
		{"cookie", MechanismCookie},
		{"Cookies", MechanismCookie},
		{"localStorage", MechanismLocal},
		{" local ", MechanismLocal},
		{"SESSIONSTORAGE", MechanismSession},
		{"session", MechanismSession},
	}
	for _, tt := range tests {
		got, err := ParseMechanism(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseMechanism(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseMechanism("indexeddb"); !errors.Is(err, ErrUnknownMechanism) {
		t.Errorf("expected ErrUnknownMechanism, got %v", err)
	}
}
