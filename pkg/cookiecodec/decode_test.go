package cookiecodec

import (
	"reflect"
	"testing"
)

func TestDecodeAll(t *testing.T) {
	raw := "a=1; b%20c=x%3By;  d = 4 ;e=;nameless"
	got := DecodeAll(raw)
	want := []Entry{
		{"a", "1"},
		{"b c", "x;y"},
		{"d", "4"},
		{"e", ""},
		{"", "nameless"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected entries:\n got  %#v\n want %#v", got, want)
	}
}

func TestDecodeAll_Empty(t *testing.T) {
	if got := DecodeAll(""); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
	if got := DecodeAll(" ;  ; "); len(got) != 0 {
		t.Errorf("expected no entries for separators only, got %v", got)
	}
}

func TestDecodeAll_MalformedEncodingKeptRaw(t *testing.T) {
	got := DecodeAll("k=100%")
	if len(got) != 1 || got[0].Value != "100%" {
		t.Errorf("expected raw value kept, got %v", got)
	}
}

func TestFindValue(t *testing.T) {
	raw := "first=1; sp%20ace=two; dup=a; dup=b"
	tests := []struct {
		key   string
		want  string
		found bool
	}{
		{"first", "1", true},
		{"sp ace", "two", true},
		{"dup", "a", true},
		{"missing", "", false},
		{"fir", "", false},
		{".*", "", false},
		{"(a+)+$", "", false},
	}
	for _, tt := range tests {
		got, ok := FindValue(raw, tt.key)
		if ok != tt.found || got != tt.want {
			t.Errorf("FindValue(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.found)
		}
	}
	if _, ok := FindValue("", "a"); ok {
		t.Error("expected absent on empty raw string")
	}
}

func TestFindValue_SpecialCharacterKeys(t *testing.T) {
	raw := "a.b=1; a%2Bb=2; a*b=3"
	if v, _ := FindValue(raw, "a+b"); v != "2" {
		t.Errorf("expected 2 for a+b, got %q", v)
	}
	if v, _ := FindValue(raw, "a*b"); v != "3" {
		t.Errorf("expected 3 for a*b, got %q", v)
	}
	if HasKey(raw, "aXb") {
		t.Error("'.' must not act as a wildcard")
	}
}

func TestHasKey(t *testing.T) {
	raw := "a=1; empty="
	if !HasKey(raw, "a") || !HasKey(raw, "empty") {
		t.Error("expected keys present")
	}
	if HasKey(raw, "b") || HasKey("", "a") {
		t.Error("expected keys absent")
	}
}

func TestKeys(t *testing.T) {
	got := Keys("x=1; y%2Fz=2; w=3")
	want := []string{"x", "y/z", "w"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"a=1", 1},
		{"a=1; b=2", 2},
		{"a=x=y; b=2", 3},
	}
	for _, tt := range tests {
		if got := Count(tt.raw); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestIsReserved(t *testing.T) {
	for _, k := range []string{"expires", "Max-Age", "PATH", "domain", "Secure"} {
		if !IsReserved(k) {
			t.Errorf("%q should be reserved", k)
		}
	}
	for _, k := range []string{"httponly", "expire", "maxage", ""} {
		if IsReserved(k) {
			t.Errorf("%q should not be reserved", k)
		}
	}
}
