package cmakegen

import (
	"strings"
	"testing"
)

func TestAddError(t *testing.T) {
	cfg := New("foo")
	cfg.AddError("first")
	cfg.AddError("second")
	if got := cfg.Errors(); len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("Errors() = %v, want [first second]", got)
	}
}

func TestSettersRejectUnknownPlatform(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Config)
	}{
		{"AddSupportedPlatform", func(c *Config) { c.AddSupportedPlatform("beos") }},
		{"AddUnsupportedPlatform", func(c *Config) { c.AddUnsupportedPlatform("beos") }},
		{"SetPlatformVariable", func(c *Config) { c.SetPlatformVariable("beos", "X", "1") }},
		{"AddPlatformScriptTarget", func(c *Config) { c.AddPlatformScriptTarget("beos", "m") }},
		{"AddPlatformNativeTarget", func(c *Config) { c.AddPlatformNativeTarget("beos", "m") }},
	}
	for _, tt := range tests {
		cfg := New("foo")
		tt.call(cfg)

		if len(cfg.errors) != 1 {
			t.Fatalf("%s: got %d errors, want 1", tt.name, len(cfg.errors))
		}
		want := "unsupported platform 'beos': no CMake equivalent defined"
		if cfg.errors[0] != want {
			t.Fatalf("%s: error = %q, want %q", tt.name, cfg.errors[0], want)
		}
		if len(cfg.supported)+len(cfg.unsupported) != 0 {
			t.Fatalf("%s: platform lists mutated", tt.name)
		}
		if len(cfg.platformVars)+len(cfg.platformScript)+len(cfg.platformNative) != 0 {
			t.Fatalf("%s: override scopes mutated", tt.name)
		}
		if len(cfg.variables)+len(cfg.scriptTargets)+len(cfg.nativeTargets) != 0 {
			t.Fatalf("%s: default scopes mutated", tt.name)
		}
	}
}

func TestSettersRecordValidInput(t *testing.T) {
	cfg := New("foo")
	cfg.AddSupportedPlatform("unix")
	cfg.AddUnsupportedPlatform("windows")
	cfg.SetVariable("LUA_VERSION", "5.1")
	cfg.SetPlatformVariable("macosx", "CC", "clang")
	cfg.AddScriptTarget("foo.init")
	cfg.AddPlatformScriptTarget("linux", "foo.epoll")
	cfg.AddNativeTarget("foo.core")
	cfg.AddPlatformNativeTarget("win32", "foo.winsock")

	if len(cfg.errors) != 0 {
		t.Fatalf("unexpected errors: %v", cfg.errors)
	}
	if cfg.supported[0] != "unix" || cfg.unsupported[0] != "windows" {
		t.Fatalf("platform lists = %v / %v", cfg.supported, cfg.unsupported)
	}
	if cfg.variables["LUA_VERSION"] != "5.1" {
		t.Fatalf("variables = %v", cfg.variables)
	}
	if cfg.platformVars["macosx"]["CC"] != "clang" {
		t.Fatalf("platformVars = %v", cfg.platformVars)
	}
	if cfg.scriptTargets[0] != "foo.init" || cfg.platformScript["linux"][0] != "foo.epoll" {
		t.Fatalf("script targets = %v / %v", cfg.scriptTargets, cfg.platformScript)
	}
	if cfg.nativeTargets[0] != "foo.core" || cfg.platformNative["win32"][0] != "foo.winsock" {
		t.Fatalf("native targets = %v / %v", cfg.nativeTargets, cfg.platformNative)
	}
}

func TestDuplicateTargetsPreserved(t *testing.T) {
	cfg := New("foo")
	cfg.AddScriptTarget("foo.util")
	cfg.AddScriptTarget("foo.util")
	if len(cfg.scriptTargets) != 2 {
		t.Fatalf("scriptTargets = %v, want duplicate preserved", cfg.scriptTargets)
	}
	out := cfg.Render()
	if got := strings.Count(out, "RENAME util.lua"); got != 2 {
		t.Fatalf("got %d installs for duplicated target, want 2", got)
	}
}
