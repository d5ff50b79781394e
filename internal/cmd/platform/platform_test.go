package platform

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("platform", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr == "" {
		t.Fatal("expected default addr")
	}
	if cfg.DBPath == "" {
		t.Fatal("expected default db path")
	}
}

func TestParseConfigFlagsOverride(t *testing.T) {
	fs := flag.NewFlagSet("platform", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-addr", ":9999", "-db", "/tmp/test.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("addr = %q, want :9999", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Fatalf("db path = %q, want /tmp/test.db", cfg.DBPath)
	}
}
