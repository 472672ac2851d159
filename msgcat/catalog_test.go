package msgcat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedMessages(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.Render("panel.turn", map[string]any{"Symbol": "☗", "Side": "Sente"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "☗ Sente to move" {
		t.Fatalf("got %q", got)
	}
	if _, err := c.Render("handicap.two-piece", nil); err != nil {
		t.Fatalf("handicap names should be present: %v", err)
	}
}

func TestRenderMissingDataKey(t *testing.T) {
	c, _ := New("")
	if _, err := c.Render("panel.ply", map[string]any{}); err == nil {
		t.Fatal("missing template data should be an error")
	}
	if got := c.Text("panel.ply", map[string]any{}); got != "panel.ply" {
		t.Fatalf("Text should fall back to the key, got %q", got)
	}
}

func TestRenderUnknownKey(t *testing.T) {
	c, _ := New("")
	if _, err := c.Render("no.such.key", nil); err == nil {
		t.Fatal("expected an error")
	}
	var nilCat *Catalog
	if nilCat.Text("a.b", nil) != "a.b" {
		t.Fatal("nil catalog should echo the key")
	}
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("promotion:\n  promote: \"Naru\"\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644)

	c, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Text("promotion.promote", nil); got != "Naru" {
		t.Fatalf("override not applied, got %q", got)
	}
	if got := c.Text("promotion.keep", nil); got != "Do not promote" {
		t.Fatalf("other keys should keep defaults, got %q", got)
	}
}

func TestOverrideDuplicateKey(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("side:\n  black: \"A\"\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "b.yml"), []byte("side:\n  black: \"B\"\n"), 0o644)
	_, err := New(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestOverrideRejectsNonString(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("panel:\n  ply: 3\n"), 0o644)
	if _, err := New(dir); err == nil {
		t.Fatal("expected an error for a non-string leaf")
	}
}
