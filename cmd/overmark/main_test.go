package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/overmark/overmark"
)

func TestOpenInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	reader, closer, err := openInputs([]string{path})
	if err != nil {
		t.Fatalf("openInputs file: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	fileURL := "file://" + path
	reader, closer, err = openInputs([]string{fileURL})
	if err != nil {
		t.Fatalf("openInputs file URL: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("stream"))
	}))
	defer srv.Close()
	reader, closer, err = openInputs([]string{srv.URL})
	if err != nil {
		t.Fatalf("openInputs http: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "stream" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}
}

func TestOpenInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(first, []byte("one "), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("two"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	reader, closer, err := openInputs([]string{first, second})
	if err != nil {
		t.Fatalf("openInputs concat: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "one two" {
		t.Fatalf("unexpected concatenated content: %q", string(buf))
	}
}

func TestResolveFormat(t *testing.T) {
	cases := map[string]overmark.Format{
		"markdown": overmark.FormatMarkdown,
		"md":       overmark.FormatMarkdown,
		"term":     overmark.FormatTerm,
		"ansi":     overmark.FormatTerm,
	}
	for input, want := range cases {
		got, err := resolveFormat(input, io.Discard)
		if err != nil {
			t.Fatalf("resolveFormat(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("resolveFormat(%q)=%v want %v", input, got, want)
		}
	}
	if got, err := resolveFormat("auto", io.Discard); err != nil || got != overmark.FormatMarkdown {
		t.Fatalf("resolveFormat(auto) on non-terminal = %v, %v; want markdown", got, err)
	}
	if _, err := resolveFormat("nope", io.Discard); err == nil {
		t.Fatalf("expected error for invalid format value")
	}
}

func TestBoringThemeHasNoPrefixes(t *testing.T) {
	styles := boringTheme().Styles()
	prefixes := []string{
		styles.Text.Prefix,
		styles.Yellow.Prefix,
		styles.Green.Prefix,
		styles.Blue.Prefix,
		styles.Pink.Prefix,
		styles.Purple.Prefix,
		styles.Orange.Prefix,
		styles.Neutral.Prefix,
		styles.Inner.Prefix,
		styles.Stack.Prefix,
		styles.Reference.Prefix,
	}
	for i, prefix := range prefixes {
		if prefix != "" {
			t.Fatalf("expected empty prefix at %d, got %q", i, prefix)
		}
	}
}
