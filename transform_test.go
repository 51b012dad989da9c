package overmark

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTransformNilArguments(t *testing.T) {
	t.Parallel()
	if err := Transform(TransformRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if err := Transform(TransformRequest{Source: strings.NewReader("x")}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestTransformStructuralErrorProducesNoOutput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want any
	}{
		{"end without start", "plain {<1} text", &UnmatchedSpanError{}},
		{"duplicate open", "{>a}x{>a}y{<a}{<a}", &DuplicateSpanOpenError{}},
		{"unterminated", "{>a}dangling", &UnterminatedSpanError{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			err := Transform(TransformRequest{
				Source: strings.NewReader(tc.src),
				Writer: &out,
				Format: FormatMarkdown,
			})
			if err == nil {
				t.Fatalf("expected error")
			}
			switch want := tc.want.(type) {
			case *UnmatchedSpanError:
				if !errors.As(err, &want) {
					t.Fatalf("expected UnmatchedSpanError, got %v", err)
				}
			case *DuplicateSpanOpenError:
				if !errors.As(err, &want) {
					t.Fatalf("expected DuplicateSpanOpenError, got %v", err)
				}
			case *UnterminatedSpanError:
				if !errors.As(err, &want) {
					t.Fatalf("expected UnterminatedSpanError, got %v", err)
				}
			}
			if out.Len() != 0 {
				t.Fatalf("structural error must produce zero output, got %q", out.String())
			}
		})
	}
}

func TestTransformIdempotent(t *testing.T) {
	t.Parallel()
	src := "# T\n\nThe {>1}quick {>2}fox{<1}over{<2} dog{^2}\n\n- a\n- b\n"
	first := renderMarkdown(t, src, nil)
	for i := 0; i < 5; i++ {
		if got := renderMarkdown(t, src, nil); got != first {
			t.Fatalf("run %d differs:\n%q\n%q", i, got, first)
		}
	}
}

func TestTransformWithoutRefs(t *testing.T) {
	t.Parallel()
	src := "a {>x}b{^x}{<x} c"
	var out bytes.Buffer
	err := Transform(TransformRequest{
		Source:  strings.NewReader(src),
		Writer:  &out,
		Format:  FormatMarkdown,
		Options: []Option{WithoutRefs(true)},
	})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if strings.Contains(out.String(), "[^x]") {
		t.Fatalf("refs not suppressed: %q", out.String())
	}
}

func TestTransformWithBoundaryLocatorOverride(t *testing.T) {
	t.Parallel()
	// no boundaries: the span survives the paragraph break unsplit
	src := "{>a}one\n\ntwo{<a}"
	var out bytes.Buffer
	err := Transform(TransformRequest{
		Source:  strings.NewReader(src),
		Writer:  &out,
		Format:  FormatMarkdown,
		Options: []Option{WithBoundaryLocator(NoBoundaries{})},
	})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if strings.Count(out.String(), "<mark") != 1 {
		t.Fatalf("expected a single unsplit mark, got %q", out.String())
	}
}

func TestTransformEmptySource(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := Transform(TransformRequest{
		Source: strings.NewReader(""),
		Writer: &out,
		Format: FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected empty output, got %q", out.String())
	}
}

func TestHTTPTransform(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("a {>s}b{<s} c"))
	}))
	defer srv.Close()
	var out bytes.Buffer
	err := HTTPTransform(context.Background(), HTTPTransformRequest{
		URL:    srv.URL,
		Writer: &out,
		Format: FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("HTTPTransform: %v", err)
	}
	want := `a <mark class="om-hl om-default" data-span="s">b</mark> c`
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestHTTPTransformErrors(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	if err := HTTPTransform(context.Background(), HTTPTransformRequest{Writer: &out}); err == nil {
		t.Fatalf("expected error for missing URL")
	}
	if err := HTTPTransform(context.Background(), HTTPTransformRequest{URL: "ftp://x", Writer: &out}); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()
	if err := HTTPTransform(context.Background(), HTTPTransformRequest{URL: srv.URL, Writer: &out}); err == nil {
		t.Fatalf("expected error for http status")
	}
}
