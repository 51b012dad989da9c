package overmark

import (
	"bytes"
	"strings"
	"testing"
)

func renderMarkdown(t *testing.T, src string, metas []SpanMeta) string {
	t.Helper()
	var out bytes.Buffer
	err := Transform(TransformRequest{
		Source:   strings.NewReader(src),
		Writer:   &out,
		Format:   FormatMarkdown,
		Metadata: metas,
	})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	return out.String()
}

func TestMarkdownSingleHighlight(t *testing.T) {
	t.Parallel()
	got := renderMarkdown(t, "a {>s1}b{<s1} c", []SpanMeta{{ID: "s1", Category: "yellow"}})
	want := `a <mark class="om-hl om-yellow" data-span="s1">b</mark> c`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestMarkdownUnknownMetadataDegrades(t *testing.T) {
	t.Parallel()
	got := renderMarkdown(t, "a {>s1}b{<s1} c", nil)
	want := `a <mark class="om-hl om-default" data-span="s1">b</mark> c`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestMarkdownDoubleOverlap(t *testing.T) {
	t.Parallel()
	metas := []SpanMeta{
		{ID: "o", Category: "yellow"},
		{ID: "i", Category: "green"},
	}
	got := renderMarkdown(t, "{>o}out {>i}both{<i} more{<o}", metas)
	want := `<mark class="om-hl om-yellow" data-span="o">out <mark class="om-hl-inner om-green" data-span="i">both</mark> more</mark>`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestMarkdownStackedOverlap(t *testing.T) {
	t.Parallel()
	metas := []SpanMeta{
		{ID: "a", Category: "yellow", Priority: 1},
		{ID: "b", Category: "pink", Priority: 3},
		{ID: "c", Category: "blue", Priority: 2},
	}
	got := renderMarkdown(t, "{>a}{>b}{>c}deep{<a}{<b}{<c}", metas)
	want := `<mark class="om-hl om-stack om-pink" data-layers="3">deep</mark>`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestMarkdownAnnotationRef(t *testing.T) {
	t.Parallel()
	got := renderMarkdown(t, "see {>n}this{^n}{<n}.", nil)
	want := `see <mark class="om-hl om-default" data-span="n">this</mark>[^n].`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestMarkdownCategoryClassSanitized(t *testing.T) {
	t.Parallel()
	got := renderMarkdown(t, "{>x}a{<x}", []SpanMeta{{ID: "x", Category: `Key Point"><script`}})
	if !strings.Contains(got, `class="om-hl om-key-point---script"`) {
		t.Fatalf("category not sanitized: %q", got)
	}
}

// markBalanceCheck walks rendered output and verifies every <mark> has a
// matching </mark> in properly nested order.
func markBalanceCheck(t *testing.T, out string) {
	t.Helper()
	depth := 0
	for i := 0; i < len(out); {
		switch {
		case strings.HasPrefix(out[i:], "<mark"):
			depth++
			j := strings.IndexByte(out[i:], '>')
			if j < 0 {
				t.Fatalf("unterminated mark element at %d in %q", i, out)
			}
			i += j + 1
		case strings.HasPrefix(out[i:], "</mark>"):
			depth--
			if depth < 0 {
				t.Fatalf("close without open at %d in %q", i, out)
			}
			i += len("</mark>")
		default:
			i++
		}
	}
	if depth != 0 {
		t.Fatalf("%d mark elements left open in %q", depth, out)
	}
}

func TestMarkdownWellFormedAcrossBoundaries(t *testing.T) {
	t.Parallel()
	sources := []string{
		"{>a}one\n\ntwo{<a}",
		"# head{>a}ing\n\nbo{<a}dy",
		"- {>a}first\n- second{<a}\n",
		"{>a}x{>b}y{<a}z{<b}\n\n{>c}w{<c}",
		"```\n{>a}code{<a}\n```\ntail",
	}
	for _, src := range sources {
		out := renderMarkdown(t, src, nil)
		markBalanceCheck(t, out)
		if stripMarks(out) != StripMarkers(src) {
			t.Fatalf("content not conserved for %q: %q", src, out)
		}
	}
}

// stripMarks removes mark elements and reference commands from rendered
// Markdown, leaving the plain text.
func stripMarks(out string) string {
	var b strings.Builder
	for i := 0; i < len(out); {
		switch {
		case strings.HasPrefix(out[i:], "<mark"):
			j := strings.IndexByte(out[i:], '>')
			if j < 0 {
				b.WriteString(out[i:])
				return b.String()
			}
			i += j + 1
		case strings.HasPrefix(out[i:], "</mark>"):
			i += len("</mark>")
		case out[i] == '[' && i+1 < len(out) && out[i+1] == '^':
			j := strings.IndexByte(out[i:], ']')
			if j < 0 {
				b.WriteByte(out[i])
				i++
				continue
			}
			i += j + 1
		default:
			b.WriteByte(out[i])
			i++
		}
	}
	return b.String()
}
