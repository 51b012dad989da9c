package overmark

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"
)

// benchCorpus synthesizes a deterministic annotated document: paragraphs
// of words with overlapping spans and annotation references, in the same
// shape cmd/gen-corpus produces.
func benchCorpus(paragraphs int) (string, []SpanMeta) {
	rng := rand.New(rand.NewSource(1))
	categories := []string{"yellow", "green", "blue", "pink", "purple", "orange"}
	var metas []SpanMeta
	var b strings.Builder
	var open []SpanID
	next := 0
	closeOne := func() {
		i := rng.Intn(len(open))
		fmt.Fprintf(&b, "{<%s}", open[i])
		if rng.Intn(3) == 0 {
			fmt.Fprintf(&b, "{^%s}", open[i])
		}
		open = append(open[:i], open[i+1:]...)
	}
	for p := 0; p < paragraphs; p++ {
		if p%7 == 0 {
			fmt.Fprintf(&b, "## Section %d\n\n", p)
		}
		n := 10 + rng.Intn(25)
		for w := 0; w < n; w++ {
			if w > 0 {
				b.WriteByte(' ')
			}
			if len(open) < 4 && rng.Intn(6) == 0 {
				id := SpanID(fmt.Sprintf("s%d", next))
				metas = append(metas, SpanMeta{
					ID:       id,
					Category: categories[next%len(categories)],
					Priority: next % 5,
				})
				next++
				fmt.Fprintf(&b, "{>%s}", id)
				open = append(open, id)
			}
			fmt.Fprintf(&b, "word%d", w)
			if len(open) > 0 && rng.Intn(5) == 0 {
				closeOne()
			}
		}
		for len(open) > 0 && rng.Intn(2) == 0 {
			closeOne()
		}
		b.WriteString("\n\n")
	}
	for len(open) > 0 {
		closeOne()
	}
	b.WriteString("\n")
	return b.String(), metas
}

func BenchmarkTokenize(b *testing.B) {
	src, _ := benchCorpus(200)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Tokenize(src)
	}
}

func BenchmarkBuildRegions(b *testing.B) {
	src, _ := benchCorpus(200)
	toks := Tokenize(src)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BuildRegions(toks); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransformMarkdown(b *testing.B) {
	src, metas := benchCorpus(200)
	data := []byte(src)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	reader := bytes.NewReader(data)
	var out bytes.Buffer
	out.Grow(len(data) * 2)
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		out.Reset()
		err := Transform(TransformRequest{
			Source:   reader,
			Writer:   &out,
			Format:   FormatMarkdown,
			Metadata: metas,
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransformTermWrapped(b *testing.B) {
	src, metas := benchCorpus(200)
	data := []byte(src)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	reader := bytes.NewReader(data)
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		err := Transform(TransformRequest{
			Source:   reader,
			Writer:   io.Discard,
			Format:   FormatTerm,
			Width:    80,
			Metadata: metas,
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func TestTransformAllocations(t *testing.T) {
	src, metas := benchCorpus(50)
	data := []byte(src)
	allocs := testing.AllocsPerRun(100, func() {
		var out bytes.Buffer
		_ = Transform(TransformRequest{
			Source:   bytes.NewReader(data),
			Writer:   &out,
			Format:   FormatMarkdown,
			Metadata: metas,
		})
	})
	if allocs > 6000 {
		t.Fatalf("too many allocations per Transform: got %.2f", allocs)
	}
}
