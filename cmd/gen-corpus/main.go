package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Synthesizes a deterministic annotated corpus for benchmarks and manual
// testing: a document of paragraphs, headings and lists overlaid with
// overlapping span markers and annotation references, plus a matching
// span metadata file. Span ids are SHA1-namespace UUIDs so reruns with
// the same seed reproduce the corpus byte for byte.
func main() {
	var (
		paragraphs int
		spans      int
		seed       int64
		outPath    string
		metaPath   string
	)
	flags := pflag.NewFlagSet("gen-corpus", pflag.ExitOnError)
	flags.IntVar(&paragraphs, "paragraphs", 200, "Number of paragraphs")
	flags.IntVar(&spans, "spans", 120, "Number of highlight spans")
	flags.Int64Var(&seed, "seed", 1, "PRNG seed")
	flags.StringVarP(&outPath, "output", "o", "testdata/corpus.txt", "Corpus output path")
	flags.StringVar(&metaPath, "metadata", "testdata/corpus.meta.yaml", "Metadata output path")
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	doc, metas := synthesize(paragraphs, spans, seed)
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		fatalf("write %s: %v", outPath, err)
	}
	data, err := yaml.Marshal(metadataFile{Spans: metas})
	if err != nil {
		fatalf("marshal metadata: %v", err)
	}
	if err := os.WriteFile(metaPath, data, 0o644); err != nil {
		fatalf("write %s: %v", metaPath, err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s (%d bytes), %s (%d spans)\n", outPath, len(doc), metaPath, len(metas))
}

type spanMeta struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Priority int    `yaml:"priority"`
}

type metadataFile struct {
	Spans []spanMeta `yaml:"spans"`
}

var corpusNamespace = uuid.MustParse("8a4f2f0e-6c1d-4b7a-9f3e-2d5c8b1a0e47")

var words = strings.Fields(`the quick brown fox jumps over a lazy dog while
annotated exports flow through the transform and every span keeps its
identity across block boundaries regions partition text exactly and
interleaved pairs nest properly in the rendered output`)

var categories = []string{"yellow", "green", "blue", "pink", "purple", "orange"}

func synthesize(paragraphs, spans int, seed int64) (string, []spanMeta) {
	rng := rand.New(rand.NewSource(seed))
	ids := make([]string, spans)
	metas := make([]spanMeta, spans)
	for i := range ids {
		id := uuid.NewSHA1(corpusNamespace, []byte(fmt.Sprintf("span-%d", i))).String()
		ids[i] = id
		metas[i] = spanMeta{
			ID:       id,
			Category: categories[rng.Intn(len(categories))],
			Priority: rng.Intn(5),
		}
	}

	var b strings.Builder
	next := 0      // next unused span
	var open []int // spans currently open, in open order
	closeOne := func() {
		// close a random open span, not necessarily the last opened,
		// so the corpus exercises interleaving
		i := rng.Intn(len(open))
		fmt.Fprintf(&b, "{<%s}", ids[open[i]])
		if rng.Intn(3) == 0 {
			fmt.Fprintf(&b, "{^%s}", ids[open[i]])
		}
		open = append(open[:i], open[i+1:]...)
	}
	for p := 0; p < paragraphs; p++ {
		switch rng.Intn(8) {
		case 0:
			fmt.Fprintf(&b, "## %s %s\n\n", word(rng), word(rng))
		case 1:
			for i := 0; i < 3; i++ {
				fmt.Fprintf(&b, "- %s %s %s\n", word(rng), word(rng), word(rng))
			}
			b.WriteString("\n")
		}
		n := 8 + rng.Intn(20)
		for w := 0; w < n; w++ {
			if w > 0 {
				b.WriteByte(' ')
			}
			if next < spans && len(open) < 4 && rng.Intn(6) == 0 {
				fmt.Fprintf(&b, "{>%s}", ids[next])
				open = append(open, next)
				next++
			}
			b.WriteString(word(rng))
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

func word(rng *rand.Rand) string {
	return words[rng.Intn(len(words))]
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
