package overmark

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Format selects the output format layer of a transform.
type Format uint8

const (
	// FormatMarkdown emits Markdown with inline mark elements.
	FormatMarkdown Format = iota
	// FormatTerm emits ANSI-styled terminal text.
	FormatTerm
)

var builderPool = sync.Pool{
	New: func() any {
		return &regionBuilder{}
	},
}

var configPool = sync.Pool{
	New: func() any {
		return &transformConfig{}
	},
}

// TransformRequest configures Transform.
type TransformRequest struct {
	Source   io.Reader
	Writer   io.Writer
	Format   Format
	Theme    Theme // FormatTerm only; nil selects the default theme
	Width    int   // FormatTerm only; <= 0 disables wrapping
	Metadata []SpanMeta
	Options  []Option
}

// Transform reads an annotated source, builds its regions and renders
// them as nested markup in the requested format. Structural errors in the
// marker stream abort before the first output byte; metadata misses never
// fail. Span metadata embedded as a YAML front matter block is harvested
// and the block stripped; request metadata overrides it on duplicate ids.
func Transform(req TransformRequest) error {
	if req.Source == nil {
		return fmt.Errorf("transform: source is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("transform: writer is nil")
	}
	cfg := configPool.Get().(*transformConfig)
	*cfg = transformConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(cfg)
		}
	}
	cfgVal := *cfg
	configPool.Put(cfg)

	src, err := readSource(req.Source, cfgVal.maxSourceSize())
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	if err := ValidateSource(src); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	embedded, body := splitFrontMatter(src)

	toks := Tokenize(bytesToString(body))
	builder := builderPool.Get().(*regionBuilder)
	builder.reset()
	regions, err := builder.build(toks)
	builder.regions = nil // returned; do not reuse the backing array
	builderPool.Put(builder)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	meta := resolveMetadata(embedded, req.Metadata)
	locator := cfgVal.locator
	if locator == nil {
		locator = defaultLocator(req.Format)
	}
	bounds := locator.Locate(joinRegionText(regions))

	var enc Encoder
	switch req.Format {
	case FormatTerm:
		enc = NewTermEncoder(req.Writer, req.Theme, req.Width)
	default:
		enc = NewMarkdownEncoder(req.Writer)
	}
	if cfgVal.noRefs {
		enc = noRefEncoder{enc}
	}
	if err := Generate(regions, bounds, meta, enc); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	return nil
}

func defaultLocator(f Format) BoundaryLocator {
	if f == FormatTerm {
		return LineBoundaries{}
	}
	return MarkdownBoundaries{}
}

// readSource reads the whole annotated source, enforcing the size cap.
// The transform needs the full text before the first output byte anyway:
// boundary location and structural validation are whole-document passes.
func readSource(r io.Reader, maxSize int) ([]byte, error) {
	src, err := io.ReadAll(io.LimitReader(r, int64(maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	if len(src) > maxSize {
		return nil, ErrSourceTooLarge
	}
	return src, nil
}

// resolveMetadata merges front matter metadata with the request list.
// Later entries win in NewMetadataSet, so explicit request metadata
// overrides embedded metadata on the same id.
func resolveMetadata(embedded, requested []SpanMeta) *MetadataSet {
	if len(embedded) == 0 && len(requested) == 0 {
		return nil
	}
	if len(embedded) == 0 {
		return NewMetadataSet(requested)
	}
	merged := make([]SpanMeta, 0, len(embedded)+len(requested))
	merged = append(merged, embedded...)
	merged = append(merged, requested...)
	return NewMetadataSet(merged)
}

func joinRegionText(regions []Region) string {
	switch len(regions) {
	case 0:
		return ""
	case 1:
		return regions[0].Text
	}
	n := 0
	for i := range regions {
		n += len(regions[i].Text)
	}
	var b strings.Builder
	b.Grow(n)
	for i := range regions {
		b.WriteString(regions[i].Text)
	}
	return b.String()
}

// noRefEncoder drops annotation reference commands.
type noRefEncoder struct {
	Encoder
}

func (noRefEncoder) Ref(SpanID) error { return nil }
