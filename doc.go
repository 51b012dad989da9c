// Package overmark renders highlight-annotated text as nested output markup.
//
// Input is a flat text stream overlaid with span markers ({>id}, {<id}) and
// annotation references ({^id}). Spans may overlap arbitrarily; output markup
// must nest. The transform runs in three stages: a lenient linear tokenizer,
// a region builder that tracks the set of active spans, and a markup
// generator that replans the output nesting stack per region and splits
// highlights at structural boundaries supplied by the output format layer.
//
// Core properties:
//   - Single linear pass, no grammar backtracking
//   - Region text round-trips byte for byte (output text equals input minus markers)
//   - Structural errors abort before the first byte of output
//   - Format layers (Markdown, ANSI terminal) plug in through Encoder
//
// Example:
//
//	src := strings.NewReader("The {>a}quick {>b}brown{<a} fox{<b} jumps.\n")
//	err := overmark.Transform(overmark.TransformRequest{
//		Source: src,
//		Writer: os.Stdout,
//		Format: overmark.FormatMarkdown,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The transform can be customized using Options such as the source size cap
// or suppression of annotation reference output.
package overmark
