package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/overmark/overmark"
)

// Regenerates the Markdown golden files under testdata/. Every *.txt
// fixture is an annotated source; a sidecar <base>.meta.yaml, when
// present, supplies its span metadata.
func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".txt") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no annotated fixtures found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		base := strings.TrimSuffix(path, ".txt")
		var metas []overmark.SpanMeta
		metaPath := base + ".meta.yaml"
		if _, err := os.Stat(metaPath); err == nil {
			metas, err = overmark.LoadMetadata(metaPath)
			if err != nil {
				fatalf("%v", err)
			}
		}
		var out bytes.Buffer
		err = overmark.Transform(overmark.TransformRequest{
			Source:   bytes.NewReader(src),
			Writer:   &out,
			Format:   overmark.FormatMarkdown,
			Metadata: metas,
		})
		if err != nil {
			fatalf("transform %s: %v", path, err)
		}
		goldenPath := base + ".golden"
		if err := os.WriteFile(goldenPath, out.Bytes(), 0o644); err != nil {
			fatalf("write %s: %v", goldenPath, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
