// Package evidence reads the supporting documents of a case and turns them
// into text for classification. Binary parsing of PDF/Word content sits
// behind the TextExtractor interface; this package owns file discovery,
// format screening, and the concurrent fan-out.
package evidence

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"caseprep/internal/fault"
)

// FileText is one evidence document reduced to plain text.
type FileText struct {
	FileName string
	Text     string
}

// TextExtractor converts a single document file into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

type Reader struct {
	extractor TextExtractor
}

func NewReader(extractor TextExtractor) *Reader {
	return &Reader{extractor: extractor}
}

// ReadAll reads every evidence file under dir. Extraction runs concurrently
// per file (results are independent and order-insensitive) and fans back in
// before returning; a stable name ordering keeps output deterministic. An
// unsupported upload or an unreadable document fails the whole read — those
// are fatal input errors, not per-field conditions.
func (r *Reader) ReadAll(ctx context.Context, dir string) ([]FileText, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !supportedExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			return nil, fault.NewUnsupportedInputFormat(e.Name())
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	results := make([]FileText, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			text, err := r.extractor.ExtractText(gctx, path)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return fault.NewEmptyExtractableText(filepath.Base(path))
			}
			results[i] = FileText{FileName: filepath.Base(path), Text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// PlainText reads a file as UTF-8 text. It serves .txt evidence directly and
// pre-extracted text dumps of PDF/Word documents; a binary payload surfaces
// as unreadable rather than as garbage text.
type PlainText struct{}

func (PlainText) ExtractText(_ context.Context, path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fault.NewEmptyExtractableText(filepath.Base(path))
	}
	return string(b), nil
}
