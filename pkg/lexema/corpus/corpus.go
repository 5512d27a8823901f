// Package corpus loads a directory of documents into an ordered
// collection of (id, text) pairs.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tundralab/lexema/internal/htmltext"
	"github.com/tundralab/lexema/pkg/lexema/internalerr"
)

// Document is one raw input document before normalization.
type Document struct {
	ID   string
	Text string
}

// LoadDir reads every regular file in dir into a Document, in sorted
// filename order. Subdirectories and dotfiles are skipped. Files with
// an .html or .htm extension are reduced to their visible text; every
// other file is read as plain text.
//
// A document's id is its base filename without the extension; when two
// files would share an id, the later file keeps its full name. An
// empty directory yields an empty corpus, not an error. A missing or
// unreadable directory fails with internalerr.ErrInput.
func LoadDir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir %s: %w: %w", dir, internalerr.ErrInput, err)
	}

	var docs []Document
	used := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		text, err := readDocument(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read document %s: %w: %w", name, internalerr.ErrInput, err)
		}

		id := docID(name, used)
		used[id] = struct{}{}
		docs = append(docs, Document{ID: id, Text: text})
	}

	return docs, nil
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return htmltext.ExtractString(string(data)), nil
	default:
		return string(data), nil
	}
}

func docID(name string, used map[string]struct{}) string {
	id := strings.TrimSuffix(name, filepath.Ext(name))
	if id == "" {
		return name
	}
	if _, taken := used[id]; taken {
		return name
	}
	return id
}
