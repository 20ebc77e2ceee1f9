// Package fixture loads engine error descriptions from YAML documents.
//
// A document lists named errors:
//
//	errors:
//	  - name: offline
//	    domain: WebKitNetworkError
//	    url: http://example.com/
//	    description: Could not connect
//	    code: -1009
//	    cancellation: false
//
// Each entry becomes an engine.StaticError.
package fixture

import (
	"bytes"
	"io"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/ewk/engine"
	"github.com/jmgilman/go/ewk/errors"
)

// Entry is one engine error in a fixture document.
type Entry struct {
	Name         string `yaml:"name"`
	Domain       string `yaml:"domain"`
	URL          string `yaml:"url"`
	Description  string `yaml:"description"`
	Code         int    `yaml:"code"`
	Cancellation bool   `yaml:"cancellation"`
}

// Spec converts the entry to an engine.Spec.
func (e Entry) Spec() engine.Spec {
	return engine.Spec{
		Domain:       e.Domain,
		URL:          e.URL,
		Description:  e.Description,
		Code:         e.Code,
		Cancellation: e.Cancellation,
	}
}

// Document is a decoded fixture file.
type Document struct {
	Errors []Entry `yaml:"errors"`
}

// Named is an engine error together with its fixture name.
type Named struct {
	Name  string
	Error *engine.StaticError
}

// Decode reads a fixture document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, errors.Wrap(err, errors.CodeInvalidFixture, "failed to decode fixture")
	}

	seen := make(map[string]int, len(doc.Errors))
	for i, entry := range doc.Errors {
		if entry.Name == "" {
			return nil, errors.WithContext(
				errors.Newf(errors.CodeInvalidFixture, "entry %d has no name", i),
				"index", i,
			)
		}
		if first, ok := seen[entry.Name]; ok {
			return nil, errors.WithContextMap(
				errors.Newf(errors.CodeInvalidFixture, "duplicate entry name %q", entry.Name),
				map[string]interface{}{"index": i, "first_index": first},
			)
		}
		seen[entry.Name] = i
	}

	return &doc, nil
}

// Parse decodes a fixture document held in memory.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the fixture file at path on the local disk.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	return load(f, err, path)
}

// LoadFS reads and decodes the fixture file at path within fsys.
func LoadFS(fsys billy.Basic, path string) (*Document, error) {
	f, err := fsys.Open(path)
	return load(f, err, path)
}

func load(f io.ReadCloser, err error, path string) (*Document, error) {
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithContext(
				errors.Wrap(err, errors.CodeNotFound, "fixture not found"),
				"path", path,
			)
		}
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeIO, "failed to open fixture"),
			"path", path,
		)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, errors.WithContext(err, "path", path)
	}
	return doc, nil
}

// EngineErrors builds one engine error per entry, in document order.
func (d *Document) EngineErrors() []Named {
	out := make([]Named, 0, len(d.Errors))
	for _, entry := range d.Errors {
		out = append(out, Named{
			Name:  entry.Name,
			Error: engine.NewStaticError(entry.Spec()),
		})
	}
	return out
}

// Lookup returns the entry with the given name.
func (d *Document) Lookup(name string) (Entry, error) {
	for _, entry := range d.Errors {
		if entry.Name == name {
			return entry, nil
		}
	}
	return Entry{}, errors.WithContext(
		errors.Newf(errors.CodeNotFound, "no fixture entry named %q", name),
		"name", name,
	)
}
