package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/ewk/engine"
	"github.com/jmgilman/go/ewk/errors"
)

const sample = `
errors:
  - name: offline
    domain: WebKitNetworkError
    url: http://example.com/
    description: Could not connect
    code: -1009
  - name: aborted
    domain: WebKitDownloadError
    url: http://x/y
    description: Download cancelled
    code: 3
    cancellation: true
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, doc.Errors, 2)

	assert.Equal(t, Entry{
		Name:        "offline",
		Domain:      engine.DomainNetwork,
		URL:         "http://example.com/",
		Description: "Could not connect",
		Code:        -1009,
	}, doc.Errors[0])
	assert.True(t, doc.Errors[1].Cancellation)
}

func TestParse_Empty(t *testing.T) {
	doc, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Errors)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "errors: [\n"},
		{"unknown field", "errors:\n  - name: a\n    severity: high\n"},
		{"wrong type", "errors:\n  - name: a\n    code: lots\n"},
		{"missing name", "errors:\n  - domain: WebKitPrintError\n"},
		{"duplicate name", "errors:\n  - name: a\n  - name: a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidFixture, errors.GetCode(err))
		})
	}
}

func TestParse_DuplicateContext(t *testing.T) {
	_, err := Parse([]byte("errors:\n  - name: a\n  - name: b\n  - name: a\n"))

	var structured errors.Error
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, 2, structured.Context()["index"])
	assert.Equal(t, 0, structured.Context()["first_index"])
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Errors, 2)
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	var structured errors.Error
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, path, structured.Context()["path"])
}

func TestLoad_InvalidCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("errors:\n  - domain: x\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)

	var structured errors.Error
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, errors.CodeInvalidFixture, structured.Code())
	assert.Equal(t, path, structured.Context()["path"])
	assert.Equal(t, 0, structured.Context()["index"])
}

func TestDocument_EngineErrors(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	named := doc.EngineErrors()
	require.Len(t, named, 2)

	assert.Equal(t, "offline", named[0].Name)
	assert.Equal(t, engine.DomainNetwork, named[0].Error.Domain())
	assert.Equal(t, -1009, named[0].Error.ErrorCode())
	assert.False(t, named[0].Error.PlatformError().IsCancellation())

	assert.Equal(t, "aborted", named[1].Name)
	assert.True(t, named[1].Error.PlatformError().IsCancellation())
	assert.Equal(t, int64(1), named[1].Error.RefCount())
}

func TestDocument_Lookup(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	entry, err := doc.Lookup("aborted")
	require.NoError(t, err)
	assert.Equal(t, engine.DomainDownload, entry.Domain)

	_, err = doc.Lookup("missing")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestLoadFS(t *testing.T) {
	fsys := memfs.New()
	f, err := fsys.Create("fixtures/errors.yaml")
	require.NoError(t, err)
	_, err = f.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	doc, err := LoadFS(fsys, "fixtures/errors.yaml")
	require.NoError(t, err)
	assert.Len(t, doc.Errors, 2)

	_, err = LoadFS(fsys, "fixtures/missing.yaml")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}
