package main

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/ewk/errors"
	"github.com/jmgilman/go/ewk/internal/config"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, stderrors.New("disk full")
}

func TestRender_WriteFailure(t *testing.T) {
	t1 := table{header: []string{"A", "B"}, rows: [][]string{{"1", "2"}}}

	for _, format := range []string{config.OutputTable, config.OutputJSON, config.OutputYAML} {
		t.Run(format, func(t *testing.T) {
			err := render(failingWriter{}, format, []string{"x"}, t1)
			require.Error(t, err)
			assert.Equal(t, errors.CodeIO, errors.GetCode(err))
		})
	}
}
