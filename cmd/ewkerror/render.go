package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/ewk/errors"
	"github.com/jmgilman/go/ewk/internal/config"
)

// table is a heading row plus data rows for tabular output.
type table struct {
	header []string
	rows   [][]string
}

// render writes v in the configured format. Table output uses t.
func render(w io.Writer, format string, v interface{}, t table) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.CodeIO, "failed to write json output")
		}
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.CodeIO, "failed to write yaml output")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, errors.CodeIO, "failed to write yaml output")
		}
	default:
		// tabwriter buffers every row; write errors surface from Flush.
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(t.header, "\t"))
		for _, row := range t.rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return errors.Wrap(err, errors.CodeIO, "failed to write table output")
		}
	}
	return nil
}
