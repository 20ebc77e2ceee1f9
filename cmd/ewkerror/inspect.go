package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jmgilman/go/ewk"
	"github.com/jmgilman/go/ewk/errors"
	"github.com/jmgilman/go/ewk/fixture"
)

// record is one inspected fixture entry.
type record struct {
	Name         string `json:"name" yaml:"name"`
	ewk.Snapshot `yaml:",inline"`
	Error        *errors.ErrorResponse `json:"error,omitempty" yaml:"error,omitempty"`
}

func newInspectCommand(a *app) *cobra.Command {
	var withErrors bool

	cmd := &cobra.Command{
		Use:   "inspect FILE [NAME...]",
		Short: "Wrap each fixture error in a handle and print what the handle reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.inspect(args[0], args[1:], withErrors)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, records, recordTable(records))
		},
	}

	cmd.Flags().BoolVar(&withErrors, "with-errors", false, "include the structured error form of each handle")
	return cmd
}

// inspect loads path and builds one record per selected entry. Every
// handle and engine reference taken here is released before returning.
func (a *app) inspect(path string, names []string, withErrors bool) ([]record, error) {
	doc, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(names))
	for _, name := range names {
		if _, err := doc.Lookup(name); err != nil {
			return nil, errors.WithContext(err, "path", path)
		}
		selected[name] = true
	}

	var records []record
	for _, named := range doc.EngineErrors() {
		if len(selected) > 0 && !selected[named.Name] {
			named.Error.Release()
			continue
		}

		h := ewk.NewError(named.Error)
		rec := record{Name: named.Name, Snapshot: h.Snapshot()}
		if withErrors {
			rec.Error = errors.ToJSON(h.Err())
		}
		h.Free()
		named.Error.Release()

		a.logger.Debug("inspected fixture entry",
			zap.String("name", rec.Name),
			zap.Stringer("type", rec.Type),
			zap.Int64("refs", named.Error.RefCount()),
		)
		records = append(records, rec)
	}

	return records, nil
}

func recordTable(records []record) table {
	t := table{header: []string{"NAME", "TYPE", "CODE", "CANCELLED", "URL", "DESCRIPTION"}}
	for _, r := range records {
		t.rows = append(t.rows, []string{
			r.Name,
			r.Type.String(),
			strconv.Itoa(r.Code),
			strconv.FormatBool(r.Cancellation),
			r.URL,
			r.Description,
		})
	}
	return t
}
