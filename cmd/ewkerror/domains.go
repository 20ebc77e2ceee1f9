package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/ewk"
)

type domainRow struct {
	Type   ewk.ErrorType `json:"type" yaml:"type"`
	Domain string        `json:"domain" yaml:"domain"`
}

func newDomainsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List the engine domains and the error type each maps to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := domainRows()
			t := table{header: []string{"TYPE", "DOMAIN"}}
			for _, r := range rows {
				t.rows = append(t.rows, []string{r.Type.String(), r.Domain})
			}
			t.rows = append(t.rows, []string{ewk.TypeInternal.String(), "(any other domain)"})
			return render(cmd.OutOrStdout(), a.cfg.Output, rows, t)
		},
	}
}

func domainRows() []domainRow {
	var rows []domainRow
	for t, domain := range ewk.Domains() {
		rows = append(rows, domainRow{Type: t, Domain: domain})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Type < rows[j].Type })
	return rows
}
