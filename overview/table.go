package overview

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// TableOpts tunes WriteTable output.
type TableOpts struct {
	// Boxed draws light box borders around the table, for terminals
	Boxed bool
}

// WriteTable writes the routes as a plain-text table, one line per route in the order given.
// A nil namer uses the default one.
func WriteTable(w io.Writer, entries []RouteEntry, namer *Namer, opts ...TableOpts) error {
	if namer == nil {
		namer = defaultNamer
	}

	var opt TableOpts
	if len(opts) > 0 {
		opt = opts[0]
	}

	data := make([][]string, 0, len(entries))
	for _, entry := range entries {
		data = append(data, []string{
			entry.Method, entry.Path, namer.NameOf(entry.Handler), entry.RolesLabel(),
		})
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(rendition(opt))),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Formatting:   tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:    tw.CellAlignment{Global: tw.AlignLeft},
				ColMaxWidths: tw.CellWidth{Global: 80},
			},
		}),
	)

	table.Header([]string{"Method", "Path", "Handler", "Roles"})
	if err := table.Bulk(data); err != nil {
		return err
	}

	return table.Render()
}

func rendition(opt TableOpts) tw.Rendition {
	if opt.Boxed {
		return tw.Rendition{
			Borders: tw.Border{Left: tw.On, Right: tw.On, Top: tw.On, Bottom: tw.On},
			Symbols: tw.NewSymbols(tw.StyleLight),
			Settings: tw.Settings{
				Lines:      tw.Lines{ShowHeaderLine: tw.On},
				Separators: tw.Separators{BetweenColumns: tw.On},
			},
		}
	}

	return tw.Rendition{
		Borders: tw.BorderNone,
		Symbols: tw.NewSymbols(tw.StyleASCII),
		Settings: tw.Settings{
			Lines: tw.Lines{
				ShowHeaderLine: tw.Off,
				ShowFooterLine: tw.Off,
				ShowTop:        tw.Off,
				ShowBottom:     tw.Off,
			},
			Separators: tw.Separators{
				ShowHeader:     tw.Off,
				ShowFooter:     tw.Off,
				BetweenRows:    tw.Off,
				BetweenColumns: tw.Off,
			},
		},
	}
}
