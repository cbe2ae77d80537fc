package overview

import (
	"github.com/rohanthewiz/element"
)

// Renderer builds the route overview page.
type Renderer struct {
	Namer *Namer
}

// Render returns the overview page for the given routes using the default Namer.
func Render(entries []RouteEntry) string {
	return (&Renderer{}).Render(entries)
}

// Render returns a self-contained HTML page (inline styles, no external assets)
// with one table row per entry, in the order given.
// Cell content is written as is, so paths or roles carrying markup will show up in the page.
func (r *Renderer) Render(entries []RouteEntry) string {
	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1"),
			b.Style().T(pageCSS),
		),
		b.Body().R(
			b.Table().R(
				b.THead().R(
					b.Tr("class", "method").R(
						b.Td("width", "90px").T("Method"),
						b.Td().T("Path"),
						b.Td().T("Handler"),
						b.Td().T("Roles"),
					),
				),
				b.TBody().R(
					r.rows(b, entries),
				),
			),
		),
	)

	return b.String()
}

// rows writes one row per entry into the builder
func (r *Renderer) rows(b *element.Builder, entries []RouteEntry) any {
	namer := r.Namer
	if namer == nil {
		namer = defaultNamer
	}

	for _, entry := range entries {
		b.Tr("class", "method "+entry.Method).R(
			b.Td().T(entry.Method),
			b.Td().T(entry.Path),
			b.Td().R(
				b.Strong().T(namer.NameOf(entry.Handler)),
			),
			b.Td().T(entry.RolesLabel()),
		)
	}
	return nil
}

// pageCSS gives each method token its own background class
const pageCSS = `
* {
    box-sizing: border-box;
}
strong, thead {
    font-weight: 700;
}
html {
    background: #363e4c;
}
body {
    font-family: monospace;
    padding: 25px;
}
table {
    background: #fff;
    border-spacing: 0;
    font-size: 14px;
    width: 100%;
    white-space: pre;
    box-shadow: 0 5px 25px rgba(0,0,0,0.25);
}
thead {
    background: #1a202b;
    color: #fff;
}
thead td {
    border-bottom: 2px solid #000;
}
tr + tr td {
    border-top: 1px solid rgba(0, 0, 0, 0.25);
}
tr + tr td:first-of-type {
    border-top: 1px solid rgba(0, 0, 0, 0.35);
}
td {
    padding: 10px 15px;
}
tbody td:not(:first-of-type) {
    background-color: rgba(255,255,255,0.925);
}
tbody tr:hover td:not(:first-of-type) {
    background-color: rgba(255,255,255,0.85);
}
.method td:first-of-type {
    text-align: center;
    max-width: 80px;
}
tbody .method td:first-of-type {
    color: #fff;
    text-shadow: 1px 1px 0px rgba(0,0,0,0.15);
    border-left: 6px solid rgba(0, 0, 0, 0.35);
    border-right: 1px solid rgba(0, 0, 0, 0.15);
}
.GET {
    background: #5a76ff;
}
.POST {
    background: #5dca5d;
}
.PUT, .PATCH {
    background: #ef9a00;
}
.DELETE {
    background: #ef4848;
}
.HEAD, .TRACE, .OPTIONS {
    background: #00b9b9;
}
`
