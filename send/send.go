package send

import (
	"github.com/rohanthewiz/rweb/v2"
	"github.com/rohanthewiz/rweb/v2/consts"
	"github.com/rohanthewiz/rweb/v2/overview"
)

// CSS sends the body with the content type set to `text/css`.
func CSS(ctx rweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMECSS)
	return ctx.WriteString(body)
}

// HTML sends the body with the content type set to `text/html`.
func HTML(ctx rweb.Context, body string) error {
	return ctx.WriteHTML(body)
}

// JSON encodes the object in JSON format and sends it with the content type set to `application/json`.
func JSON(ctx rweb.Context, object any) error {
	return ctx.WriteJSON(object)
}

// Text sends the body with the content type set to `text/plain`.
func Text(ctx rweb.Context, body string) error {
	return ctx.WriteText(body)
}

// RouteOverview sends the overview page of the given routes.
// Handy for serving a filtered or merged route list from several servers.
func RouteOverview(ctx rweb.Context, entries []overview.RouteEntry) error {
	return ctx.WriteHTML(overview.Render(entries))
}
