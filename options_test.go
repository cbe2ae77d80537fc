package rweb_test

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rweb/v2"
	"github.com/rohanthewiz/rweb/v2/overview"
)

func TestServerOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    rweb.ServerOptions
		wantErr string
	}{
		{name: "port only", opts: rweb.ServerOptions{Address: ":8080"}},
		{name: "host and port", opts: rweb.ServerOptions{Address: "127.0.0.1:0"}},
		{name: "overview", opts: rweb.ServerOptions{Address: ":8080", RouteOverviewPath: "/debug/routes",
			RouteOverviewRoles: []overview.Role{"ops"}}},
		{name: "missing address", opts: rweb.ServerOptions{}, wantErr: "Address"},
		{name: "missing port", opts: rweb.ServerOptions{Address: "localhost"}, wantErr: "host:port"},
		{name: "bad port", opts: rweb.ServerOptions{Address: ":http80"}, wantErr: "port number"},
		{name: "relative overview path", opts: rweb.ServerOptions{Address: ":8080", RouteOverviewPath: "routes"},
			wantErr: "absolute path"},
		{name: "empty role", opts: rweb.ServerOptions{Address: ":8080", RouteOverviewRoles: []overview.Role{""}},
			wantErr: "RouteOverviewRoles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.Nil(t, err)
				return
			}
			assert.True(t, err != nil)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr))
		})
	}
}

func TestRunInvalidOptions(t *testing.T) {
	s := rweb.NewServer(rweb.ServerOptions{Address: "localhost"})

	// Fails before listening, so Run doesn't block
	err := s.Run()
	assert.True(t, err != nil)
}
