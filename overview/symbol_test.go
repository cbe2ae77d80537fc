package overview

import (
	"testing"

	"github.com/rohanthewiz/assert"
)

func TestParseSymbolMethodName(t *testing.T) {
	tests := []struct {
		symbol string
		owner  string
		method string
		ok     bool
	}{
		{"main.listUsers", "main", "listUsers", true},
		{"github.com/acme/app.listUsers", "github.com/acme/app", "listUsers", true},
		{"github.com/acme/app.(*Users).List-fm", "github.com/acme/app.Users", "List", true},
		{"github.com/acme/app.Users.Show-fm", "github.com/acme/app.Users", "Show", true},
		{"github.com/acme/app.(*Users).List", "github.com/acme/app.Users", "List", true},
		{"github.com/acme/app.(*Store[...]).Get-fm", "github.com/acme/app.Store", "Get", true},
		{"gopkg.in/yaml.v3.(*Users).List-fm", "gopkg.in/yaml.v3.Users", "List", true},
		{"github.com/acme/app.setup.func1", "", "", false},
		{"github.com/acme/app.setup.func1.2", "", "", false},
		{"github.com/acme/app.glob..func3", "", "", false},
		{"github.com/acme/app.init", "", "", false},
		{"github.com/acme/app", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			owner, method, ok := parseSymbol(tt.symbol).methodName()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.method, method)
		})
	}
}

func TestParseSymbolEnclosing(t *testing.T) {
	tests := []struct {
		symbol    string
		enclosing string
		ok        bool
	}{
		{"github.com/acme/app.setup.func1", "github.com/acme/app", true},
		{"github.com/acme/app.setup.func1.2", "github.com/acme/app", true},
		{"github.com/acme/app.glob..func3", "github.com/acme/app", true},
		{"github.com/acme/app.init.func1", "github.com/acme/app", true},
		{"github.com/acme/app.(*Users).Routes.func1", "github.com/acme/app.Users", true},
		{"github.com/acme/app.Users.Routes.func2", "github.com/acme/app.Users", true},
		{"gopkg.in/yaml.v3.(*Users).Routes.func1", "gopkg.in/yaml.v3.Users", true},
		{"gopkg.in/yaml.v3.Users.Routes.func1", "gopkg.in/yaml.v3.Users", true},
		{"gopkg.in/yaml.v3.setup.func1", "gopkg.in/yaml.v3", true},
		{"github.com/acme/app.(*Users).Routes.func1.1", "github.com/acme/app.Users", true},
		{"github.com/acme/app.listUsers", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			enclosing, ok := parseSymbol(tt.symbol).enclosing()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.enclosing, enclosing)
		})
	}
}
