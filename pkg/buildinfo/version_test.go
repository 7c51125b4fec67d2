package buildinfo

import (
	"strings"
	"testing"
)

func TestUserAgent(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "v1.2.3"
	ua := UserAgent()
	if !strings.HasPrefix(ua, "wikigraph/v1.2.3 ") {
		t.Errorf("UserAgent() = %q, want wikigraph/v1.2.3 prefix", ua)
	}
}

func TestTemplate(t *testing.T) {
	if !strings.Contains(Template(), "{{.Name}}") {
		t.Error("Template() should reference the command name")
	}
}
