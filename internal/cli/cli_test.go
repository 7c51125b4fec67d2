package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	wgio "github.com/matzehuels/wikigraph/pkg/io"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, name := range []string{"crawl", "render", "serve", "browse", "stats", "cache", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestCrawlCommandDefaults(t *testing.T) {
	cmd := New(io.Discard, LogInfo).crawlCommand()

	if got := cmd.Flags().Lookup("depth").DefValue; got != "3" {
		t.Errorf("depth default = %s, want 3", got)
	}
	if got := cmd.Flags().Lookup("links").DefValue; got != "10" {
		t.Errorf("links default = %s, want 10", got)
	}
	if cmd.Flags().ShorthandLookup("d") == nil || cmd.Flags().ShorthandLookup("l") == nil {
		t.Error("depth and links need -d and -l shorthands")
	}
}

// apiServer serves a tiny wiki as MediaWiki parse responses.
func apiServer(t *testing.T) *httptest.Server {
	t.Helper()
	pages := map[string][]string{
		"Go":     {"Gopher", "Unix"},
		"Gopher": {"Go"},
		"Unix":   {"Plan 9", "C"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("page")
		children, ok := pages[title]
		if !ok {
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": "missingtitle", "info": "The page you specified doesn't exist."},
			})
			return
		}
		links := make([]map[string]any, 0, len(children))
		for _, c := range children {
			links = append(links, map[string]any{"ns": 0, "exists": "", "*": c})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"parse": map[string]any{"title": title, "pageid": 1, "links": links},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCrawlCommandWritesArtifacts(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	srv := apiServer(t)
	base := filepath.Join(t.TempDir(), "go")

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"crawl", "Go", "-d", "2", "-l", "5", "--api-url", srv.URL, "-f", "html,json,dot", "-o", base})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("crawl error: %v", err)
	}

	for _, ext := range []string{".html", ".json", ".dot"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing %s output: %v", ext, err)
		}
	}

	res, err := wgio.ImportJSON(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(res.Links.Titles(), ","); got != "Go,Gopher,Unix" {
		t.Errorf("titles = %s, want Go,Gopher,Unix", got)
	}
	if res.MaxDepth != 2 || res.MaxLinks != 5 {
		t.Errorf("limits = %d/%d, want 2/5", res.MaxDepth, res.MaxLinks)
	}

	html, _ := os.ReadFile(base + ".html")
	if !strings.Contains(string(html), "<title>Go</title>") {
		t.Error("html title should be the root article")
	}
}

func TestRenderCommandFromJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	input := filepath.Join(dir, "go.json")
	if err := wgio.ExportJSON(sampleCrawl(), input); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"render", input, "-f", "dot", "--title", "Go links"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render error: %v", err)
	}

	dot, err := os.ReadFile(filepath.Join(dir, "go.dot"))
	if err != nil {
		t.Fatalf("render should write next to the input: %v", err)
	}
	if !strings.Contains(string(dot), "graph G {") {
		t.Errorf("unexpected dot output:\n%s", dot)
	}
}

func TestCrawlCommandRejectsBadOptions(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tests := [][]string{
		{"crawl", "Go", "-d", "11"},
		{"crawl", "Go", "-f", "gif"},
		{"crawl", "Go", "--api-url", "ftp://example.org"},
		{"crawl", "Go", "--cache", "memcached"},
		{"crawl"},
	}
	for _, args := range tests {
		root := New(io.Discard, LogInfo).RootCommand()
		root.SetArgs(args)
		root.SetOut(io.Discard)
		root.SetErr(io.Discard)
		if err := root.ExecuteContext(context.Background()); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", dir)

	shard := filepath.Join(dir, appName, "ab")
	if err := os.MkdirAll(shard, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(shard, "abcdef.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if _, err := os.Stat(shard); !os.IsNotExist(err) {
		t.Error("cache clear should remove entries and empty shards")
	}
}
