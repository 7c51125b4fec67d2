package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wikigraph/pkg/cache"
	"github.com/matzehuels/wikigraph/pkg/graph"
	wgio "github.com/matzehuels/wikigraph/pkg/io"
	"github.com/matzehuels/wikigraph/pkg/render/network"
)

const (
	defaultAddr     = "127.0.0.1:8080"
	shutdownTimeout = 5 * time.Second

	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

// site is the content served by 'wikigraph serve'.
type site struct {
	page asset // Interactive HTML
	data asset // Crawl JSON, empty when serving a bare HTML file
}

// asset is one served body and its entity tag.
type asset struct {
	body        []byte
	etag        string
	contentType string
}

func newAsset(contentType string, body []byte) asset {
	return asset{body: body, etag: `"` + cache.Hash(body)[:16] + `"`, contentType: contentType}
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		title string
	)

	cmd := &cobra.Command{
		Use:   "serve <graph.json|graph.html>",
		Short: "Serve the interactive graph over HTTP",
		Long: `Serve the interactive graph over HTTP.

Given a saved crawl, serve renders the interactive page once and serves it
at /, the crawl itself at /graph.json and a liveness probe at /healthz.
An HTML file written by 'wikigraph crawl' is served as is.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFiles("json", "html"),
		RunE:              func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			page := cfg.pageOptions()
			if title != "" {
				page.Title = title
			}
			s, err := loadSite(args[0], page, title == "")
			if err != nil {
				return err
			}
			return c.runServe(cmd.Context(), addr, s)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&title, "title", "", "HTML page title (default: the root article)")

	return cmd
}

// loadSite prepares the served content from a crawl JSON or an HTML file.
func loadSite(path string, page network.Options, rootTitle bool) (*site, error) {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		html, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return &site{page: newAsset(contentTypeHTML, html)}, nil
	}

	res, err := loadCrawl(path)
	if err != nil {
		return nil, err
	}
	if rootTitle {
		page.Title = res.Root
	}
	data, err := wgio.MarshalJSON(res)
	if err != nil {
		return nil, err
	}
	html, err := network.Render(graph.FromResult(res), page)
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return &site{
		page: newAsset(contentTypeHTML, html),
		data: newAsset(contentTypeJSON, data),
	}, nil
}

// runServe listens on addr until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, s *site) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Handler:           newRouter(s, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	printSuccess("Serving on %s", StyleLink.Render("http://"+ln.Addr().String()))
	printDetail("Press Ctrl+C to stop")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// newRouter wires the routes of the graph server.
func newRouter(s *site, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		s.page.write(w, req)
	})
	r.Get("/graph.json", func(w http.ResponseWriter, req *http.Request) {
		if s.data.body == nil {
			http.NotFound(w, req)
			return
		}
		s.data.write(w, req)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	return r
}

// write serves the body with its ETag, answering 304 to a matching If-None-Match.
func (a asset) write(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("ETag", a.etag)
	w.Header().Set("Cache-Control", "no-cache")
	if req.Header.Get("If-None-Match") == a.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", a.contentType)
	_, _ = w.Write(a.body)
}

// requestLogger logs one debug line per request.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).Round(time.Microsecond))
		})
	}
}
