package cli

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	wgerrors "github.com/matzehuels/wikigraph/pkg/errors"
	"github.com/matzehuels/wikigraph/pkg/pipeline"
	"github.com/matzehuels/wikigraph/pkg/render/network"
)

// Config is the optional config file. Zero values mean "not set" except for
// MaxLinks, where 0 is a real setting.
type Config struct {
	APIURL      string        `toml:"api_url"`
	Language    string        `toml:"language"`
	UserAgent   string        `toml:"user_agent"`
	Timeout     time.Duration `toml:"timeout"`
	MaxDepth    int           `toml:"max_depth"`
	MaxLinks    *int          `toml:"max_links"`
	Concurrency int           `toml:"concurrency"`
	RateLimit   float64       `toml:"rate_limit"`

	Cache  CacheConfig  `toml:"cache"`
	Render RenderConfig `toml:"render"`
}

// CacheConfig is the [cache] table.
type CacheConfig struct {
	Backend   string        `toml:"backend"`
	Dir       string        `toml:"dir"`
	TTL       time.Duration `toml:"ttl"`
	RedisAddr string        `toml:"redis_addr"`
	RedisDB   int           `toml:"redis_db"`
}

// RenderConfig is the [render] table.
type RenderConfig struct {
	Formats   []string `toml:"formats"`
	Height    string   `toml:"height"`
	Width     string   `toml:"width"`
	BgColor   string   `toml:"bgcolor"`
	FontColor string   `toml:"font_color"`
}

// loadConfig reads the config file at path. An empty path selects the default
// location, which may be absent; an explicit path must exist.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(dir, configFile)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		if !explicit {
			return &Config{}, nil
		}
		return nil, wgerrors.Wrap(wgerrors.ErrCodeNotFound, err, "config file %s does not exist", path)
	}
	if err != nil {
		return nil, wgerrors.New(wgerrors.ErrCodeInvalidConfig, "config %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, wgerrors.New(wgerrors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// pipelineOptions converts the file settings into pipeline options. Fields
// left unset keep the pipeline defaults.
func (cfg *Config) pipelineOptions() pipeline.Options {
	opts := pipeline.Options{
		APIURL:      cfg.APIURL,
		Language:    cfg.Language,
		UserAgent:   cfg.UserAgent,
		Timeout:     cfg.Timeout,
		MaxDepth:    cfg.MaxDepth,
		MaxLinks:    pipeline.DefaultMaxLinks,
		Concurrency: cfg.Concurrency,
		RateLimit:   cfg.RateLimit,
		CacheTTL:    cfg.Cache.TTL,
		Formats:     cfg.Render.Formats,
		Page:        cfg.pageOptions(),
	}
	if cfg.MaxLinks != nil {
		opts.MaxLinks = *cfg.MaxLinks
	}
	return opts
}

// pageOptions overlays the [render] table on the default page look.
func (cfg *Config) pageOptions() network.Options {
	page := network.DefaultOptions()
	r := cfg.Render
	if r.Height != "" {
		page.Height = r.Height
	}
	if r.Width != "" {
		page.Width = r.Width
	}
	if r.BgColor != "" {
		page.BgColor = r.BgColor
	}
	if r.FontColor != "" {
		page.FontColor = r.FontColor
	}
	return page
}
