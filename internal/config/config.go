package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "strings"

    "gopkg.in/yaml.v3"
)

type HTTP struct {
    RequestTimeoutSec int    `json:"request_timeout_sec" yaml:"request_timeout_sec"`
    UserAgent         string `json:"user_agent" yaml:"user_agent"`
}

type Binance struct {
    // SpotURL answers GET ?symbol=<SYM> with {"symbol","price"}.
    SpotURL string `json:"spot_url" yaml:"spot_url"`
    // StatsURL answers GET ?symbol=<SYM> with the full 24hr ticker object.
    StatsURL string `json:"stats_url" yaml:"stats_url"`
}

type Options struct {
    Enabled bool   `json:"enabled" yaml:"enabled"`
    URL     string `json:"url" yaml:"url"`
}

type Activity struct {
    LogPath string `json:"log_path" yaml:"log_path"`
}

type Config struct {
    HTTP     HTTP     `json:"http" yaml:"http"`
    Binance  Binance  `json:"binance" yaml:"binance"`
    Options  Options  `json:"options" yaml:"options"`
    Activity Activity `json:"activity" yaml:"activity"`
}

func Default() Config {
    return Config{
        HTTP: HTTP{RequestTimeoutSec: 10},
        Binance: Binance{
            SpotURL:  "https://api.binance.com/api/v3/ticker/price",
            StatsURL: "https://data-api.binance.vision/api/v3/ticker/24hr",
        },
        Options: Options{
            Enabled: true,
            URL:     "https://query2.finance.yahoo.com/v7/finance/options",
        },
        Activity: Activity{LogPath: "activity.log"},
    }
}

// Load reads config from path, JSON or YAML by extension. If path is empty,
// config.json then config.yaml are tried; a missing file means defaults.
// Environment variables override select fields afterwards.
func Load(path string) (Config, error) {
    cfg := Default()
    if path == "" {
        for _, candidate := range []string{"config.json", "config.yaml"} {
            if _, err := os.Stat(candidate); err == nil {
                path = candidate
                break
            }
        }
    }
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil && !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
        if err == nil {
            if err := unmarshal(path, b, &cfg); err != nil {
                return cfg, fmt.Errorf("parse config %s: %w", path, err)
            }
        }
    }
    applyEnv(&cfg)
    return cfg, nil
}

func unmarshal(path string, b []byte, cfg *Config) error {
    if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
        return yaml.Unmarshal(b, cfg)
    }
    return json.Unmarshal(b, cfg)
}

func applyEnv(cfg *Config) {
    if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.HTTP.RequestTimeoutSec = x }
    }
    if v := os.Getenv("USER_AGENT"); v != "" { cfg.HTTP.UserAgent = v }
    if v := os.Getenv("BINANCE_SPOT_URL"); v != "" { cfg.Binance.SpotURL = v }
    if v := os.Getenv("BINANCE_STATS_URL"); v != "" { cfg.Binance.StatsURL = v }
    if v := os.Getenv("OPTIONS_ENABLED"); v != "" {
        switch strings.ToLower(v) {
        case "1", "true", "yes", "y": cfg.Options.Enabled = true
        case "0", "false", "no", "n": cfg.Options.Enabled = false
        }
    }
    if v := os.Getenv("YAHOO_OPTIONS_URL"); v != "" { cfg.Options.URL = v }
    if v := os.Getenv("ACTIVITY_LOG"); v != "" { cfg.Activity.LogPath = v }
}
