package main

import (
    "context"
    "flag"
    "log"
    "net/http"
    "os"
    "os/signal"
    "strings"
    "syscall"
    "time"

    "binancemcp/internal/activity"
    "binancemcp/internal/binance"
    "binancemcp/internal/config"
    "binancemcp/internal/httpx"
    "binancemcp/internal/mcpserver"
    "binancemcp/internal/yahoo"
)

const (
    serverName    = "Binance MCP"
    serverVersion = "0.1.0"
)

func main() {
    cfgPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to config.json or config.yaml")
    flag.Parse()

    // Config
    cfg, err := config.Load(*cfgPath)
    if err != nil { log.Fatalf("config: %v", err) }

    httpClient := httpx.New(time.Duration(cfg.HTTP.RequestTimeoutSec) * time.Second)
    if cfg.HTTP.UserAgent != "" { httpClient.UserAgent = cfg.HTTP.UserAgent }

    alog := activity.New(cfg.Activity.LogPath)
    if err := alog.EnsureExists(); err != nil { log.Fatalf("activity log %s: %v", alog.Path(), err) }

    deps := mcpserver.Deps{
        Binance: binance.NewClient(
            binance.WithSpotURL(cfg.Binance.SpotURL),
            binance.WithStatsURL(cfg.Binance.StatsURL),
            binance.WithHTTPClient(httpClient.HTTP),
            binance.WithHeader(http.Header{
                "User-Agent": []string{httpClient.UserAgent},
            }),
        ),
        Activity: alog,
    }
    if cfg.Options.Enabled {
        if cfg.Options.URL == "" {
            log.Println("warning: options.enabled=true but options.url not set; skipping get_option_premium")
        } else {
            deps.Options = yahoo.New(yahoo.Config{URL: cfg.Options.URL}, httpClient)
        }
    }

    srv := mcpserver.New(mcpserver.Config{Name: serverName, Version: serverVersion}, deps)

    // Banner goes to stderr; stdout carries the protocol stream.
    log.Printf("%s %s speaking MCP on stdio", serverName, serverVersion)
    log.Printf("tools: %s", strings.Join(srv.Tools(), ", "))
    log.Printf("resources: %s", strings.Join(srv.Resources(), ", "))
    log.Printf("activity log: %s", alog.Path())

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
        log.Fatalf("server: %v", err)
    }
}
