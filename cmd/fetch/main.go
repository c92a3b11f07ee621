package main

import (
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "log"
    "net/http"
    "os"
    "strings"
    "time"

    "binancemcp/internal/binance"
    "binancemcp/internal/config"
    "binancemcp/internal/httpx"
    "binancemcp/internal/symbol"
)

// fetch hits the ticker endpoints directly, without the MCP framing, so the
// upstream wiring can be checked from a shell.
func main() {
    var raw string
    var stats bool
    var timeout int
    var configPath string

    flag.StringVar(&raw, "symbol", getenv("SYMBOL", "bitcoin"), "asset name or ticker (bitcoin, eth, SOLUSDT, ...)")
    flag.BoolVar(&stats, "stats", getenvBool("STATS", false), "fetch the rolling 24h ticker instead of the spot price")
    flag.IntVar(&timeout, "timeout", getenvInt("REQUEST_TIMEOUT_SEC", 10), "request timeout seconds")
    flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json or config.yaml (optional)")
    flag.Parse()

    cfg, err := config.Load(configPath)
    if err != nil { log.Fatalf("config: %v", err) }
    if timeout != 0 { cfg.HTTP.RequestTimeoutSec = timeout }

    httpClient := httpx.New(time.Duration(cfg.HTTP.RequestTimeoutSec) * time.Second)
    client := binance.NewClient(
        binance.WithSpotURL(cfg.Binance.SpotURL),
        binance.WithStatsURL(cfg.Binance.StatsURL),
        binance.WithHTTPClient(httpClient.HTTP),
        binance.WithHeader(http.Header{
            "User-Agent": []string{httpClient.UserAgent},
        }),
    )

    sym := symbol.Resolve(raw)
    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.RequestTimeoutSec)*time.Second)
    defer cancel()

    var out any
    if stats {
        out, err = client.Stats24h(ctx, sym)
    } else {
        out, err = client.SpotPrice(ctx, sym)
    }
    if err != nil { log.Fatalf("%s: %v", sym, err) }

    b, _ := json.MarshalIndent(out, "", "  ")
    fmt.Println(string(b))
}

func getenv(key, def string) string { if v := os.Getenv(key); v != "" { return v }; return def }
func getenvInt(key string, def int) int {
    if v := os.Getenv(key); v != "" {
        var x int
        _, _ = fmt.Sscanf(v, "%d", &x)
        if x != 0 { return x }
    }
    return def
}
func getenvBool(key string, def bool) bool {
    if v := os.Getenv(key); v != "" {
        switch strings.ToLower(v) {
        case "1","true","yes","y": return true
        case "0","false","no","n": return false
        }
    }
    return def
}
