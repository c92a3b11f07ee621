package symbol

import (
    "strings"
    "testing"
)

func TestResolve_Aliases_CaseInsensitive(t *testing.T) {
    cases := []struct {
        raw  string
        want string
    }{
        {"bitcoin", "BTCUSDT"},
        {"BITCOIN", "BTCUSDT"},
        {"BitCoin", "BTCUSDT"},
        {"btc", "BTCUSDT"},
        {"BTC", "BTCUSDT"},
        {"ethereum", "ETHUSDT"},
        {"Ethereum", "ETHUSDT"},
        {"eth", "ETHUSDT"},
        {"ETH", "ETHUSDT"},
    }
    for _, c := range cases {
        if got := Resolve(c.raw); got != c.want {
            t.Fatalf("Resolve(%q) = %q, want %q", c.raw, got, c.want)
        }
    }
}

func TestResolve_Fallback_UppercasesOnly(t *testing.T) {
    // The fallback uppercases and does nothing else: no alias lookup,
    // no trimming, no pair suffix.
    if got := Resolve("xrp"); got != "XRP" {
        t.Fatalf("Resolve(xrp) = %q, want XRP", got)
    }
    if got := Resolve("solusdt"); got != "SOLUSDT" {
        t.Fatalf("Resolve(solusdt) = %q, want SOLUSDT", got)
    }
    if got := Resolve(" btc "); got != " BTC " {
        t.Fatalf("Resolve(\" btc \") = %q, want \" BTC \" (no trimming)", got)
    }
    if got := Resolve(""); got != "" {
        t.Fatalf("Resolve(\"\") = %q, want empty", got)
    }
}

func TestMapCSV_SortedWithHeader(t *testing.T) {
    got := MapCSV()
    lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
    if len(lines) != len(aliasMap)+1 {
        t.Fatalf("want %d lines, got %d: %q", len(aliasMap)+1, len(lines), got)
    }
    if lines[0] != "name,symbol" {
        t.Fatalf("header = %q, want name,symbol", lines[0])
    }
    for i := 2; i < len(lines); i++ {
        if lines[i-1] >= lines[i] {
            t.Fatalf("rows not sorted: %q >= %q", lines[i-1], lines[i])
        }
    }
    if !strings.Contains(got, "btc,BTCUSDT") || !strings.Contains(got, "ethereum,ETHUSDT") {
        t.Fatalf("missing expected rows: %q", got)
    }
}
