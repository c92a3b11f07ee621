package symbol

import (
    "encoding/csv"
    "sort"
    "strings"
)

// aliasMap maps friendly asset names to the Binance tickers they trade under.
// Lookup is on the lowercased input. Aliases:
//
//	bitcoin, btc  -> BTCUSDT
//	ethereum, eth -> ETHUSDT
var aliasMap = map[string]string{
    "bitcoin":  "BTCUSDT",
    "btc":      "BTCUSDT",
    "ethereum": "ETHUSDT",
    "eth":      "ETHUSDT",
}

// Resolve maps a user-supplied asset identifier to a canonical market ticker.
// Unaliased input is uppercased as-is, whitespace included.
func Resolve(raw string) string {
    if sym, ok := aliasMap[strings.ToLower(raw)]; ok { return sym }
    return strings.ToUpper(raw)
}

// MapCSV renders the alias table as CSV with a name,symbol header,
// rows sorted by name. This is what the symbol-map resource serves.
func MapCSV() string {
    names := make([]string, 0, len(aliasMap))
    for name := range aliasMap { names = append(names, name) }
    sort.Strings(names)

    var sb strings.Builder
    w := csv.NewWriter(&sb)
    w.Write([]string{"name", "symbol"})
    for _, name := range names {
        w.Write([]string{name, aliasMap[name]})
    }
    w.Flush()
    return sb.String()
}
