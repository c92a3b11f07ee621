package activity

import (
    "errors"
    "fmt"
    "os"
)

// Log is an append-only, line-oriented event trail backed by a single flat
// file. The path is injected so tests can point it at a temporary location.
// Appends never truncate or reorder existing content; serialization of
// concurrent appends is the caller's concern (the stdio session delivers one
// request at a time).
type Log struct {
    path string
}

func New(path string) *Log {
    return &Log{path: path}
}

func (l *Log) Path() string { return l.path }

// EnsureExists creates an empty log file if none exists and is a no-op
// otherwise.
func (l *Log) EnsureExists() error {
    f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
    if err != nil { return fmt.Errorf("ensure log %s: %w", l.path, err) }
    return f.Close()
}

// Append writes line plus a trailing newline, creating the file if it
// vanished since startup.
func (l *Log) Append(line string) error {
    f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
    if err != nil { return fmt.Errorf("open log %s: %w", l.path, err) }
    _, werr := f.WriteString(line + "\n")
    cerr := f.Close()
    if werr != nil { return fmt.Errorf("append log %s: %w", l.path, werr) }
    return cerr
}

// Appendf is Append with printf formatting.
func (l *Log) Appendf(format string, args ...any) error {
    return l.Append(fmt.Sprintf(format, args...))
}

// ReadAll returns the full current contents, or empty text when the file has
// never been created.
func (l *Log) ReadAll() (string, error) {
    b, err := os.ReadFile(l.path)
    if errors.Is(err, os.ErrNotExist) { return "", nil }
    if err != nil { return "", fmt.Errorf("read log %s: %w", l.path, err) }
    return string(b), nil
}
