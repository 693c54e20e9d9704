// Package auditlog writes an append-only, leveled audit trail of processed commands.
package auditlog

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"order-assistant/internal/textutil"
)

// Level of an audit entry.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
	LevelSuccess Level = "SUCCESS"
)

const fileExt = ".log"

// Log appends entries to one file per day under dir. Each write opens the file,
// appends a single line and closes it again while holding the mutex.
type Log struct {
	mu     sync.Mutex
	dir    string
	prefix string
	now    func() time.Time
}

// New returns a Log writing to dir/<prefix>-YYYY-MM-DD.log.
func New(dir, prefix string) *Log {
	if dir == "" {
		dir = "logs"
	}
	if prefix == "" {
		prefix = "assistant"
	}
	return &Log{dir: dir, prefix: prefix, now: time.Now}
}

// Path returns the file that entries written at t go to.
func (l *Log) Path(t time.Time) string {
	return filepath.Join(l.dir, l.prefix+"-"+t.Format("2006-01-02")+fileExt)
}

// Write appends "[timestamp] [LEVEL] message".
func (l *Log) Write(level Level, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	p := l.Path(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create audit dir: %w", err)
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	// one entry per line
	msg = strings.ReplaceAll(msg, "\n", " ")
	_, err = fmt.Fprintf(f, "[%s] [%s] %s\n", textutil.FormatDateTime(now, ""), level, msg)
	return err
}

func (l *Log) Info(msg string) error    { return l.Write(LevelInfo, msg) }
func (l *Log) Warning(msg string) error { return l.Write(LevelWarning, msg) }
func (l *Log) Error(msg string) error   { return l.Write(LevelError, msg) }
func (l *Log) Success(msg string) error { return l.Write(LevelSuccess, msg) }

// Command records a processed command and its outcome.
func (l *Log) Command(user, command, result string) error {
	if user == "" {
		user = "SYSTEM"
	}
	return l.Info(fmt.Sprintf("User: %s | Command: '%s' | Result: %s", user, command, result))
}

// CompressOlder gzips daily files last modified more than retentionDays ago and
// removes the originals.
func (l *Log) CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().AddDate(0, 0, -retentionDays)
	return filepath.WalkDir(l.dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || filepath.Ext(p) != fileExt {
			return nil
		}
		info, err := d.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil
		}
		gz := p + ".gz"
		if _, err := os.Stat(gz); err == nil {
			_ = os.Remove(p)
			return nil
		}
		if err := gzipFile(p, gz); err != nil {
			return fmt.Errorf("compress %s: %w", p, err)
		}
		return os.Remove(p)
	})
}

func gzipFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	gw := gzip.NewWriter(out)
	if _, err := io.Copy(gw, in); err != nil {
		_ = gw.Close()
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := gw.Close(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Nop discards every entry.
type Nop struct{}

func (Nop) Write(Level, string) error           { return nil }
func (Nop) Command(string, string, string) error { return nil }
