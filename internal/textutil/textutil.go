package textutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	digitRun      = regexp.MustCompile(`\d+`)
	punctuation   = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	tickerPattern = regexp.MustCompile(`^[A-Z]{4}\d{1,2}$`)
)

// DateTimeLayout is the default layout for timestamps shown to users and written to the audit log.
const DateTimeLayout = "02/01/2006 15:04:05"

// RemoveAccents strips combining marks, e.g. "notícias" -> "noticias".
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeText lower-cases s, strips accents, replaces punctuation with spaces
// and collapses whitespace: "Compra 100 PETR4!" -> "compra 100 petr4".
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = RemoveAccents(strings.ToLower(s))
	s = punctuation.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// FirstDigitRun returns the first run of ASCII digits in s.
func FirstDigitRun(s string) (string, bool) {
	run := digitRun.FindString(s)
	return run, run != ""
}

// ExtractNumbers returns every digit run in s as an int.
// Runs that overflow an int are skipped.
func ExtractNumbers(s string) []int {
	var out []int
	for _, run := range digitRun.FindAllString(s, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// ValidateTicker checks the exchange format: 4 letters followed by 1-2 digits.
// It returns the normalised ticker on success.
func ValidateTicker(ticker string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" {
		return "", fmt.Errorf("ticker cannot be empty")
	}
	if !tickerPattern.MatchString(t) {
		return "", fmt.Errorf("invalid format: %s. Use 4 letters + 1-2 digits (e.g. PETR4)", ticker)
	}
	return t, nil
}

// FormatDateTime formats t with layout, falling back to DateTimeLayout.
func FormatDateTime(t time.Time, layout string) string {
	if layout == "" {
		layout = DateTimeLayout
	}
	return t.Format(layout)
}

// ProgressBar renders a 20 cell bar such as "[==========>          ] 50% fetching".
func ProgressBar(step, total int, text string) string {
	if total <= 0 {
		total = 1
	}
	if step < 0 {
		step = 0
	}
	if step > total {
		step = total
	}
	pct := step * 100 / total
	bars := pct / 5
	bar := "[" + strings.Repeat("=", bars) + ">" + strings.Repeat(" ", 20-bars) + "]"
	return strings.TrimRight(fmt.Sprintf("%s %d%% %s", bar, pct, text), " ")
}
