package news

import (
	"strings"
	"testing"
	"unicode/utf8"

	"order-assistant/internal/types"
)

func TestFormatDigestEmpty(t *testing.T) {
	if got := FormatDigest(nil, "petr4", 80); got != "📭 No recent news found for PETR4." {
		t.Errorf("Unexpected empty digest %q", got)
	}
	if got := FormatDigest(nil, "", 80); !strings.Contains(got, marketLabel) {
		t.Errorf("Expected market label, got %q", got)
	}
}

func TestFormatDigestTruncatesTitle(t *testing.T) {
	long := strings.Repeat("ação ", 30)
	out := FormatDigest([]types.NewsItem{{Title: long}}, "PETR4", 80)

	line := strings.Split(out, "\n")[2]
	title := strings.TrimSuffix(strings.TrimPrefix(line, "🟢 *"), "*")
	if utf8.RuneCountInString(title) != 80 {
		t.Errorf("Expected 80 rune title, got %d: %q", utf8.RuneCountInString(title), title)
	}
	if !strings.HasSuffix(title, "...") {
		t.Errorf("Expected ellipsis, got %q", title)
	}
}

func TestFormatDigestLimitsToFive(t *testing.T) {
	items := make([]types.NewsItem, 7)
	for i := range items {
		items[i] = types.NewsItem{Title: "headline", Source: "S", RelativeTime: "now", Link: "https://example.com/" + strings.Repeat("x", 60)}
	}
	out := FormatDigest(items, "VALE3", 80)

	if n := strings.Count(out, "*headline*"); n != 5 {
		t.Errorf("Expected 5 items, got %d", n)
	}
	if !strings.Contains(out, "🟢 *headline*") || !strings.Contains(out, "🔵 *headline*") || !strings.Contains(out, "⚪ *headline*") {
		t.Error("Expected rank markers")
	}
	if !strings.Contains(out, "*Total:* 7 news items found") {
		t.Errorf("Expected total of all items, got %s", out)
	}
	if !strings.Contains(out, "   🔗 https://example.com/"+strings.Repeat("x", 30)+"...") {
		t.Errorf("Expected link cut at 50, got %s", out)
	}
	if !strings.Contains(out, "⏳ now | 📰 S") {
		t.Error("Expected time/source line")
	}
}

func TestFormatDigestSimulatedNote(t *testing.T) {
	out := FormatDigest(Fallback("PETR4", 3), "PETR4", 80)
	if !strings.Contains(out, "Simulated headlines") {
		t.Errorf("Expected simulated note, got %s", out)
	}
	if !strings.Contains(out, simulatedSource) {
		t.Errorf("Expected simulated source, got %s", out)
	}
}

func TestBuildQuery(t *testing.T) {
	tests := map[string]string{
		"PETR4": `Petrobras OR PETR4 "ações" OR "resultados" OR "dividendos"`,
		"itub4": `Itaú Unibanco OR ITUB4 "ações" OR "resultados" OR "dividendos"`,
		"XPTO3": `XPTO3 OR XPTO3 "ações" OR "resultados" OR "dividendos"`,
		"":      marketQuery,
	}
	for in, expected := range tests {
		if got := BuildQuery(in); got != expected {
			t.Errorf("%q: expected %q, got %q", in, expected, got)
		}
	}
}

func TestFallbackMax(t *testing.T) {
	if got := len(Fallback("PETR4", 2)); got != 2 {
		t.Errorf("Expected 2 items, got %d", got)
	}
	items := Fallback("PETR4", 10)
	if len(items) != 3 {
		t.Errorf("Expected 3 items, got %d", len(items))
	}
	if items[0].Query != BuildQuery("PETR4") {
		t.Errorf("Expected query recorded on item, got %q", items[0].Query)
	}
}
