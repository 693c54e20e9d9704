package textutil

import (
	"reflect"
	"testing"
	"time"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "punctuation", input: "Compra 100 PETR4!", expected: "compra 100 petr4"},
		{name: "accents", input: "Notícias da VALE3", expected: "noticias da vale3"},
		{name: "hyphen and cedilla", input: "AÇÃO pré-market", expected: "acao pre market"},
		{name: "extra spaces", input: "  venda    50   ITUB4  ", expected: "venda 50 itub4"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRemoveAccents(t *testing.T) {
	if got := RemoveAccents("notícias ação"); got != "noticias acao" {
		t.Errorf("Expected %q, got %q", "noticias acao", got)
	}
}

func TestFirstDigitRun(t *testing.T) {
	run, ok := FirstDigitRun("conta 0042-7")
	if !ok || run != "0042" {
		t.Errorf("Expected 0042, got %q (ok=%v)", run, ok)
	}

	if _, ok := FirstDigitRun("sem numeros"); ok {
		t.Error("Expected no digit run")
	}
}

func TestExtractNumbers(t *testing.T) {
	got := ExtractNumbers("compra 100 PETR4 conta 123-45")
	expected := []int{100, 4, 123, 45}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	if got := ExtractNumbers(""); len(got) != 0 {
		t.Errorf("Expected no numbers, got %v", got)
	}
}

func TestValidateTicker(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{input: "PETR4", expected: "PETR4", ok: true},
		{input: " vale3 ", expected: "VALE3", ok: true},
		{input: "TAEE11", expected: "TAEE11", ok: true},
		{input: "XYZ", ok: false},
		{input: "ABCD123", ok: false},
		{input: "1234", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		got, err := ValidateTicker(tt.input)
		if tt.ok {
			if err != nil {
				t.Errorf("%q: unexpected error: %v", tt.input, err)
				continue
			}
			if got != tt.expected {
				t.Errorf("%q: expected %s, got %s", tt.input, tt.expected, got)
			}
		} else if err == nil {
			t.Errorf("%q: expected an error, got %s", tt.input, got)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 1, 30, 14, 30, 15, 0, time.UTC)

	if got := FormatDateTime(ts, ""); got != "30/01/2026 14:30:15" {
		t.Errorf("Expected default layout, got %s", got)
	}
	if got := FormatDateTime(ts, "2006-01-02"); got != "2026-01-30" {
		t.Errorf("Expected 2026-01-30, got %s", got)
	}
}

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(1, 2, "fetching"); got != "[==========>          ] 50% fetching" {
		t.Errorf("Unexpected bar: %q", got)
	}
	if got := ProgressBar(3, 3, ""); got != "[====================>] 100%" {
		t.Errorf("Unexpected bar: %q", got)
	}
	if got := ProgressBar(5, 0, ""); got != "[====================>] 100%" {
		t.Errorf("Unexpected bar for zero total: %q", got)
	}
}
