package htmlconv

import (
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
)

func TestDominantScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want language.Script
	}{
		{"latin", "hello world", language.Latin},
		{"arabic", "مرحبا بالعالم", language.Arabic},
		{"hebrew", "שלום עולם", language.Hebrew},
		{"cyrillic", "привет мир", language.Cyrillic},
		{"han", "你好世界", language.Han},
		{"mixed latin dominant", "hello مرحبا world wide", language.Latin},
		{"mixed arabic dominant", "hi مرحبا بالعالم الواسع", language.Arabic},
		{"empty defaults to latin", "", language.Latin},
		{"digits only defaults to latin", "12345", language.Latin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dominantScript(tt.text); got != tt.want {
				t.Fatalf("dominantScript(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestScriptDirection(t *testing.T) {
	if scriptDirection(language.Arabic) != di.DirectionRTL {
		t.Fatalf("arabic should be rtl")
	}
	if scriptDirection(language.Hebrew) != di.DirectionRTL {
		t.Fatalf("hebrew should be rtl")
	}
	if scriptDirection(language.Latin) != di.DirectionLTR {
		t.Fatalf("latin should be ltr")
	}
	if scriptDirection(language.Han) != di.DirectionLTR {
		t.Fatalf("han should be ltr")
	}
}

func TestIsRTL(t *testing.T) {
	if isRTL("plain english") {
		t.Fatalf("english text should not be rtl")
	}
	if !isRTL("مرحبا") {
		t.Fatalf("arabic text should be rtl")
	}
}
