package isptranslator

import "testing"

func TestDeriveKey_Deterministic(t *testing.T) {
	k1 := DeriveKey("China Telecom", "zh")
	k2 := DeriveKey("China Telecom", "zh")

	if k1 != k2 {
		t.Errorf("DeriveKey is not deterministic: %q != %q", k1, k2)
	}
}

func TestDeriveKey_Length(t *testing.T) {
	// MD5 = 32 hex chars
	key := DeriveKey("NTT", "en")
	if len(key) != 32 {
		t.Errorf("DeriveKey length = %d, want 32", len(key))
	}
	for _, r := range key {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			t.Errorf("DeriveKey produced non-lowercase-hex rune %q in %q", r, key)
		}
	}
}

func TestDeriveKey_DistinctInputs(t *testing.T) {
	tests := []struct {
		name           string
		textA, localeA string
		textB, localeB string
	}{
		{"different text", "China Telecom", "zh", "China Mobile", "zh"},
		{"different locale", "China Telecom", "zh", "China Telecom", "ja"},
		{"both different", "NTT", "en", "KDDI", "ja"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kA := DeriveKey(tt.textA, tt.localeA)
			kB := DeriveKey(tt.textB, tt.localeB)
			if kA == kB {
				t.Errorf("distinct inputs produced identical key %q", kA)
			}
		})
	}
}

func TestDeriveKey_NormalizesWhitespace(t *testing.T) {
	if DeriveKey("  NTT  ", "en") != DeriveKey("NTT", "en") {
		t.Error("padded input should share a key with the trimmed input")
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Hello  ", "Hello"},
		{"\tHello\n", "Hello"},
		{"Hello", "Hello"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.input); got != tt.expected {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
