package language

import "testing"

func TestTo3LetterCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "eng"},
		{"en-US", "eng"},
		{"pt", "por"},
		{"pt-BR", "por"},
		{"de", "deu"},
		{"ja", "jpn"},
		{"zz-XX", "zz"},
	}

	m := NewMapper()
	for _, tt := range tests {
		if got := m.To3LetterCode(tt.in); got != tt.want {
			t.Errorf("To3LetterCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
