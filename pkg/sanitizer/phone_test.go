package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid E.164 format",
			input: "+12015550123",
			want:  "+12015550123",
		},
		{
			name:  "with spaces and dashes",
			input: "+1 201-555-0123",
			want:  "+12015550123",
		},
		{
			name:  "whatsapp channel prefix",
			input: "whatsapp:+12015550123",
			want:  "+12015550123",
		},
		{
			name:  "upper-case channel prefix",
			input: " WhatsApp:+1 (201) 555-0123 ",
			want:  "+12015550123",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only prefix",
			input: "whatsapp:",
			want:  "",
		},
		{
			name:  "not a phone",
			input: "not-a-phone",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeContact_FallsBackToCleanText(t *testing.T) {
	if got := NormalizeContact("  12345 ", DefaultRegions); got != "12345" {
		t.Errorf("NormalizeContact() = %q, want %q", got, "12345")
	}
	if got := NormalizeContact("whatsapp:+12015550123", DefaultRegions); got != "+12015550123" {
		t.Errorf("NormalizeContact() = %q, want %q", got, "+12015550123")
	}
}
