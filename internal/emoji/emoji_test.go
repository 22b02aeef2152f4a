package emoji

import "testing"

func TestGetEmoji(t *testing.T) {
	defer SetEmojiDisabled(false)

	tests := []struct {
		name     string
		key      string
		disabled bool
		want     string
	}{
		{"emoji enabled", "success", false, "✅"},
		{"emoji disabled", "success", true, "[OK]"},
		{"fallback for folder", "folder", true, "[DIR]"},
		{"unknown key", "nope", false, "[?]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetEmojiDisabled(tt.disabled)
			if IsEmojiDisabled() != tt.disabled {
				t.Fatalf("IsEmojiDisabled() = %v, want %v", IsEmojiDisabled(), tt.disabled)
			}
			if got := GetEmoji(tt.key); got != tt.want {
				t.Errorf("GetEmoji(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
