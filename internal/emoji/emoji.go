package emoji

// emojiMap holds emoji and fallback mappings
var emojiMap = map[string][2]string{
	// [emoji, fallback]
	"error":    {"❌", "[ERR]"},
	"warning":  {"⚠️", "[WRN]"},
	"success":  {"✅", "[OK]"},
	"hint":     {"💡", "[TIP]"},
	"chart":    {"📊", "[STATS]"},
	"folder":   {"📁", "[DIR]"},
	"document": {"📄", "[DOC]"},
	"note":     {"📝", "[NOTE]"},
	"target":   {"🎯", "[>]"},
	"frames":   {"🎞️", "[IMG]"},
	"watch":    {"👀", "[WATCH]"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]"
}
