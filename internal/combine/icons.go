package combine

import "strings"

const defaultLangIcon = "📄"

var langIcons = map[string]string{
	"javascript": "🟨",
	"typescript": "🔷",
	"python":     "🐍",
	"java":       "☕",
	"cpp":        "⚙️",
	"c":          "⚙️",
	"csharp":     "🔵",
	"go":         "🐹",
	"rust":       "🦀",
	"php":        "🐘",
	"ruby":       "💎",
	"swift":      "🍎",
	"kotlin":     "🟣",
	"html":       "🌐",
	"css":        "🎨",
	"scss":       "🎨",
	"sql":        "🗃️",
	"bash":       "🐚",
	"shell":      "🐚",
	"powershell": "💙",
	"yaml":       "📄",
	"json":       "📋",
	"xml":        "📰",
	"markdown":   "📝",
	"plain":      "📄",
}

// LanguageIcon returns the emoji shown next to a language group heading.
func LanguageIcon(lang string) string {
	if icon, ok := langIcons[strings.ToLower(lang)]; ok {
		return icon
	}

	return defaultLangIcon
}
