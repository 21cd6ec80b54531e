package flow

import (
	"strconv"

	"slider-bot/api/internal/keyboard"
)

// Callback prefixes per choice axis. The page navigation payloads are
// derived from these by package keyboard.
const (
	LanguagePrefix   = "language_"
	TemplatePrefix   = "template_"
	TypePrefix       = "type_"
	SlideCountPrefix = "slide_count_"
)

// PageSize — пунктов на страницу клавиатуры.
const PageSize = 12

var languageNames = []string{
	"English", "Oʼzbek", "Russian", "Korean", "German", "French", "Italian", "Spanish",
	"Ukrainian", "Polish", "Turkish", "Romanian", "Dutch", "Greek", "Czech", "Portuguese",
	"Swedish", "Hungarian", "Serbian", "Bulgarian", "Danish", "Norwegian", "Finnish",
	"Slovak", "Croatian", "Arabic", "Hebrew", "Lithuanian", "Slovenian", "Bengali",
	"Chinese", "Persian", "Indonesian", "Latvian", "Tamil", "Japanese",
}

var languageEmoji = []string{
	"🇬🇧", "🇺🇿", "🇷🇺", "🇰🇷", "🇩🇪", "🇫🇷", "🇮🇹", "🇪🇸", "🇺🇦", "🇵🇱", "🇹🇷", "🇷🇴",
	"🇳🇱", "🇬🇷", "🇨🇿", "🇵🇹", "🇸🇪", "🇭🇺", "🇷🇸", "🇧🇬", "🇩🇰", "🇳🇴", "🇫🇮", "🇸🇰",
	"🇭🇷", "🇸🇦", "🇮🇱", "🇱🇹", "🇸🇮", "🇧🇩", "🇨🇳", "🇮🇷", "🇮🇩", "🇱🇻", "🇮🇳", "🇯🇵",
}

var templateNames = []string{
	"Mountains", "Organic", "East Asia", "Explore", "3D Float", "Luminous", "Academic",
	"Snowflake", "Floral", "Minimal",
}

var templateEmoji = []string{"🗻", "🌿", "🐼", "🧭", "🌑", "🕯️", "🎓", "❄️", "🌺", "◽"}

var typeNames = []string{
	"Kulguli", "Jiddiy", "Kreativ", "Ma'lumot beruvchi", "Inspirational", "Motivatsion",
	"Tarbiyaviy", "Tarixiy", "Romantik", "Sirli", "Dam olish", "Sarguzashtli", "Hazil",
	"Ilmiy", "Musiqiy", "Dahshat", "Fantaziya", "Action", "Dramatik", "Satirik",
	"She'riy", "Triller", "Sport", "Komediya", "Biografik", "Siyosiy", "Sehrli", "Sir",
	"Sayohat", "Hujjatli film", "Jinoyat", "Ovqat pishirish",
}

var typeEmoji = []string{
	"😂", "😐", "🎨", "📚", "🌟", "💪", "👨‍🎓", "🏛️", "💕", "🕵️‍♂️", "🧘‍♀️", "🗺️", "🤣",
	"🔬", "🎵", "😱", "🦄", "💥", "😮", "🙃", "🌸", "😰", "⚽", "😆", "📜", "🗳️", "✨",
	"🔮", "✈️", "🎥", "🚓", "🍽️",
}

func withEmoji(names, emoji []string) []keyboard.Option {
	out := make([]keyboard.Option, len(names))
	for i, n := range names {
		label := n
		if i < len(emoji) && emoji[i] != "" {
			label = emoji[i] + n
		}
		out[i] = keyboard.Option{Label: label, Value: n}
	}
	return out
}

func Languages() []keyboard.Option { return withEmoji(languageNames, languageEmoji) }
func Templates() []keyboard.Option { return withEmoji(templateNames, templateEmoji) }
func Types() []keyboard.Option     { return withEmoji(typeNames, typeEmoji) }

// SlideCounts — целевое число слайдов, 3..14.
func SlideCounts() []keyboard.Option {
	out := make([]keyboard.Option, 0, 12)
	for i := 3; i < 15; i++ {
		v := strconv.Itoa(i)
		out = append(out, keyboard.Option{Label: v, Value: v})
	}
	return out
}
