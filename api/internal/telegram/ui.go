package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"slider-bot/api/internal/keyboard"
)

const helpMessage = `Commands:
⚪ /menu – Menyuni ko'rish
🤖 /mode – Rejimni tanlash
💰 /balance – Balansni ko'rish
🆘 /help – Yordam
`

// Callback payloads верхнего меню.
const (
	cbNewDeck    = "new_deck"
	cbNewOutline = "new_outline"
	cbModeManual = "set_mode|manual"
	cbModeAuto   = "set_mode|auto"
)

func menuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💻Taqdimot", cbNewDeck),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝Tezis", cbNewOutline),
		),
	)
}

func modeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✍️ Manual", cbModeManual),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🤖 Avto", cbModeAuto),
		),
	)
}

// manualSitesKeyboard — куда нести промпт в ручном режиме.
func manualSitesKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Poe", "https://poe.com/ChatGPT"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Chat OpenAI", "https://chat.openai.com/"),
		),
	)
}

// toMarkup converts a keyboard page into the Telegram inline markup.
func toMarkup(p keyboard.Page) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, row := range p.Rows {
		var btns []tgbotapi.InlineKeyboardButton
		for _, b := range row {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		rows = append(rows, btns)
	}
	var nav []tgbotapi.InlineKeyboardButton
	if p.Prev != nil {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(p.Prev.Label, p.Prev.Data))
	}
	if p.Next != nil {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(p.Next.Label, p.Next.Data))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(p.Back.Label, p.Back.Data),
	})
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}
