package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (r *Router) handleCommand(msg *tgbotapi.Message) {
	cid := msg.Chat.ID
	switch msg.Command() {
	case "start":
		r.send(cid, "Assalomu alaykum! Men Suniy Intelekt yordamida ishlaydigan Slider AI botman 🤖\n\n"+
			helpMessage+"\nEndi... Xohlaganingizni tanlang!")
	case "help":
		r.send(cid, helpMessage)
	case "menu":
		r.showMenu(cid)
	case "mode":
		if _, err := r.sendMarkup(cid, "Chat rejimini tanlang:", modeKeyboard()); err != nil {
			r.send(cid, "Klaviaturani ko'rsatib bo'lmadi, qayta urinib ko'ring.")
		}
	case "balance":
		r.showBalance(cid, msg.From.ID)
	case "grant":
		r.handleGrant(msg)
	default:
		r.send(cid, "Noma'lum buyruq. "+helpMessage)
	}
}

func (r *Router) showBalance(chatID, userID int64) {
	available, used, err := r.Ledger.Balance(context.Background(), userID)
	if err != nil {
		r.send(chatID, "Balansni o'qib bo'lmadi, keyinroq urinib ko'ring.")
		return
	}
	r.send(chatID, fmt.Sprintf("🟢Sizda %d token mavjud\nSiz %d token ishlatdingiz\n\nBalansni to'ldirish uchun admin bilan bog'laning.", available, used))
}

// handleGrant — пополнение баланса админом: /grant <user_id> <amount>.
func (r *Router) handleGrant(msg *tgbotapi.Message) {
	cid := msg.Chat.ID
	if r.AdminChatID == 0 || cid != r.AdminChatID {
		r.send(cid, "Bu buyruq faqat admin uchun.")
		return
	}
	args := strings.Fields(msg.CommandArguments())
	if len(args) != 2 {
		r.send(cid, "Foydalanish: /grant <user_id> <amount>")
		return
	}
	userID, err1 := strconv.ParseInt(args[0], 10, 64)
	amount, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil || amount <= 0 {
		r.send(cid, "Foydalanish: /grant <user_id> <amount>")
		return
	}
	if err := r.Ledger.Credit(context.Background(), userID, amount); err != nil {
		r.send(cid, fmt.Sprintf("Xatolik: %v", err))
		return
	}
	r.send(cid, fmt.Sprintf("✅ %d token foydalanuvchi %d balansiga qo'shildi", amount, userID))
	if u, err := r.Users.Get(context.Background(), userID); err == nil && u.ChatID != 0 {
		r.send(u.ChatID, fmt.Sprintf("%d tokenlar sizning balansingizga muvaffaqiyatli qo'shildi.", amount))
	}
}
