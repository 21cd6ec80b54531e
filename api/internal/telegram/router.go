package telegram

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"slider-bot/api/internal/job"
	"slider-bot/api/internal/ledger"
	"slider-bot/api/internal/llm"
	"slider-bot/api/internal/render"
	"slider-bot/api/internal/session"
	"slider-bot/api/internal/store"
)

type Router struct {
	Bot      *tgbotapi.BotAPI
	Users    *store.UserRepo
	Sessions session.Store
	Ledger   *ledger.Ledger
	Jobs     *job.Dispatcher
	Engine   llm.Engine
	Renderer render.Renderer

	AdminChatID int64
	StartTokens int64
}

// HandleUpdate — единая точка входа. Паника в обработчике логируется и
// превращается в сообщение пользователю, процесс живёт дальше.
func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic while handling update %d: %v\n%s", upd.UpdateID, rec, debug.Stack())
			if chatID := updateChatID(upd); chatID != 0 {
				r.send(chatID, "Botda xatolik yuz berdi. Iltimos, qayta urinib ko'ring😊")
			}
		}
	}()

	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	// правки старых сообщений не перезапускают обработку — политика
	if upd.EditedMessage != nil {
		r.send(upd.EditedMessage.Chat.ID, "🥲 Afsuski, xabarni tahrirlash qo'llab quvvatlanmaydi")
		return
	}
	if upd.Message == nil {
		return
	}

	msg := upd.Message
	r.ensureUser(msg)

	if msg.IsCommand() {
		r.handleCommand(msg)
		return
	}
	if msg.Text != "" {
		r.handleText(msg)
	}
}

// ensureUser регистрирует пользователя при первом контакте и обновляет
// last_interaction.
func (r *Router) ensureUser(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	ctx := context.Background()
	uid := msg.From.ID
	ok, err := r.Users.Exists(ctx, uid)
	if err != nil {
		log.Printf("users.Exists(%d): %v", uid, err)
		return
	}
	if !ok {
		u := store.User{
			ID:        uid,
			ChatID:    msg.Chat.ID,
			Username:  msg.From.UserName,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		}
		if err := r.Users.Create(ctx, u, r.StartTokens); err != nil {
			log.Printf("users.Create(%d): %v", uid, err)
			return
		}
	}
	if err := r.Users.Touch(ctx, uid); err != nil {
		log.Printf("users.Touch(%d): %v", uid, err)
	}
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := r.Bot.Send(msg); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

func (r *Router) sendMarkup(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	return r.Bot.Send(msg)
}

func (r *Router) editMarkup(chatID int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup)
	if _, err := r.Bot.Send(edit); err != nil {
		log.Printf("edit %d/%d: %v", chatID, messageID, err)
	}
}

func (r *Router) sendDocument(chatID int64, replyTo int, data []byte, filename string) {
	docMsg := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	docMsg.ReplyToMessageID = replyTo
	if _, err := r.Bot.Send(docMsg); err != nil {
		log.Printf("send document to %d: %v", chatID, err)
		r.send(chatID, fmt.Sprintf("Faylni yuborib bo'lmadi: %v", err))
	}
}

func updateChatID(upd tgbotapi.Update) int64 {
	switch {
	case upd.Message != nil:
		return upd.Message.Chat.ID
	case upd.EditedMessage != nil:
		return upd.EditedMessage.Chat.ID
	case upd.CallbackQuery != nil && upd.CallbackQuery.Message != nil:
		return upd.CallbackQuery.Message.Chat.ID
	}
	return 0
}
