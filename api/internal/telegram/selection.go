package telegram

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"slider-bot/api/internal/flow"
	"slider-bot/api/internal/keyboard"
	"slider-bot/api/internal/store"
)

func (r *Router) showMenu(chatID int64) {
	// незавершённый выбор при возврате в меню сбрасывается
	_ = r.Sessions.Delete(context.Background(), chatID)
	if _, err := r.sendMarkup(chatID, "Menu:", menuKeyboard()); err != nil {
		log.Printf("menu to %d: %v", chatID, err)
	}
}

func (r *Router) handleCallback(cb tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	cid := cb.Message.Chat.ID
	_, _ = r.Bot.Request(tgbotapi.NewCallback(cb.ID, "")) // ack

	switch cb.Data {
	case cbNewDeck:
		r.startFlow(cid, cb.Message.MessageID, flow.Deck)
		return
	case cbNewOutline:
		r.startFlow(cid, cb.Message.MessageID, flow.Outline)
		return
	case cbModeManual:
		r.setMode(cb, store.ModeManual)
		return
	case cbModeAuto:
		r.setMode(cb, store.ModeAuto)
		return
	case keyboard.BackData:
		r.cancelFlow(cid, cb.Message.MessageID)
		return
	}
	r.handleSelection(cb)
}

func (r *Router) startFlow(chatID int64, messageID int, kind flow.DocKind) {
	s := flow.NewSession(kind)
	s.MenuMessageID = messageID
	if err := r.Sessions.Put(context.Background(), chatID, s); err != nil {
		log.Printf("sessions.Put(%d): %v", chatID, err)
		r.send(chatID, "Sessiyani boshlab bo'lmadi, qayta urinib ko'ring.")
		return
	}
	r.renderStep(chatID, messageID, s)
}

func (r *Router) cancelFlow(chatID int64, messageID int) {
	_ = r.Sessions.Delete(context.Background(), chatID)
	r.editMarkup(chatID, messageID, "Menu:", menuKeyboard())
}

func (r *Router) setMode(cb tgbotapi.CallbackQuery, mode string) {
	cid := cb.Message.Chat.ID
	if err := r.Users.SetMode(context.Background(), cb.From.ID, mode); err != nil {
		log.Printf("users.SetMode(%d): %v", cb.From.ID, err)
		r.send(cid, "Rejimni saqlab bo'lmadi.")
		return
	}
	welcome := "✍️ Manual rejim: tayyor promptni nusxalab, javobni chatga joylashtirasiz."
	if mode == store.ModeAuto {
		welcome = "🤖 Avto rejim: bot hujjatni o'zi yaratadi (token hisobidan)."
	}
	edit := tgbotapi.NewEditMessageText(cid, cb.Message.MessageID, welcome+"\n\n"+helpMessage)
	if _, err := r.Bot.Send(edit); err != nil {
		log.Printf("edit mode msg %d: %v", cid, err)
	}
}

// handleSelection — выбор значения или перелистывание на активном шаге.
func (r *Router) handleSelection(cb tgbotapi.CallbackQuery) {
	ctx := context.Background()
	cid := cb.Message.Chat.ID

	s, err := r.Sessions.Get(ctx, cid)
	if err != nil {
		log.Printf("sessions.Get(%d): %v", cid, err)
		return
	}
	if s == nil {
		r.send(cid, "Sessiya topilmadi. /menu ni bosing.")
		return
	}
	step := s.Step()
	if step.Options == nil {
		// шаг с текстовым вводом, кнопок тут нет
		return
	}

	switch {
	case strings.HasPrefix(cb.Data, "page_"+step.Prefix):
		s.SetPage(keyboard.PageFromCallback(cb.Data, step.Prefix))
	case strings.HasPrefix(cb.Data, step.Prefix):
		if err := s.Select(strings.TrimPrefix(cb.Data, step.Prefix)); err != nil {
			log.Printf("flow.Select chat %d: %v", cid, err)
			return
		}
	default:
		// устаревшая кнопка с прошлого шага — просто перерисуем текущий
	}

	if err := r.Sessions.Put(ctx, cid, s); err != nil {
		log.Printf("sessions.Put(%d): %v", cid, err)
		return
	}

	if s.State == flow.AwaitingTopic {
		edit := tgbotapi.NewEditMessageText(cid, cb.Message.MessageID, topicQuestion(s.Kind))
		if _, err := r.Bot.Send(edit); err != nil {
			log.Printf("edit topic question %d: %v", cid, err)
		}
		return
	}
	r.renderStep(cid, cb.Message.MessageID, s)
}

func (r *Router) renderStep(chatID int64, messageID int, s *flow.Session) {
	step := s.Step()
	page := keyboard.BuildPage(step.Options, s.Page, flow.PageSize, step.Prefix)
	r.editMarkup(chatID, messageID, stepText(s), toMarkup(page))
}

func stepText(s *flow.Session) string {
	deck := s.Kind == flow.Deck
	switch s.State {
	case flow.SelectingLanguage:
		if deck {
			return "Taqdimotingiz tilini tanlang:"
		}
		return "Tezisingiz tilini tanlang:"
	case flow.SelectingTemplate:
		return "Taqdimotingiz shablonini tanlang:"
	case flow.SelectingType:
		if deck {
			return "Taqdimotingiz turini tanlang:"
		}
		return "Tezis turini tanlang:"
	case flow.SelectingSlideCount:
		return "Taqdimotingiz uchun slaydlarning taxminiy sonini tanlang:"
	default:
		return topicQuestion(s.Kind)
	}
}

func topicQuestion(kind flow.DocKind) string {
	if kind == flow.Deck {
		return "Taqdimotingiz mavzusi nima?"
	}
	return "Tezis mavzusi nima?"
}
