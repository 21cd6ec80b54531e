package telegram

import (
	"context"
	"errors"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"slider-bot/api/internal/doc"
	"slider-bot/api/internal/flow"
	"slider-bot/api/internal/job"
	"slider-bot/api/internal/ledger"
	"slider-bot/api/internal/llm"
	"slider-bot/api/internal/store"
	"slider-bot/api/internal/tagtext"
	"slider-bot/api/internal/util"
)

// Запасные имена файлов, когда в ответе не оказалось [TITLE].
const (
	fallbackDeckTitle    = "taqdimot"
	fallbackOutlineTitle = "hujjat"
)

func (r *Router) handleText(msg *tgbotapi.Message) {
	ctx := context.Background()
	cid := msg.Chat.ID

	s, err := r.Sessions.Get(ctx, cid)
	if err != nil {
		log.Printf("sessions.Get(%d): %v", cid, err)
		return
	}
	if s == nil {
		return
	}
	switch s.State {
	case flow.AwaitingTopic:
		r.onTopic(msg, s)
	case flow.AwaitingManualReply:
		r.onManualReply(msg, s)
	default:
		// текст посреди выбора кнопками игнорируем
	}
}

func (r *Router) onTopic(msg *tgbotapi.Message, s *flow.Session) {
	ctx := context.Background()
	cid := msg.Chat.ID

	if err := s.SetTopic(msg.Text); err != nil {
		log.Printf("flow.SetTopic chat %d: %v", cid, err)
		return
	}
	req, err := s.BuildRequest()
	if err != nil {
		log.Printf("flow.BuildRequest chat %d: %v", cid, err)
		r.send(cid, "Sessiya buzilgan, /menu dan qayta boshlang.")
		_ = r.Sessions.Delete(ctx, cid)
		return
	}

	u, err := r.Users.Get(ctx, msg.From.ID)
	if err != nil {
		log.Printf("users.Get(%d): %v", msg.From.ID, err)
		r.send(cid, "Profilni o'qib bo'lmadi, keyinroq urinib ko'ring.")
		return
	}

	if u.Mode == store.ModeAuto {
		_ = r.Sessions.Delete(ctx, cid)
		r.startGeneration(cid, msg.From.ID, msg.MessageID, req)
		return
	}

	// ручной режим: отдаём собранный промпт для копирования
	prompt := tgbotapi.NewMessage(cid, "`"+req.Prompt()+"`")
	prompt.ParseMode = tgbotapi.ModeMarkdown
	if _, err := r.Bot.Send(prompt); err != nil {
		// мавзу с неэкранируемыми символами — просим ввести заново
		s.ReopenTopic()
		_ = r.Sessions.Put(ctx, cid, s)
		r.send(cid, "Kiritilgan ma'lumotlarni tekshiring va mavzuni qayta kiriting😊")
		return
	}
	s.AwaitManualReply()
	if err := r.Sessions.Put(ctx, cid, s); err != nil {
		log.Printf("sessions.Put(%d): %v", cid, err)
	}
	instr := tgbotapi.NewMessage(cid, "1) Bundan oldingi xabarni ko'rsatma bilan nusxalang va qayta ishlang😊"+
		"\n2) Qayta ishlangan so'rovning javobidan nusxa oling va uni chatga joylashtiring😊"+
		"\n\nTavsiya etilgan veb-saytlar:")
	instr.ReplyMarkup = manualSitesKeyboard()
	if _, err := r.Bot.Send(instr); err != nil {
		log.Printf("manual instructions to %d: %v", cid, err)
	}
}

// onManualReply принимает вставленный пользователем ответ LLM и гонит его
// по той же цепочке парсер→модель→рендер, минуя бэкенд и леджер.
func (r *Router) onManualReply(msg *tgbotapi.Message, s *flow.Session) {
	ctx := context.Background()
	cid := msg.Chat.ID

	req, err := s.BuildRequest()
	if err != nil {
		log.Printf("flow.BuildRequest chat %d: %v", cid, err)
		r.send(cid, "Sessiya buzilgan, /menu dan qayta boshlang.")
		_ = r.Sessions.Delete(ctx, cid)
		return
	}
	out, err := r.buildFromReply(ctx, req, msg.Text)
	if err != nil {
		// остаёмся в ожидании — пользователь вставит исправленный ответ
		r.send(cid, "Kiritilgan ma'lumotlarni tekshiring va qayta urinib ko'ring😊")
		return
	}
	r.sendDocument(cid, msg.MessageID, out.Bytes, out.Filename)
	_ = r.Sessions.Delete(ctx, cid)
}

func (r *Router) startGeneration(chatID, userID int64, replyTo int, req flow.Request) {
	ctx := context.Background()
	j, err := r.Jobs.Submit(ctx, userID, chatID, r.runner(req))
	switch {
	case errors.Is(err, ledger.ErrInsufficientBalance):
		r.send(chatID, "Tokenlaringiz yetarli emas😊")
		return
	case errors.Is(err, job.ErrBusy):
		r.send(chatID, "Oldingi hujjat hali tayyorlanmoqda, kutib turing⌛")
		return
	case err != nil:
		log.Printf("jobs.Submit chat %d: %v", chatID, err)
		r.send(chatID, "Some error happened. Please try again😊")
		return
	}

	indicator := tgbotapi.NewMessage(chatID, "⌛")
	indicator.ReplyToMessageID = replyTo
	sent, err := r.Bot.Send(indicator)
	if err != nil {
		log.Printf("indicator to %d: %v", chatID, err)
	}

	go func() {
		res := <-j.Done
		if sent.MessageID != 0 {
			_, _ = r.Bot.Request(tgbotapi.NewDeleteMessage(chatID, sent.MessageID))
		}
		if res.Err != nil {
			r.send(chatID, generationErrorText(res.Err))
			return
		}
		r.sendDocument(chatID, replyTo, res.Output.Bytes, res.Output.Filename)
	}()
}

func (r *Router) runner(req flow.Request) job.Runner {
	return func(ctx context.Context) (job.Output, error) {
		text, tokens, err := r.Engine.Complete(ctx, req.Prompt())
		if err != nil {
			return job.Output{}, err
		}
		out, err := r.buildFromReply(ctx, req, text)
		if err != nil {
			return job.Output{}, err
		}
		out.Tokens = int64(tokens)
		return out, nil
	}
}

// buildFromReply — общий хвост конвейера: текст ответа → блоки → модель →
// файл. Отсутствие [TITLE] лечится запасным именем, пустой ответ — нет.
func (r *Router) buildFromReply(ctx context.Context, req flow.Request, reply string) (job.Output, error) {
	reply = util.StripCodeFences(reply)
	if req.Kind == flow.Deck {
		groups, err := tagtext.ParseSlides(reply)
		if err != nil {
			return job.Output{}, err
		}
		deck, err := doc.BuildDeck(groups)
		if err != nil && !errors.Is(err, doc.ErrMissingTitle) {
			return job.Output{}, err
		}
		if len(deck.Slides) == 0 {
			return job.Output{}, tagtext.ErrEmpty
		}
		if deck.Title == "" {
			deck.Title = fallbackDeckTitle
		}
		o, err := r.Renderer.RenderDeck(ctx, deck, req.Template)
		if err != nil {
			return job.Output{}, err
		}
		return job.Output{Bytes: o.Bytes, Filename: o.Filename}, nil
	}

	blocks, err := tagtext.ParseBlocks(reply)
	if err != nil {
		return job.Output{}, err
	}
	d, err := doc.BuildOutline(blocks)
	if err != nil && !errors.Is(err, doc.ErrMissingTitle) {
		return job.Output{}, err
	}
	if d.Title == "" {
		d.Title = fallbackOutlineTitle
	}
	o, err := r.Renderer.RenderOutline(ctx, d)
	if err != nil {
		return job.Output{}, err
	}
	return job.Output{Bytes: o.Bytes, Filename: o.Filename}, nil
}

func generationErrorText(err error) string {
	switch {
	case errors.Is(err, llm.ErrOverloaded):
		return "System is currently overloaded. Please try again😊"
	case errors.Is(err, llm.ErrTooLarge):
		return "Hujjat juda katta. Iltimos, qayta urinib ko'ring😊"
	case errors.Is(err, tagtext.ErrEmpty):
		return "Javobni o'qib bo'lmadi. Iltimos, qayta urinib ko'ring😊"
	default:
		return "Some error happened. Please try again😊"
	}
}
