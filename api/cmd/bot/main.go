package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"slider-bot/api/internal/config"
	"slider-bot/api/internal/images"
	"slider-bot/api/internal/job"
	"slider-bot/api/internal/ledger"
	"slider-bot/api/internal/llm"
	"slider-bot/api/internal/llm/gemini"
	"slider-bot/api/internal/llm/openai"
	"slider-bot/api/internal/render"
	"slider-bot/api/internal/session"
	"slider-bot/api/internal/store"
	"slider-bot/api/internal/telegram"
)

func main() {
	cfg := config.Load()

	// --- Postgres ---
	dsn := resolveDSN()
	if dsn == "" {
		log.Fatal("database DSN is empty: set DATABASE_URL or POSTGRES_* env vars")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("sql.Open: %v", err)
	}
	// connection pool tune (нагрузка до ~20 rps)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(1 * time.Hour)

	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		log.Printf("db connected: %s", safeDSNSummary(dsn))
	}

	users := store.NewUserRepo(db)
	led := ledger.New(users)
	jobs := job.NewDispatcher(led)

	// --- Sessions: Redis, если задан, иначе память процесса ---
	var sessions session.Store
	if cfg.RedisAddr != "" {
		rs := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rs.Ping(ctx); err != nil {
			log.Fatalf("redis.Ping: %v", err)
		}
		log.Printf("sessions: redis %s/%d", cfg.RedisAddr, cfg.RedisDB)
		sessions = rs
	} else {
		log.Print("sessions: in-memory (REDIS_ADDR not set)")
		sessions = session.NewMemoryStore()
	}

	// --- Движок генерации ---
	var engine llm.Engine
	switch cfg.Engine {
	case "gpt":
		engine = openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		engine = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	log.Printf("engine: %s (%s)", engine.Name(), engine.GetModel())

	// --- Рендер и картинки ---
	var imgs images.Provider
	if cfg.ImagesURL != "" {
		imgs = images.New(cfg.ImagesURL)
	}
	renderer := render.NewHTTPRenderer(cfg.RendererURL, imgs)

	// --- Telegram bot ---
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false

	r := &telegram.Router{
		Bot:      bot,
		Users:    users,
		Sessions: sessions,
		Ledger:   led,
		Jobs:     jobs,
		Engine:   engine,
		Renderer: renderer,

		AdminChatID: cfg.AdminChatID,
		StartTokens: cfg.StartTokens,
	}

	// --- HTTP mux (DefaultServeMux): healthz для платформы ---
	http.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("db: not ok\n" + err.Error()))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	addr := "0.0.0.0:" + cfg.Port

	// --- Choose mode: Webhook vs Polling ---
	if webhookURL := strings.TrimSpace(cfg.WebhookURL); webhookURL != "" {
		startWebhookMode(addr, bot, r, webhookURL)
		return
	}
	startPollingMode(addr, bot, r)
}

// ---------------- Modes -----------------

func startWebhookMode(addr string, bot *tgbotapi.BotAPI, r *telegram.Router, baseURL string) {
	// секретный путь вебхука
	path := "/webhook/" + shortHash(bot.Token)
	public := strings.TrimRight(baseURL, "/") + path

	wh, err := tgbotapi.NewWebhook(public)
	if err != nil {
		log.Fatal(err)
	}
	wh.DropPendingUpdates = true
	if _, err := bot.Request(wh); err != nil {
		log.Fatal(err)
	}

	// tgbotapi.ListenForWebhook регистрирует обработчик на DefaultServeMux
	updates := bot.ListenForWebhook(path)

	go func() {
		for upd := range updates {
			r.HandleUpdate(upd)
		}
		log.Printf("webhook updates channel closed")
	}()

	log.Printf("health server listening on %s/healthz", addr)
	log.Printf("webhook listening on %s%s", addr, path)
	if err := http.ListenAndServe(addr, nil); err != nil { // DefaultServeMux
		log.Fatal(err)
	}
}

func startPollingMode(addr string, bot *tgbotapi.BotAPI, r *telegram.Router) {
	go func() {
		log.Printf("health server listening on %s/healthz", addr)
		if err := http.ListenAndServe(addr, nil); err != nil { // DefaultServeMux
			log.Fatal(err)
		}
	}()

	// Устойчивый поллинг с backoff без log.Fatal/os.Exit
	runPolling(context.Background(), bot, r.HandleUpdate)
}

// ---------------- Polling loop -----------------

var reRetryAfter = regexp.MustCompile(`(?i)retry after\s+(\d+)`)

func retryDelayFromError(err error) time.Duration {
	if err == nil {
		return 0
	}
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "too many requests") { // HTTP 429 от Telegram
		if m := reRetryAfter.FindStringSubmatch(s); len(m) == 2 {
			if n, _ := strconv.Atoi(m[1]); n > 0 {
				return time.Duration(n) * time.Second
			}
		}
		return 3 * time.Second
	}
	var ne net.Error
	if errors.As(err, &ne) {
		if ne.Timeout() {
			return 2 * time.Second
		}
	}
	return 1 * time.Second
}

func runPolling(ctx context.Context, bot *tgbotapi.BotAPI, handle func(tgbotapi.Update)) {
	offset := 0
	baseDelay := 1 * time.Second
	maxDelay := 15 * time.Second

	for {
		select {
		case <-ctx.Done():
			log.Printf("polling: context cancelled")
			return
		default:
		}

		u := tgbotapi.NewUpdate(offset)
		u.Timeout = 30 // long polling timeout (sec)

		updates, err := bot.GetUpdates(u)
		if err != nil {
			d := retryDelayFromError(err)
			if d < baseDelay {
				d = baseDelay
			}
			if d > maxDelay {
				d = maxDelay
			}
			log.Printf("polling error: %v; retry in %v", err, d)
			time.Sleep(d)
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			handle(upd)
		}

		if len(updates) == 0 {
			time.Sleep(200 * time.Millisecond)
		}
	}
}

// ---------------- Helpers -----------------

func resolveDSN() string {
	// Prefer DATABASE_URL if provided
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		return v
	}
	// Build DSN from POSTGRES_* / PG* env vars (single-container default)
	user := getenvDefault("POSTGRES_USER", "sliderbot")
	pass := os.Getenv("POSTGRES_PASSWORD")
	host := getenvDefault("PGHOST", "db")
	port := getenvDefault("PGPORT", "5432")
	name := getenvDefault("POSTGRES_DB", "sliderbot")

	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, pass),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getenvDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func shortHash(s string) string {
	// лёгкий хэш для пути вебхука (не крипто, но стабильно для токена)
	h := uint64(1469598103934665603)
	const prime = 1099511628211
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	// 16-символный hex
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		out[i] = hexdigits[h&0xF]
		h >>= 4
	}
	return string(out)
}

func safeDSNSummary(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "dsn: parse error"
	}
	user := u.User.Username()
	host := u.Host
	port := ""
	if h, p, err := net.SplitHostPort(u.Host); err == nil {
		host, port = h, p
	}
	name := strings.TrimPrefix(u.Path, "/")
	if port == "" {
		return fmt.Sprintf("host=%s db=%s user=%s", host, name, user)
	}
	return fmt.Sprintf("host=%s port=%s db=%s user=%s", host, port, name, user)
}
