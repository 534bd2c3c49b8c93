package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"civigo/backend/internal/api/handler"
	"civigo/backend/internal/catalog"
	"civigo/backend/internal/geo"
	"civigo/backend/internal/mapfeed"
	"civigo/backend/internal/notify"
	"civigo/backend/internal/prefs"
	"civigo/backend/internal/store"
)

// setupPrefs connects the preference slot. Redis keeps the dark-mode flag
// across restarts; without REDIS_ADDR the prototype falls back to memory.
func setupPrefs() prefs.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, display preferences will not survive restarts")
		return prefs.NewMemoryStore()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}
	log.Println("Redis connection established.")
	return prefs.NewRedisStore(rdb)
}

// setupNotifier wires the Telegram alert channel when configured.
func setupNotifier() notify.Notifier {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chatIDStr == "" {
		return notify.Noop{}
	}
	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
	}
	notifier, err := notify.NewTelegramNotifier(token, chatID)
	if err != nil {
		log.Fatalf("Failed to start Telegram notifier: %v", err)
	}
	return notifier
}

func main() {
	log.Println("Starting CiviGo Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	// 1. Dependencies
	localesDir := os.Getenv("LOCALES_DIR")
	if localesDir == "" {
		localesDir = "locales"
	}
	cat, err := catalog.Load(localesDir)
	if err != nil {
		log.Fatalf("Failed to load category catalog: %v", err)
	}

	complaints := store.NewStore(store.DemoSeed())
	prefStore := setupPrefs()
	notifier := setupNotifier()
	provider := geo.NewRandomProvider(time.Now().UnixNano())

	// 2. Map feed hub
	hub := mapfeed.NewManagerService(complaints)
	go hub.Run()

	// 3. Gin routing
	r := gin.Default()
	h := handler.NewHandler(complaints, hub, prefStore, notifier, cat, provider, os.Getenv("ADMIN_TOKEN"))

	r.POST("/auth/login", h.Login)
	r.POST("/auth/register", h.Register)

	authed := r.Group("/", h.RequireUser)
	authed.GET("/complaints", h.ListComplaints)
	authed.POST("/complaints", h.CreateComplaint)
	authed.GET("/complaints/types", h.ListTypes)
	authed.GET("/complaints/:id", h.GetComplaint)
	authed.POST("/complaints/:id/upvote", h.ToggleUpvote)
	authed.DELETE("/complaints/:id", h.DeleteComplaint)
	authed.GET("/map/markers", h.ListMarkers)
	authed.GET("/ws/map", h.ServeMapFeed)
	authed.GET("/prefs/dark-mode", h.GetDarkMode)
	authed.PUT("/prefs/dark-mode", h.SetDarkMode)

	admin := r.Group("/admin", h.RequireAdmin)
	admin.PATCH("/complaints/:id/status", h.SetStatus)
	admin.DELETE("/complaints/:id", h.AdminDeleteComplaint)

	// 4. HTTP server
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:           addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
