// Package main provides launch of the whole application
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	wbfconfig "github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"inpaintapi/internal/config"
	"inpaintapi/internal/gateway"
	"inpaintapi/internal/gateway/cloudinarygw"
	"inpaintapi/internal/gateway/miniogw"
	"inpaintapi/internal/mwlogger"
	"inpaintapi/internal/repository"
	"inpaintapi/internal/service"
	"inpaintapi/internal/transport"
)

func main() {
	// считать энвы и собрать конфиг один раз на старте
	appConfig := wbfconfig.New()
	appConfig.EnableEnv("")
	if err := appConfig.LoadEnvFiles("./.env"); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	cfg := config.Load(appConfig)

	// стартуем логгер
	zlog.InitConsole()
	if err := zlog.SetLevel("info"); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	// слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// открываем базу и накатываем миграцию
	db, err := repository.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open database %q: %v", cfg.SQLitePath, err)
	}
	if err := repository.Migrate(db, "./migrations"); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	repo := repository.NewSQLiteImageRepo(db)

	// подключаемся к медиа-провайдеру
	gw, err := newGateway(cfg)
	if err != nil {
		log.Fatalf("Failed to init media gateway %q: %v", cfg.MediaProvider, err)
	}

	// создаем сервис и хендлеры
	var svc ImageAPIService = service.NewImageService(repo, gw)
	handlers := transport.NewImageHandler(svc)

	// сетапим сервер
	engine := ginext.New(cfg.GinMode)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Authorization", "Cache-Control"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/ping", handlers.SimplePinger)
	engine.POST("/upload", handlers.Upload)       // загрузка пары картинок
	engine.GET("/images", handlers.GetAllImages)  // список, новые сверху
	engine.DELETE("/images/:id", handlers.Delete) // удаление у провайдера и в базе

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: mwlogger.NewMWLogger(engine),
	}

	// Server launch
	go func() {
		log.Printf("Server running on http://localhost%s\n", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				log.Println("Server gracefully stopping...")
			default:
				log.Printf("Server stopped: %v", err)
				stop()
			}
		}
	}()

	// ждем отмены контекста для запуска грейсфул закрытия соединений
	<-ctx.Done()

	shutdown(srv, db)
	log.Println("Exiting app...")
}

func newGateway(cfg *config.Config) (gateway.MediaGateway, error) {
	switch cfg.MediaProvider {
	case config.ProviderMinio:
		return miniogw.New(cfg.Minio)
	default:
		return cloudinarygw.New(cfg.Cloudinary)
	}
}

func shutdown(srv *http.Server, db *sql.DB) {
	log.Println("Interrupt received!!! Starting shutdown sequence...")

	// Stopping HTTP-server:
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Failed to stop HTTP-server correctly:", err)
	}
	log.Println("HTTP-server stopped.")

	// Closing DB connection
	if err := db.Close(); err != nil {
		log.Println("Failed to close DB-conn correctly:", err)
		return
	}
	log.Println("DBconn closed")
}
