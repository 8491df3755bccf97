package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/nasir9967/skillbazaar/internal/cache"
	"github.com/nasir9967/skillbazaar/internal/gateway"
	"github.com/nasir9967/skillbazaar/internal/handlers"
	"github.com/nasir9967/skillbazaar/internal/middlewares"
	"github.com/nasir9967/skillbazaar/internal/repository"
	"github.com/nasir9967/skillbazaar/internal/service"
	"github.com/nasir9967/skillbazaar/pkg/auth"
	"github.com/nasir9967/skillbazaar/pkg/config"
	"github.com/nasir9967/skillbazaar/pkg/db"
	"github.com/nasir9967/skillbazaar/pkg/mq"
	"github.com/nasir9967/skillbazaar/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())

	shutdownTracer := obs.InitTracer("skillbazaar-api")

	// DB + migrations
	gdb := must(db.Open(cfg.PostgresDSN))
	userRepo := repository.NewUserRepo(gdb)
	skillRepo := repository.NewSkillRepo(gdb)
	bookingRepo := repository.NewBookingRepo(gdb)
	if err := errsOf(userRepo.Migrate(), skillRepo.Migrate(), bookingRepo.Migrate()); err != nil {
		log.Fatal(err)
	}

	// Redis listing cache
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	skillCache := cache.NewSkillCache(rdb, time.Duration(cfg.SkillCacheTTLSec)*time.Second)

	// Event publisher
	pub := must(mq.NewPublisher(mq.PublisherConfig{
		URL:      cfg.RabbitURL,
		Exchange: cfg.MQExchange,
		AppID:    "skillbazaar-api",
	}))
	defer pub.Close()

	// Payment gateway
	orders := gateway.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	verifier := gateway.NewVerifier(cfg.RazorpayKeySecret)

	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)

	authSvc := service.NewAuthSvc(userRepo, tokens)
	skillSvc := service.NewSkillSvc(skillRepo, userRepo, skillCache)
	bookingSvc := service.NewBookingSvc(bookingRepo, skillRepo, userRepo, orders, verifier, pub)
	dashSvc := service.NewDashboardSvc(skillRepo)

	r := gin.Default()

	ah := handlers.NewAuthHandler(authSvc)
	sh := handlers.NewSkillHandler(skillSvc)
	bh := handlers.NewBookingHandler(bookingSvc)
	dh := handlers.NewDashboardHandler(dashSvc)

	r.POST("/register", ah.Register)
	r.POST("/login", ah.Login)
	r.GET("/skills", sh.List)

	secured := r.Group("")
	secured.Use(middlewares.JWTAuth(tokens))
	{
		business := secured.Group("")
		business.Use(middlewares.RequireRole("business"))
		{
			business.POST("/skills", sh.Create)
			business.PUT("/skills/:id", sh.Update)
			business.DELETE("/skills/:id", sh.Delete)
			business.GET("/my-services", sh.Mine)
		}

		secured.GET("/dashboard", dh.Get)

		secured.POST("/bookings", bh.Create)
		secured.GET("/bookings", bh.List)
		secured.POST("/create-order", bh.CreateOrder)
		secured.POST("/verify-payment", bh.VerifyPayment)
		secured.POST("/bookings/:id/status", bh.UpdateStatus)
		secured.POST("/bookings/:id/review", bh.Review)
	}

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Println("[api] listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = rdb.Close()
	_ = shutdownTracer(ctx)
	log.Println("[api] stopped")
}

func errsOf(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
