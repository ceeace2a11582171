package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	booking "github.com/zenyard/booking"
)

func main() {
	cfg, err := booking.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	if err := booking.CreateSchema(ctx, db); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	users := booking.NewUsersRepository(db)
	teachers := booking.NewTeachersRepository(db)
	sessions := booking.NewSessionsRepository(db)

	provider := booking.NewUserProvider(users)
	tokens := booking.NewTokenService([]byte(cfg.SigningKey), cfg.TokenTTL)
	auther := booking.NewAuthenticator(provider, tokens)
	gate := booking.NewTokenGate(tokens, provider)

	userService := booking.NewUserService(users)
	sessionService := booking.NewSessionService(sessions, users)
	teacherService := booking.NewTeacherService(teachers)

	app := fiber.New(fiber.Config{
		AppName: "booking",
	})

	booking.RegisterRoutes(app, gate, booking.Controllers{
		Auth:     booking.NewAuthController(auther, userService),
		Sessions: booking.NewSessionController(sessionService),
		Teachers: booking.NewTeacherController(teacherService),
		Users:    booking.NewUserController(userService),
	})

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	WaitExitSignal()

	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
