package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pawction/internal/app"
	"github.com/GlebRadaev/pawction/internal/config"
	"github.com/GlebRadaev/pawction/pkg/auth"
)

const issuedTokenTTL = 24 * time.Hour

//	@title			Pawction API
//	@version		1.0
//	@description	Pet auctions with wallet deposit holds and settlement

// @host						localhost:8080
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.New()

	if cfg.IssueTokenFor > 0 {
		token, err := auth.NewJWTService(cfg.JWTSecret).GenerateJWT(cfg.IssueTokenFor, time.Now().Add(issuedTokenTTL))
		if err != nil {
			log.Fatal().Err(err).Msg("Can't issue token")
		}
		fmt.Println(token)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New(cfg)
	err := app.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	err = app.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("All systems closed with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}
