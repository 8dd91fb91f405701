package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/suryatek/quotation-api/internal/application/auth"
	"github.com/suryatek/quotation-api/internal/application/quotation"
	"github.com/suryatek/quotation-api/internal/application/usecase"
	"github.com/suryatek/quotation-api/internal/infrastructure/pdf"
	"github.com/suryatek/quotation-api/internal/infrastructure/postgres"
	httpiface "github.com/suryatek/quotation-api/internal/interfaces/http"
	"github.com/suryatek/quotation-api/pkg/config"
	"github.com/suryatek/quotation-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().Str("env", cfg.App.Env).Msg("starting quotation api")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := postgres.NewPool(ctx, cfg.DB)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	proposalCfg, err := config.LoadProposal(cfg.Proposal.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Proposal.Path).Msg("load proposal config")
	}

	quotationRepo := postgres.NewQuotationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	composer := pdf.NewProposalComposer(proposalCfg)

	saveUC := quotation.NewSaveQuotationUseCase(txRunner, quotationRepo, proposalCfg.ProposalRows, log)
	pdfUC := quotation.NewPDFUseCase(quotationRepo, proposalCfg.ProposalRows, composer)
	productUC := usecase.NewProductUseCase(productRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	app.Use(recover.New())
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	httpiface.SetupRoutes(app, httpiface.RouterDeps{
		Auth:       httpiface.NewAuthHandler(authUC),
		Products:   httpiface.NewProductHandler(productUC),
		Quotations: httpiface.NewQuotationHandler(saveUC, pdfUC, log),
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("http server")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
