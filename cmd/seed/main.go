package main

import (
	"context"
	"errors"
	"time"

	"github.com/suryatek/quotation-api/internal/application/auth"
	"github.com/suryatek/quotation-api/internal/application/dto"
	"github.com/suryatek/quotation-api/internal/application/usecase"
	"github.com/suryatek/quotation-api/internal/domain"
	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/internal/infrastructure/postgres"
	"github.com/suryatek/quotation-api/pkg/config"
	"github.com/suryatek/quotation-api/pkg/logger"
)

// Seeds an admin account and a starter solar catalog. Safe to re-run: an
// existing email or product name is skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if _, err := authUC.RegisterUser(dto.RegisterRequest{
		Email:    "admin@suryateksolar.in",
		Password: "changeme",
		Name:     "Administrator",
		Role:     entity.RoleAdmin,
	}); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			log.Info().Msg("admin account already present")
		} else {
			log.Fatal().Err(err).Msg("seed admin")
		}
	} else {
		log.Info().Msg("admin account created, change the password")
	}

	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool))
	products := []dto.SaveProductRequest{
		{Name: "540Wp Mono PERC Solar Module", HSNCode: "85414300", Unit: "Nos", UnitPrice: 12000, GSTRate: 12,
			Description: "Half-cut mono PERC, 144 cells"},
		{Name: "5kW On-Grid String Inverter", HSNCode: "85044090", Unit: "Nos", UnitPrice: 45000, GSTRate: 12,
			Description: "Single phase, dual MPPT"},
		{Name: "Module Mounting Structure", HSNCode: "73089090", Unit: "kW", UnitPrice: 4500, GSTRate: 18,
			Description: "Hot-dip galvanized, wind rated 150 km/h"},
		{Name: "DC Cable 4 sq.mm", HSNCode: "85446090", Unit: "Mtr", UnitPrice: 55, GSTRate: 18},
		{Name: "AC Distribution Box", HSNCode: "85371000", Unit: "Nos", UnitPrice: 3500, GSTRate: 18},
		{Name: "Earthing Kit with Lightning Arrestor", HSNCode: "85389000", Unit: "Set", UnitPrice: 7500, GSTRate: 18},
	}
	seeded := 0
	for _, p := range products {
		if _, err := productUC.Create(p); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				continue
			}
			log.Fatal().Err(err).Str("product", p.Name).Msg("seed product")
		}
		seeded++
	}
	log.Info().Int("products", seeded).Msg("catalog seeded")
}
