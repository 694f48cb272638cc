package main

import (
	"fmt"
	"os"

	"github.com/bpdigital/contract-repository/internal/auth"
	"github.com/bpdigital/contract-repository/internal/config"
	"github.com/bpdigital/contract-repository/internal/db"
	"github.com/bpdigital/contract-repository/internal/excel"
	httphandler "github.com/bpdigital/contract-repository/internal/http"
	"github.com/bpdigital/contract-repository/internal/http/middleware"
	"github.com/bpdigital/contract-repository/internal/integration"
	"github.com/bpdigital/contract-repository/internal/logger"
	"github.com/bpdigital/contract-repository/internal/pdf"
	"github.com/bpdigital/contract-repository/internal/repository"
	"github.com/bpdigital/contract-repository/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	contractRepo := repository.NewContractRepository(database)
	typeRepo := repository.NewContractTypeRepository(database)

	var banking integration.CoreBanking
	switch cfg.Integration.CoreBanking {
	case "mock":
		banking = integration.NewMockCoreBanking(log)
	default:
		log.Fatal().Str("core_banking", cfg.Integration.CoreBanking).Msg("unknown core banking integration")
	}

	contractService := service.NewContractService(contractRepo, typeRepo, banking, cfg, log)
	typeService := service.NewContractTypeService(typeRepo, log)

	excelGenerator := excel.NewGenerator()
	pdfGenerator := pdf.NewGenerator()

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(contractService, typeService, banking, excelGenerator, pdfGenerator, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Str("core_banking", banking.SystemName()).Msg("starting contract service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
