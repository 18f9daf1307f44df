package main

import (
	stdlog "log"

	"github.com/gin-gonic/gin"

	"github.com/buildsafe/compliance-doc-service/client"
	"github.com/buildsafe/compliance-doc-service/config"
	"github.com/buildsafe/compliance-doc-service/handler"
	"github.com/buildsafe/compliance-doc-service/logger"
	"github.com/buildsafe/compliance-doc-service/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("failed to load config: %v", err)
	}

	log := logger.New("compliance-doc-service", cfg.Environment, cfg.LogLevel)

	tesseractClient := client.NewTesseractClient(cfg.TessdataPath)
	qrClient := client.NewQRClient()
	pdfProcessor := service.NewPDFProcessor()

	complianceService := service.NewComplianceService(
		pdfProcessor,
		tesseractClient,
		qrClient,
		cfg,
		logger.WithComponent(log, "compliance_service"),
	)

	complianceHandler := handler.NewComplianceHandler(
		complianceService,
		cfg,
		logger.WithComponent(log, "compliance_handler"),
	)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Compliance Document Service",
		})
	})

	router.POST("/check-docs", complianceHandler.CheckDocs)

	log.Info().Str("port", cfg.ServerPort).Msg("starting compliance document service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
