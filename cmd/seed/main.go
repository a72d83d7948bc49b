// cmd/seed/main.go
// 語彙カタログのExcelファイルをデータベースに取り込むCLIです。
//
//	go run ./cmd/seed -file vocabulary.xlsx [-sheet Sheet1]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"linguaquest/internal/config"
	"linguaquest/internal/importer"
	"linguaquest/internal/model"
	"linguaquest/internal/repository"
)

func main() {
	filePath := flag.String("file", "", "path to the vocabulary Excel file")
	sheetName := flag.String("sheet", "", "sheet name (defaults to the first sheet)")
	configPath := flag.String("config", "./configs", "path to the config directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *filePath == "" {
		logger.Error("Missing required -file flag")
		flag.Usage()
		os.Exit(1)
	}

	if err := config.LoadConfig(*configPath); err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.AutoMigrate(&model.VocabularyItem{}); err != nil {
		logger.Error("Error migrating vocabulary schema", slog.Any("error", err))
		os.Exit(1)
	}

	imp := importer.NewExcelImporter(db, repository.NewGormVocabularyRepository())

	result, err := imp.ImportFile(context.Background(), *filePath, *sheetName)
	if err != nil {
		logger.Error("Import failed", slog.Any("error", err))
		os.Exit(1)
	}

	for _, e := range result.Errors {
		logger.Warn("Import row error", slog.String("detail", e))
	}
	logger.Info("Import completed",
		slog.Int("processed", result.TotalProcessed),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)),
	)
}
