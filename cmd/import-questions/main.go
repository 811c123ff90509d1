package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/example/citizenprep/internal/config"
	"github.com/example/citizenprep/internal/database"
	"github.com/example/citizenprep/internal/importer"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "question bank to import (.txt, .csv, .xlsx); defaults to QUESTIONS_FILE")
	export := flag.String("export", "", "write every stored question as SQL INSERT statements to this path")
	sheet := flag.String("sheet", "", "worksheet name for Excel files")
	flag.Parse()

	cfg, err := config.Init()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.InitializeSchema(ctx, db); err != nil {
		logger.Fatal("failed to initialize schema", zap.Error(err))
	}

	store := database.NewQuestionStore(db)

	if *export != "" {
		if err := exportQuestions(ctx, store, *export); err != nil {
			logger.Fatal("export failed", zap.Error(err))
		}
		logger.Info("questions exported", zap.String("path", *export))
		return
	}

	path := *file
	if path == "" {
		path = cfg.Setup.QuestionsFile
	}

	importCfg := importer.DefaultImportConfig()
	importCfg.FilePath = path
	if *sheet != "" {
		importCfg.SheetName = *sheet
	}

	result, err := importer.ImportFile(ctx, importCfg, store)
	if result != nil {
		for _, msg := range result.Errors {
			logger.Warn("skipped", zap.String("reason", msg))
		}
	}
	if errors.Is(err, importer.ErrNoQuestions) {
		logger.Fatal("nothing to import", zap.String("file", path))
	}
	if err != nil {
		logger.Fatal("import failed", zap.String("file", path), zap.Error(err))
	}

	counts, err := store.CountByCategory(ctx)
	if err != nil {
		logger.Fatal("failed to count questions", zap.Error(err))
	}

	fmt.Printf("Imported %d of %d questions from %s (%d skipped)\n",
		result.Imported, result.TotalProcessed, filepath.Base(path), result.Skipped)
	for category, n := range counts {
		fmt.Printf("  %-12s %d\n", category+":", n)
	}
}

func exportQuestions(ctx context.Context, store *database.QuestionStore, path string) error {
	questions, err := store.All(ctx)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := importer.ExportSQL(f, questions); err != nil {
		return err
	}
	return f.Close()
}
