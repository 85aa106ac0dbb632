package main

import (
	"context"

	"go.uber.org/zap"

	"taskdesk/internal/adapter/db"
	"taskdesk/internal/app/controller"
	"taskdesk/internal/config"
	"taskdesk/pkg/translator"
)

// taskdesk opens the local store, brings the schema up to date and wires the
// controllers the desktop GUI embeds. Run standalone it acts as a health
// check for the database file.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationsDir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	store, err := db.Open(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}()

	ctx := context.Background()
	if err := db.EnsureSchema(ctx, store); err != nil {
		logger.Fatal("failed to initialize schema", zap.Error(err))
	}

	users := db.NewUserRepository(store)
	projects := db.NewProjectRepository(store)
	tasks := db.NewTaskRepository(store)

	userController := controller.NewUserController(users, projects, tasks)
	projectController := controller.NewProjectController(projects)
	taskController := controller.NewTaskController(tasks, projects, users)

	allUsers, err := userController.GetAllUsers(ctx)
	if err != nil {
		logger.Fatal("failed to read users", zap.Error(err))
	}
	allProjects, err := projectController.GetAllProjects(ctx)
	if err != nil {
		logger.Fatal("failed to read projects", zap.Error(err))
	}
	allTasks, err := taskController.GetAllTasks(ctx)
	if err != nil {
		logger.Fatal("failed to read tasks", zap.Error(err))
	}

	logger.Info("store ready",
		zap.String("path", cfg.DBPath),
		zap.Int("users", len(allUsers)),
		zap.Int("projects", len(allProjects)),
		zap.Int("tasks", len(allTasks)),
	)
}
