package app

import (
	"net/http"

	"chapter-app-go/internal/config"
	"chapter-app-go/internal/db"
	activitydomain "chapter-app-go/internal/domain/activity"
	chapterdomain "chapter-app-go/internal/domain/chapter"
	topicdomain "chapter-app-go/internal/domain/topic"
	userdomain "chapter-app-go/internal/domain/user"
	activityrepo "chapter-app-go/internal/repository/postgres/activity"
	chapterrepo "chapter-app-go/internal/repository/postgres/chapter"
	topicrepo "chapter-app-go/internal/repository/postgres/topic"
	userrepo "chapter-app-go/internal/repository/postgres/user"
	"chapter-app-go/internal/transport/httpserver"
	"chapter-app-go/internal/transport/httpserver/handler"
	"chapter-app-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

// New builds the whole application: one shared connection pool, one service
// per domain, everything injected from here. The config comes in from main,
// which loads it before the logger exists.
func New(cfg config.Config, log logger.Logger) (*App, error) {
	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	chapterService := chapterdomain.NewService(chapterrepo.NewPostgres(dbConn))
	userService := userdomain.NewService(userrepo.NewPostgres(dbConn))
	topicService := topicdomain.NewService(topicrepo.NewPostgres(dbConn))
	activityService := activitydomain.NewService(activityrepo.NewPostgres(dbConn), topicService)

	handlers := handler.New(chapterService, userService, topicService, activityService, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
