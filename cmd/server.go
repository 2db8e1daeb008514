package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"avatarhub/internal/config"
	"avatarhub/internal/core"
	"avatarhub/internal/db"
	"avatarhub/internal/http/handler"
	"avatarhub/internal/http/handler/middleware"
	"avatarhub/internal/http/payload"
	"avatarhub/internal/http/server"
	"avatarhub/internal/remote"
	"avatarhub/internal/repository"
	"avatarhub/internal/storage"
	"avatarhub/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	cfg, err := config.NewApp()
	if err != nil {
		log.NewZapLogger("avatarhub", zapcore.InfoLevel).Errorw("failed to create config", "error", err)
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	logger := log.NewZapLogger("avatarhub", level)
	defer func() { _ = logger.Sync() }()

	// credential store
	credentials, err := newCredentialRepository(logger, cfg)
	if err != nil {
		return err
	}

	// file storage
	disk, err := storage.NewDisk(map[storage.Area]string{
		storage.Uploads:     cfg.UploadDir,
		storage.UserUploads: cfg.UserUploadsDir,
		storage.Generated:   cfg.GeneratedDir,
	})
	if err != nil {
		logger.Errorw("failed to prepare storage directories", "error", err)
		return err
	}

	naming := storage.UniqueNaming()
	if cfg.NamingPolicy == config.NamingLegacy {
		naming = storage.LegacyNaming()
	}

	fetcher := remote.NewFetcher(&http.Client{}, cfg.FetchTimeout, cfg.FetchMaxBytes)

	// services
	accounts := core.NewAccounts(logger, credentials, cfg.BcryptCost)
	media := core.NewMedia(logger, disk, fetcher, naming)

	// handler
	avatarHlr := handler.NewAvatarHandler(
		logger,
		payload.Decoder{},
		accounts,
		media,
		handler.Options{
			PublicBaseURL:  cfg.PublicBaseURL,
			MaxUploadFiles: cfg.MaxUploadFiles,
			MaxUploadBytes: cfg.MaxUploadBytes,
		})

	// register routes
	mux := http.NewServeMux()
	avatarHlr.Routes(mux)

	// middleware
	hdlr := middleware.NewCORSMiddleware(cfg.CORSOrigin).CORS(mux)
	hdlr = middleware.NewRecoveryMiddleware(logger).Recover(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func newCredentialRepository(logger *zap.SugaredLogger, cfg config.App) (core.CredentialRepository, error) {
	if cfg.CredentialsBackend != config.BackendPostgres {
		repo, err := repository.NewDocumentRepository(cfg.CredentialsFile)
		if err != nil {
			logger.Errorw("failed to open credentials document", "error", err, "path", cfg.CredentialsFile)
			return nil, err
		}
		logger.Infow("using document credential store", "path", cfg.CredentialsFile)
		return repo, nil
	}

	dbConn, err := db.NewGormDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return nil, err
	}

	repo := repository.NewUserRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return nil, err
	}

	logger.Infow("using postgres credential store")
	return repo, nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
