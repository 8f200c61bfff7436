package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dragonante-server/internal/config"
	"dragonante-server/internal/mux"
	"dragonante-server/pkg/room"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10
const shutdownTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (overrides the configuration)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	listen := cfg.Addr
	if *addr != "" {
		listen = *addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pitBoss := room.NewPitBoss(cfg.Game, cfg.StartGameDelay, logrus.StandardLogger())
	pitBoss.StartShift(ctx)

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet},
	})

	srv := &http.Server{
		Addr:         listen,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, pitBoss))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("could not shut down cleanly")
		}
	}()

	logrus.WithField("addr", srv.Addr).WithField("version", Version).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("server stopped")
	}

	logrus.Info("shut down")
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" || !term.IsTerminal(int(os.Stdout.Fd())) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
