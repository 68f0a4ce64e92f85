package signals

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/AshkanSharifii/blog/internal/utils/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SignalHandler drains the daemon on SIGINT/SIGTERM or an explicit Stop.
// Closers run in the order they were added, after the HTTP server stopped
// accepting requests.
type SignalHandler struct {
	app         *fiber.App
	waitSeconds int

	mu      sync.Mutex
	closers []func()
	once    sync.Once
}

func NewSignalHandler(app *fiber.App, waitSeconds int) *SignalHandler {
	sh := &SignalHandler{
		app:         app,
		waitSeconds: waitSeconds,
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		os.Interrupt,
	)

	go func() {
		s := <-sigc
		logger.Log().Info("Received shutdown signal",
			zap.String(logger.LogKeyContext, logger.LogContextSignal),
			zap.String("signal", s.String()),
		)
		sh.Stop()
	}()

	return sh
}

// SetApp hands over the fiber app once it is built.
func (sh *SignalHandler) SetApp(app *fiber.App) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.app = app
}

// AddCloser registers a teardown step.
func (sh *SignalHandler) AddCloser(closeFn func()) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.closers = append(sh.closers, closeFn)
}

// Stop drains the server once; later calls are no-ops.
func (sh *SignalHandler) Stop() {
	sh.once.Do(sh.shutdown)
}

func (sh *SignalHandler) shutdown() {
	logger.Log().Info(fmt.Sprintf("Waiting up to %d seconds for open requests...", sh.waitSeconds),
		zap.String(logger.LogKeyContext, logger.LogContextSignal),
	)

	if sh.app != nil {
		timeout := time.Duration(sh.waitSeconds) * time.Second
		if err := sh.app.ShutdownWithTimeout(timeout); err != nil {
			logger.Log().Warn("Error shutting down http server",
				zap.String(logger.LogKeyContext, logger.LogContextSignal),
				zap.Error(err),
			)
		}
	}

	sh.mu.Lock()
	closers := sh.closers
	sh.mu.Unlock()

	for _, closeFn := range closers {
		closeFn()
	}

	logger.Log().Info("Quitting...",
		zap.String(logger.LogKeyContext, logger.LogContextSignal),
	)
	os.Exit(0)
}
