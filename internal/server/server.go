package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/eurofurence/reg-grailpay-cli/internal/config"
	"github.com/eurofurence/reg-grailpay-cli/internal/interaction"
	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
	"github.com/eurofurence/reg-grailpay-cli/internal/restapi/middleware"
	v1health "github.com/eurofurence/reg-grailpay-cli/internal/restapi/v1/health"
	v1webhooks "github.com/eurofurence/reg-grailpay-cli/internal/restapi/v1/webhooks"
)

const shutdownTimeout = 5 * time.Second

func NewServer(ctx context.Context, conf *config.ListenConfig, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", conf.BaseAddress, conf.Port),
		Handler:      router,
		ReadTimeout:  time.Second * time.Duration(conf.ReadTimeout),
		WriteTimeout: time.Second * time.Duration(conf.WriteTimeout),
		IdleTimeout:  time.Second * time.Duration(conf.IdleTimeout),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}
}

func CreateRouter(i interaction.Interactor, conf *config.ListenConfig) chi.Router {
	router := chi.NewRouter()

	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestIdMiddleware())
	router.Use(middleware.LogRequestIdMiddleware())

	v1health.Create(router)

	router.Group(func(r chi.Router) {
		r.Use(middleware.TokenHandlerMiddleware(conf.Token))
		v1webhooks.Create(r, i)
	})

	return router
}

// Serve runs the webhook receiver until ctx is canceled, then shuts it down gracefully.
func Serve(ctx context.Context, srv *http.Server) error {
	logger := logging.LoggerFromContext(ctx)

	errs := make(chan error, 1)
	go func() {
		logger.Info("webhook receiver listening on %s", srv.Addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Stopping webhook receiver now")

	tCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(tCtx); err != nil {
		return fmt.Errorf("couldn't shutdown server gracefully: %w", err)
	}
	return nil
}
