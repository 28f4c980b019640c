package application

import (
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/samajseva/trust-console/pkg/eventbus"
)

// Controller is the contract every HTTP controller registers through.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

type ApplicationOptions struct {
	Pool     *pgxpool.Pool
	EventBus eventbus.EventBus
	Logger   *logrus.Logger
}

type Application struct {
	pool        *pgxpool.Pool
	eventBus    eventbus.EventBus
	logger      *logrus.Logger
	controllers map[string]Controller
	middleware  []mux.MiddlewareFunc
}

func New(opts *ApplicationOptions) *Application {
	return &Application{
		pool:        opts.Pool,
		eventBus:    opts.EventBus,
		logger:      opts.Logger,
		controllers: map[string]Controller{},
	}
}

func (a *Application) Pool() *pgxpool.Pool {
	return a.pool
}

func (a *Application) EventPublisher() eventbus.EventBus {
	return a.eventBus
}

func (a *Application) Logger() *logrus.Logger {
	return a.logger
}

func (a *Application) RegisterControllers(controllers ...Controller) {
	for _, c := range controllers {
		a.controllers[c.Key()] = c
	}
}

func (a *Application) Controllers() []Controller {
	out := make([]Controller, 0, len(a.controllers))
	for _, c := range a.controllers {
		out = append(out, c)
	}
	return out
}

func (a *Application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}

func (a *Application) Middleware() []mux.MiddlewareFunc {
	return a.middleware
}
