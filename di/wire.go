//go:build wireinject
// +build wireinject

package di

import (
	"encore/config"
	"encore/infras/jwt"
	"encore/infras/kafka"
	"encore/infras/mailer"
	"encore/infras/mongo"
	"encore/infras/otel"
	"encore/infras/postgres"
	"encore/infras/redis"
	"encore/infras/s3"
	"encore/internal/domains/identity"
	"encore/permissions"
	"encore/shared/cache"
	"encore/transport/http"
	"encore/transport/http/middleware"
	"encore/transport/http/router"
	"encore/transport/ws"

	authService "encore/internal/domains/auth/service"
	bookingEvent "encore/internal/domains/booking/event"
	bookingRepository "encore/internal/domains/booking/repository"
	bookingService "encore/internal/domains/booking/service"
	messageRepository "encore/internal/domains/message/repository"
	messageService "encore/internal/domains/message/service"
	notificationService "encore/internal/domains/notification/service"
	showRepository "encore/internal/domains/show/repository"
	showService "encore/internal/domains/show/service"
	userRepository "encore/internal/domains/user/repository"
	userService "encore/internal/domains/user/service"

	authHandler "encore/internal/handlers/auth"
	bookingHandler "encore/internal/handlers/booking"
	"encore/internal/handlers/consumer"
	emailHandler "encore/internal/handlers/email"
	healthHandler "encore/internal/handlers/health"
	messageHandler "encore/internal/handlers/message"
	pagesHandler "encore/internal/handlers/pages"
	showHandler "encore/internal/handlers/show"
	userHandler "encore/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	mongo.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	mailer.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var realtime = wire.NewSet(
	ws.NewHub,
	wire.Bind(new(messageService.Broadcaster), new(*ws.Hub)),
	wire.Bind(new(messageHandler.Streamer), new(*ws.Hub)),
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	identity.NewLocal,
)

var userDomain = wire.NewSet(
	userService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.NewPublisher,
	bookingService.New,
)

var showDomain = wire.NewSet(
	showRepository.New,
	showService.New,
)

var messageDomain = wire.NewSet(
	messageRepository.New,
	messageService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	notificationDomain,
	bookingDomain,
	showDomain,
	messageDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	bookingHandler.New,
	showHandler.New,
	messageHandler.New,
	emailHandler.New,
	pagesHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		realtime,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *consumer.Consumer {
	wire.Build(
		config.Get,
		otel.New,
		jwt.New,
		kafka.New,
		mailer.New,
		notificationDomain,
		consumer.New,
	)

	return &consumer.Consumer{}
}

func InitializeAuth() authService.Auth {
	wire.Build(
		config.Get,
		otel.New,
		postgres.New,
		jwt.New,
		userRepository.New,
		authService.New,
	)

	return nil
}
