package config

import (
	"context"
	"fmt"

	"github.com/eventbooking/booking-system/notification-service/application"
	"github.com/eventbooking/booking-system/notification-service/handlers"
	"github.com/eventbooking/booking-system/notification-service/infrastructure"
	sharedinfra "github.com/eventbooking/booking-system/shared/infrastructure"
	"github.com/eventbooking/booking-system/shared/telemetry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	NotificationRepository *infrastructure.PostgresNotificationRepository

	// Gateways
	EventGateway *infrastructure.HTTPEventClient

	// Use Cases
	NotifyBookingCreated         *application.NotifyBookingCreated
	NotifyBookingCancelled       *application.NotifyBookingCancelled
	NotifyEventBookingsCancelled *application.NotifyEventBookingsCancelled
	NotifyEventUpdatedBookings   *application.NotifyEventUpdatedBookings
	NotifyReviewCreated          *application.NotifyReviewCreated
	GetNotifications             *application.GetNotifications

	// HTTP Handlers
	NotificationHandlers *handlers.NotificationHandlers

	// Event Handlers
	NotificationEventHandlers *handlers.NotificationEventHandlers

	// Infrastructure
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	telemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize telemetry
	tel, telShutdown, err := telemetry.InitTelemetry(ctx,
		telemetry.NotificationServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to init telemetry: %w", err)
	}
	deps.Telemetry = tel
	deps.telemetryShutdown = telShutdown

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	deps.DB = db

	// Initialize AWS infrastructure. The notification service is the terminal
	// consumer: it subscribes but never publishes.
	eventSubscriber, err := sharedinfra.NewSQSSubscriberAdapter(config.AWS.SQSQueueURL,
		sharedinfra.WithDeadLetterQueue(config.AWS.SQSDLQueueURL, 10))
	if err != nil {
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}
	deps.EventSubscriber = eventSubscriber

	// Initialize repositories and gateways
	deps.NotificationRepository = infrastructure.NewPostgresNotificationRepository(db)
	deps.EventGateway = infrastructure.NewHTTPEventClient(config.Services.EventServiceURL)

	// Initialize use cases
	deps.NotifyBookingCreated = application.NewNotifyBookingCreated(deps.NotificationRepository)
	deps.NotifyBookingCancelled = application.NewNotifyBookingCancelled(deps.NotificationRepository)
	deps.NotifyEventBookingsCancelled = application.NewNotifyEventBookingsCancelled(deps.NotificationRepository)
	deps.NotifyEventUpdatedBookings = application.NewNotifyEventUpdatedBookings(deps.NotificationRepository)
	deps.NotifyReviewCreated = application.NewNotifyReviewCreated(deps.NotificationRepository, deps.EventGateway)
	deps.GetNotifications = application.NewGetNotifications(deps.NotificationRepository)

	// Initialize handlers
	deps.NotificationHandlers = handlers.NewNotificationHandlers(deps.GetNotifications)
	deps.NotificationEventHandlers = handlers.NewNotificationEventHandlers(
		deps.NotifyBookingCreated,
		deps.NotifyBookingCancelled,
		deps.NotifyEventBookingsCancelled,
		deps.NotifyEventUpdatedBookings,
		deps.NotifyReviewCreated,
	)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
		}
	}

	if d.telemetryShutdown != nil {
		d.telemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
