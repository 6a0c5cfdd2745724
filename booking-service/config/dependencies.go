package config

import (
	"context"
	"fmt"

	"github.com/eventbooking/booking-system/booking-service/application"
	"github.com/eventbooking/booking-system/booking-service/handlers"
	"github.com/eventbooking/booking-system/booking-service/infrastructure"
	sharedinfra "github.com/eventbooking/booking-system/shared/infrastructure"
	"github.com/eventbooking/booking-system/shared/telemetry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	BookingRepository *infrastructure.PostgresBookingRepository

	// Gateways
	EventGateway   *infrastructure.HTTPEventClient
	PaymentGateway *infrastructure.HTTPPaymentClient

	// Use Cases
	CreateBooking          *application.CreateBooking
	CancelBooking          *application.CancelBooking
	GetBookings            *application.GetBookings
	ProcessPaymentDecision *application.ProcessPaymentDecision
	ProcessEventCancelled  *application.ProcessEventCancelled
	ProcessEventUpdated    *application.ProcessEventUpdated

	// HTTP Handlers
	BookingHandlers *handlers.BookingHandlers

	// Event Handlers
	BookingEventHandlers *handlers.BookingEventHandlers

	// Infrastructure
	EventPublisher  *sharedinfra.SNSPublisherAdapter
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	telemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize telemetry
	tel, telShutdown, err := telemetry.InitTelemetry(ctx,
		telemetry.BookingServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint))
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

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(config.AWS.SNSTopicArn)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	eventSubscriber, err := sharedinfra.NewSQSSubscriberAdapter(config.AWS.SQSQueueURL,
		sharedinfra.WithDeadLetterQueue(config.AWS.SQSDLQueueURL, 10))
	if err != nil {
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}
	deps.EventSubscriber = eventSubscriber

	// Initialize repositories and gateways
	deps.BookingRepository = infrastructure.NewPostgresBookingRepository(db)
	deps.EventGateway = infrastructure.NewHTTPEventClient(config.Services.EventServiceURL)
	deps.PaymentGateway = infrastructure.NewHTTPPaymentClient(config.Services.PaymentServiceURL)

	// Initialize use cases
	deps.CreateBooking = application.NewCreateBooking(deps.BookingRepository, deps.EventGateway, deps.PaymentGateway, eventPublisher)
	deps.CancelBooking = application.NewCancelBooking(deps.BookingRepository, deps.EventGateway, eventPublisher)
	deps.GetBookings = application.NewGetBookings(deps.BookingRepository)
	deps.ProcessPaymentDecision = application.NewProcessPaymentDecision(deps.BookingRepository)
	deps.ProcessEventCancelled = application.NewProcessEventCancelled(deps.BookingRepository, eventPublisher)
	deps.ProcessEventUpdated = application.NewProcessEventUpdated(deps.BookingRepository, eventPublisher)

	// Initialize handlers
	deps.BookingHandlers = handlers.NewBookingHandlers(deps.CreateBooking, deps.CancelBooking, deps.GetBookings)
	deps.BookingEventHandlers = handlers.NewBookingEventHandlers(
		deps.ProcessPaymentDecision,
		deps.ProcessEventCancelled,
		deps.ProcessEventUpdated,
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

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
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
