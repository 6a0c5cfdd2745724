package config

import (
	"context"
	"fmt"

	"github.com/eventbooking/booking-system/payment-service/application"
	"github.com/eventbooking/booking-system/payment-service/handlers"
	"github.com/eventbooking/booking-system/payment-service/infrastructure"
	sharedinfra "github.com/eventbooking/booking-system/shared/infrastructure"
	"github.com/eventbooking/booking-system/shared/telemetry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	PaymentRepository *infrastructure.PostgresPaymentRepository

	// Use Cases
	ProcessBookingCreated *application.ProcessBookingCreated
	RefundPayment         *application.RefundPayment
	TopUp                 *application.TopUp
	GetBalance            *application.GetBalance
	GetPayments           *application.GetPayments

	// HTTP Handlers
	PaymentHandlers *handlers.PaymentHandlers

	// Event Handlers
	PaymentEventHandlers *handlers.PaymentEventHandlers

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
		telemetry.PaymentServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint))
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

	// Initialize repositories
	deps.PaymentRepository = infrastructure.NewPostgresPaymentRepository(db)

	// Initialize use cases
	deps.ProcessBookingCreated = application.NewProcessBookingCreated(deps.PaymentRepository, eventPublisher)
	deps.RefundPayment = application.NewRefundPayment(deps.PaymentRepository)
	deps.TopUp = application.NewTopUp(deps.PaymentRepository)
	deps.GetBalance = application.NewGetBalance(deps.PaymentRepository)
	deps.GetPayments = application.NewGetPayments(deps.PaymentRepository)

	// Initialize handlers
	deps.PaymentHandlers = handlers.NewPaymentHandlers(deps.TopUp, deps.GetBalance, deps.GetPayments)
	deps.PaymentEventHandlers = handlers.NewPaymentEventHandlers(
		deps.ProcessBookingCreated,
		deps.RefundPayment,
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
