package property

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/property/business/invoice"
	"encore.app/property/business/notification"
	"encore.app/property/business/portfolio"
	"encore.app/property/business/reading"
	"encore.app/property/cache"
	"encore.app/property/repository"
	"encore.app/property/workflow"
	"encore.app/property/zns"
)

var propertyDB = sqldb.NewDatabase("property", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

const taskQueue = "property-task-queue"

var validate = validator.New()

var secrets struct {
	ZNSAccessToken string
}

//encore:service
type Service struct {
	cacheStore    *cache.Store
	invoices      invoice.Business
	notifications notification.Business
	portfolio     portfolio.Business
	readings      reading.Resolver
	temporal      client.Client
	worker        worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(propertyDB)

	rlog.Info("Initializing repository")
	repo := repository.NewRepository(pgxdb)

	cacheStore := cache.NewStore()

	invoiceBusiness := invoice.NewBusiness(repo.Invoices, repo.InvoiceItems, repo.Readings, repo.Properties, cacheStore)
	portfolioBusiness := portfolio.NewBusiness(repo.Properties, cacheStore)
	notificationBusiness := notification.NewBusiness(repo.Notifications, invoiceBusiness, portfolioBusiness, zns.NewClient(""))
	readingResolver := reading.NewResolver(cacheStore, repo.Readings)

	rlog.Info("Connecting to Temporal")
	temporalClient, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	workflow.SetActivityDependencies(invoiceBusiness, notificationBusiness)

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.InvoiceDue)
	w.RegisterActivity(workflow.MarkInvoiceOverdueActivity)
	w.RegisterActivity(workflow.EnqueueDueReminderActivity)

	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	return &Service{
		cacheStore:    cacheStore,
		invoices:      invoiceBusiness,
		notifications: notificationBusiness,
		portfolio:     portfolioBusiness,
		readings:      readingResolver,
		temporal:      temporalClient,
		worker:        w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
