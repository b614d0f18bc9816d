package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/property/repository/invoiceitems"
	"encore.app/property/repository/invoices"
	"encore.app/property/repository/notifications"
	"encore.app/property/repository/properties"
	"encore.app/property/repository/readings"
)

// Repository combines all domain-specific queriers
type Repository struct {
	Invoices      invoices.Querier
	InvoiceItems  invoiceitems.Querier
	Readings      readings.Querier
	Notifications notifications.Querier
	Properties    properties.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Invoices:      invoices.New(db),
		InvoiceItems:  invoiceitems.New(db),
		Readings:      readings.New(db),
		Notifications: notifications.New(db),
		Properties:    properties.New(db),
	}
}
