package api

import (
	"context"

	"github.com/dmitrijs2005/helpdesk/internal/client/models"
)

// Client is the typed surface of the helpdesk backend. One method per
// endpoint; envelope unwrapping happens behind this interface so callers
// only ever see domain values or normalized errors.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.LoginData, error)
	GetUser(ctx context.Context) (*models.User, error)
	UpdateSelf(ctx context.Context, value string) error
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	GetTicket(ctx context.Context, id string) (*models.Ticket, error)
	CreateTicket(ctx context.Context, ticket *models.NewTicket) error
}
