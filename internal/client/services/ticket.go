package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/helpdesk/internal/client/api"
	"github.com/dmitrijs2005/helpdesk/internal/client/models"
)

var ErrEmptyTicketID = errors.New("empty ticket id")

// TicketService is a stateless facade over the API client. Envelope handling
// lives in the client; this layer only checks payload presence before a
// submission. Every operation either returns a value or an error; a lookup
// of an unknown id errors out, it never yields a nil ticket.
type TicketService interface {
	GetTickets(ctx context.Context) ([]models.Ticket, error)
	GetTicketByID(ctx context.Context, id string) (*models.Ticket, error)
	CreateTicket(ctx context.Context, ticket *models.NewTicket) error
}

type ticketService struct {
	client api.Client
}

func NewTicketService(client api.Client) TicketService {
	return &ticketService{client: client}
}

func (s *ticketService) GetTickets(ctx context.Context) ([]models.Ticket, error) {
	return s.client.ListTickets(ctx)
}

func (s *ticketService) GetTicketByID(ctx context.Context, id string) (*models.Ticket, error) {
	if id == "" {
		return nil, ErrEmptyTicketID
	}
	return s.client.GetTicket(ctx, id)
}

func (s *ticketService) CreateTicket(ctx context.Context, ticket *models.NewTicket) error {
	if err := ticket.Validate(); err != nil {
		return err
	}
	return s.client.CreateTicket(ctx, ticket)
}
