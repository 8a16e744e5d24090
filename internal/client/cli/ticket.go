package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/helpdesk/internal/client/attach"
	"github.com/dmitrijs2005/helpdesk/internal/client/models"
	"github.com/dmitrijs2005/helpdesk/internal/client/services"
)

// shortID trims a ticket id for the list view. Full ids are shown
// in the detail view.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Tickets lists the current user's tickets, one per line.
func (a *App) Tickets(ctx context.Context) error {
	tickets, err := a.ticketService.GetTickets(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	if len(tickets) == 0 {
		printlnFn("No tickets")
		return nil
	}

	for _, t := range tickets {
		printlnFn(fmt.Sprintf("%-10s %-12s %-10s %s", shortID(t.ID), t.Status, t.Priority, t.Item))
	}
	return nil
}

// Show prints one ticket in full, including its history.
func (a *App) Show(ctx context.Context, id string) error {
	t, err := a.ticketService.GetTicketByID(ctx, id)
	if err != nil {
		a.reportError(err)
		return err
	}

	printlnFn("Id:        ", t.ID)
	printlnFn("Item:      ", t.Item)
	printlnFn("Status:    ", t.Status)
	printlnFn("Priority:  ", t.Priority)
	printlnFn("Department:", t.Department)
	printlnFn("Location:  ", t.Location)
	printlnFn("Author:    ", t.Author)
	printlnFn("Date:      ", t.Date)
	printlnFn("Details:   ", t.Explain)

	if len(t.History) > 0 {
		printlnFn("History:")
		for _, h := range t.History {
			printlnFn(fmt.Sprintf("  %s  %s", h.Date, h.Action))
		}
	}
	return nil
}

// NewTicket interactively collects a new ticket and submits it. Users whose
// role does not allow opening tickets are turned away before any prompting.
func (a *App) NewTicket(ctx context.Context) error {
	role, err := a.authService.GetUserRole(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}
	if !services.CanCreateTicket(role) {
		printlnFn(fmt.Sprintf("Role %q may not open tickets", role))
		return nil
	}

	name := a.userName
	if name == "" {
		if name, err = getSimpleText(a.reader, "Your name", os.Stdout); err != nil {
			return err
		}
	}

	item, err := getSimpleText(a.reader, "Broken item", os.Stdout)
	if err != nil {
		return err
	}
	department, err := getSimpleText(a.reader, "Department", os.Stdout)
	if err != nil {
		return err
	}
	reference, err := getSimpleText(a.reader, "Reference (empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	if reference == "" {
		reference = "none"
	}
	explain, err := GetMultiline(a.reader, "Describe the problem", os.Stdout)
	if err != nil {
		return err
	}

	t := &models.NewTicket{
		Name:        name,
		Explain:     explain,
		Item:        item,
		Department:  department,
		Reference:   reference,
		Images:      []models.ImagePayload{},
		Attachments: []models.FilePayload{},
	}

	for {
		path, err := getSimpleText(a.reader, "Attachment path (empty to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if path == "" {
			break
		}
		att, err := attach.Load(path)
		if err != nil {
			printlnFn("Skipping attachment:", err.Error())
			continue
		}
		if err := attach.Apply(t, att); err != nil {
			printlnFn("Skipping attachment:", err.Error())
			continue
		}
		printlnFn("Attached", att.Name)
	}

	if err := a.ticketService.CreateTicket(ctx, t); err != nil {
		a.reportError(err)
		return err
	}

	printlnFn("Ticket created")
	return nil
}
