package models

import "errors"

var ErrMissingRequiredField = errors.New("missing required field")

// HistoryEntry is one step of a ticket's server-side history.
type HistoryEntry struct {
	Date   string `json:"date"`
	Action string `json:"action"`
}

// Ticket is server-owned and read-only from the client's perspective; the
// client never mutates one except by submitting a new one.
type Ticket struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Explain    string         `json:"explain"`
	Item       string         `json:"item"`
	Status     string         `json:"status"`
	Date       string         `json:"date"`
	Department string         `json:"department"`
	Priority   string         `json:"priority"`
	Location   string         `json:"location"`
	Author     string         `json:"author"`
	History    []HistoryEntry `json:"history"`
}

// ImagePayload is an inline image attachment: base64 content carrying a
// "data:<mime>;base64," prefix.
type ImagePayload struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// FilePayload is an inline document attachment. Same content encoding as
// ImagePayload, but the backend expects the MIME type under file_type.
type FilePayload struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	FileType string `json:"file_type"`
}

// NewTicket is the create-ticket request body.
type NewTicket struct {
	Name        string         `json:"name"`
	Explain     string         `json:"explain"`
	Item        string         `json:"item"`
	Department  string         `json:"department"`
	Reference   string         `json:"reference"`
	Images      []ImagePayload `json:"images"`
	Attachments []FilePayload  `json:"attachments"`
}

// Validate checks that the required fields are present. Field contents are
// not validated beyond presence; that is the backend's job.
func (t *NewTicket) Validate() error {
	for _, f := range []string{t.Name, t.Explain, t.Item, t.Department} {
		if f == "" {
			return ErrMissingRequiredField
		}
	}
	return nil
}
