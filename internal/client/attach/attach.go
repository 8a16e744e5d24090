// Package attach converts local files into the inline payloads the ticket
// endpoint expects: base64 content with a data-URI MIME prefix, split into
// images and generic documents. Files are transient inputs; nothing is kept
// after a successful submission.
package attach

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/helpdesk/internal/client/models"
)

const (
	// MaxFileSize caps a single attachment at 5 MB, matching the backend.
	MaxFileSize = 5 * 1024 * 1024

	// MaxPerTicket is the most attachments one ticket may carry.
	MaxPerTicket = 5
)

var (
	ErrTooLarge        = fmt.Errorf("attachment exceeds the %d MB limit", MaxFileSize/(1024*1024))
	ErrUnsupportedType = errors.New("unsupported attachment type")
	ErrTooMany         = fmt.Errorf("a ticket may carry at most %d attachments", MaxPerTicket)
)

type Kind string

const (
	KindImage Kind = "image"
	KindFile  Kind = "file"
)

// mimeByExt enumerates the file types the backend accepts. Anything else is
// rejected before a byte is read.
var mimeByExt = map[string]struct {
	mime string
	kind Kind
}{
	".jpg":  {"image/jpeg", KindImage},
	".jpeg": {"image/jpeg", KindImage},
	".png":  {"image/png", KindImage},
	".pdf":  {"application/pdf", KindFile},
	".doc":  {"application/msword", KindFile},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", KindFile},
	".xls":  {"application/vnd.ms-excel", KindFile},
	".xlsx": {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", KindFile},
}

// Attachment is a file prepared for submission.
type Attachment struct {
	Name    string
	Content string
	Mime    string
	Kind    Kind
}

// Load reads the file at path and prepares it for submission. The MIME type
// is inferred from the extension; unknown extensions and oversized files are
// rejected.
func Load(path string) (*Attachment, error) {
	name := strings.ToLower(filepath.Base(path))

	entry, ok := mimeByExt[filepath.Ext(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(name))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return nil, ErrTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &Attachment{
		Name:    name,
		Content: fmt.Sprintf("data:%s;base64,%s", entry.mime, base64.StdEncoding.EncodeToString(data)),
		Mime:    entry.mime,
		Kind:    entry.kind,
	}, nil
}

// Apply adds the attachment to the right slice of the ticket payload,
// enforcing the per-ticket limit.
func Apply(ticket *models.NewTicket, a *Attachment) error {
	if len(ticket.Images)+len(ticket.Attachments) >= MaxPerTicket {
		return ErrTooMany
	}

	switch a.Kind {
	case KindImage:
		ticket.Images = append(ticket.Images, models.ImagePayload{
			Name:    a.Name,
			Content: a.Content,
			Type:    a.Mime,
		})
	default:
		ticket.Attachments = append(ticket.Attachments, models.FilePayload{
			Name:     a.Name,
			Content:  a.Content,
			FileType: a.Mime,
		})
	}
	return nil
}
