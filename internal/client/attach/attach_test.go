package attach

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/helpdesk/internal/client/models"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoad_ImageProducesDataURI(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	path := writeFile(t, "Photo.JPG", payload)

	a, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "photo.jpg", a.Name)
	require.Equal(t, KindImage, a.Kind)
	require.Equal(t, "image/jpeg", a.Mime)
	require.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(payload), a.Content)
}

func TestLoad_DocumentKinds(t *testing.T) {
	tests := []struct {
		name string
		mime string
	}{
		{"report.pdf", "application/pdf"},
		{"letter.doc", "application/msword"},
		{"letter.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"sheet.xls", "application/vnd.ms-excel"},
		{"sheet.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	}

	for _, tc := range tests {
		path := writeFile(t, tc.name, []byte("content"))
		a, err := Load(path)
		require.NoError(t, err, tc.name)
		require.Equal(t, KindFile, a.Kind, tc.name)
		require.Equal(t, tc.mime, a.Mime, tc.name)
		require.True(t, strings.HasPrefix(a.Content, "data:"+tc.mime+";base64,"), tc.name)
	}
}

func TestLoad_UnsupportedExtensionRejected(t *testing.T) {
	path := writeFile(t, "malware.exe", []byte("nope"))
	_, err := Load(path)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestLoad_OversizedFileRejected(t *testing.T) {
	path := writeFile(t, "big.png", make([]byte, MaxFileSize+1))
	_, err := Load(path)
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.png"))
	require.Error(t, err)
}

func TestApply_RoutesByKind(t *testing.T) {
	nt := &models.NewTicket{}

	require.NoError(t, Apply(nt, &Attachment{Name: "a.png", Content: "data:image/png;base64,AA==", Mime: "image/png", Kind: KindImage}))
	require.NoError(t, Apply(nt, &Attachment{Name: "b.pdf", Content: "data:application/pdf;base64,AA==", Mime: "application/pdf", Kind: KindFile}))

	require.Len(t, nt.Images, 1)
	require.Len(t, nt.Attachments, 1)
	require.Equal(t, "image/png", nt.Images[0].Type)
	require.Equal(t, "application/pdf", nt.Attachments[0].FileType)
}

func TestApply_EnforcesPerTicketLimit(t *testing.T) {
	nt := &models.NewTicket{}
	a := &Attachment{Name: "a.png", Content: "data:image/png;base64,AA==", Mime: "image/png", Kind: KindImage}

	for i := 0; i < MaxPerTicket; i++ {
		require.NoError(t, Apply(nt, a))
	}
	require.ErrorIs(t, Apply(nt, a), ErrTooMany)
	require.Len(t, nt.Images, MaxPerTicket)
}
