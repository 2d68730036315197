package services

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "github.com/Aryan1591/TravelBuddy-Notification-Service/internal/models/db_models"
)

func samplePost() *dbm.Post {
	return &dbm.Post{
		ID:          "t1",
		Title:       "Goa Getaway",
		Source:      "Bengaluru",
		Destination: "Goa",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-04",
		Days:        4,
		Nights:      3,
		Amount:      12500,
		AdminName:   "ravi",
		Users:       []string{"alice", "bob"},
		Status:      dbm.StatusActive,
		Events: []dbm.TimelineEntry{
			{Title: "Beach day", Date: "2026-09-02", Events: []string{"Baga beach", "Sunset cruise"}},
			{Title: "Old Goa", Date: "2026-09-03", Events: []string{"Basilica visit"}},
		},
	}
}

func reminderTemplate(t *testing.T) *template.Template {
	t.Helper()
	return template.Must(template.New("tripReminderHTML").Parse(tripReminderHTMLTemplate))
}

func TestRenderTripReminderBody(t *testing.T) {
	body, err := renderTripReminderBody(reminderTemplate(t), "alice", samplePost())
	require.NoError(t, err)

	assert.Contains(t, body, "Hello, alice!")
	assert.Contains(t, body, "Goa Getaway")
	assert.Contains(t, body, "Bengaluru")
	assert.Contains(t, body, "2026-09-01")
	assert.Contains(t, body, "Events Timeline:")
	assert.Contains(t, body, "Baga beach, Sunset cruise")
	assert.Contains(t, body, "Safety Rules and Precautions:")
	assert.Contains(t, body, "trademark of Travel Buddy Inc.")
}

func TestRenderTripReminderBodyWithoutEvents(t *testing.T) {
	post := samplePost()
	post.Events = nil

	body, err := renderTripReminderBody(reminderTemplate(t), "bob", post)
	require.NoError(t, err)

	assert.Contains(t, body, "Hello, bob!")
	assert.NotContains(t, body, "Events Timeline:")
}

func TestRenderTripReminderBodyEscapesHTML(t *testing.T) {
	post := samplePost()
	post.Title = "<script>alert(1)</script>"

	body, err := renderTripReminderBody(reminderTemplate(t), "alice", post)
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>alert(1)</script>")
}

func TestRenderItineraryPDF(t *testing.T) {
	pdfBytes, err := renderItineraryPDF("alice", samplePost())
	require.NoError(t, err)

	require.Greater(t, len(pdfBytes), 4)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestRenderItineraryPDFWithoutEvents(t *testing.T) {
	post := samplePost()
	post.Events = nil

	pdfBytes, err := renderItineraryPDF("bob", post)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestWrapBase64FoldsLongLines(t *testing.T) {
	in := make([]byte, 300)
	wrapped := wrapBase64(string(in))
	assert.NotContains(t, wrapped[:76], "\r\n")
	assert.Contains(t, wrapped, "\r\n")
}
