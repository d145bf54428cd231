package reportbot

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/config"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() store.Report {
	now := time.Now()
	return store.Report{
		ID:          "RPT-100000000000000000-1700000000",
		SubmitterID: "100000000000000000",
		Category:    store.CategoryBug,
		Description: "app crashes on login",
		Status:      store.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func countFields(embed *discordgo.MessageEmbed, name string) int {
	var count int
	for _, field := range embed.Fields {
		if field.Name == name {
			count++
		}
	}
	return count
}

func fieldValue(t *testing.T, embed *discordgo.MessageEmbed, name string) string {
	t.Helper()
	for _, field := range embed.Fields {
		if field.Name == name {
			return field.Value
		}
	}
	t.Fatalf("embed has no %q field", name)
	return ""
}

func TestGetReportEmbed(t *testing.T) {
	report := sampleReport()
	embed := getReportEmbed(report, nil)

	assert.Equal(t, config.ColorFor("pending"), embed.Color)
	assert.Contains(t, embed.Description, report.Description)
	assert.Contains(t, fieldValue(t, embed, "🆔 Report ID"), report.ID)
	assert.Equal(t, report.Status.String(), fieldValue(t, embed, statusFieldName))
	assert.Equal(t, 1, countFields(embed, statusFieldName))
	assert.Equal(t, 0, countFields(embed, handledFieldName))
	assert.Equal(t, 0, countFields(embed, "🎯 Accused"))
	assert.Equal(t, 0, countFields(embed, "🔗 Evidence"))
}

func TestGetReportEmbedOptionalFields(t *testing.T) {
	report := sampleReport()
	report.AccusedID = "300000000000000000"
	report.Evidence = "https://example.com/screenshot.png"

	embed := getReportEmbed(report, nil)
	assert.Contains(t, fieldValue(t, embed, "🎯 Accused"), report.AccusedID)
	assert.Equal(t, report.Evidence, fieldValue(t, embed, "🔗 Evidence"))
}

func TestApplyStatusFieldsIdempotent(t *testing.T) {
	report := sampleReport()
	embed := getReportEmbed(report, nil)

	report.Status = store.StatusAccepted
	report.HandledBy = moderatorID

	applyStatusFields(embed, report)
	applyStatusFields(embed, report)

	assert.Equal(t, 1, countFields(embed, statusFieldName))
	assert.Equal(t, 1, countFields(embed, handledFieldName))
	assert.Equal(t, store.StatusAccepted.String(), fieldValue(t, embed, statusFieldName))
	assert.Equal(t, "<@"+moderatorID+">", fieldValue(t, embed, handledFieldName))
	assert.Equal(t, config.ColorFor("accepted"), embed.Color)
}

func TestApplyStatusFieldsOverwritesPrevious(t *testing.T) {
	report := sampleReport()
	embed := getReportEmbed(report, nil)

	report.Status = store.StatusAccepted
	report.HandledBy = moderatorID
	applyStatusFields(embed, report)

	report.Status = store.StatusRejected
	report.HandledBy = "400000000000000000"
	applyStatusFields(embed, report)

	assert.Equal(t, 1, countFields(embed, statusFieldName))
	assert.Equal(t, 1, countFields(embed, handledFieldName))
	assert.Equal(t, store.StatusRejected.String(), fieldValue(t, embed, statusFieldName))
	assert.Equal(t, "<@400000000000000000>", fieldValue(t, embed, handledFieldName))
}

func TestGetReportButtons(t *testing.T) {
	buttons := getReportButtons("RPT-100000000000000000-1700000000")
	require.Len(t, buttons, 4)

	expected := []string{
		"report_accept_RPT-100000000000000000-1700000000",
		"report_reject_RPT-100000000000000000-1700000000",
		"report_progress_RPT-100000000000000000-1700000000",
		"report_respond_RPT-100000000000000000-1700000000",
	}
	for n, component := range buttons {
		button, ok := component.(discordgo.Button)
		require.True(t, ok)
		assert.Equal(t, expected[n], button.CustomID)
	}
}

func TestGetConfirmationEmbed(t *testing.T) {
	report := sampleReport()
	embed := getConfirmationEmbed(report)

	assert.Contains(t, fieldValue(t, embed, "Report ID"), report.ID)
	assert.Equal(t, report.Category.String(), fieldValue(t, embed, "Type"))
}

func TestGetStatusNoticeEmbed(t *testing.T) {
	report := sampleReport()
	report.Status = store.StatusAccepted

	embed := getStatusNoticeEmbed(report)
	assert.Contains(t, embed.Description, report.ID)
	assert.Contains(t, embed.Description, string(store.StatusAccepted))
	assert.Equal(t, config.ColorFor("accepted"), embed.Color)
}

func TestGetReplyEmbed(t *testing.T) {
	report := sampleReport()
	embed := getReplyEmbed(report, moderatorID, "we are looking into it")

	assert.Equal(t, "we are looking into it", embed.Description)
	assert.Contains(t, fieldValue(t, embed, "Report ID"), report.ID)
	assert.Contains(t, fieldValue(t, embed, "Moderator"), moderatorID)
}

func TestGetStaleReportsEmbed(t *testing.T) {
	now := time.Now()

	first := sampleReport()
	first.CreatedAt = now.Add(-48 * time.Hour)
	second := sampleReport()
	second.ID = "RPT-100000000000000000-1700000001"
	second.CreatedAt = now.Add(-36 * time.Hour)

	embed := getStaleReportsEmbed([]store.Report{first, second}, now)
	assert.Contains(t, embed.Description, first.ID)
	assert.Contains(t, embed.Description, second.ID)
}
