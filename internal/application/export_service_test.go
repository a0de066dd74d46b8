package application

import (
	"bytes"
	"context"
	"testing"

	"fcclubs/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGetExcelReport(t *testing.T) {
	reports := newTestReportService(ReportConfig{}, metallistProvider([]models.RawMatch{ivanMatch(true)}))
	s := NewExportService(reports, nil, nil, "", testLogger)

	data, err := s.GetExcelReport(context.Background(), "Metallist", "")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(excelSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeaders, rows[0])
	require.GreaterOrEqual(t, len(rows[1]), 8)
	assert.Equal(t, []string{"m1", "2024-05-01 17:55:00", "Metallist", "3", "Rivals", "1", "win", "Ivan 8.5"}, rows[1][:8])
}

func TestSyncToGoogleSheet(t *testing.T) {
	reports := newTestReportService(ReportConfig{}, metallistProvider([]models.RawMatch{ivanMatch(true)}))
	client := &fakeSheets{}
	s := NewExportService(reports, client, nil, "owner@example.com", testLogger)

	url, err := s.SyncToGoogleSheet(context.Background(), "Metallist", "")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/sheet-1", url)
	assert.Equal(t, []string{"owner@example.com:writer"}, client.perms)
	assert.True(t, client.public)
	assert.Equal(t, []string{defaultClearRange}, client.cleared)
	require.Len(t, client.updated, 2)
	assert.Equal(t, "Metallist", client.updated[1][2])

	_, err = s.SyncToGoogleSheet(context.Background(), "Metallist", "")
	require.NoError(t, err)
	assert.Equal(t, 1, client.created)
}

func TestSyncToGoogleSheetPinnedSpreadsheet(t *testing.T) {
	reports := newTestReportService(ReportConfig{}, metallistProvider([]models.RawMatch{ivanMatch(true)}))
	client := &fakeSheets{}
	s := NewExportService(reports, client, nil, "", testLogger)
	s.SetSpreadsheetID("abc")

	url, err := s.SyncToGoogleSheet(context.Background(), "Metallist", "")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc", url)
	assert.Zero(t, client.created)
}

func TestSyncToGoogleSheetNotConfigured(t *testing.T) {
	s := NewExportService(nil, nil, nil, "", testLogger)
	_, err := s.SyncToGoogleSheet(context.Background(), "Metallist", "")
	assert.Error(t, err)
}

type memSettings map[string]string

func (m memSettings) GetSetting(_ context.Context, key string) (string, error) { return m[key], nil }
func (m memSettings) SetSetting(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func TestSyncToGoogleSheetPersistsSpreadsheetID(t *testing.T) {
	provider := metallistProvider([]models.RawMatch{ivanMatch(true)})
	settings := memSettings{}
	client := &fakeSheets{}

	first := NewExportService(newTestReportService(ReportConfig{}, provider), client, settings, "", testLogger)
	_, err := first.SyncToGoogleSheet(context.Background(), "Metallist", "")
	require.NoError(t, err)
	assert.Equal(t, "sheet-1", settings[spreadsheetSettingKey])

	// A fresh service, as after a restart, reuses the stored spreadsheet.
	second := NewExportService(newTestReportService(ReportConfig{}, provider), client, settings, "", testLogger)
	url, err := second.SyncToGoogleSheet(context.Background(), "Metallist", "")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/sheet-1", url)
	assert.Equal(t, 1, client.created)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "FC_Kyiv_matches.xlsx", ExportFileName("FC Kyiv"))
	assert.Equal(t, "a_b_matches.xlsx", ExportFileName("a/b"))
}
