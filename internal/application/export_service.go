package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"fcclubs/internal/models"
	"fcclubs/pkg/sheets"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"Match ID", "Played At", "Home", "Goals", "Away", "Goals", "Outcome", "Standouts", "Disconnect"}

// ExportService writes normalized matches to xlsx or a shared Google sheet.
type ExportService struct {
	reports      *ReportService
	sheetsClient sheets.Client
	settings     SettingsStore
	ownerEmail   string
	logger       Logger

	mu             sync.Mutex
	spreadsheetID  string
	spreadsheetURL string
}

func NewExportService(reports *ReportService, sheetsClient sheets.Client, settings SettingsStore, ownerEmail string, logger Logger) *ExportService {
	return &ExportService{
		reports:      reports,
		sheetsClient: sheetsClient,
		settings:     settings,
		ownerEmail:   ownerEmail,
		logger:       logger,
	}
}

// SetSpreadsheetID pins exports to an existing spreadsheet.
func (s *ExportService) SetSpreadsheetID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spreadsheetID = id
	s.spreadsheetURL = spreadsheetURL(id)
}

func (s *ExportService) GetExcelReport(ctx context.Context, name string, platform models.Platform) ([]byte, error) {
	info, err := s.reports.GetMatchesInfo(ctx, name, platform)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(excelSheetName); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	for r, row := range exportRows(info) {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(excelSheetName, cell, v); err != nil {
				return nil, fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}

	_ = f.SetColWidth(excelSheetName, "A", "B", 20)
	_ = f.SetColWidth(excelSheetName, "C", "I", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// SyncToGoogleSheet replaces the sheet contents with the club's matches and
// returns the public spreadsheet URL.
func (s *ExportService) SyncToGoogleSheet(ctx context.Context, name string, platform models.Platform) (string, error) {
	if s.sheetsClient == nil {
		return "", fmt.Errorf("google sheets service is not configured")
	}

	info, err := s.reports.GetMatchesInfo(ctx, name, platform)
	if err != nil {
		return "", err
	}

	id, url, err := s.ensureSheetExists(ctx)
	if err != nil {
		return "", err
	}

	if err := s.sheetsClient.ClearRange(ctx, id, defaultClearRange); err != nil {
		s.logger.Error("failed to clear sheet: %v", err)
	}

	if err := s.sheetsClient.UpdateValues(ctx, id, defaultStartCell, exportRows(info)); err != nil {
		return "", fmt.Errorf("failed to update sheet: %w", err)
	}

	return url, nil
}

func (s *ExportService) ensureSheetExists(ctx context.Context) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spreadsheetID == "" && s.settings != nil {
		id, err := s.settings.GetSetting(ctx, spreadsheetSettingKey)
		if err != nil {
			s.logger.Warn("failed to load spreadsheet id: %v", err)
		}
		if id != "" {
			s.spreadsheetID = id
			s.spreadsheetURL = spreadsheetURL(id)
		}
	}

	if s.spreadsheetID != "" {
		return s.spreadsheetID, s.spreadsheetURL, nil
	}

	id, url, err := s.sheetsClient.CreateSpreadsheet(ctx, defaultSheetTitle)
	if err != nil {
		return "", "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	if s.ownerEmail != "" {
		if err := s.sheetsClient.AddPermission(ctx, id, s.ownerEmail, "writer"); err != nil {
			return "", "", fmt.Errorf("failed to add owner permission: %w", err)
		}
	}
	if err := s.sheetsClient.MakePublic(ctx, id); err != nil {
		return "", "", fmt.Errorf("failed to make spreadsheet public: %w", err)
	}

	s.spreadsheetID = id
	s.spreadsheetURL = url

	if s.settings != nil {
		if err := s.settings.SetSetting(ctx, spreadsheetSettingKey, id); err != nil {
			s.logger.Warn("failed to persist spreadsheet id: %v", err)
		}
	}

	return id, url, nil
}

func spreadsheetURL(id string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", id)
}

func exportRows(info *models.ClubMatches) [][]interface{} {
	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	rows := [][]interface{}{header}

	for _, m := range info.Matches {
		row := []interface{}{m.MatchID, m.PlayedAt.Format(timestampLayout), "", "", "", "", string(m.Outcome), "", ""}
		if len(m.Teams) > 0 {
			row[2], row[3] = m.Teams[0].DisplayName, m.Teams[0].Goals
		}
		if len(m.Teams) > 1 {
			row[4], row[5] = m.Teams[1].DisplayName, m.Teams[1].Goals
		}

		standouts := make([]string, 0, len(m.StandoutPlayers))
		for _, sp := range m.StandoutPlayers {
			standouts = append(standouts, sp.PlayerName+" "+formatPlayerRating(sp.Rating))
		}
		row[7] = strings.Join(standouts, ", ")

		if m.DisconnectWinner != nil && *m.DisconnectWinner {
			row[8] = "yes"
		}
		rows = append(rows, row)
	}
	return rows
}

// ExportFileName is the attachment name for a club's workbook.
func ExportFileName(club string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, club)
	return safe + "_matches.xlsx"
}
