package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/xuri/excelize/v2"
)

var securityControlHeaders = []string{"control_id", "area", "descrizione", "supporto_verifica", "riferimento_iso"}

// ParseSecurityControls reads the control catalog from an Excel sheet.
// The first sheet is used and the first row must carry the expected headers.
func ParseSecurityControls(r io.Reader) ([]model.SecurityControl, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	header := rows[0]
	columns := map[string]int{}
	for i, cell := range header {
		columns[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	for _, required := range securityControlHeaders {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var controls []model.SecurityControl
	for i, row := range rows[1:] {
		controlID := cell(row, "control_id")
		if controlID == "" {
			continue
		}
		description := cell(row, "descrizione")
		if description == "" {
			return nil, fmt.Errorf("row %d: control %q has no description", i+2, controlID)
		}
		controls = append(controls, model.SecurityControl{
			ControlID:       controlID,
			Area:            cell(row, "area"),
			Description:     description,
			VerificationAid: cell(row, "supporto_verifica"),
			ISOReference:    cell(row, "riferimento_iso"),
		})
	}
	if len(controls) == 0 {
		return nil, fmt.Errorf("no controls found in sheet %q", sheet)
	}
	return controls, nil
}

// WriteTreatmentRegisterWorkbook renders the treatment register to xlsx.
func WriteTreatmentRegisterWorkbook(treatments []model.Treatment) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Registro"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{
		"nome", "ruolo", "finalita", "destinatari_interni", "destinatari_esterni",
		"conservazione", "misure_sicurezza", "livello_rischio", "punteggio_rischio", "dpia",
	}
	for i, h := range headers {
		cellName, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellName, h); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, t := range treatments {
		row := i + 2
		dpia := "NO"
		if t.DPIARequired {
			dpia = "SI"
		}
		values := []any{
			t.Name,
			t.RoleType,
			t.Purpose,
			t.InternalRecipients,
			t.ExternalRecipients,
			t.RetentionPeriod,
			t.SecurityMeasures,
			t.RiskLevel,
			t.RiskScore,
			dpia,
		}
		for j, v := range values {
			cellName, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cellName, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// WriteSecurityAuditWorkbook renders an audit with its responses to xlsx.
func WriteSecurityAuditWorkbook(responses []model.SecurityResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Audit"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := append(append([]string{}, securityControlHeaders...), "esito", "note")
	for i, h := range headers {
		cellName, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellName, h); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, resp := range responses {
		row := i + 2
		values := []any{
			resp.Control.ControlID,
			resp.Control.Area,
			resp.Control.Description,
			resp.Control.VerificationAid,
			resp.Control.ISOReference,
			resp.Outcome,
			resp.Note,
		}
		for j, v := range values {
			cellName, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cellName, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
