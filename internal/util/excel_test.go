package util

import (
	"bytes"
	"testing"

	"github.com/hubcompliance/compliance-hub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseSecurityControls(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"control_id", "area", "descrizione", "supporto_verifica", "riferimento_iso"},
		{"AC-01", "Sicurezza IT", "Gestione degli accessi logici", "Policy accessi", "A.9.2"},
		{"", "Sicurezza IT", "Riga senza identificativo, da ignorare", "", ""},
		{"PH-01", "Sicurezza Fisica", "Controllo accessi ai locali", "Registro visitatori", "A.11.1"},
	})

	controls, err := ParseSecurityControls(buf)
	require.NoError(t, err)
	require.Len(t, controls, 2)

	assert.Equal(t, "AC-01", controls[0].ControlID)
	assert.Equal(t, "Sicurezza IT", controls[0].Area)
	assert.Equal(t, "Gestione degli accessi logici", controls[0].Description)
	assert.Equal(t, "Policy accessi", controls[0].VerificationAid)
	assert.Equal(t, "A.9.2", controls[0].ISOReference)
	assert.Equal(t, "PH-01", controls[1].ControlID)
}

func TestParseSecurityControlsMissingColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"control_id", "area", "descrizione"},
		{"AC-01", "Sicurezza IT", "Gestione degli accessi"},
	})

	_, err := ParseSecurityControls(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supporto_verifica")
}

func TestParseSecurityControlsMissingDescription(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"control_id", "area", "descrizione", "supporto_verifica", "riferimento_iso"},
		{"AC-01", "Sicurezza IT", "", "", ""},
	})

	_, err := ParseSecurityControls(buf)
	require.Error(t, err)
}

func TestParseSecurityControlsEmptySheet(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"control_id", "area", "descrizione", "supporto_verifica", "riferimento_iso"},
	})

	_, err := ParseSecurityControls(buf)
	require.Error(t, err)
}

func TestWriteSecurityAuditWorkbook(t *testing.T) {
	responses := []model.SecurityResponse{
		{
			Control: model.SecurityControl{
				ControlID:       "AC-01",
				Area:            "Sicurezza IT",
				Description:     "Gestione degli accessi logici",
				VerificationAid: "Policy accessi",
				ISOReference:    "A.9.2",
			},
			Outcome: "YES",
			Note:    "Verificato con il responsabile IT",
		},
		{
			Control: model.SecurityControl{ControlID: "PH-01", Area: "Sicurezza Fisica", Description: "Controllo accessi"},
			Outcome: "NO",
		},
	}

	f, err := WriteSecurityAuditWorkbook(responses)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Audit")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"control_id", "area", "descrizione", "supporto_verifica", "riferimento_iso", "esito", "note"}, rows[0])
	assert.Equal(t, "AC-01", rows[1][0])
	assert.Equal(t, "YES", rows[1][5])
	assert.Equal(t, "NO", rows[2][5])
}
