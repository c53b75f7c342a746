package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-builder/internal/types"
)

func sampleRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Experience: []types.ExperienceEntry{
			{Company: "Acme Corp", Position: "Engineer", StartDate: "January 2020", EndDate: "Present", IsCurrent: true},
		},
		Skills: types.Skills{Technical: "Go, SQL"},
		Certifications: []types.CertificationEntry{
			{Name: "AWS Certified", Issuer: "Amazon Web Services", Date: "2023"},
		},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleRecord())

	assert.Equal(t, Row{Section: "identity", Field: "fullName", Value: "Jane Doe"}, rows[0])
	assert.Contains(t, rows, Row{Section: "experience", Index: 1, Field: "isCurrent", Value: "true"})
	assert.Contains(t, rows, Row{Section: "skills", Field: "technical", Value: "Go, SQL"})
	assert.Contains(t, rows, Row{Section: "certifications", Index: 1, Field: "issuer", Value: "Amazon Web Services"})
	for _, r := range rows {
		assert.NotEqual(t, "education", r.Section)
	}
}

func TestRows_Nil(t *testing.T) {
	assert.Nil(t, Rows(nil))
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	prov := types.Provenance{
		Successes: []string{"Email found"},
		Warnings:  []string{"Location not found"},
		Skipped:   []string{"Projects section not found"},
	}
	require.NoError(t, WriteWorkbook(&buf, sampleRecord(), prov))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	assert.Equal(t, []string{SheetRecord, SheetProvenance}, f.GetSheetList())

	rows, err := f.GetRows(SheetRecord)
	require.NoError(t, err)
	assert.Equal(t, []string{"Section", "Entry", "Field", "Value"}, rows[0])
	assert.Equal(t, []string{"identity", "", "fullName", "Jane Doe"}, rows[1])
	assert.Len(t, rows, len(Rows(sampleRecord()))+1)

	provRows, err := f.GetRows(SheetProvenance)
	require.NoError(t, err)
	require.Len(t, provRows, 4)
	assert.Equal(t, []string{"success", "Email found"}, provRows[1])
	assert.Equal(t, []string{"warning", "Location not found"}, provRows[2])
	assert.Equal(t, []string{"skipped", "Projects section not found"}, provRows[3])
}

func TestWriteWorkbook_NilRecord(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteWorkbook(&buf, nil, types.Provenance{}), ErrNilRecord)
	assert.Zero(t, buf.Len())
}
