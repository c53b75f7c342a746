// Package report exports a parsed resume and its provenance as an XLSX
// workbook.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-builder/internal/types"
)

// Sheet names.
const (
	SheetRecord     = "Record"
	SheetProvenance = "Provenance"
)

// ErrNilRecord is returned when there is no record to export.
var ErrNilRecord = errors.New("report: record is nil")

// Row is one flattened record field. Index is 1-based for entry sections and
// zero for scalar fields.
type Row struct {
	Section string
	Index   int
	Field   string
	Value   string
}

// Rows flattens record in document order. Empty values are kept so every
// field appears.
func Rows(record *types.ResumeRecord) []Row {
	if record == nil {
		return nil
	}
	var rows []Row
	add := func(section string, index int, field, value string) {
		rows = append(rows, Row{Section: section, Index: index, Field: field, Value: value})
	}

	add("identity", 0, "fullName", record.FullName)
	add("identity", 0, "email", record.Email)
	add("identity", 0, "phone", record.Phone)
	add("identity", 0, "location", record.Location)
	add("identity", 0, "linkedinUrl", record.LinkedInURL)
	add("identity", 0, "websiteUrl", record.WebsiteURL)
	add("identity", 0, "summary", record.Summary)

	for i, e := range record.Experience {
		n := i + 1
		add("experience", n, "company", e.Company)
		add("experience", n, "position", e.Position)
		add("experience", n, "startDate", e.StartDate)
		add("experience", n, "endDate", e.EndDate)
		add("experience", n, "isCurrent", strconv.FormatBool(e.IsCurrent))
		add("experience", n, "description", e.Description)
	}
	for i, e := range record.Education {
		n := i + 1
		add("education", n, "institution", e.Institution)
		add("education", n, "degree", e.Degree)
		add("education", n, "field", e.Field)
		add("education", n, "graduationDate", e.GraduationDate)
		add("education", n, "gpa", e.GPA)
		add("education", n, "achievements", e.Achievements)
	}

	add("skills", 0, "technical", record.Skills.Technical)
	add("skills", 0, "soft", record.Skills.Soft)
	add("skills", 0, "languages", record.Skills.Languages)

	for i, p := range record.Projects {
		n := i + 1
		add("projects", n, "name", p.Name)
		add("projects", n, "description", p.Description)
		add("projects", n, "technologies", p.Technologies)
		add("projects", n, "link", p.Link)
	}
	for i, c := range record.Certifications {
		n := i + 1
		add("certifications", n, "name", c.Name)
		add("certifications", n, "issuer", c.Issuer)
		add("certifications", n, "date", c.Date)
		add("certifications", n, "link", c.Link)
	}
	return rows
}

// Workbook builds the export workbook. The caller owns the returned file.
func Workbook(record *types.ResumeRecord, prov types.Provenance) (*excelize.File, error) {
	if record == nil {
		return nil, ErrNilRecord
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetRecord); err != nil {
		f.Close() //nolint:errcheck
		return nil, err
	}
	if _, err := f.NewSheet(SheetProvenance); err != nil {
		f.Close() //nolint:errcheck
		return nil, err
	}

	setRow(f, SheetRecord, 1, "Section", "Entry", "Field", "Value")
	for i, r := range Rows(record) {
		var entry any = ""
		if r.Index > 0 {
			entry = r.Index
		}
		setRow(f, SheetRecord, i+2, r.Section, entry, r.Field, r.Value)
	}

	setRow(f, SheetProvenance, 1, "Bucket", "Message")
	row := 2
	for _, bucket := range []struct {
		name     string
		messages []string
	}{
		{"success", prov.Successes},
		{"warning", prov.Warnings},
		{"error", prov.Errors},
		{"skipped", prov.Skipped},
	} {
		for _, m := range bucket.messages {
			setRow(f, SheetProvenance, row, bucket.name, m)
			row++
		}
	}

	_ = f.SetColWidth(SheetRecord, "A", "A", 16) // section
	_ = f.SetColWidth(SheetRecord, "B", "B", 8)  // entry
	_ = f.SetColWidth(SheetRecord, "C", "C", 18) // field
	_ = f.SetColWidth(SheetRecord, "D", "D", 80) // value
	_ = f.SetColWidth(SheetProvenance, "A", "A", 12)
	_ = f.SetColWidth(SheetProvenance, "B", "B", 80)

	idx, _ := f.GetSheetIndex(SheetRecord)
	f.SetActiveSheet(idx)
	return f, nil
}

// WriteWorkbook writes the record and provenance workbook to w.
func WriteWorkbook(w io.Writer, record *types.ResumeRecord, prov types.Provenance) error {
	f, err := Workbook(record, prov)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) {
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}
