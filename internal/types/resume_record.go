// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeRecord is the canonical structured resume produced by the parser and
// consumed by the form, template, and storage collaborators.
// Entry collections are nil when nothing was extracted so that an absent key
// means "not found" rather than "none".
type ResumeRecord struct {
	FullName       string               `json:"fullName"`
	Email          string               `json:"email" validate:"omitempty,email"`
	Phone          string               `json:"phone"`
	Location       string               `json:"location"`
	LinkedInURL    string               `json:"linkedinUrl" validate:"omitempty,url"`
	WebsiteURL     string               `json:"websiteUrl" validate:"omitempty,url"`
	Summary        string               `json:"summary"`
	Education      []EducationEntry     `json:"education,omitempty" validate:"dive"`
	Experience     []ExperienceEntry    `json:"experience,omitempty" validate:"dive"`
	Skills         Skills               `json:"skills"`
	Projects       []ProjectEntry       `json:"projects,omitempty" validate:"dive"`
	Certifications []CertificationEntry `json:"certifications,omitempty" validate:"dive"`
}

// EducationEntry is one degree or program.
type EducationEntry struct {
	Institution    string `json:"institution" validate:"required"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
	Achievements   string `json:"achievements"`
}

// ExperienceEntry is one job. IsCurrent is authoritative over EndDate.
type ExperienceEntry struct {
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsCurrent   bool   `json:"isCurrent"`
	Description string `json:"description"`
}

// Skills holds comma-separated free text per category.
type Skills struct {
	Technical string `json:"technical"`
	Soft      string `json:"soft"`
	Languages string `json:"languages"`
}

// ProjectEntry is one project.
type ProjectEntry struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
}

// CertificationEntry is one certification.
type CertificationEntry struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link"`
}

// Validate validates the record's structural constraints using the validator.
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Clone returns a deep copy of the record.
func (r *ResumeRecord) Clone() *ResumeRecord {
	if r == nil {
		return nil
	}
	out := *r
	if r.Education != nil {
		out.Education = append([]EducationEntry(nil), r.Education...)
	}
	if r.Experience != nil {
		out.Experience = append([]ExperienceEntry(nil), r.Experience...)
	}
	if r.Projects != nil {
		out.Projects = append([]ProjectEntry(nil), r.Projects...)
	}
	if r.Certifications != nil {
		out.Certifications = append([]CertificationEntry(nil), r.Certifications...)
	}
	return &out
}

// IsEmpty reports whether no field at all was populated.
func (r *ResumeRecord) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.FullName == "" && r.Email == "" && r.Phone == "" && r.Location == "" &&
		r.LinkedInURL == "" && r.WebsiteURL == "" && r.Summary == "" &&
		len(r.Education) == 0 && len(r.Experience) == 0 && len(r.Projects) == 0 &&
		len(r.Certifications) == 0 && r.Skills == (Skills{})
}
