// Package types provides type definitions for structured data used throughout the resume-insights system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ResumeRecord is the structured resume produced by the upstream extraction
// step. The engines only read the fields below; anything else the extractor
// emits is ignored.
type ResumeRecord struct {
	Basics     Basics      `json:"basics"`
	Projects   []Project   `json:"projects"`
	Experience []Job       `json:"experience"`
	Skills     Skills      `json:"skills"`
	Education  []Education `json:"education"`
}

// Basics holds contact information and profile links.
type Basics struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	GitHub    string `json:"github,omitempty" validate:"omitempty,url"`
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,url"`
	Portfolio string `json:"portfolio,omitempty" validate:"omitempty,url"`
}

// Project represents a single project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Job represents a single work experience entry.
type Job struct {
	Position         string   `json:"position"`
	Company          string   `json:"company,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
}

// Skills groups reported skills into the five categories the scorer measures.
type Skills struct {
	ProgrammingLanguages []string `json:"programming_languages,omitempty"`
	Frameworks           []string `json:"frameworks,omitempty"`
	Databases            []string `json:"databases,omitempty"`
	DevOpsTools          []string `json:"devops_tools,omitempty"`
	Other                []string `json:"other,omitempty"`
}

// Education represents a single education entry. Achievements carry free-text
// lines, including the "Relevant coursework: ..." lines the matcher reads.
type Education struct {
	Institution  string   `json:"institution,omitempty"`
	Degree       string   `json:"degree,omitempty"`
	GPA          float64  `json:"gpa,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

var validate = validator.New()

// Validate checks field formats on the record (email, profile links).
// Missing fields are valid; the scorer treats absence as a zero-score state.
func (r *ResumeRecord) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var sb strings.Builder
		sb.WriteString("invalid resume record:")
		for _, fieldErr := range validationErrors {
			sb.WriteString(fmt.Sprintf(" %s (%s);", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
	}
	return fmt.Errorf("resume record validation failed: %w", err)
}

// TotalSkills counts all reported skills across the five categories.
func (s Skills) TotalSkills() int {
	return len(s.ProgrammingLanguages) + len(s.Frameworks) + len(s.Databases) + len(s.DevOpsTools) + len(s.Other)
}

// Categories returns the five skill category slices in fixed order.
func (s Skills) Categories() [][]string {
	return [][]string{s.ProgrammingLanguages, s.Frameworks, s.Databases, s.DevOpsTools, s.Other}
}

// BestGPA returns the highest GPA reported across education entries, or 0 if
// none is reported.
func (r *ResumeRecord) BestGPA() float64 {
	best := 0.0
	for _, edu := range r.Education {
		if edu.GPA > best {
			best = edu.GPA
		}
	}
	return best
}

// EducationAchievements flattens achievement lines from all education entries
// in encounter order.
func (r *ResumeRecord) EducationAchievements() []string {
	var achievements []string
	for _, edu := range r.Education {
		achievements = append(achievements, edu.Achievements...)
	}
	return achievements
}
