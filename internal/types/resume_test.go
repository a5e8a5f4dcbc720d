package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  ResumeRecord
		wantErr bool
	}{
		{
			name:   "empty record is valid",
			record: ResumeRecord{},
		},
		{
			name: "well formed basics",
			record: ResumeRecord{
				Basics: Basics{
					Email:    "ada@example.com",
					GitHub:   "https://github.com/ada",
					LinkedIn: "https://linkedin.com/in/ada",
				},
			},
		},
		{
			name: "malformed email",
			record: ResumeRecord{
				Basics: Basics{Email: "not-an-email"},
			},
			wantErr: true,
		},
		{
			name: "malformed profile URL",
			record: ResumeRecord{
				Basics: Basics{GitHub: "github.com/ada"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSkills_TotalSkills(t *testing.T) {
	skills := Skills{
		ProgrammingLanguages: []string{"Go", "Python", "C++"},
		Frameworks:           []string{"React"},
		Databases:            []string{"PostgreSQL", "Redis"},
	}

	assert.Equal(t, 6, skills.TotalSkills())
	assert.Equal(t, 0, Skills{}.TotalSkills())
}

func TestSkills_Categories_FixedOrder(t *testing.T) {
	skills := Skills{
		ProgrammingLanguages: []string{"Go"},
		DevOpsTools:          []string{"Docker"},
	}

	categories := skills.Categories()
	assert.Len(t, categories, 5)
	assert.Equal(t, []string{"Go"}, categories[0])
	assert.Nil(t, categories[1])
	assert.Equal(t, []string{"Docker"}, categories[3])
}

func TestResumeRecord_BestGPA(t *testing.T) {
	record := ResumeRecord{
		Education: []Education{
			{Institution: "Community College", GPA: 3.9},
			{Institution: "UF", GPA: 3.5},
			{Institution: "Bootcamp"},
		},
	}

	assert.Equal(t, 3.9, record.BestGPA())
	assert.Equal(t, 0.0, (&ResumeRecord{}).BestGPA())
}

func TestResumeRecord_EducationAchievements(t *testing.T) {
	record := ResumeRecord{
		Education: []Education{
			{Achievements: []string{"Dean's List", "Relevant coursework: Data Structures"}},
			{Achievements: []string{"Honors thesis"}},
		},
	}

	assert.Equal(t, []string{
		"Dean's List",
		"Relevant coursework: Data Structures",
		"Honors thesis",
	}, record.EducationAchievements())
}
