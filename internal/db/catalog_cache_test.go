package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jpierre/resume-insights/internal/types"
)

func TestCacheExpired(t *testing.T) {
	tests := []struct {
		name      string
		fetchedAt time.Time
		ttl       time.Duration
		want      bool
	}{
		{
			name:      "entry fetched just now is fresh",
			fetchedAt: time.Now(),
			ttl:       DefaultCatalogCacheTTL,
			want:      false,
		},
		{
			name:      "entry within the ttl is fresh",
			fetchedAt: time.Now().Add(-6 * 24 * time.Hour),
			ttl:       DefaultCatalogCacheTTL,
			want:      false,
		},
		{
			name:      "entry older than the ttl is stale",
			fetchedAt: time.Now().Add(-8 * 24 * time.Hour),
			ttl:       DefaultCatalogCacheTTL,
			want:      true,
		},
		{
			name:      "zero ttl treats any past entry as stale",
			fetchedAt: time.Now().Add(-time.Minute),
			ttl:       0,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cacheExpired(tt.fetchedAt, tt.ttl); got != tt.want {
				t.Errorf("cacheExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalogCacheContent(t *testing.T) {
	t.Run("round-trip cached course listings", func(t *testing.T) {
		courses := []types.CourseRecord{
			{Code: "COP3530", Name: "Data Structures and Algorithm"},
			{Code: "COP4600", Name: "Operating Systems"},
		}
		data, err := json.Marshal(courses)
		if err != nil {
			t.Fatalf("Failed to marshal courses: %v", err)
		}

		var result []types.CourseRecord
		if err := json.Unmarshal(data, &result); err != nil {
			t.Fatalf("Failed to unmarshal: %v", err)
		}

		if len(result) != 2 {
			t.Fatalf("Course count = %d, want 2", len(result))
		}
		if result[0].Code != "COP3530" {
			t.Errorf("Code = %q, want 'COP3530'", result[0].Code)
		}
	})

	t.Run("unmarshal corrupt cache blob fails", func(t *testing.T) {
		var result []types.CourseRecord
		if err := json.Unmarshal([]byte(`{"code": "COP3530"}`), &result); err == nil {
			t.Error("Expected unmarshal error for non-array blob, got nil")
		}
	})
}
