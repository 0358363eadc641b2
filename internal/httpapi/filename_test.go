package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Failover Drill", "Failover_Drill"},
		{"Überblick: Q3", "Uberblick__Q3"},
		{"Café résumé", "Cafe_resume"},
		{"a/b\\c", "a_b_c"},
		{"日本", "__"},
		{"", "presentation"},
		{"v2.0", "v2_0"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.title))
		})
	}
}
