package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-s", "key", "-a", ":8080"},
			allowed: []string{"-s"},
			want:    []string{"-s", "key"},
		},
		{
			name:    "equals form",
			args:    []string{"-d=postgres://x", "-a", ":8080"},
			allowed: []string{"-d"},
			want:    []string{"-d=postgres://x"},
		},
		{
			name:    "order preserved",
			args:    []string{"-b=one", "-x", "1", "-a", "two"},
			allowed: []string{"-a", "-b"},
			want:    []string{"-b=one", "-a", "two"},
		},
		{
			name:    "unknown flags ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next argument is a flag",
			args:    []string{"-c", "-a"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "equals value that looks like a flag",
			args:    []string{"-config=--weird.json"},
			allowed: []string{"-config"},
			want:    []string{"-config=--weird.json"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFileFlag([]string{"-c", "a.json", "-s", "k"}))
	assert.Equal(t, "b.json", ConfigFileFlag([]string{"-a", ":1", "-config=b.json"}))
	assert.Equal(t, "", ConfigFileFlag([]string{"-a", ":1"}))
	assert.Equal(t, "", ConfigFileFlag(nil))
}
