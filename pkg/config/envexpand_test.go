package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution",
			input: "http_addr: :{{.PORT}}",
			env:   map[string]string{"PORT": "8081"},
			want:  "http_addr: :8081",
		},
		{
			name:  "shell syntax is left alone",
			input: "disk_path: ${HOME}/$DATA",
			env:   map[string]string{"HOME": "/root", "DATA": "x"},
			want:  "disk_path: ${HOME}/$DATA",
		},
		{
			name:  "missing variable expands to empty",
			input: "grpc_addr: '{{.RUNSHEET_UNSET_VAR}}'",
			want:  "grpc_addr: ''",
		},
		{
			name:  "value containing equals sign",
			input: "dsn: {{.DSN}}",
			env:   map[string]string{"DSN": "a=b=c"},
			want:  "dsn: a=b=c",
		},
		{
			name:  "malformed template passes through",
			input: "bad: {{.UNCLOSED",
			want:  "bad: {{.UNCLOSED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
