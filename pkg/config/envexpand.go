package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables written as {{.VAR_NAME}}.
// Shell-style $VAR and ${VAR} are left alone, so values such as passwords
// containing $ survive untouched.
//
//	http_addr: ":{{.PORT}}"
//	disk_path: "{{.HOME}}/runsheet"
//
// Missing variables expand to the empty string. Content that is not a valid
// template is returned unchanged and left for the YAML parser to reject.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
