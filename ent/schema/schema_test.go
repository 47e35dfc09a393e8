package schema_test

import (
	"strings"
	"testing"

	"entgo.io/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/ent/schema"
	"github.com/codeready-toolchain/runsheet/pkg/database"
)

// tableBlock returns the column list of a CREATE TABLE statement.
func tableBlock(t *testing.T, sql, table string) string {
	t.Helper()
	start := strings.Index(sql, "CREATE TABLE IF NOT EXISTS "+table+" (")
	require.GreaterOrEqual(t, start, 0, "table %s not found in migrations", table)
	end := strings.Index(sql[start:], "\n);")
	require.Greater(t, end, 0)
	return sql[start : start+end]
}

func columnNames(block string) []string {
	var cols []string
	for _, line := range strings.Split(block, "\n")[1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "CHECK") {
			continue
		}
		cols = append(cols, strings.Fields(line)[0])
	}
	return cols
}

func fieldNames(fields []ent.Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		name := d.Name
		if d.StorageKey != "" {
			name = d.StorageKey
		}
		names = append(names, name)
	}
	return names
}

func TestMigrationMatchesSchema(t *testing.T) {
	sql, err := database.MigrationSQL()
	require.NoError(t, err)

	tests := []struct {
		table  string
		fields []ent.Field
	}{
		{table: "events", fields: schema.Event{}.Fields()},
		{table: "timeline_items", fields: schema.TimelineItem{}.Fields()},
	}
	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			assert.ElementsMatch(t, fieldNames(tt.fields), columnNames(tableBlock(t, sql, tt.table)))
		})
	}
}

func TestEnumValuesMatchChecks(t *testing.T) {
	sql, err := database.MigrationSQL()
	require.NoError(t, err)

	for _, f := range (schema.TimelineItem{}).Fields() {
		d := f.Descriptor()
		for _, v := range d.Enums {
			assert.Contains(t, tableBlock(t, sql, "timeline_items"), "'"+v.V+"'", "%s value %s", d.Name, v.V)
		}
	}
	for _, f := range (schema.Event{}).Fields() {
		d := f.Descriptor()
		for _, v := range d.Enums {
			assert.Contains(t, tableBlock(t, sql, "events"), "'"+v.V+"'", "%s value %s", d.Name, v.V)
		}
	}
}
