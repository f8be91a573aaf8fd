package cashie

import (
	"strings"
	"testing"
)

const v1Doc = `{
  "transactions": [
    {"id": "a", "type": "expense", "category": "Rent", "amount": 1200, "date": "2024-01-01", "recurring": "monthly", "createdAt": 1}
  ],
  "recurringTemplates": [
    {"type": "expense", "category": "Rent", "amount": 1200, "recurring": "monthly", "lastApplied": "2024-01-01"}
  ],
  "categories": [
    {"id": "c1", "name": "Rent", "monthlyBudget": 0}
  ],
  "currency": "USD"
}`

func TestMigrate_V1ToCurrent(t *testing.T) {
	// A document with no schemaVersion is the original flat shape.
	s, err := DecodeStore(strings.NewReader(v1Doc))
	if err != nil {
		t.Fatalf("DecodeStore() error = %v", err)
	}

	if s.SchemaVersion != CurrentSchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", s.SchemaVersion, CurrentSchemaVersion)
	}
	if s.ActiveProfileName != DefaultProfileName {
		t.Errorf("ActiveProfileName = %q, want %q", s.ActiveProfileName, DefaultProfileName)
	}

	p := s.Profiles[DefaultProfileName]
	if p == nil {
		t.Fatal("migrated store has no Default profile")
	}
	if len(p.Transactions) != 1 || p.Transactions[0].Category != "Rent" {
		t.Errorf("flat transactions did not move into the Default profile: %+v", p.Transactions)
	}
	if len(p.Recurring) != 1 || p.Recurring[0].Period != Monthly {
		t.Errorf("flat recurring templates did not move into the Default profile: %+v", p.Recurring)
	}
	if s.Currency != "USD" {
		t.Errorf("Currency = %q, want carried over USD", s.Currency)
	}
	if len(s.Categories) != 1 {
		t.Errorf("categories = %d, want carried over 1", len(s.Categories))
	}
}

func TestMigrate_CurrentVersionOnlyStamped(t *testing.T) {
	doc := map[string]any{
		"schemaVersion":     float64(CurrentSchemaVersion),
		"profiles":          map[string]any{"Default": map[string]any{}},
		"activeProfileName": "Default",
	}
	out := Migrate(doc)
	if out["schemaVersion"] != CurrentSchemaVersion {
		t.Errorf("schemaVersion = %v, want %d", out["schemaVersion"], CurrentSchemaVersion)
	}
	if _, ok := out["profiles"]; !ok {
		t.Error("profiles dropped on a current-version document")
	}
}

func TestMigrate_NewerVersionPassesThrough(t *testing.T) {
	doc := map[string]any{
		"schemaVersion": float64(CurrentSchemaVersion + 5),
		"profiles":      map[string]any{"Default": map[string]any{}},
		"futureField":   "kept",
	}
	out := Migrate(doc)
	if out["schemaVersion"] != CurrentSchemaVersion+5 {
		t.Errorf("schemaVersion = %v, a newer document must keep its version", out["schemaVersion"])
	}
	if out["futureField"] != "kept" {
		t.Error("newer document fields must pass through untouched")
	}
}

func TestRawSchemaVersion(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want int
	}{
		{"absent means v1", map[string]any{}, 1},
		{"float from json", map[string]any{"schemaVersion": float64(2)}, 2},
		{"int", map[string]any{"schemaVersion": 3}, 3},
		{"garbage means v1", map[string]any{"schemaVersion": "two"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rawSchemaVersion(tt.doc); got != tt.want {
				t.Errorf("rawSchemaVersion() = %d, want %d", got, tt.want)
			}
		})
	}
}
