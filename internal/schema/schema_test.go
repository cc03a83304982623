package schema

import "testing"

func testSchema() *Schema {
	min := 0.0
	max := 1.0
	return New(
		Field{Name: "title", Type: TypeString, Required: true, Default: "Titre"},
		Field{Name: "subtitle", Type: TypeString},
		Field{Name: "ratio", Type: TypeNumber, Default: 0.5, Min: &min, Max: &max},
		Field{Name: "enabled", Type: TypeBoolean, Default: true},
		Field{Name: "layout", Type: TypeEnum, Enum: []string{"grid", "list"}, Default: "grid"},
	)
}

func TestValidateNeverFails(t *testing.T) {
	s := testSchema()
	resolved, warnings := s.Validate(map[string]any{
		"title":   123,
		"ratio":   4.2,
		"enabled": "yes",
		"layout":  "carousel",
	})

	if got := resolved["title"]; got != "Titre" {
		t.Fatalf("title = %v, want default", got)
	}
	if got := resolved["ratio"]; got != 0.5 {
		t.Fatalf("ratio = %v, want default", got)
	}
	if got := resolved["enabled"]; got != true {
		t.Fatalf("enabled = %v, want default", got)
	}
	if got := resolved["layout"]; got != "grid" {
		t.Fatalf("layout = %v, want default", got)
	}
	if len(warnings) != 4 {
		t.Fatalf("expected 4 warnings, got %d: %v", len(warnings), warnings)
	}
}

func TestValidateEmptyInputYieldsAllDefaults(t *testing.T) {
	s := testSchema()
	resolved, warnings := s.Validate(nil)

	for _, field := range s.Fields {
		value, ok := resolved[field.Name]
		if !ok {
			t.Fatalf("resolved missing declared field %s", field.Name)
		}
		if field.Default != nil && value != field.Default {
			t.Fatalf("%s = %v, want default %v", field.Name, value, field.Default)
		}
	}
	// Only required fields warn on absence.
	if len(warnings) != 1 || warnings[0].Field != "title" {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

func TestValidateKeepsValidOverrides(t *testing.T) {
	s := testSchema()
	resolved, warnings := s.Validate(map[string]any{
		"title":  "Plomberie Paris",
		"ratio":  0.8,
		"layout": "list",
	})

	if resolved["title"] != "Plomberie Paris" {
		t.Fatalf("valid title replaced: %v", resolved["title"])
	}
	if resolved["ratio"] != 0.8 {
		t.Fatalf("valid ratio replaced: %v", resolved["ratio"])
	}
	if resolved["layout"] != "list" {
		t.Fatalf("valid layout replaced: %v", resolved["layout"])
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

func TestValidatePassesUndeclaredPropsThrough(t *testing.T) {
	s := testSchema()
	resolved, _ := s.Validate(map[string]any{
		"title":          "OK",
		"feature1_title": "Devis gratuit",
	})
	if resolved["feature1_title"] != "Devis gratuit" {
		t.Fatalf("undeclared prop dropped: %v", resolved)
	}
}

func TestValidateAcceptsIntegerForNumberField(t *testing.T) {
	s := testSchema()
	resolved, warnings := s.Validate(map[string]any{"ratio": 1})
	if len(warnings) != 0 {
		t.Fatalf("integer within range should validate: %v", warnings)
	}
	if got, ok := resolved["ratio"].(float64); !ok || got != 1 {
		t.Fatalf("ratio = %v (%T), want 1 as float64", resolved["ratio"], resolved["ratio"])
	}
}
