package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seatgrid-cli/model"
)

func TestLoadTheaters_EmptyPathReturnsBuiltins(t *testing.T) {
	theaters, err := LoadTheaters("")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(theaters) != 3 {
		t.Fatalf("expected 3 built-in theaters, got %d", len(theaters))
	}
	for _, theater := range theaters {
		if err := ValidateTheater(&theater); err != nil {
			t.Fatalf("expected built-in theater %q to validate, got %v", theater.ID, err)
		}
	}
}

func writeLayoutFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return path
}

func TestLoadTheaters_ValidFile(t *testing.T) {
	path := writeLayoutFile(t, `[
		{
			"id": "custom",
			"name": "Custom Hall",
			"layout": {
				"sections": [
					{"id": "main", "name": "Main", "rows": 2, "cols": 3, "seatType": "std"}
				],
				"seatTypes": {"std": {"color": "#ADD8E6", "price": 120}}
			}
		}
	]`)

	theaters, err := LoadTheaters(path)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(theaters) != 1 || theaters[0].ID != "custom" {
		t.Fatalf("expected one custom theater, got %+v", theaters)
	}
	if theaters[0].Layout.Sections[0].Cols != 3 {
		t.Fatalf("expected cols 3, got %d", theaters[0].Layout.Sections[0].Cols)
	}
}

func TestLoadTheaters_MissingRequiredField(t *testing.T) {
	path := writeLayoutFile(t, `[
		{
			"id": "broken",
			"name": "Broken Hall",
			"layout": {
				"sections": [
					{"name": "Main", "rows": 2, "cols": 3, "seatType": "std"}
				],
				"seatTypes": {"std": {"color": "#ADD8E6", "price": 120}}
			}
		}
	]`)

	_, err := LoadTheaters(path)
	if err == nil {
		t.Fatal("expected validation error for missing section id")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("expected a required-field message, got %v", err)
	}
}

func TestValidateTheater_UnknownSeatType(t *testing.T) {
	theater := model.TheaterConfig{
		ID:   "t",
		Name: "T",
		Layout: &model.Layout{
			Sections: []model.Section{
				{ID: "a", Name: "A", Rows: 1, Cols: 1, SeatType: "ghost"},
			},
			SeatTypes: map[string]model.SeatType{"std": {Color: "#FFF"}},
		},
	}

	err := ValidateTheater(&theater)
	if err == nil {
		t.Fatal("expected error for unknown seat type")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Fatalf("expected the seat type name in the error, got %v", err)
	}
}

func TestLoadTheaters_EmptyFile(t *testing.T) {
	path := writeLayoutFile(t, `[]`)
	if _, err := LoadTheaters(path); err == nil {
		t.Fatal("expected error for empty theater list")
	}
}
