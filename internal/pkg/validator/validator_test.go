package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidCarnet(t *testing.T) {
	valid := []string{"ABC-123", "1234567", "emp-0001"}
	invalid := []string{"ab", "has space", "carnet_with_underscores", "", "x"}
	for _, c := range valid {
		if !IsValidCarnet(c) {
			t.Errorf("IsValidCarnet(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidCarnet(c) {
			t.Errorf("IsValidCarnet(%q) = true, want false", c)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-03-10"); !ok {
		t.Error("IsValidDate(\"2026-03-10\") = false, want true")
	}
	for _, s := range []string{"2026-13-01", "10-03-2026", "2026-03-10T00:00:00Z", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2026-03-10T09:00:00Z",
		"2026-03-10T09:00:00-04:00",
		"2026-03-10T09:00:00.123456789Z",
	}
	invalid := []string{"2026-03-10", "09:00:00", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "carnet", Message: "carnet is required"},
		{Field: "imageBase64", Message: "imageBase64 is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["carnet"] != "carnet is required" {
		t.Errorf("ToMap()[\"carnet\"] = %q", m["carnet"])
	}
}
