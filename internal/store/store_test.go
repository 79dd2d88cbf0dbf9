package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devia.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestNextNumberIncrements(t *testing.T) {
	s, _ := openTemp(t)
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	n1, err := s.NextNumber(day)
	if err != nil {
		t.Fatal(err)
	}
	if n1 != "D20260831-001" {
		t.Errorf("first number = %q, want D20260831-001", n1)
	}

	n2, err := s.NextNumber(day)
	if err != nil {
		t.Fatal(err)
	}
	if n2 != "D20260831-002" {
		t.Errorf("second number = %q, want D20260831-002", n2)
	}
}

func TestNextNumberRestartsPerDay(t *testing.T) {
	s, _ := openTemp(t)

	d1 := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)

	if _, err := s.NextNumber(d1); err != nil {
		t.Fatal(err)
	}
	n, err := s.NextNumber(d2)
	if err != nil {
		t.Fatal(err)
	}
	if n != "D20260901-001" {
		t.Errorf("next-day number = %q, want D20260901-001", n)
	}
}

func TestNextNumberSurvivesReopen(t *testing.T) {
	s, path := openTemp(t)
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	if _, err := s.NextNumber(day); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	n, err := s2.NextNumber(day)
	if err != nil {
		t.Fatal(err)
	}
	if n != "D20260831-002" {
		t.Errorf("number after reopen = %q, want D20260831-002", n)
	}
}
