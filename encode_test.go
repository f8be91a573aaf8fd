package cashie

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// testStore builds a small deterministic store for the encoding tests.
func testStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	add := func(typ TxType, category string, amount int64, day Date, recurring Recurrence) {
		t.Helper()
		tx, err := NewTransaction(typ, category, decimal.NewFromInt(amount), day, "", "", recurring)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.AddTransaction(tx); err != nil {
			t.Fatal(err)
		}
	}
	add(Income, "Salary", 3000, NewDate(2026, time.July, 1), None)
	add(Expense, "Rent", 1200, NewDate(2026, time.July, 3), Monthly)
	s.CreateProfile("Business")
	add(Expense, "Utilities", 90, NewDate(2026, time.July, 10), None)
	if err := s.SetActiveProfile(DefaultProfileName); err != nil {
		t.Fatal(err)
	}
	if err := s.AddOrUpdateGoal(Goal{Name: "Holidays", Target: decimal.NewFromInt(2000)}); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestEncodeStore_Canonical(t *testing.T) {
	s := testStore(t)

	var first bytes.Buffer
	if err := EncodeStore(&first, s); err != nil {
		t.Fatalf("EncodeStore() error = %v", err)
	}

	decoded, err := DecodeStore(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("DecodeStore() error = %v", err)
	}
	var second bytes.Buffer
	if err := EncodeStore(&second, decoded); err != nil {
		t.Fatalf("EncodeStore() error = %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("encode, decode, encode is not byte-identical:\n--- first\n%s\n--- second\n%s", first.String(), second.String())
	}
}

func TestEncodeStore_Shape(t *testing.T) {
	s := testStore(t)
	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		t.Fatalf("EncodeStore() error = %v", err)
	}
	out := buf.String()

	// Stable top-level key order.
	keys := []string{`"schemaVersion"`, `"activeProfileName"`, `"currency"`, `"profiles"`, `"categories"`, `"goals"`}
	last := -1
	for _, key := range keys {
		i := strings.Index(out, key)
		if i < 0 {
			t.Fatalf("encoded store is missing %s", key)
		}
		if i < last {
			t.Errorf("key %s out of order", key)
		}
		last = i
	}

	// Amounts are bare JSON numbers, not quoted strings.
	if strings.Contains(out, `"amount": "`) {
		t.Error("amounts encoded as strings")
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("encoded document misses its trailing newline")
	}
	// Profile names come sorted.
	if strings.Index(out, `"Business"`) > strings.Index(out, `"Default"`) {
		t.Error("profiles not in sorted name order")
	}
}

func TestDecodeStore_Garbage(t *testing.T) {
	_, err := DecodeStore(strings.NewReader("not json at all"))
	if err == nil {
		t.Fatal("DecodeStore() accepted garbage")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("DecodeStore() error = %T, want *ParseError", err)
	}
}

func TestDecodeStore_NormalizesInvariants(t *testing.T) {
	// A document whose active profile name dangles resolves back to Default.
	doc := `{
  "schemaVersion": 2,
  "activeProfileName": "Gone",
  "profiles": {"Default": {"transactions": [], "recurringTemplates": []}}
}`
	s, err := DecodeStore(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeStore() error = %v", err)
	}
	if s.ActiveProfileName != DefaultProfileName {
		t.Errorf("ActiveProfileName = %q, want %q", s.ActiveProfileName, DefaultProfileName)
	}
	if s.Currency != "EUR" {
		t.Errorf("Currency = %q, want defaulted EUR", s.Currency)
	}
	if s.ActiveProfile() == nil {
		t.Error("ActiveProfile() is nil after normalize")
	}
}
