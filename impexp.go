package cashie

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// this file contains functions to handle the import/export format.
// Export and import share the wire format with persistence, which
// guarantees round-trip compatibility.

// MergePolicy selects how a profile-scoped import reconciles with the
// active profile.
type MergePolicy int

const (
	// Replace substitutes the active profile's transactions and recurring
	// templates with the imported document's.
	Replace MergePolicy = iota
	// Merge appends the imported transactions and templates to the active
	// profile. Merging is deliberately additive: importing the same
	// document twice duplicates its entries.
	Merge
)

func (p MergePolicy) String() string {
	switch p {
	case Replace:
		return "replace"
	case Merge:
		return "merge"
	default:
		return "unknown"
	}
}

// ParseMergePolicy parses a string into a MergePolicy.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch s {
	case "replace":
		return Replace, nil
	case "merge":
		return Merge, nil
	default:
		return 0, fmt.Errorf("unknown merge policy: %q", s)
	}
}

// ExportProfile writes the named profile as a portable
// {transactions, recurringTemplates} document.
func ExportProfile(w io.Writer, s *Store, name string) error {
	p, ok := s.Profiles[name]
	if !ok {
		return errValidation("unknown profile %q", name)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cannot marshal profile %q: %w", name, err)
	}
	return writeIndented(w, data)
}

// ExportStore writes the whole store, all profiles, categories and goals
// included, in the persisted document format.
func ExportStore(w io.Writer, s *Store) error {
	return EncodeStore(w, s)
}

// ImportDocument parses an externally supplied document and reconciles it
// against the live store. A {transactions, recurringTemplates} fragment is
// applied to the active profile under the given policy; a whole-store
// document (recognized by its "profiles" key) replaces the entire store
// outright. A malformed document is rejected with a ParseError and the
// store is left untouched.
func ImportDocument(s *Store, r io.Reader, policy MergePolicy) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errParse(err, "cannot read document")
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return errParse(err, "document is not a JSON object")
	}

	if _, ok := raw["profiles"]; ok {
		return importStore(s, data, raw)
	}
	return importProfile(s, data, raw, policy)
}

// importStore validates and applies a whole-store document.
func importStore(s *Store, data []byte, raw map[string]any) error {
	if _, ok := raw["categories"].([]any); !ok {
		return errParse(nil, "store document is missing its categories collection")
	}
	profiles, ok := raw["profiles"].(map[string]any)
	if !ok {
		return errParse(nil, "store document profiles must be an object")
	}
	for name, p := range profiles {
		obj, ok := p.(map[string]any)
		if !ok {
			return errParse(nil, "profile %q must be an object", name)
		}
		if _, ok := obj["transactions"].([]any); !ok {
			return errParse(nil, "profile %q is missing its transactions collection", name)
		}
	}

	imported, err := DecodeStore(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*s = *imported
	return nil
}

// importProfile validates a profile fragment and applies it to the active
// profile under the given policy.
func importProfile(s *Store, data []byte, raw map[string]any, policy MergePolicy) error {
	if _, ok := raw["transactions"].([]any); !ok {
		return errParse(nil, "profile document is missing its transactions collection")
	}
	if v, present := raw["recurringTemplates"]; present {
		if _, ok := v.([]any); !ok {
			return errParse(nil, "profile document recurringTemplates must be an array")
		}
	}

	var fragment struct {
		Transactions []Transaction       `json:"transactions"`
		Recurring    []RecurringTemplate `json:"recurringTemplates"`
	}
	if err := json.Unmarshal(data, &fragment); err != nil {
		return errParse(err, "document does not match the profile shape")
	}

	p := s.ActiveProfile()
	switch policy {
	case Replace:
		p.Transactions = fragment.Transactions
		p.Recurring = fragment.Recurring
	case Merge:
		p.Transactions = append(p.Transactions, fragment.Transactions...)
		p.Recurring = append(p.Recurring, fragment.Recurring...)
	default:
		return fmt.Errorf("unknown merge policy: %d", policy)
	}
	return nil
}
