package cashie

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// storeDoc is the typed reading of a current-version raw document.
type storeDoc struct {
	SchemaVersion     int                 `json:"schemaVersion"`
	Profiles          map[string]*Profile `json:"profiles"`
	ActiveProfileName string              `json:"activeProfileName"`
	Categories        []Category          `json:"categories"`
	Goals             []Goal              `json:"goals"`
	Currency          string              `json:"currency"`
}

// DecodeStore parses a persisted document, upgrades it through the
// migration chain, and returns a Store of the current schema version. A
// document that cannot be parsed at all is a ParseError; the caller falls
// back to a freshly seeded Store.
func DecodeStore(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errParse(err, "cannot read document")
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errParse(err, "document is not a JSON object")
	}
	raw = Migrate(raw)

	migrated, err := json.Marshal(raw)
	if err != nil {
		return nil, errParse(err, "cannot re-encode migrated document")
	}
	var doc storeDoc
	if err := json.Unmarshal(migrated, &doc); err != nil {
		return nil, errParse(err, "document does not match the store shape")
	}

	s := &Store{
		SchemaVersion:     doc.SchemaVersion,
		Profiles:          doc.Profiles,
		ActiveProfileName: doc.ActiveProfileName,
		Categories:        doc.Categories,
		Goals:             doc.Goals,
		Currency:          doc.Currency,
	}
	s.normalize()
	return s, nil
}

// normalize restores the store invariants after a decode: a non-empty
// profile map, an active name that resolves, and a currency.
func (s *Store) normalize() {
	if s.Profiles == nil {
		s.Profiles = make(map[string]*Profile)
	}
	for name, p := range s.Profiles {
		if p == nil {
			s.Profiles[name] = &Profile{}
		}
	}
	if len(s.Profiles) == 0 {
		s.Profiles[DefaultProfileName] = &Profile{}
	}
	if _, ok := s.Profiles[s.ActiveProfileName]; !ok {
		if _, ok := s.Profiles[DefaultProfileName]; ok {
			s.ActiveProfileName = DefaultProfileName
		} else {
			s.ActiveProfileName = s.ProfileNames()[0]
		}
	}
	if s.Currency == "" {
		s.Currency = "EUR"
	}
	if s.SchemaVersion < CurrentSchemaVersion {
		s.SchemaVersion = CurrentSchemaVersion
	}
}

// MarshalJSON implements the json.Marshaler interface for Profile in a
// canonical form: transactions sorted by date then insertion sequence, and
// empty collections encoded as empty arrays rather than null.
func (p *Profile) MarshalJSON() ([]byte, error) {
	sorted := Profile{
		Transactions: slices.Clone(p.Transactions),
		Recurring:    p.Recurring,
	}
	sorted.stableSort()
	if sorted.Transactions == nil {
		sorted.Transactions = []Transaction{}
	}
	if sorted.Recurring == nil {
		sorted.Recurring = []RecurringTemplate{}
	}

	var w jsonObjectWriter
	w.Append("transactions", sorted.Transactions)
	w.Append("recurringTemplates", sorted.Recurring)
	return w.MarshalJSON()
}

// EncodeStore writes the store as an indented JSON document with a stable
// key order, so encoding is canonical: encode, decode and encode again
// yields byte-identical output. The same format is used for persistence and
// for whole-store export.
func EncodeStore(w io.Writer, s *Store) error {
	var root jsonObjectWriter
	root.Append("schemaVersion", s.SchemaVersion)
	root.Append("activeProfileName", s.ActiveProfileName)
	root.Append("currency", s.Currency)

	var profiles jsonObjectWriter
	for _, name := range s.ProfileNames() {
		profiles.Append(name, s.Profiles[name])
	}
	profilesBytes, err := profiles.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal profiles: %w", err)
	}
	root.WriteString(`"profiles":`)
	root.Write(profilesBytes)
	root.WriteString(",")

	categories := s.Categories
	if categories == nil {
		categories = []Category{}
	}
	goals := s.Goals
	if goals == nil {
		goals = []Goal{}
	}
	root.Append("categories", categories)
	root.Append("goals", goals)

	data, err := root.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal store: %w", err)
	}
	return writeIndented(w, data)
}

// writeIndented writes a JSON document two-space indented with a trailing
// newline, the presentation shared by persistence and export.
func writeIndented(w io.Writer, data []byte) error {
	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return fmt.Errorf("cannot indent document: %w", err)
	}
	indented.WriteByte('\n')
	_, err := w.Write(indented.Bytes())
	return err
}
