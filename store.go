package cashie

import (
	"encoding/json"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultProfileName is the profile every fresh store is seeded with. A
// store always holds at least this one profile.
const DefaultProfileName = "Default"

// Category is a named spending bucket with an optional monthly budget.
// Deleting a category never cascades to transactions; entries keep their
// dangling name and the display layer renders them as unknown.
type Category struct {
	ID            string
	Name          string // unique within the store
	Color         string
	MonthlyBudget decimal.Decimal // >= 0; zero means "no budget set"
}

// Validate checks the category against the creation rules.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errValidation("category name is missing")
	}
	if c.MonthlyBudget.IsNegative() {
		return errValidation("category %q budget must not be negative, got %s", c.Name, c.MonthlyBudget)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Category with a
// stable field order.
func (c Category) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Optional("color", c.Color)
	w.Append("monthlyBudget", c.MonthlyBudget)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Category.
func (c *Category) UnmarshalJSON(data []byte) error {
	type plain struct {
		ID            string          `json:"id"`
		Name          string          `json:"name"`
		Color         string          `json:"color"`
		MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
	}
	var temp plain
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*c = Category(temp)
	return nil
}

// Goal is a savings goal. Saved moves by arbitrary signed deltas but is
// clamped to zero from below.
type Goal struct {
	ID     string
	Name   string
	Target decimal.Decimal // > 0
	Saved  decimal.Decimal // >= 0
}

// Validate checks the goal against the creation rules.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return errValidation("goal name is missing")
	}
	if !g.Target.IsPositive() {
		return errValidation("goal %q target must be positive, got %s", g.Name, g.Target)
	}
	if g.Saved.IsNegative() {
		return errValidation("goal %q saved amount must not be negative, got %s", g.Name, g.Saved)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Goal with a stable
// field order.
func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("name", g.Name)
	w.Append("target", g.Target)
	w.Append("saved", g.Saved)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Goal.
func (g *Goal) UnmarshalJSON(data []byte) error {
	type plain struct {
		ID     string          `json:"id"`
		Name   string          `json:"name"`
		Target decimal.Decimal `json:"target"`
		Saved  decimal.Decimal `json:"saved"`
	}
	var temp plain
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*g = Goal(temp)
	return nil
}

// Profile is a named, isolated ledger: its own transactions and its own
// recurring templates. All mutating operations apply to the active profile
// only.
type Profile struct {
	Transactions []Transaction       `json:"transactions"`
	Recurring    []RecurringTemplate `json:"recurringTemplates"`
}

// nextCreatedAt returns the next insertion sequence number for the profile.
func (p *Profile) nextCreatedAt() int64 {
	var max int64
	for _, tx := range p.Transactions {
		if tx.CreatedAt > max {
			max = tx.CreatedAt
		}
	}
	return max + 1
}

// stableSort orders the profile's transactions by date, with the insertion
// sequence as tiebreak for same-day entries. The order is canonical for
// encoding.
func (p *Profile) stableSort() {
	sort.SliceStable(p.Transactions, func(i, j int) bool {
		a, b := p.Transactions[i], p.Transactions[j]
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		return a.CreatedAt < b.CreatedAt
	})
}

// Store is the root persisted document. ActiveProfileName always resolves to
// a key of Profiles, and Profiles is never empty.
type Store struct {
	SchemaVersion     int
	Profiles          map[string]*Profile
	ActiveProfileName string
	Categories        []Category
	Goals             []Goal
	Currency          string
}

// starterCategories seeds a fresh store with a usable category set.
func starterCategories() []Category {
	names := []struct{ name, color string }{
		{"Groceries", "#4caf50"},
		{"Rent", "#f44336"},
		{"Utilities", "#ff9800"},
		{"Leisure", "#2196f3"},
		{"Salary", "#9c27b0"},
	}
	cats := make([]Category, 0, len(names))
	for _, n := range names {
		cats = append(cats, Category{ID: uuid.NewString(), Name: n.name, Color: n.color})
	}
	return cats
}

// NewStore constructs a fresh store seeded with one Default profile and the
// starter category set.
func NewStore() *Store {
	return &Store{
		SchemaVersion:     CurrentSchemaVersion,
		Profiles:          map[string]*Profile{DefaultProfileName: {}},
		ActiveProfileName: DefaultProfileName,
		Categories:        starterCategories(),
		Currency:          "EUR",
	}
}

// Reset replaces the store's contents with a freshly seeded store. This is
// the "clear all data" operation.
func (s *Store) Reset() {
	*s = *NewStore()
}

// ActiveProfile returns the profile all mutating operations apply to.
func (s *Store) ActiveProfile() *Profile {
	return s.Profiles[s.ActiveProfileName]
}

// ProfileNames returns all profile names in sorted order.
func (s *Store) ProfileNames() []string {
	names := slices.Collect(maps.Keys(s.Profiles))
	slices.Sort(names)
	return names
}

// CreateProfile creates an empty profile under the given name and makes it
// active. An empty name is a silent no-op; an existing name only switches
// the active profile to it.
func (s *Store) CreateProfile(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if _, ok := s.Profiles[name]; !ok {
		s.Profiles[name] = &Profile{}
	}
	s.ActiveProfileName = name
}

// SetActiveProfile switches the active profile. Unknown names are rejected
// so the active-name invariant always holds.
func (s *Store) SetActiveProfile(name string) error {
	if _, ok := s.Profiles[name]; !ok {
		return errValidation("unknown profile %q", name)
	}
	s.ActiveProfileName = name
	return nil
}

// AddTransaction validates tx and appends it to the active profile. A
// transaction with a recurrence period also seeds or refreshes the matching
// recurring template.
func (s *Store) AddTransaction(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	p := s.ActiveProfile()
	tx.CreatedAt = p.nextCreatedAt()
	p.Transactions = append(p.Transactions, tx)
	if tx.Recurring != None {
		p.upsertTemplate(tx)
	}
	return nil
}

// RemoveTransaction deletes the transaction with the given id from the
// active profile. Deletion is idempotent: an absent id leaves the profile
// unchanged and reports whether an entry was actually removed.
func (s *Store) RemoveTransaction(id string) bool {
	p := s.ActiveProfile()
	for i, tx := range p.Transactions {
		if tx.ID == id {
			p.Transactions = append(p.Transactions[:i], p.Transactions[i+1:]...)
			return true
		}
	}
	return false
}

// CategoryByName resolves a category reference. It returns nil for a
// dangling reference; the display layer renders those as unknown.
func (s *Store) CategoryByName(name string) *Category {
	for i := range s.Categories {
		if s.Categories[i].Name == name {
			return &s.Categories[i]
		}
	}
	return nil
}

// AddOrUpdateCategory validates cat and inserts it, or updates the category
// carrying the same id or name. Names stay unique within the store.
func (s *Store) AddOrUpdateCategory(cat Category) error {
	if err := cat.Validate(); err != nil {
		return err
	}
	cat.Name = strings.TrimSpace(cat.Name)
	for i := range s.Categories {
		if (cat.ID != "" && s.Categories[i].ID == cat.ID) || s.Categories[i].Name == cat.Name {
			cat.ID = s.Categories[i].ID
			s.Categories[i] = cat
			return nil
		}
	}
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	s.Categories = append(s.Categories, cat)
	return nil
}

// RemoveCategory deletes the category with the given id. Transactions
// referencing it are deliberately left untouched.
func (s *Store) RemoveCategory(id string) bool {
	for i, cat := range s.Categories {
		if cat.ID == id {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return true
		}
	}
	return false
}

// AddOrUpdateGoal validates g and inserts it, or updates the goal carrying
// the same id or name.
func (s *Store) AddOrUpdateGoal(g Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	g.Name = strings.TrimSpace(g.Name)
	for i := range s.Goals {
		if (g.ID != "" && s.Goals[i].ID == g.ID) || s.Goals[i].Name == g.Name {
			g.ID = s.Goals[i].ID
			s.Goals[i] = g
			return nil
		}
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	s.Goals = append(s.Goals, g)
	return nil
}

// AdjustGoal moves a goal's saved amount by a signed delta, clamping the
// result to zero from below.
func (s *Store) AdjustGoal(id string, delta decimal.Decimal) error {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			saved := s.Goals[i].Saved.Add(delta)
			if saved.IsNegative() {
				saved = decimal.Zero
			}
			s.Goals[i].Saved = saved
			return nil
		}
	}
	return errValidation("unknown goal %q", id)
}

// RemoveGoal deletes the goal with the given id.
func (s *Store) RemoveGoal(id string) bool {
	for i, g := range s.Goals {
		if g.ID == id {
			s.Goals = append(s.Goals[:i], s.Goals[i+1:]...)
			return true
		}
	}
	return false
}
