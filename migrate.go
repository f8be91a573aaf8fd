package cashie

// CurrentSchemaVersion is the version stamped on every document this engine
// writes.
const CurrentSchemaVersion = 2

// migration is a single-step transform across one version boundary,
// expressed purely in terms of the previous version's shape. The output of
// step k is the input of step k+1.
type migration func(doc map[string]any) map[string]any

var migrations = map[int]migration{
	1: migrateV1,
}

// rawSchemaVersion reads the version of a raw document. An absent or
// unreadable version means version 1, the shape the application shipped
// with.
func rawSchemaVersion(doc map[string]any) int {
	switch v := doc["schemaVersion"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 1
	}
}

// Migrate upgrades any previously valid raw document to the current schema
// version. It is total for every version the engine has ever produced: a
// recognized older shape is carried through the chain of single-step
// transforms, a current document only gets its version stamped, and an
// unknown newer version passes through untouched (deliberate leniency, see
// DESIGN.md).
func Migrate(doc map[string]any) map[string]any {
	v := rawSchemaVersion(doc)
	for v < CurrentSchemaVersion {
		step, ok := migrations[v]
		if !ok {
			break
		}
		doc = step(doc)
		v++
	}
	if v < CurrentSchemaVersion {
		v = CurrentSchemaVersion
	}
	doc["schemaVersion"] = v
	return doc
}

// migrateV1 wraps the flat v1 {transactions, recurringTemplates} pair into
// the v2 profile map under the Default profile.
func migrateV1(doc map[string]any) map[string]any {
	txs, _ := doc["transactions"].([]any)
	if txs == nil {
		txs = []any{}
	}
	recurring, _ := doc["recurringTemplates"].([]any)
	if recurring == nil {
		recurring = []any{}
	}
	out := map[string]any{
		"profiles": map[string]any{
			DefaultProfileName: map[string]any{
				"transactions":       txs,
				"recurringTemplates": recurring,
			},
		},
		"activeProfileName": DefaultProfileName,
	}
	// Top-level collections that already existed in v1 carry over unchanged.
	for _, key := range []string{"categories", "goals", "currency"} {
		if v, ok := doc[key]; ok {
			out[key] = v
		}
	}
	return out
}
