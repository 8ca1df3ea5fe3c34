package template

import (
	"sort"

	"github.com/google/uuid"
)

// ApplicationTemplate is the versioned questionnaire definition an
// application is answered against. Immutable once parsed except via
// explicit container replacement.
type ApplicationTemplate struct {
	DatabaseID  *int64                 `json:"databaseId,omitempty"`
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Version     string                 `json:"version"`
	Components  []ApplicationComponent `json:"components"`
}

// Clone deep-copies the template tree.
func (t *ApplicationTemplate) Clone() *ApplicationTemplate {
	out := &ApplicationTemplate{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Version:     t.Version,
	}
	if t.DatabaseID != nil {
		id := *t.DatabaseID
		out.DatabaseID = &id
	}
	out.Components = cloneComponents(t.Components)
	return out
}

// NewComponentID mints a fresh componentId for authoring-time use. Ids are
// never regenerated after assignment.
func NewComponentID() string {
	return uuid.NewString()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
