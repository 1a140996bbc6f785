package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"persona-engine/internal/domain"
)

//go:embed questions_quick_v1.json
var quickV1 []byte

//go:embed schema.json
var schemaJSON []byte

var (
	ErrSchemaViolation = errors.New("catalog: bank failed schema validation")
	ErrInconsistent    = errors.New("catalog: bank is inconsistent")
)

// Catalog is an immutable, versioned question bank. It is loaded once by
// the caller and passed explicitly into the engine; there is no global
// loaded-catalog state.
type Catalog struct {
	Version          string
	MinItemsPerTrait int

	questions   []domain.Question // ascending id order
	byID        map[string]domain.Question
	traitCounts map[domain.Trait]int
	facetTrait  map[string]domain.Trait
	facets      []string // ascending order
}

type catalogFile struct {
	Version          string            `json:"version"`
	MinItemsPerTrait int               `json:"min_items_per_trait"`
	Questions        []domain.Question `json:"questions"`
}

// LoadDefault returns the embedded quick_v1 bank.
func LoadDefault() (*Catalog, error) {
	return Parse(quickV1)
}

// LoadFile loads an alternate bank from disk.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse validates raw JSON against the bank schema and builds a Catalog.
// Any inconsistency here is a configuration error and aborts loading;
// nothing is handled per scoring call.
func Parse(raw []byte) (*Catalog, error) {
	res, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if !res.Valid() {
		details := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(details, "; "))
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("catalog: decode bank: %w", err)
	}
	return New(file.Version, file.MinItemsPerTrait, file.Questions)
}

// New builds a Catalog from already-decoded questions, running the full
// consistency checks. Intended for callers with synthetic banks (tests,
// tooling); Parse goes through here too.
func New(version string, minItems int, questions []domain.Question) (*Catalog, error) {
	if strings.TrimSpace(version) == "" {
		return nil, fmt.Errorf("%w: empty version", ErrInconsistent)
	}
	if minItems < 1 {
		return nil, fmt.Errorf("%w: min_items_per_trait must be >= 1", ErrInconsistent)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInconsistent)
	}

	c := &Catalog{
		Version:          version,
		MinItemsPerTrait: minItems,
		questions:        make([]domain.Question, len(questions)),
		byID:             make(map[string]domain.Question, len(questions)),
		traitCounts:      make(map[domain.Trait]int, len(domain.Traits)),
		facetTrait:       make(map[string]domain.Trait),
	}
	copy(c.questions, questions)
	sort.Slice(c.questions, func(i, j int) bool { return c.questions[i].ID < c.questions[j].ID })

	for _, q := range c.questions {
		if strings.TrimSpace(q.ID) == "" {
			return nil, fmt.Errorf("%w: question with empty id", ErrInconsistent)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %q", ErrInconsistent, q.ID)
		}
		if !q.Trait.Valid() {
			return nil, fmt.Errorf("%w: question %q references undefined trait %q", ErrInconsistent, q.ID, q.Trait)
		}
		if strings.TrimSpace(q.Facet) == "" {
			return nil, fmt.Errorf("%w: question %q has no facet", ErrInconsistent, q.ID)
		}
		if q.Weight <= 0 {
			return nil, fmt.Errorf("%w: question %q has non-positive weight", ErrInconsistent, q.ID)
		}
		if owner, seen := c.facetTrait[q.Facet]; seen && owner != q.Trait {
			return nil, fmt.Errorf("%w: facet %q spans traits %q and %q", ErrInconsistent, q.Facet, owner, q.Trait)
		}
		c.byID[q.ID] = q
		c.traitCounts[q.Trait]++
		c.facetTrait[q.Facet] = q.Trait
	}

	for _, t := range domain.Traits {
		if c.traitCounts[t] < minItems {
			return nil, fmt.Errorf("%w: trait %q has %d items, below min_items_per_trait %d",
				ErrInconsistent, t, c.traitCounts[t], minItems)
		}
	}

	c.facets = make([]string, 0, len(c.facetTrait))
	for f := range c.facetTrait {
		c.facets = append(c.facets, f)
	}
	sort.Strings(c.facets)

	return c, nil
}

// Questions returns the bank in ascending id order. The slice is a copy;
// the bank itself is never mutated.
func (c *Catalog) Questions() []domain.Question {
	out := make([]domain.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Question looks up one item by id.
func (c *Catalog) Question(id string) (domain.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Len is the total number of items in the bank.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// TraitCount is the number of items measuring one trait.
func (c *Catalog) TraitCount(t domain.Trait) int {
	return c.traitCounts[t]
}

// Facets lists every facet in the bank in ascending order.
func (c *Catalog) Facets() []string {
	out := make([]string, len(c.facets))
	copy(out, c.facets)
	return out
}

// FacetTrait returns the trait a facet belongs to.
func (c *Catalog) FacetTrait(facet string) (domain.Trait, bool) {
	t, ok := c.facetTrait[facet]
	return t, ok
}
