package profile

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mohitbhoir789/resume-builder/internal/embedding"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

//go:embed schema.json
var profileSchema string

// Loader looks up read-only profiles by name.
type Loader interface {
	Load(ctx context.Context, name string) (*types.Profile, error)
	List(ctx context.Context) ([]string, error)
}

// CacheLoader loads pre-ingested profile artifacts from a local directory.
// Each profile is stored as <name>_profile.json and validated against the
// profile JSON schema before use.
type CacheLoader struct {
	dir    string
	schema *gojsonschema.Schema
}

// NewCacheLoader creates a loader over the given cache directory.
func NewCacheLoader(dir string) (*CacheLoader, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(profileSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile profile schema: %w", err)
	}
	return &CacheLoader{dir: dir, schema: schema}, nil
}

// Load reads, validates, and normalizes the named profile. Missing
// profiles return a NotFoundError; artifacts failing schema validation or
// with inconsistent embedding dimensions return an InvalidProfileError.
func (l *CacheLoader) Load(_ context.Context, name string) (*types.Profile, error) {
	path := filepath.Join(l.dir, name+"_profile.json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Name: name}
		}
		return nil, &InvalidProfileError{Name: name, Message: "failed to read profile artifact", Cause: err}
	}

	validation, err := l.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &InvalidProfileError{Name: name, Message: "failed to validate profile artifact", Cause: err}
	}
	if !validation.Valid() {
		details := make([]string, 0, len(validation.Errors()))
		for _, e := range validation.Errors() {
			details = append(details, e.String())
		}
		return nil, &InvalidProfileError{Name: name, Message: strings.Join(details, "; ")}
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &InvalidProfileError{Name: name, Message: "failed to parse profile artifact", Cause: err}
	}

	if err := normalize(&p, name); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns the names of all cached profiles, sorted.
func (l *CacheLoader) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read profile cache directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), "_profile.json"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// normalize fills derived chunk fields and checks the shared embedding
// dimension invariant.
func normalize(p *types.Profile, name string) error {
	dim := p.Dimension()
	for si := range p.Sections {
		section := &p.Sections[si]
		for ci := range section.Chunks {
			chunk := &section.Chunks[ci]
			if chunk.Section == "" {
				chunk.Section = section.Name
			}
			if chunk.ID == "" {
				chunk.ID = types.NewChunkID(chunk.Section, chunk.Text)
			}
			if chunk.Seniority == "" {
				chunk.Seniority = types.SeniorityUnknown
			}
			if chunk.Dimension() != dim {
				return &InvalidProfileError{
					Name:    name,
					Message: "inconsistent chunk embedding dimensions",
					Cause:   &embedding.DimensionMismatchError{Want: dim, Got: chunk.Dimension()},
				}
			}
		}
	}
	return nil
}
