package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"projectpager/internal/domain"
)

// file is the on-disk shape of a catalog.
type file struct {
	Projects []projectEntry `toml:"projects"`
}

type projectEntry struct {
	Slug     string `toml:"slug"`
	Name     string `toml:"name"`
	Blurb    string `toml:"blurb"`
	Creator  string `toml:"creator"`
	Category string `toml:"category"`
}

// Store holds the ordered list of projects being paged through.
type Store struct {
	projects []domain.Project
}

// Load reads a TOML catalog file into a Store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Projects) == 0 {
		return nil, fmt.Errorf("catalog %s contains no projects", path)
	}

	projects := make([]domain.Project, 0, len(f.Projects))
	for _, e := range f.Projects {
		if e.Slug == "" {
			return nil, fmt.Errorf("catalog %s: project %q has no slug", path, e.Name)
		}
		projects = append(projects, domain.Project{
			Slug:     e.Slug,
			Name:     e.Name,
			Blurb:    e.Blurb,
			Creator:  e.Creator,
			Category: e.Category,
		})
	}

	return &Store{projects: projects}, nil
}

// Len returns the number of projects.
func (s *Store) Len() int {
	return len(s.projects)
}

// At returns the project at index i and whether it exists.
func (s *Store) At(i int) (domain.Project, bool) {
	if i < 0 || i >= len(s.projects) {
		return domain.Project{}, false
	}
	return s.projects[i], true
}

// IndexOf returns the index of the project with the given slug, or -1.
func (s *Store) IndexOf(slug string) int {
	for i, p := range s.projects {
		if p.Slug == slug {
			return i
		}
	}
	return -1
}

// Projects returns a copy of the ordered project list.
func (s *Store) Projects() []domain.Project {
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}
