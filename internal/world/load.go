package world

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Load reads and merges every snapshot file under dir matching the given
// glob patterns (doublestar syntax, e.g. "**/*.json"). Later files append
// to the collections of earlier ones; CurrentTick takes the maximum seen.
// The merged snapshot is validated before it is returned, so a snapshot
// obtained from Load is safe to hand to the wiki index builder.
func Load(dir string, patterns []string) (*Snapshot, error) {
	if len(patterns) == 0 {
		patterns = []string{"**/*.json"}
	}

	fsys := os.DirFS(dir)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("bad snapshot pattern %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no snapshot files in %s matching %v", dir, patterns)
	}

	merged := &Snapshot{}
	for _, p := range paths {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(p)))
		if err != nil {
			return nil, fmt.Errorf("reading snapshot %s: %w", p, err)
		}
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing snapshot %s: %w", p, err)
		}
		merged.Entities = append(merged.Entities, snap.Entities...)
		merged.Relationships = append(merged.Relationships, snap.Relationships...)
		merged.Events = append(merged.Events, snap.Events...)
		merged.Regions = append(merged.Regions, snap.Regions...)
		if snap.CurrentTick > merged.CurrentTick {
			merged.CurrentTick = snap.CurrentTick
		}
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate checks the numeric fields the wiki core assumes are well-typed.
// It must pass before any index is built; the core itself performs no
// redundant validation.
func (s *Snapshot) Validate() error {
	for _, e := range s.Entities {
		if e.ID == "" {
			return fmt.Errorf("entity %q has no id", e.Name)
		}
		if e.Prominence < 0 || e.Prominence > 5 {
			return fmt.Errorf("entity %s: prominence %d outside [0,5]", e.ID, e.Prominence)
		}
	}
	for _, ev := range s.Events {
		if ev.Significance < 0 || ev.Significance > 1 {
			return fmt.Errorf("event %s: significance %g outside [0,1]", ev.ID, ev.Significance)
		}
	}
	return nil
}
