package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSeed reads a fixtures file mapping collection names to document lists
// and puts every document into s. JSON files are accepted as YAML.
func LoadSeed(path string, s *MemoryStore) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("load seed %s: %w", path, err)
	}

	var fixtures map[string][]map[string]any
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return 0, fmt.Errorf("load seed %s: %w", path, err)
	}

	count := 0
	for collection, docs := range fixtures {
		for _, doc := range docs {
			if err := s.Put(collection, Document(doc)); err != nil {
				return count, fmt.Errorf("load seed %s: %w", path, err)
			}
			count++
		}
	}
	return count, nil
}
