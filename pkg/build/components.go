package build

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/store"
)

// CollectComponents reads component schema files from root/components, one
// JSON file per component. A file that cannot be decoded or lacks a name is
// skipped with a warning.
func CollectComponents(root string) ([]store.Component, []string) {
	compsRoot := filepath.Join(root, "components")
	entries, err := os.ReadDir(compsRoot)
	if err != nil {
		return nil, nil
	}

	var (
		comps []store.Component
		warns []string
	)

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		path := filepath.Join(compsRoot, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			warns = append(warns, fmt.Sprintf("%s: unreadable component schema: %v", entry.Name(), err))
			continue
		}

		var c store.Component
		if err := json.Unmarshal(data, &c); err != nil {
			warns = append(warns, fmt.Sprintf("%s: malformed component schema: %v", entry.Name(), err))
			continue
		}
		if c.Name == "" {
			warns = append(warns, fmt.Sprintf("%s: component schema has no name", entry.Name()))
			continue
		}
		comps = append(comps, c)
	}

	sort.Slice(comps, func(i, j int) bool { return comps[i].Name < comps[j].Name })
	return comps, warns
}

// CollectUtilities reads the CSS utility class list from root/utilities.json.
// A missing file contributes zero utilities; a malformed one is a warning.
func CollectUtilities(root string) ([]store.Utility, []string) {
	path := filepath.Join(root, "utilities.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, []string{fmt.Sprintf("utilities.json: unreadable: %v", err)}
	}

	var utils []store.Utility
	if err := json.Unmarshal(data, &utils); err != nil {
		return nil, []string{fmt.Sprintf("utilities.json: malformed: %v", err)}
	}
	return utils, nil
}
