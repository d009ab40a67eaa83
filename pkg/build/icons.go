package build

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/store"
)

var (
	// iconNameRe splits an icon file base name into base name + size,
	// e.g. "ArrowBottom24" -> ("ArrowBottom", 24).
	iconNameRe = regexp.MustCompile(`^(.*?)([0-9]+)$`)

	viewBoxRe  = regexp.MustCompile(`viewBox="([^"]+)"`)
	pathDataRe = regexp.MustCompile(`<path[^>]*?\bd="([^"]+)"`)
)

// CollectIcons gathers icon rows from the SVG files under root/icons. The
// icon type is the parent directory name; the size is the trailing digits of
// the file name. Files that don't follow the naming convention or carry no
// path data are skipped with a warning.
func CollectIcons(root string) ([]store.IconRow, []string) {
	iconsRoot := filepath.Join(root, "icons")
	if _, err := os.Stat(iconsRoot); err != nil {
		return nil, nil
	}

	var (
		icons []store.IconRow
		warns []string
	)

	_ = filepath.WalkDir(iconsRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(path), ".svg") {
			return nil
		}

		rel, err := filepath.Rel(iconsRoot, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		row, warn := parseIconFile(path, rel)
		if warn != "" {
			warns = append(warns, warn)
			return nil
		}
		icons = append(icons, row)
		return nil
	})

	return icons, warns
}

func parseIconFile(path, rel string) (store.IconRow, string) {
	base := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))

	m := iconNameRe.FindStringSubmatch(base)
	if m == nil || m[1] == "" {
		return store.IconRow{}, fmt.Sprintf("%s: icon file name carries no size suffix", rel)
	}
	size, err := strconv.Atoi(m[2])
	if err != nil {
		return store.IconRow{}, fmt.Sprintf("%s: invalid size suffix: %v", rel, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return store.IconRow{}, fmt.Sprintf("%s: unreadable icon file: %v", rel, err)
	}
	svg := string(data)

	var paths []string
	for _, pm := range pathDataRe.FindAllStringSubmatch(svg, -1) {
		paths = append(paths, pm[1])
	}
	if len(paths) == 0 {
		return store.IconRow{}, fmt.Sprintf("%s: icon carries no path data", rel)
	}

	viewBox := fmt.Sprintf("0 0 %d %d", size, size)
	if vm := viewBoxRe.FindStringSubmatch(svg); vm != nil {
		viewBox = vm[1]
	}

	return store.IconRow{
		Name:     base,
		BaseName: m[1],
		Type:     iconType(rel),
		Size:     size,
		ViewBox:  viewBox,
		Paths:    paths,
	}, ""
}

// iconType is the parent directory of the icon file, relative to icons/.
func iconType(rel string) string {
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." {
		return ""
	}
	return dir
}
