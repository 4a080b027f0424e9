package formatter

import (
	"strconv"

	"github.com/alexanderramin/pathway/internal/catalog"
)

// FormatMajors renders the loaded major configurations.
func FormatMajors(set *catalog.Set) string {
	headers := []string{"MAJOR", "NAME", "COURSES", "BUNDLES", "AREAS", "TOP N"}
	var rows [][]string
	for _, code := range set.Majors() {
		cfg, err := set.Get(code)
		if err != nil {
			continue
		}
		name := cfg.Name
		if name == "" {
			name = Dim("--")
		}
		rows = append(rows, []string{
			Bold(cfg.Major),
			name,
			strconv.Itoa(len(cfg.Courses)),
			strconv.Itoa(len(cfg.Bundles)),
			strconv.Itoa(len(cfg.Areas())),
			strconv.Itoa(cfg.TopN),
		})
	}
	return RenderTableAligned(headers, rows, []int{2, 3, 4, 5})
}
