package convert

import (
	"path/filepath"
	"strings"
)

// Summary counts the outcome of a batch.
type Summary struct {
	Converted int
	Unchanged int
	Failed    int
	// Errors maps each failed input path to its error.
	Errors map[string]error
}

// OK reports whether every file converted.
func (s Summary) OK() bool {
	return s.Failed == 0
}

// Run converts every path in order. A failing file is logged and counted;
// the remaining files are still processed.
func (c *Converter) Run(paths []string) Summary {
	sum := Summary{Errors: make(map[string]error)}

	for _, path := range paths {
		banner := strings.Repeat("=", 25)
		c.logger.Printf("\n%s Processing: %s %s", banner, filepath.Base(path), banner)

		res, err := c.ConvertFile(path)
		if err != nil {
			c.logger.Printf("ERROR: %v", err)
			sum.Failed++
			sum.Errors[path] = err

			continue
		}

		if res.Unchanged {
			sum.Unchanged++
		} else {
			sum.Converted++
		}
	}

	c.logger.Printf("\n--- All files processed: %d converted, %d unchanged, %d failed. ---",
		sum.Converted, sum.Unchanged, sum.Failed)

	return sum
}
