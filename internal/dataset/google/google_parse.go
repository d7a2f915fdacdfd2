package google

import (
	"fmt"
	"strings"

	"smartspend/internal/core"
)

// parseRows converts raw sheet rows into labeled examples. Rows that are
// too short, empty, or fail validation are skipped rather than failing
// the whole load; spreadsheets accumulate stray rows.
func parseRows(rows [][]interface{}) (examples []core.LabeledExample, skipped int) {
	for i, row := range rows {
		if len(row) < 2 {
			skipped++
			continue
		}
		description := strings.TrimSpace(cellString(row[0]))
		category := strings.TrimSpace(cellString(row[1]))

		if i == 0 && strings.EqualFold(description, "description") && strings.EqualFold(category, "category") {
			continue
		}

		e := core.LabeledExample{Description: description, Category: category}
		if err := e.Validate(); err != nil {
			skipped++
			continue
		}
		examples = append(examples, e)
	}
	return examples, skipped
}

func cellString(cell interface{}) string {
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", cell)
}
