// ABOUTME: ClearIndex entry point wrapping index.Clear with a status result
// ABOUTME: Mirrors the shape adapters report back to callers
package core

import (
	"fmt"

	"docqa/internal/index"
	"docqa/internal/models"
)

// ClearIndex removes every indexed document and reports the outcome.
func ClearIndex(ix *index.Index) *models.ClearResult {
	if err := ix.Clear(); err != nil {
		return &models.ClearResult{
			Status:  500,
			Message: fmt.Sprintf("Failed to clear indexed documents: %v", err),
		}
	}
	return &models.ClearResult{
		Status:  200,
		Message: "All indexed documents cleared successfully",
	}
}
