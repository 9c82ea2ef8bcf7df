package screenshot

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shotwiz/pkg/models"
)

// SequenceName is the base name given to the i-th (0-based) file of a batch.
func SequenceName(prefix string, i int) string {
	return fmt.Sprintf("%s_%02d", prefix, i+1)
}

// PlaceBatch places files in order as <prefix>_01, <prefix>_02, ... It stops
// at the first failure and returns the destinations already written; those
// copies are left in place.
func (o *Organizer) PlaceBatch(files []models.ScreenshotFile, prefix, category, extension string) ([]string, error) {
	if err := checkElement("prefix", prefix); err != nil {
		return nil, err
	}
	batchID := uuid.NewString()
	o.log.Debug("starting batch",
		zap.String("batch_id", batchID),
		zap.String("prefix", prefix),
		zap.Int("files", len(files)),
	)

	placed := make([]string, 0, len(files))
	for i, f := range files {
		req := models.OrganizeRequest{
			BaseName:  SequenceName(prefix, i),
			Category:  category,
			Extension: extension,
		}
		dest, err := o.place(f.Path, req, batchID)
		if err != nil {
			return placed, fmt.Errorf("batch item %d of %d: %w", i+1, len(files), err)
		}
		placed = append(placed, dest)
	}
	return placed, nil
}
