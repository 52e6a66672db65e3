package evaluate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nao1215/spamscan/internal/model"
)

type dataset struct {
	Emails []model.Email `json:"emails"`
}

// Load reads a dataset file.
func Load(path string) ([]model.Email, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes a dataset document.
// Ids may be any JSON value and labels other than "spam" count as normal.
func Parse(data []byte) ([]model.Email, error) {
	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	if ds.Emails == nil {
		return nil, fmt.Errorf("%w: missing \"emails\" array", ErrInvalidDataset)
	}
	return ds.Emails, nil
}
