package evaluate

import "errors"

var (
	// ErrDatasetNotFound is returned when the dataset file does not exist.
	ErrDatasetNotFound = errors.New("dataset file not found")

	// ErrInvalidDataset is returned when the dataset is not valid JSON or
	// does not have the expected shape.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrEmptyDataset is returned when there is nothing to evaluate.
	ErrEmptyDataset = errors.New("dataset contains no emails")
)

var errNoVerdict = errors.New("classifier returned no verdict")
