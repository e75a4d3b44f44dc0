package domain

import "errors"

var (
	ErrEmptyDataset        = errors.New("dataset contains no rows")
	ErrMissingHeader       = errors.New("file contains no header row")
	ErrTooManyRows         = errors.New("dataset exceeds maximum allowed rows")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrRunNotFound         = errors.New("validation run not found")
)
