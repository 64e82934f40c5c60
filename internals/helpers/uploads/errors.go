package uploads

import "errors"

var (
	ErrNotImage     = errors.New("only image files are allowed")
	ErrFileTooLarge = errors.New("file size too large, maximum 5MB allowed")
)

// UploadError menandai file upload yang ditolak (tipe atau ukuran).
// Selalu berujung 400 dan tidak pernah meninggalkan file di disk.
type UploadError struct {
	Field string
	Err   error
}

func (e *UploadError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error()
}

func (e *UploadError) Unwrap() error { return e.Err }
