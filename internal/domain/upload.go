package domain

// UploadedFile is a file staged on local disk by the upload collaborator.
// It is read once by the gateway and removed when the request is done with it.
type UploadedFile struct {
	OriginalName string
	TempPath     string
	Size         int64
	ContentType  string
}
