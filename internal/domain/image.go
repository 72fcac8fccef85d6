package domain

// DefaultImageGUID is used when an image is saved without a guid field.
const DefaultImageGUID = "some-guid"

// ImageLookupResult is the image service's answer to a lookup by GUID.
// A missing image is Success=false, not an error.
type ImageLookupResult struct {
	Success bool
	Image   []byte
}

// ImageSaveRequest is sent to the image service when a client uploads a file.
type ImageSaveRequest struct {
	GUID  string
	Name  string
	Image []byte
}

// ImageSaveResult is the image service's answer to a save. It is returned to
// HTTP callers as-is.
type ImageSaveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewImageSaveRequest builds a save request, substituting fallbackGUID when
// guid is empty.
func NewImageSaveRequest(guid, fallbackGUID, name string, image []byte) ImageSaveRequest {
	if guid == "" {
		guid = fallbackGUID
	}
	return ImageSaveRequest{GUID: guid, Name: name, Image: image}
}
