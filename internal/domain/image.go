package domain

import (
	"bytes"
	"io"
)

// Image is the raw body returned by the image endpoints (static maps,
// street view, place photos).
type Image struct {
	ContentType string
	Data        []byte
}

// ReadBody buffers the whole image.
func (i *Image) ReadBody(contentType string, r io.Reader) error {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return err
	}
	i.ContentType = contentType
	i.Data = buf.Bytes()
	return nil
}
