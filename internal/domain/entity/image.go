package entity

// Image is an opaque bitmap handed over by the engine: favicons, snapshots.
// The pixel format is whatever the engine produced; this core only moves the
// payload around and checks for emptiness.
type Image struct {
	Width  int
	Height int
	Data   []byte
}

// IsEmpty reports whether the image is a placeholder with no pixel data.
func (img Image) IsEmpty() bool {
	return len(img.Data) == 0 || img.Width <= 0 || img.Height <= 0
}
