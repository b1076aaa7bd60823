package images

import "time"

type Image struct {
	ID          string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// Size en bytes.
func (i Image) Size() int64 {
	return int64(len(i.Data))
}
