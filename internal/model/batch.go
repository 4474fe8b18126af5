package model

import (
	"fmt"
	"time"
)

// Batch groups several input files that are uploaded together in one
// conversion session. The session lifecycle is identical to a single-file
// session; the service returns one archive artifact.
type Batch struct {
	ID         string
	Files      []InputFile
	TotalBytes int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBatch creates an empty batch
func NewBatch(id string) *Batch {
	now := time.Now()
	return &Batch{
		ID:        id,
		Files:     make([]InputFile, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddFile appends a file to the batch
func (b *Batch) AddFile(file InputFile) {
	b.Files = append(b.Files, file)
	b.TotalBytes += file.Size
	b.UpdatedAt = time.Now()
}

// RemoveFile removes a file from the batch by path
func (b *Batch) RemoveFile(path string) {
	for i, f := range b.Files {
		if f.Path == path {
			b.TotalBytes -= f.Size
			b.Files = append(b.Files[:i], b.Files[i+1:]...)
			b.UpdatedAt = time.Now()
			break
		}
	}
}

// DisplayTitle returns a short summary for the batch form header
func (b *Batch) DisplayTitle() string {
	switch len(b.Files) {
	case 0:
		return "—"
	case 1:
		return b.Files[0].Name
	default:
		return fmt.Sprintf("%s and %d more", b.Files[0].Name, len(b.Files)-1)
	}
}
