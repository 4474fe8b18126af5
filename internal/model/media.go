package model

// MediaType identifies one conversion form in the catalog. Each type maps to
// its own service endpoint and set of output formats.
type MediaType string

const (
	MediaImage       MediaType = "image"
	MediaVideo       MediaType = "video"
	MediaAudio       MediaType = "audio"
	MediaDocument    MediaType = "document"
	MediaSpreadsheet MediaType = "spreadsheet"
	MediaSubtitle    MediaType = "subtitle"
	MediaArchive     MediaType = "archive"
	MediaData        MediaType = "data"
	MediaEbook       MediaType = "ebook"
	MediaBatch       MediaType = "batch"
)

// String returns the string representation of MediaType
func (mt MediaType) String() string {
	return string(mt)
}

// Endpoint returns the server-relative conversion endpoint for this type
func (mt MediaType) Endpoint() string {
	return "/api/convert/" + string(mt)
}

// DisplayName returns a human-friendly label for the form tab
func (mt MediaType) DisplayName() string {
	switch mt {
	case MediaImage:
		return "Image"
	case MediaVideo:
		return "Video"
	case MediaAudio:
		return "Audio"
	case MediaDocument:
		return "Document"
	case MediaSpreadsheet:
		return "Spreadsheet"
	case MediaSubtitle:
		return "Subtitle"
	case MediaArchive:
		return "Archive"
	case MediaData:
		return "Data"
	case MediaEbook:
		return "Ebook"
	case MediaBatch:
		return "Batch"
	default:
		return string(mt)
	}
}

// OutputFormats returns the output format identifiers the service supports
// for this media type. The first entry is the form default.
func (mt MediaType) OutputFormats() []string {
	switch mt {
	case MediaImage:
		return []string{"png", "jpg", "webp", "gif", "bmp", "tiff", "ico"}
	case MediaVideo:
		return []string{"mp4", "webm", "mkv", "avi", "mov", "gif"}
	case MediaAudio:
		return []string{"mp3", "wav", "aac", "flac", "ogg", "m4a"}
	case MediaDocument:
		return []string{"pdf", "docx", "odt", "txt", "html", "md"}
	case MediaSpreadsheet:
		return []string{"xlsx", "csv", "ods", "pdf"}
	case MediaSubtitle:
		return []string{"srt", "vtt", "ass", "sub"}
	case MediaArchive:
		return []string{"zip", "tar", "tar.gz", "7z"}
	case MediaData:
		return []string{"json", "yaml", "csv", "xml", "toml"}
	case MediaEbook:
		return []string{"epub", "mobi", "azw3", "pdf"}
	case MediaBatch:
		return []string{"zip"}
	default:
		return nil
	}
}

// AllMediaTypes returns the form catalog in display order
func AllMediaTypes() []MediaType {
	return []MediaType{
		MediaImage,
		MediaVideo,
		MediaAudio,
		MediaDocument,
		MediaSpreadsheet,
		MediaSubtitle,
		MediaArchive,
		MediaData,
		MediaEbook,
		MediaBatch,
	}
}
