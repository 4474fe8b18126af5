package model

import "testing"

func TestConversionSession_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		session  ConversionSession
		expected string
	}{
		{
			name:     "selected file name",
			session:  ConversionSession{SelectedFile: &InputFile{Path: "/tmp/report.docx", Name: "report.docx"}},
			expected: "report.docx",
		},
		{
			name:     "no input",
			session:  ConversionSession{},
			expected: "—",
		},
		{
			name: "batch summary",
			session: ConversionSession{Batch: &Batch{Files: []InputFile{
				{Name: "a.png"},
				{Name: "b.png"},
				{Name: "c.png"},
			}}},
			expected: "a.png and 2 more",
		},
	}

	for _, test := range tests {
		result := test.session.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("%s: GetDisplayTitle() = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestConversionSession_OutputName(t *testing.T) {
	tests := []struct {
		name     string
		session  ConversionSession
		expected string
	}{
		{
			name:     "custom filename with format",
			session:  ConversionSession{CustomFilename: "invoice", OutputFormat: "pdf", DownloadURL: "/api/download/x.pdf"},
			expected: "invoice.pdf",
		},
		{
			name:     "derived from locator",
			session:  ConversionSession{DownloadURL: "/api/download/abc123.webp"},
			expected: "abc123.webp",
		},
		{
			name:     "locator with query string",
			session:  ConversionSession{DownloadURL: "/api/download/abc123.webp?token=1"},
			expected: "abc123.webp",
		},
		{
			name:     "no download url",
			session:  ConversionSession{},
			expected: "",
		},
	}

	for _, test := range tests {
		result := test.session.OutputName()
		if result != test.expected {
			t.Errorf("%s: OutputName() = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestConversionSession_HasInput(t *testing.T) {
	var session ConversionSession
	if session.HasInput() {
		t.Error("empty session should not have input")
	}

	session.SelectedFile = &InputFile{Path: "/tmp/a.png", Name: "a.png", Size: 10}
	if !session.HasInput() {
		t.Error("session with selected file should have input")
	}

	session.SelectedFile = nil
	session.Batch = NewBatch("b1")
	if session.HasInput() {
		t.Error("session with empty batch should not have input")
	}

	session.Batch.AddFile(InputFile{Path: "/tmp/a.png", Name: "a.png", Size: 10})
	if !session.HasInput() {
		t.Error("session with non-empty batch should have input")
	}
}

func TestBatch_AddRemoveFile(t *testing.T) {
	batch := NewBatch("b1")

	batch.AddFile(InputFile{Path: "/tmp/a.png", Name: "a.png", Size: 100})
	batch.AddFile(InputFile{Path: "/tmp/b.png", Name: "b.png", Size: 50})

	if len(batch.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(batch.Files))
	}
	if batch.TotalBytes != 150 {
		t.Errorf("expected 150 total bytes, got %d", batch.TotalBytes)
	}

	batch.RemoveFile("/tmp/a.png")

	if len(batch.Files) != 1 {
		t.Fatalf("expected 1 file after removal, got %d", len(batch.Files))
	}
	if batch.Files[0].Name != "b.png" {
		t.Errorf("expected remaining file b.png, got %s", batch.Files[0].Name)
	}
	if batch.TotalBytes != 50 {
		t.Errorf("expected 50 total bytes after removal, got %d", batch.TotalBytes)
	}
}

func TestProgressEvent_Valid(t *testing.T) {
	tests := []struct {
		name     string
		event    ProgressEvent
		expected bool
	}{
		{"well formed", ProgressEvent{SessionID: "s1", Status: RemoteStatusConverting, Progress: 40}, true},
		{"missing status", ProgressEvent{SessionID: "s1", Progress: 40}, false},
		{"progress below range", ProgressEvent{Status: RemoteStatusConverting, Progress: -1}, false},
		{"progress above range", ProgressEvent{Status: RemoteStatusConverting, Progress: 101}, false},
	}

	for _, test := range tests {
		if result := test.event.Valid(); result != test.expected {
			t.Errorf("%s: Valid() = %v, expected %v", test.name, result, test.expected)
		}
	}
}
