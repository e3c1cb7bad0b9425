package heuristics

import "testing"

func TestHasMismatchedMIME(t *testing.T) {
	tests := []struct {
		ext      string
		declared string
		want     bool
	}{
		{"pdf", "application/pdf", false},
		{"pdf", "text/plain", true},
		{"foobar", "application/octet-stream", false},
		{".pdf", "application/pdf", false},
		{".EXE", "application/pdf", true},
		{".txt", "text/plain; charset=utf-8", false},
		{".exe", "APPLICATION/X-MSDOWNLOAD", false},
	}

	for _, tt := range tests {
		if got := HasMismatchedMIME(tt.ext, tt.declared); got != tt.want {
			t.Errorf("HasMismatchedMIME(%q, %q) = %v, want %v", tt.ext, tt.declared, got, tt.want)
		}
	}
}

func TestHasDangerousExtension(t *testing.T) {
	for _, ext := range []string{".exe", ".JS", ".ps1", ".htm"} {
		if !HasDangerousExtension(ext) {
			t.Errorf("expected %s to be dangerous", ext)
		}
	}
	for _, ext := range []string{".pdf", "", "exe"} {
		if HasDangerousExtension(ext) {
			t.Errorf("expected %q not to be dangerous", ext)
		}
	}
}

func TestFileExtension(t *testing.T) {
	tests := map[string]string{
		"invoice.PDF":        ".pdf",
		"archive.tar.gz":     ".gz",
		".bashrc":            "",
		"README":             "",
		`C:\Users\a\run.exe`: ".exe",
	}

	for name, want := range tests {
		if got := FileExtension(name); got != want {
			t.Errorf("FileExtension(%q) = %q, want %q", name, got, want)
		}
	}
}
