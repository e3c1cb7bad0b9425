package heuristics

import (
	"mime"
	"path/filepath"
	"strings"
)

var dangerousExtensions = map[string]struct{}{
	".html": {},
	".htm":  {},
	".xlsb": {},
	".js":   {},
	".scr":  {},
	".exe":  {},
	".bat":  {},
	".vbs":  {},
	".cmd":  {},
	".jar":  {},
	".ps1":  {},
}

// expectedMIME maps a bare lowercase extension to the content type it should be sent with
var expectedMIME = map[string]string{
	// Documents
	"pdf": "application/pdf",
	"txt": "text/plain",
	"rtf": "application/rtf",

	// Word
	"doc":  "application/msword",
	"dot":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"docm": "application/vnd.ms-word.document.macroEnabled.12",

	// Excel
	"xls":  "application/vnd.ms-excel",
	"xlt":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xlsm": "application/vnd.ms-excel.sheet.macroEnabled.12",
	"xlsb": "application/vnd.ms-excel.sheet.binary.macroEnabled.12",

	// PowerPoint
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"pptm": "application/vnd.ms-powerpoint.presentation.macroEnabled.12",

	// OpenDocument
	"odt": "application/vnd.oasis.opendocument.text",
	"ods": "application/vnd.oasis.opendocument.spreadsheet",
	"odp": "application/vnd.oasis.opendocument.presentation",

	// Images
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"svg":  "image/svg+xml",
	"webp": "image/webp",

	// Audio
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"ogg":  "audio/ogg",
	"flac": "audio/flac",
	"aac":  "audio/aac",

	// Video
	"mp4":  "video/mp4",
	"mov":  "video/quicktime",
	"wmv":  "video/x-ms-wmv",
	"avi":  "video/x-msvideo",
	"mkv":  "video/x-matroska",
	"webm": "video/webm",

	// Web
	"html": "text/html",
	"htm":  "text/html",
	"xml":  "application/xml",
	"json": "application/json",
	"js":   "application/javascript",
	"css":  "text/css",

	// Archives
	"zip": "application/zip",
	"rar": "application/x-rar-compressed",
	"7z":  "application/x-7z-compressed",
	"gz":  "application/gzip",
	"tar": "application/x-tar",
	"bz2": "application/x-bzip2",

	// Executables and scripts
	"exe": "application/x-msdownload",
	"dll": "application/x-msdownload",
	"msi": "application/x-msi",
	"bat": "application/x-msdos-program",
	"cmd": "application/cmd",
	"ps1": "text/plain",
	"vbs": "text/vbscript",
	"jar": "application/java-archive",
	"sh":  "text/plain",
	"py":  "text/x-python",

	// Email and calendar
	"eml": "message/rfc822",
	"ics": "text/calendar",
}

// FileExtension returns the lowercase extension of filename including the
// leading dot. Dot-files such as ".bashrc" have no extension.
func FileExtension(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.ToLower(ext)
}

// HasDangerousExtension reports whether ext (with leading dot) is an executable or script type
func HasDangerousExtension(ext string) bool {
	_, ok := dangerousExtensions[strings.ToLower(ext)]
	return ok
}

// HasMismatchedMIME reports whether the declared content type differs from
// the one expected for ext. Extensions missing from the table never mismatch.
func HasMismatchedMIME(ext, declared string) bool {
	want, ok := expectedMIME[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		return false
	}
	return !strings.EqualFold(mediaType(declared), want)
}

// mediaType drops any parameters from a Content-Type value
func mediaType(contentType string) string {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		return mt
	}
	return strings.TrimSpace(contentType)
}
