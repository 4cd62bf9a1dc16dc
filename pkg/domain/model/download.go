package model

// ExtractResult represents the result of unpacking an archive into a directory
type ExtractResult struct {
	Dir   string   // Extraction target directory
	Files []string // Archive entry names written, in archive order
	Size  int64    // Total uncompressed size in bytes
}
