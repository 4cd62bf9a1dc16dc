package model

// Entry is one file or directory found in an extracted package
type Entry struct {
	Path  string   // Slash separated path relative to the extraction root
	Name  string   // Base name
	Depth int      // Nesting depth, 0 for top level entries
	IsDir bool     // True for directories
	Size  ByteSize // File size, 0 for directories
}

// Listing is the package contents in depth-first traversal order
type Listing []Entry

// Files returns the number of non-directory entries
func (l Listing) Files() int {
	n := 0
	for _, e := range l {
		if !e.IsDir {
			n++
		}
	}
	return n
}

// TotalSize returns the sum of all file sizes
func (l Listing) TotalSize() ByteSize {
	var total ByteSize
	for _, e := range l {
		total += e.Size
	}
	return total
}

// Manifest holds the fields picked out of imsmanifest.xml. A nil pointer
// means the field was not present in the document.
type Manifest struct {
	Identifier     *string  // identifier attribute of the root <manifest>
	Version        *string  // version attribute of the root <manifest>
	Title          *string  // text of the first <title>
	OrganizationID *string  // identifier attribute of the first <organization>
	Resources      []string // href of every <resource>, in document order

	Organizations int // number of <organization> elements
	ResourceCount int // number of <resource> elements, with or without href
}

// Report is the outcome of inspecting one package
type Report struct {
	Source        string
	Extracted     *ExtractResult
	Listing       Listing
	ManifestPath  string    // Relative path, empty when no manifest was found
	Manifest      *Manifest // nil when no manifest or it could not be read
	ManifestError string    // Set when the manifest file exists but reading it failed
	HTMLFiles     []string  // Relative paths of launch files
}

// HasManifest reports whether a manifest file was located
func (r *Report) HasManifest() bool {
	return r.ManifestPath != ""
}
