package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/model"
)

const (
	sectionRule = 50
	previewRule = 30
)

// Printer renders inspection progress and reports as human-readable text
type Printer struct {
	w io.Writer

	heading *color.Color
	success *color.Color
	failure *color.Color
	dir     *color.Color
	muted   *color.Color
}

// Option is a functional option for Printer
type Option func(*Printer)

// WithNoColor disables colored output regardless of the terminal
func WithNoColor(disable bool) Option {
	return func(p *Printer) {
		if !disable {
			return
		}
		for _, c := range p.colors() {
			c.DisableColor()
		}
	}
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:       w,
		heading: color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		dir:     color.New(color.FgBlue),
		muted:   color.New(color.Faint),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Printer) colors() []*color.Color {
	return []*color.Color{p.heading, p.success, p.failure, p.dir, p.muted}
}

// Start announces the package about to be examined
func (p *Printer) Start(source string) {
	p.println()
	p.println(p.heading.Sprint("Examining SCORM package: ") + source)
	p.println()
	p.println("Extracting SCORM package...")
}

// NotFound reports a missing input package
func (p *Printer) NotFound(source string) {
	p.println(p.failure.Sprint("File not found: ") + source)
}

// Failure reports an inspection that stopped on an error
func (p *Printer) Failure(err error) {
	p.println(p.failure.Sprint("Error examining SCORM package: ") + err.Error())
}

// Report renders the full inspection result
func (p *Printer) Report(report *model.Report) {
	p.contents(report.Listing)
	p.manifest(report)
	p.launchFiles(report.HTMLFiles)

	p.println()
	p.println(p.success.Sprint("Analysis complete!"))
}

func (p *Printer) contents(listing model.Listing) {
	p.println()
	p.println(p.heading.Sprint("SCORM Package Contents:"))
	p.println(strings.Repeat("=", sectionRule))

	for _, e := range listing {
		indent := strings.Repeat("  ", e.Depth)
		if e.IsDir {
			p.println(indent + p.dir.Sprint("[DIR]  "+e.Name+"/"))
			continue
		}
		p.println(fmt.Sprintf("%s[FILE] %s %s", indent, e.Name, p.muted.Sprintf("(%s)", e.Size)))
	}

	p.println(p.muted.Sprintf("%d files, %s total", listing.Files(), listing.TotalSize()))
}

func (p *Printer) manifest(report *model.Report) {
	p.println()
	p.println(p.heading.Sprint("Looking for SCORM manifest..."))

	if !report.HasManifest() {
		p.println(p.failure.Sprint("No manifest found"))
		return
	}
	p.println(p.success.Sprint("Found manifest: ") + report.ManifestPath)

	if report.ManifestError != "" {
		p.println(p.failure.Sprint("Error reading manifest: ") + report.ManifestError)
		return
	}

	m := report.Manifest
	if m == nil {
		return
	}

	p.println()
	p.println(p.heading.Sprint("Manifest Content Preview:"))
	p.println(strings.Repeat("-", previewRule))

	if m.Identifier != nil {
		p.println("Identifier: " + *m.Identifier)
	}
	if m.Version != nil {
		p.println("Version: " + *m.Version)
	}
	if m.Title != nil {
		p.println("Title: " + *m.Title)
	}
	if m.OrganizationID != nil {
		p.println("Organization: " + *m.OrganizationID)
	}

	if len(m.Resources) > 0 {
		p.println()
		p.println("Resources:")
		for _, href := range m.Resources {
			p.println("  - " + href)
		}
	}
}

func (p *Printer) launchFiles(files []string) {
	p.println()
	p.println(p.heading.Sprint("Looking for HTML launch files..."))

	if len(files) == 0 {
		p.println(p.failure.Sprint("No HTML files found"))
		return
	}

	p.println(p.success.Sprint("Found HTML files:"))
	for _, f := range files {
		p.println("   - " + f)
	}
}

func (p *Printer) println(s ...string) {
	_, _ = fmt.Fprintln(p.w, strings.Join(s, ""))
}
