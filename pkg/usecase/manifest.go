package usecase

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/model"
	"golang.org/x/net/html/charset"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// parseManifest picks the title, organization and resource hrefs out of an
// imsmanifest.xml document. Missing fields stay nil. Broken markup ends the
// scan early and whatever was found up to that point is returned.
func parseManifest(ctx context.Context, data []byte) *model.Manifest {
	logger := ctxlog.From(ctx)

	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = charsetReader

	manifest := &model.Manifest{}

	var (
		depth      int
		titleDepth int // depth of the <title> being read, 0 outside of one
		title      strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Debug("Stopped reading malformed manifest", "error", err)
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch strings.ToLower(t.Name.Local) {
			case "manifest":
				if depth == 1 {
					manifest.Identifier = attrValue(t, "identifier")
					manifest.Version = attrValue(t, "version")
				}

			case "title":
				if manifest.Title == nil && titleDepth == 0 {
					titleDepth = depth
					title.Reset()
				}

			case "organization":
				manifest.Organizations++
				if manifest.OrganizationID == nil {
					manifest.OrganizationID = attrValue(t, "identifier")
				}

			case "resource":
				manifest.ResourceCount++
				if href := attrValue(t, "href"); href != nil {
					manifest.Resources = append(manifest.Resources, *href)
				}
			}

		case xml.CharData:
			if titleDepth > 0 {
				title.Write(t)
			}

		case xml.EndElement:
			if titleDepth > 0 && depth == titleDepth {
				titleDepth = 0
				if text := strings.TrimSpace(title.String()); text != "" {
					manifest.Title = &text
				}
			}
			depth--
		}
	}

	return manifest
}

// attrValue returns the first non-empty attribute with the given local name
func attrValue(elem xml.StartElement, name string) *string {
	for _, a := range elem.Attr {
		if strings.EqualFold(a.Name.Local, name) && a.Value != "" {
			v := a.Value
			return &v
		}
	}
	return nil
}

// charsetReader decodes legacy encodings declared in the XML prolog. Unknown
// labels are read as-is.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	r, err := charset.NewReaderLabel(label, input)
	if err != nil {
		return input, nil
	}
	return r, nil
}
