package extraction

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

// DOCXExtractor reads the main document part of a .docx archive and joins
// its paragraph runs with newlines. Headers, footers, and embedded objects
// are ignored.
type DOCXExtractor struct{}

func NewDOCXExtractor() *DOCXExtractor {
	return &DOCXExtractor{}
}

func (e *DOCXExtractor) SourceType() domain.SourceType {
	return domain.SourceDOCX
}

func (e *DOCXExtractor) Extract(_ context.Context, input RawMaterial) (string, []string, error) {
	archive, err := zip.NewReader(bytes.NewReader(input.Data), int64(len(input.Data)))
	if err != nil {
		return "", nil, &domain.ExtractionError{
			Reason:     "could not open DOCX document",
			Suggestion: "make sure the file is a valid .docx file",
		}
	}

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", nil, &domain.ExtractionError{
			Reason:     "DOCX document is missing its main content part",
			Suggestion: "re-save the document and try again",
		}
	}

	rc, err := document.Open()
	if err != nil {
		return "", nil, &domain.ExtractionError{Reason: "could not read DOCX content"}
	}
	defer func() { _ = rc.Close() }()

	text, err := decodeDocumentXML(rc)
	if err != nil {
		return "", nil, &domain.ExtractionError{Reason: "could not parse DOCX content"}
	}

	return text, nil, nil
}

// decodeDocumentXML streams through WordprocessingML, collecting text runs
// (<w:t>) and inserting newlines at paragraph ends (</w:p>).
func decodeDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var builder strings.Builder
	inTextRun := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				builder.WriteString("\n")
			}
		case xml.CharData:
			if inTextRun {
				builder.Write(t)
			}
		}
	}

	return builder.String(), nil
}
