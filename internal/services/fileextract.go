package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FileExtractService pulls plain text out of uploaded assignments and notices
// so the UI can prefill the text field of summarize, viva and simplify.
type FileExtractService struct{}

func NewFileExtractService() *FileExtractService {
	return &FileExtractService{}
}

// SupportedExtensions lists the upload formats ExtractText understands.
func SupportedExtensions() []string {
	return []string{".txt", ".pdf", ".docx"}
}

func (s *FileExtractService) ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".txt":
		text, err = s.extractTXT(data)
	case ".pdf":
		text, err = s.extractPDF(data)
	case ".docx":
		text, err = s.extractDOCX(data)
	default:
		return "", &ValidationError{
			Message: fmt.Sprintf("Unsupported file type %q. Supported: %s", ext, strings.Join(SupportedExtensions(), ", ")),
			Fields:  map[string]string{"file": "unsupported type"},
		}
	}
	if err != nil {
		return "", &ValidationError{
			Message: "Could not read text from the uploaded file",
			Fields:  map[string]string{"file": err.Error()},
		}
	}

	return text, nil
}

func (s *FileExtractService) extractTXT(data []byte) (string, error) {
	text := normalizeExtractedText(string(data))
	if text == "" {
		return "", fmt.Errorf("text file is empty")
	}

	return text, nil
}

func (s *FileExtractService) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	text := normalizeExtractedText(b.String())
	if text == "" {
		return "", fmt.Errorf("no extractable text found in pdf")
	}

	return text, nil
}

func (s *FileExtractService) extractDOCX(data []byte) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var documentXML []byte
	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		documentXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}

	if len(documentXML) == 0 {
		return "", fmt.Errorf("docx document.xml not found")
	}

	raw, err := docxText(documentXML)
	if err != nil {
		return "", err
	}

	text := normalizeExtractedText(raw)
	if text == "" {
		return "", fmt.Errorf("no extractable text found in docx")
	}

	return text, nil
}

// docxText walks word/document.xml and keeps the text runs, turning paragraph
// ends and breaks into newlines.
func docxText(documentXML []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(documentXML))

	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return b.String(), nil
}

// normalizeExtractedText trims every line and keeps at most one blank line
// between paragraphs.
func normalizeExtractedText(s string) string {
	s = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)

	var lines []string
	prevBlank := true
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if !prevBlank {
				lines = append(lines, "")
			}
			prevBlank = true
			continue
		}
		prevBlank = false
		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
