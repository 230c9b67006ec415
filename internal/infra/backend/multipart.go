package backend

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// File is an uploaded file forwarded to the backend.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

type formPart struct {
	name  string
	value string
	file  *File
}

// multipartForm collects parts in insertion order. Empty values are skipped
// the same way the browser client leaves out unset fields.
type multipartForm struct {
	parts []formPart
}

func newForm() *multipartForm {
	return &multipartForm{}
}

func (f *multipartForm) field(name, value string) *multipartForm {
	if value != "" {
		f.parts = append(f.parts, formPart{name: name, value: value})
	}
	return f
}

func (f *multipartForm) intField(name string, v int64) *multipartForm {
	if v != 0 {
		f.field(name, strconv.FormatInt(v, 10))
	}
	return f
}

func (f *multipartForm) floatField(name string, v float64) *multipartForm {
	if v != 0 {
		f.field(name, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return f
}

func (f *multipartForm) boolField(name string, v bool) *multipartForm {
	f.parts = append(f.parts, formPart{name: name, value: strconv.FormatBool(v)})
	return f
}

func (f *multipartForm) file(name string, file *File) *multipartForm {
	if file != nil && len(file.Content) > 0 {
		f.parts = append(f.parts, formPart{name: name, file: file})
	}
	return f
}

func (f *multipartForm) files(name string, files []File) *multipartForm {
	for i := range files {
		f.file(name, &files[i])
	}
	return f
}

func (f *multipartForm) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range f.parts {
		if p.file == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, "", err
			}
			continue
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+p.name+`"; filename="`+quoteEscaper.Replace(p.file.Name)+`"`)
		ct := p.file.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(p.file.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// Images are the image uploads of a room or activity form.
type Images struct {
	Main       *File
	Additional []File
}
