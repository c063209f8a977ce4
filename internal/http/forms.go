package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"hrdesk/api/internal/employee"
	"hrdesk/api/internal/images"
)

var errUnsupportedImage = errors.New("image must be a JPEG, PNG, GIF or WebP file")

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// employeeForm is the flattened request body of an employee write.
type employeeForm struct {
	values map[string]string
	upload *images.Upload
	file   multipart.File
	form   *multipart.Form
}

func (f *employeeForm) Close() {
	if f.file != nil {
		_ = f.file.Close()
	}
	if f.form != nil {
		_ = f.form.RemoveAll()
	}
}

// readEmployeeForm accepts multipart (with an optional "image" file),
// url-encoded or JSON bodies and flattens them to string values.
func (s *Server) readEmployeeForm(w http.ResponseWriter, r *http.Request) (*employeeForm, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
			return nil, fmt.Errorf("invalid multipart body: %w", err)
		}
		form := &employeeForm{values: firstValues(r.MultipartForm.Value), form: r.MultipartForm}
		file, header, err := r.FormFile("image")
		if errors.Is(err, http.ErrMissingFile) {
			return form, nil
		}
		if err != nil {
			form.Close()
			return nil, fmt.Errorf("invalid image: %w", err)
		}
		form.file = file

		sniff := make([]byte, 512)
		n, err := io.ReadFull(file, sniff)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			form.Close()
			return nil, fmt.Errorf("invalid image: %w", err)
		}
		sniff = sniff[:n]
		if !allowedImageTypes[http.DetectContentType(sniff)] {
			form.Close()
			return nil, errUnsupportedImage
		}
		form.upload = &images.Upload{
			Field:    "image",
			Filename: header.Filename,
			Body:     io.MultiReader(bytes.NewReader(sniff), file),
		}
		return form, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form body: %w", err)
		}
		return &employeeForm{values: firstValues(r.PostForm)}, nil
	default:
		values, err := decodeFlatJSON(r.Body)
		if err != nil {
			return nil, err
		}
		return &employeeForm{values: values}, nil
	}
}

func firstValues(in map[string][]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, values := range in {
		if len(values) > 0 {
			out[key] = values[0]
		}
	}
	return out
}

// decodeFlatJSON reads a JSON object of scalars. Nulls are treated as absent.
func decodeFlatJSON(body io.Reader) (map[string]string, error) {
	decoder := json.NewDecoder(body)
	decoder.UseNumber()
	var raw map[string]interface{}
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
		case string:
			out[key] = v
		case json.Number:
			out[key] = v.String()
		case bool:
			if v {
				out[key] = "true"
			} else {
				out[key] = "false"
			}
		default:
			if employee.IsFormKey(key) {
				return nil, fmt.Errorf("invalid JSON body: %s must be a scalar", key)
			}
		}
	}
	return out, nil
}
