package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
)

// parseTechnologies accepts a JSON array (of strings or {name: ...}
// objects) or a comma-separated string. Invalid JSON falls back to the
// comma split instead of failing the request; valid JSON that is not an
// array yields an empty list.
func parseTechnologies(raw string) []string {
	out := []string{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return out
	}

	if json.Valid([]byte(raw)) {
		var arr []any
		if err := json.Unmarshal([]byte(raw), &arr); err != nil {
			return out
		}
		for _, item := range arr {
			var s string
			switch t := item.(type) {
			case string:
				s = t
			case map[string]any:
				if name, ok := t["name"].(string); ok {
					s = name
				}
			default:
				s = fmt.Sprint(t)
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// imageFromForm pulls an optional uploaded image out of a multipart form.
// Absence is not an error; a wrong mimetype or an oversized file is.
func imageFromForm(c *gin.Context, field string, maxBytes int64) (*service.ImageUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// missing file, or the request is not multipart at all
		return nil, nil
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, apperror.Validation("File too large. Maximum size is 5MB.")
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperror.Validation("Only image files are allowed")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &service.ImageUpload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// looseBool is true only for JSON true or the string "true".
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*b = looseBool(t)
	case string:
		*b = looseBool(t == "true")
	default:
		*b = false
	}
	return nil
}

// looseInt accepts a JSON number or a numeric string; anything else is 0.
type looseInt int

func (n *looseInt) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		*n = looseInt(int(t))
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			parsed = 0
		}
		*n = looseInt(parsed)
	default:
		*n = 0
	}
	return nil
}

// looseActive is true unless the value is false or the string "false".
type looseActive bool

func (b *looseActive) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*b = looseActive(t)
	case string:
		*b = looseActive(t != "false")
	default:
		*b = true
	}
	return nil
}
