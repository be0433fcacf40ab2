package http

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/vbadoc"
)

// Catalog payloads are decoded leniently: absent or mistyped fields take
// defaults, and records that are not objects are skipped, instead of
// failing the request. Only a body that is not JSON at all is an error.

type searchResponse struct {
	Results     records `json:"results"`
	TotalCount  number  `json:"totalCount"`
	Suggestions texts   `json:"suggestions"`
}

type examplesResponse struct {
	Examples records `json:"examples"`
}

type libraryPayload struct {
	ID            text      `json:"id"`
	Name          text      `json:"name"`
	Description   text      `json:"description"`
	OfficeApp     text      `json:"officeApp"`
	APIVersion    text      `json:"apiVersion"`
	Examples      records   `json:"examples"`
	Documentation text      `json:"documentation"`
	LastUpdated   timestamp `json:"lastUpdated"`
	TrustScore    number    `json:"trustScore"`
	UsageCount    number    `json:"usageCount"`
}

type examplePayload struct {
	ID          text      `json:"id"`
	Title       text      `json:"title"`
	Description text      `json:"description"`
	Code        text      `json:"code"`
	Category    text      `json:"category"`
	Difficulty  text      `json:"difficulty"`
	Tags        texts     `json:"tags"`
	Author      text      `json:"author"`
	CreatedDate timestamp `json:"createdDate"`
	Rating      number    `json:"rating"`
}

// defaultTrustScore is assigned to libraries whose payload omits a score.
const defaultTrustScore = 5

func (p *libraryPayload) library() vbadoc.Library {
	lib := vbadoc.Library{
		ID:            string(p.ID),
		Name:          string(p.Name),
		Description:   string(p.Description),
		OfficeApp:     vbadoc.OfficeApp(p.OfficeApp),
		APIVersion:    string(p.APIVersion),
		Examples:      examples(p.Examples),
		Documentation: string(p.Documentation),
		LastUpdated:   time.Time(p.LastUpdated),
		TrustScore:    defaultTrustScore,
		UsageCount:    int(p.UsageCount.value),
	}
	if p.TrustScore.ok {
		lib.TrustScore = p.TrustScore.value
	}
	return lib
}

func (p *examplePayload) example() vbadoc.Example {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return vbadoc.Example{
		ID:          string(p.ID),
		Title:       string(p.Title),
		Description: string(p.Description),
		Code:        string(p.Code),
		Category:    vbadoc.Category(p.Category),
		Difficulty:  vbadoc.Difficulty(p.Difficulty),
		Tags:        tags,
		Author:      string(p.Author),
		CreatedDate: time.Time(p.CreatedDate),
		Rating:      p.Rating.value,
	}
}

// libraries converts search records, always returning a non-nil slice.
func libraries(rs records) []vbadoc.Library {
	out := make([]vbadoc.Library, 0, len(rs))
	for _, raw := range rs {
		var p libraryPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		out = append(out, p.library())
	}
	return out
}

// examples converts example records, always returning a non-nil slice.
func examples(rs records) []vbadoc.Example {
	out := make([]vbadoc.Example, 0, len(rs))
	for _, raw := range rs {
		var p examplePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		out = append(out, p.example())
	}
	return out
}

func isNull(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

// records holds the elements of a JSON array for per-record decoding.
// A value that is not an array decodes to no records.
type records []json.RawMessage

func (r *records) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err == nil {
		*r = raw
	}
	return nil
}

// text accepts strings; numbers and booleans keep their literal form.
// Objects, arrays, and null decode to "".
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = text(s)
		return nil
	}
	data = bytes.TrimSpace(data)
	if !isNull(data) && data[0] != '{' && data[0] != '[' {
		*t = text(data)
	}
	return nil
}

// texts accepts an array of scalars. Anything else decodes to nil.
type texts []string

func (t *texts) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		var s text
		_ = s.UnmarshalJSON(item)
		if s != "" {
			out = append(out, string(s))
		}
	}
	*t = out
	return nil
}

// number accepts JSON numbers and numeric strings. ok reports whether a
// usable value was present.
type number struct {
	value float64
	ok    bool
}

func (n *number) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = number{value: f, ok: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		*n = number{value: f, ok: true}
	}
	return nil
}

// timestamp accepts RFC 3339 strings, plain dates, and epoch milliseconds.
// Anything else decodes to the zero time.
type timestamp time.Time

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isNull(data) {
		return nil
	}

	if data[0] != '"' {
		if ms, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			*t = timestamp(time.UnixMilli(ms).UTC())
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = timestamp(parsed)
			return nil
		}
	}
	return nil
}
