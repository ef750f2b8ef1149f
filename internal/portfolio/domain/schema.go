package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// record is a decoded JSON object whose values are still raw, so every field can
// be checked in declaration order and type mismatches can be attributed to the
// field that caused them.
type record map[string]json.RawMessage

func decodeRecord(body []byte) (record, error) {
	var r record
	if err := json.Unmarshal(body, &r); err != nil || r == nil {
		return nil, ErrInvalidBody
	}
	return r, nil
}

// ParseInsertProject validates title, description, imageUrl, tags, projectUrl and
// githubUrl in that order and stops at the first failure.
func ParseInsertProject(body []byte) (*InsertProject, error) {
	r, err := decodeRecord(body)
	if err != nil {
		return nil, err
	}

	var in InsertProject
	if in.Title, err = r.requiredString("title"); err != nil {
		return nil, err
	}
	if in.Description, err = r.requiredString("description"); err != nil {
		return nil, err
	}
	if in.ImageURL, err = r.optionalString("imageUrl"); err != nil {
		return nil, err
	}
	if in.Tags, err = r.optionalStrings("tags"); err != nil {
		return nil, err
	}
	if in.ProjectURL, err = r.optionalString("projectUrl"); err != nil {
		return nil, err
	}
	if in.GithubURL, err = r.optionalString("githubUrl"); err != nil {
		return nil, err
	}
	return &in, nil
}

// ParseInsertSkill validates name, category and proficiency. Proficiency defaults
// to 0 and is not range checked.
func ParseInsertSkill(body []byte) (*InsertSkill, error) {
	r, err := decodeRecord(body)
	if err != nil {
		return nil, err
	}

	var in InsertSkill
	if in.Name, err = r.requiredString("name"); err != nil {
		return nil, err
	}
	if in.Category, err = r.requiredString("category"); err != nil {
		return nil, err
	}
	if in.Proficiency, err = r.optionalInt("proficiency"); err != nil {
		return nil, err
	}
	return &in, nil
}

// ParseInsertMessage validates name, email and message.
func ParseInsertMessage(body []byte) (*InsertMessage, error) {
	r, err := decodeRecord(body)
	if err != nil {
		return nil, err
	}

	var in InsertMessage
	if in.Name, err = r.requiredString("name"); err != nil {
		return nil, err
	}
	if in.Email, err = r.requiredString("email"); err != nil {
		return nil, err
	}
	if validate.Var(in.Email, "email") != nil {
		return nil, invalid("email", "Invalid email address")
	}
	if in.Message, err = r.requiredString("message"); err != nil {
		return nil, err
	}
	return &in, nil
}

func (r record) lookup(field string) (json.RawMessage, bool) {
	raw, ok := r[field]
	if !ok || kindOf(raw) == "null" {
		return nil, false
	}
	return raw, true
}

func (r record) requiredString(field string) (string, error) {
	raw, ok := r.lookup(field)
	if !ok {
		return "", invalid(field, "%s is required", label(field))
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", invalid(field, "Expected string, received %s", kindOf(raw))
	}
	if s == "" {
		return "", invalid(field, "%s is required", label(field))
	}
	return s, nil
}

// optionalString treats a missing key, null and a whitespace-only string alike:
// the value is stored as null. Anything else is stored as sent.
func (r record) optionalString(field string) (*string, error) {
	raw, ok := r.lookup(field)
	if !ok {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, invalid(field, "Expected string, received %s", kindOf(raw))
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return &s, nil
}

func (r record) optionalStrings(field string) ([]string, error) {
	raw, ok := r.lookup(field)
	if !ok {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, invalid(field, "Expected array, received %s", kindOf(raw))
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			return nil, invalid(field+"."+strconv.Itoa(i), "Expected string, received %s", kindOf(item))
		}
		out = append(out, s)
	}
	return out, nil
}

// optionalInt accepts any JSON number with no fractional part that fits the
// store's 32-bit integer column.
func (r record) optionalInt(field string) (int, error) {
	raw, ok := r.lookup(field)
	if !ok {
		return 0, nil
	}
	if kind := kindOf(raw); kind != "number" {
		return 0, invalid(field, "Expected number, received %s", kind)
	}
	// Literals beyond float64 range such as 1e400 fail to decode.
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, invalid(field, "Number must fit in a 32-bit integer")
	}
	if f != math.Trunc(f) {
		return 0, invalid(field, "Expected integer, received float")
	}
	return int(f), nil
}

// kindOf names the JSON type of a raw value the way the error messages expect.
func kindOf(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "undefined"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func label(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
