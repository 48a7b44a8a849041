package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Tags is a free-form label list persisted as comma separated text
type Tags []string

// ParseTags splits a comma separated string, dropping blanks
func ParseTags(s string) Tags {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make(Tags, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// Value implements driver.Valuer
func (t Tags) Value() (driver.Value, error) {
	return strings.Join(t.clean(), ","), nil
}

// Scan implements sql.Scanner
func (t *Tags) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
	case string:
		*t = ParseTags(v)
	case []byte:
		*t = ParseTags(string(v))
	default:
		return fmt.Errorf("tags: cannot scan %T", src)
	}
	return nil
}

// Join renders the tags the way the export sheet shows them
func (t Tags) Join() string {
	return strings.Join(t.clean(), ", ")
}

func (t Tags) clean() []string {
	out := make([]string, 0, len(t))
	for _, tag := range t {
		// commas are the storage separator
		tag = strings.TrimSpace(strings.ReplaceAll(tag, ",", " "))
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
