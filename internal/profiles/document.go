package profiles

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"
)

const (
	// ForgeProfileID is the key the Forge installer uses for its launcher profile.
	ForgeProfileID = "forge"

	// CustomProfileType is the profile type written for every profile this editor creates.
	CustomProfileType = "custom"

	profilesKey = "profiles"

	// timestampLayout matches the launcher's own format, e.g. 2019-12-12T03:11:18.000Z.
	timestampLayout = "2006-01-02T15:04:05.000Z"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Profile is a read-only view of one launcher profile entry.
// Fields that are absent or not strings in the file are left empty.
type Profile struct {
	ID            string  `json:"id"`
	Name          string  `json:"name,omitempty"`
	Type          string  `json:"type,omitempty"`
	Icon          string  `json:"icon,omitempty"`
	GameDir       string  `json:"gameDir,omitempty"`
	JavaDir       *string `json:"javaDir"`
	LastVersionID string  `json:"lastVersionId,omitempty"`
	Created       string  `json:"created,omitempty"`
	LastUsed      string  `json:"lastUsed,omitempty"`
}

// LastUsedTime parses LastUsed. It returns false if the field is empty or malformed.
func (p Profile) LastUsedTime() (time.Time, bool) {
	return parseTimestamp(p.LastUsed)
}

// CreatedTime parses Created. It returns false if the field is empty or malformed.
func (p Profile) CreatedTime() (time.Time, bool) {
	return parseTimestamp(p.Created)
}

// document is the parsed launcher_profiles.json. Keys this editor does not
// know about are kept as decoded so they survive a rewrite.
type document map[string]any

// parseDocument decodes data, skipping a leading UTF-8 byte order mark.
func parseDocument(data []byte) (document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is not an object")
	}

	switch obj[profilesKey].(type) {
	case nil, map[string]any:
	default:
		return nil, fmt.Errorf("%q is not an object", profilesKey)
	}

	return document(obj), nil
}

// profiles returns the profiles mapping, or nil when the document has none.
func (d document) profiles() map[string]any {
	p, _ := d[profilesKey].(map[string]any)
	return p
}

// withProfile returns a copy of d with profiles[id] set to entry.
// d itself is not modified.
func (d document) withProfile(id string, entry map[string]any) document {
	next := make(document, len(d)+1)
	for k, v := range d {
		next[k] = v
	}

	current := d.profiles()
	profiles := make(map[string]any, len(current)+1)
	for k, v := range current {
		profiles[k] = v
	}
	profiles[id] = entry
	next[profilesKey] = profiles

	return next
}

// marshal renders the document with two-space indentation. Invalid UTF-8 in
// strings is replaced with U+FFFD by encoding/json instead of failing.
func (d document) marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any(d)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d document) profileList() []Profile {
	entries := d.profiles()
	list := make([]Profile, 0, len(entries))
	for id, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		list = append(list, profileFromEntry(id, entry))
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func profileFromEntry(id string, entry map[string]any) Profile {
	p := Profile{
		ID:            id,
		Name:          stringField(entry, "name"),
		Type:          stringField(entry, "type"),
		Icon:          stringField(entry, "icon"),
		GameDir:       stringField(entry, "gameDir"),
		LastVersionID: stringField(entry, "lastVersionId"),
		Created:       stringField(entry, "created"),
		LastUsed:      stringField(entry, "lastUsed"),
	}
	if javaDir, ok := entry["javaDir"].(string); ok {
		p.JavaDir = &javaDir
	}
	return p
}

func stringField(entry map[string]any, key string) string {
	s, _ := entry[key].(string)
	return s
}

func copyEntry(entry map[string]any) map[string]any {
	c := make(map[string]any, len(entry)+1)
	for k, v := range entry {
		c[k] = v
	}
	return c
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
