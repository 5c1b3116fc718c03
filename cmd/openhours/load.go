package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/openhours/openhours/schedule"
	"github.com/openhours/openhours/sctime"
)

// loadDocument reads a schedule document from a JSON or YAML file. YAML is
// converted to JSON first so both share the document codec, including the
// weekly true-or-array handling.
func loadDocument(path string) (*schedule.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read schedule")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
		data, err = json.Marshal(stringifyKeys(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "convert %s", path)
		}
	}

	var doc schedule.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	logger.Debug("schedule loaded", "path", path, "always", doc.Always,
		"weekly_rules", len(doc.Weekly), "overrides", len(doc.Overrides))
	return &doc, nil
}

// stringifyKeys rewrites yaml.v2's map[interface{}]interface{} nodes into
// JSON-encodable maps.
func stringifyKeys(v interface{}) interface{} {
	switch v := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = stringifyKeys(val)
		}
		return m
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, val := range v {
			out[i] = stringifyKeys(val)
		}
		return out
	default:
		return v
	}
}

func loadSchedule(path string) (*schedule.Schedule, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	s, err := doc.Compile()
	if err != nil {
		return nil, errors.Wrap(err, "compile schedule")
	}
	return s, nil
}

func parseStampFlag(name, value string) (sctime.Stamp, error) {
	st, err := sctime.ParseStamp(value)
	if err != nil {
		return sctime.Stamp{}, errors.Wrapf(err, "--%s", name)
	}
	return st, nil
}

func parseDateFlag(name, value string) (sctime.Date, error) {
	d, err := sctime.ParseDate(value)
	if err != nil {
		return sctime.Date{}, errors.Wrapf(err, "--%s", name)
	}
	return d, nil
}
