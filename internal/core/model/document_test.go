package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestMetadataKeysOrder(t *testing.T) {
	metadata := Metadata{
		Title:        "Fix bug",
		ID:           "1",
		CustomFields: []string{},
		Followers:    []string{},
	}

	data, err := json.Marshal(metadata)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	position := -1
	for _, key := range metadata.Keys() {
		idx := strings.Index(string(data), `"`+key+`"`)
		if idx < 0 {
			t.Fatalf("key '%s' not found in '%s'", key, data)
		}

		if idx < position {
			t.Errorf("key '%s' is out of order in '%s'", key, data)
		}

		position = idx
	}

	if e, g := len(metadata.Keys()), len(metadata.Map()); e != g {
		t.Errorf("len(metadata.Map()): expected '%d', got '%d'", e, g)
	}
}

func TestMetadataMapIsolation(t *testing.T) {
	metadata := Metadata{
		Title:        "Fix bug",
		CustomFields: []string{"High"},
		Followers:    []string{"Bob"},
	}

	values := metadata.Map()

	if e, g := "Fix bug", values[MetadataTitle]; e != g {
		t.Errorf("values[MetadataTitle]: expected '%v', got '%v'", e, g)
	}

	followers, ok := values[MetadataFollowers].([]string)
	if !ok {
		t.Fatalf("values[MetadataFollowers]: unexpected type %T", values[MetadataFollowers])
	}

	followers[0] = "Mallory"

	if e, g := "Bob", metadata.Followers[0]; e != g {
		t.Errorf("metadata.Followers[0]: expected '%s', got '%s'", e, g)
	}
}
