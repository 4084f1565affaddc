package users

import (
	"bytes"
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// fileSchema is the on-disk layout of the user data file:
//
//	[users.teja]
//	username = "tejam"
//	name = "Teja"
type fileSchema struct {
	Users map[string]User `toml:"users"`
}

// Decode parses a TOML user document keyed by user identity.
func Decode(r io.Reader) (map[string]User, error) {
	var file fileSchema
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("[users Decode] %w", err)
	}

	out := make(map[string]User, len(file.Users))
	for key, u := range file.Users {
		u.Key = key
		out[key] = u
	}
	return out, nil
}

// LoadFile reads the user data file at path.
func LoadFile(path string) (map[string]User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[users LoadFile] %w", err)
	}
	users, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("[users LoadFile] %s: %w", path, err)
	}
	return users, nil
}
