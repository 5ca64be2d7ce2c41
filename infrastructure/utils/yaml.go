package utils

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// YAMLLoader decodes the YAML file at path into out
func YAMLLoader(fs afero.Fs, path string, out interface{}) error {
	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadYAML decodes the YAML file at path into a new T
func LoadYAML[T any](fs afero.Fs, path string) (T, error) {
	var v T
	err := YAMLLoader(fs, path, &v)
	return v, err
}

// YAMLDump encodes data as YAML into the file at path, replacing its contents
func YAMLDump(fs afero.Fs, path string, data interface{}) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return enc.Close()
}
