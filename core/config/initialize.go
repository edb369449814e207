package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration and a sample directive file
// into dir, skipping anything that already exists.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) error {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return err
	}

	files := []struct {
		name string
		data []byte
	}{
		{ConfigurationName, defaultConfigData},
		{SampleScriptName, sampleScriptData},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if _, err := fsys.Stat(path); err == nil {
			logger.Printf("%s already exists, skipping", path)
			continue
		}
		if err := afero.WriteFile(fsys, path, f.data, 0644); err != nil {
			return err
		}
		logger.Printf("wrote %s", path)
	}
	return nil
}
