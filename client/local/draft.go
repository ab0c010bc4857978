// Package local keeps job definition drafts on disk between wizard steps.
package local

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	yamlV2 "gopkg.in/yaml.v2"
	"gopkg.in/yaml.v3"
)

const (
	DraftFileName = "job.yaml"
	DraftVersion  = 1
)

type JobDraft struct {
	Version  int           `yaml:"version"`
	Name     string        `yaml:"name"`
	Schedule DraftSchedule `yaml:"schedule,omitempty"`
}

type DraftSchedule struct {
	Interval string `yaml:"interval,omitempty"`
}

type DraftReadWriter struct {
	fs afero.Fs
}

func NewDraftReadWriter(fs afero.Fs) (*DraftReadWriter, error) {
	if fs == nil {
		return nil, errors.New("draft fs is nil")
	}
	return &DraftReadWriter{fs: fs}, nil
}

// Exists reports whether dirPath already holds a draft
func (d *DraftReadWriter) Exists(dirPath string) (bool, error) {
	return afero.Exists(d.fs, filepath.Join(dirPath, DraftFileName))
}

func (d *DraftReadWriter) Read(dirPath string) (*JobDraft, error) {
	if dirPath == "" {
		return nil, errors.New("dir path is empty")
	}
	filePath := filepath.Join(dirPath, DraftFileName)
	f, err := d.fs.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening draft under [%s]: %w", filePath, err)
	}
	defer f.Close()

	var draft JobDraft
	if err := yamlV2.NewDecoder(f).Decode(&draft); err != nil {
		return nil, fmt.Errorf("error decoding draft under [%s]: %w", filePath, err)
	}
	return &draft, nil
}

func (d *DraftReadWriter) Write(dirPath string, draft *JobDraft) error {
	if dirPath == "" {
		return errors.New("dir path is empty")
	}
	if draft == nil {
		return errors.New("draft is nil")
	}
	if draft.Version == 0 {
		draft.Version = DraftVersion
	}
	if err := d.fs.MkdirAll(dirPath, os.ModePerm); err != nil {
		return err
	}
	filePath := filepath.Join(dirPath, DraftFileName)
	f, err := d.fs.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating draft under [%s]: %w", filePath, err)
	}
	defer f.Close()

	indent := 2
	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(indent)
	if err := encoder.Encode(draft); err != nil {
		return err
	}
	return encoder.Close()
}
