package main

import (
	"fmt"
	"intakeflow/internal/catalog"
	"intakeflow/internal/model"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// answersFile is the on-disk form of one intake
type answersFile struct {
	ProjectName *string             `yaml:"projectName"`
	Status      *model.IntakeStatus `yaml:"status"`
	Answers     map[string]string   `yaml:"answers"`
}

func loadAnswers(path string) (*answersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	var f answersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var unknown []string
	for id := range f.Answers {
		if _, ok := catalog.ByID(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%s: unknown question ids %s (expected one of %s)",
			path, strings.Join(unknown, ", "), strings.Join(catalog.IDs(), ", "))
	}
	return &f, nil
}

func (f *answersFile) answerSet() model.AnswerSet {
	return model.AnswerSet(f.Answers).Clone()
}
