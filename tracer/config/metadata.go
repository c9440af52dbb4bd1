package config

import (
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// MetadataCollector records when and from which commit a scene was saved
type MetadataCollector struct {
	timestamp time.Time
	gitCommit string
}

// currentGitCommit is swapped out in tests
var currentGitCommit = getCurrentGitCommit

func NewMetadataCollector() (*MetadataCollector, error) {
	gitCommit, err := currentGitCommit()
	if err != nil {
		return nil, fmt.Errorf("failed to get git commit: %w", err)
	}

	return &MetadataCollector{
		timestamp: time.Now().UTC(),
		gitCommit: gitCommit,
	}, nil
}

func getCurrentGitCommit() (string, error) {
	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// PopulateMetadata fills in the metadata fields of the config
func (mc *MetadataCollector) PopulateMetadata(config *SceneConfig) {
	config.Metadata.Timestamp = mc.timestamp.Format("2006-01-02 15:04:05")
	config.Metadata.GitCommit = mc.gitCommit
}
