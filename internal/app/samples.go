package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/repo"
	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	SamplesServersFile = "servers.json"
	SamplesNginxFile   = "nginx_logs.txt"
	SamplesMySQLFile   = "mysql_logs.txt"
	SamplesRedisFile   = "redis_logs.txt"
	SamplesMetricsFile = "metrics.json"
)

// ExportSamples writes one synthesized data set for serverIP into dir.
func ExportSamples(repos *repo.Repositories, dir, serverIP string, windowMinutes int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := writeJSON(filepath.Join(dir, SamplesServersFile), repos.Servers.ListServers()); err != nil {
		return err
	}

	logs := []struct {
		file   string
		source repo.LogSource
	}{
		{SamplesNginxFile, repos.Nginx},
		{SamplesMySQLFile, repos.MySQL},
		{SamplesRedisFile, repos.Redis},
	}
	for _, l := range logs {
		if err := writeLines(filepath.Join(dir, l.file), l.source.Generate(serverIP, windowMinutes)); err != nil {
			return err
		}
	}

	if err := writeJSON(filepath.Join(dir, SamplesMetricsFile), repos.Metrics.Snapshot(serverIP, windowMinutes)); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"dir":       dir,
		"server_ip": serverIP,
	}).Info("Sample data exported")
	return nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return errorsUtils.WrapPathErr(fmt.Errorf("write %s: %w", path, err))
	}
	return nil
}

func writeLines(path string, lines []domain.RawLogLine) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errorsUtils.WrapPathErr(fmt.Errorf("write %s: %w", path, err))
	}
	return nil
}
