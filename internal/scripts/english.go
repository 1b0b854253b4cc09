package scripts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"scriptdocs/internal/episode"
	"scriptdocs/internal/logging"
	"scriptdocs/internal/textnorm"
)

// LoadEnglish scans dir for NNN.txt scripts and returns them keyed by
// episode identifier. A .txt file whose stem is not exactly three digits is
// a fatal configuration error.
func LoadEnglish(dir string, logger *slog.Logger) (map[episode.ID]string, error) {
	log := logging.NewComponentLogger(logger, "scripts")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read english directory: %w", err)
	}

	out := make(map[episode.ID]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		id, err := episode.ParseStem(stem)
		if err != nil {
			return nil, err
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		out[id] = textnorm.Dedent(bestEffortUTF8(raw))
		log.Debug("loaded english script", logging.String("file", entry.Name()), logging.String("tag", id.Tag()))
	}
	log.Info("english scripts loaded", logging.Int("episodes", len(out)))
	return out, nil
}

// bestEffortUTF8 replaces undecodable bytes instead of failing; the archives
// predate consistent encodings.
func bestEffortUTF8(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
