package scripts

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"scriptdocs/internal/convert"
	"scriptdocs/internal/episode"
	"scriptdocs/internal/logging"
	"scriptdocs/internal/textnorm"
)

// LoadChinese converts every legacy .doc script in dir and returns the
// normalized text keyed by episode identifier. Single-episode files are keyed
// by their embedded number; range files are split at episode headings and
// aligned with AlignRange. Conversion failures abort the load.
func LoadChinese(ctx context.Context, dir string, conv convert.Converter, logger *slog.Logger) (map[episode.ID]string, error) {
	log := logging.NewComponentLogger(logger, "scripts")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read chinese directory: %w", err)
	}

	out := make(map[episode.ID]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".doc") {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)

		if episode.HasRange(name) {
			if err := loadRangeDoc(ctx, path, conv, out, log); err != nil {
				return nil, err
			}
			continue
		}

		id, ok := episode.FindNumber(name)
		if !ok {
			log.Debug("skipping document without episode number", logging.String("file", name))
			continue
		}
		text, err := conv.Convert(ctx, path)
		if err != nil {
			return nil, err
		}
		out[id] = textnorm.Dedent(text)
		log.Debug("loaded chinese script", logging.String("file", name), logging.String("tag", id.Tag()))
	}
	log.Info("chinese scripts loaded", logging.Int("episodes", len(out)))
	return out, nil
}

func loadRangeDoc(ctx context.Context, path string, conv convert.Converter, out map[episode.ID]string, log *slog.Logger) error {
	name := filepath.Base(path)
	start, end, err := episode.ParseRange(name)
	if err != nil {
		return err
	}
	text, err := conv.Convert(ctx, path)
	if err != nil {
		return err
	}

	chunks := SplitEpisodes(text)
	aligned, mismatch := AlignRange(start, end, chunks)
	if mismatch {
		log.Warn("range document structure disagrees with filename",
			logging.Args(
				logging.String("file", name),
				logging.String("declared", fmt.Sprintf("%s-%s", start.Tag(), end.Tag())),
				logging.Int("detected_chunks", len(chunks)),
			)...)
	}
	for id, chunk := range aligned {
		out[id] = textnorm.Dedent(chunk)
		log.Debug("loaded chinese script", logging.String("file", name), logging.String("tag", id.Tag()))
	}
	return nil
}
