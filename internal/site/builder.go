package site

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"scriptdocs/internal/config"
	"scriptdocs/internal/convert"
	"scriptdocs/internal/episode"
	"scriptdocs/internal/logging"
	"scriptdocs/internal/scripts"
)

// Result summarizes one build run.
type Result struct {
	BuildID        string
	Duration       time.Duration
	Episodes       int
	PagesWritten   int
	MissingEnglish []episode.ID
	MissingChinese []episode.ID
}

// Builder runs the full source-to-site transformation.
type Builder struct {
	cfg    *config.Config
	conv   convert.Converter
	logger *slog.Logger
	dryRun bool
}

// NewBuilder constructs a builder. A nil logger disables logging.
func NewBuilder(cfg *config.Config, conv convert.Converter, logger *slog.Logger) *Builder {
	return &Builder{
		cfg:    cfg,
		conv:   conv,
		logger: logging.NewComponentLogger(logger, "site"),
	}
}

// SetDryRun makes Run report what it would write without touching disk.
func (b *Builder) SetDryRun(enabled bool) { b.dryRun = enabled }

// Run executes the one-shot build: load both archives, align episodes, and
// write pages, indexes, and the manifest. Any failure aborts immediately;
// files already written stay on disk.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	buildID := uuid.NewString()
	log := b.logger.With(logging.String(logging.FieldBuildID, buildID))

	if !b.dryRun {
		if err := os.MkdirAll(b.cfg.Paths.DocsDir, 0o755); err != nil {
			return nil, fmt.Errorf("create docs directory: %w", err)
		}
		lock := flock.New(filepath.Join(b.cfg.Paths.DocsDir, ".scriptdocs.lock"))
		ok, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire build lock: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("another build is already writing to %s", b.cfg.Paths.DocsDir)
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	english, err := scripts.LoadEnglish(b.cfg.Paths.EnglishDir, log)
	if err != nil {
		return nil, err
	}
	chinese, err := scripts.LoadChinese(ctx, b.cfg.Paths.ChineseDir, b.conv, log)
	if err != nil {
		return nil, err
	}

	result := &Result{BuildID: buildID}
	bySeason := make(map[int][]episode.ID)
	titles := make(map[episode.ID]string)

	for _, id := range episode.Union(english, chinese) {
		if !b.cfg.IncludesSeason(id.Season()) {
			log.Debug("episode outside configured seasons", logging.String("tag", id.Tag()))
			continue
		}
		result.Episodes++
		en, zh := english[id], chinese[id]
		if en == "" {
			result.MissingEnglish = append(result.MissingEnglish, id)
		}
		if zh == "" {
			result.MissingChinese = append(result.MissingChinese, id)
		}
		bySeason[id.Season()] = append(bySeason[id.Season()], id)
		titles[id] = id.Title(en)

		pagePath := filepath.Join(b.cfg.Paths.DocsDir, seasonDirName(id.Season()), id.Slug()+".md")
		if err := b.write(pagePath, []byte(RenderPage(id, en, zh))); err != nil {
			return nil, err
		}
		result.PagesWritten++
		log.Debug("page written", logging.String("tag", id.Tag()), logging.String("path", pagePath))
	}

	if err := b.writeIndexes(bySeason, titles, result); err != nil {
		return nil, err
	}
	if err := b.writeManifest(bySeason, titles); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	log.Info("build complete",
		logging.Int("episodes", result.Episodes),
		logging.Int("pages", result.PagesWritten),
		logging.Int("missing_english", len(result.MissingEnglish)),
		logging.Int("missing_chinese", len(result.MissingChinese)),
		logging.Duration("elapsed", result.Duration),
		logging.Bool("dry_run", b.dryRun),
	)
	return result, nil
}

func (b *Builder) writeIndexes(bySeason map[int][]episode.ID, titles map[episode.ID]string, result *Result) error {
	for _, season := range b.cfg.Site.Seasons {
		indexPath := filepath.Join(b.cfg.Paths.DocsDir, seasonDirName(season), "index.md")
		content := RenderSeasonIndex(season, bySeason[season], titles)
		if err := b.write(indexPath, []byte(content)); err != nil {
			return err
		}
	}

	root := RenderRootIndex(
		b.cfg.Site.Name,
		b.cfg.Site.Tagline,
		b.cfg.Site.Seasons,
		result.MissingEnglish,
		result.MissingChinese,
	)
	return b.write(filepath.Join(b.cfg.Paths.DocsDir, "index.md"), []byte(root))
}

func (b *Builder) writeManifest(bySeason map[int][]episode.ID, titles map[episode.ID]string) error {
	out, err := RenderManifest(
		b.cfg.Site.Name,
		filepath.Base(b.cfg.Paths.DocsDir),
		b.cfg.Site.Seasons,
		bySeason,
		titles,
	)
	if err != nil {
		return err
	}
	return b.write(b.cfg.Paths.ManifestPath, out)
}

func (b *Builder) write(path string, content []byte) error {
	if b.dryRun {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
