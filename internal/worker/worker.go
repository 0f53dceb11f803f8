package worker

import (
	"context"
	"encoding/csv"
	"fmt"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/data/repository"
	"pizza-delivery/internal/data/store"
	"pizza-delivery/pkg/utils"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Worker prepares the on-disk state at startup: it creates the
// collection directories and reloads the menu from its CSV source.
type Worker struct {
	fs     afero.Fs
	db     *store.Store
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func New(fs afero.Fs, db *store.Store, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Worker {
	return &Worker{
		fs:     fs,
		db:     db,
		repo:   repo,
		config: config,
		log:    log.With(zap.String("component", "worker")),
	}
}

func (w *Worker) Init(ctx context.Context) error {
	for _, collection := range repository.Collections {
		if err := w.db.EnsureCollection(collection); err != nil {
			return err
		}
	}
	w.log.Info("Data directories ready", zap.Strings("collections", repository.Collections))

	// A missing menu file is not fatal; the menu collection just stays
	// as it was.
	items, err := w.loadMenuCSV()
	if err != nil {
		w.log.Warn("Menu CSV not loaded", zap.Error(err), zap.String("path", w.config.Assets.MenuCSV))
		return nil
	}

	if err := w.repo.Menu.Replace(ctx, items); err != nil {
		return err
	}

	w.log.Info("Menu items loaded", zap.Int("count", len(items)))
	return nil
}

// loadMenuCSV parses the menu source. The first row is the header
// (Id,Name,Description,Price); every following row becomes one item.
func (w *Worker) loadMenuCSV() ([]entity.MenuItem, error) {
	file, err := w.fs.Open(w.config.Assets.MenuCSV)
	if err != nil {
		return nil, fmt.Errorf("open menu csv: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse menu csv: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("menu csv has no data rows")
	}

	items := make([]entity.MenuItem, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 4 {
			w.log.Warn("Skipping short menu row", zap.Strings("row", row))
			continue
		}
		items = append(items, entity.MenuItem{
			ID:          row[0],
			Name:        utils.Unquote(row[1]),
			Description: utils.Unquote(row[2]),
			Price:       utils.ParseFloat(row[3]),
		})
	}

	return items, nil
}
