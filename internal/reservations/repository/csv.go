package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cocoresort/pkg/dates"
	apperrors "cocoresort/pkg/errors"
	"cocoresort/pkg/logger"
	"cocoresort/pkg/model"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 10 * time.Millisecond

// pathLocks serialises writers to the same file inside this process; flock
// covers other processes.
var pathLocks sync.Map

// DailyPath names the reservations file for day, e.g.
// reservations/reservations_2024-07-20.csv.
func DailyPath(dir, prefix string, day time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.csv", prefix, dates.FormatISODate(day)))
}

// Load reads every record in path. A file that does not exist yet holds no
// reservations; any other read or decode failure is ErrIOFailure.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", apperrors.ErrIOFailure, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %w", apperrors.ErrIOFailure, path, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range Header {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s: missing column %q", apperrors.ErrIOFailure, path, name)
		}
	}

	records := []Record{}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrIOFailure, path, err)
		}
		rec, err := recordFromRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", apperrors.ErrIOFailure, path, line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// fileMode replaces the 0600 that os.CreateTemp gives the temporary file.
const fileMode os.FileMode = 0o644

// Save overwrites path with records under the fixed header. The data is
// written to a temporary file and renamed into place, so readers see either
// the old or the new contents.
func Save(path string, records []Record) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file for %s: %w", apperrors.ErrIOFailure, path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	if err := w.Write(Header); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %w", apperrors.ErrIOFailure, path, err)
	}
	for _, rec := range records {
		if err := w.Write(rec.row()); err != nil {
			tmp.Close()
			return fmt.Errorf("%w: write %s: %w", apperrors.ErrIOFailure, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: flush %s: %w", apperrors.ErrIOFailure, path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync %s: %w", apperrors.ErrIOFailure, path, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: chmod %s: %w", apperrors.ErrIOFailure, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", apperrors.ErrIOFailure, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", apperrors.ErrIOFailure, path, err)
	}
	return nil
}

// Append adds one record for r to path with a load, append, save cycle held
// under an in-process mutex and an exclusive lock on path+".lock".
func Append(ctx context.Context, path string, r *model.Reservation) error {
	unlock, err := lockPath(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	records, err := Load(path)
	if err != nil {
		return err
	}
	records = append(records, NewRecord(r))
	return Save(path, records)
}

func lockPath(ctx context.Context, path string) (func(), error) {
	mu, _ := pathLocks.LoadOrStore(path, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()

	fileLock := flock.New(path + ".lock")
	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		mu.(*sync.Mutex).Unlock()
		if err == nil {
			err = ctx.Err()
		}
		return nil, fmt.Errorf("%w: lock %s: %w", apperrors.ErrIOFailure, path, err)
	}

	return func() {
		_ = fileLock.Unlock()
		mu.(*sync.Mutex).Unlock()
	}, nil
}

// CSVRepository files reservations into one CSV per reservations day.
type CSVRepository struct {
	dir    string
	prefix string
	log    *logger.Logger
}

func NewCSVRepository(dir, prefix string, log *logger.Logger) (*CSVRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", apperrors.ErrIOFailure, dir, err)
	}
	return &CSVRepository{dir: dir, prefix: prefix, log: log}, nil
}

func (r *CSVRepository) Append(ctx context.Context, res *model.Reservation) error {
	path := DailyPath(r.dir, r.prefix, reservationsDay(res))
	if err := Append(ctx, path, res); err != nil {
		r.log.Error("Failed to append reservation",
			"path", path,
			"reservation_id", res.ID,
			"error", err,
		)
		return err
	}
	r.log.Debug("Reservation appended", "path", path, "reservation_id", res.ID)
	return nil
}

func (r *CSVRepository) List(ctx context.Context, day time.Time) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Load(DailyPath(r.dir, r.prefix, day))
}

// Ping checks the reservations directory is still there and writable.
func (r *CSVRepository) Ping(ctx context.Context) error {
	f, err := os.CreateTemp(r.dir, ".ping-*")
	if err != nil {
		return fmt.Errorf("%w: %s not writable: %w", apperrors.ErrIOFailure, r.dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
