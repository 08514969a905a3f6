package tracker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"lifetracker/internal/models"
	"lifetracker/internal/providers"
	"lifetracker/internal/services"
	"lifetracker/internal/structures"
	"lifetracker/internal/tracker/interfaces"
)

const JobArchive = "reminder_archive"

// ArchiveFile is the on-disk format for one calendar day of aged
// reminder records.
type ArchiveFile struct {
	Day     string                  `json:"day"`
	Records []models.ReminderRecord `json:"records"`
}

// Archive moves reminder records past the retention window out of the
// live ledger into per-day compressed files. Archived records are
// never read back by the jobs; the completion job only ever sees
// today's records by contract.
type Archive struct {
	dir        string
	retention  time.Duration
	service    services.TrackerServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	now        func() time.Time
}

func NewArchive(conf *structures.Config, service services.TrackerServiceInterface, compressor interfaces.CompressorInterface, logger providers.Logger) *Archive {
	return &Archive{
		dir:        conf.Archive.Dir,
		retention:  conf.Archive.Retention,
		service:    service,
		compressor: compressor,
		logger:     logger,
		now:        time.Now,
	}
}

// Run prunes and archives in one pass. Store pruning happens first;
// an archival write failure loses history, never correctness.
func (a *Archive) Run() {
	if a.dir == "" {
		return
	}

	cutoff := models.Midnight(a.now())
	if a.retention > 0 {
		cutoff = cutoff.Add(-a.retention)
	}

	records := a.service.PruneReminders(cutoff)
	if len(records) == 0 {
		return
	}

	byDay := make(map[string][]models.ReminderRecord)
	for _, rec := range records {
		day := rec.Day()
		byDay[day] = append(byDay[day], rec)
	}

	for day, recs := range byDay {
		if err := a.appendDay(day, recs); err != nil {
			a.logger.Errorf(providers.TypeJob, "Failed to archive %d records for %s: %s", len(recs), day, err)
			continue
		}
		a.logger.Infof(providers.TypeJob, "Archived %d reminder records for %s", len(recs), day)
	}
}

func (a *Archive) appendDay(day string, recs []models.ReminderRecord) error {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(a.dir, "reminders-"+day+".json.zst")
	af := ArchiveFile{Day: day}

	if data, err := os.ReadFile(path); err == nil {
		raw, err := a.compressor.Decompress(data)
		if err != nil {
			return fmt.Errorf("decompress existing archive %s: %w", path, err)
		}
		if err := json.Unmarshal(raw, &af); err != nil {
			return fmt.Errorf("parse existing archive %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	af.Records = append(af.Records, recs...)

	raw, err := json.Marshal(af)
	if err != nil {
		return err
	}
	data, err := a.compressor.Compress(raw)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
