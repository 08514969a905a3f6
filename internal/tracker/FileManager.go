package tracker

import (
	"os"

	json "github.com/goccy/go-json"

	"lifetracker/internal/models"
	"lifetracker/internal/providers"
	"lifetracker/internal/services"
	"lifetracker/internal/tracker/interfaces"
)

// FileManager persists the four ledgers as one zstd-compressed JSON
// document, written atomically (tmp file, fsync, rename).
type FileManager struct {
	service    services.TrackerServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.TrackerServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	storage := f.service.GetStorage()

	jsonData, err := json.Marshal(storage)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// LoadFromFile restores the ledgers from disk. A missing file is a
// fresh start, not an error.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var storage models.Storage
	if err := json.Unmarshal(decompressedData, &storage); err != nil {
		f.logger.Warnf(providers.TypeApp, "Persisted state unreadable, starting empty: %s", err)
		return err
	}

	f.service.PutStorage(&storage)
	return nil
}

func (f *FileManager) Close() {
	f.compressor.Close()
}
