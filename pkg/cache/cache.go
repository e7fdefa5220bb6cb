package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	constant "liyu1981.xyz/seismic-telemetry-service/pkg/common"
	"liyu1981.xyz/seismic-telemetry-service/pkg/models"
)

// Backend reads and writes the serialized snapshot artifact.
type Backend interface {
	Name() string
	Read() (data []byte, found bool, err error)
	Write(data []byte) error
	Backup(data []byte, at time.Time) (ref string, err error)
	Remove() error
}

// Store persists the hub's snapshot buffer as one whole JSON document per
// write. There is no partial update; the latest write wins.
type Store struct {
	backend Backend
}

func GetStore(backend Backend) *Store {
	var logger = constant.GetLogger()
	logger.Info("Snapshot store ready with backend:", zap.String("backend", backend.Name()))
	return &Store{backend: backend}
}

// Load reads the persisted snapshot. A missing artifact is not an error and
// yields an empty buffer.
func (s *Store) Load() ([]models.EnrichedRecord, error) {
	data, found, err := s.backend.Read()
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	if !found {
		return nil, nil
	}

	var records []models.EnrichedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return records, nil
}

func (s *Store) Persist(records []models.EnrichedRecord) error {
	if records == nil {
		records = []models.EnrichedRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.backend.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Clear backs up the given pre-clear records under a timestamped name, then
// removes the primary artifact. The backup reference is returned.
func (s *Store) Clear(records []models.EnrichedRecord) (string, error) {
	if records == nil {
		records = []models.EnrichedRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode snapshot backup: %w", err)
	}
	ref, err := s.backend.Backup(data, time.Now())
	if err != nil {
		return "", fmt.Errorf("write snapshot backup: %w", err)
	}
	if err := s.backend.Remove(); err != nil {
		return "", fmt.Errorf("remove snapshot: %w", err)
	}
	return ref, nil
}

const backupStampLayout = "20060102-150405"

type fileBackend struct {
	path string
}

// UseSnapshotFile stores the snapshot at the path named by
// SEISMIC_SNAPSHOT_PATH, falling back to snapshot.json in the working
// directory.
func UseSnapshotFile() Backend {
	var path string
	var found bool
	if path, found = os.LookupEnv(constant.EnvKeySeismicSnapshotPath); !found {
		path = "snapshot.json"
	}
	return UseSnapshotFileAt(path)
}

func UseSnapshotFileAt(path string) Backend {
	return &fileBackend{path: path}
}

func (b *fileBackend) Name() string {
	return fmt.Sprintf("file(%s)", b.path)
}

func (b *fileBackend) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *fileBackend) Write(data []byte) error {
	return os.WriteFile(b.path, data, 0o644)
}

func (b *fileBackend) Backup(data []byte, at time.Time) (string, error) {
	ref := fmt.Sprintf("%s.%s.bak", b.path, at.Format(backupStampLayout))
	if err := os.WriteFile(ref, data, 0o644); err != nil {
		return "", err
	}
	return ref, nil
}

func (b *fileBackend) Remove() error {
	err := os.Remove(b.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

type memoryBackend struct {
	mu      sync.Mutex
	data    []byte
	found   bool
	backups map[string][]byte
}

// UseMemorySnapshot keeps everything in process memory, for tests.
func UseMemorySnapshot() Backend {
	return &memoryBackend{backups: make(map[string][]byte)}
}

func (b *memoryBackend) Name() string {
	return "memory"
}

func (b *memoryBackend) Read() ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.found {
		return nil, false, nil
	}
	return b.data, true, nil
}

func (b *memoryBackend) Write(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = data
	b.found = true
	return nil
}

func (b *memoryBackend) Backup(data []byte, at time.Time) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ref := fmt.Sprintf("memory.%s.bak", at.Format(backupStampLayout))
	b.backups[ref] = data
	return ref, nil
}

func (b *memoryBackend) Remove() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
	b.found = false
	return nil
}
