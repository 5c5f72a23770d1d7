// Package backup keeps timestamped copies of the settings file so a bad
// edit or an `init --force` can be undone.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/wagetrack/internal/clock"
	"github.com/julianstephens/wagetrack/internal/config"
	"github.com/julianstephens/wagetrack/internal/logger"
)

const (
	// MaxBackups is the number of settings backups kept after rotation.
	MaxBackups = 10
	DirName    = "backups"
	FilePrefix = "config-"
	FileSuffix = ".yaml"

	stampLayout = "20060102-150405"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	// Seq disambiguates backups taken within the same second.
	Seq  int
	Size int64
}

// Manager creates, lists and restores settings backups.
type Manager struct {
	settingsPath string
	backupDir    string
	clock        clock.Clock
}

// NewManager stores backups in a directory next to the settings file.
func NewManager(settingsPath string, c clock.Clock) *Manager {
	if c == nil {
		c = clock.RealClock{}
	}
	return &Manager{
		settingsPath: settingsPath,
		backupDir:    filepath.Join(filepath.Dir(settingsPath), DirName),
		clock:        c,
	}
}

func (m *Manager) Dir() string {
	return m.backupDir
}

// Create copies the current settings file into the backup directory and
// rotates old copies.
func (m *Manager) Create() (string, error) {
	return m.create(true)
}

func (m *Manager) create(rotate bool) (string, error) {
	if _, err := os.Stat(m.settingsPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("settings file does not exist: %s", m.settingsPath)
		}
		return "", err
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextPath()
	if err != nil {
		return "", err
	}
	if err := copyFile(m.settingsPath, path); err != nil {
		return "", fmt.Errorf("failed to copy settings: %w", err)
	}
	logger.Debug("Settings backup created", "path", path)

	if rotate {
		if err := m.rotate(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}
	return path, nil
}

func (m *Manager) nextPath() (string, error) {
	stamp := m.clock.Now().Format(stampLayout)
	path := filepath.Join(m.backupDir, FilePrefix+stamp+FileSuffix)
	for seq := 1; fileExists(path); seq++ {
		if seq > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", FilePrefix, stamp, seq, FileSuffix))
	}
	return path, nil
}

// List returns the backups, newest first. Files that do not follow the
// naming scheme are ignored.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, seq, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Seq:       seq,
			Size:      fi.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		if !backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Timestamp.After(backups[j].Timestamp)
		}
		return backups[i].Seq > backups[j].Seq
	})
	return backups, nil
}

func parseName(name string) (time.Time, int, bool) {
	if !strings.HasPrefix(name, FilePrefix) || !strings.HasSuffix(name, FileSuffix) {
		return time.Time{}, 0, false
	}
	rest := strings.TrimSuffix(strings.TrimPrefix(name, FilePrefix), FileSuffix)

	seq := 0
	if len(rest) > len(stampLayout) {
		if rest[len(stampLayout)] != '-' {
			return time.Time{}, 0, false
		}
		n, err := strconv.Atoi(rest[len(stampLayout)+1:])
		if err != nil || n < 1 {
			return time.Time{}, 0, false
		}
		seq = n
		rest = rest[:len(stampLayout)]
	}

	ts, err := time.ParseInLocation(stampLayout, rest, time.Local)
	if err != nil {
		return time.Time{}, 0, false
	}
	return ts, seq, true
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Resolve maps a bare backup filename to its path in the backup directory.
// Anything else is returned unchanged.
func (m *Manager) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	candidate := filepath.Join(m.backupDir, name)
	if fileExists(candidate) {
		return candidate
	}
	return name
}

// Restore replaces the settings file with a backup. The backup must load
// as valid settings, and the current file is backed up first. It returns
// the path of that safety copy, or "" when there was no settings file.
func (m *Manager) Restore(backupPath string) (string, error) {
	if !fileExists(backupPath) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if _, err := config.NewStore(backupPath).Load(); err != nil {
		return "", fmt.Errorf("backup file is invalid: %w", err)
	}

	var safety string
	if fileExists(m.settingsPath) {
		path, err := m.create(false)
		if err != nil {
			return "", fmt.Errorf("failed to back up current settings before restore: %w", err)
		}
		safety = path
	}

	if err := os.MkdirAll(filepath.Dir(m.settingsPath), 0700); err != nil {
		return safety, fmt.Errorf("failed to create config directory: %w", err)
	}
	tmp := m.settingsPath + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return safety, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.settingsPath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tmp, "error", rmErr)
		}
		return safety, fmt.Errorf("failed to restore settings: %w", err)
	}
	logger.Info("Settings restored from backup", "backup", backupPath)
	return safety, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
