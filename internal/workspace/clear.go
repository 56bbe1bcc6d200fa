package workspace

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"rune/internal/logging"
	"rune/internal/services"
)

// Reset empties dir, creating it when missing. Everything inside is removed.
// The filesystem root and the user's home directory are refused.
func Reset(dir string, logger *slog.Logger) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return services.Wrap(services.ErrValidation, "workspace", "reset", "empty directory", nil)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return services.Wrap(services.ErrIO, "workspace", "reset", dir, err)
	}
	if refused(abs) {
		return services.Wrap(services.ErrValidation, "workspace", "reset", "refusing to clear "+abs, nil)
	}

	entries, err := os.ReadDir(abs)
	if err != nil && !os.IsNotExist(err) {
		return services.Wrap(services.ErrIO, "workspace", "reset", abs, err)
	}
	removed := 0
	for _, entry := range entries {
		path := filepath.Join(abs, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			logging.WarnWithContext(logger, "failed to clear directory entry", "workspace_clear_failed",
				logging.String("path", path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check directory permissions"),
				logging.String(logging.FieldImpact, "stale files may mix with new output"),
			)
			return services.Wrap(services.ErrIO, "workspace", "reset", path, err)
		}
		removed++
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return services.Wrap(services.ErrIO, "workspace", "reset", abs, err)
	}
	if logger != nil && removed > 0 {
		logger.Debug("cleared directory",
			logging.String("path", abs),
			logging.Int("removed", removed),
			logging.String(logging.FieldEventType, "workspace_cleared"),
		)
	}
	return nil
}

func refused(abs string) bool {
	if abs == filepath.Dir(abs) {
		return true
	}
	if home, err := os.UserHomeDir(); err == nil && filepath.Clean(home) == abs {
		return true
	}
	return false
}

// FileInfo describes one file a run produced.
type FileInfo struct {
	Name    string
	Path    string
	ModTime time.Time
	Size    int64
}

// ListFiles returns the regular files directly inside dir, sorted by name.
// A missing directory yields no entries.
func ListFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, services.Wrap(services.ErrIO, "workspace", "list", dir, err)
	}
	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:    entry.Name(),
			Path:    filepath.Join(dir, entry.Name()),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// DirSize totals the regular files under path, best effort.
func DirSize(path string) int64 {
	var size int64
	_ = filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size
}

// Overlaps reports whether a and b are the same directory or one contains
// the other. Each is cleared independently, so neither may sit inside the
// other or hold the other's lock file.
func Overlaps(a, b string) bool {
	absA, errA := filepath.Abs(strings.TrimSpace(a))
	absB, errB := filepath.Abs(strings.TrimSpace(b))
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return within(absA, absB) || within(absB, absA)
}

// within reports whether child is parent or lies below it.
func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
