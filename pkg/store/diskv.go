package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/whittle/pkg/task"
)

// Persistence defines the durable storage contract for tasks and the
// last-active-date marker. Read and write failures are the caller's to log;
// nothing here retries.
type Persistence interface {
	Tasks(ctx context.Context) []*task.Task
	Store(t *task.Task) error
	Delete(id string) error
	LastActiveDate() (string, bool)
	SetLastActiveDate(day string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

const (
	layoutISO = "2006-01-02"

	taskBucket = "tasks"
	metaBucket = "meta"

	lastActiveKey = metaBucket + "-lastactive"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*task.Task, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	t := &task.Task{}
	if err := json.Unmarshal(val, t); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	t.ID = pk.FileName
	// Never trust a persisted weight; an earlier weighting scheme may have
	// written it.
	t.Reweigh()
	return t, nil
}

func (p *persistence) Tasks(ctx context.Context) []*task.Task {
	all := make([]*task.Task, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); len(pk.Path) == 0 || pk.Path[0] != taskBucket {
			continue
		}
		t, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		all = append(all, t)
	}
	sortTasks(all)
	return all
}

func (p *persistence) Store(t *task.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(t.ID), data)
}

func (p *persistence) Delete(id string) error {
	return p.d.Erase(toKey(id))
}

func (p *persistence) LastActiveDate() (string, bool) {
	val, err := p.d.Read(lastActiveKey)
	if err != nil {
		return "", false
	}
	day := strings.TrimSpace(string(val))
	if day == "" {
		return "", false
	}
	return day, true
}

func (p *persistence) SetLastActiveDate(day string) error {
	if _, err := time.Parse(layoutISO, day); err != nil {
		return fmt.Errorf("store: bad date %q: %w", day, err)
	}
	return p.d.Write(lastActiveKey, []byte(day))
}

// sortTasks orders most recently created first so fresh tasks lead the list.
func sortTasks(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		left := tasks[i]
		right := tasks[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Created.Time
		rt := right.Created.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.After(rt)
		}
	})
}

// keyToPathTransform maps `bucket-id` to a bucket directory and file. Only the
// first dash splits; task ids are uuids and contain dashes of their own.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		return &diskv.PathKey{Path: []string{}, FileName: parts[0]}
	}
	return &diskv.PathKey{
		Path:     parts[:1],
		FileName: parts[1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func toKey(id string) string {
	return fmt.Sprintf("%s-%s", taskBucket, id)
}
