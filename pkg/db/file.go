package db

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/xerrors"
)

const (
	operatorsFile = "admins.json"
	chatsFile     = "chats.txt"
	welcomeFile   = "welcome.json"
)

// FileOperators keeps the admin id set in a JSON array on disk, rewritten
// wholesale on every mutation. The owner id comes from config and is never
// written to the file.
type FileOperators struct {
	mu    sync.Mutex
	path  string
	owner int
	ids   map[int]bool
}

func NewFileOperators(dataDir string, owner int) (IOperators, error) {
	o := &FileOperators{
		path:  filepath.Join(dataDir, operatorsFile),
		owner: owner,
		ids:   map[int]bool{},
	}
	raw, err := ioutil.ReadFile(o.path)
	if err != nil {
		if os.IsNotExist(err) {
			return o, nil
		}
		return nil, xerrors.Errorf("read %s: %w", o.path, err)
	}
	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, xerrors.Errorf("parse %s: %w", o.path, err)
	}
	for _, id := range ids {
		o.ids[id] = true
	}
	return o, nil
}

func (o *FileOperators) Add(ctx context.Context, userID int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if userID == o.owner || o.ids[userID] {
		return nil
	}
	o.ids[userID] = true
	return o.save()
}

func (o *FileOperators) Remove(ctx context.Context, userID int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if userID == o.owner || !o.ids[userID] {
		return nil
	}
	delete(o.ids, userID)
	return o.save()
}

func (o *FileOperators) Contains(ctx context.Context, userID int) bool {
	if userID == o.owner {
		return true
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ids[userID]
}

func (o *FileOperators) List(ctx context.Context) ([]int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := []int{o.owner}
	for id := range o.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out, nil
}

func (o *FileOperators) Owner() int {
	return o.owner
}

// save is called with o.mu held.
func (o *FileOperators) save() error {
	ids := make([]int, 0, len(o.ids))
	for id := range o.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	raw, err := json.Marshal(ids)
	if err != nil {
		return xerrors.Errorf("marshal admins: %w", err)
	}
	if err := ioutil.WriteFile(o.path, raw, 0644); err != nil {
		return xerrors.Errorf("write %s: %w", o.path, err)
	}
	return nil
}

// FileChats keeps known chat ids as a newline-delimited list on disk.
type FileChats struct {
	mu   sync.Mutex
	path string
	ids  map[int64]bool
}

func NewFileChats(dataDir string) (IChats, error) {
	c := &FileChats{
		path: filepath.Join(dataDir, chatsFile),
		ids:  map[int64]bool{},
	}
	raw, err := ioutil.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, xerrors.Errorf("read %s: %w", c.path, err)
	}
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, xerrors.Errorf("parse chat id %q in %s: %w", line, c.path, err)
		}
		c.ids[id] = true
	}
	return c, nil
}

func (c *FileChats) Add(ctx context.Context, chatID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ids[chatID] {
		return nil
	}
	c.ids[chatID] = true
	return c.save()
}

func (c *FileChats) List(ctx context.Context) ([]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]int64, 0, len(c.ids))
	for id := range c.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// save is called with c.mu held.
func (c *FileChats) save() error {
	var b strings.Builder
	ids := make([]int64, 0, len(c.ids))
	for id := range c.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		b.WriteString(strconv.FormatInt(id, 10))
		b.WriteString("\n")
	}
	if err := ioutil.WriteFile(c.path, []byte(b.String()), 0644); err != nil {
		return xerrors.Errorf("write %s: %w", c.path, err)
	}
	return nil
}

// FileWelcome keeps per-chat welcome templates in a JSON object on disk.
type FileWelcome struct {
	mu    sync.Mutex
	path  string
	texts map[string]string
}

func NewFileWelcome(dataDir string) (IWelcome, error) {
	w := &FileWelcome{
		path:  filepath.Join(dataDir, welcomeFile),
		texts: map[string]string{},
	}
	raw, err := ioutil.ReadFile(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return w, nil
		}
		return nil, xerrors.Errorf("read %s: %w", w.path, err)
	}
	if err := json.Unmarshal(raw, &w.texts); err != nil {
		return nil, xerrors.Errorf("parse %s: %w", w.path, err)
	}
	return w, nil
}

func (w *FileWelcome) Set(ctx context.Context, chatID int64, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.texts[strconv.FormatInt(chatID, 10)] = text
	raw, err := json.Marshal(w.texts)
	if err != nil {
		return xerrors.Errorf("marshal welcome: %w", err)
	}
	if err := ioutil.WriteFile(w.path, raw, 0644); err != nil {
		return xerrors.Errorf("write %s: %w", w.path, err)
	}
	return nil
}

func (w *FileWelcome) Get(ctx context.Context, chatID int64) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	text, ok := w.texts[strconv.FormatInt(chatID, 10)]
	if !ok {
		return "", ErrNotFound
	}
	return text, nil
}
