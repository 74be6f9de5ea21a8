package services

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"dashd/internal/models"
	"dashd/internal/providers"
	"dashd/internal/structures"
)

// BoardAuthor is the single hardcoded user; the board carries no
// authentication.
const BoardAuthor = "admin"

type BoardServiceInterface interface {
	Load() error
	Save() error
	ListPosts() []*models.Post
	GetPost(id string) (*models.Post, bool)
	CreatePost(title, content string) *models.Post
	UpdatePost(id, title, content string) (*models.Post, bool)
	DeletePost(id string) bool
	Count() int
}

// BoardService keeps posts in a mutex-guarded map mirrored to one JSON
// file. Mutations write through; a failed write is logged and the
// in-memory state stays authoritative until the next save.
type BoardService struct {
	mu       sync.RWMutex
	posts    map[string]*models.Post
	filePath string
	logger   providers.Logger
	now      func() time.Time
}

func NewBoardService(conf *structures.Config, logger providers.Logger) BoardServiceInterface {
	path := conf.Board.FilePath
	if path == "" {
		path = "board-posts.json"
	}
	return &BoardService{
		posts:    make(map[string]*models.Post),
		filePath: path,
		logger:   logger,
		now:      time.Now,
	}
}

func (bs *BoardService) Load() error {
	data, err := os.ReadFile(bs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read board file %s: %w", bs.filePath, err)
	}

	var posts []*models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return fmt.Errorf("decode board file %s: %w", bs.filePath, err)
	}

	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.posts = make(map[string]*models.Post, len(posts))
	for _, p := range posts {
		bs.posts[p.ID] = p
	}
	return nil
}

func (bs *BoardService) Save() error {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return bs.saveLocked()
}

func (bs *BoardService) saveLocked() error {
	posts := make([]*models.Post, 0, len(bs.posts))
	for _, p := range bs.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.Before(posts[j].CreatedAt) })

	data, err := json.Marshal(posts)
	if err != nil {
		return err
	}

	tmpFile := bs.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpFile, bs.filePath)
}

// persist logs instead of surfacing: a lost board write is a known
// inconsistency window, recovered by the next mutation or shutdown save.
func (bs *BoardService) persist() {
	if err := bs.saveLocked(); err != nil {
		bs.logger.Errorf(providers.TypeApp, "Board persist failed: %s", err)
	}
}

func (bs *BoardService) ListPosts() []*models.Post {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	posts := make([]*models.Post, 0, len(bs.posts))
	for _, p := range bs.posts {
		cp := *p
		posts = append(posts, &cp)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts
}

// GetPost bumps the view counter as an unconditional write-after-read.
// The counter is display-only; racing readers may lose increments.
func (bs *BoardService) GetPost(id string) (*models.Post, bool) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	p, ok := bs.posts[id]
	if !ok {
		return nil, false
	}
	p.Views++
	bs.persist()
	cp := *p
	return &cp, true
}

func (bs *BoardService) CreatePost(title, content string) *models.Post {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	now := bs.now()
	p := &models.Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Author:    BoardAuthor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	bs.posts[p.ID] = p
	bs.persist()
	cp := *p
	return &cp
}

func (bs *BoardService) UpdatePost(id, title, content string) (*models.Post, bool) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	p, ok := bs.posts[id]
	if !ok {
		return nil, false
	}
	p.Title = title
	p.Content = content
	p.UpdatedAt = bs.now()
	bs.persist()
	cp := *p
	return &cp, true
}

func (bs *BoardService) DeletePost(id string) bool {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if _, ok := bs.posts[id]; !ok {
		return false
	}
	delete(bs.posts, id)
	bs.persist()
	return true
}

func (bs *BoardService) Count() int {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return len(bs.posts)
}
