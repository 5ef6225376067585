// Package jsonstore provides repository implementations backed by in-memory
// collections mirrored to JSON files. It stands in for a real datastore when
// no Postgres DSN is configured: every mutation rewrites the full collection,
// load failures fall back silently to an empty collection, and concurrent
// processes sharing the same files are last-writer-wins.
package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-portal/internal/config"
	"github.com/spec-kit/complaint-portal/internal/domain"
)

const (
	ticketsFile  = "tickets.json"
	commentsFile = "comments.json"
	profilesFile = "profiles.json"
)

// Store owns the canonical collections. Repositories hand out copies only.
type Store struct {
	mu     sync.Mutex
	logger *zap.Logger
	dir    string

	tickets  []domain.Ticket
	comments []domain.TicketComment
	profiles []domain.Profile
}

// Open loads the mirrored collections from the data directory. Read failures
// are logged and replaced with empty collections; there is no reconciliation
// between memory and disk beyond whole-file rewrites.
func Open(cfg config.StoreConfig, logger *zap.Logger) *Store {
	s := &Store{logger: logger, dir: cfg.DataDir}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Error("create data dir", zap.String("dir", cfg.DataDir), zap.Error(err))
	}

	var tickets []ticketRecord
	if s.load(ticketsFile, &tickets) {
		s.tickets = make([]domain.Ticket, 0, len(tickets))
		for _, r := range tickets {
			s.tickets = append(s.tickets, ticketFromRecord(r))
		}
	}
	var comments []commentRecord
	if s.load(commentsFile, &comments) {
		s.comments = make([]domain.TicketComment, 0, len(comments))
		for _, r := range comments {
			s.comments = append(s.comments, commentFromRecord(r))
		}
	}
	var profiles []profileRecord
	if s.load(profilesFile, &profiles) {
		s.profiles = make([]domain.Profile, 0, len(profiles))
		for _, r := range profiles {
			s.profiles = append(s.profiles, profileFromRecord(r))
		}
	}

	logger.Info("json store opened",
		zap.String("dir", cfg.DataDir),
		zap.Int("tickets", len(s.tickets)),
		zap.Int("comments", len(s.comments)),
		zap.Int("profiles", len(s.profiles)),
	)
	return s
}

// Tickets returns the ticket repository view of the store.
func (s *Store) Tickets() *TicketRepository { return &TicketRepository{store: s} }

// Comments returns the comment repository view of the store.
func (s *Store) Comments() *CommentRepository { return &CommentRepository{store: s} }

// Profiles returns the profile repository view of the store.
func (s *Store) Profiles() *ProfileRepository { return &ProfileRepository{store: s} }

// load decodes one collection file into dst. A missing file is a clean empty
// start; any other failure is logged and treated the same way.
func (s *Store) load(name string, dst any) bool {
	path := filepath.Join(s.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("load collection", zap.String("file", name), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Error("decode collection", zap.String("file", name), zap.Error(err))
		return false
	}
	return true
}

// persist rewrites one collection file. Failures are logged and swallowed:
// the in-memory state stays authoritative for the life of the process.
func (s *Store) persist(name string, records any) {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		s.logger.Error("encode collection", zap.String("file", name), zap.Error(err))
		return
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		s.logger.Error("save collection", zap.String("file", name), zap.Error(err))
	}
}

func (s *Store) persistTickets() {
	records := make([]ticketRecord, 0, len(s.tickets))
	for i := range s.tickets {
		records = append(records, ticketToRecord(&s.tickets[i]))
	}
	s.persist(ticketsFile, records)
}

func (s *Store) persistComments() {
	records := make([]commentRecord, 0, len(s.comments))
	for i := range s.comments {
		records = append(records, commentToRecord(&s.comments[i]))
	}
	s.persist(commentsFile, records)
}

func (s *Store) persistProfiles() {
	records := make([]profileRecord, 0, len(s.profiles))
	for i := range s.profiles {
		records = append(records, profileToRecord(&s.profiles[i]))
	}
	s.persist(profilesFile, records)
}
