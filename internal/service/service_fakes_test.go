package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"fashion-buddy-be/internal/constant"
	"fashion-buddy-be/internal/dto"
	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/internal/repository/contract"
	"fashion-buddy-be/internal/repository/specification"
	"fashion-buddy-be/internal/repository/unitofwork"
	"fashion-buddy-be/pkg/reasoning"
)

// In-memory repository fakes. The bespoke finder methods carry the
// filtering, so the fakes never need to interpret GORM specifications.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindById(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phoneNumber string) (*entity.User, error) {
	for _, u := range r.users {
		if u.PhoneNumber == phoneNumber {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeSessionRepo struct {
	sessions   []*entity.Session
	failCreate bool
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	if r.failCreate {
		return fmt.Errorf("session insert failed")
	}
	cp := *session
	r.sessions = append(r.sessions, &cp)
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, session *entity.Session) error {
	for i, s := range r.sessions {
		if s.Id == session.Id {
			cp := *session
			r.sessions[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("session %s not found", session.Id)
}

func (r *fakeSessionRepo) FindById(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	for _, s := range r.sessions {
		if s.Id == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindActiveByUser(_ context.Context, userId uuid.UUID) (*entity.Session, error) {
	var candidates []*entity.Session
	for _, s := range r.sessions {
		if s.UserId == userId && s.Status == constant.SessionStatusActive {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
	})
	cp := *candidates[0]
	return &cp, nil
}

func (r *fakeSessionRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Session, error) {
	out := make([]*entity.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type fakeImageRepo struct {
	images []*entity.Image
}

func (r *fakeImageRepo) Create(_ context.Context, image *entity.Image) error {
	cp := *image
	r.images = append(r.images, &cp)
	return nil
}

func (r *fakeImageRepo) FindExpired(_ context.Context, now time.Time) ([]*entity.Image, error) {
	var out []*entity.Image
	for _, img := range r.images {
		if img.ExpiresAt.Before(now) {
			cp := *img
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeImageRepo) FindBySessionAndType(_ context.Context, sessionId uuid.UUID, imageType string) ([]*entity.Image, error) {
	var out []*entity.Image
	for _, img := range r.images {
		if img.SessionId == sessionId && img.ImageType == imageType {
			cp := *img
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeImageRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Image, error) {
	out := make([]*entity.Image, 0, len(r.images))
	for _, img := range r.images {
		cp := *img
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeImageRepo) DeleteAllByIds(_ context.Context, ids []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := r.images[:0]
	for _, img := range r.images {
		if !drop[img.Id] {
			kept = append(kept, img)
		}
	}
	r.images = kept
	return nil
}

type fakeColorAnalysisRepo struct {
	analyses []*entity.ColorAnalysis
}

func (r *fakeColorAnalysisRepo) Create(_ context.Context, analysis *entity.ColorAnalysis) error {
	cp := *analysis
	r.analyses = append(r.analyses, &cp)
	return nil
}

func (r *fakeColorAnalysisRepo) FindLatestBySession(_ context.Context, sessionId uuid.UUID) (*entity.ColorAnalysis, error) {
	var latest *entity.ColorAnalysis
	for _, a := range r.analyses {
		if a.SessionId != sessionId {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeColorAnalysisRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.ColorAnalysis, error) {
	out := make([]*entity.ColorAnalysis, 0, len(r.analyses))
	for _, a := range r.analyses {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

type fakeShoppingRepo struct {
	recs []*entity.ShoppingRecommendation
}

func (r *fakeShoppingRepo) Create(_ context.Context, rec *entity.ShoppingRecommendation) error {
	cp := *rec
	r.recs = append(r.recs, &cp)
	return nil
}

func (r *fakeShoppingRepo) FindById(_ context.Context, id uuid.UUID) (*entity.ShoppingRecommendation, error) {
	for _, rec := range r.recs {
		if rec.Id == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeShoppingRepo) FindAllBySession(_ context.Context, sessionId uuid.UUID) ([]*entity.ShoppingRecommendation, error) {
	var out []*entity.ShoppingRecommendation
	for _, rec := range r.recs {
		if rec.SessionId == sessionId {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeUnitOfWork struct {
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	images   *fakeImageRepo
	analyses *fakeColorAnalysisRepo
	shopping *fakeShoppingRepo

	begun      int
	committed  int
	rolledBack int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users:    newFakeUserRepo(),
		sessions: &fakeSessionRepo{},
		images:   &fakeImageRepo{},
		analyses: &fakeColorAnalysisRepo{},
		shopping: &fakeShoppingRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(context.Context) error { u.begun++; return nil }

func (u *fakeUnitOfWork) Commit() error {
	u.committed++
	return nil
}

// Rollback only counts when no commit landed first, mirroring the real
// implementation where a committed transaction leaves nothing to roll back.
func (u *fakeUnitOfWork) Rollback() error {
	if u.committed < u.begun {
		u.rolledBack++
	}
	return nil
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return u.users }
func (u *fakeUnitOfWork) SessionRepository() contract.SessionRepository {
	return u.sessions
}
func (u *fakeUnitOfWork) ImageRepository() contract.ImageRepository { return u.images }
func (u *fakeUnitOfWork) ColorAnalysisRepository() contract.ColorAnalysisRepository {
	return u.analyses
}
func (u *fakeUnitOfWork) ShoppingRepository() contract.ShoppingRepository {
	return u.shopping
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{uow: newFakeUnitOfWork()}
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// capturePublisher records every outbound message instead of delivering.

type capturePublisher struct {
	published []dto.OutboundMessage
}

func (p *capturePublisher) Publish(_ context.Context, payload []byte) error {
	var msg dto.OutboundMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	p.published = append(p.published, msg)
	return nil
}

// scriptedGateway answers with canned replies and records what it was asked.

type scriptedGateway struct {
	replies  []reasoning.ReplyResult
	analysis *reasoning.SkinToneAnalysis
	err      error
	contents []reasoning.InboundContent
	contexts []reasoning.SessionContext
}

func (g *scriptedGateway) ClassifySkinTone(context.Context, []string) (*reasoning.SkinToneAnalysis, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.analysis, nil
}

func (g *scriptedGateway) GenerateReply(_ context.Context, content reasoning.InboundContent, sessionCtx reasoning.SessionContext) (*reasoning.ReplyResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.contents = append(g.contents, content)
	g.contexts = append(g.contexts, sessionCtx)
	reply := g.replies[0]
	if len(g.replies) > 1 {
		g.replies = g.replies[1:]
	}
	return &reply, nil
}

// fakeObjectStore keeps objects in a map and serves stable URLs.

type fakeObjectStore struct {
	objects map[string][]byte
	deleted []string
	failDel bool
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (s *fakeObjectStore) Put(_ context.Context, key string, data []byte, _ string) error {
	s.objects[key] = data
	return nil
}

func (s *fakeObjectStore) PresignedURL(_ context.Context, key string) (string, error) {
	return "https://store.test/" + key, nil
}

func (s *fakeObjectStore) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	if s.failDel {
		return fmt.Errorf("delete failed for %s", key)
	}
	delete(s.objects, key)
	return nil
}

// nopLogger satisfies ILogger without output.

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
