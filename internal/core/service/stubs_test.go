package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/projethub/projethub/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type memUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		verr := domain.NewValidationError()
		if u.Pseudo == user.Pseudo {
			verr.Add("pseudo", "pseudo is already taken")
		}
		if u.Email == user.Email {
			verr.Add("email", "email is already registered")
		}
		if verr.HasErrors() {
			return nil, verr
		}
	}

	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			clone := *u
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type memProjetRepo struct {
	projets   map[string]*domain.Projet
	seq       int
	deleteErr error
}

func newMemProjetRepo() *memProjetRepo {
	return &memProjetRepo{projets: make(map[string]*domain.Projet)}
}

func (r *memProjetRepo) Create(_ context.Context, projet *domain.Projet) (*domain.Projet, error) {
	r.seq++
	clone := *projet
	clone.ID = fmt.Sprintf("projet-%d", r.seq)
	r.projets[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memProjetRepo) FindByID(_ context.Context, id string) (*domain.Projet, error) {
	p, ok := r.projets[id]
	if !ok {
		return nil, domain.ErrProjetNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *memProjetRepo) sorted() []*domain.Projet {
	out := make([]*domain.Projet, 0, len(r.projets))
	for _, p := range r.projets {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *memProjetRepo) FindPage(_ context.Context, skip, limit int64) ([]*domain.Projet, error) {
	all := r.sorted()
	if skip >= int64(len(all)) {
		return nil, nil
	}
	end := skip + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[skip:end], nil
}

func (r *memProjetRepo) FindByAuthor(_ context.Context, authorID string) ([]*domain.Projet, error) {
	var out []*domain.Projet
	for _, p := range r.sorted() {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProjetRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.projets)), nil
}

func (r *memProjetRepo) Update(_ context.Context, projet *domain.Projet) error {
	if _, ok := r.projets[projet.ID]; !ok {
		return domain.ErrProjetNotFound
	}
	clone := *projet
	r.projets[projet.ID] = &clone
	return nil
}

func (r *memProjetRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.projets[id]; !ok {
		return domain.ErrProjetNotFound
	}
	delete(r.projets, id)
	return nil
}

type memReviewRepo struct {
	reviews           map[string]*domain.Review
	seq               int
	deleteByProjetErr error
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *memReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	r.seq++
	clone := *review
	clone.ID = fmt.Sprintf("review-%d", r.seq)
	r.reviews[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	clone := *rev
	return &clone, nil
}

func (r *memReviewRepo) FindByProjet(_ context.Context, projetID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rev := range r.reviews {
		if rev.ProjetID == projetID {
			clone := *rev
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memReviewRepo) Update(_ context.Context, review *domain.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return domain.ErrReviewNotFound
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *memReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *memReviewRepo) DeleteByProjet(_ context.Context, projetID string) (int64, error) {
	if r.deleteByProjetErr != nil {
		return 0, r.deleteByProjetErr
	}
	var n int64
	for id, rev := range r.reviews {
		if rev.ProjetID == projetID {
			delete(r.reviews, id)
			n++
		}
	}
	return n, nil
}

type memCategoryRepo struct {
	byName map[string]*domain.Category
	names  []string
}

func newMemCategoryRepo(categories ...*domain.Category) *memCategoryRepo {
	r := &memCategoryRepo{byName: make(map[string]*domain.Category)}
	for _, c := range categories {
		r.byName[c.Name] = c
		r.names = append(r.names, c.Name)
	}
	return r
}

func (r *memCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	return r.byName[name], nil
}

func (r *memCategoryRepo) DistinctNames(_ context.Context) ([]string, error) {
	return r.names, nil
}

// recordingAudit captures audit entries synchronously.
type recordingAudit struct {
	entries []domain.AuditEntry
}

func (a *recordingAudit) Record(entry domain.AuditEntry) {
	a.entries = append(a.entries, entry)
}
