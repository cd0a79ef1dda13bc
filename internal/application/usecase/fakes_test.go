package usecase

// Dobles en memoria de los puertos de persistencia. Los tests de los casos
// de uso no tocan PostgreSQL: el contrato de cada puerto (nil,nil para
// "no existe", errores centinela en duplicados) se simula aquí.

import (
	"context"

	"github.com/jhoicas/registro-libros/internal/domain"
	"github.com/jhoicas/registro-libros/internal/domain/entity"
	"github.com/jhoicas/registro-libros/internal/domain/repository"
)

// ── BookRepository ────────────────────────────────────────────────────────────

type fakeBookRepo struct {
	books     []*entity.Book
	listCalls int
	failWith  error
}

func (f *fakeBookRepo) List(ctx context.Context) ([]*entity.Book, error) {
	f.listCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.books, nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, b := range f.books {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookRepo) Create(ctx context.Context, book *entity.Book) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, b := range f.books {
		if b.ID == book.ID {
			return domain.ErrDuplicateBookID
		}
	}
	copied := *book
	f.books = append(f.books, &copied)
	return nil
}

func (f *fakeBookRepo) Update(ctx context.Context, book *entity.Book) error {
	for i, b := range f.books {
		if b.ID == book.ID {
			copied := *book
			f.books[i] = &copied
		}
	}
	return nil
}

func (f *fakeBookRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for _, b := range f.books {
		if b.ID == id {
			b.Status = status
		}
	}
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id string) error {
	out := f.books[:0]
	for _, b := range f.books {
		if b.ID != id {
			out = append(out, b)
		}
	}
	f.books = out
	return nil
}

var _ repository.BookRepository = (*fakeBookRepo)(nil)

// ── MovementRepository ────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.Movement
	history   []repository.HistoryResult
	lastList  repository.HistoryFilter
	failWith  error
}

func (f *fakeMovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if f.failWith != nil {
		return f.failWith
	}
	copied := *m
	f.movements = append(f.movements, &copied)
	return nil
}

func (f *fakeMovementRepo) ListHistory(ctx context.Context, filter repository.HistoryFilter) ([]repository.HistoryResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastList = filter
	return f.history, nil
}

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directamente contra los fakes; si el
// callback falla simula el rollback restaurando el estado previo.
type fakeTxRunner struct {
	books     *fakeBookRepo
	movements *fakeMovementRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	books repository.BookRepository,
	movements repository.MovementRepository,
) error) error {
	prevBooks := append([]*entity.Book(nil), f.books.books...)
	prevMovs := append([]*entity.Movement(nil), f.movements.movements...)
	if err := fn(f.books, f.movements); err != nil {
		f.books.books = prevBooks
		f.movements.movements = prevMovs
		return err
	}
	return nil
}

var _ TxRunner = (*fakeTxRunner)(nil)

// ── ReportRepository ──────────────────────────────────────────────────────────

type fakeReportRepo struct {
	counts   repository.DashboardCounts
	activity []repository.ActivityResult
	monthly  []repository.MonthlyMovementResult
	statuses []repository.StatusCountResult
	failWith error
}

func (f *fakeReportRepo) GetDashboardCounts(ctx context.Context) (repository.DashboardCounts, error) {
	if f.failWith != nil {
		return repository.DashboardCounts{}, f.failWith
	}
	return f.counts, nil
}

func (f *fakeReportRepo) GetRecentActivity(ctx context.Context, limit int) ([]repository.ActivityResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if len(f.activity) > limit {
		return f.activity[:limit], nil
	}
	return f.activity, nil
}

func (f *fakeReportRepo) GetMonthlyMovements(ctx context.Context) ([]repository.MonthlyMovementResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.monthly, nil
}

func (f *fakeReportRepo) GetStatusCounts(ctx context.Context) ([]repository.StatusCountResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.statuses, nil
}

var _ repository.ReportRepository = (*fakeReportRepo)(nil)

// ── UserRepository ────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users    []*entity.User
	failWith error
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.users, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrDuplicateCredential
		}
	}
	copied := *user
	f.users = append(f.users, &copied)
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	out := f.users[:0]
	for _, u := range f.users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	f.users = out
	return nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
