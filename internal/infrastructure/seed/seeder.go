// Package seed regenera la base de datos con datos sintéticos de
// demostración. Solo para entornos de desarrollo y pruebas.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/registro-libros/internal/domain"
	"github.com/jhoicas/registro-libros/internal/domain/entity"
	"github.com/jhoicas/registro-libros/pkg/config"
	"github.com/jhoicas/registro-libros/pkg/logger"
)

var firstNames = []string{"Juan", "María", "José", "Ana", "Luis", "Laura", "Carlos", "Sofía", "Miguel", "Elena", "Pedro", "Isabel"}

var lastNames = []string{"García", "Rodríguez", "González", "Fernández", "López", "Martínez", "Sánchez", "Pérez", "Gómez", "Martín"}

type tome struct {
	Name   string
	Prefix string
}

var tomes = []tome{
	{"Nacimientos", "NAC"},
	{"Matrimonios", "MAT"},
	{"Defunciones", "DEF"},
	{"Índices", "IND"},
	{"Varios", "VAR"},
	{"Especiales", "ESP"},
}

var movementObservations = map[string][]string{
	entity.ActionRetiro: {
		"Retirado para trámite de certificación.",
		"Solicitado para consulta interna por funcionario.",
		"Retirado para digitalización de folio.",
		"Préstamo a oficina de archivo central.",
	},
	entity.ActionDevolucion: {
		"Devuelto a estantería principal.",
		"Finalizada consulta interna.",
		"Proceso de digitalización completado.",
	},
	entity.ActionArchivado: {
		"Archivado por antigüedad según normativa.",
		"Libro en mal estado, enviado a restauración.",
		"Movido a archivo histórico pasivo.",
	},
}

const (
	seedUserCount = 15
	seedBookCount = 500
)

// Result resume lo insertado por una corrida del seeder.
type Result struct {
	Users     int
	Books     int
	Movements int
}

// Message mensaje legible para la respuesta HTTP.
func (r Result) Message() string {
	return fmt.Sprintf("Se crearon %d usuarios, %d libros y %d movimientos.", r.Users, r.Books, r.Movements)
}

// Seeder borra y repuebla users, books y movements en una transacción.
type Seeder struct {
	pool *pgxpool.Pool
	cfg  *config.Config
	log  *logger.Logger
	rnd  *rand.Rand
}

// New construye el seeder.
func New(pool *pgxpool.Pool, cfg *config.Config, log *logger.Logger) *Seeder {
	return &Seeder{
		pool: pool,
		cfg:  cfg,
		log:  log,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run regenera los datos. Rechaza la operación en producción.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	if s.cfg.App.IsProduction() {
		return Result{}, domain.ErrSeedDisabled
	}

	users := s.generateUsers()
	books, movements := s.generateBooks(users)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE movements, books, users RESTART IDENTITY CASCADE`); err != nil {
		return Result{}, fmt.Errorf("truncate tables: %w", err)
	}

	if err := s.insertUsers(ctx, tx, users); err != nil {
		return Result{}, err
	}
	if err := s.insertBooks(ctx, tx, books); err != nil {
		return Result{}, err
	}
	if err := s.insertMovements(ctx, tx, movements); err != nil {
		return Result{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Result{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	res := Result{Users: len(users), Books: len(books), Movements: len(movements)}
	s.log.Info().
		Int("users", res.Users).
		Int("books", res.Books).
		Int("movements", res.Movements).
		Msg("Seed completado")
	return res, nil
}

func (s *Seeder) generateUsers() []*entity.User {
	now := time.Now()
	users := make([]*entity.User, 0, seedUserCount)
	users = append(users, &entity.User{
		ID:        fmt.Sprintf("user_%d", now.UnixMilli()),
		Name:      "Luis Pérez",
		Username:  "admin",
		Email:     "admin@registro.com",
		Role:      entity.RoleAdministrador,
		CreatedAt: now,
	})
	for i := 0; i < seedUserCount-1; i++ {
		first := s.pick(firstNames)
		last := s.pick(lastNames)
		username := fmt.Sprintf("%s%s%d", strings.ToLower(first), strings.ToLower(last[:1]), i)
		role := entity.RoleEstandar
		if s.rnd.Float64() > 0.8 {
			role = entity.RoleAdministrador
		}
		users = append(users, &entity.User{
			ID:        fmt.Sprintf("user_%d", now.UnixMilli()+int64(i)+1),
			Name:      first + " " + last,
			Username:  username,
			Email:     username + "@ejemplo.com",
			Role:      role,
			CreatedAt: now,
		})
	}
	return users
}

func (s *Seeder) generateBooks(users []*entity.User) ([]*entity.Book, []*entity.Movement) {
	now := time.Now()
	books := make([]*entity.Book, 0, seedBookCount)
	var movements []*entity.Movement

	for i := 0; i < seedBookCount; i++ {
		year := 1990 + s.rnd.Intn(now.Year()-1990+1)
		entryDate := s.randomDate(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), now)
		t := tomes[s.rnd.Intn(len(tomes))]

		book := &entity.Book{
			ID:        fmt.Sprintf("%d-%s-%04d", year, t.Prefix, i+1),
			Tomo:      t.Name,
			Year:      year,
			EntryDate: entryDate,
			Status:    entity.StatusDisponible,
		}
		books = append(books, book)

		obs := fmt.Sprintf("Creación inicial del libro de %s del año %d.", strings.ToLower(t.Name), year)
		userID := users[s.rnd.Intn(len(users))].ID
		movements = append(movements, &entity.Movement{
			DateTime:     entryDate,
			BookID:       book.ID,
			UserID:       &userID,
			NewState:     entity.StatusDisponible,
			Action:       entity.ActionCreacion,
			Observations: &obs,
		})

		movements = append(movements, s.simulateLifecycle(book, users, now)...)
	}
	return books, movements
}

// simulateLifecycle genera hasta 4 movimientos válidos según las reglas
// de transición y deja el libro en su estado final.
func (s *Seeder) simulateLifecycle(book *entity.Book, users []*entity.User, now time.Time) []*entity.Movement {
	var out []*entity.Movement
	status := entity.StatusDisponible
	lastDate := book.EntryDate

	n := s.rnd.Intn(5)
	for j := 0; j < n; j++ {
		moveDate := s.randomDate(lastDate, now)
		lastDate = moveDate
		userID := users[s.rnd.Intn(len(users))].ID

		switch status {
		case entity.StatusDisponible:
			action := entity.ActionRetiro
			if s.rnd.Float64() <= 0.3 {
				action = entity.ActionArchivado
			}
			next, _ := entity.ResultingStatus(status, action)
			m := &entity.Movement{
				DateTime:      moveDate,
				BookID:        book.ID,
				UserID:        &userID,
				PreviousState: strPtr(status),
				NewState:      next,
				Action:        action,
				Observations:  s.pickPtr(movementObservations[action]),
			}
			if action == entity.ActionRetiro {
				person := s.pick(firstNames) + " " + s.pick(lastNames)
				m.Person = &person
			}
			out = append(out, m)
			status = next
		case entity.StatusEnUso:
			next, _ := entity.ResultingStatus(status, entity.ActionDevolucion)
			out = append(out, &entity.Movement{
				DateTime:      moveDate,
				BookID:        book.ID,
				UserID:        &userID,
				PreviousState: strPtr(status),
				NewState:      next,
				Action:        entity.ActionDevolucion,
				Observations:  s.pickPtr(movementObservations[entity.ActionDevolucion]),
			})
			status = next
		default:
			// Archivado es terminal en la simulación.
		}
	}
	book.Status = status
	return out
}

func (s *Seeder) insertUsers(ctx context.Context, tx pgx.Tx, users []*entity.User) error {
	for _, u := range users {
		_, err := tx.Exec(ctx,
			`INSERT INTO users (id, name, username, email, role, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
			u.ID, u.Name, u.Username, u.Email, u.Role, u.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("seed insert user %s: %w", u.Username, err)
		}
	}
	return nil
}

func (s *Seeder) insertBooks(ctx context.Context, tx pgx.Tx, books []*entity.Book) error {
	for _, b := range books {
		_, err := tx.Exec(ctx,
			`INSERT INTO books (id, tomo, year, entry_date, status) VALUES ($1, $2, $3, $4, $5)`,
			b.ID, b.Tomo, b.Year, b.EntryDate, b.Status,
		)
		if err != nil {
			return fmt.Errorf("seed insert book %s: %w", b.ID, err)
		}
	}
	return nil
}

func (s *Seeder) insertMovements(ctx context.Context, tx pgx.Tx, movements []*entity.Movement) error {
	for _, m := range movements {
		_, err := tx.Exec(ctx,
			`INSERT INTO movements (date_time, book_id, user_id, previous_state, new_state, action, person, observations)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			m.DateTime, m.BookID, m.UserID, m.PreviousState, m.NewState, m.Action, m.Person, m.Observations,
		)
		if err != nil {
			return fmt.Errorf("seed insert movement for %s: %w", m.BookID, err)
		}
	}
	return nil
}

func (s *Seeder) pick(arr []string) string {
	return arr[s.rnd.Intn(len(arr))]
}

func (s *Seeder) pickPtr(arr []string) *string {
	v := s.pick(arr)
	return &v
}

func (s *Seeder) randomDate(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	delta := end.Sub(start)
	return start.Add(time.Duration(s.rnd.Int63n(int64(delta))))
}

func strPtr(v string) *string { return &v }
