package shares

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

var contactCols = []string{"id", "from_id", "to_id", "password_ref", "payload", "can_view", "can_save", "is_revocable",
	"status", "created_at", "expires_at", "accepted_at", "revoked_at"}

func newContactRepoWithMock(t *testing.T) (*ContactPostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewContactPostgresRepository(db), mock, db
}

func TestContactCreateAndGet(t *testing.T) {
	repo, mock, db := newContactRepoWithMock(t)
	defer db.Close()

	c := &models.ContactShare{
		ID: "c1", FromID: "alice", ToID: "bob", PasswordRef: "ref", Payload: []byte("p"),
		Permission: perm, Status: models.StatusPending, CreatedAt: ts, ExpiresAt: exp,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO contact_shares`)).
		WithArgs("c1", "alice", "bob", "ref", []byte("p"), true, true, true, "PENDING", ts, exp, sql.NullTime{}, sql.NullTime{}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec(`INSERT INTO contact_shares`).WillReturnError(&pgconn.PgError{Code: "23505"})
	if err := repo.Create(context.Background(), c); !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}

	revoked := ts.Add(time.Minute)
	mock.ExpectQuery(`SELECT .* FROM contact_shares WHERE id = \$1`).WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(contactCols).
			AddRow("c1", "alice", "bob", "ref", []byte("p"), true, true, true, "REVOKED", ts, exp, nil, revoked))
	got, err := repo.Get(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.StatusRevoked || got.RevokedAt == nil || got.ToID != "bob" {
		t.Fatalf("unexpected contact share: %+v", got)
	}

	mock.ExpectQuery(`SELECT .* FROM contact_shares`).WithArgs("c2").WillReturnRows(sqlmock.NewRows(contactCols))
	if _, err := repo.Get(context.Background(), "c2"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestContactExistsLive(t *testing.T) {
	repo, mock, db := newContactRepoWithMock(t)
	defer db.Close()

	q := `SELECT EXISTS \(\s*SELECT 1 FROM contact_shares .* status IN \('PENDING', 'ACCEPTED'\) AND expires_at > \$4\)`
	mock.ExpectQuery(q).WithArgs("alice", "bob", "ref", ts).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ExistsLive(context.Background(), "alice", "bob", "ref", ts)
	if err != nil || !ok {
		t.Fatalf("ExistsLive = %v, %v", ok, err)
	}

	mock.ExpectQuery(q).WillReturnError(errors.New("boom"))
	if _, err := repo.ExistsLive(context.Background(), "alice", "bob", "ref", ts); !errors.Is(err, common.ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable, got %v", err)
	}
}

func TestContactTransitionAndLists(t *testing.T) {
	repo, mock, db := newContactRepoWithMock(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE contact_shares SET status = $2, accepted_at = $3 WHERE id = $1 AND status IN ($4)`)).
		WithArgs("c1", "ACCEPTED", ts, "PENDING").
		WillReturnResult(sqlmock.NewResult(0, 1))
	ok, err := repo.Transition(ctx, models.Transition{ID: "c1", From: []models.Status{models.StatusPending}, To: models.StatusAccepted, At: ts})
	if err != nil || !ok {
		t.Fatalf("Transition = %v, %v", ok, err)
	}

	row := sqlmock.NewRows(contactCols).AddRow("c1", "alice", "bob", "ref", []byte("p"), true, true, true, "PENDING", ts, exp, nil, nil)
	mock.ExpectQuery(`FROM contact_shares WHERE to_id = \$1`).WithArgs("bob").WillReturnRows(row)
	list, err := repo.ListByTo(ctx, "bob")
	if err != nil || len(list) != 1 {
		t.Fatalf("ListByTo = %v, %v", list, err)
	}

	mock.ExpectQuery(`FROM contact_shares\s+WHERE status = 'PENDING' AND expires_at < \$1`).WithArgs(exp).
		WillReturnRows(sqlmock.NewRows(contactCols))
	expiring, err := repo.ListExpiring(ctx, exp)
	if err != nil || len(expiring) != 0 {
		t.Fatalf("ListExpiring = %v, %v", expiring, err)
	}

	mock.ExpectExec(`DELETE FROM contact_shares WHERE from_id = \$1`).WithArgs("alice").WillReturnResult(sqlmock.NewResult(0, 2))
	n, err := repo.DeleteByFrom(ctx, "alice")
	if err != nil || n != 2 {
		t.Fatalf("DeleteByFrom = %d, %v", n, err)
	}
}

func TestContactCreateUnlessLive(t *testing.T) {
	lock := `SELECT pg_advisory_xact_lock\(hashtext\(\$1\), hashtext\(\$2 \|\| ':' \|\| \$3\)\)`
	exists := `SELECT EXISTS \(\s*SELECT 1 FROM contact_shares`

	c := &models.ContactShare{
		ID: "c1", FromID: "alice", ToID: "bob", PasswordRef: "ref", Payload: []byte("p"),
		Permission: perm, Status: models.StatusPending, CreatedAt: ts, ExpiresAt: exp,
	}

	t.Run("inserts when no live share", func(t *testing.T) {
		repo, mock, db := newContactRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(lock).WithArgs("alice", "bob", "ref").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(exists).WithArgs("alice", "bob", "ref", ts).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`INSERT INTO contact_shares`).WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.CreateUnlessLive(context.Background(), c, ts); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		repo, mock, db := newContactRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(lock).WithArgs("alice", "bob", "ref").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(exists).WithArgs("alice", "bob", "ref", ts).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		if err := repo.CreateUnlessLive(context.Background(), c, ts); !errors.Is(err, common.ErrAlreadyExists) {
			t.Fatalf("want ErrAlreadyExists, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("lock error", func(t *testing.T) {
		repo, mock, db := newContactRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(lock).WillReturnError(&pgconn.PgError{Code: "40P01"})
		err := repo.CreateUnlessLive(context.Background(), c, ts)
		if !errors.Is(err, common.ErrStoreUnavailable) {
			t.Fatalf("want ErrStoreUnavailable, got %v", err)
		}
	})
}
