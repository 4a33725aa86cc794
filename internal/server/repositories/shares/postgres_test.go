package shares

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

var (
	ts   = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	exp  = ts.Add(24 * time.Hour)
	perm = models.Permission{CanView: true, CanSave: true, IsRevocable: true}
	cols = []string{"id", "mode", "from_id", "to_id", "password_ref", "payload", "can_view", "can_save", "is_revocable",
		"status", "created_at", "expires_at", "accepted_at", "revoked_at"}
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_NullRecipientForDirect(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO share_records`)).
		WithArgs("s1", "DIRECT", "alice", sql.NullString{}, "ref", []byte("p"),
			true, true, true, "ACTIVE", ts, exp, sql.NullTime{}, sql.NullTime{}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Share{
		ID: "s1", Mode: models.Direct{}, FromID: "alice", PasswordRef: "ref", Payload: []byte("p"),
		Permission: perm, Status: models.StatusActive, CreatedAt: ts, ExpiresAt: exp,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	s := &models.Share{
		ID: "s1", Mode: models.UserToUser{To: "bob"}, FromID: "alice", PasswordRef: "ref", Payload: []byte("p"),
		Status: models.StatusPending, CreatedAt: ts, ExpiresAt: exp,
	}

	mock.ExpectExec(`INSERT INTO share_records`).WillReturnError(&pgconn.PgError{Code: "23505"})
	if err := repo.Create(context.Background(), s); !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}

	mock.ExpectExec(`INSERT INTO share_records`).WillReturnError(errors.New("db is down"))
	if err := repo.Create(context.Background(), s); !errors.Is(err, common.ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable, got %v", err)
	}
}

func TestGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	accepted := ts.Add(time.Hour)
	mock.ExpectQuery(`SELECT .* FROM share_records WHERE id = \$1`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("s1", "NEARBY", "alice", "bob", "ref", []byte("p"), true, false, true, "ACCEPTED", ts, exp, accepted, nil))

	s, err := repo.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Mode != (models.Nearby{To: "bob"}) {
		t.Fatalf("mode = %#v", s.Mode)
	}
	if s.Status != models.StatusAccepted || s.AcceptedAt == nil || !s.AcceptedAt.Equal(accepted) || s.RevokedAt != nil {
		t.Fatalf("unexpected share: %+v", s)
	}
	if s.Permission.CanSave {
		t.Fatal("CanSave should be false")
	}
}

func TestGet_NotFoundAndCorrupt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM share_records`).WithArgs("s1").WillReturnRows(sqlmock.NewRows(cols))
	if _, err := repo.Get(context.Background(), "s1"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	mock.ExpectQuery(`SELECT .* FROM share_records`).WithArgs("s2").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("s2", "TELEPATHY", "alice", "bob", "ref", []byte("p"), true, true, true, "PENDING", ts, exp, nil, nil))
	if _, err := repo.Get(context.Background(), "s2"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestTransitionQuery(t *testing.T) {
	q, args, err := transitionQuery("share_records", models.Transition{
		ID: "s1", From: []models.Status{models.StatusActive, models.StatusPending}, To: models.StatusAccepted, At: ts,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "UPDATE share_records SET status = $2, accepted_at = $3 WHERE id = $1 AND status IN ($4, $5)"
	if q != want {
		t.Fatalf("query\n got: %s\nwant: %s", q, want)
	}
	if len(args) != 5 || args[2] != ts || args[3] != "ACTIVE" || args[4] != "PENDING" {
		t.Fatalf("unexpected args: %v", args)
	}

	q, _, _ = transitionQuery("contact_shares", models.Transition{ID: "c1", From: []models.Status{models.StatusPending}, To: models.StatusExpired})
	if q != "UPDATE contact_shares SET status = $2 WHERE id = $1 AND status IN ($3)" {
		t.Fatalf("unexpected query: %s", q)
	}

	if _, _, err := transitionQuery("share_records", models.Transition{ID: "x", To: models.StatusRevoked}); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		want    bool
		wantErr bool
	}{
		{"applied", sqlmock.NewResult(0, 1), true, false},
		{"lost", sqlmock.NewResult(0, 0), false, false},
		{"too many", sqlmock.NewResult(0, 3), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectExec(regexp.QuoteMeta(`UPDATE share_records SET status = $2, revoked_at = $3 WHERE id = $1 AND status IN ($4)`)).
				WithArgs("s1", "REVOKED", ts, "PENDING").
				WillReturnResult(tt.result)

			got, err := repo.Transition(context.Background(), models.Transition{
				ID: "s1", From: []models.Status{models.StatusPending}, To: models.StatusRevoked, At: ts,
			})
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Fatalf("got (%v, %v), want (%v, err=%v)", got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestListQueries(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	row := func() *sqlmock.Rows {
		return sqlmock.NewRows(cols).
			AddRow("s1", "DIRECT", "alice", nil, "ref", []byte("p"), true, true, true, "ACTIVE", ts, exp, nil, nil)
	}

	mock.ExpectQuery(`FROM share_records WHERE from_id = \$1 ORDER BY created_at DESC`).WithArgs("alice").WillReturnRows(row())
	mock.ExpectQuery(`FROM share_records WHERE to_id = \$1`).WithArgs("bob").WillReturnRows(sqlmock.NewRows(cols))
	mock.ExpectQuery(`WHERE mode = 'DIRECT' AND status = 'ACTIVE' AND from_id <> \$1`).WithArgs("bob").WillReturnRows(row())
	mock.ExpectQuery(`WHERE status IN \('ACTIVE', 'PENDING'\) AND expires_at < \$1`).WithArgs(exp).WillReturnRows(row())

	ctx := context.Background()
	sent, err := repo.ListByFrom(ctx, "alice")
	if err != nil || len(sent) != 1 || sent[0].Mode != (models.Direct{}) {
		t.Fatalf("ListByFrom = %v, %v", sent, err)
	}
	received, err := repo.ListByTo(ctx, "bob")
	if err != nil || len(received) != 0 {
		t.Fatalf("ListByTo = %v, %v", received, err)
	}
	broadcast, err := repo.ListActiveBroadcast(ctx, "bob")
	if err != nil || len(broadcast) != 1 {
		t.Fatalf("ListActiveBroadcast = %v, %v", broadcast, err)
	}
	expiring, err := repo.ListExpiring(ctx, exp)
	if err != nil || len(expiring) != 1 {
		t.Fatalf("ListExpiring = %v, %v", expiring, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestList_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM share_records`).WillReturnError(errors.New("boom"))
	if _, err := repo.ListByFrom(context.Background(), "alice"); !errors.Is(err, common.ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable, got %v", err)
	}
}

func TestDeleteByFrom(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM share_records WHERE from_id = \$1`).WithArgs("alice").WillReturnResult(sqlmock.NewResult(0, 4))
	n, err := repo.DeleteByFrom(context.Background(), "alice")
	if err != nil || n != 4 {
		t.Fatalf("DeleteByFrom = %d, %v", n, err)
	}
}
