package friendships

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/vaultshare/internal/common"
)

func TestIsAcceptedFriend(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	q := `SELECT EXISTS .* FROM friendships WHERE status = \$3 AND \(\(requester_id = \$1 AND addressee_id = \$2\) OR \(requester_id = \$2 AND addressee_id = \$1\)\)\)`

	mock.ExpectQuery(q).WithArgs("alice", "bob", "ACCEPTED").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := repo.IsAcceptedFriend(context.Background(), "alice", "bob")
	if err != nil || !ok {
		t.Fatalf("IsAcceptedFriend = %v, %v", ok, err)
	}

	mock.ExpectQuery(q).WithArgs("bob", "carol", "ACCEPTED").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	ok, err = repo.IsAcceptedFriend(context.Background(), "bob", "carol")
	if err != nil || ok {
		t.Fatalf("IsAcceptedFriend = %v, %v", ok, err)
	}

	mock.ExpectQuery(q).WillReturnError(errors.New("boom"))
	if _, err := repo.IsAcceptedFriend(context.Background(), "a", "b"); !errors.Is(err, common.ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable, got %v", err)
	}
}
