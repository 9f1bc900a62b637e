package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzaben/mufradat-api/internal/domain"
	"github.com/hzaben/mufradat-api/internal/store"
)

func newDeckStoreTest(t *testing.T) (*DeckStore, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	deckStore := NewDeckStore(db, nil)
	cleanup := func() { _ = db.Close() }

	return deckStore, mock, cleanup
}

func TestDeckStore_Create(t *testing.T) {
	deckStore, mock, cleanup := newDeckStoreTest(t)
	defer cleanup()

	deck, err := domain.NewDeck(uuid.New(), "Greetings", "Common greetings", "👋", true)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO decks").
		WithArgs(
			deck.ID,
			deck.UserID,
			deck.Name,
			deck.Description,
			deck.Emoji,
			deck.IsDefault,
			deck.Archived,
			deck.CreatedAt,
			deck.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = deckStore.Create(context.Background(), deck)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeckStore_CreateInvalidDeck(t *testing.T) {
	deckStore, mock, cleanup := newDeckStoreTest(t)
	defer cleanup()

	deck := &domain.Deck{ID: uuid.New(), UserID: uuid.New()}

	err := deckStore.Create(context.Background(), deck)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeckStore_CreateDuplicateName(t *testing.T) {
	deckStore, mock, cleanup := newDeckStoreTest(t)
	defer cleanup()

	deck, err := domain.NewDeck(uuid.New(), "Greetings", "", "👋", true)
	require.NoError(t, err)

	pgErr := &pgconn.PgError{
		Code:           uniqueViolationCode,
		ConstraintName: "decks_user_id_name_key",
	}
	mock.ExpectExec("INSERT INTO decks").WillReturnError(pgErr)

	err = deckStore.Create(context.Background(), deck)
	assert.ErrorIs(t, err, store.ErrDeckNameExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeckStore_GetByID(t *testing.T) {
	deckStore, mock, cleanup := newDeckStoreTest(t)
	defer cleanup()

	deck, err := domain.NewDeck(uuid.New(), "Numbers", "Counting practice", "🔢", true)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "name", "description", "emoji",
		"is_default", "archived", "created_at", "updated_at",
	}).AddRow(
		deck.ID, deck.UserID, deck.Name, deck.Description, deck.Emoji,
		deck.IsDefault, deck.Archived, deck.CreatedAt, deck.UpdatedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM decks").
		WithArgs(deck.ID).
		WillReturnRows(rows)

	got, err := deckStore.GetByID(context.Background(), deck.ID)
	require.NoError(t, err)
	assert.Equal(t, deck.ID, got.ID)
	assert.Equal(t, deck.Name, got.Name)
	assert.True(t, got.IsDefault)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeckStore_GetByIDNotFound(t *testing.T) {
	deckStore, mock, cleanup := newDeckStoreTest(t)
	defer cleanup()

	deckID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM decks").
		WithArgs(deckID).
		WillReturnError(sql.ErrNoRows)

	_, err := deckStore.GetByID(context.Background(), deckID)
	assert.ErrorIs(t, err, store.ErrDeckNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeckStore_ListByUser(t *testing.T) {
	deckStore, mock, cleanup := newDeckStoreTest(t)
	defer cleanup()

	userID := uuid.New()
	first, err := domain.NewDeck(userID, "Greetings", "", "👋", true)
	require.NoError(t, err)
	second, err := domain.NewDeck(userID, "Verbs", "", "🏃", true)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "name", "description", "emoji",
		"is_default", "archived", "created_at", "updated_at",
	}).AddRow(
		first.ID, first.UserID, first.Name, first.Description, first.Emoji,
		first.IsDefault, first.Archived, first.CreatedAt, first.UpdatedAt,
	).AddRow(
		second.ID, second.UserID, second.Name, second.Description, second.Emoji,
		second.IsDefault, second.Archived, second.CreatedAt, second.UpdatedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM decks").
		WithArgs(userID).
		WillReturnRows(rows)

	decks, err := deckStore.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Equal(t, "Greetings", decks[0].Name)
	assert.Equal(t, "Verbs", decks[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeckStore_ExistsByUserAndName(t *testing.T) {
	deckStore, mock, cleanup := newDeckStoreTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(userID, "Greetings").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := deckStore.ExistsByUserAndName(context.Background(), userID, "Greetings")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeckStore_CountByUser(t *testing.T) {
	deckStore, mock, cleanup := newDeckStoreTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := deckStore.CountByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
