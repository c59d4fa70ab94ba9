package referenceimages

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/freshify/internal/common"
)

const q = `^SELECT file_name FROM food_reference_images WHERE food_name = \$1$`

func TestFileNameFor(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(q).WithArgs("green apple").
		WillReturnRows(sqlmock.NewRows([]string{"file_name"}).AddRow("green-apple.png"))
	mock.ExpectQuery(q).WithArgs("durian").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(q).WithArgs("milk").WillReturnError(errors.New("db down"))

	name, err := repo.FileNameFor(context.Background(), "  Green Apple ")
	require.NoError(t, err)
	assert.Equal(t, "green-apple.png", name)

	_, err = repo.FileNameFor(context.Background(), "Durian")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = repo.FileNameFor(context.Background(), "MILK")
	assert.ErrorContains(t, err, "db down")
	require.NoError(t, mock.ExpectationsWereMet())
}
