package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scanBase struct {
	ID int64 `db:"id"`
}

type scanProfile struct {
	scanBase
	Bio        string `db:"bio"`
	ProfileBio string `db:"profile_bio"`
	Ignored    string `db:"-"`
	Nickname   string
}

func TestScanner_ScanSliceWithEmbeddedAndAliases(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"id", "bio", "profile_bio", "nickname", "unknown"}).
			AddRow(1, "a", "b", "nick", "x").
			AddRow(2, "c", "d", "nock", "y"),
	)

	rows, err := db.Query("SELECT")
	require.NoError(t, err)
	defer rows.Close()

	var got []scanProfile
	require.NoError(t, ScanSlice(rows, &got))

	assert.Equal(t, []scanProfile{
		{scanBase: scanBase{ID: 1}, Bio: "a", ProfileBio: "b", Nickname: "nick"},
		{scanBase: scanBase{ID: 2}, Bio: "c", ProfileBio: "d", Nickname: "nock"},
	}, got)
}

func TestScanner_RejectsNonPointerDest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	rows, err := db.Query("SELECT")
	require.NoError(t, err)
	defer rows.Close()

	var got []scanProfile
	assert.Error(t, ScanSlice(rows, got))
}

func TestGetMaps_ConvertsBytesToString(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), []byte("Ada")))

	got, err := NewBuilder(db, NewMySQLGrammar()).Table("users").GetMaps()
	require.NoError(t, err)
	assert.Equal(t, []map[string]interface{}{{"id": int64(1), "name": "Ada"}}, got)
}
