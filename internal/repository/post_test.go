package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"devlink/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	t.Run("Success With Lists", func(t *testing.T) {
		postRows := sqlmock.NewRows([]string{"id", "text", "name", "user_id"}).
			AddRow(1, "first post body text", "Jane Doe", 7)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE "posts"."id" = $1 ORDER BY "posts"."id" LIMIT $2`)).
			WithArgs(1, 1).
			WillReturnRows(postRows)

		// Preloads run in name order: Comments, then Likes.
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE "comments"."post_id" = $1 ORDER BY id DESC`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "text"}).
				AddRow(5, 1, 8, "nice post"))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "likes" WHERE "likes"."post_id" = $1 ORDER BY id DESC`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}).
				AddRow(3, 1, 9))

		post, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, uint(7), post.UserID)
		require.Len(t, post.Likes, 1)
		assert.Equal(t, uint(9), post.Likes[0].UserID)
		require.Len(t, post.Comments, 1)
		assert.Equal(t, "nice post", post.Comments[0].Text)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found Is Nil Nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE "posts"."id" = $1 ORDER BY "posts"."id" LIMIT $2`)).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		post, err := repo.GetByID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, post)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_AddLike_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_post_user" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	err := repo.AddLike(context.Background(), &models.Like{PostID: 1, UserID: 7})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "alreadyliked", appErr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "posts" WHERE "posts"."id" = $1`)).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
