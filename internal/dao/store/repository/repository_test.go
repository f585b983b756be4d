package repository_test

import (
	"context"
	"testing"
	"time"

	"mensajeria_server/internal/dao/store/repository"
	"mensajeria_server/internal/dao/store/storetest"
	"mensajeria_server/internal/model"
	"mensajeria_server/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByOwnerOrderedByAlias(t *testing.T) {
	_, repos := storetest.OpenSeeded(t)

	rows, err := repos.Contact.FindByOwner(context.Background(), "cpaz")
	require.NoError(t, err)
	assert.Equal(t, []repository.ContactRow{
		{Alias: "lmunoz", DisplayName: "Luisa"},
		{Alias: "mgrau", DisplayName: "Miguel"},
	}, rows)
}

func TestFindByOwnerExcludesSelfLink(t *testing.T) {
	db, repos := storetest.OpenSeeded(t)
	ctx := context.Background()

	require.NoError(t, repos.Contact.CreateIfAbsent(ctx, "cpaz", "cpaz"))
	assert.EqualValues(t, 3, storetest.CountRows(t, db, &model.UserContact{}, "owner_alias = ?", "cpaz"))

	rows, err := repos.Contact.FindByOwner(ctx, "cpaz")
	require.NoError(t, err)
	for _, r := range rows {
		assert.NotEqual(t, "cpaz", r.Alias)
	}
	assert.Len(t, rows, 2)
}

func TestFindByOwnerUnknownIsEmpty(t *testing.T) {
	_, repos := storetest.OpenSeeded(t)

	rows, err := repos.Contact.FindByOwner(context.Background(), "noexiste")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCreateIfAbsentIsIdempotent(t *testing.T) {
	db, repos := storetest.OpenSeeded(t)
	ctx := context.Background()

	require.NoError(t, repos.Contact.CreateIfAbsent(ctx, "cpaz", "lmunoz"))
	require.NoError(t, repos.Contact.CreateIfAbsent(ctx, "cpaz", "lmunoz"))

	assert.EqualValues(t, 2, storetest.CountRows(t, db, &model.UserContact{}, "owner_alias = ?", "cpaz"))
}

func TestContactLinkIsDirectional(t *testing.T) {
	_, repos := storetest.OpenSeeded(t)
	ctx := context.Background()

	ok, err := repos.Contact.Exists(ctx, "cpaz", "lmunoz")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repos.Contact.Exists(ctx, "lmunoz", "cpaz")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnsureExistsKeepsDisplayName(t *testing.T) {
	db, repos := storetest.OpenSeeded(t)
	ctx := context.Background()

	require.NoError(t, repos.User.EnsureExists(ctx, "cpaz", "Otro"))
	assert.Equal(t, "Christian", storetest.FindUser(t, db, "cpaz").DisplayName)
	assert.EqualValues(t, 3, storetest.CountRows(t, db, &model.UserInfo{}, ""))
}

func TestFindReceivedNewestFirst(t *testing.T) {
	_, repos := storetest.OpenSeeded(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, body := range []string{"uno", "dos", "tres"} {
		require.NoError(t, repos.Message.Create(ctx, &model.Message{
			SenderAlias:    "cpaz",
			RecipientAlias: "lmunoz",
			Body:           body,
			SentAt:         base.Add(time.Duration(i) * time.Minute),
		}))
	}

	rows, err := repos.Message.FindReceived(ctx, "lmunoz")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "tres", rows[0].Body)
	assert.Equal(t, "dos", rows[1].Body)
	assert.Equal(t, "uno", rows[2].Body)
	assert.Equal(t, "Christian", rows[0].SenderDisplayName)
	assert.True(t, rows[0].SentAt.Equal(base.Add(2*time.Minute)))
}

func TestFindReceivedTieBrokenByInsertion(t *testing.T) {
	_, repos := storetest.OpenSeeded(t)
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	first := &model.Message{SenderAlias: "cpaz", RecipientAlias: "mgrau", Body: "primero", SentAt: at}
	second := &model.Message{SenderAlias: "lmunoz", RecipientAlias: "mgrau", Body: "segundo", SentAt: at}
	require.NoError(t, repos.Message.Create(ctx, first))
	require.NoError(t, repos.Message.Create(ctx, second))
	assert.Greater(t, second.ID, first.ID)

	rows, err := repos.Message.FindReceived(ctx, "mgrau")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "segundo", rows[0].Body)
	assert.Equal(t, "Luisa", rows[0].SenderDisplayName)
}

func TestMessageCreateDefaultsSentAt(t *testing.T) {
	db, repos := storetest.OpenSeeded(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	msg := &model.Message{SenderAlias: "cpaz", RecipientAlias: "lmunoz", Body: "Hola"}
	require.NoError(t, repos.Message.Create(ctx, msg))
	assert.False(t, msg.SentAt.IsZero())
	assert.True(t, msg.SentAt.After(before))

	assert.EqualValues(t, 1, storetest.CountRows(t, db, &model.Message{}, "sender_alias = ?", "cpaz"))
}

func TestTransactionRollsBack(t *testing.T) {
	db, repos := storetest.Open(t)
	ctx := context.Background()

	err := repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.User.EnsureExists(ctx, "temporal", "Temporal"); err != nil {
			return err
		}
		return errorx.New(errorx.CodeInvalidParam, "abort")
	})
	require.Error(t, err)

	assert.Zero(t, storetest.CountRows(t, db, &model.UserInfo{}, ""))
}
