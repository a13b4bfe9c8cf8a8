package party

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/orderdesk/internal/apperr"
)

func names(_ context.Context, id string) string {
	if id == "u-1" {
		return "Alice"
	}
	return ""
}

func TestServiceCreateDefaultsAndCreator(t *testing.T) {
	svc := NewService(NewMemoryRepository(names))
	ctx := context.Background()

	p, err := svc.Create(ctx, Input{Name: "Acme Textiles", City: "Surat"}, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Surat", p.City)
	assert.Equal(t, "", p.GSTNumber)
	require.NotNil(t, p.Creator)
	assert.Equal(t, "Alice", p.Creator.Name)

	orphan, err := svc.Create(ctx, Input{Name: "Walk-in"}, "u-unknown")
	require.NoError(t, err)
	assert.Nil(t, orphan.Creator)

	parties, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, parties, 2)
	assert.Equal(t, orphan.ID, parties[0].ID)
}

func TestServiceNameRequired(t *testing.T) {
	svc := NewService(NewMemoryRepository(nil))
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{City: "Pune"}, "u-1")
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	p, err := svc.Create(ctx, Input{Name: "Acme"}, "u-1")
	require.NoError(t, err)
	_, err = svc.Update(ctx, p.ID, Input{Name: " "})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestServiceUpdateReplacesFields(t *testing.T) {
	svc := NewService(NewMemoryRepository(nil))
	ctx := context.Background()

	p, err := svc.Create(ctx, Input{Name: "Acme", City: "Surat", Pincode: "395003"}, "u-1")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID, Input{Name: "Acme Ltd", State: "Gujarat"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", updated.Name)
	assert.Equal(t, "", updated.City)
	assert.Equal(t, "Gujarat", updated.State)
	assert.Equal(t, "u-1", updated.CreatedBy)
	assert.False(t, updated.UpdatedAt.Before(p.UpdatedAt))
}

func TestServiceNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepository(nil))
	ctx := context.Background()

	_, err := svc.Get(ctx, 7)
	require.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, msgNotFound, err.(*apperr.Error).Message)

	_, err = svc.Update(ctx, 7, Input{Name: "x"})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.True(t, apperr.Is(svc.Delete(ctx, 7), apperr.KindNotFound))
}
