package design

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/orderdesk/internal/apperr"
)

func newTestService() *Service {
	items := []ItemType{{ID: 2, ItemType: "Kurta"}, {ID: 1, ItemType: "Saree"}}
	colors := []Color{
		{ID: 1, ColorName: "Navy", PrimaryColor: "Blue"},
		{ID: 2, ColorName: "Crimson", PrimaryColor: "Red"},
		{ID: 3, ColorName: "Azure", PrimaryColor: "Blue"},
	}
	names := func(_ context.Context, id string) string {
		if id == "u-1" {
			return "Alice"
		}
		return ""
	}
	return NewService(NewMemoryRepository(items, colors, names))
}

func TestCatalogOrdering(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	items, err := svc.ItemTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, []int64{items[0].ID, items[1].ID})

	colors, err := svc.Colors(ctx)
	require.NoError(t, err)
	require.Len(t, colors, 3)
	assert.Equal(t, "Azure", colors[0].ColorName)
	assert.Equal(t, "Navy", colors[1].ColorName)
	assert.Equal(t, "Crimson", colors[2].ColorName)
}

func TestCreateOneRowPerColor(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	designs, err := svc.Create(ctx, NewDesign{DesignNumber: "D-101", ItemTypeID: 1, ColorIDs: []int64{1, 2}}, "u-1")
	require.NoError(t, err)
	require.Len(t, designs, 2)
	for _, d := range designs {
		assert.Equal(t, "D-101", d.DesignNumber)
		require.NotNil(t, d.ItemType)
		assert.Equal(t, "Saree", d.ItemType.ItemType)
		require.NotNil(t, d.Creator)
		assert.Equal(t, "Alice", d.Creator.Name)
	}
	assert.Equal(t, "Navy", designs[0].Color.ColorName)
	assert.Equal(t, "Crimson", designs[1].Color.ColorName)
	assert.Equal(t, "Design created successfully with 2 color(s)", CreatedMessage(len(designs)))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateIsAllOrNothing(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, NewDesign{DesignNumber: "D-102", ItemTypeID: 1, ColorIDs: []int64{1, 99}}, "u-1")
	require.True(t, apperr.Is(err, apperr.KindValidation))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateRequiresFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, req := range []NewDesign{
		{ItemTypeID: 1, ColorIDs: []int64{1}},
		{DesignNumber: "D-1", ColorIDs: []int64{1}},
		{DesignNumber: "D-1", ItemTypeID: 1},
	} {
		_, err := svc.Create(ctx, req, "u-1")
		assert.True(t, apperr.Is(err, apperr.KindValidation), "%+v", req)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	designs, err := svc.Create(ctx, NewDesign{DesignNumber: "D-103", ItemTypeID: 1, ColorIDs: []int64{1}}, "u-1")
	require.NoError(t, err)
	id := designs[0].ID

	updated, err := svc.Update(ctx, id, Input{DesignNumber: "D-103A", ItemTypeID: 2, ColorID: 3})
	require.NoError(t, err)
	assert.Equal(t, "D-103A", updated.DesignNumber)
	assert.Equal(t, "Kurta", updated.ItemType.ItemType)
	assert.Equal(t, "Azure", updated.Color.ColorName)

	_, err = svc.Update(ctx, id, Input{DesignNumber: "D-103A", ItemTypeID: 2})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = svc.Update(ctx, 404, Input{DesignNumber: "x", ItemTypeID: 1, ColorID: 1})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	require.NoError(t, svc.Delete(ctx, id))
	assert.True(t, apperr.Is(svc.Delete(ctx, id), apperr.KindNotFound))
}

func TestNumericIDAcceptsStringsAndNumbers(t *testing.T) {
	var req createRequest
	require.NoError(t, json.Unmarshal([]byte(`{"design_number":"D-1","item_type_id":"3","color_ids":[1,"2"]}`), &req))
	assert.Equal(t, NumericID(3), req.ItemTypeID)
	assert.Equal(t, []NumericID{1, 2}, req.ColorIDs)

	var bad NumericID
	assert.Error(t, json.Unmarshal([]byte(`"blue"`), &bad))
}
