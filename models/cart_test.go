package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func facialService() (*Service, *Option) {
	svc := &Service{
		ID:   "1",
		Name: "Facial",
		Options: []Option{
			{ID: "101", Name: "Classic Facial", Price: 65},
		},
	}
	return svc, &svc.Options[0]
}

func TestCartTotalEmpty(t *testing.T) {
	c := &Cart{}
	assert.Zero(t, c.Total())
}

func TestCartTotalSumsLineItems(t *testing.T) {
	svc, opt := facialService()
	pkg := &Package{ID: "2", Name: "Bridal Package", Price: 80}

	c := &Cart{}
	c.AddServiceItem(svc, opt)
	c.AddPackageItem(pkg)

	require.Len(t, c.Items, 2)
	assert.Equal(t, float64(145), c.Total())
	assert.Equal(t, "1-101", c.Items[0].ID)
	assert.Equal(t, "package-2", c.Items[1].ID)
	assert.Equal(t, PackageOptionLabel, c.Items[1].OptionName)
}

func TestCartTotalTracksAddAndRemove(t *testing.T) {
	svc, opt := facialService()
	c := &Cart{}

	for i := 0; i < 5; i++ {
		c.AddServiceItem(svc, opt)
		assert.Equal(t, float64(i+1)*opt.Price, c.Total())
	}
	for i := 4; i >= 0; i-- {
		require.True(t, c.RemoveItem("1-101"))
		assert.Equal(t, float64(i)*opt.Price, c.Total())
	}
	assert.Empty(t, c.Items)
}

func TestCartDuplicateAddsShareID(t *testing.T) {
	svc, opt := facialService()
	c := &Cart{}

	c.AddServiceItem(svc, opt)
	c.AddServiceItem(svc, opt)

	require.Len(t, c.Items, 2)
	assert.Equal(t, c.Items[0].ID, c.Items[1].ID)
}

func TestCartRemoveTakesOneOccurrence(t *testing.T) {
	svc, opt := facialService()
	c := &Cart{}
	c.AddServiceItem(svc, opt)
	c.AddServiceItem(svc, opt)

	require.True(t, c.RemoveItem("1-101"))
	assert.Len(t, c.Items, 1)
	assert.Equal(t, "1-101", c.Items[0].ID)
}

func TestCartRemoveUnknownID(t *testing.T) {
	c := &Cart{}
	assert.False(t, c.RemoveItem("nope"))
}

func TestCartAddCapturesPriceAtAddTime(t *testing.T) {
	svc, opt := facialService()
	c := &Cart{}
	c.AddServiceItem(svc, opt)

	// A later catalog price change must not touch existing line items.
	svc.Options[0].Price = 999
	assert.Equal(t, float64(65), c.Items[0].Price)
}

func TestCartClear(t *testing.T) {
	svc, opt := facialService()
	c := &Cart{}
	c.AddServiceItem(svc, opt)
	c.Clear()

	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total())
}
