package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleCatalog() RateCatalog {
	return RateCatalog{
		{
			ID: "r1", SupplierName: "Iberia Hotels", PropertyName: "Hotel Luz Gran Madrid",
			PropertyCode: "HILGMI001", ItemKind: ItemKindHotel,
			ValidFrom: day(2025, 1, 1), ValidTo: day(2025, 3, 31),
			RoomType: "Deluxe Double", Occupancy: &OccupancyRates{Double: 140},
			Currency: "EUR",
		},
		{
			ID: "r2", SupplierName: "City Tours SL", PropertyName: "Madrid Walking Tour",
			ItemKind:  ItemKindActivity,
			ValidFrom: day(2025, 1, 1), ValidTo: day(2025, 12, 31),
			NettRatePerNight: 35, Currency: "EUR",
		},
		{
			ID: "r3", SupplierName: "AeroShuttle", PropertyName: "Airport Transfer",
			ItemKind:  ItemKindTransfer,
			ValidFrom: day(2025, 6, 1), ValidTo: day(2025, 6, 30),
			NettRatePerNight: 55, Currency: "EUR",
		},
	}
}

func TestCatalogByKind(t *testing.T) {
	hotels := sampleCatalog().ByKind(ItemKindHotel)
	assert.Len(t, hotels, 1)
	assert.Equal(t, "r1", hotels[0].ID)
}

func TestCatalogByDateRangeIntersects(t *testing.T) {
	c := sampleCatalog()

	// Window overlapping only the transfer rate.
	got := c.ByDateRange(day(2025, 6, 15), day(2025, 7, 15))
	assert.Len(t, got, 2) // activity runs all year, transfer through June
	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, "r3", got[1].ID)

	// Window before everything.
	assert.Empty(t, c.ByDateRange(day(2024, 1, 1), day(2024, 12, 31)))
}

func TestCatalogSearchIsCaseInsensitive(t *testing.T) {
	c := sampleCatalog()
	assert.Len(t, c.Search("gran madrid"), 1)
	assert.Len(t, c.Search("HILGMI"), 1)
	assert.Len(t, c.Search("madrid"), 2) // property name and tour name
	assert.Len(t, c.Search(""), 3)
	assert.Empty(t, c.Search("lisbon"))
}

func TestRateRecordValidate(t *testing.T) {
	valid := sampleCatalog()[0]
	assert.NoError(t, valid.Validate())

	rec := valid
	rec.ValidFrom, rec.ValidTo = rec.ValidTo, rec.ValidFrom
	assert.Error(t, rec.Validate())

	rec = valid
	rec.ItemKind = "cruise"
	assert.Error(t, rec.Validate())

	rec = valid
	rec.Occupancy = &OccupancyRates{Double: -1}
	assert.Error(t, rec.Validate())

	// All tiers unset is worse than no tiers at all.
	rec = valid
	rec.Occupancy = &OccupancyRates{}
	assert.Error(t, rec.Validate())

	// Neither a base rate nor occupancy tiers.
	rec = valid
	rec.Occupancy = nil
	rec.NettRatePerNight = 0
	assert.Error(t, rec.Validate())
}

func TestCoversDateIsInclusive(t *testing.T) {
	rec := sampleCatalog()[0]
	assert.True(t, rec.CoversDate(day(2025, 1, 1)))
	assert.True(t, rec.CoversDate(day(2025, 3, 31)))
	assert.False(t, rec.CoversDate(day(2025, 4, 1)))
}
