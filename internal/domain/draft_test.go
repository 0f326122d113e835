package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDraft() *Draft {
	return NewDraft("draft-1", time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC))
}

func TestDraftStepProgression(t *testing.T) {
	d := newTestDraft()
	assert.Equal(t, StepPhone, d.Step)

	d.SetOwnerPhone("010-1234-5678")
	assert.Equal(t, StepPet, d.Step)

	d.SetPet(DraftPet{Name: "Bori", Weight: 5.0, BreedType: BreedTypeDefault})
	assert.Equal(t, StepDateTime, d.Step)

	d.SetDateTime("2025-11-29", "10:00")
	assert.Equal(t, StepServices, d.Step)

	d.SetMainService(DraftService{ID: 1, Name: "Grooming", BasePrice: 40000, Kind: KindGrooming})
	assert.Equal(t, StepConfirm, d.Step)

	require.NotNil(t, d.PriceRange)
	assert.Equal(t, PriceRange{Min: 40000, Max: 40000}, *d.PriceRange)
}

func TestDraftBackKeepsLaterSlices(t *testing.T) {
	d := newTestDraft()
	d.SetOwnerPhone("010-1234-5678")
	d.SetPet(DraftPet{Name: "Bori", Weight: 5.0})
	d.SetDateTime("2025-11-29", "10:00")

	d.Back()
	assert.Equal(t, StepDateTime, d.Step)
	assert.NotNil(t, d.DateTime)

	// Reapplying an earlier step does not roll the pointer back
	d.SetPet(DraftPet{Name: "Bori", Weight: 5.0})
	assert.Equal(t, StepDateTime, d.Step)

	d.Back()
	d.Back()
	d.Back()
	d.Back()
	assert.Equal(t, StepPhone, d.Step)
}

func TestDraftPetChangeInvalidatesServiceSelection(t *testing.T) {
	d := newTestDraft()
	d.SetOwnerPhone("010-1234-5678")
	d.SetPet(DraftPet{Name: "Bori", Weight: 5.0})
	d.SetDateTime("2025-11-29", "10:00")
	d.SetMainService(DraftService{ID: 1, BasePrice: 40000, Kind: KindGrooming})
	d.SetAdditionalServices([]GroomingService{{ID: 7, BasePrice: 10000}})

	t.Run("same weight keeps selection", func(t *testing.T) {
		d.SetPet(DraftPet{Name: "Bori", Weight: 5.0})
		assert.NotNil(t, d.MainService)
	})

	t.Run("weight change clears selection", func(t *testing.T) {
		d.SetPet(DraftPet{Name: "Bori", Weight: 12.0})
		assert.Nil(t, d.MainService)
		assert.Nil(t, d.AdditionalServices)
		assert.Nil(t, d.PriceRange)
	})
}

func TestDraftServiceChangeClearsOptions(t *testing.T) {
	d := newTestDraft()
	d.SetOwnerPhone("010-1234-5678")
	d.SetPet(DraftPet{Name: "Bori", Weight: 5.0})
	d.SetDateTime("2025-11-29", "10:00")
	d.SetMainService(DraftService{ID: 1, BasePrice: 40000, Kind: KindGrooming})

	require.NoError(t, d.ToggleOption(ServiceOption{ID: 10, AddPrice: 5000, Category: "face"}))
	assert.Len(t, d.MainService.SelectedOptions, 1)

	d.SetMainService(DraftService{ID: 2, BasePrice: 50000, Kind: KindGrooming})
	assert.Empty(t, d.MainService.SelectedOptions)
	assert.Equal(t, PriceRange{Min: 50000, Max: 50000}, *d.PriceRange)
}

func TestDraftToggleOption(t *testing.T) {
	setup := func() *Draft {
		d := newTestDraft()
		d.SetOwnerPhone("010-1234-5678")
		d.SetPet(DraftPet{Name: "Bori", Weight: 5.0})
		d.SetDateTime("2025-11-29", "10:00")
		d.SetMainService(DraftService{ID: 1, BasePrice: 40000, Kind: KindGrooming})
		return d
	}

	t.Run("without main service", func(t *testing.T) {
		d := newTestDraft()
		err := d.ToggleOption(ServiceOption{ID: 10})
		assert.ErrorIs(t, err, ErrDraftMissingService)
	})

	t.Run("toggle twice removes the option", func(t *testing.T) {
		d := setup()
		opt := ServiceOption{ID: 10, AddPrice: 5000, Category: "face"}

		require.NoError(t, d.ToggleOption(opt))
		assert.Equal(t, 45000, d.PriceRange.Min)

		require.NoError(t, d.ToggleOption(opt))
		assert.Empty(t, d.MainService.SelectedOptions)
		assert.Equal(t, 40000, d.PriceRange.Min)
	})

	t.Run("exclusive category replaces previous pick", func(t *testing.T) {
		d := setup()
		require.NoError(t, d.ToggleOption(ServiceOption{ID: 10, AddPrice: 5000, Category: "face"}))
		require.NoError(t, d.ToggleOption(ServiceOption{ID: 11, AddPrice: 7000, Category: "face"}))

		require.Len(t, d.MainService.SelectedOptions, 1)
		assert.Equal(t, int64(11), d.MainService.SelectedOptions[0].ID)
		assert.Equal(t, 47000, d.PriceRange.Min)
	})

	t.Run("multi-select category accumulates", func(t *testing.T) {
		d := setup()
		require.NoError(t, d.ToggleOption(ServiceOption{ID: 20, AddPrice: 3000, Category: "spa", MultiSelect: true}))
		require.NoError(t, d.ToggleOption(ServiceOption{ID: 21, AddPrice: 4000, Category: "spa", MultiSelect: true}))

		assert.Len(t, d.MainService.SelectedOptions, 2)
		assert.Equal(t, 47000, d.PriceRange.Min)
	})

	t.Run("variable option extends only the max", func(t *testing.T) {
		d := setup()
		require.NoError(t, d.ToggleOption(ServiceOption{ID: 30, Variable: true, Category: "wear"}))

		assert.Equal(t, PriceRange{Min: 40000, Max: 50000}, *d.PriceRange)
	})
}

func TestDraftValidate(t *testing.T) {
	d := newTestDraft()
	assert.ErrorIs(t, d.Validate(), ErrDraftMissingPhone)

	d.SetOwnerPhone("010-1234-5678")
	assert.ErrorIs(t, d.Validate(), ErrDraftMissingPet)

	d.SetPet(DraftPet{Name: "Bori", Weight: 5.0})
	assert.ErrorIs(t, d.Validate(), ErrDraftMissingDate)

	d.SetDateTime("2025-11-29", "10:00")
	assert.ErrorIs(t, d.Validate(), ErrDraftMissingService)

	d.SetMainService(DraftService{ID: 1, BasePrice: 40000, Kind: KindGrooming})
	assert.NoError(t, d.Validate())
}

func TestDraftReset(t *testing.T) {
	created := time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)
	now := time.Date(2025, 11, 21, 9, 0, 0, 0, time.UTC)

	d := NewDraft("draft-1", created)
	d.SetOwnerPhone("010-1234-5678")
	d.SetPet(DraftPet{Name: "Bori", Weight: 5.0})
	d.SetDateTime("2025-11-29", "10:00")
	d.SetMainService(DraftService{ID: 1, BasePrice: 40000, Kind: KindGrooming})

	d.Reset(now)

	assert.Equal(t, "draft-1", d.ID)
	assert.Equal(t, StepPhone, d.Step)
	assert.Empty(t, d.OwnerPhone)
	assert.Nil(t, d.Pet)
	assert.Nil(t, d.DateTime)
	assert.Nil(t, d.MainService)
	assert.Equal(t, created, d.CreatedAt)
	assert.Equal(t, now, d.UpdatedAt)
}
