package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

func TestCheckBaggageCabin(t *testing.T) {
	tools := NewTools()

	t.Run("within limits", func(t *testing.T) {
		res := tools.CheckBaggage(driving.BagCabin, 55, 35, 25)
		assert.True(t, res.OK)
	})

	t.Run("one dimension over", func(t *testing.T) {
		res := tools.CheckBaggage(driving.BagCabin, 56, 35, 25)
		assert.False(t, res.OK)
	})

	t.Run("missing dimensions", func(t *testing.T) {
		res := tools.CheckBaggage(driving.BagCabin, 0, 35, 25)
		assert.False(t, res.OK)
		assert.Contains(t, res.Message, "Enter")
	})
}

func TestCheckBaggageChecked(t *testing.T) {
	tools := NewTools()

	t.Run("at the 158 cm boundary", func(t *testing.T) {
		res := tools.CheckBaggage(driving.BagChecked, 78, 50, 30)
		assert.True(t, res.OK)
	})

	t.Run("over the boundary", func(t *testing.T) {
		res := tools.CheckBaggage(driving.BagChecked, 79, 50, 30)
		assert.False(t, res.OK)
	})
}

func TestCheckLiquids(t *testing.T) {
	tools := NewTools()

	t.Run("within the litre", func(t *testing.T) {
		res := tools.CheckLiquids(100, 100, 250)
		assert.True(t, res.OK)
		assert.Contains(t, res.Message, "450")
	})

	t.Run("exactly one litre", func(t *testing.T) {
		res := tools.CheckLiquids(500, 500)
		assert.True(t, res.OK)
	})

	t.Run("over one litre", func(t *testing.T) {
		res := tools.CheckLiquids(500, 501)
		assert.False(t, res.OK)
	})

	t.Run("non-positive volumes ignored", func(t *testing.T) {
		res := tools.CheckLiquids(-100, 0, 900)
		assert.True(t, res.OK)
		assert.Contains(t, res.Message, "900")
	})

	t.Run("no volumes", func(t *testing.T) {
		res := tools.CheckLiquids()
		assert.False(t, res.OK)
		assert.Contains(t, res.Message, "Enter")
	})
}

func TestCheckPassport(t *testing.T) {
	tools := NewTools()
	today := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("plenty of validity", func(t *testing.T) {
		res := tools.CheckPassport(today.AddDate(2, 0, 0), today)
		assert.True(t, res.OK)
	})

	t.Run("under six months", func(t *testing.T) {
		res := tools.CheckPassport(today.AddDate(0, 3, 0), today)
		assert.False(t, res.OK)
		assert.Contains(t, res.Message, "6 months")
	})

	t.Run("already expired", func(t *testing.T) {
		res := tools.CheckPassport(today.AddDate(0, -1, 0), today)
		assert.False(t, res.OK)
		assert.Contains(t, res.Message, "expired")
	})
}
