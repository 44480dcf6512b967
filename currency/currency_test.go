package currency

import (
	"fmt"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNominalGroup(t *testing.T) *NominalGroup {
	ng := &NominalGroup{}
	ng.SetValid([]Nominal{25, 10, 5, 0})
	if err := ng.Add(101, 1); err == nil {
		t.Fatal("expected invalid nominal")
	}
	require.NoError(t, ng.Add(10, 2))
	require.NoError(t, ng.Add(5, 3))
	return ng
}

func TestNominalGroup(t *testing.T) {
	t.Parallel()

	t.Run("Total", func(t *testing.T) {
		ng := createTestNominalGroup(t)
		assert.Equal(t, Amount(35), ng.Total())
	})
	t.Run("Add/invalid", func(t *testing.T) {
		ng := createTestNominalGroup(t)
		err := ng.Add(17, 1)
		require.Error(t, err)
		assert.Equal(t, ErrNominalInvalid, errors.Cause(err))
		assert.Equal(t, Amount(35), ng.Total())
		assert.False(t, ng.Valid(0), "zero nominal is never valid")
	})
	t.Run("Get", func(t *testing.T) {
		ng := createTestNominalGroup(t)
		c, err := ng.Get(25)
		require.NoError(t, err)
		assert.Equal(t, uint(0), c)
		_, err = ng.Get(1)
		assert.Equal(t, ErrNominalInvalid, err)
	})
	t.Run("ToMap", func(t *testing.T) {
		ng := createTestNominalGroup(t)
		m := ng.ToMap()
		assert.Equal(t, map[Nominal]uint{10: 2, 5: 3}, m)
		_, ok := m[25]
		assert.False(t, ok)
		m[25] = 9
		c, _ := ng.Get(25)
		assert.Equal(t, uint(0), c, "map must be independent")
	})
	t.Run("Copy", func(t *testing.T) {
		ng := createTestNominalGroup(t)
		ng2 := ng.Copy()
		ng.Clear()
		assert.Equal(t, Amount(0), ng.Total())
		assert.Equal(t, Amount(35), ng2.Total())
		assert.True(t, ng.Valid(25), "Clear keeps valid set")
	})
	t.Run("Iter", func(t *testing.T) {
		ng := createTestNominalGroup(t)
		seen := ""
		require.NoError(t, ng.Iter(func(n Nominal, c uint) error {
			seen += fmt.Sprintf("%d:%d ", n, c)
			return nil
		}))
		assert.Equal(t, "5:3 10:2 25:0 ", seen)
		stop := fmt.Errorf("stop")
		assert.Equal(t, stop, ng.Iter(func(Nominal, uint) error { return stop }))
	})
	t.Run("String", func(t *testing.T) {
		ng := createTestNominalGroup(t)
		assert.Equal(t, "0.05:3,0.1:2,total:0.35", ng.String())
	})
}

func TestAmountFormat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a      Amount
		expect string
	}{
		{0, "0"},
		{5, "0.05"},
		{25, "0.25"},
		{120, "1.2"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.expect, func(t *testing.T) {
			assert.Equal(t, c.expect, c.a.Format100I())
		})
	}
}
