package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func promoters(ps ...Promoter) []Promoter { return ps }

func TestSelectVisibleOrdered(t *testing.T) {
	input := promoters(
		Promoter{ID: 1, Order: 5, Visible: true},
		Promoter{ID: 2, Order: 1, Visible: false},
		Promoter{ID: 3, Order: 2, Visible: true},
		Promoter{ID: 4, Order: 5, Visible: false},
	)

	t.Run("hidden excluded", func(t *testing.T) {
		got := SelectVisibleOrdered(input, false)

		assert.Equal(t, []uint{3, 1}, promoterIDs(got))
		for _, p := range got {
			assert.True(t, p.Visible)
		}
	})

	t.Run("hidden included", func(t *testing.T) {
		got := SelectVisibleOrdered(input, true)

		assert.Equal(t, []uint{2, 3, 1, 4}, promoterIDs(got))
	})

	t.Run("input untouched", func(t *testing.T) {
		_ = SelectVisibleOrdered(input, true)

		assert.Equal(t, []uint{1, 2, 3, 4}, promoterIDs(input))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, SelectVisibleOrdered([]Promoter{}, false))
		assert.Empty(t, SelectVisibleOrdered[Promoter](nil, true))
	})
}

func TestSelectVisibleOrderedIsStable(t *testing.T) {
	var input []TransportProvider
	for i := 1; i <= 20; i++ {
		order := DefaultOrder
		if i%4 == 0 {
			order = 1
		}
		input = append(input, TransportProvider{ID: uint(i), Order: order, Visible: true})
	}

	got := SelectVisibleOrdered(input, false)

	assert.Equal(t,
		[]uint{4, 8, 12, 16, 20, 1, 2, 3, 5, 6, 7, 9, 10, 11, 13, 14, 15, 17, 18, 19},
		transportIDs(got),
	)
}

func TestDeriveCityList(t *testing.T) {
	tests := []struct {
		name      string
		providers []TransportProvider
		want      []string
	}{
		{
			name:      "empty",
			providers: nil,
			want:      []string{},
		},
		{
			name: "trims before comparing",
			providers: []TransportProvider{
				{City: " A"}, {City: "B"}, {City: "A "},
			},
			want: []string{"A", "B"},
		},
		{
			name: "first seen order",
			providers: []TransportProvider{
				{City: "Cusco", Order: 1}, {City: "Lima", Order: 2}, {City: "Cusco", Order: 3},
			},
			want: []string{"Cusco", "Lima"},
		},
		{
			name: "case preserved",
			providers: []TransportProvider{
				{City: "lima"}, {City: "Lima"},
			},
			want: []string{"lima", "Lima"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveCityList(tt.providers))
		})
	}
}

func TestDeriveCityListIdempotent(t *testing.T) {
	providers := []TransportProvider{
		{City: "Tarapoto "}, {City: "Lamas"}, {City: " Tarapoto"}, {City: "Moyobamba"}, {City: "Lamas"},
	}

	first := DeriveCityList(providers)

	again := make([]TransportProvider, 0, len(first))
	for _, c := range first {
		again = append(again, TransportProvider{City: c})
	}

	assert.Equal(t, first, DeriveCityList(again))
}

func TestCityListFollowsProviderPriority(t *testing.T) {
	providers := []TransportProvider{
		{ID: 1, City: "Cusco", Order: 3, Visible: true},
		{ID: 2, City: "Lima", Order: 2, Visible: true},
		{ID: 3, City: "Arequipa", Order: 1, Visible: false},
		{ID: 4, City: "Cusco", Order: 1, Visible: true},
	}

	got := DeriveCityList(SelectVisibleOrdered(providers, false))

	assert.Equal(t, []string{"Cusco", "Lima"}, got)
}

func promoterIDs(ps []Promoter) []uint {
	ids := make([]uint, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	return ids
}

func transportIDs(ts []TransportProvider) []uint {
	ids := make([]uint, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.ID)
	}
	return ids
}
