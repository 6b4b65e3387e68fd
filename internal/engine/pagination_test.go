package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		pageSize   int
		page       int
		mobile     bool
		wantStart  int
		wantEnd    int
		wantTotal  int
		wantPages  []int
	}{
		{
			name:       "empty collection",
			totalItems: 0, pageSize: 10, page: 1,
			wantStart: 0, wantEnd: 0, wantTotal: 0, wantPages: []int{},
		},
		{
			name:       "last partial page",
			totalItems: 25, pageSize: 10, page: 3,
			wantStart: 20, wantEnd: 25, wantTotal: 3, wantPages: []int{1, 2, 3},
		},
		{
			name:       "all pages fit the window",
			totalItems: 42, pageSize: 10, page: 2,
			wantStart: 10, wantEnd: 20, wantTotal: 5, wantPages: []int{1, 2, 3, 4, 5},
		},
		{
			name:       "window biased to the start",
			totalItems: 100, pageSize: 10, page: 2,
			wantStart: 10, wantEnd: 20, wantTotal: 10, wantPages: []int{1, 2, 3, 4, 5},
		},
		{
			name:       "window centered mid-range",
			totalItems: 100, pageSize: 10, page: 6,
			wantStart: 50, wantEnd: 60, wantTotal: 10, wantPages: []int{4, 5, 6, 7, 8},
		},
		{
			name:       "window biased to the end",
			totalItems: 100, pageSize: 10, page: 9,
			wantStart: 80, wantEnd: 90, wantTotal: 10, wantPages: []int{6, 7, 8, 9, 10},
		},
		{
			name:       "mobile window is narrower",
			totalItems: 100, pageSize: 10, page: 5, mobile: true,
			wantStart: 40, wantEnd: 50, wantTotal: 10, wantPages: []int{4, 5, 6},
		},
		{
			name:       "mobile window at the first page",
			totalItems: 100, pageSize: 10, page: 1, mobile: true,
			wantStart: 0, wantEnd: 10, wantTotal: 10, wantPages: []int{1, 2, 3},
		},
		{
			name:       "mobile window at the last page",
			totalItems: 100, pageSize: 10, page: 10, mobile: true,
			wantStart: 90, wantEnd: 100, wantTotal: 10, wantPages: []int{8, 9, 10},
		},
		{
			name:       "page beyond the end clamps to the last page",
			totalItems: 25, pageSize: 10, page: 99,
			wantStart: 20, wantEnd: 25, wantTotal: 3, wantPages: []int{1, 2, 3},
		},
		{
			name:       "page below one clamps to the first page",
			totalItems: 25, pageSize: 10, page: 0,
			wantStart: 0, wantEnd: 10, wantTotal: 3, wantPages: []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.totalItems, tt.pageSize, tt.page, tt.mobile)
			assert.Equal(t, tt.wantStart, got.Start)
			assert.Equal(t, tt.wantEnd, got.End)
			assert.Equal(t, tt.wantTotal, got.TotalPages)
			assert.Equal(t, tt.wantPages, got.Pages)
		})
	}
}

func TestPaginateShowingBounds(t *testing.T) {
	got := Paginate(25, 10, 3, false)
	assert.Equal(t, 21, got.ShowingFrom)
	assert.Equal(t, 25, got.ShowingTo)

	empty := Paginate(0, 10, 1, false)
	assert.Zero(t, empty.ShowingFrom)
	assert.Zero(t, empty.ShowingTo)
}
