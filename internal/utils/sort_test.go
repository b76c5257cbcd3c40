package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetSortedKeys(t *testing.T) {
	d1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC)

	m := map[time.Time]string{d2: "b", d1: "a", d3: "c"}

	require.Equal(t, []time.Time{d1, d3, d2}, GetSortedKeys(m, true))
	require.Equal(t, []time.Time{d2, d3, d1}, GetSortedKeys(m, false))
}
