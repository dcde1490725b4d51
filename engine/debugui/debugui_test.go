package debugui

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMillisLimit(t *testing.T) {
	tests := []struct {
		name string
		max  float32
		want float64
	}{
		{"empty history", 0, 1},
		{"below floor", 0.5, 1},
		{"headroom", 10, 11},
		{"large", 250, 275},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MillisLimit(tt.max), 1e-4)
		})
	}
}

func TestCoverage(t *testing.T) {
	assert.Zero(t, RaycasterStats{}.Coverage())
	assert.InDelta(t, 25.0, RaycasterStats{SeenCells: 5, OpenCells: 20}.Coverage(), 1e-9)
}

func TestImguiItems(t *testing.T) {
	var items ImguiItems
	items.Add("one", func() {})
	items.Add("two", nil)

	assert.Len(t, items.Items, 2)
	assert.Equal(t, "two", items.Items[1].Name)

	assert.False(t, items.Toggle())
	assert.True(t, items.Hidden)
	assert.True(t, items.Toggle())
}

type inspected struct {
	Speed   float64
	Enabled bool
	Pos     *[2]float64
	private int
	OnTick  func()
}

func TestFieldCache(t *testing.T) {
	cache := newFieldCache()
	typ := reflect.TypeFor[inspected]()

	fields := cache.get(typ)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Speed", "Enabled", "Pos"}, names)
	assert.True(t, fields[2].IsPointer)

	again := cache.get(typ)
	assert.Same(t, &fields[0], &again[0])

	assert.Empty(t, cache.get(reflect.TypeFor[int]()))
}

type bounded struct {
	Speed float64
}

func (b *bounded) Clamp() {
	b.Speed = min(b.Speed, 10)
}

func TestAfterEditClamps(t *testing.T) {
	b := &bounded{Speed: 50}
	afterEdit(b)
	assert.Equal(t, 10.0, b.Speed)

	plain := &inspected{Speed: 50}
	afterEdit(plain)
	assert.Equal(t, 50.0, plain.Speed, "resources without Clamp are left alone")
}
