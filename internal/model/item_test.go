package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_Display(t *testing.T) {
	tbl := []struct {
		item Item
		want string
	}{
		{Item{Text: "Buy milk"}, "Buy milk"},
		{Item{Text: "Call boss", Urgent: true}, "! Call boss"},
		{Item{Text: "", Urgent: true}, "! "},
	}
	for _, tt := range tbl {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Display())
		})
	}
}

func TestStripMarker(t *testing.T) {
	assert.Equal(t, "Call boss", StripMarker("! Call boss"))
	assert.Equal(t, "Buy milk", StripMarker("Buy milk"))
	assert.Equal(t, "a ! b", StripMarker("a ! b"), "only a leading marker is removed")
	assert.Equal(t, "! twice", StripMarker("! ! twice"))
}
