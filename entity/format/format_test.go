package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atomphys/hydrogen/entity/format"
)

func TestUnmarshalText(t *testing.T) {
	f, err := format.UnmarshalText("html")
	assert.NoError(t, err)
	assert.Equal(t, format.HTML, f)

	f, err = format.UnmarshalText("csv")
	assert.NoError(t, err)
	assert.Equal(t, format.Csv, f)

	_, err = format.UnmarshalText("png")
	assert.Error(t, err)

	_, err = format.UnmarshalText("")
	assert.Error(t, err)
}
