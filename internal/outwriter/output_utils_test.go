package outwriter

import (
	"testing"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestCreateFormatters(t *testing.T) {
	fmtFloat, fmtNullable := createFormatters(2)

	assert.Equal(t, "3.14", fmtFloat(3.14159))
	assert.Equal(t, "0.00", fmtFloat(0))

	v := 1.5
	assert.Equal(t, "1.50", fmtNullable(&v, "-"))
	assert.Equal(t, "-", fmtNullable(nil, "-"))
	assert.Equal(t, "", fmtNullable(nil, ""))
}

func TestGetTerminalWidthOverride(t *testing.T) {
	cfg := &contract.Config{Width: 132}
	assert.Equal(t, 132, getTerminalWidth(cfg))
}

func TestShowBreakdownColumns(t *testing.T) {
	assert.True(t, showBreakdownColumns(&contract.Config{Width: 120}))
	assert.False(t, showBreakdownColumns(&contract.Config{Width: 100}))
}
