package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFmtEGP(t *testing.T) {
	assert.Equal(t, "0 EGP", FmtEGP(0))
	assert.Equal(t, "135 EGP", FmtEGP(135))
	assert.Equal(t, "1,500 EGP", FmtEGP(1500))
	assert.Equal(t, "12,345 EGP", FmtEGP(12345))
}

func TestFmtTotal(t *testing.T) {
	assert.Equal(t, "FREE", FmtTotal(0))
	assert.Equal(t, "350 EGP", FmtTotal(350))
}

func TestFmtSAR(t *testing.T) {
	assert.Equal(t, "10.0 SAR", FmtSAR(10.0))
	assert.Equal(t, "9.9 SAR", FmtSAR(9.9))
}

func TestFmtRate(t *testing.T) {
	assert.Equal(t, "1 SAR ≈ 13.50 EGP", FmtRate(13.5))
	assert.Equal(t, "1 SAR ≈ 13.72 EGP", FmtRate(13.72))
}
