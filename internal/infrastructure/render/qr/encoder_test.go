package qr_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourone/fourone-api/internal/infrastructure/render/qr"
)

func TestVerificationURL(t *testing.T) {
	assert.Equal(t, "https://fourone.com.do/v/POS-0042",
		qr.VerificationURL("https://fourone.com.do", "POS-0042"))
	// base con slash final no debe duplicar la barra
	assert.Equal(t, "https://fourone.com.do/v/POS-0042",
		qr.VerificationURL("https://fourone.com.do/", "POS-0042"))
	// caracteres reservados se escapan
	assert.Equal(t, "https://x.do/v/A%2FB",
		qr.VerificationURL("https://x.do", "A/B"))
}

func TestDataURL_PNGValido(t *testing.T) {
	out, err := qr.DataURL("https://fourone.com.do/v/POS-0042", 0)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/png;base64,"))
	require.NoError(t, err)
	// firma PNG
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestDataURL_Determinista(t *testing.T) {
	a, err := qr.DataURL("POS-0042", 128)
	require.NoError(t, err)
	b, err := qr.DataURL("POS-0042", 128)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDataURL_ContenidoVacioFalla(t *testing.T) {
	_, err := qr.DataURL("", 128)
	assert.Error(t, err)
}
