package jwt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Bodega-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "bodega-api-test"
	testExpMin = 60
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_FirmaMutada_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	// Cambiar el último carácter de la firma invalida el token
	mutated := tok[:len(tok)-1]
	if strings.HasSuffix(tok, "A") {
		mutated += "B"
	} else {
		mutated += "A"
	}
	_, err = pkgjwt.Parse(testSecret, mutated)
	assert.Error(t, err, "firma mutada debe invalidar el token")
}

func TestJWT_TokenMalformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", "admin", testIssuer, testExpMin)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}
