package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItem(t *testing.T) {
	item, err := parseItem("3:2")
	require.NoError(t, err)
	assert.Equal(t, uint(3), item.ProductoID)
	assert.Equal(t, 2, item.Cantidad)

	for _, raw := range []string{"", "3", "x:2", "3:y", ":"} {
		_, err := parseItem(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestOutputFormatter_JSON(t *testing.T) {
	var buf bytes.Buffer
	out := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, out.Success(map[string]int{"id": 7}))
	assert.JSONEq(t, `{"success":true,"data":{"id":7}}`, buf.String())

	buf.Reset()
	require.NoError(t, out.Failure("Credenciales inválidas."))
	assert.JSONEq(t, `{"success":false,"message":"Credenciales inválidas."}`, buf.String())
}

func TestOutputFormatter_Text(t *testing.T) {
	var buf bytes.Buffer
	out := &OutputFormatter{Format: "text", Writer: &buf}

	require.NoError(t, out.Failure("algo falló"))
	assert.Equal(t, "error: algo falló\n", buf.String())
}

func TestRootCommand_Subcomandos(t *testing.T) {
	root := NewRootCommand(&App{})

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"login", "usuarios", "productos", "ventas", "reportes"} {
		assert.True(t, names[want], "falta el subcomando %s", want)
	}
}

func TestRootCommand_FormatoInvalido(t *testing.T) {
	root := NewRootCommand(&App{})
	root.SetArgs([]string{"--format", "xml", "login", "admin", "123456"})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	err := root.Execute()
	assert.Error(t, err)
}
