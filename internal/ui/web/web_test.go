package web

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, MainTemplate, map[string]string{
		"AppName": "kingdom-dashboard",
		"Version": "1.2.3",
	}))
	assert.Contains(t, buf.String(), "<title>kingdom-dashboard · Mi Reino</title>")
	assert.Contains(t, buf.String(), "/static/dashboard.js")
	assert.Contains(t, buf.String(), "kingdom-dashboard 1.2.3")
}

func TestStatic(t *testing.T) {
	fsys, err := Static()
	require.NoError(t, err)

	for _, name := range []string{"/dashboard.js", "/dashboard.css"} {
		f, err := fsys.Open(name)
		require.NoError(t, err, name)
		b, err := io.ReadAll(f)
		_ = f.Close()
		require.NoError(t, err)
		assert.NotEmpty(t, b, name)
	}

	_, err = fsys.Open("/main.html")
	assert.Error(t, err)
}
