package pdfdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100">
<rect x="0" y="0" width="100" height="100" fill="white"/>
<rect x="25" y="25" width="50" height="50" fill="black"/>
</svg>`

func TestRenderPDF(t *testing.T) {
	data, err := Render(testSVG, 100, 100)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestRenderPDFEmptySVG(t *testing.T) {
	_, err := Render("", 100, 100)
	assert.Error(t, err)
}
