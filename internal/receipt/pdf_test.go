package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunalz06/btf-website/internal/model"
)

func TestRendererRender(t *testing.T) {
	t.Parallel()

	p := &model.Participant{
		ParticipantID: "WBKON5607A1",
		Name:          "Alice",
		TeamNumber:    12,
		Email:         "alice@example.com",
		RegisteredAt:  time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer().Render(&buf, p))

	out := buf.Bytes()
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "%%EOF")
}
