package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCtx_RoundTrip(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))
}

func TestCtx_Fallback(t *testing.T) {
	assert.NotNil(t, Ctx(context.Background()))
}

func TestPrinter_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut)

	p.Success("Roadmap generated", "6 milestones")
	p.Infof("company %s", "TCS")
	p.Printf("plain %d", 1)
	p.Warnf("careful")
	p.Errorf("failed: %s", "boom")

	assert.Contains(t, out.String(), "Roadmap generated")
	assert.Contains(t, out.String(), "6 milestones")
	assert.Contains(t, out.String(), "company TCS")
	assert.Contains(t, out.String(), "plain 1")
	assert.NotContains(t, out.String(), "boom")

	assert.Contains(t, errOut.String(), "careful")
	assert.Contains(t, errOut.String(), "failed: boom")
}
