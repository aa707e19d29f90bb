package console

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	p := New(&buf)

	p.Heading("🚀 Starting %s", "fetcher")
	p.Success("🎉 Saved: %s (%d rows)", "CPI_.csv", 3)
	p.Warn("⚠️ Skipped %s", "Consumption")
	p.Fail("❌ HTTP Error: %d", 500)
	p.Printf("plain %s\n", "text")

	want := "🚀 Starting fetcher\n" +
		"   🎉 Saved: CPI_.csv (3 rows)\n" +
		"   ⚠️ Skipped Consumption\n" +
		"   ❌ HTTP Error: 500\n" +
		"plain text\n"
	assert.Equal(t, want, buf.String())
	assert.Same(t, &buf, p.Writer())
}
