package blocks

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	bm "github.com/pthm/blockmarkup"
)

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestHeadingLevelThree(t *testing.T) {
	h := NewHeading("Hello", 3)
	assert.Equal(t,
		"<!-- wp:heading {\"level\":3} -->\n<h3 class=\"wp-block-heading \">Hello</h3>\n<!-- /wp:heading -->",
		h.Render())
}

func TestHeadingDefaultLevel(t *testing.T) {
	h := NewHeading("Hi", DefaultHeadingLevel)

	result, err := bm.TestRender(h)
	require.NoError(t, err)

	attrs, found, err := result.BlockAttributes("core/heading")
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, attrs, "level")
	assert.NotNil(t, result.First("h2"))
	assert.Contains(t, result.Text(), "Hi")
}

func TestHeadingLevels(t *testing.T) {
	for level := 1; level <= 6; level++ {
		t.Run(fmt.Sprintf("h%d", level), func(t *testing.T) {
			h := NewHeading("x", level)
			assert.Equal(t, level, h.Level())

			result, err := bm.TestRender(h)
			require.NoError(t, err)
			assert.NotNil(t, result.First(fmt.Sprintf("h%d", level)))
			assert.True(t, result.ElementHasClass(fmt.Sprintf("h%d", level), "wp-block-heading"))
		})
	}
}

func TestHeadingLevelOutOfRange(t *testing.T) {
	for _, level := range []int{0, -1, 7, 100} {
		t.Run(fmt.Sprint(level), func(t *testing.T) {
			logger, logs := observed()
			h := NewHeading("x", level, bm.WithLogger(logger))
			assert.Equal(t, DefaultHeadingLevel, h.Level())
			assert.Equal(t, 1, logs.FilterMessage("heading level out of range, using default").Len())
		})
	}
}

func TestHeadingLevelChangeRebuildsOnRender(t *testing.T) {
	h := NewHeading("x", 4)
	assert.Contains(t, h.Render(), "<h4 ")

	h.SetLevel(2)
	out := h.Render()
	assert.Contains(t, out, "<h2 ")
	assert.Contains(t, out, "</h2>")
	assert.NotContains(t, out, `"level"`)
}

func TestHeadingAutoAnchor(t *testing.T) {
	h := NewHeading("Getting <em>Started</em> with Go!", 2).AutoAnchor()

	result, err := bm.TestRender(h)
	require.NoError(t, err)

	id, ok := result.ElementAttr("h2", "id")
	require.True(t, ok)
	assert.Equal(t, "getting-started-with-go", id)

	attrs, _, err := result.BlockAttributes("core/heading")
	require.NoError(t, err)
	assert.Equal(t, "getting-started-with-go", attrs["anchor"])
}

func TestHeadingAutoAnchorUsesAddedText(t *testing.T) {
	h := NewHeading("Old", 2)
	h.AddText(" more")
	h.AutoAnchor()

	id, ok := h.BlockAttribute("anchor")
	require.True(t, ok)
	str, _ := id.Str()
	assert.Equal(t, "old-more", str)
	assert.Contains(t, h.Render(), `id="old-more"`)
}

func TestHeadingAutoAnchorWithoutText(t *testing.T) {
	logger, logs := observed()
	h := NewHeading("<img src=\"a.png\">", 2, bm.WithLogger(logger)).AutoAnchor()

	_, ok := h.BlockAttribute("anchor")
	assert.False(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("heading has no text to derive an anchor from").Len())
}

func TestHeadingTypography(t *testing.T) {
	h := NewHeading("x", 1).FontSize("huge").TextTransform("uppercase")
	out := h.Render()
	assert.Contains(t, out, `<!-- wp:heading {"fontSize":"huge","style":{"typography":{"textTransform":"uppercase"}},"level":1} -->`)
	assert.Contains(t, out, `<h1 class="wp-block-heading has-huge-font-size" style="text-transform:uppercase">x</h1>`)
}
