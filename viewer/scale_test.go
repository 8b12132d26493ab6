package viewer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AliceZed8/zfbv/viewer"
)

func TestFitScaleLimitingDimensionWins(t *testing.T) {
	// 100×100 image on a 1000×800 display: height limits, 8.0 * 0.8
	assert.InDelta(t, 6.4, viewer.FitScale(1000, 800, 100, 100, 0.8), 1e-9)
	// width-limited case
	assert.InDelta(t, 1.6, viewer.FitScale(400, 800, 200, 100, 0.8), 1e-9)
}

func TestFitScaleMargin(t *testing.T) {
	assert.InDelta(t, 8.0, viewer.FitScale(1000, 800, 100, 100, 1.0), 1e-9)
	assert.InDelta(t, 4.0, viewer.FitScale(1000, 800, 100, 100, 0.5), 1e-9)
}

func TestClampScale(t *testing.T) {
	assert.Equal(t, viewer.MinScale, viewer.ClampScale(0.0001))
	assert.Equal(t, viewer.MinScale, viewer.ClampScale(viewer.MinScale))
	assert.Equal(t, 1.0, viewer.ClampScale(1.0))
	assert.Equal(t, viewer.MaxScale, viewer.ClampScale(viewer.MaxScale))
	assert.Equal(t, viewer.MaxScale, viewer.ClampScale(123.0))
}

func TestClampScaleSequenceStaysBounded(t *testing.T) {
	scale := 1.0
	for i := 0; i < 50; i++ {
		scale = viewer.ClampScale(scale * viewer.DefaultStep)
		assert.LessOrEqual(t, scale, viewer.MaxScale)
	}
	for i := 0; i < 100; i++ {
		scale = viewer.ClampScale(scale / viewer.DefaultStep)
		assert.GreaterOrEqual(t, scale, viewer.MinScale)
	}
}
