package viewer

const (
	// MinScale and MaxScale bound the zoom reachable with + and -.
	MinScale = 0.1
	MaxScale = 5.0

	// DefaultMargin leaves a border around the fitted image.
	DefaultMargin = 0.8

	// DefaultStep is the zoom factor applied per + or - keypress.
	DefaultStep = 1.2
)

// FitScale returns the scale at which an imgW×imgH image fits a
// surfW×surfH surface, shrunk by margin. The limiting dimension wins.
func FitScale(surfW, surfH, imgW, imgH int, margin float64) float64 {
	scaleW := float64(surfW) / float64(imgW)
	scaleH := float64(surfH) / float64(imgH)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	return scale * margin
}

// ClampScale clamps s to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
