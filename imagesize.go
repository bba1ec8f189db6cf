package qrstyle

import "math"

// imageSizeResult describes how large an embedded logo may be and how many
// modules it occludes on each axis.
type imageSizeResult struct {
	width, height float64
	hideXDots     int
	hideYDots     int
}

// calculateImageSize sizes a logo so the modules it hides stay within the
// error-correction budget. maxHiddenDots is the total module budget derived
// from the correction level; maxHiddenAxisDots caps each axis so the finder
// patterns stay clear. The hidden axis counts come out odd so the logo is
// centered on a module.
func calculateImageSize(originalWidth, originalHeight uint, maxHiddenDots, maxHiddenAxisDots int, dotSize float64) imageSizeResult {
	k := float64(originalHeight) / float64(originalWidth)

	hideX := int(math.Floor(math.Sqrt(float64(maxHiddenDots) / k)))
	if hideX == 0 {
		hideX = 1
	}
	if hideX%2 == 0 {
		hideX--
	}
	if hideX > maxHiddenAxisDots {
		hideX = maxHiddenAxisDots
	}

	hideY := oppositeAxisDots(hideX, k)
	for hideY*hideX > maxHiddenDots && hideX > 3 {
		hideX -= 2
		hideY = oppositeAxisDots(hideX, k)
	}
	if hideY > maxHiddenAxisDots {
		hideY = maxHiddenAxisDots
	}

	return imageSizeResult{
		width:     float64(hideX) * dotSize,
		height:    float64(hideY) * dotSize,
		hideXDots: hideX,
		hideYDots: hideY,
	}
}

// oppositeAxisDots scales an odd axis count by the aspect ratio, keeping the
// result odd.
func oppositeAxisDots(hideX int, k float64) int {
	return 1 + 2*int(math.Ceil((float64(hideX)*k-1)/2))
}
