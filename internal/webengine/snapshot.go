package webengine

import (
	"github.com/minnow-browser/minnow/internal/application/port"
	"github.com/minnow-browser/minnow/internal/domain/entity"
)

// cropArea computes the content rectangle and render scale for a snapshot of
// targetW x targetH pixels from a viewport of vw x vh at the given zoom.
//
// The crop keeps the snapshot's aspect ratio: a viewport wider than the
// target yields a horizontally centered band of full height; a narrower one
// keeps full width and crops the bottom. The scale is clamped to the
// engine's supported range. ok is false when the viewport, the target or
// the resulting crop is degenerate.
func cropArea(vw, vh int, zoom, scaleMin, scaleMax float64, targetW, targetH int) (area port.Rect, scale float64, ok bool) {
	if vw == 0 || vh == 0 || targetW <= 0 || targetH <= 0 {
		return port.Rect{}, 0, false
	}

	scale = float64(targetW) / (float64(vw) * zoom)
	if scale < scaleMin {
		scale = scaleMin
	} else if scale > scaleMax {
		scale = scaleMax
	}

	snapshotProportions := float64(targetW) / float64(targetH)
	viewProportions := float64(vw) / float64(vh)

	if viewProportions >= snapshotProportions {
		// Center the band horizontally.
		area.X = int(float64(vw)*zoom/2 - float64(vh)*zoom*snapshotProportions/2)
		area.Y = 0
		area.W = int(float64(vh) * zoom * snapshotProportions)
		area.H = int(float64(vh) * zoom)
	} else {
		area.X = 0
		area.Y = 0
		area.W = int(float64(vw) * zoom)
		area.H = int(float64(vw) * zoom / snapshotProportions)
	}

	if area.W == 0 || area.H == 0 {
		return port.Rect{}, 0, false
	}
	return area, scale, true
}

// CaptureSnapshot renders an aspect-correct snapshot of the current content
// synchronously. Degenerate geometry yields an empty image, not an error.
func (wv *WebView) CaptureSnapshot(targetW, targetH int) entity.Image {
	area, scale, ok := wv.snapshotGeometry(targetW, targetH)
	if !ok {
		return entity.Image{}
	}

	img, err := wv.view.Snapshot(area, scale)
	if err != nil {
		wv.logger.Warn().Err(err).Msg("snapshot capture failed")
		return entity.Image{}
	}
	return img
}

// CaptureSnapshotAsync renders a snapshot on the engine's schedule and
// delivers it through OnSnapshotCaptured tagged with cause. Post-load
// captures also refresh the tab thumbnail.
func (wv *WebView) CaptureSnapshotAsync(targetW, targetH int, cause entity.SnapshotCause) {
	area, scale, ok := wv.snapshotGeometry(targetW, targetH)
	if !ok {
		return
	}

	wv.view.SnapshotAsync(area, scale, func(img entity.Image) {
		if cause == entity.SnapshotPostLoad && !img.IsEmpty() {
			wv.thumbnail = img
		}
		if wv.OnSnapshotCaptured != nil {
			wv.OnSnapshotCaptured(img, cause)
		}
	})
}

func (wv *WebView) snapshotGeometry(targetW, targetH int) (port.Rect, float64, bool) {
	vw, vh := wv.view.ViewportSize()
	scaleMin, scaleMax := wv.view.ScaleRange()
	return cropArea(vw, vh, wv.view.Zoom(), scaleMin, scaleMax, targetW, targetH)
}
