// Package services: services/lazygate.go
package services

import (
	"sapf-site/models"
)

// The lazy image gate decides, per gallery image, when to swap the loading
// placeholder for the real source. Each image starts pending and transitions
// to loaded exactly once, the first time its display region comes within the
// proximity margin of the viewport. Load failures move a loaded image to a
// broken placeholder. Both transitions are terminal.

// ------------------- image states -------------------

// ImageState is the lifecycle state of one gallery image.
type ImageState int

const (
	ImagePending ImageState = iota
	ImageLoaded
	ImageBroken
)

// String returns the state name used in data attributes and logs.
func (s ImageState) String() string {
	switch s {
	case ImageLoaded:
		return "loaded"
	case ImageBroken:
		return "broken"
	default:
		return "pending"
	}
}

// DefaultProximityMargin is how close (in px) an image must come to the
// visible viewport before it loads.
const DefaultProximityMargin = 50

// Placeholder graphics, inlined so a pending or broken image never issues a
// network request.
const (
	LoadingPlaceholder = "data:image/svg+xml,%3Csvg xmlns=%22http://www.w3.org/2000/svg%22 width=%22250%22 height=%22250%22%3E%3Crect fill=%22%23e0e0e0%22 width=%22250%22 height=%22250%22/%3E%3Ctext fill=%22%23999%22 x=%2250%25%22 y=%2250%25%22 text-anchor=%22middle%22 dy=%22.3em%22%3ELoading...%3C/text%3E%3C/svg%3E"
	BrokenPlaceholder  = "data:image/svg+xml,%3Csvg xmlns=%22http://www.w3.org/2000/svg%22 width=%22250%22 height=%22250%22%3E%3Crect fill=%22%23e0e0e0%22 width=%22250%22 height=%22250%22/%3E%3Ctext fill=%22%23999%22 x=%2250%25%22 y=%2250%25%22 text-anchor=%22middle%22 dy=%22.3em%22%3EImage not found%3C/text%3E%3C/svg%3E"
)

// ------------------- per-image gate -------------------

// ImageGate tracks the lazy-load state machine for a single image.
type ImageGate struct {
	state  ImageState
	margin int
}

// NewImageGate creates a gate in the pending state. When proximity detection
// is unavailable the gate fails open: the image is loaded immediately so the
// gallery is never blank. A non-positive margin falls back to the default.
func NewImageGate(margin int, detectionAvailable bool) *ImageGate {
	if margin <= 0 {
		margin = DefaultProximityMargin
	}
	g := &ImageGate{state: ImagePending, margin: margin}
	if !detectionAvailable {
		g.state = ImageLoaded
	}
	return g
}

// State returns the current lifecycle state.
func (g *ImageGate) State() ImageState {
	return g.state
}

// Approach reports a new distance (in px) between the image's display region
// and the visible viewport. The first time the distance is within the margin
// a pending image becomes loaded; the transition never reverts. Returns true
// when this call performed the transition.
func (g *ImageGate) Approach(distancePx int) bool {
	if g.state != ImagePending {
		return false
	}
	if distancePx > g.margin {
		return false
	}
	g.state = ImageLoaded
	return true
}

// LoadFailed records a resource fetch error for a loaded image, moving it to
// the broken placeholder. Broken is terminal; pending images cannot fail
// because their real source was never requested.
func (g *ImageGate) LoadFailed() bool {
	if g.state != ImageLoaded {
		return false
	}
	g.state = ImageBroken
	return true
}

// ------------------- gallery view -------------------

// GalleryItem is the presentational record for one gallery image.
type GalleryItem struct {
	Index   int
	Src     string // what the img tag points at first
	DataSrc string // real source, set only when loading lazily
	Lazy    bool
	Alt     string
	Title   string
	Label   string // overlay / aria text
	Broken  string // placeholder swapped in on load failure
}

// GalleryView is the render result for the gallery grid.
type GalleryView struct {
	Items []GalleryItem
	Empty bool
}

// RenderGallery maps the image sequence to its grid view. When lazy is true
// images render with the loading placeholder and the real source deferred to
// the proximity gate; otherwise (fail-open) the real source renders directly.
func RenderGallery(images []models.GalleryImage, lazy bool) GalleryView {
	view := GalleryView{Empty: len(images) == 0}
	for i, img := range images {
		item := GalleryItem{
			Index:  i,
			Alt:    img.Alt,
			Title:  img.Title,
			Broken: BrokenPlaceholder,
		}
		if item.Alt == "" {
			item.Alt = "Gallery image"
		}
		if img.Title != "" {
			item.Label = img.Title
		} else {
			item.Label = img.Alt
		}
		if lazy {
			item.Src = LoadingPlaceholder
			item.DataSrc = img.Src
			item.Lazy = true
		} else {
			item.Src = img.Src
		}
		view.Items = append(view.Items, item)
	}
	return view
}
