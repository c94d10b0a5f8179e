// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination

import "strconv"

// WindowSize is the number of numbered buttons shown around the current page.
const WindowSize = 5

// ControlKind identifies one element of the pagination strip.
type ControlKind string

const (
	ControlPrev     ControlKind = "prev"
	ControlPage     ControlKind = "page"
	ControlEllipsis ControlKind = "ellipsis"
	ControlNext     ControlKind = "next"
)

// Control is one button (or ellipsis) in the pagination strip.
type Control struct {
	Kind      ControlKind `json:"kind"`
	Label     string      `json:"label"`
	AriaLabel string      `json:"aria_label,omitempty"`
	Target    int         `json:"target,omitempty"`
	Disabled  bool        `json:"disabled,omitempty"`
	Current   bool        `json:"current,omitempty"`
}

// Controls builds the pagination strip for page out of totalPages.
//
// The strip is Prev, an optional first page and ellipsis, a window of
// [WindowSize] pages around page, an optional ellipsis and last page, then
// Next. No strip is produced when everything fits on one page.
func Controls(page, totalPages int) []Control {
	if totalPages <= 1 {
		return nil
	}
	page = Clamp(page, totalPages)

	controls := []Control{{
		Kind:      ControlPrev,
		Label:     "Prev",
		AriaLabel: "Previous page",
		Target:    max(1, page-1),
		Disabled:  page == 1,
	}}

	start := max(1, page-WindowSize/2)
	end := min(totalPages, start+WindowSize-1)
	start = max(1, end-WindowSize+1)

	if start > 1 {
		controls = append(controls, pageControl(1, page))
		if start > 2 {
			controls = append(controls, Control{Kind: ControlEllipsis, Label: "…"})
		}
	}

	for p := start; p <= end; p++ {
		controls = append(controls, pageControl(p, page))
	}

	if end < totalPages {
		if end < totalPages-1 {
			controls = append(controls, Control{Kind: ControlEllipsis, Label: "…"})
		}
		controls = append(controls, pageControl(totalPages, page))
	}

	return append(controls, Control{
		Kind:      ControlNext,
		Label:     "Next",
		AriaLabel: "Next page",
		Target:    min(totalPages, page+1),
		Disabled:  page == totalPages,
	})
}

func pageControl(target, current int) Control {
	label := strconv.Itoa(target)
	return Control{
		Kind:      ControlPage,
		Label:     label,
		AriaLabel: label,
		Target:    target,
		Current:   target == current,
	}
}
