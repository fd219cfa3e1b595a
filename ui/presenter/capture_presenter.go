package presenter

import (
	"github.com/Lumos7-3/A1-Internship-Project/domain/capture"
)

// CaptureModel provides enabled state access.
type CaptureModel interface {
	Enabled() bool
	SetEnabled(bool)
}

// LifecycleContract narrows what presenter needs from the capture layer.
type LifecycleContract interface {
	Start()
	Stop()
}

// Restarter restarts the polling loop after it stopped rescheduling.
type Restarter interface {
	Start()
}

// CaptureView updates UI elements affected by capture toggling.
type CaptureView interface {
	PreviewReset()
	SetCapturing(bool)
}

// CapturePresenter owns presentation logic for toggling capture state.
type CapturePresenter struct {
	model   CaptureModel
	service LifecycleContract // narrowed from full capture.CaptureService
	loop    Restarter
	view    CaptureView
}

func NewCapturePresenter(model CaptureModel, service capture.ServiceContract, loop Restarter, view CaptureView) *CapturePresenter {
	return &CapturePresenter{model: model, service: service, loop: loop, view: view}
}

// Enable starts the capture service and restarts the polling loop. Idempotent.
func (c *CapturePresenter) Enable() {
	if c == nil || c.model == nil || c.service == nil || c.view == nil {
		return
	}
	if c.model.Enabled() { // already enabled
		return
	}
	c.service.Start()
	c.model.SetEnabled(true)
	c.view.SetCapturing(true)
	if c.loop != nil {
		c.loop.Start()
	}
}

// Disable stops the capture service. The loop notices on its next tick and stops
// rescheduling. The last rendered frame stays on screen and in the model. Idempotent.
func (c *CapturePresenter) Disable() {
	if c == nil || c.model == nil || c.service == nil || c.view == nil {
		return
	}
	if !c.model.Enabled() { // already disabled
		return
	}
	c.service.Stop()
	c.model.SetEnabled(false)
	c.view.SetCapturing(false)
}

// Toggle flips enabled state delegating to Enable/Disable.
func (c *CapturePresenter) Toggle() {
	if c == nil || c.model == nil || c.service == nil || c.view == nil {
		return
	}
	if c.model.Enabled() {
		c.Disable()
		return
	}
	c.Enable()
}

// Reset clears the preview, used when the source is released.
func (c *CapturePresenter) Reset() {
	if c == nil || c.view == nil {
		return
	}
	c.view.PreviewReset()
}
