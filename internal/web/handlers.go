package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/idilsaglam/nameform/internal/form"
	"github.com/idilsaglam/nameform/internal/model"
)

// Event types accepted by the JSON API.
const (
	EventChange = "change"
	EventBlur   = "blur"
	EventSubmit = "submit"
)

// EventRequest carries the client's current snapshot and one event.
type EventRequest struct {
	State form.State `json:"state"`
	Event Event      `json:"event"`
}

// Event is a single UI event. Field is required for change and blur; Value
// only for change.
type Event struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

// EventResponse is the state after the event plus what to render.
type EventResponse struct {
	State            form.State `json:"state"`
	View             form.View  `json:"view"`
	DefaultPrevented bool       `json:"default_prevented"`
}

type pageIDs struct {
	Form, Submit, FullName string
}

type pageData struct {
	IDs  pageIDs
	View form.View
}

var ids = pageIDs{
	Form:     form.IDForm,
	Submit:   form.IDSubmitButton,
	FullName: form.IDFullNameDisplay,
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	log *zap.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(log *zap.Logger) *Handlers {
	return &Handlers{log: log}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Page renders the empty form.
func (h *Handlers) Page(c *gin.Context) {
	c.HTML(http.StatusOK, "page", pageData{IDs: ids, View: h.newForm().View()})
}

// SubmitPage handles a plain HTML form post as a submit event and renders
// the result in place.
func (h *Handlers) SubmitPage(c *gin.Context) {
	f := h.newForm()
	f.Change(model.First, c.PostForm("first"))
	f.Change(model.Last, c.PostForm("last"))

	ev := &form.DefaultPrevented{}
	f.Submit(ev)
	if !ev.Prevented {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "page", pageData{IDs: ids, View: f.View()})
}

// Event applies one JSON event to the posted snapshot.
func (h *Handlers) Event(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	f := form.Restore(req.State, form.WithLogger(h.log))
	prevented, err := apply(f, req.Event)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, EventResponse{
		State:            f.State(),
		View:             f.View(),
		DefaultPrevented: prevented,
	})
}

func apply(f *form.Controller, ev Event) (bool, error) {
	if ev.Type == EventSubmit {
		de := &form.DefaultPrevented{}
		f.Submit(de)
		return de.Prevented, nil
	}

	field, err := model.ParseField(ev.Field)
	if err != nil {
		return false, err
	}
	switch ev.Type {
	case EventChange:
		f.Change(field, ev.Value)
	case EventBlur:
		f.Blur(field)
	default:
		return false, fmt.Errorf("unknown event type %q", ev.Type)
	}
	return false, nil
}

func (h *Handlers) newForm() *form.Controller {
	return form.New(form.WithLogger(h.log))
}
