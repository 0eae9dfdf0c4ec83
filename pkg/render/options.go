package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form model.
type RenderOptions struct {
	// Action is the URL the rendered form submits to.
	Action string
	// Method overrides the form's HTTP method. Defaults to POST.
	Method string
	// Values pre-populates rendered controls keyed by field name, usually
	// the current form state including computed derived fields.
	Values map[string]string
	// Errors surfaces server-side validation feedback keyed by field name.
	Errors map[string][]string
	// Title labels the rendered form, typically the template file name.
	Title string
}
