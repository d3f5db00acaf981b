// Package outcome defines the structured result of one simulation update.
// The delivery layer decides how to transmit it; the simulation core only
// ever produces these values.
package outcome

// Well-known panel colors, as hex strings.
const (
	ColorDefault = "#FEC8C1"
	ColorVictory = "#3498DB"
	ColorDefeat  = "#E74C3C"
)

// Field is one labeled section of a Panel.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Panel is a rich structured display accompanying an outcome, in the style
// of a chat embed: a titled, colored block with ordered fields.
type Panel struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Color       string  `json:"color,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
}

// AddField appends a field and returns the panel for chaining.
func (p *Panel) AddField(name, value string, inline bool) *Panel {
	p.Fields = append(p.Fields, Field{Name: name, Value: value, Inline: inline})
	return p
}

// Outcome is the single result of one simulation tick: narration text,
// an optional panel and an optional image reference. Image refs are opaque
// to the core; the delivery layer resolves them.
type Outcome struct {
	Text  string `json:"text,omitempty"`
	Panel *Panel `json:"panel,omitempty"`
	Image string `json:"image,omitempty"`
}

// WithText returns a copy of the outcome with the text replaced.
func (o Outcome) WithText(text string) Outcome {
	o.Text = text
	return o
}

// WithImage returns a copy of the outcome with the image ref replaced.
func (o Outcome) WithImage(image string) Outcome {
	o.Image = image
	return o
}
