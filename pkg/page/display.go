package page

import (
	"html"

	"go.uber.org/zap"

	"github.com/goliatone/go-formwidget/pkg/surface"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

func (m *Mount) onValidation(ok bool) {
	doc := m.page.doc
	doc.ClearChildren(m.display)
	if !ok {
		m.last = widget.Values{}
		return
	}

	m.last = m.form.ToKeyValueMap()
	doc.AppendChild(m.display, m.valuesTable(doc, m.last))
	m.page.logger.Debug("display updated",
		zap.String("mount", m.name),
		zap.Int("entries", m.last.Len()),
	)
}

func (m *Mount) valuesTable(s surface.Surface, values widget.Values) surface.Node {
	table := s.CreateElement(surface.KindTable)
	s.SetAttribute(table, "class", "formwidget-display")
	for _, pair := range values.Pairs() {
		row := s.CreateElement(surface.KindRow)

		key := s.CreateElement(surface.KindCell)
		s.SetText(key, m.page.plain(pair.Label))
		s.AppendChild(row, key)

		value := s.CreateElement(surface.KindCell)
		s.SetText(value, m.page.plain(pair.Value))
		s.AppendChild(row, value)

		s.AppendChild(table, row)
	}
	return table
}

// plain strips markup from user input. The surface escapes text itself, so
// entities produced by the policy are decoded again.
func (p *Page) plain(s string) string {
	return html.UnescapeString(p.sanitize.Sanitize(s))
}
