package catalog

import (
	"strings"

	"mwtrack/internal/domain"
	"mwtrack/internal/i18n"
)

// accents repairs words the backend sends with their accented letters
// stripped or dropped.
var accents = strings.NewReplacer(
	"Produccin", "Producción",
	"Construccin", "Construcción",
	"Puncin", "Punción",
	"Economas", "Economías",
	"Citoplastico", "Citoplástico",
	"Plastico", "Plástico",
	"Estatica", "Estática",
	"Caida", "Caída",
	"Quimicos", "Químicos",
	"Frio", "Frío",
	"Agricola", "Agrícola",
	"Electrico", "Eléctrico",
)

// FixText repairs the known mis-encoded accents in backend text.
func FixText(s string) string {
	if s == "" {
		return ""
	}
	return accents.Replace(s)
}

// Spec is one labelled row of a product's specification sheet.
type Spec struct {
	Label string
	Value string
}

// Specifications returns the non-empty attribute rows of p in display
// order, with labels and values translated into lang.
func Specifications(p domain.Product, lang domain.Language) []Spec {
	a := p.Attributes
	rows := []struct {
		label, value string
	}{
		{"Tipo Calzado", a.Calzado},
		{"Tipo Puntera", a.Puntera},
		{"Antiperforante", a.Antiperforante},
		{"Protector Metatarsal", a.Metatarsal},
		{"Capellada", a.Capellado},
		{"Suela", a.Suela},
		{"Disipativo de Energía", a.Disipativo},
		{"Color", a.Color},
		{"Cierre", a.Cierre},
		{"Normativa", a.Normativa},
		{"Segmento", a.Segmento},
		{"Riesgo", a.Riesgo},
		{"Materiales Reciclados", a.ComponentesReciclados},
		{"Cubrepuntera", a.Cubrepuntera},
		{"Plantilla Interna", a.Plantilla},
	}

	var out []Spec
	for _, r := range rows {
		v := strings.TrimSpace(r.value)
		if v == "" {
			continue
		}
		out = append(out, Spec{
			Label: i18n.Translate(r.label, lang),
			Value: translateValue(FixText(v), lang),
		})
	}
	return out
}

// translateValue translates a whole value, or each comma-separated part of
// a list value such as a set of risks.
func translateValue(v string, lang domain.Language) string {
	if t := i18n.Translate(v, lang); t != v || !strings.Contains(v, ",") {
		return t
	}
	parts := strings.Split(v, ",")
	for i, part := range parts {
		parts[i] = i18n.Translate(strings.TrimSpace(part), lang)
	}
	return strings.Join(parts, ", ")
}
