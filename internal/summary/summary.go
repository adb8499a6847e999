// Package summary drafts the narrative paragraph of a precosteo from the
// activity ledger, delegating the prose to a generative-text service.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tanq16/precosteo/internal/ledger"
)

// ErrMissingColumn indicates the ledger lacks a column the summary payload
// requires. Raised before any call to the text service.
var ErrMissingColumn = errors.New("missing required ledger column")

// Limits keeping the payload sent to the text service bounded.
const (
	maxUniqueActivities = 250
	maxUniqueZones      = 20
	maxPayloadChars     = 18_000
	truncationMarker    = "\n[...TRUNCADO POR LÍMITE...]"
)

// NoActivitiesMessage is returned without contacting the service when the
// filtered range holds no activities.
const NoActivitiesMessage = "No se encontraron actividades en el rango de fechas indicado."

var (
	activityAliases = []string{"ACTIVIDAD", "DESCRIPCION", "DESCRIPCIÓN", "DETALLE"}
	zoneAliases     = []string{"ZONA", "ZONAS", "AREA", "ÁREA"}
)

// Request describes what the narrative must cover.
type Request struct {
	Ledger        *ledger.Table
	Range         ledger.DateRange
	ExcludedItems []string
}

// Generator produces a prose summary for a request. Implementations wrap
// any transport failure into a single descriptive error.
type Generator interface {
	Summarize(ctx context.Context, req Request) (string, error)
}

// BuildPayload assembles the deduplicated activity listing sent to the text
// service. It requires a date-bearing column and an activity column; the
// same date filtering and item exclusion as the rendered table apply.
func BuildPayload(req Request) (string, error) {
	t := req.Ledger
	if ledger.DetectDateMode(t) == ledger.DateModeNone {
		return "", fmt.Errorf("%w: no date column found", ErrMissingColumn)
	}
	activityCol, ok := t.Resolve(activityAliases...)
	if !ok {
		return "", fmt.Errorf("%w: no activity column found", ErrMissingColumn)
	}

	filtered := ledger.FilterByRange(t, req.Range)
	if itemCol, ok := filtered.Resolve("ID_ITEM", "ITEM"); ok {
		filtered = ledger.ExcludeItems(filtered, itemCol, req.ExcludedItems)
	}
	if filtered.Len() == 0 {
		return "", nil
	}

	activities := uniqueClean(filtered.Column(activityCol), maxUniqueActivities)

	var lines []string
	if zoneCol, ok := filtered.Resolve(zoneAliases...); ok {
		zones := uniqueClean(filtered.Column(zoneCol), maxUniqueZones)
		if len(zones) > 0 {
			lines = append(lines, "ZONAS (referencia general): "+strings.Join(zones, ", "), "")
		}
	}
	lines = append(lines, "ACTIVIDADES ÚNICAS:")
	for _, a := range activities {
		lines = append(lines, "- "+a)
	}

	text := strings.Join(lines, "\n")
	if len(text) > maxPayloadChars {
		text = text[:maxPayloadChars] + truncationMarker
	}
	return text, nil
}

// uniqueClean trims values, collapses embedded line breaks, skips empties
// and deduplicates preserving first-seen order, up to max entries.
func uniqueClean(values []string, max int) []string {
	seen := make(map[string]struct{})
	var out []string
	replacer := strings.NewReplacer("\r", " ", "\n", " ")
	for _, v := range values {
		s := strings.TrimSpace(replacer.Replace(v))
		if s == "" || strings.EqualFold(s, "nan") {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
		if len(out) >= max {
			break
		}
	}
	return out
}

// prompt builds the Spanish instruction for the text service.
func prompt(req Request, payload string) string {
	from := req.Range.Start.Format("2006-01-02")
	to := req.Range.End.Format("2006-01-02")
	return strings.TrimSpace(fmt.Sprintf(`
Eres un asistente técnico para una empresa de mantenimiento (cubiertas e hidrosanitario).
Con base en el listado de ACTIVIDADES ÚNICAS, redacta un RESUMEN GENERAL para un informe.

Condiciones:
- 1 a 2 párrafos.
- Español, tono profesional.
- No enumerar ítems; agrupa por tipos de mantenimiento (hidrosanitario, cubiertas, sellados, limpieza, inspecciones, ajustes, correctivos/preventivos, etc.).
- Si aparecen zonas, menciónalas de forma global (no como lista larga).
- No inventar datos.
- Indicar que el resumen corresponde al periodo entre %s y %s.

Fuente:
%s`, from, to, payload))
}
