package capture

import (
	"regexp"

	"aura/internal/model"
)

// trigger maps keywords of a folded title to a task type. Keywords must
// start a word; the short english ones must also end it ("calle" is no call).
type trigger struct {
	taskType model.TaskType
	pattern  *regexp.Regexp
}

// triggers are checked in order; the first hit wins.
var triggers = []trigger{
	{model.TaskTypeCall, regexp.MustCompile(`\b(?:llamar|llamada|llama a|telefonear|call\b)`)},
	{model.TaskTypeShopping, regexp.MustCompile(`\b(?:compra|supermercado|buy\b)`)},
	{model.TaskTypePayment, regexp.MustCompile(`\b(?:pagar|pago|factura|transferir|pay\b)`)},
	{model.TaskTypeEmail, regexp.MustCompile(`\b(?:e-?mail|correo|mail\b)`)},
	{model.TaskTypeEvent, regexp.MustCompile(`\b(?:concierto|fiesta|boda|cumpleanos|evento|concert|party|wedding)`)},
}
