package schedule

// MessageKey names a piece of interface text.
type MessageKey uint8

const (
	MsgTaskHeading MessageKey = iota
	MsgNoTasks
	MsgClockHeading
	MsgNoClockTasks
	MsgSelectDate
)

var catalog = map[Language]map[MessageKey]string{
	LanguageEnglish: {
		MsgTaskHeading:  "Task Details",
		MsgNoTasks:      "No tasks available for this date.",
		MsgClockHeading: "Tasks for %s",
		MsgNoClockTasks: "No tasks for this date.",
		MsgSelectDate:   "Select a Date",
	},
	LanguageSpanish: {
		MsgTaskHeading:  "Detalles de tareas",
		MsgNoTasks:      "No hay tareas disponibles para esta fecha.",
		MsgClockHeading: "Tareas para %s",
		MsgNoClockTasks: "No hay tareas para esta fecha.",
		MsgSelectDate:   "Seleccione una fecha",
	},
}

// Text returns interface text for lang. Unsupported languages read English.
func Text(lang Language, key MessageKey) string {
	if messages, ok := catalog[lang]; ok {
		if text, ok := messages[key]; ok {
			return text
		}
	}
	return catalog[DefaultLanguage][key]
}
