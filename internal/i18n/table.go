package i18n

// Text keys used by the popup.
const (
	KeyPageTitle            = "pageTitle"
	KeyBookmarkFormTitle    = "bookmarkFormTitle"
	KeyFeedbackFormTitle    = "feedbackFormTitle"
	KeySave                 = "save"
	KeySend                 = "send"
	KeyDelete               = "delete"
	KeyDeleteAllBookmarks   = "deleteAllBookmarks"
	KeyAutofillBookmark     = "autofillBookmark"
	KeyTitleRequired        = "titleRequired"
	KeyInvalidURL           = "invalidURL"
	KeyTags                 = "tags"
	KeyNotes                = "notes"
	KeyConfirmDeleteAll     = "confirmDeleteAll"
	KeyMessageRequired      = "messageRequired"
	KeyFeedbackConfirmation = "feedbackConfirmation"
)

// Table maps a language code to its key/text pairs.
type Table map[string]map[string]string

var defaultTable = Table{
	"en": {
		KeyPageTitle:            "Bookmark Manager Extension",
		KeyBookmarkFormTitle:    "Add New Bookmark",
		KeyFeedbackFormTitle:    "Send Feedback",
		KeySave:                 "Save",
		KeySend:                 "Send",
		KeyDelete:               "Delete",
		KeyDeleteAllBookmarks:   "Delete All Bookmarks",
		KeyAutofillBookmark:     "Insert URL",
		KeyTitleRequired:        "Title field is required!",
		KeyInvalidURL:           "Invalid URL format!",
		KeyTags:                 "Tags",
		KeyNotes:                "Notes",
		KeyConfirmDeleteAll:     "Are you sure you want to delete all bookmarks?",
		KeyMessageRequired:      "The message field is required!",
		KeyFeedbackConfirmation: "Thank you for your feedback!",
	},
	"hu": {
		KeyPageTitle:            "Könyvjelző Kezelő Kiegészítő",
		KeyBookmarkFormTitle:    "Új Könyvjelző Hozzáadása",
		KeyFeedbackFormTitle:    "Visszajelzés Küldése",
		KeySave:                 "Mentés",
		KeySend:                 "Küldés",
		KeyDelete:               "Törlés",
		KeyDeleteAllBookmarks:   "Összes Könyvjelző Törlése",
		KeyAutofillBookmark:     "URL Beillesztése",
		KeyTitleRequired:        "A cím mező kitöltése kötelező!",
		KeyInvalidURL:           "Érvénytelen URL formátum!",
		KeyTags:                 "Címkék",
		KeyNotes:                "Megjegyzések",
		KeyConfirmDeleteAll:     "Biztosan törölni szeretnéd az összes könyvjelzőt?",
		KeyMessageRequired:      "A üzenet mező kitöltése kötelező!",
		KeyFeedbackConfirmation: "Köszönjük a visszajelzést!",
	},
	"de": {
		KeyPageTitle:            "Lesezeichen-Manager Erweiterung",
		KeyBookmarkFormTitle:    "Neues Lesezeichen hinzufügen",
		KeyFeedbackFormTitle:    "Feedback senden",
		KeySave:                 "Speichern",
		KeySend:                 "Senden",
		KeyDelete:               "Löschen",
		KeyDeleteAllBookmarks:   "Alle Lesezeichen löschen",
		KeyAutofillBookmark:     "URL einfügen",
		KeyTitleRequired:        "Titelfeld ist erforderlich!",
		KeyInvalidURL:           "Ungültiges URL-Format!",
		KeyTags:                 "Schlagworte",
		KeyNotes:                "Notizen",
		KeyConfirmDeleteAll:     "Möchten Sie wirklich alle Lesezeichen löschen?",
		KeyMessageRequired:      "Das Nachrichtenfeld ist erforderlich!",
		KeyFeedbackConfirmation: "Vielen Dank für Ihr Feedback!",
	},
	"es": {
		KeyPageTitle:            "Extensión de Administrador de Marcadores",
		KeyBookmarkFormTitle:    "Agregar nuevo marcador",
		KeyFeedbackFormTitle:    "Enviar Comentarios",
		KeySave:                 "Guardar",
		KeySend:                 "Enviar",
		KeyDelete:               "Eliminar",
		KeyDeleteAllBookmarks:   "Eliminar todos los marcadores",
		KeyAutofillBookmark:     "Insertar URL",
		KeyTitleRequired:        "¡El campo de título es obligatorio!",
		KeyInvalidURL:           "¡Formato de URL no válido!",
		KeyTags:                 "Etiquetas",
		KeyNotes:                "Notas",
		KeyConfirmDeleteAll:     "¿Estás seguro de que quieres eliminar todos los marcadores?",
		KeyMessageRequired:      "¡El campo de mensaje es obligatorio!",
		KeyFeedbackConfirmation: "¡Gracias por tus comentarios!",
	},
}

// languageOrder is the order the selector presents languages in.
var languageOrder = []string{"en", "hu", "de", "es"}
