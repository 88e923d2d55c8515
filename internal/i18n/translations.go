// internal/i18n/translations.go
//
// Static translation tables.
//
// Every key present in one locale must be present in all three; the
// translate helper falls back to English, so a missing Polish or Spanish
// entry degrades gracefully, but the tables below are kept complete on
// purpose.  Keys are grouped by view.

package i18n

var translations = map[Locale]map[string]string{
	LocalePL: {
		// Home
		"chooseApp":        "Wybierz Aplikację",
		"homeDescription":  "Kliknij na kafelek, aby otworzyć wybraną aplikację w nowej karcie przeglądarki.",
		"loadingApps":      "Ładowanie aplikacji...",
		"errorLoadingApps": "Błąd ładowania aplikacji: {{message}}",
		"createdBy":        "Stworzone przez",
		"allRightsReserved": "Wszelkie prawa zastrzeżone",
		"adminPanel":       "Panel administratora",
		"pageInfo":         "Informacje o stronie",
		"newBadge":         "NOWOŚĆ",

		// Newsletter
		"newsletterHeader":   "Bądź na bieżąco!",
		"newsletterBody":     "Zapisz się, aby otrzymywać informacje o aktualizacjach, nowych programach i ciekawych funkcjach.",
		"emailPlaceholder":   "Twój adres e-mail",
		"featureUnavailable": "Funkcja zapisu jest obecnie niedostępna.",
		"invalidEmail":       "Proszę podać prawidłowy adres e-mail.",
		"subscribing":        "Zapisywanie...",
		"subscribe":          "Zapisz się",
		"signupSuccess":      "Dziękujemy! Zostałeś zapisany na listę mailingową.",
		"signupConflict":     "Ten adres e-mail jest już zapisany.",
		"signupError":        "Wystąpił błąd. Spróbuj ponownie później.",
		"gatewayUnavailable": "Usługa danych jest obecnie niedostępna.",

		// Login
		"loginTitle":      "Logowanie",
		"email":           "E-mail",
		"password":        "Hasło",
		"login":           "Zaloguj się",
		"loggingIn":       "Logowanie...",
		"unexpectedError": "Wystąpił nieoczekiwany błąd.",
		"backToHome":      "Powrót na stronę główną",

		// Admin
		"adminPanelHeader":   "Panel administratora",
		"loggedInAs":         "Zalogowano jako {{email}}",
		"logout":             "Wyloguj",
		"loggingOut":         "Wylogowywanie...",
		"appManagement":      "Zarządzanie aplikacjami",
		"appNamePL":          "Nazwa aplikacji (PL)",
		"appNameEN":          "Nazwa aplikacji (EN)",
		"appNameES":          "Nazwa aplikacji (ES)",
		"appDescriptionPL":   "Opis aplikacji (PL)",
		"appDescriptionEN":   "Opis aplikacji (EN)",
		"appDescriptionES":   "Opis aplikacji (ES)",
		"appURL":             "Adres URL aplikacji",
		"appIconSVG":         "Kod SVG ikony lub nazwa wbudowanej ikony",
		"markAsNew":          "Oznacz jako nowość",
		"adding":             "Dodawanie...",
		"addApp":             "Dodaj aplikację",
		"fillAllFields":      "Wypełnij wszystkie wymagane pola we wszystkich językach.",
		"errorAdding":        "Błąd podczas dodawania: {{message}}",
		"errorOccurred":      "Wystąpił błąd",
		"loadingAppsAdmin":   "Ładowanie listy aplikacji...",
		"icon":               "Ikona",
		"name":               "Nazwa",
		"url":                "URL",
		"actions":            "Akcje",
		"editApp":            "Edytuj aplikację {{name}}",
		"deleteApp":          "Usuń aplikację {{name}}",
		"subscribersList":    "Subskrybenci ({{count}})",
		"refresh":            "Odśwież",
		"loadingSubscribers": "Ładowanie subskrybentów...",
		"dateSubscribed":     "Data zapisu",
		"noSubscribers":      "Brak subskrybentów.",
		"deleteSubscriber":   "Usuń subskrybenta {{email}}",

		// Confirmation
		"deleteConfirmationTitle":             "Potwierdź usunięcie",
		"deleteConfirmationMessageApp":        "Czy na pewno chcesz usunąć aplikację \"{{name}}\"? Tej operacji nie można cofnąć.",
		"deleteConfirmationMessageSubscriber": "Czy na pewno chcesz usunąć subskrybenta \"{{name}}\"?",
		"saveConfirmationTitle":               "Potwierdź zapis zmian",
		"saveConfirmationMessage":             "Czy na pewno chcesz zapisać zmiany w aplikacji \"{{name}}\"?",
		"editAppTitle":                        "Edytuj aplikację",
		"save":                                "Zapisz",
		"cancel":                              "Anuluj",
		"confirm":                             "Potwierdź",
		"delete":                              "Usuń",
		"deleting":                            "Usuwanie...",
		"processing":                          "Przetwarzanie...",

		// Forms
		"formSecurityError": "Token bezpieczeństwa jest nieprawidłowy. Odśwież stronę i spróbuj ponownie.",
		"formTooFast":       "Formularz wysłano zbyt szybko. Wypełnij pola ręcznie.",
		"formExpired":       "Formularz wygasł. Odśwież stronę i wyślij ponownie.",
		"fieldRequired":     "To pole jest wymagane.",
		"fieldInvalid":      "Nieprawidłowa wartość.",
		"fieldTooShort":     "Wartość jest zbyt krótka.",
		"fieldTooLong":      "Wartość jest zbyt długa.",
	},
	LocaleEN: {
		// Home
		"chooseApp":        "Choose an Application",
		"homeDescription":  "Click a tile to open the selected application in a new browser tab.",
		"loadingApps":      "Loading applications...",
		"errorLoadingApps": "Error loading applications: {{message}}",
		"createdBy":        "Created by",
		"allRightsReserved": "All rights reserved",
		"adminPanel":       "Admin panel",
		"pageInfo":         "About this page",
		"newBadge":         "NEW",

		// Newsletter
		"newsletterHeader":   "Stay up to date!",
		"newsletterBody":     "Sign up to receive news about updates, new programs, and interesting features.",
		"emailPlaceholder":   "Your e-mail address",
		"featureUnavailable": "Signup is currently unavailable.",
		"invalidEmail":       "Please provide a valid e-mail address.",
		"subscribing":        "Subscribing...",
		"subscribe":          "Subscribe",
		"signupSuccess":      "Thank you! You have been added to the mailing list.",
		"signupConflict":     "This e-mail address is already subscribed.",
		"signupError":        "Something went wrong. Please try again later.",
		"gatewayUnavailable": "The data service is currently unavailable.",

		// Login
		"loginTitle":      "Sign in",
		"email":           "E-mail",
		"password":        "Password",
		"login":           "Sign in",
		"loggingIn":       "Signing in...",
		"unexpectedError": "An unexpected error occurred.",
		"backToHome":      "Back to home page",

		// Admin
		"adminPanelHeader":   "Admin Panel",
		"loggedInAs":         "Logged in as {{email}}",
		"logout":             "Log out",
		"loggingOut":         "Logging out...",
		"appManagement":      "Application management",
		"appNamePL":          "Application name (PL)",
		"appNameEN":          "Application name (EN)",
		"appNameES":          "Application name (ES)",
		"appDescriptionPL":   "Application description (PL)",
		"appDescriptionEN":   "Application description (EN)",
		"appDescriptionES":   "Application description (ES)",
		"appURL":             "Application URL",
		"appIconSVG":         "Icon SVG markup or built-in icon name",
		"markAsNew":          "Mark as new",
		"adding":             "Adding...",
		"addApp":             "Add application",
		"fillAllFields":      "Fill in all required fields in every language.",
		"errorAdding":        "Error while adding: {{message}}",
		"errorOccurred":      "An error occurred",
		"loadingAppsAdmin":   "Loading application list...",
		"icon":               "Icon",
		"name":               "Name",
		"url":                "URL",
		"actions":            "Actions",
		"editApp":            "Edit application {{name}}",
		"deleteApp":          "Delete application {{name}}",
		"subscribersList":    "Subscribers ({{count}})",
		"refresh":            "Refresh",
		"loadingSubscribers": "Loading subscribers...",
		"dateSubscribed":     "Date subscribed",
		"noSubscribers":      "No subscribers yet.",
		"deleteSubscriber":   "Delete subscriber {{email}}",

		// Confirmation
		"deleteConfirmationTitle":             "Confirm deletion",
		"deleteConfirmationMessageApp":        "Are you sure you want to delete the application \"{{name}}\"? This cannot be undone.",
		"deleteConfirmationMessageSubscriber": "Are you sure you want to delete the subscriber \"{{name}}\"?",
		"saveConfirmationTitle":               "Confirm changes",
		"saveConfirmationMessage":             "Are you sure you want to save changes to the application \"{{name}}\"?",
		"editAppTitle":                        "Edit application",
		"save":                                "Save",
		"cancel":                              "Cancel",
		"confirm":                             "Confirm",
		"delete":                              "Delete",
		"deleting":                            "Deleting...",
		"processing":                          "Processing...",

		// Forms
		"formSecurityError": "Security token invalid.  Please refresh and try again.",
		"formTooFast":       "Form submitted too quickly.  Please enter the fields manually.",
		"formExpired":       "Form expired.  Please reload and submit again.",
		"fieldRequired":     "This field is required.",
		"fieldInvalid":      "Invalid input.",
		"fieldTooShort":     "Input is too short.",
		"fieldTooLong":      "Input is too long.",
	},
	LocaleES: {
		// Home
		"chooseApp":        "Elige una Aplicación",
		"homeDescription":  "Haz clic en un mosaico para abrir la aplicación seleccionada en una pestaña nueva.",
		"loadingApps":      "Cargando aplicaciones...",
		"errorLoadingApps": "Error al cargar aplicaciones: {{message}}",
		"createdBy":        "Creado por",
		"allRightsReserved": "Todos los derechos reservados",
		"adminPanel":       "Panel de administración",
		"pageInfo":         "Acerca de esta página",
		"newBadge":         "NUEVO",

		// Newsletter
		"newsletterHeader":   "¡Mantente al día!",
		"newsletterBody":     "Suscríbete para recibir noticias sobre actualizaciones, nuevos programas y funciones interesantes.",
		"emailPlaceholder":   "Tu dirección de correo",
		"featureUnavailable": "La suscripción no está disponible actualmente.",
		"invalidEmail":       "Introduce una dirección de correo válida.",
		"subscribing":        "Suscribiendo...",
		"subscribe":          "Suscríbete",
		"signupSuccess":      "¡Gracias! Has sido añadido a la lista de correo.",
		"signupConflict":     "Esta dirección de correo ya está suscrita.",
		"signupError":        "Algo salió mal. Inténtalo de nuevo más tarde.",
		"gatewayUnavailable": "El servicio de datos no está disponible actualmente.",

		// Login
		"loginTitle":      "Iniciar sesión",
		"email":           "Correo electrónico",
		"password":        "Contraseña",
		"login":           "Iniciar sesión",
		"loggingIn":       "Iniciando sesión...",
		"unexpectedError": "Ocurrió un error inesperado.",
		"backToHome":      "Volver a la página principal",

		// Admin
		"adminPanelHeader":   "Panel de Administración",
		"loggedInAs":         "Sesión iniciada como {{email}}",
		"logout":             "Cerrar sesión",
		"loggingOut":         "Cerrando sesión...",
		"appManagement":      "Gestión de aplicaciones",
		"appNamePL":          "Nombre de la aplicación (PL)",
		"appNameEN":          "Nombre de la aplicación (EN)",
		"appNameES":          "Nombre de la aplicación (ES)",
		"appDescriptionPL":   "Descripción de la aplicación (PL)",
		"appDescriptionEN":   "Descripción de la aplicación (EN)",
		"appDescriptionES":   "Descripción de la aplicación (ES)",
		"appURL":             "URL de la aplicación",
		"appIconSVG":         "Código SVG del icono o nombre de icono integrado",
		"markAsNew":          "Marcar como nuevo",
		"adding":             "Añadiendo...",
		"addApp":             "Añadir aplicación",
		"fillAllFields":      "Rellena todos los campos obligatorios en todos los idiomas.",
		"errorAdding":        "Error al añadir: {{message}}",
		"errorOccurred":      "Ocurrió un error",
		"loadingAppsAdmin":   "Cargando lista de aplicaciones...",
		"icon":               "Icono",
		"name":               "Nombre",
		"url":                "URL",
		"actions":            "Acciones",
		"editApp":            "Editar aplicación {{name}}",
		"deleteApp":          "Eliminar aplicación {{name}}",
		"subscribersList":    "Suscriptores ({{count}})",
		"refresh":            "Actualizar",
		"loadingSubscribers": "Cargando suscriptores...",
		"dateSubscribed":     "Fecha de suscripción",
		"noSubscribers":      "Aún no hay suscriptores.",
		"deleteSubscriber":   "Eliminar suscriptor {{email}}",

		// Confirmation
		"deleteConfirmationTitle":             "Confirmar eliminación",
		"deleteConfirmationMessageApp":        "¿Seguro que quieres eliminar la aplicación \"{{name}}\"? Esta operación no se puede deshacer.",
		"deleteConfirmationMessageSubscriber": "¿Seguro que quieres eliminar al suscriptor \"{{name}}\"?",
		"saveConfirmationTitle":               "Confirmar cambios",
		"saveConfirmationMessage":             "¿Seguro que quieres guardar los cambios de la aplicación \"{{name}}\"?",
		"editAppTitle":                        "Editar aplicación",
		"save":                                "Guardar",
		"cancel":                              "Cancelar",
		"confirm":                             "Confirmar",
		"delete":                              "Eliminar",
		"deleting":                            "Eliminando...",
		"processing":                          "Procesando...",

		// Forms
		"formSecurityError": "El token de seguridad no es válido.  Actualiza la página e inténtalo de nuevo.",
		"formTooFast":       "El formulario se envió demasiado rápido.  Rellena los campos manualmente.",
		"formExpired":       "El formulario ha caducado.  Recarga la página y vuelve a enviarlo.",
		"fieldRequired":     "Este campo es obligatorio.",
		"fieldInvalid":      "Valor no válido.",
		"fieldTooShort":     "El valor es demasiado corto.",
		"fieldTooLong":      "El valor es demasiado largo.",
	},
}
