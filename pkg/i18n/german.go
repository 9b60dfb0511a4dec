package i18n

func germanSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:        "Es ist ein Fehler aufgetreten!",
		InitialisingStore:    "Initialisiere den Passwortspeicher in '{{dir}}' mit dem Schlüssel {{key}}",
		EnterAuthDetails:     "Anmeldedaten eingeben:",
		StoringSecret:        "Speichere das Geheimnis unter {{entry}}",
		EnterServerURL:       "Server-URL eingeben:",
		ErasedCredentials:    "Die Anmeldedaten des Servers wurden gelöscht.",
		NoHomeDirError:       "Das Home-Verzeichnis wurde nicht gefunden. Setze PASSWORD_STORE_DIR auf den Pfad deines Passwortspeichers.",
		CredentialsNotFound:  "Für diesen Server wurde kein Eintrag gefunden.",
		MalformedInputError:  "Die Eingabe konnte nicht gelesen werden: {{error}}",
		PassCommandError:     "Der Passwortspeicher konnte nicht ausgeführt werden: {{error}}",
		StoreAccessError:     "Auf den Passwortspeicher konnte nicht zugegriffen werden: {{error}}",
		InvalidEncodingError: "Der Passwortspeicher enthält einen ungültigen Eintrag: {{error}}",
		MissingSubcommand:    "Bitte gib einen Unterbefehl an",
		UnknownSubcommand:    "Unbekannter Unterbefehl: {{subcommand}}",
		InitDescription:      "Richtet den Credential Helper für den aktuellen Benutzer ein.",
		InitKeyIDDescription: "Die ID des GPG-Schlüssels, mit dem der pass-Speicher eingerichtet wird.",
		StoreDescription:     "Speichert die über stdin gesendeten Anmeldedaten.",
		GetDescription:       "Gibt die Anmeldedaten für die über stdin gesendete URL aus.",
		ListDescription:      "Listet alle gespeicherten Anmeldedaten des aktuellen Benutzers auf.",
		EraseDescription:     "Löscht alle Anmeldedaten für die über stdin gesendete URL.",
		VersionDescription:   "Gibt die Version aus.",
	}
}
